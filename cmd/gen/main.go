// Command gen generates type-safe GORM query helpers for the persistence models.
package main

import (
	"flag"

	"roster/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	outPath := flag.String("out", "./internal/infra/persistence/query", "Output directory of the generated package")
	flag.Parse()

	g := gen.NewGenerator(gen.Config{
		OutPath:       *outPath,
		Mode:          gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable: true,
	})

	g.ApplyBasic(model.All()...)

	g.Execute()
}
