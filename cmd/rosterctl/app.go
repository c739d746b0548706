package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"roster/config"
	"roster/internal/domain/repository"
	"roster/internal/errors"
	"roster/internal/infra/auth"
	logs "roster/internal/infra/log"
	"roster/internal/infra/metrics"
	"roster/internal/infra/persistence/postgres"
	"roster/internal/infra/persistence/sqlite"
	"roster/internal/infra/persistence/store"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const configDirEnv = "ROSTER_CONFIG_DIR"

// deps is everything a command may touch.
type deps struct {
	fx.In

	DB      *gorm.DB
	Logger  *slog.Logger
	Users   repository.UserRepository
	Groups  repository.GroupRepository
	Members repository.MemberRepository
	Tx      repository.TransactionManager
	Metrics *metrics.Metrics `optional:"true"`
}

// cli runs each command inside a short-lived fx application.
type cli struct {
	out         io.Writer
	infra       fx.Option
	dumpMetrics bool
}

// commandFunc does the work of one command and returns what gets printed.
type commandFunc func(ctx context.Context, d deps) (any, error)

func infraOptions() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			newDatabase,
			metrics.New,
			auth.NewBcryptHasher,
		),
	)
}

type databaseParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

type databaseResult struct {
	fx.Out

	DB         *gorm.DB
	Classifier repository.ConstraintClassifier
}

// newDatabase opens the backend selected by storage.driver.
func newDatabase(params databaseParams) (databaseResult, error) {
	switch params.Config.Storage.Driver {
	case config.DriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return databaseResult{}, err
		}

		return databaseResult{DB: db, Classifier: postgres.NewConstraintClassifier()}, nil
	case config.DriverSQLite:
		db, err := sqlite.New(sqlite.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return databaseResult{}, err
		}

		return databaseResult{DB: db, Classifier: sqlite.NewConstraintClassifier()}, nil
	default:
		return databaseResult{}, errors.Errorf("unknown storage driver %q", params.Config.Storage.Driver)
	}
}

// run starts the application, executes fn and prints its result as JSON.
func (c *cli) run(cmd *cobra.Command, fn commandFunc) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var d deps
	app := fx.New(
		c.infra,
		store.Module,
		fx.NopLogger,
		fx.Invoke(func(in deps) {
			d = in
		}),
	)
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "failed to build application")
	}

	if err := app.Start(ctx); err != nil {
		return errors.Wrap(err, "failed to start application")
	}
	defer func() {
		if err := app.Stop(context.Background()); err != nil {
			d.Logger.Warn("Failed to stop application", slog.Any("error", err))
		}
	}()

	result, err := fn(ctx, d)
	if c.dumpMetrics {
		if werr := d.Metrics.WriteText(cmd.ErrOrStderr()); werr != nil {
			d.Logger.Warn("Failed to write metrics", slog.Any("error", werr))
		}
	}
	if err != nil {
		return err
	}

	return writeJSON(c.out, result)
}

func newRootCmd(out io.Writer, infra fx.Option) *cobra.Command {
	c := &cli{out: out, infra: infra}

	var configDir string
	root := &cobra.Command{
		Use:           "rosterctl",
		Short:         "Manage users, groups and memberships of the roster store",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if configDir == "" {
				return nil
			}

			return os.Setenv(configDirEnv, configDir)
		},
	}
	root.PersistentFlags().StringVar(&configDir, "config-dir", "", "Directory holding config.yaml (env "+configDirEnv+")")
	root.PersistentFlags().BoolVar(&c.dumpMetrics, "metrics", false, "Print repository metrics to stderr after the command")

	root.AddCommand(
		c.migrateCmd(),
		c.usersCmd(),
		c.groupsCmd(),
		c.membersCmd(),
	)

	return root
}

func (c *cli) migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.run(cmd, func(ctx context.Context, d deps) (any, error) {
				if err := store.Migrate(ctx, d.DB); err != nil {
					return nil, err
				}
				d.Logger.InfoContext(ctx, "Schema migrated")

				return map[string]bool{"migrated": true}, nil
			})
		},
	}
}
