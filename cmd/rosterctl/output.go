package main

import (
	"encoding/json"
	"io"
	"strconv"

	domainerrors "roster/internal/domain/errors"
	"roster/internal/errors"
)

type errorBody struct {
	Code    string `json:"code"`
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return errors.Wrap(err, "failed to encode output")
	}

	return nil
}

// writeError prints err with its error code; errors outside the domain
// taxonomy are reported as INTERNAL_ERROR.
func writeError(w io.Writer, err error) {
	_ = writeJSON(w, errorBody{
		Code:    domainerrors.Code(err),
		Status:  domainerrors.HTTPStatus(err),
		Message: err.Error(),
	})
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, domainerrors.ErrBadRequest.WithDetails("invalid id " + strconv.Quote(arg))
	}

	return id, nil
}
