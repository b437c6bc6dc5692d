package datasource

import (
	"errors"

	dErrors "cafepos/pkg/domain-errors"
	"cafepos/pkg/platform/sentinel"
)

// Translate maps data source sentinels onto coded domain errors for resource
// (e.g. "Customer"). Raw infrastructure failures are returned unchanged.
func Translate(err error, resource string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sentinel.ErrNotFound):
		return dErrors.New(dErrors.CodeNotFound, resource+" not found")
	case errors.Is(err, sentinel.ErrConflict):
		return dErrors.Wrap(err, dErrors.CodeConflict, resource+" conflicts with existing data")
	}
	return err
}
