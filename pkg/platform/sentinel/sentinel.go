package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Data sources return these
// (optionally wrapped) so gateways can translate them into domain errors.
//
// - ErrNotFound: record does not exist
// - ErrConflict: a unique key is already taken at the storage level
// - ErrUnavailable: the backing service is temporarily unreachable
//
// For validation errors (bad input, missing fields), use pkg/domain-errors directly.
var (
	ErrNotFound    = errors.New("not found")
	ErrConflict    = errors.New("conflict")
	ErrUnavailable = errors.New("unavailable")
)
