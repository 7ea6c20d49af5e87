package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrSiteNotFound is returned when no profile is stored for the
	// requested user and site.
	ErrSiteNotFound = errors.New("site profile was not found")

	// ErrSiteNotSaved is returned when an upsert completes without error but
	// affects no row.
	ErrSiteNotSaved = errors.New("site profile was not saved")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a statement against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a result
	// row fails.
	ErrScanningRow = errors.New("failed to scan site profile row")

	// ErrScanningRows is returned when iterating a multi-row result fails
	// mid-result-set.
	ErrScanningRows = errors.New("failed to scan site profile rows")
)
