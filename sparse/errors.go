package sparse

import "errors"

// Schema construction errors.
var (
	ErrBadKind        = errors.New("sparse: unsupported numeric kind")
	ErrNoFields       = errors.New("sparse: a structured schema requires at least one field")
	ErrFieldName      = errors.New("sparse: field names must be non-empty and unique")
	ErrNoPrimary      = errors.New("sparse: a schema with multiple fields requires a primary field")
	ErrUnknownPrimary = errors.New("sparse: the declared primary field is not among the schema fields")
	ErrSentinelKind   = errors.New("sparse: the sentinel kind does not match the schema's primary kind")
)

// Map construction and access errors.
var (
	ErrNilSchema      = errors.New("sparse: a schema is required")
	ErrResolution     = errors.New("sparse: nside values must be powers of two with the sparse resolution at least as fine as the coverage resolution")
	ErrSchemaMismatch = errors.New("sparse: the value array's schema does not match the map's schema")
	ErrLengthMismatch = errors.New("sparse: input lengths do not agree")
	ErrPixelRange     = errors.New("sparse: pixel index outside the sparse resolution's pixel space")
	ErrValueKind      = errors.New("sparse: the value kind does not match the field kind")
)
