package observability

import "go.uber.org/zap"

// Field aliases so call sites outside this package do not need to import zap
// directly.
var (
	String = zap.String
	Int    = zap.Int
	Bool   = zap.Bool
	Error  = zap.Error
)
