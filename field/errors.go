package field

import "errors"

var (
	ErrInvalidBounds              = errors.New("field: scene bounds must have positive extent on every axis")
	ErrBackgroundRequiresViewDirs = errors.New("field: background prediction requires view-direction conditioning")
	ErrBackendWidthMismatch       = errors.New("field: backend input/output width does not match the field configuration")
	ErrUnsupportedShadingMode     = errors.New("field: unsupported shading mode")
	ErrDirectionsRequired         = errors.New("field: view directions required but not supplied")
	ErrLightDirectionRequired     = errors.New("field: lit shading modes require a non-zero light direction")
	ErrBackgroundDisabled         = errors.New("field: background prediction is not enabled")
	ErrBatchMismatch              = errors.New("field: positions and directions batches differ in length")
)
