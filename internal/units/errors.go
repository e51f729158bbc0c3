package units

import "errors"

// Domain errors for unit-scaling operations.
var (
	// ErrUnknownSystem indicates an unrecognized unit system name.
	ErrUnknownSystem = errors.New("units: unknown unit system")

	// ErrUnknownSymbol indicates a symbolic quantity that the target slot
	// cannot resolve against a constants table.
	ErrUnknownSymbol = errors.New("units: unknown unit symbol")

	// ErrInputCount indicates the wrong number of base scales was supplied.
	ErrInputCount = errors.New("units: exactly 3 of the 5 base scales must be positive")

	// ErrDegenerateInputs indicates a 3-subset of base scales that is
	// dimensionally dependent and cannot determine the remaining two.
	ErrDegenerateInputs = errors.New("units: base scales are dimensionally dependent")
)
