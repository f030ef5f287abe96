package random

import "fmt"

// TypeConversionError reports a distribution parameter that cannot be
// interpreted as a numeric array-like. It is thrown (panicked) synchronously
// during construction; recover it with exceptions.TryFor.
type TypeConversionError struct {
	Param  string
	Value  any
	Reason string
}

func (e *TypeConversionError) Error() string {
	return fmt.Sprintf("parameter %q: cannot interpret %T as a numeric array-like: %s",
		e.Param, e.Value, e.Reason)
}

// ParameterDomainError reports a distribution-specific constraint violation,
// e.g. a non-positive shape parameter. Thrown before any graph node is
// created, so no partially-constructed node ever escapes.
type ParameterDomainError struct {
	Distribution Distribution
	Param        string
	Value        float64
	Constraint   string
}

func (e *ParameterDomainError) Error() string {
	return fmt.Sprintf("%s: parameter %q = %v violates constraint %q",
		e.Distribution, e.Param, e.Value, e.Constraint)
}
