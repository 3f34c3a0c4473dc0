package provider

import (
	"context"
	"fmt"
)

// Unimplemented is the explicit variant for vendors that are recognized
// but have no adapter. It exists so that dispatch stays a closed union:
// an unwired vendor is a deliberate, visible choice rather than a silent
// default branch.
type Unimplemented struct {
	Name Provider
}

// NewUnimplemented returns the fixed-failure generator for p.
func NewUnimplemented(p Provider) *Unimplemented {
	return &Unimplemented{Name: p}
}

// Generate always fails with the same message; no network call is made.
func (u *Unimplemented) Generate(context.Context, string, string, int) Result {
	return Result{
		Error: fmt.Sprintf("%s integration not yet implemented", DisplayName(u.Name)),
	}
}
