// Package filter compiles boolean expressions evaluated against query
// results, using the expr language.
//
// Expressions see the fields of a location, e.g.:
//
//	City == "Oakland" && Country == "US"
//	Lat > 37.0 || PostalCode startsWith "946"
package filter

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/s0up4200/fireeagle-go/fireeagle"
)

// Env is the typed environment an expression is evaluated in.
type Env struct {
	City       string
	State      string
	PostalCode string
	Country    string
	Lat        float64
	Lng        float64
	UpdateTime string
}

// Filter is a compiled location filter.
type Filter struct {
	expression string
	program    *vm.Program
}

// Compile compiles an expression into an executable filter.
func Compile(expression string) (*Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, fmt.Errorf("empty filter expression")
	}

	program, err := expr.Compile(expression, expr.Env(Env{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression %q: %w", expression, err)
	}

	return &Filter{expression: expression, program: program}, nil
}

// Match reports whether the location satisfies the filter.
func (f *Filter) Match(loc fireeagle.Location) (bool, error) {
	env := Env{
		City:       loc.City,
		State:      loc.State,
		PostalCode: loc.PostalCode,
		Country:    loc.Country,
		Lat:        loc.Lat,
		Lng:        loc.Lng,
		UpdateTime: loc.UpdateTime,
	}

	out, err := expr.Run(f.program, env)
	if err != nil {
		return false, fmt.Errorf("filter evaluation failed: %w", err)
	}

	result, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("filter did not evaluate to a boolean")
	}
	return result, nil
}

// String returns the source expression.
func (f *Filter) String() string {
	return f.expression
}
