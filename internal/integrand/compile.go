package integrand

import (
	"errors"
	"fmt"
	"go/parser"
	"strings"

	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"

	"oodesign/internal/quadrature"
)

// ErrBadExpression is returned when an integrand expression does not compile.
var ErrBadExpression = errors.New("bad integrand expression")

// allowedPackages are the only stdlib packages an expression may reference.
var allowedPackages = map[string]bool{
	"math": true,
}

const exprSource = `package main

import "math"

var _ = math.Pi

func F(x float64) float64 {
	return %s
}
`

// Compile builds a function from a Go expression in x, e.g. "math.Sin(x) * x".
// Only the math package is visible to the expression.
func Compile(expr string) (quadrature.Func, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, fmt.Errorf("%w: empty expression", ErrBadExpression)
	}
	if err := validateExpr(expr); err != nil {
		return nil, err
	}

	i := interp.New(interp.Options{})
	if err := i.Use(restrictedSymbols()); err != nil {
		return nil, fmt.Errorf("failed to load stdlib: %w", err)
	}
	if _, err := i.Eval(fmt.Sprintf(exprSource, expr)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadExpression, err)
	}
	v, err := i.Eval("main.F")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadExpression, err)
	}
	f, ok := v.Interface().(func(float64) float64)
	if !ok {
		return nil, fmt.Errorf("%w: F has type %s", ErrBadExpression, v.Type())
	}
	return f, nil
}

// validateExpr parses expr on its own so that statements, closures and
// anything that could close the function body early are rejected before the
// interpreter sees it.
func validateExpr(expr string) error {
	if strings.ContainsAny(expr, "{};`") {
		return fmt.Errorf("%w: %q is not a single expression", ErrBadExpression, expr)
	}
	if _, err := parser.ParseExpr(expr); err != nil {
		return fmt.Errorf("%w: %v", ErrBadExpression, err)
	}
	return nil
}

// restrictedSymbols returns the yaegi stdlib symbol table limited to
// allowedPackages.
func restrictedSymbols() interp.Exports {
	out := interp.Exports{}
	for key, syms := range stdlib.Symbols {
		// keys look like "math/math"; "." holds interpreter internals
		i := strings.LastIndex(key, "/")
		if i < 0 {
			continue
		}
		if allowedPackages[key[:i]] {
			out[key] = syms
		}
	}
	return out
}
