package recovery

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/xerrors"

	"go.dedis.ch/sssrecover/types"
)

// Solver recovers the secret of a test case.
type Solver interface {
	// Solve selects k points from the test case and returns f(0) with the
	// metadata of the run.
	Solve(tc types.TestCase) (types.SolveResult, error)

	// Interpolate returns f(0) for an already decoded point set.
	Interpolate(points types.PointSet) (*big.Int, error)
}

// Method names an interpolation strategy.
type Method string

const (
	// MethodLagrange evaluates the Lagrange form at 0.
	MethodLagrange Method = "lagrange"
	// MethodVandermonde solves the power-basis linear system.
	MethodVandermonde Method = "vandermonde"
)

// ParseMethod returns the method with the given name, case-insensitively.
func ParseMethod(name string) (Method, error) {
	switch Method(strings.ToLower(strings.TrimSpace(name))) {
	case MethodLagrange, "":
		return MethodLagrange, nil
	case MethodVandermonde:
		return MethodVandermonde, nil
	default:
		return "", xerrors.Errorf("unknown method %q, expected %q or %q",
			name, MethodLagrange, MethodVandermonde)
	}
}

// Configuration is the set of options a solver is created with.
type Configuration struct {
	Method Method

	// Modulus, if set, switches all arithmetic to Z_p. It must be prime.
	Modulus *big.Int

	// AllowRounding rounds a fractional result to the nearest integer instead
	// of failing with ErrNonIntegral. Ignored in Z_p.
	AllowRounding bool

	Logger zerolog.Logger
}

// DefaultConfiguration returns exact Lagrange interpolation over the
// integers with logging disabled.
func DefaultConfiguration() Configuration {
	return Configuration{
		Method: MethodLagrange,
		Logger: zerolog.Nop(),
	}
}

// Identity describes the options that influence the result. Two
// configurations with the same identity give the same secret for the same
// input.
func (c Configuration) Identity() string {
	modulus := "-"
	if c.Modulus != nil {
		modulus = c.Modulus.String()
	}
	return fmt.Sprintf("%s|%s|%t", c.Method, modulus, c.AllowRounding)
}
