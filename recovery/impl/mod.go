package impl

import (
	"math/big"

	"github.com/rs/xid"
	"github.com/rs/zerolog"
	"golang.org/x/xerrors"

	"go.dedis.ch/sssrecover/recovery"
	"go.dedis.ch/sssrecover/recovery/impl/decode"
	"go.dedis.ch/sssrecover/recovery/impl/interp"
	"go.dedis.ch/sssrecover/types"
)

// NewSolver creates a solver for the given configuration. It fails if the
// method is unknown or the modulus is not prime.
func NewSolver(conf recovery.Configuration) (recovery.Solver, error) {
	engine, err := newInterpolator(conf)
	if err != nil {
		return nil, err
	}

	s := solver{
		conf:   conf,
		engine: engine,
		log:    conf.Logger,
	}
	return &s, nil
}

// solver implements recovery.Solver. It holds no state besides its
// configuration and can be shared between goroutines.
type solver struct {
	conf   recovery.Configuration
	engine interp.Interpolator
	log    zerolog.Logger
}

func newInterpolator(conf recovery.Configuration) (interp.Interpolator, error) {
	method, err := recovery.ParseMethod(string(conf.Method))
	if err != nil {
		return nil, err
	}

	if conf.Modulus != nil {
		switch method {
		case recovery.MethodVandermonde:
			return interp.NewVandermondeZp(conf.Modulus)
		default:
			return interp.NewLagrangeZp(conf.Modulus)
		}
	}

	switch method {
	case recovery.MethodVandermonde:
		return interp.NewVandermonde(conf.AllowRounding), nil
	default:
		return interp.NewLagrange(conf.AllowRounding), nil
	}
}

// Solve implements recovery.Solver.
func (s *solver) Solve(tc types.TestCase) (types.SolveResult, error) {
	reqID := xid.New().String()
	n, k := tc.Keys.N, tc.Keys.K

	s.log.Debug().Str("req", reqID).Msgf("solving n=%d, k=%d with %s, %d points supplied",
		n, k, s.engine.Name(), len(tc.Points))

	points, err := decode.Extract(tc.Points, n, k)
	if err != nil {
		s.log.Warn().Str("req", reqID).Msgf("point extraction failed: %v", err)
		return types.SolveResult{}, xerrors.Errorf("failed to extract points: %w", err)
	}

	s.log.Debug().Str("req", reqID).Msgf("selected points %s", points)

	secret, err := s.engine.Secret(points)
	if err != nil {
		s.log.Warn().Str("req", reqID).Msgf("interpolation failed: %v", err)
		return types.SolveResult{}, xerrors.Errorf("failed to interpolate: %w", err)
	}

	keys := make([]int, len(points))
	for i, p := range points {
		keys[i] = int(p.X)
	}

	result := types.SolveResult{
		RequestID:   reqID,
		Method:      s.engine.Name(),
		Secret:      secret,
		Degree:      k - 1,
		PointsUsed:  len(points),
		TotalPoints: len(tc.Points),
		Keys:        keys,
	}

	s.log.Debug().Str("req", reqID).Msgf("recovered secret %s", secret)

	return result, nil
}

// Interpolate implements recovery.Solver.
func (s *solver) Interpolate(points types.PointSet) (*big.Int, error) {
	return s.engine.Secret(points)
}
