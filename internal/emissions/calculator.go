package emissions

import (
	"context"
	"time"

	"github.com/rshade/carboncalc/internal/logging"
)

// Calculator turns a CalculationInput into a Result using a fixed factor table.
// It holds no mutable state and is safe for concurrent use.
type Calculator struct {
	factors FactorTable
	now     func() time.Time
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithFactors replaces the built-in factor table. The table is copied.
func WithFactors(f FactorTable) Option {
	return func(c *Calculator) { c.factors = f.Clone() }
}

// WithClock sets the time source used for Result.CalculatedAt.
func WithClock(now func() time.Time) Option {
	return func(c *Calculator) { c.now = now }
}

// NewCalculator returns a Calculator using DefaultFactors unless overridden.
func NewCalculator(opts ...Option) *Calculator {
	c := &Calculator{factors: DefaultFactors(), now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Factors returns a copy of the calculator's factor table.
func (c *Calculator) Factors() FactorTable {
	return c.factors.Clone()
}

// Calculate computes emissions and credits for in.
//
// It returns an error wrapping ErrInvalidSector when the sector is unset or
// unknown, and one or more *FieldError values (matching ErrMissingField or
// ErrUnknownFactor) when a required field is absent, malformed or has no
// factor. No partial result is ever returned.
func (c *Calculator) Calculate(ctx context.Context, in CalculationInput) (Result, error) {
	log := logging.FromContext(ctx)

	activity, err := ParseActivity(in)
	if err != nil {
		return Result{}, err
	}

	kg, err := activity.Emissions(c.factors)
	if err != nil {
		return Result{}, err
	}

	result := NewResult(activity.Sector(), kg, c.now())
	log.Debug().Ctx(ctx).
		Str("component", "emissions").
		Str("sector", string(result.Sector)).
		Str("emissions_kg", result.Emissions.String()).
		Str("credits", result.Credits.String()).
		Msg("emissions calculated")

	return result, nil
}

// Calculate computes emissions with the built-in factor table.
func Calculate(ctx context.Context, in CalculationInput) (Result, error) {
	return NewCalculator().Calculate(ctx, in)
}
