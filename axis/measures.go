package axis

import (
	"fmt"
	"math"
)

// Built-in window used by Default.
const (
	DefaultMinLog = 0
	DefaultMaxLog = 6
)

// DefaultRange returns the built-in window: log zone [10^0, 10^6] and the
// whole real line visible.
func DefaultRange() Range {
	return Range{
		MinLog:   DefaultMinLog,
		MaxLog:   DefaultMaxLog,
		MinValue: math.Inf(-1),
		MaxValue: math.Inf(1),
	}
}

// DefaultLimits returns the widest allowed limits.
func DefaultLimits() Range {
	return Range{
		MinLog:   MinLogLimit,
		MaxLog:   MaxLogLimit,
		MinValue: math.Inf(-1),
		MaxValue: math.Inf(1),
	}
}

// Default builds an axis with the built-in window and limits.
func Default(viewAreaSize int) (Axis, error) {
	return New(viewAreaSize, DefaultRange(), DefaultRange(), DefaultLimits())
}

// Measures overrides parts of an axis setup. Nil fields keep the current
// value. YAML accepts .inf and -.inf for the value fields.
type Measures struct {
	MinLog        *int     `yaml:"min_log,omitempty"`
	MaxLog        *int     `yaml:"max_log,omitempty"`
	MinValue      *float64 `yaml:"min_value,omitempty"`
	MaxValue      *float64 `yaml:"max_value,omitempty"`
	MinValueLimit *float64 `yaml:"min_value_limit,omitempty"`
	MaxValueLimit *float64 `yaml:"max_value_limit,omitempty"`
}

// IsZero reports whether m overrides nothing.
func (m Measures) IsZero() bool {
	return m == Measures{}
}

// Override returns m with the fields set in o replacing its own.
func (m Measures) Override(o Measures) Measures {
	if o.MinLog != nil {
		m.MinLog = o.MinLog
	}
	if o.MaxLog != nil {
		m.MaxLog = o.MaxLog
	}
	if o.MinValue != nil {
		m.MinValue = o.MinValue
	}
	if o.MaxValue != nil {
		m.MaxValue = o.MaxValue
	}
	if o.MinValueLimit != nil {
		m.MinValueLimit = o.MinValueLimit
	}
	if o.MaxValueLimit != nil {
		m.MaxValueLimit = o.MaxValueLimit
	}
	return m
}

// Apply returns a with m's overrides applied to both its current window and
// its defaults. Unlike gesture operations, Apply reports invalid results.
func (m Measures) Apply(a Axis) (Axis, error) {
	cur, lim := a.cur, a.lim
	if m.MinLog != nil {
		cur.MinLog = *m.MinLog
	}
	if m.MaxLog != nil {
		cur.MaxLog = *m.MaxLog
	}
	if m.MinValue != nil {
		cur.MinValue = *m.MinValue
	}
	if m.MaxValue != nil {
		cur.MaxValue = *m.MaxValue
	}
	if m.MinValueLimit != nil {
		lim.MinValue = *m.MinValueLimit
	}
	if m.MaxValueLimit != nil {
		lim.MaxValue = *m.MaxValueLimit
	}
	// Tightened limits pull an unset window bound along.
	if m.MinValue == nil && cur.MinValue < lim.MinValue {
		cur.MinValue = lim.MinValue
	}
	if m.MaxValue == nil && cur.MaxValue > lim.MaxValue {
		cur.MaxValue = lim.MaxValue
	}
	b, err := New(a.size, cur, cur, lim)
	if err != nil {
		return a, fmt.Errorf("axis: apply measures: %w", err)
	}
	return b, nil
}
