package hrv

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-hrv/dsp/spectrum"
	"github.com/cwbudde/algo-hrv/dsp/window"
	"github.com/cwbudde/algo-hrv/stats/frequency"
	"github.com/cwbudde/algo-hrv/stats/nonlinear"
)

// ErrInvalidConfig indicates a configuration that cannot be computed with.
var ErrInvalidConfig = errors.New("hrv: invalid config")

// DefaultSampleRate is the resampling rate in Hz.
const DefaultSampleRate = 4.0

// Config controls [Compute].
type Config struct {
	SampleRate float64         // Hz of the uniform grid
	Bands      frequency.Bands // VLF, LF and HF intervals
	// Order lists the descriptors of the result. Empty means DefaultOrder,
	// followed by NonlinearNames when Nonlinear is set.
	Order []Name

	Nonlinear       bool
	NonlinearParams nonlinear.Params

	// Spectrum options. The zero values give the plain periodogram.
	Window              window.Type
	Backend             spectrum.Backend
	RemoveMean          bool
	ExactBinFrequencies bool
}

// DefaultConfig returns a 4 Hz configuration with the canonical bands and
// nonlinear analysis disabled.
func DefaultConfig() Config {
	return Config{
		SampleRate:      DefaultSampleRate,
		Bands:           frequency.DefaultBands(),
		NonlinearParams: nonlinear.DefaultParams(),
		Window:          window.TypeRectangular,
		Backend:         spectrum.BackendAuto,
	}
}

// Option mutates a Config.
type Option func(*Config)

// NewConfig applies opts to [DefaultConfig] and validates the result.
func NewConfig(opts ...Option) (Config, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// WithSampleRate sets the resampling rate in Hz.
func WithSampleRate(hz float64) Option {
	return func(c *Config) {
		c.SampleRate = hz
	}
}

// WithBands replaces the VLF, LF and HF bands.
func WithBands(b frequency.Bands) Option {
	return func(c *Config) {
		c.Bands = b
	}
}

// WithOrder sets the descriptor order of the result.
func WithOrder(names ...Name) Option {
	return func(c *Config) {
		c.Order = append([]Name(nil), names...)
	}
}

// WithNonlinear enables or disables approximate entropy and fractal dimension.
func WithNonlinear(enabled bool) Option {
	return func(c *Config) {
		c.Nonlinear = enabled
	}
}

// WithNonlinearParams sets the nonlinear analysis parameters.
func WithNonlinearParams(p nonlinear.Params) Option {
	return func(c *Config) {
		c.NonlinearParams = p
	}
}

// WithWindow tapers the resampled series before the transform.
func WithWindow(t window.Type) Option {
	return func(c *Config) {
		c.Window = t
	}
}

// WithBackend selects the FFT backend.
func WithBackend(b spectrum.Backend) Option {
	return func(c *Config) {
		c.Backend = b
	}
}

// WithMeanRemoval removes the mean of the resampled series before the
// transform.
func WithMeanRemoval(enabled bool) Option {
	return func(c *Config) {
		c.RemoveMean = enabled
	}
}

// WithExactBinFrequencies labels spectrum bins with k*fs/n.
func WithExactBinFrequencies(enabled bool) Option {
	return func(c *Config) {
		c.ExactBinFrequencies = enabled
	}
}

// Validate reports whether c can be computed with.
func (c Config) Validate() error {
	if !(c.SampleRate > 0) || math.IsInf(c.SampleRate, 0) {
		return fmt.Errorf("%w: sample rate must be positive and finite, got %v", ErrInvalidConfig, c.SampleRate)
	}
	if err := c.Bands.Validate(c.SampleRate); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Nonlinear {
		if err := c.NonlinearParams.Validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}

	seen := make(map[Name]struct{}, len(c.Order))
	for _, n := range c.Order {
		if _, dup := seen[n]; dup {
			return fmt.Errorf("%w: descriptor %s listed twice", ErrInvalidConfig, n)
		}
		seen[n] = struct{}{}
	}
	return nil
}

// ResolvedOrder returns the descriptor order [Compute] produces.
func (c Config) ResolvedOrder() []Name {
	if len(c.Order) > 0 {
		return append([]Name(nil), c.Order...)
	}
	order := append([]Name(nil), DefaultOrder...)
	if c.Nonlinear {
		order = append(order, NonlinearNames...)
	}
	return order
}

func (c Config) spectrumOptions() []spectrum.Option {
	opts := []spectrum.Option{
		spectrum.WithBackend(c.Backend),
		spectrum.WithWindow(c.Window),
	}
	if c.RemoveMean {
		opts = append(opts, spectrum.WithMeanRemoval())
	}
	if c.ExactBinFrequencies {
		opts = append(opts, spectrum.WithExactBinFrequencies())
	}
	return opts
}
