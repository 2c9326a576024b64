// Package config loads analysis profiles from YAML files into hrv.Config
// values. Fields left out of a profile keep their defaults.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-hrv/dsp/spectrum"
	"github.com/cwbudde/algo-hrv/dsp/window"
	"github.com/cwbudde/algo-hrv/hrv"
)

// BandYAML is a frequency interval [min, max) in Hz.
type BandYAML struct {
	Min *float64 `yaml:"min,omitempty"`
	Max *float64 `yaml:"max,omitempty"`
}

// BandsYAML holds the three analysis bands.
type BandsYAML struct {
	VLF *BandYAML `yaml:"vlf,omitempty"`
	LF  *BandYAML `yaml:"lf,omitempty"`
	HF  *BandYAML `yaml:"hf,omitempty"`
}

// NonlinearYAML configures the nonlinear measures.
type NonlinearYAML struct {
	Enabled    *bool    `yaml:"enabled,omitempty"`
	M          *int     `yaml:"m,omitempty"`
	Tau        *int     `yaml:"tau,omitempty"`
	R          *float64 `yaml:"r,omitempty"`
	N          *int     `yaml:"n,omitempty"`
	Cra        *float64 `yaml:"cra,omitempty"`
	Crb        *float64 `yaml:"crb,omitempty"`
	FracDimM   *int     `yaml:"fracdim_m,omitempty"`
	FracDimTau *int     `yaml:"fracdim_tau,omitempty"`
}

// Profile is the YAML form of an analysis configuration.
type Profile struct {
	SampleRate *float64       `yaml:"sample_rate_hz,omitempty"`
	Bands      *BandsYAML     `yaml:"bands,omitempty"`
	Nonlinear  *NonlinearYAML `yaml:"nonlinear,omitempty"`
	Order      []string       `yaml:"order,omitempty"`
	Window     string         `yaml:"window,omitempty"`
	Backend    string         `yaml:"backend,omitempty"`
	RemoveMean *bool          `yaml:"remove_mean,omitempty"`
}

// Load reads the profile stored at path.
func Load(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("config: %w", err)
	}
	return Parse(data)
}

// Parse decodes a profile, rejecting unknown keys. An empty document is an
// empty profile.
func Parse(data []byte) (Profile, error) {
	var p Profile

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return Profile{}, fmt.Errorf("config: %w", err)
	}
	return p, nil
}

// Apply overlays the profile on cfg and validates the result.
func (p Profile) Apply(cfg hrv.Config) (hrv.Config, error) {
	if p.SampleRate != nil {
		cfg.SampleRate = *p.SampleRate
	}

	if p.Bands != nil {
		overlayBand(&cfg.Bands.VLF, p.Bands.VLF)
		overlayBand(&cfg.Bands.LF, p.Bands.LF)
		overlayBand(&cfg.Bands.HF, p.Bands.HF)
	}

	if p.Nonlinear != nil {
		overlayNonlinear(&cfg, p.Nonlinear)
	}

	if len(p.Order) > 0 {
		order := make([]hrv.Name, 0, len(p.Order))
		for _, s := range p.Order {
			n, err := hrv.ParseName(s)
			if err != nil {
				return hrv.Config{}, fmt.Errorf("config: order: %w", err)
			}
			order = append(order, n)
		}
		cfg.Order = order
	}

	if p.Window != "" {
		t, err := window.ParseType(p.Window)
		if err != nil {
			return hrv.Config{}, fmt.Errorf("config: window: %w", err)
		}
		cfg.Window = t
	}

	if p.Backend != "" {
		b, err := spectrum.ParseBackend(p.Backend)
		if err != nil {
			return hrv.Config{}, fmt.Errorf("config: backend: %w", err)
		}
		cfg.Backend = b
	}

	if p.RemoveMean != nil {
		cfg.RemoveMean = *p.RemoveMean
	}

	if err := cfg.Validate(); err != nil {
		return hrv.Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func overlayBand(dst *spectrum.Band, src *BandYAML) {
	if src == nil {
		return
	}
	if src.Min != nil {
		dst.Min = *src.Min
	}
	if src.Max != nil {
		dst.Max = *src.Max
	}
}

func overlayNonlinear(cfg *hrv.Config, src *NonlinearYAML) {
	if src.Enabled != nil {
		cfg.Nonlinear = *src.Enabled
	}

	p := &cfg.NonlinearParams
	setInt(&p.M, src.M)
	setInt(&p.Tau, src.Tau)
	setFloat(&p.R, src.R)
	setInt(&p.N, src.N)
	setFloat(&p.Cra, src.Cra)
	setFloat(&p.Crb, src.Crb)
	setInt(&p.FracDimM, src.FracDimM)
	setInt(&p.FracDimTau, src.FracDimTau)
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

func setFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}

// FromConfig returns the profile that reproduces cfg.
func FromConfig(cfg hrv.Config) Profile {
	band := func(b spectrum.Band) *BandYAML {
		lo, hi := b.Min, b.Max
		return &BandYAML{Min: &lo, Max: &hi}
	}
	rate := cfg.SampleRate
	enabled := cfg.Nonlinear
	removeMean := cfg.RemoveMean
	np := cfg.NonlinearParams

	p := Profile{
		SampleRate: &rate,
		Bands: &BandsYAML{
			VLF: band(cfg.Bands.VLF),
			LF:  band(cfg.Bands.LF),
			HF:  band(cfg.Bands.HF),
		},
		Nonlinear: &NonlinearYAML{
			Enabled:    &enabled,
			M:          &np.M,
			Tau:        &np.Tau,
			R:          &np.R,
			N:          &np.N,
			Cra:        &np.Cra,
			Crb:        &np.Crb,
			FracDimM:   &np.FracDimM,
			FracDimTau: &np.FracDimTau,
		},
		Window:     cfg.Window.String(),
		Backend:    cfg.Backend.String(),
		RemoveMean: &removeMean,
	}
	for _, n := range cfg.Order {
		p.Order = append(p.Order, string(n))
	}
	return p
}

// Marshal encodes a profile as YAML.
func (p Profile) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return buf.Bytes(), nil
}
