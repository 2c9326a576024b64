// Package display holds presentation metadata for heart rate variability
// descriptors: labels, units, number formats and the reference values used
// to scale bar charts.
package display

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-hrv/hrv"
)

// LogBase is the default base of the bar scaling exponent.
const LogBase = 4.0

// Meta describes how a descriptor is shown.
type Meta struct {
	Label     string
	Unit      string
	Format    string  // printf verb for the value
	Reference float64 // typical resting value; 0 when none is known
}

var metas = map[hrv.Name]Meta{
	hrv.HRMean:  {Label: "HR Mean", Unit: "bpm", Format: "%0.1f", Reference: 75},
	hrv.HRSTD:   {Label: "HR STD", Unit: "bpm", Format: "%0.1f", Reference: 4},
	hrv.RMSSD:   {Label: "rMSSD", Unit: "ms", Format: "%0.1f", Reference: 51.7},
	hrv.PNN50:   {Label: "pNN50", Unit: "%", Format: "%0.1f", Reference: 12.3},
	hrv.VLF:     {Label: "VLF", Unit: "ms²", Format: "%0.1f", Reference: 2437.2},
	hrv.LF:      {Label: "LF", Unit: "ms²", Format: "%0.1f", Reference: 2234.3},
	hrv.HF:      {Label: "HF", Unit: "ms²", Format: "%0.1f", Reference: 1442.6},
	hrv.LFHF:    {Label: "LFHF", Unit: "", Format: "%0.2f", Reference: 1.75},
	hrv.Power:   {Label: "Power", Unit: "ms²", Format: "%0.1f", Reference: 6120.2},
	hrv.ApEn:    {Label: "ApEn", Unit: "", Format: "%0.3f"},
	hrv.FracDim: {Label: "FracDim", Unit: "", Format: "%0.3f"},
}

// Lookup returns the metadata of n. Unknown names get their own name as
// label and a %0.3f format.
func Lookup(n hrv.Name) Meta {
	if m, ok := metas[n]; ok {
		return m
	}
	return Meta{Label: string(n), Format: "%0.3f"}
}

// FormatValue renders v with the descriptor's format.
func (m Meta) FormatValue(v float64) string {
	return fmt.Sprintf(m.Format, v)
}

// Bar is a descriptor value scaled for a bar chart: the value relative to its
// reference is Width * Base^Exponent, with Width in [1, Base) for ratios above
// one and in (1/Base, 1] below.
type Bar struct {
	Width    float64
	Exponent int
	Base     float64
}

// Annotation renders the exponent as shown next to a bar.
func (b Bar) Annotation() string {
	return fmt.Sprintf("**%d", b.Exponent)
}

// Scale returns the bar of value against reference in the given log base.
// A non-positive ratio, or one that is not finite, gets exponent 1.
// Scale reports false when reference is zero.
func Scale(value, reference, base float64) (Bar, bool) {
	if reference == 0 {
		return Bar{}, false
	}
	ratio := value / reference

	exp := 1
	if ratio > 0 && !math.IsInf(ratio, 0) {
		l := math.Log(ratio) / math.Log(base)
		exp = int(math.Copysign(math.Floor(math.Abs(l)), l))
	}
	return Bar{
		Width:    ratio / math.Pow(base, float64(exp)),
		Exponent: exp,
		Base:     base,
	}, true
}

// ScaleDescriptor scales v against the reference of n with [LogBase].
func ScaleDescriptor(n hrv.Name, v float64) (Bar, bool) {
	return Scale(v, Lookup(n).Reference, LogBase)
}
