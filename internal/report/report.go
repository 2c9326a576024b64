// Package report renders descriptor sets as aligned text, JSON lines or
// MessagePack.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/cwbudde/algo-hrv/hrv"
	"github.com/cwbudde/algo-hrv/internal/display"
	"github.com/cwbudde/algo-hrv/stats/frequency"
)

// Format selects the encoding of a report.
type Format int

const (
	FormatText Format = iota
	FormatJSON
	FormatMsgPack
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatMsgPack:
		return "msgpack"
	default:
		return "text"
	}
}

// ParseFormat resolves a format name as returned by [Format.String].
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "msgpack":
		return FormatMsgPack, nil
	}
	return FormatText, fmt.Errorf("report: unknown format %q", name)
}

// Status values of a descriptor.
const (
	StatusUndefinedRatio = "undefined_ratio"
	StatusNonFinite      = "non_finite"
	StatusError          = "error"
)

// Descriptor is one rendered descriptor value. Value is nil when the raw
// value is NaN or infinite; Raw then holds its textual form.
type Descriptor struct {
	Name     string   `json:"name"`
	Label    string   `json:"label"`
	Value    *float64 `json:"value"`
	Raw      string   `json:"raw,omitempty"`
	Unit     string   `json:"unit,omitempty"`
	Display  string   `json:"display"`
	Status   string   `json:"status,omitempty"`
	Bar      *float64 `json:"bar,omitempty"`
	Exponent *int     `json:"exponent,omitempty"`
}

// Entry is one descriptor set computed over a window of intervals.
type Entry struct {
	Beats       int          `json:"beats"`  // intervals received so far
	Window      int          `json:"window"` // intervals analysed
	Descriptors []Descriptor `json:"descriptors"`
}

// NewEntry renders set in its own order.
func NewEntry(beats, window int, set hrv.Set) Entry {
	e := Entry{
		Beats:       beats,
		Window:      window,
		Descriptors: make([]Descriptor, 0, set.Len()),
	}

	set.Each(func(n hrv.Name, v float64) {
		meta := display.Lookup(n)
		d := Descriptor{
			Name:    string(n),
			Label:   meta.Label,
			Unit:    meta.Unit,
			Display: meta.FormatValue(v),
		}

		if math.IsNaN(v) || math.IsInf(v, 0) {
			d.Raw = fmt.Sprint(v)
			d.Status = StatusNonFinite
		} else {
			val := v
			d.Value = &val
			if bar, ok := display.ScaleDescriptor(n, v); ok {
				width, exp := bar.Width, bar.Exponent
				d.Bar, d.Exponent = &width, &exp
			}
		}

		if err := set.Check(n); err != nil {
			d.Status = StatusError
			if errors.Is(err, frequency.ErrUndefinedRatio) {
				d.Status = StatusUndefinedRatio
			}
		}

		e.Descriptors = append(e.Descriptors, d)
	})

	return e
}

// Formatter writes entries in one format.
type Formatter struct {
	format   Format
	barWidth int
}

// NewFormatter returns a Formatter for format.
func NewFormatter(format Format) *Formatter {
	return &Formatter{format: format, barWidth: 20}
}

// Write encodes entries to w. JSON and MessagePack write one document per
// entry.
func (f *Formatter) Write(w io.Writer, entries []Entry) error {
	switch f.format {
	case FormatJSON:
		return f.writeJSON(w, entries)
	case FormatMsgPack:
		return f.writeMsgPack(w, entries)
	default:
		return f.writeText(w, entries)
	}
}

func (f *Formatter) writeJSON(w io.Writer, entries []Entry) error {
	enc := json.NewEncoder(w)
	for _, e := range entries {
		if err := enc.Encode(e); err != nil {
			return fmt.Errorf("report: json: %w", err)
		}
	}
	return nil
}

func (f *Formatter) writeMsgPack(w io.Writer, entries []Entry) error {
	enc := msgpack.NewEncoder(w)
	enc.SetCustomStructTag("json") // Use json tags for MessagePack
	for _, e := range entries {
		if err := enc.Encode(e); err != nil {
			return fmt.Errorf("report: msgpack: %w", err)
		}
	}
	return nil
}

func (f *Formatter) writeText(w io.Writer, entries []Entry) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	for i, e := range entries {
		if i > 0 {
			if _, err := fmt.Fprintln(tw); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(tw, "beats=%d window=%d\n", e.Beats, e.Window); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(tw, "Descriptor\tValue\tUnit\tScale\tStatus\n"); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(tw, "----------\t-----\t----\t-----\t------\n"); err != nil {
			return err
		}
		for _, d := range e.Descriptors {
			if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", d.Label, d.Display, d.Unit, f.bar(d), d.Status); err != nil {
				return err
			}
		}
	}

	return tw.Flush()
}

// bar draws the scaled width as a fixed-length gauge over [0, LogBase].
func (f *Formatter) bar(d Descriptor) string {
	if d.Bar == nil || d.Exponent == nil {
		return ""
	}
	filled := int(math.Round(*d.Bar / display.LogBase * float64(f.barWidth)))
	filled = max(0, min(filled, f.barWidth))
	return fmt.Sprintf("%s%s **%d", strings.Repeat("#", filled), strings.Repeat(".", f.barWidth-filled), *d.Exponent)
}
