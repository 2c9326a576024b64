package hrv

import "fmt"

// Name identifies a descriptor.
type Name string

// Descriptor names.
const (
	HRMean  Name = "HRMean"
	HRSTD   Name = "HRSTD"
	RMSSD   Name = "rMSSD"
	PNN50   Name = "pNN50"
	VLF     Name = "VLF"
	LF      Name = "LF"
	HF      Name = "HF"
	LFHF    Name = "LFHF"
	Power   Name = "Power"
	ApEn    Name = "ApEn"
	FracDim Name = "FracDim"
)

// DefaultOrder is the canonical descriptor order.
var DefaultOrder = []Name{HRMean, HRSTD, RMSSD, PNN50, VLF, LF, HF, LFHF, Power}

// NonlinearNames are appended to the default order when nonlinear analysis is
// enabled.
var NonlinearNames = []Name{ApEn, FracDim}

var knownNames = map[Name]struct{}{
	HRMean: {}, HRSTD: {}, RMSSD: {}, PNN50: {},
	VLF: {}, LF: {}, HF: {}, LFHF: {}, Power: {},
	ApEn: {}, FracDim: {},
}

func (n Name) String() string { return string(n) }

// Nonlinear reports whether n is produced only by nonlinear analysis.
func (n Name) Nonlinear() bool { return n == ApEn || n == FracDim }

// ParseName resolves a descriptor name. Matching is exact.
func ParseName(s string) (Name, error) {
	n := Name(s)
	if _, ok := knownNames[n]; !ok {
		return "", fmt.Errorf("hrv: unknown descriptor %q", s)
	}
	return n, nil
}
