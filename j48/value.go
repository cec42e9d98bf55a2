package j48

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Value is a typed split value: Number, Range or Nominal.
type Value interface {
	// String returns the value as J48 prints it.
	String() string
	isValue()
}

// Number is a numeric threshold, as in "humidity <= 75".
type Number float64

// Range is a discretized bin such as '(-inf-1.5]'. Low and High may be
// infinite. Closed reports whether the upper bound is included.
type Range struct {
	Low    float64
	High   float64
	Closed bool
}

// Nominal is a category name, kept verbatim.
type Nominal string

func (Number) isValue() {}
func (Range) isValue() {}
func (Nominal) isValue() {}

func (n Number) String() string {
	return formatFloat(float64(n))
}

func (r Range) String() string {
	end := ")"
	if r.Closed {
		end = "]"
	}
	return "'(" + formatBound(r.Low) + "-" + formatBound(r.High) + end + "'"
}

func (n Nominal) String() string {
	return string(n)
}

var reBound = regexp.MustCompile(`^[-+]?(\d+\.?\d*|\.\d+)([eE][-+]?\d+)?$`)

// ParseValue types a raw value token. Plain decimals become Number, quoted
// intervals become Range, anything else is returned as Nominal. Tokens such
// as "18_25" or "0x1p3" are category names, not numbers.
func ParseValue(raw string) Value {
	if reBound.MatchString(raw) {
		if f, err := strconv.ParseFloat(raw, 64); err == nil && !math.IsInf(f, 0) {
			return Number(f)
		}
	}
	if r, ok := parseRange(raw); ok {
		return r
	}
	return Nominal(raw)
}

func parseRange(raw string) (Range, bool) {
	if len(raw) < len("'(0-0)'") || !strings.HasPrefix(raw, "'(") || !strings.HasSuffix(raw, "'") {
		return Range{}, false
	}
	interior := raw[2 : len(raw)-2]
	var closed bool
	switch raw[len(raw)-2] {
	case ']':
		closed = true
	case ')':
	default:
		return Range{}, false
	}

	// A leading minus belongs to the lower bound, so the separator search
	// starts at position 1.
	for i := 1; i < len(interior); i++ {
		if interior[i] != '-' {
			continue
		}
		lo, okLo := parseBound(interior[:i], "-inf")
		hi, okHi := parseBound(interior[i+1:], "inf")
		if okLo && okHi && lo <= hi {
			return Range{Low: lo, High: hi, Closed: closed}, true
		}
	}
	return Range{}, false
}

// parseBound accepts a plain decimal or the given infinity literal.
func parseBound(s, inf string) (float64, bool) {
	switch s {
	case inf:
		if inf[0] == '-' {
			return math.Inf(-1), true
		}
		return math.Inf(1), true
	}
	if !reBound.MatchString(s) {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func formatBound(f float64) string {
	switch {
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsInf(f, 1):
		return "inf"
	}
	return formatFloat(f)
}
