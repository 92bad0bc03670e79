package css

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/npillmayer/htmldesign/dom/style"
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/percent"
)

const (
	dimenNone uint32 = 0

	dimenAbsolute uint32 = 0x0001
	dimenAuto     uint32 = 0x0002
	dimenInherit  uint32 = 0x0003
	dimenInitial  uint32 = 0x0004
	kindMask      uint32 = 0x000f

	// Flags for content dependent dimensions
	DimenContentMax uint32 = 0x0010
	DimenContentMin uint32 = 0x0020
	DimenContentFit uint32 = 0x0030
	contentMask     uint32 = 0x00f0

	dimenPercent uint32 = 0x0900
	relativeMask uint32 = 0xff00
)

// DimenT is an option type for CSS dimensions.
type DimenT struct {
	d       dimen.DU
	percent percent.Percent
	flags   uint32
}

/*
type DimenT
	= Auto
	| Inherit
	| Initial
	| JustDimen dimen
	| Percentage Percent
	| ContentRel Min N
	| ContentRel Max N
	| ContentRel Fit N
*/

// Auto creates a CSS dimension for value "auto".
func Auto() DimenT {
	return DimenT{flags: dimenAuto}
}

// Inherit creates a CSS dimension for value "inherit".
func Inherit() DimenT {
	return DimenT{flags: dimenInherit}
}

// Initial creates a CSS dimension for value "initial".
func Initial() DimenT {
	return DimenT{flags: dimenInitial}
}

// JustDimen creates a CSS dimension with a fixed value of x.
func JustDimen(x dimen.DU) DimenT {
	return DimenT{d: x, flags: dimenAbsolute}
}

// Percentage creates a CSS dimension with a %-relative value.
func Percentage(n percent.Percent) DimenT {
	return DimenT{percent: n, flags: dimenPercent}
}

// ContentDependent creates a CSS dimension for one of "min-content",
// "max-content" or "fit-content". flag has to be one of DimenContentMin,
// DimenContentMax or DimenContentFit.
func ContentDependent(flag uint32) DimenT {
	return DimenT{flags: flag & contentMask}
}

// IsNone is true for the zero value, i.e. an unset dimension.
func (d DimenT) IsNone() bool {
	return d.flags == dimenNone
}

// IsAbsolute is true for fixed dimensions.
func (d DimenT) IsAbsolute() bool {
	return d.flags&kindMask == dimenAbsolute
}

func (d DimenT) String() string {
	switch {
	case d.flags == dimenNone:
		return "none"
	case d.flags&kindMask == dimenAbsolute:
		return d.d.String()
	case d.flags&kindMask == dimenAuto:
		return "auto"
	case d.flags&kindMask == dimenInherit:
		return "inherit"
	case d.flags&kindMask == dimenInitial:
		return "initial"
	case d.flags&relativeMask == dimenPercent:
		return fmt.Sprintf("%v", d.percent)
	case d.flags&contentMask == DimenContentMin:
		return "min-content"
	case d.flags&contentMask == DimenContentMax:
		return "max-content"
	case d.flags&contentMask == DimenContentFit:
		return "fit-content"
	}
	return "?"
}

// ---------------------------------------------------------------------------

// Match starts a type switch on a dimension:
//
//     switch m := d.Match(); m {
//     case m.Just(&du):
//         ...
//     case m.IsKind(css.Auto()):
//         ...
//     }
//
func (d DimenT) Match() *Matcher {
	return &Matcher{dimen: d}
}

// Matcher matches cases in a type switch on a dimension. See DimenT.Match.
type Matcher struct {
	dimen DimenT
}

// IsKind matches if the dimension is of the same kind as d.
func (m *Matcher) IsKind(d DimenT) *Matcher {
	switch {
	case (m.dimen.flags&kindMask > 0) && (m.dimen.flags&kindMask) == (d.flags&kindMask):
		return m
	case (m.dimen.flags&relativeMask > 0) && (d.flags&relativeMask > 0):
		if (m.dimen.flags&relativeMask == dimenPercent) != (d.flags&relativeMask == dimenPercent) {
			return nil
		}
		return m
	case (m.dimen.flags&contentMask > 0) && (m.dimen.flags&contentMask == d.flags&contentMask):
		return m
	}
	return nil
}

// Just matches fixed dimensions and extracts the value into du, if non-nil.
func (m *Matcher) Just(du *dimen.DU) *Matcher {
	if m.dimen.flags&kindMask == dimenAbsolute {
		if du != nil {
			*du = m.dimen.d
		}
		return m
	}
	return nil
}

// Percentage matches relative dimensions and extracts the percentage into p,
// if non-nil.
func (m *Matcher) Percentage(p *percent.Percent) *Matcher {
	if m.dimen.flags&relativeMask == dimenPercent {
		if p != nil {
			*p = m.dimen.percent
		}
		return m
	}
	return nil
}

// --- Expression matching ---------------------------------------------------

// DimenPatterns holds a result value for each kind of dimension.
type DimenPatterns[T any] struct {
	Auto    T
	Inherit T
	Initial T
	Just    T
	Percent T
	Default T
}

// DimenPattern creates a match expression, resulting in values of type T.
func DimenPattern[T any](d DimenT) *MatchExpr[T] {
	return &MatchExpr[T]{dimen: d}
}

// MatchExpr selects one of a set of patterns, depending on the kind of a
// dimension.
type MatchExpr[T any] struct {
	dimen DimenT
}

// OneOf returns the pattern matching the kind of the dimension.
func (m *MatchExpr[T]) OneOf(patterns DimenPatterns[T]) T {
	switch m.dimen.flags & kindMask {
	case dimenAuto:
		return patterns.Auto
	case dimenAbsolute:
		return patterns.Just
	case dimenInitial:
		return patterns.Initial
	case dimenInherit:
		return patterns.Inherit
	}
	if m.dimen.flags&relativeMask == dimenPercent {
		return patterns.Percent
	}
	return patterns.Default
}

// With extracts the fixed value of the dimension into du.
func (m *MatchExpr[T]) With(du *dimen.DU) *MatchExpr[T] {
	*du = m.dimen.d
	return m
}

// Const returns x.
func (m *MatchExpr[T]) Const(x T) T {
	return x
}

// --- Parsing ---------------------------------------------------------------

// ParseDimen converts the textual value of a dimension property into a
// DimenT. Recognized are lengths in px and pt, unit-less zero,
// percentages, and the keywords auto, inherit, initial, min-content,
// max-content and fit-content. Pixels are converted to points at 96 dpi.
//
// An empty property results in an unset dimension (IsNone() == true).
func ParseDimen(p style.Property) (DimenT, error) {
	s := strings.ToLower(strings.TrimSpace(p.String()))
	switch s {
	case "":
		return DimenT{}, nil
	case "auto":
		return Auto(), nil
	case "inherit":
		return Inherit(), nil
	case "initial":
		return Initial(), nil
	case "min-content":
		return ContentDependent(DimenContentMin), nil
	case "max-content":
		return ContentDependent(DimenContentMax), nil
	case "fit-content":
		return ContentDependent(DimenContentFit), nil
	case "0":
		return JustDimen(0), nil
	}
	var unit string
	switch {
	case strings.HasSuffix(s, "%"):
		unit = "%"
	case strings.HasSuffix(s, "px"), strings.HasSuffix(s, "pt"):
		unit = s[len(s)-2:]
	default:
		return DimenT{}, fmt.Errorf("unsupported dimension: %q", p)
	}
	x, err := strconv.ParseFloat(strings.TrimSuffix(s, unit), 64)
	if err != nil {
		return DimenT{}, fmt.Errorf("cannot parse dimension %q: %w", p, err)
	}
	switch unit {
	case "%":
		return Percentage(percent.FromInt(int(math.Round(x)))), nil
	case "px":
		return JustDimen(dimen.DU(x * 0.75 * float64(dimen.PT))), nil
	}
	return JustDimen(dimen.DU(x * float64(dimen.PT))), nil
}
