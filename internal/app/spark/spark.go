// Package spark renders numeric series as fixed-width terminal sparklines.
// One glyph per sample, missing samples shown as a placeholder dot.
package spark

import "strings"

// ramp is the 8-level glyph scale, lowest to highest visual weight.
var ramp = []rune("▁▂▃▄▅▆▇█")

// DefaultNullChar marks a missing sample.
const DefaultNullChar = '·'

// Options controls scaling and missing-sample rendering. Min and Max, when
// set, fix the scale; samples outside the range clamp to the ramp ends.
// When unset, the scale is computed from the non-nil samples.
type Options struct {
	Min      *float64
	Max      *float64
	NullChar rune
}

// Render maps samples onto the glyph ramp. Output length always equals
// len(samples); empty input yields "". A nil sample renders as the null
// character. If every non-nil sample is equal, they all map to the lowest
// glyph — a flat but valid line.
func Render(samples []*float64, opts Options) string {
	if len(samples) == 0 {
		return ""
	}

	nullChar := opts.NullChar
	if nullChar == 0 {
		nullChar = DefaultNullChar
	}

	min, max, any := bounds(samples, opts)
	if !any {
		return strings.Repeat(string(nullChar), len(samples))
	}

	var b strings.Builder
	for _, s := range samples {
		if s == nil {
			b.WriteRune(nullChar)
			continue
		}
		b.WriteRune(ramp[level(*s, min, max)])
	}
	return b.String()
}

// CompletionLine renders a completion-rate percentage series on a fixed
// 0–100 scale.
func CompletionLine(rates []*float64) string {
	return Render(rates, percentOptions())
}

// AccuracyLine renders an estimation-accuracy percentage series on a fixed
// 0–100 scale.
func AccuracyLine(scores []*float64) string {
	return Render(scores, percentOptions())
}

func percentOptions() Options {
	lo, hi := 0.0, 100.0
	return Options{Min: &lo, Max: &hi}
}

// bounds resolves the effective scale. Reports any=false when no non-nil
// sample exists and no explicit range was supplied.
func bounds(samples []*float64, opts Options) (min, max float64, any bool) {
	if opts.Min != nil && opts.Max != nil {
		return *opts.Min, *opts.Max, true
	}

	for _, s := range samples {
		if s == nil {
			continue
		}
		if !any || *s < min {
			min = *s
		}
		if !any || *s > max {
			max = *s
		}
		any = true
	}
	if !any {
		return 0, 0, false
	}

	if opts.Min != nil {
		min = *opts.Min
	}
	if opts.Max != nil {
		max = *opts.Max
	}
	return min, max, true
}

// level maps a value linearly from [min, max] onto a ramp index,
// clamped at both ends.
func level(v, min, max float64) int {
	if max <= min {
		return 0
	}
	frac := (v - min) / (max - min)
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	idx := int(frac*float64(len(ramp)-1) + 0.5)
	if idx >= len(ramp) {
		idx = len(ramp) - 1
	}
	return idx
}
