package csscolor

import "fmt"

// HueMethod selects how the second color's hue is adjusted relative to the
// first before blending in a polar space. The zero value is HueShorter, the
// CSS default.
type HueMethod int

const (
	// HueShorter takes the shorter arc between the two hues.
	HueShorter HueMethod = iota
	// HueLonger takes the longer arc.
	HueLonger
	// HueIncreasing moves in the direction of increasing angle.
	HueIncreasing
	// HueDecreasing moves in the direction of decreasing angle.
	HueDecreasing
	// HueSpecified uses both hues exactly as given, with no adjustment.
	HueSpecified
)

// HueMethodFromName looks up a hue interpolation method by its CSS keyword.
func HueMethodFromName(name string) (HueMethod, error) {
	switch name {
	case "shorter":
		return HueShorter, nil
	case "longer":
		return HueLonger, nil
	case "increasing":
		return HueIncreasing, nil
	case "decreasing":
		return HueDecreasing, nil
	case "specified":
		return HueSpecified, nil
	}
	return 0, fmt.Errorf("unknown hue interpolation method %q", name)
}

func (m HueMethod) String() string {
	switch m {
	case HueLonger:
		return "longer"
	case HueIncreasing:
		return "increasing"
	case HueDecreasing:
		return "decreasing"
	case HueSpecified:
		return "specified"
	}
	return "shorter"
}

// InterpolationMethod names the space a blend happens in, plus the hue rule
// when that space is polar.
type InterpolationMethod struct {
	Space Space
	Hue   HueMethod
}

// InterpolateOptions adjusts Interpolate's behavior.
type InterpolateOptions struct {
	// KeepInterpolationSpace returns the blend in the interpolation space
	// instead of converting back to the first color's space.
	KeepInterpolationSpace bool
}

// Interpolate blends two colors in method.Space at the given weight in
// [0,1]: weight 0 is the first color, weight 1 the second. The result is
// converted back to the first color's space unless requested otherwise.
//
// A channel missing on one side borrows the other side's value; a channel
// missing on both sides stays missing.
func Interpolate(color1, color2 Color, method InterpolationMethod, weight float64, options ...func(*InterpolateOptions)) Color {
	var opt InterpolateOptions
	for _, o := range options {
		o(&opt)
	}

	a := color1.ToSpace(method.Space)
	b := color2.ToSpace(method.Space)

	// Missing-channel substitution. After conversion both colors share the
	// space, so the analogous channel is simply the same index.
	for i := 0; i < 3; i++ {
		switch {
		case a.missing[i] && !b.missing[i]:
			a.v[i] = b.v[i]
		case b.missing[i] && !a.missing[i]:
			b.v[i] = a.v[i]
		}
	}
	alphaA, alphaB := a.alpha, b.alpha
	switch {
	case a.alphaMissing && !b.alphaMissing:
		alphaA = alphaB
	case b.alphaMissing && !a.alphaMissing:
		alphaB = alphaA
	}

	if hi := method.Space.hueIndex(); hi >= 0 {
		a.v[hi], b.v[hi] = adjustHues(a.v[hi], b.v[hi], method.Hue)
	}

	out := Color{space: method.Space}
	for i := 0; i < 3; i++ {
		out.v[i] = a.v[i] + weight*(b.v[i]-a.v[i])
		if a.missing[i] && b.missing[i] {
			out.v[i] = 0
			out.missing[i] = true
		}
	}
	out.alpha = clamp(alphaA+weight*(alphaB-alphaA), 0, 1)
	out.alphaMissing = a.alphaMissing && b.alphaMissing

	if opt.KeepInterpolationSpace {
		return out
	}
	return out.ToSpace(color1.space)
}

// adjustHues applies the CSS Color 4 hue adjustment rules. Except for
// HueSpecified, both hues are first reduced to [0,360) and then shifted by
// whole turns until their difference falls in the method's range.
func adjustHues(h1, h2 float64, method HueMethod) (float64, float64) {
	if method == HueSpecified {
		return h1, h2
	}
	h1 = normalizeHue(h1)
	h2 = normalizeHue(h2)
	switch d := h2 - h1; method {
	case HueShorter:
		if d > 180 {
			h1 += 360
		} else if d < -180 {
			h2 += 360
		}
	case HueLonger:
		if 0 < d && d < 180 {
			h1 += 360
		} else if -180 < d && d <= 0 {
			h2 += 360
		}
	case HueIncreasing:
		if h2 < h1 {
			h2 += 360
		}
	case HueDecreasing:
		if h1 < h2 {
			h1 += 360
		}
	}
	return h1, h2
}
