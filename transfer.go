package csscolor

import "math"

// Per-space scalar transfer functions between the space's stored channel
// values and its linear-light frame. All curves are extended to negative
// input by mirroring around zero, per CSS Color 4.

func srgbToLinear(v float64) float64 {
	abs := math.Abs(v)
	if abs <= 0.04045 {
		return v / 12.92
	}
	return math.Copysign(math.Pow((abs+0.055)/1.055, 2.4), v)
}

func srgbFromLinear(v float64) float64 {
	abs := math.Abs(v)
	if abs <= 0.0031308 {
		return v * 12.92
	}
	return math.Copysign(1.055*math.Pow(abs, 1/2.4)-0.055, v)
}

// A98 RGB uses a pure power curve with gamma 563/256.
func a98ToLinear(v float64) float64 {
	return math.Copysign(math.Pow(math.Abs(v), 563.0/256.0), v)
}

func a98FromLinear(v float64) float64 {
	return math.Copysign(math.Pow(math.Abs(v), 256.0/563.0), v)
}

// ProPhoto uses gamma 1.8 with a linear segment below 1/512 (16/512 encoded).
func prophotoToLinear(v float64) float64 {
	abs := math.Abs(v)
	if abs <= 16.0/512.0 {
		return v / 16
	}
	return math.Copysign(math.Pow(abs, 1.8), v)
}

func prophotoFromLinear(v float64) float64 {
	abs := math.Abs(v)
	if abs >= 1.0/512.0 {
		return math.Copysign(math.Pow(abs, 1/1.8), v)
	}
	return v * 16
}

// Rec. 2020 constants, from ITU-R BT.2020-2 at double precision.
const (
	rec2020Alpha = 1.09929682680944
	rec2020Beta  = 0.018053968510807
)

func rec2020ToLinear(v float64) float64 {
	abs := math.Abs(v)
	if abs < rec2020Beta*4.5 {
		return v / 4.5
	}
	return math.Copysign(math.Pow((abs+rec2020Alpha-1)/rec2020Alpha, 1/0.45), v)
}

func rec2020FromLinear(v float64) float64 {
	abs := math.Abs(v)
	if abs > rec2020Beta {
		return math.Copysign(rec2020Alpha*math.Pow(abs, 0.45)-(rec2020Alpha-1), v)
	}
	return v * 4.5
}

// toLinear converts one stored channel value to the space's linear frame.
// Identity for spaces that are already linear (srgb-linear, xyz, lms).
func (s Space) toLinear(v float64) float64 {
	switch s {
	case SpaceRGB:
		return srgbToLinear(v / 255)
	case SpaceSRGB:
		return srgbToLinear(v)
	case SpaceDisplayP3:
		return srgbToLinear(v)
	case SpaceA98RGB:
		return a98ToLinear(v)
	case SpaceProPhotoRGB:
		return prophotoToLinear(v)
	case SpaceRec2020:
		return rec2020ToLinear(v)
	default:
		return v
	}
}

// fromLinear converts one linear-frame value to the space's stored form.
func (s Space) fromLinear(v float64) float64 {
	switch s {
	case SpaceRGB:
		return srgbFromLinear(v) * 255
	case SpaceSRGB:
		return srgbFromLinear(v)
	case SpaceDisplayP3:
		return srgbFromLinear(v)
	case SpaceA98RGB:
		return a98FromLinear(v)
	case SpaceProPhotoRGB:
		return prophotoFromLinear(v)
	case SpaceRec2020:
		return rec2020FromLinear(v)
	default:
		return v
	}
}
