package csscolor

import "math"

// hubSpace returns the linear hub a destination is reached through: srgb for
// the legacy polar spaces, xyz-d50 for lab/lch, lms for oklab/oklch, and the
// destination itself everywhere else.
func hubSpace(dest Space) Space {
	switch dest {
	case SpaceHSL, SpaceHWB:
		return SpaceSRGB
	case SpaceLab, SpaceLCH:
		return SpaceXYZD50
	case SpaceOklab, SpaceOklch:
		return spaceLMS
	}
	return dest
}

// convert routes a channel triple from s to dest. Inputs are plain numbers:
// missing channels have already been substituted with 0 and are re-attached
// by the caller (Color.ToSpace). Polar and CIE opponent sources first
// reparameterize into their hub, then the generic matrix step runs, then the
// hub applies its closed-form step toward a non-matrix destination.
func (s Space) convert(dest Space, c0, c1, c2, alpha float64, alphaMissing bool) Color {
	switch s {
	case SpaceHSL:
		if dest == SpaceHSL {
			break
		}
		r, g, b := hslToRGB(c0, c1, c2)
		return SpaceSRGB.convert(dest, r, g, b, alpha, alphaMissing)

	case SpaceHWB:
		if dest == SpaceHWB {
			break
		}
		r, g, b := hwbToRGB(c0, c1, c2)
		return SpaceSRGB.convert(dest, r, g, b, alpha, alphaMissing)

	case SpaceLab:
		switch dest {
		case SpaceLab:
		case SpaceLCH:
			l, c, h := labToLCH(c0, c1, c2)
			return unsafeColor(dest, l, c, h, alpha, alphaMissing)
		default:
			x, y, z := labToXYZD50(c0, c1, c2)
			return SpaceXYZD50.convert(dest, x, y, z, alpha, alphaMissing)
		}

	case SpaceLCH:
		if dest == SpaceLCH {
			break
		}
		l, a, b := lchToLab(c0, c1, c2)
		return SpaceLab.convert(dest, l, a, b, alpha, alphaMissing)

	case SpaceOklab:
		switch dest {
		case SpaceOklab:
		case SpaceOklch:
			l, c, h := labToLCH(c0, c1, c2)
			return unsafeColor(dest, l, c, h, alpha, alphaMissing)
		default:
			lms0, lms1, lms2 := oklabToLMS(c0, c1, c2)
			return spaceLMS.convert(dest, lms0, lms1, lms2, alpha, alphaMissing)
		}

	case SpaceOklch:
		if dest == SpaceOklch {
			break
		}
		l, a, b := lchToLab(c0, c1, c2)
		return SpaceOklab.convert(dest, l, a, b, alpha, alphaMissing)
	}

	if s == dest {
		return unsafeColor(dest, c0, c1, c2, alpha, alphaMissing)
	}

	// s is matrix-connected from here on.
	linDest := hubSpace(dest)
	if s != linDest {
		l0 := s.toLinear(c0)
		l1 := s.toLinear(c1)
		l2 := s.toLinear(c2)
		t0, t1, t2 := s.transformationMatrix(linDest).apply(l0, l1, l2)
		c0 = linDest.fromLinear(t0)
		c1 = linDest.fromLinear(t1)
		c2 = linDest.fromLinear(t2)
		if dest == linDest {
			return unsafeColor(dest, c0, c1, c2, alpha, alphaMissing)
		}
	}

	// Values are now in linDest's coordinates and dest hangs off it.
	switch linDest {
	case SpaceSRGB:
		switch dest {
		case SpaceHSL:
			h, sat, l := rgbToHSL(c0, c1, c2)
			return unsafeColor(dest, h, sat, l, alpha, alphaMissing)
		case SpaceHWB:
			h, w, b := rgbToHWB(c0, c1, c2)
			return unsafeColor(dest, h, w, b, alpha, alphaMissing)
		}

	case SpaceXYZD50:
		l, a, b := xyzD50ToLab(c0, c1, c2)
		if dest == SpaceLab {
			return unsafeColor(dest, l, a, b, alpha, alphaMissing)
		}
		lt, c, h := labToLCH(l, a, b)
		return unsafeColor(SpaceLCH, lt, c, h, alpha, alphaMissing)

	case spaceLMS:
		l, a, b := lmsToOklab(c0, c1, c2)
		if dest == SpaceOklab {
			return unsafeColor(dest, l, a, b, alpha, alphaMissing)
		}
		lt, c, h := labToLCH(l, a, b)
		return unsafeColor(SpaceOklch, lt, c, h, alpha, alphaMissing)
	}

	return unsafeColor(dest, c0, c1, c2, alpha, alphaMissing)
}

// unsafeColor builds a Color without the strict-bounds clamping New applies.
// Conversion results are allowed out of range; clamping is the gamut
// mapper's job.
func unsafeColor(space Space, c0, c1, c2, alpha float64, alphaMissing bool) Color {
	return Color{
		space:        space,
		v:            [3]float64{c0, c1, c2},
		alpha:        alpha,
		alphaMissing: alphaMissing,
	}
}

// RGB <-> HSL, per the CSS Color 4 sample algorithms. RGB is in [0,1],
// saturation and lightness are percentages.

func rgbToHSL(r, g, b float64) (h, s, l float64) {
	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	l = (max + min) / 2
	d := max - min

	if d != 0 {
		switch {
		case l == 0 || l == 1:
			s = 0
		default:
			s = (max - l) / math.Min(l, 1-l)
		}
		switch max {
		case r:
			h = (g - b) / d
			if g < b {
				h += 6
			}
		case g:
			h = (b-r)/d + 2
		default:
			h = (r-g)/d + 4
		}
		h *= 60
	}
	return h, s * 100, l * 100
}

func hslToRGB(h, s, l float64) (r, g, b float64) {
	s /= 100
	l /= 100
	f := func(n float64) float64 {
		k := math.Mod(n+h/30, 12)
		if k < 0 {
			k += 12
		}
		a := s * math.Min(l, 1-l)
		return l - a*math.Max(-1, math.Min(math.Min(k-3, 9-k), 1))
	}
	return f(0), f(8), f(4)
}

// RGB <-> HWB. Whiteness and blackness are percentages; when they sum past
// 100% the color is an achromatic gray, normalized per CSS Color 4.

func rgbToHWB(r, g, b float64) (h, w, bk float64) {
	h, _, _ = rgbToHSL(r, g, b)
	w = math.Min(r, math.Min(g, b)) * 100
	bk = (1 - math.Max(r, math.Max(g, b))) * 100
	return h, w, bk
}

func hwbToRGB(h, w, bk float64) (r, g, b float64) {
	w /= 100
	bk /= 100
	if w+bk >= 1 {
		gray := w / (w + bk)
		return gray, gray, gray
	}
	r, g, b = hslToRGB(h, 100, 50)
	scale := 1 - w - bk
	return r*scale + w, g*scale + w, b*scale + w
}

// XYZ (D50) <-> CIE Lab.

func xyzD50ToLab(x, y, z float64) (l, a, b float64) {
	f := func(t float64) float64 {
		if t > labEpsilon {
			return math.Cbrt(t)
		}
		return (labKappa*t + 16) / 116
	}
	fx := f(x / d50WhiteX)
	fy := f(y / d50WhiteY)
	fz := f(z / d50WhiteZ)
	return 116*fy - 16, 500 * (fx - fy), 200 * (fy - fz)
}

func labToXYZD50(l, a, b float64) (x, y, z float64) {
	fy := (l + 16) / 116
	fx := a/500 + fy
	fz := fy - b/200

	x = (116*fx - 16) / labKappa
	if cube := fx * fx * fx; cube > labEpsilon {
		x = cube
	}
	y = l / labKappa
	if l > labKappa*labEpsilon {
		y = fy * fy * fy
	}
	z = (116*fz - 16) / labKappa
	if cube := fz * fz * fz; cube > labEpsilon {
		z = cube
	}
	return x * d50WhiteX, y * d50WhiteY, z * d50WhiteZ
}

// Rectangular <-> polar, shared by lab/lch and oklab/oklch. The hue of an
// achromatic color (a = b = 0) comes out as 0.

func labToLCH(l, a, b float64) (lt, c, h float64) {
	c = math.Hypot(a, b)
	h = math.Atan2(b, a) * 180 / math.Pi
	if h < 0 {
		h += 360
	}
	return l, c, h
}

func lchToLab(l, c, h float64) (lt, a, b float64) {
	rad := h * math.Pi / 180
	return l, c * math.Cos(rad), c * math.Sin(rad)
}

// Linear LMS <-> Oklab. The cube-root nonlinearity sits between the linear
// LMS hub and the M2 matrix; signs are preserved for out-of-range input.

func lmsToOklab(l, m, s float64) (float64, float64, float64) {
	return lmsPrimeToOklab.apply(math.Cbrt(l), math.Cbrt(m), math.Cbrt(s))
}

func oklabToLMS(l, a, b float64) (float64, float64, float64) {
	lp, mp, sp := oklabToLMSPrime.apply(l, a, b)
	return lp * lp * lp, mp * mp * mp, sp * sp * sp
}
