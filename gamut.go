package csscolor

import (
	"fmt"
	"math"
	"strings"
)

// GamutMapMethod selects how an out-of-gamut color is brought back in range.
// The zero value is the perceptual local-MINDE search, the CSS Color 4
// default.
type GamutMapMethod int

const (
	// GamutLocalMinde reduces OKLCH chroma by binary search until the
	// clipped result is within a just-noticeable difference of the
	// candidate.
	GamutLocalMinde GamutMapMethod = iota

	// GamutClip clamps each linear channel to its reference bounds.
	GamutClip
)

// GamutMapMethodFromName looks up a method by its CSS keyword
// ("local-minde" or "clip"), case-insensitively.
func GamutMapMethodFromName(name string) (GamutMapMethod, error) {
	switch strings.ToLower(name) {
	case "local-minde":
		return GamutLocalMinde, nil
	case "clip":
		return GamutClip, nil
	}
	return 0, fmt.Errorf("unknown gamut map method %q", name)
}

func (m GamutMapMethod) String() string {
	if m == GamutClip {
		return "clip"
	}
	return "local-minde"
}

// Map brings color into its space's gamut. Map does not shortcut for
// colors already in gamut; use Color.ToGamut for that.
func (m GamutMapMethod) Map(color Color) Color {
	if m == GamutClip {
		return gamutClip(color)
	}
	return gamutLocalMinde(color)
}

// gamutClip clamps every linear channel to its bounds. Hue and alpha are
// untouched; missing channels stay missing. Idempotent.
func gamutClip(color Color) Color {
	out := color
	for i, ch := range color.space.Channels() {
		if ch.Polar || out.missing[i] {
			continue
		}
		out.v[i] = clamp(out.v[i], ch.Min, ch.Max)
	}
	return out
}

// gamutLocalMinde maps in OKLCH: lightness outside [0,1] snaps to black or
// white, otherwise chroma is reduced by binary search until clipping the
// candidate moves it less than a just-noticeable difference.
func gamutLocalMinde(color Color) Color {
	oklch := color.ToSpace(SpaceOklch)
	lightness, _ := oklch.Channel(0)
	chroma, _ := oklch.Channel(1)
	hue, _ := oklch.Channel(2)

	if fuzzyGreaterEquals(lightness, 1) {
		return gamutAnchor(color, true)
	}
	if fuzzyLessEquals(lightness, 0) {
		return gamutAnchor(color, false)
	}

	clipped := gamutClip(color)
	if deltaEOK(clipped, color) < gamutJND {
		return clipped
	}

	min, max := 0.0, chroma
	minInGamut := true
	for max-min > gamutEpsilon {
		c := (min + max) / 2
		candidate := unsafeColor(SpaceOklch, lightness, c, hue, color.alpha, color.alphaMissing).
			ToSpace(color.space)
		if minInGamut && candidate.InGamut() {
			min = c
			continue
		}
		clipped = gamutClip(candidate)
		e := deltaEOK(clipped, candidate)
		if e < gamutJND {
			if gamutJND-e < gamutEpsilon {
				return clipped
			}
			minInGamut = false
			min = c
		} else {
			max = c
		}
	}
	return clipped
}

// gamutAnchor returns pure white or pure black in the color's space,
// keeping its alpha. Legacy spaces go through rgb so that hwb normalizes
// correctly; other bounded spaces are rgb-like with channels at their
// bounds.
func gamutAnchor(color Color, white bool) Color {
	alpha := color.alpha
	alphaMissing := color.alphaMissing
	if color.space.IsLegacy() {
		v := 0.0
		if white {
			v = 255
		}
		return unsafeColor(SpaceRGB, v, v, v, alpha, alphaMissing).ToSpace(color.space)
	}
	out := unsafeColor(color.space, 0, 0, 0, alpha, alphaMissing)
	for i, ch := range color.space.Channels() {
		if white {
			out.v[i] = ch.Max
		} else {
			out.v[i] = ch.Min
		}
	}
	return out
}

// deltaEOK is the Euclidean distance between two colors' Oklab coordinates.
// Missing channels count as 0.
func deltaEOK(a, b Color) float64 {
	oa := a.ToSpace(SpaceOklab)
	ob := b.ToSpace(SpaceOklab)
	dl := oa.v[0] - ob.v[0]
	da := oa.v[1] - ob.v[1]
	db := oa.v[2] - ob.v[2]
	return math.Sqrt(dl*dl + da*da + db*db)
}
