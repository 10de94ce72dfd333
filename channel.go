package csscolor

// Channel describes one channel of a color space.
//
// Min and Max are the reference bounds used for percentage scaling and gamut
// checks. Unless the space is strictly bounded they are not hard limits:
// out-of-range values are merely out of gamut.
type Channel struct {
	Name string
	Min  float64
	Max  float64

	// Polar marks a hue channel, expressed as an angle in degrees. Polar
	// channels have no gamut bounds.
	Polar bool

	// RequiresPercent forbids unitless input at the function-call boundary.
	RequiresPercent bool

	// LowerClamped and UpperClamped record whether out-of-range input is
	// silently clamped by the legacy color functions. The engine itself only
	// clamps on construction in strictly bounded spaces.
	LowerClamped bool
	UpperClamped bool

	// AssociatedUnit is the unit conventionally attached to the channel when
	// serializing ("%" or empty).
	AssociatedUnit string
}

func linearChannel(name string, min, max float64) Channel {
	return Channel{Name: name, Min: min, Max: max}
}

func percentChannel(name string, min, max float64) Channel {
	return Channel{
		Name:            name,
		Min:             min,
		Max:             max,
		RequiresPercent: true,
		AssociatedUnit:  "%",
	}
}

func hueChannel() Channel {
	return Channel{Name: "hue", Polar: true}
}

// Analogous channel categories, used both for carrying missing components
// forward across conversions and for substituting missing channels during
// interpolation. Channels in the same category are analogous; hue and
// lightness are analogous only to themselves.
type channelCategory int

const (
	catNone channelCategory = iota
	catRed                  // red, x
	catGreen                // green, y
	catBlue                 // blue, z
	catLightness
	catColorfulness // chroma, saturation
	catHue
	catOpponentA
	catOpponentB
	catWhiteness
	catBlackness
)

func categoryOf(name string) channelCategory {
	switch name {
	case "red", "x":
		return catRed
	case "green", "y":
		return catGreen
	case "blue", "z":
		return catBlue
	case "lightness":
		return catLightness
	case "chroma", "saturation":
		return catColorfulness
	case "hue":
		return catHue
	case "a":
		return catOpponentA
	case "b":
		return catOpponentB
	case "whiteness":
		return catWhiteness
	case "blackness":
		return catBlackness
	}
	return catNone
}

// analogousIndex returns the index of the channel in space that is analogous
// to the named channel, or -1 if the space has none.
func analogousIndex(space Space, name string) int {
	cat := categoryOf(name)
	if cat == catNone {
		return -1
	}
	for i, ch := range space.Channels() {
		if categoryOf(ch.Name) == cat {
			return i
		}
	}
	return -1
}
