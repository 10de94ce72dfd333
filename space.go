package csscolor

import "strings"

// Space identifies a color space in the fixed registry. Space values are
// process-wide constants; the zero value is SpaceRGB.
type Space int

const (
	// Legacy spaces.
	SpaceRGB Space = iota
	SpaceHSL
	SpaceHWB

	// Predefined RGB spaces.
	SpaceSRGB
	SpaceSRGBLinear
	SpaceDisplayP3
	SpaceA98RGB
	SpaceProPhotoRGB
	SpaceRec2020

	// CIE spaces.
	SpaceXYZD65
	SpaceXYZD50
	SpaceLab
	SpaceLCH
	SpaceOklab
	SpaceOklch

	// spaceLMS is the internal hub for oklab/oklch. It is not addressable
	// by name and never appears in a returned Color.
	spaceLMS

	numSpaces
)

type spaceInfo struct {
	name            string
	channels        [3]Channel
	bounded         bool
	strictlyBounded bool
	legacy          bool
	polar           bool
}

var spaceTable = [numSpaces]spaceInfo{
	SpaceRGB: {
		name: "rgb",
		channels: [3]Channel{
			{Name: "red", Min: 0, Max: 255, LowerClamped: true, UpperClamped: true},
			{Name: "green", Min: 0, Max: 255, LowerClamped: true, UpperClamped: true},
			{Name: "blue", Min: 0, Max: 255, LowerClamped: true, UpperClamped: true},
		},
		bounded: true,
		legacy:  true,
	},
	SpaceHSL: {
		name: "hsl",
		channels: [3]Channel{
			hueChannel(),
			{Name: "saturation", Min: 0, Max: 100, RequiresPercent: true, LowerClamped: true, AssociatedUnit: "%"},
			percentChannel("lightness", 0, 100),
		},
		bounded: true,
		legacy:  true,
		polar:   true,
	},
	SpaceHWB: {
		name: "hwb",
		channels: [3]Channel{
			hueChannel(),
			percentChannel("whiteness", 0, 100),
			percentChannel("blackness", 0, 100),
		},
		bounded:         true,
		strictlyBounded: true,
		legacy:          true,
		polar:           true,
	},
	SpaceSRGB: {
		name: "srgb",
		channels: [3]Channel{
			linearChannel("red", 0, 1),
			linearChannel("green", 0, 1),
			linearChannel("blue", 0, 1),
		},
		bounded: true,
	},
	SpaceSRGBLinear: {
		name: "srgb-linear",
		channels: [3]Channel{
			linearChannel("red", 0, 1),
			linearChannel("green", 0, 1),
			linearChannel("blue", 0, 1),
		},
		bounded: true,
	},
	SpaceDisplayP3: {
		name: "display-p3",
		channels: [3]Channel{
			linearChannel("red", 0, 1),
			linearChannel("green", 0, 1),
			linearChannel("blue", 0, 1),
		},
		bounded: true,
	},
	SpaceA98RGB: {
		name: "a98-rgb",
		channels: [3]Channel{
			linearChannel("red", 0, 1),
			linearChannel("green", 0, 1),
			linearChannel("blue", 0, 1),
		},
		bounded: true,
	},
	SpaceProPhotoRGB: {
		name: "prophoto-rgb",
		channels: [3]Channel{
			linearChannel("red", 0, 1),
			linearChannel("green", 0, 1),
			linearChannel("blue", 0, 1),
		},
		bounded: true,
	},
	SpaceRec2020: {
		name: "rec2020",
		channels: [3]Channel{
			linearChannel("red", 0, 1),
			linearChannel("green", 0, 1),
			linearChannel("blue", 0, 1),
		},
		bounded: true,
	},
	SpaceXYZD65: {
		name: "xyz-d65",
		channels: [3]Channel{
			linearChannel("x", 0, 1),
			linearChannel("y", 0, 1),
			linearChannel("z", 0, 1),
		},
	},
	SpaceXYZD50: {
		name: "xyz-d50",
		channels: [3]Channel{
			linearChannel("x", 0, 1),
			linearChannel("y", 0, 1),
			linearChannel("z", 0, 1),
		},
	},
	SpaceLab: {
		name: "lab",
		channels: [3]Channel{
			{Name: "lightness", Min: 0, Max: 100, LowerClamped: true, UpperClamped: true},
			linearChannel("a", -125, 125),
			linearChannel("b", -125, 125),
		},
	},
	SpaceLCH: {
		name: "lch",
		channels: [3]Channel{
			{Name: "lightness", Min: 0, Max: 100, LowerClamped: true, UpperClamped: true},
			{Name: "chroma", Min: 0, Max: 150, LowerClamped: true},
			hueChannel(),
		},
		polar: true,
	},
	SpaceOklab: {
		name: "oklab",
		channels: [3]Channel{
			{Name: "lightness", Min: 0, Max: 1, LowerClamped: true, UpperClamped: true},
			linearChannel("a", -0.4, 0.4),
			linearChannel("b", -0.4, 0.4),
		},
	},
	SpaceOklch: {
		name: "oklch",
		channels: [3]Channel{
			{Name: "lightness", Min: 0, Max: 1, LowerClamped: true, UpperClamped: true},
			{Name: "chroma", Min: 0, Max: 0.4, LowerClamped: true},
			hueChannel(),
		},
		polar: true,
	},
	spaceLMS: {
		name: "lms",
		channels: [3]Channel{
			linearChannel("long", 0, 1),
			linearChannel("medium", 0, 1),
			linearChannel("short", 0, 1),
		},
	},
}

// SpaceFromName looks up a space by name, case-insensitively. The internal
// lms space is not addressable.
func SpaceFromName(name string) (Space, error) {
	lower := strings.ToLower(name)
	for s := SpaceRGB; s < spaceLMS; s++ {
		if spaceTable[s].name == lower {
			return s, nil
		}
	}
	return 0, &UnknownSpaceError{Name: name}
}

// Name returns the space's name as used in CSS.
func (s Space) Name() string { return spaceTable[s].name }

func (s Space) String() string { return spaceTable[s].name }

// Channels returns the space's channel metadata, in channel order.
func (s Space) Channels() [3]Channel { return spaceTable[s].channels }

// IsBounded reports whether the space has a meaningful gamut.
func (s Space) IsBounded() bool { return spaceTable[s].bounded }

// IsStrictlyBounded reports whether out-of-range channel values are invalid
// rather than merely out of gamut. Construction clamps channels in strictly
// bounded spaces.
func (s Space) IsStrictlyBounded() bool { return spaceTable[s].strictlyBounded }

// IsLegacy reports whether the space is a legacy CSS space (rgb, hsl, hwb).
func (s Space) IsLegacy() bool { return spaceTable[s].legacy }

// IsPolar reports whether the space has a hue channel.
func (s Space) IsPolar() bool { return spaceTable[s].polar }

// hueIndex returns the index of the hue channel, or -1 for rectangular
// spaces. Legacy polar spaces put hue first; lch and oklch put it last.
func (s Space) hueIndex() int {
	for i, ch := range spaceTable[s].channels {
		if ch.Polar {
			return i
		}
	}
	return -1
}

// channelIndex resolves a channel name on this space.
func (s Space) channelIndex(name string) int {
	for i, ch := range spaceTable[s].channels {
		if ch.Name == name {
			return i
		}
	}
	return -1
}
