package csscolor

// Color is an immutable color value: a space, three channel values (each
// possibly missing, the CSS "none" marker) and a possibly-missing alpha.
// The zero value is opaque black in the legacy rgb space.
type Color struct {
	space        Space
	v            [3]float64
	missing      [3]bool
	alpha        float64
	alphaMissing bool
}

// Num returns a pointer to v, for passing literal channel values to New and
// ChangeChannels.
func Num(v float64) *float64 { return &v }

// New constructs a color in the given space. A nil channel or alpha is the
// CSS "none" missing-component marker. Alpha is clamped to [0,1]; channels
// are clamped to their reference bounds only in strictly bounded spaces.
func New(space Space, c0, c1, c2, alpha *float64) Color {
	c := Color{space: space}
	chans := space.Channels()
	for i, p := range []*float64{c0, c1, c2} {
		if p == nil {
			c.missing[i] = true
			continue
		}
		v := *p
		if space.IsStrictlyBounded() && !chans[i].Polar {
			v = clamp(v, chans[i].Min, chans[i].Max)
		}
		c.v[i] = v
	}
	if alpha == nil {
		c.alphaMissing = true
	} else {
		c.alpha = clamp(*alpha, 0, 1)
	}
	return c
}

// Space returns the color's space.
func (c Color) Space() Space { return c.space }

// IsLegacy reports whether the color is in a legacy space.
func (c Color) IsLegacy() bool { return c.space.IsLegacy() }

// Channel returns channel i (0-2) and whether it is present (not "none").
func (c Color) Channel(i int) (float64, bool) {
	return c.v[i], !c.missing[i]
}

// Alpha returns the alpha value and whether it is present.
func (c Color) Alpha() (float64, bool) {
	return c.alpha, !c.alphaMissing
}

// alphaOrDefault substitutes 1 for a missing alpha.
func (c Color) alphaOrDefault() float64 {
	if c.alphaMissing {
		return 1
	}
	return c.alpha
}

// ChannelByName returns the named channel's value and presence. The name
// "alpha" is always addressable; any other name must exist on the color's
// space or a ChannelNotFoundError is returned.
func (c Color) ChannelByName(name string) (float64, bool, error) {
	if name == "alpha" {
		v, ok := c.Alpha()
		return v, ok, nil
	}
	i := c.space.channelIndex(name)
	if i < 0 {
		return 0, false, &ChannelNotFoundError{Space: c.space, Name: name}
	}
	v, ok := c.Channel(i)
	return v, ok, nil
}

// ToSpace converts the color to dest. Converting to the color's own space
// returns the color unchanged. Missing channels take part in the arithmetic
// as 0 and are carried forward to the destination's analogous channels.
func (c Color) ToSpace(dest Space) Color {
	if dest == c.space {
		return c
	}
	c0, _ := c.Channel(0)
	c1, _ := c.Channel(1)
	c2, _ := c.Channel(2)
	out := c.space.convert(dest, c0, c1, c2, c.alpha, c.alphaMissing)

	srcChans := c.space.Channels()
	for i := range srcChans {
		if !c.missing[i] {
			continue
		}
		if j := analogousIndex(dest, srcChans[i].Name); j >= 0 {
			out.v[j] = 0
			out.missing[j] = true
		}
	}
	return out
}

// InGamut reports whether every linear channel is within its reference
// bounds, up to a small fuzz tolerance for floating-point round-trip error.
// Unbounded spaces and polar hue channels are always in gamut.
func (c Color) InGamut() bool {
	if !c.space.IsBounded() {
		return true
	}
	for i, ch := range c.space.Channels() {
		if ch.Polar || c.missing[i] {
			continue
		}
		if !fuzzyInRange(c.v[i], ch.Min, ch.Max) {
			return false
		}
	}
	return true
}

// ToGamut maps the color into its space's gamut with the given method. A
// color already in gamut is returned unchanged.
func (c Color) ToGamut(method GamutMapMethod) Color {
	if c.InGamut() {
		return c
	}
	return method.Map(c)
}

// ChangeChannels returns a copy with the named channels (or "alpha")
// overridden. A nil value sets the channel to "none". Out-of-range values
// are not clamped except in strictly bounded spaces, same as New.
func (c Color) ChangeChannels(changes map[string]*float64) (Color, error) {
	out := c
	chans := c.space.Channels()
	for name, p := range changes {
		if name == "alpha" {
			out = out.ChangeAlpha(p)
			continue
		}
		i := c.space.channelIndex(name)
		if i < 0 {
			return Color{}, &ChannelNotFoundError{Space: c.space, Name: name}
		}
		if p == nil {
			out.v[i] = 0
			out.missing[i] = true
			continue
		}
		v := *p
		if c.space.IsStrictlyBounded() && !chans[i].Polar {
			v = clamp(v, chans[i].Min, chans[i].Max)
		}
		out.v[i] = v
		out.missing[i] = false
	}
	return out, nil
}

// ChangeAlpha returns a copy with the alpha overridden; nil sets it to
// "none". Alpha is clamped to [0,1].
func (c Color) ChangeAlpha(alpha *float64) Color {
	out := c
	if alpha == nil {
		out.alpha = 0
		out.alphaMissing = true
	} else {
		out.alpha = clamp(*alpha, 0, 1)
		out.alphaMissing = false
	}
	return out
}
