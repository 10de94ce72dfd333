// Package csstext parses and serializes the subset of the CSS color literal
// grammar needed to drive the conversion engine from a command line: hex
// forms, named colors, and the legacy and modern functional syntaxes with
// "none", percentages and hue angle units.
package csstext

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/csskit/csscolor"
)

// Parse reads a CSS color literal.
func Parse(text string) (csscolor.Color, error) {
	s := strings.TrimSpace(strings.ToLower(text))
	if s == "" {
		return csscolor.Color{}, fmt.Errorf("empty color")
	}
	if s[0] == '#' {
		return parseHex(s[1:])
	}
	if i := strings.IndexByte(s, '('); i >= 0 {
		if !strings.HasSuffix(s, ")") {
			return csscolor.Color{}, fmt.Errorf("malformed color %q", text)
		}
		return parseFunction(s[:i], s[i+1:len(s)-1])
	}
	return parseNamed(s)
}

func parseNamed(name string) (csscolor.Color, error) {
	switch name {
	case "transparent":
		return csscolor.New(csscolor.SpaceRGB, csscolor.Num(0), csscolor.Num(0), csscolor.Num(0), csscolor.Num(0)), nil
	case "rebeccapurple":
		// CSS Color 4 addition, absent from the SVG 1.1 table.
		return rgbByte(102, 51, 153, 255), nil
	}
	if c, ok := colornames.Map[name]; ok {
		return rgbByte(c.R, c.G, c.B, c.A), nil
	}
	return csscolor.Color{}, fmt.Errorf("unknown color name %q", name)
}

func rgbByte(r, g, b, a uint8) csscolor.Color {
	return csscolor.New(csscolor.SpaceRGB,
		csscolor.Num(float64(r)), csscolor.Num(float64(g)), csscolor.Num(float64(b)),
		csscolor.Num(float64(a)/255))
}

func parseHex(hex string) (csscolor.Color, error) {
	var digits [8]uint8
	if len(hex) > 8 {
		return csscolor.Color{}, fmt.Errorf("hex color #%s too long", hex)
	}
	for i := 0; i < len(hex); i++ {
		c := hex[i]
		switch {
		case c >= '0' && c <= '9':
			digits[i] = c - '0'
		case c >= 'a' && c <= 'f':
			digits[i] = c - 'a' + 10
		default:
			return csscolor.Color{}, fmt.Errorf("invalid hex color #%s", hex)
		}
	}
	switch len(hex) {
	case 3, 4:
		a := uint8(255)
		if len(hex) == 4 {
			a = digits[3] * 17
		}
		return rgbByte(digits[0]*17, digits[1]*17, digits[2]*17, a), nil
	case 6, 8:
		a := uint8(255)
		if len(hex) == 8 {
			a = digits[6]<<4 | digits[7]
		}
		return rgbByte(digits[0]<<4|digits[1], digits[2]<<4|digits[3], digits[4]<<4|digits[5], a), nil
	}
	return csscolor.Color{}, fmt.Errorf("invalid hex color #%s", hex)
}

func parseFunction(name, args string) (csscolor.Color, error) {
	// Legacy comma syntax folds into the modern whitespace syntax.
	args = strings.ReplaceAll(args, ",", " ")

	body, alphaPart, hasAlpha := strings.Cut(args, "/")
	fields := strings.Fields(body)

	var space csscolor.Space
	switch name {
	case "rgb", "rgba":
		space = csscolor.SpaceRGB
	case "hsl", "hsla":
		space = csscolor.SpaceHSL
	case "hwb":
		space = csscolor.SpaceHWB
	case "lab":
		space = csscolor.SpaceLab
	case "lch":
		space = csscolor.SpaceLCH
	case "oklab":
		space = csscolor.SpaceOklab
	case "oklch":
		space = csscolor.SpaceOklch
	case "color":
		if len(fields) == 0 {
			return csscolor.Color{}, fmt.Errorf("color() needs a space name")
		}
		spaceName := fields[0]
		if spaceName == "xyz" {
			spaceName = "xyz-d65"
		}
		var err error
		space, err = csscolor.SpaceFromName(spaceName)
		if err != nil {
			return csscolor.Color{}, err
		}
		fields = fields[1:]
	default:
		return csscolor.Color{}, fmt.Errorf("unknown color function %q", name)
	}

	// Legacy 4-argument form: rgb(r g b a) after comma folding.
	if !hasAlpha && len(fields) == 4 && (name == "rgb" || name == "rgba" || name == "hsl" || name == "hsla") {
		alphaPart, hasAlpha = fields[3], true
		fields = fields[:3]
	}
	if len(fields) != 3 {
		return csscolor.Color{}, fmt.Errorf("%s() needs 3 channel values, got %d", name, len(fields))
	}

	chans := space.Channels()
	var vals [3]*float64
	for i, f := range fields {
		v, err := parseChannel(f, chans[i])
		if err != nil {
			return csscolor.Color{}, err
		}
		vals[i] = v
	}

	alpha := csscolor.Num(1)
	if hasAlpha {
		var err error
		alpha, err = parseAlpha(strings.TrimSpace(alphaPart))
		if err != nil {
			return csscolor.Color{}, err
		}
	}
	return csscolor.New(space, vals[0], vals[1], vals[2], alpha), nil
}

// parseChannel reads one channel token. Percentages scale against the
// channel's reference maximum, so "50%" is 50 for hsl saturation, 127.5 for
// an rgb byte and 0.2 for oklch chroma.
func parseChannel(tok string, ch csscolor.Channel) (*float64, error) {
	if tok == "none" {
		return nil, nil
	}
	if ch.Polar {
		h, err := parseAngle(tok)
		if err != nil {
			return nil, err
		}
		return csscolor.Num(h), nil
	}
	if strings.HasSuffix(tok, "%") {
		v, err := strconv.ParseFloat(tok[:len(tok)-1], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid percentage %q", tok)
		}
		return csscolor.Num(v / 100 * ch.Max), nil
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid number %q", tok)
	}
	if ch.RequiresPercent {
		return nil, fmt.Errorf("channel %s requires a percentage, got %q", ch.Name, tok)
	}
	return csscolor.Num(v), nil
}

func parseAngle(tok string) (float64, error) {
	scale := 1.0
	switch {
	case strings.HasSuffix(tok, "deg"):
		tok = tok[:len(tok)-3]
	case strings.HasSuffix(tok, "grad"):
		tok, scale = tok[:len(tok)-4], 360.0/400.0
	case strings.HasSuffix(tok, "rad"):
		tok, scale = tok[:len(tok)-3], 180.0/math.Pi
	case strings.HasSuffix(tok, "turn"):
		tok, scale = tok[:len(tok)-4], 360.0
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid hue %q", tok)
	}
	return v * scale, nil
}

func parseAlpha(tok string) (*float64, error) {
	if tok == "none" {
		return nil, nil
	}
	if strings.HasSuffix(tok, "%") {
		v, err := strconv.ParseFloat(tok[:len(tok)-1], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid alpha %q", tok)
		}
		return csscolor.Num(v / 100), nil
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid alpha %q", tok)
	}
	return csscolor.Num(v), nil
}

// Format serializes a color as a canonical CSS literal.
func Format(c csscolor.Color) string {
	space := c.Space()
	chans := space.Channels()

	var parts [3]string
	for i := range parts {
		v, ok := c.Channel(i)
		if !ok {
			parts[i] = "none"
			continue
		}
		parts[i] = fmtNum(v) + chans[i].AssociatedUnit
	}

	suffix := ""
	if a, ok := c.Alpha(); !ok {
		suffix = " / none"
	} else if a != 1 {
		suffix = " / " + fmtNum(a)
	}

	body := parts[0] + " " + parts[1] + " " + parts[2] + suffix
	switch space {
	case csscolor.SpaceRGB, csscolor.SpaceHSL, csscolor.SpaceHWB,
		csscolor.SpaceLab, csscolor.SpaceLCH, csscolor.SpaceOklab, csscolor.SpaceOklch:
		return space.Name() + "(" + body + ")"
	}
	return "color(" + space.Name() + " " + body + ")"
}

func fmtNum(v float64) string {
	r := math.Round(v*1e6) / 1e6
	if r == 0 {
		r = 0 // avoid "-0"
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}
