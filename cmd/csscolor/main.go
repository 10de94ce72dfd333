// Command csscolor converts, mixes and gamut-maps CSS colors from the
// terminal, and previews gamut damage on images.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	"image/png"
	"math"
	"os"
	"path/filepath"

	"github.com/nfnt/resize"

	"github.com/csskit/csscolor"
	"github.com/csskit/csscolor/internal/csstext"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "convert":
		if err := runConvert(os.Args[2:]); err != nil {
			fail(err)
		}
	case "mix":
		if err := runMix(os.Args[2:]); err != nil {
			fail(err)
		}
	case "gamut":
		if err := runGamut(os.Args[2:]); err != nil {
			fail(err)
		}
	case "spaces":
		runSpaces()
	case "image":
		if err := runImage(os.Args[2:]); err != nil {
			fail(err)
		}
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: csscolor <command> [args]")
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  convert -c <color> -to <space> [-gamut clip|local-minde]")
	fmt.Fprintln(os.Stderr, "  mix     -a <color> -b <color> [-space <space>] [-hue shorter|longer|increasing|decreasing|specified] [-w 0.5]")
	fmt.Fprintln(os.Stderr, "  gamut   -c <color> [-space <space>] [-method clip|local-minde]")
	fmt.Fprintln(os.Stderr, "  spaces")
	fmt.Fprintln(os.Stderr, "  image   -in in.png -out out.png -space <bounded space> [-method clip|local-minde] [-max-width N]")
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "csscolor:", err)
	os.Exit(1)
}

func runConvert(args []string) error {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	colorArg := fs.String("c", "", "input color (CSS literal)")
	toArg := fs.String("to", "", "destination space")
	gamutArg := fs.String("gamut", "", "gamut-map the result (clip or local-minde)")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *colorArg == "" || *toArg == "" {
		return errors.New("missing required arguments")
	}
	c, err := csstext.Parse(*colorArg)
	if err != nil {
		return err
	}
	dest, err := csscolor.SpaceFromName(*toArg)
	if err != nil {
		return err
	}
	c = c.ToSpace(dest)
	if *gamutArg != "" {
		method, err := csscolor.GamutMapMethodFromName(*gamutArg)
		if err != nil {
			return err
		}
		c = c.ToGamut(method)
	}
	fmt.Println(csstext.Format(c))
	return nil
}

func runMix(args []string) error {
	fs := flag.NewFlagSet("mix", flag.ContinueOnError)
	aArg := fs.String("a", "", "first color")
	bArg := fs.String("b", "", "second color")
	spaceArg := fs.String("space", "oklab", "interpolation space")
	hueArg := fs.String("hue", "shorter", "hue interpolation method")
	weight := fs.Float64("w", 0.5, "weight of the second color, 0..1")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *aArg == "" || *bArg == "" {
		return errors.New("missing required arguments")
	}
	if *weight < 0 || *weight > 1 {
		return fmt.Errorf("weight %v outside [0,1]", *weight)
	}
	a, err := csstext.Parse(*aArg)
	if err != nil {
		return err
	}
	b, err := csstext.Parse(*bArg)
	if err != nil {
		return err
	}
	space, err := csscolor.SpaceFromName(*spaceArg)
	if err != nil {
		return err
	}
	method := csscolor.InterpolationMethod{Space: space}
	if space.IsPolar() {
		method.Hue, err = csscolor.HueMethodFromName(*hueArg)
		if err != nil {
			return err
		}
	}
	fmt.Println(csstext.Format(csscolor.Interpolate(a, b, method, *weight)))
	return nil
}

func runGamut(args []string) error {
	fs := flag.NewFlagSet("gamut", flag.ContinueOnError)
	colorArg := fs.String("c", "", "input color")
	spaceArg := fs.String("space", "", "gamut to map into (defaults to the color's space)")
	methodArg := fs.String("method", "local-minde", "gamut map method")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *colorArg == "" {
		return errors.New("missing required arguments")
	}
	c, err := csstext.Parse(*colorArg)
	if err != nil {
		return err
	}
	if *spaceArg != "" {
		space, err := csscolor.SpaceFromName(*spaceArg)
		if err != nil {
			return err
		}
		c = c.ToSpace(space)
	}
	method, err := csscolor.GamutMapMethodFromName(*methodArg)
	if err != nil {
		return err
	}
	if c.InGamut() {
		fmt.Printf("in gamut: %s\n", csstext.Format(c))
		return nil
	}
	fmt.Printf("out of gamut: %s\n", csstext.Format(c))
	fmt.Printf("mapped (%s): %s\n", method, csstext.Format(c.ToGamut(method)))
	return nil
}

func runSpaces() {
	for _, name := range []string{
		"rgb", "hsl", "hwb",
		"srgb", "srgb-linear", "display-p3", "a98-rgb", "prophoto-rgb", "rec2020",
		"xyz-d65", "xyz-d50", "lab", "lch", "oklab", "oklch",
	} {
		space, _ := csscolor.SpaceFromName(name)
		fmt.Printf("%-12s", name)
		for _, ch := range space.Channels() {
			if ch.Polar {
				fmt.Printf("  %s (deg)", ch.Name)
			} else {
				fmt.Printf("  %s [%g..%g]%s", ch.Name, ch.Min, ch.Max, ch.AssociatedUnit)
			}
		}
		switch {
		case space.IsLegacy():
			fmt.Print("  (legacy)")
		case !space.IsBounded():
			fmt.Print("  (unbounded)")
		}
		fmt.Println()
	}
}

// runImage reinterprets the pixels of an sRGB image as coordinates in a
// wider bounded space, renders them back to sRGB and gamut-maps the result.
// Side-by-side clip vs local-minde output shows what each method destroys.
func runImage(args []string) error {
	fs := flag.NewFlagSet("image", flag.ContinueOnError)
	inPath := fs.String("in", "", "input PNG or JPEG")
	outPath := fs.String("out", "", "output PNG")
	spaceArg := fs.String("space", "display-p3", "bounded space to reinterpret pixels in")
	methodArg := fs.String("method", "local-minde", "gamut map method")
	maxWidth := fs.Int("max-width", 0, "downscale to this width first")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *inPath == "" || *outPath == "" {
		return errors.New("missing required arguments")
	}
	space, err := csscolor.SpaceFromName(*spaceArg)
	if err != nil {
		return err
	}
	if !space.IsBounded() || space.IsLegacy() {
		return fmt.Errorf("space %s is not a bounded modern space", space)
	}
	method, err := csscolor.GamutMapMethodFromName(*methodArg)
	if err != nil {
		return err
	}

	f, err := os.Open(filepath.Clean(*inPath))
	if err != nil {
		return err
	}
	img, _, err := image.Decode(f)
	f.Close()
	if err != nil {
		return err
	}
	if *maxWidth > 0 && img.Bounds().Dx() > *maxWidth {
		img = resize.Resize(uint(*maxWidth), 0, img, resize.Lanczos3)
	}

	bounds := img.Bounds()
	out := image.NewNRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			c := csscolor.New(space,
				csscolor.Num(float64(r)/65535),
				csscolor.Num(float64(g)/65535),
				csscolor.Num(float64(b)/65535),
				csscolor.Num(float64(a)/65535))
			mapped := c.ToSpace(csscolor.SpaceSRGB).ToGamut(method)
			out.Set(x, y, nrgbaOf(mapped))
		}
	}

	o, err := os.Create(filepath.Clean(*outPath))
	if err != nil {
		return err
	}
	if err := png.Encode(o, out); err != nil {
		o.Close()
		return err
	}
	return o.Close()
}

func nrgbaOf(c csscolor.Color) color.NRGBA {
	byteOf := func(i int) uint8 {
		v, _ := c.Channel(i)
		return uint8(math.Round(clamp01(v) * 255))
	}
	a, ok := c.Alpha()
	if !ok {
		a = 1
	}
	return color.NRGBA{
		R: byteOf(0),
		G: byteOf(1),
		B: byteOf(2),
		A: uint8(math.Round(clamp01(a) * 255)),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
