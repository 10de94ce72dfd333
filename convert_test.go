package csscolor

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func rgbColor(r, g, b float64) Color {
	return New(SpaceSRGB, Num(r), Num(g), Num(b), Num(1))
}

func channelValues(c Color) []float64 {
	c0, _ := c.Channel(0)
	c1, _ := c.Channel(1)
	c2, _ := c.Channel(2)
	return []float64{c0, c1, c2}
}

func TestRoundTripThroughEverySpace(t *testing.T) {
	spaces := []Space{
		SpaceRGB, SpaceHSL, SpaceHWB,
		SpaceSRGBLinear, SpaceDisplayP3, SpaceA98RGB, SpaceProPhotoRGB, SpaceRec2020,
		SpaceXYZD65, SpaceXYZD50, SpaceLab, SpaceLCH, SpaceOklab, SpaceOklch,
	}
	colors := []Color{
		rgbColor(0.2, 0.4, 0.6),
		rgbColor(1, 0, 0),
		rgbColor(0.5, 0.5, 0.5),
		rgbColor(0.9, 0.05, 0.7),
		rgbColor(0.01, 0.99, 0.3),
	}
	for _, space := range spaces {
		t.Run(space.Name(), func(t *testing.T) {
			for _, c := range colors {
				back := c.ToSpace(space).ToSpace(SpaceSRGB)
				if diff := cmp.Diff(channelValues(c), channelValues(back),
					cmpopts.EquateApprox(0, 1e-6)); diff != "" {
					t.Errorf("round trip through %s changed the color (-want +got):\n%s",
						space.Name(), diff)
				}
			}
		})
	}
}

func TestConvertKnownValues(t *testing.T) {
	tests := []struct {
		name string
		in   Color
		dest Space
		want []float64
		tol  float64
	}{
		{
			name: "red to xyz-d65",
			in:   rgbColor(1, 0, 0),
			dest: SpaceXYZD65,
			want: []float64{0.4123908, 0.2126390, 0.0193308},
			tol:  1e-6,
		},
		{
			name: "red to xyz-d50",
			in:   rgbColor(1, 0, 0),
			dest: SpaceXYZD50,
			want: []float64{0.43607, 0.22249, 0.01392},
			tol:  1e-3,
		},
		{
			name: "red to lab",
			in:   rgbColor(1, 0, 0),
			dest: SpaceLab,
			want: []float64{54.29, 80.81, 69.89},
			tol:  0.05,
		},
		{
			name: "red to oklch",
			in:   rgbColor(1, 0, 0),
			dest: SpaceOklch,
			want: []float64{0.62796, 0.25768, 29.234},
			tol:  0.05,
		},
		{
			name: "white to oklab",
			in:   rgbColor(1, 1, 1),
			dest: SpaceOklab,
			want: []float64{1, 0, 0},
			tol:  1e-4,
		},
		{
			name: "red to hsl",
			in:   New(SpaceRGB, Num(255), Num(0), Num(0), Num(1)),
			dest: SpaceHSL,
			want: []float64{0, 100, 50},
			tol:  1e-9,
		},
		{
			name: "green hsl to srgb",
			in:   New(SpaceHSL, Num(120), Num(100), Num(50), Num(1)),
			dest: SpaceSRGB,
			want: []float64{0, 1, 0},
			tol:  1e-9,
		},
		{
			name: "hwb to srgb",
			in:   New(SpaceHWB, Num(120), Num(20), Num(30), Num(1)),
			dest: SpaceSRGB,
			want: []float64{0.2, 0.7, 0.2},
			tol:  1e-9,
		},
		{
			name: "achromatic hwb normalizes",
			in:   New(SpaceHWB, Num(0), Num(80), Num(80), Num(1)),
			dest: SpaceSRGB,
			want: []float64{0.5, 0.5, 0.5},
			tol:  1e-9,
		},
		{
			name: "gray to hwb",
			in:   New(SpaceRGB, Num(128), Num(128), Num(128), Num(1)),
			dest: SpaceHWB,
			want: []float64{0, 128.0 / 255 * 100, 100 - 128.0/255*100},
			tol:  1e-9,
		},
		{
			name: "srgb to srgb-linear",
			in:   rgbColor(0.5, 0.5, 0.5),
			dest: SpaceSRGBLinear,
			want: []float64{0.21404114, 0.21404114, 0.21404114},
			tol:  1e-6,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.ToSpace(tt.dest)
			if got.Space() != tt.dest {
				t.Fatalf("result space = %s, want %s", got.Space(), tt.dest)
			}
			if diff := cmp.Diff(tt.want, channelValues(got),
				cmpopts.EquateApprox(0, tt.tol)); diff != "" {
				t.Errorf("unexpected channels (-want +got):\n%s", diff)
			}
		})
	}
}

func TestConvertToOwnSpaceIsNoOp(t *testing.T) {
	c := New(SpaceOklch, Num(0.7), nil, Num(120), Num(0.5))
	got := c.ToSpace(SpaceOklch)
	if got != c {
		t.Errorf("ToSpace(own space) = %+v, want %+v", got, c)
	}
}

func TestConvertAlphaPassesThrough(t *testing.T) {
	c := New(SpaceSRGB, Num(0.1), Num(0.2), Num(0.3), Num(0.25))
	got := c.ToSpace(SpaceLab)
	if a, ok := got.Alpha(); !ok || a != 0.25 {
		t.Errorf("alpha = %v, %v; want 0.25, true", a, ok)
	}

	noAlpha := New(SpaceSRGB, Num(0.1), Num(0.2), Num(0.3), nil)
	if _, ok := noAlpha.ToSpace(SpaceLab).Alpha(); ok {
		t.Error("missing alpha should stay missing after conversion")
	}
}

func TestMissingChannelCarryForward(t *testing.T) {
	tests := []struct {
		name        string
		in          Color
		dest        Space
		wantMissing [3]bool
	}{
		{
			name:        "oklch missing lightness to lch",
			in:          New(SpaceOklch, nil, Num(0.1), Num(120), Num(1)),
			dest:        SpaceLCH,
			wantMissing: [3]bool{true, false, false},
		},
		{
			name:        "oklch missing hue to lch",
			in:          New(SpaceOklch, Num(0.5), Num(0.1), nil, Num(1)),
			dest:        SpaceLCH,
			wantMissing: [3]bool{false, false, true},
		},
		{
			name:        "oklch missing hue to oklab drops",
			in:          New(SpaceOklch, Num(0.5), Num(0.1), nil, Num(1)),
			dest:        SpaceOklab,
			wantMissing: [3]bool{false, false, false},
		},
		{
			name:        "lch chroma to hsl saturation",
			in:          New(SpaceLCH, Num(50), nil, Num(30), Num(1)),
			dest:        SpaceHSL,
			wantMissing: [3]bool{false, true, false},
		},
		{
			name:        "xyz x to srgb red",
			in:          New(SpaceXYZD65, nil, Num(0.5), Num(0.5), Num(1)),
			dest:        SpaceSRGB,
			wantMissing: [3]bool{true, false, false},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.ToSpace(tt.dest)
			for i := 0; i < 3; i++ {
				v, present := got.Channel(i)
				if present != !tt.wantMissing[i] {
					t.Errorf("channel %d present = %v, want %v", i, present, !tt.wantMissing[i])
				}
				if tt.wantMissing[i] && v != 0 {
					t.Errorf("missing channel %d carries value %v, want 0", i, v)
				}
			}
		})
	}
}

func TestAchromaticColorStaysWellFormed(t *testing.T) {
	// Grays land on the polar axis: chroma collapses and the hue, while
	// numerically arbitrary, must still be a finite angle rather than NaN.
	got := rgbColor(0.5, 0.5, 0.5).ToSpace(SpaceLCH)
	if c, _ := got.Channel(1); c > 1e-6 {
		t.Errorf("achromatic chroma = %v, want ~0", c)
	}
	h, present := got.Channel(2)
	if !present || math.IsNaN(h) {
		t.Errorf("achromatic hue = %v (present %v), want a finite angle", h, present)
	}

	// The exact-zero case maps to hue 0 via atan2(0, 0).
	if _, c, h := labToLCH(50, 0, 0); c != 0 || h != 0 {
		t.Errorf("labToLCH(50, 0, 0) = chroma %v, hue %v; want 0, 0", c, h)
	}
}

func BenchmarkToSpaceOklch(b *testing.B) {
	c := rgbColor(0.2, 0.4, 0.6)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = c.ToSpace(SpaceOklch)
	}
}
