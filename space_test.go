package csscolor

import (
	"errors"
	"testing"
)

func TestSpaceFromName(t *testing.T) {
	tests := []struct {
		name string
		want Space
	}{
		{"rgb", SpaceRGB},
		{"hsl", SpaceHSL},
		{"hwb", SpaceHWB},
		{"srgb", SpaceSRGB},
		{"srgb-linear", SpaceSRGBLinear},
		{"display-p3", SpaceDisplayP3},
		{"a98-rgb", SpaceA98RGB},
		{"prophoto-rgb", SpaceProPhotoRGB},
		{"rec2020", SpaceRec2020},
		{"xyz-d65", SpaceXYZD65},
		{"xyz-d50", SpaceXYZD50},
		{"lab", SpaceLab},
		{"lch", SpaceLCH},
		{"oklab", SpaceOklab},
		{"oklch", SpaceOklch},
		{"Display-P3", SpaceDisplayP3},
		{"OKLCH", SpaceOklch},
	}
	for _, tt := range tests {
		got, err := SpaceFromName(tt.name)
		if err != nil {
			t.Errorf("SpaceFromName(%q): %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("SpaceFromName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestSpaceFromNameUnknown(t *testing.T) {
	for _, name := range []string{"", "cmyk", "lms", "rgb "} {
		_, err := SpaceFromName(name)
		var unknown *UnknownSpaceError
		if !errors.As(err, &unknown) {
			t.Errorf("SpaceFromName(%q) error = %v, want UnknownSpaceError", name, err)
			continue
		}
		if unknown.Name != name {
			t.Errorf("error names %q, want %q", unknown.Name, name)
		}
	}
}

func TestPolarSpacesHaveExactlyOneHue(t *testing.T) {
	for s := SpaceRGB; s < spaceLMS; s++ {
		hues := 0
		for _, ch := range s.Channels() {
			if ch.Polar {
				hues++
				if ch.Name != "hue" {
					t.Errorf("%s: polar channel named %q, want \"hue\"", s, ch.Name)
				}
			}
		}
		if s.IsPolar() && hues != 1 {
			t.Errorf("%s: polar space has %d hue channels", s, hues)
		}
		if !s.IsPolar() && hues != 0 {
			t.Errorf("%s: rectangular space has %d hue channels", s, hues)
		}
	}
}

func TestHueIndexPerSpace(t *testing.T) {
	tests := []struct {
		space Space
		want  int
	}{
		{SpaceHSL, 0},
		{SpaceHWB, 0},
		{SpaceLCH, 2},
		{SpaceOklch, 2},
		{SpaceSRGB, -1},
		{SpaceLab, -1},
	}
	for _, tt := range tests {
		if got := tt.space.hueIndex(); got != tt.want {
			t.Errorf("%s hueIndex = %d, want %d", tt.space, got, tt.want)
		}
	}
}

func TestSpaceFlags(t *testing.T) {
	for s := SpaceRGB; s < spaceLMS; s++ {
		if s.IsStrictlyBounded() && !s.IsBounded() {
			t.Errorf("%s: strictly bounded but not bounded", s)
		}
		if s.IsLegacy() && !s.IsBounded() {
			t.Errorf("%s: legacy space must be bounded", s)
		}
	}
	if !SpaceHWB.IsStrictlyBounded() {
		t.Error("hwb should be strictly bounded")
	}
	for _, s := range []Space{SpaceLab, SpaceLCH, SpaceOklab, SpaceOklch, SpaceXYZD65, SpaceXYZD50} {
		if s.IsBounded() {
			t.Errorf("%s should be unbounded", s)
		}
	}
}

func TestTransformationMatrixInverses(t *testing.T) {
	// Every derived pair must cancel to identity.
	pairs := [][2]Space{
		{SpaceSRGB, SpaceXYZD65},
		{SpaceDisplayP3, SpaceXYZD65},
		{SpaceA98RGB, SpaceXYZD65},
		{SpaceRec2020, SpaceXYZD65},
		{SpaceProPhotoRGB, SpaceXYZD50},
		{SpaceXYZD65, SpaceXYZD50},
		{SpaceSRGB, spaceLMS},
		{SpaceSRGB, SpaceDisplayP3},
	}
	for _, p := range pairs {
		fwd := p[0].transformationMatrix(p[1])
		back := p[1].transformationMatrix(p[0])
		prod := back.mul(fwd)
		for i, v := range prod {
			want := 0.0
			if i%4 == 0 {
				want = 1
			}
			if diff := v - want; diff > 1e-12 || diff < -1e-12 {
				t.Errorf("%s<->%s: product[%d] = %v, want %v", p[0], p[1], i, v, want)
			}
		}
	}
}
