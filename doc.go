// Package csscolor implements the CSS Color Level 4 color value model:
// conversion between the legacy (rgb, hsl, hwb), predefined RGB (srgb,
// srgb-linear, display-p3, a98-rgb, prophoto-rgb, rec2020) and CIE
// (xyz-d65, xyz-d50, lab, lch, oklab, oklch) color spaces, gamut mapping
// (clip and perceptual local-MINDE search), and color interpolation with
// the Color 4 hue and missing-channel ("none") rules.
//
// All operations are pure functions over immutable values. Color and Space
// values carry no hidden state and may be shared freely across goroutines.
package csscolor
