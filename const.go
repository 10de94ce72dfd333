package csscolor

const (
	// fuzzyEpsilon is the tolerance used for fuzzy float comparisons,
	// including gamut membership checks.
	fuzzyEpsilon = 1e-11

	// gamutJND is the deltaE-OK "just noticeable difference": clipped
	// candidates closer than this to the original are accepted as-is.
	gamutJND = 0.02

	// gamutEpsilon is the chroma resolution of the local-MINDE binary search.
	gamutEpsilon = 0.0001
)

// D50 reference white in CIE 1931 XYZ, derived from the chromaticity
// (0.3457, 0.3585) with Y normalized to 1.
const (
	d50WhiteX = 0.3457 / 0.3585
	d50WhiteY = 1.0
	d50WhiteZ = (1.0 - 0.3457 - 0.3585) / 0.3585
)

// CIE Lab transfer constants, in their exact rational form.
const (
	labKappa   = 24389.0 / 27.0
	labEpsilon = 216.0 / 24389.0
)
