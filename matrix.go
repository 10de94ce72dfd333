package csscolor

// matrix3 is a row-major 3x3 matrix.
type matrix3 [9]float64

var identity3 = matrix3{
	1, 0, 0,
	0, 1, 0,
	0, 0, 1,
}

func (m matrix3) apply(a, b, c float64) (float64, float64, float64) {
	return m[0]*a + m[1]*b + m[2]*c,
		m[3]*a + m[4]*b + m[5]*c,
		m[6]*a + m[7]*b + m[8]*c
}

func (m matrix3) mul(o matrix3) matrix3 {
	var r matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i*3+j] = m[i*3]*o[j] + m[i*3+1]*o[3+j] + m[i*3+2]*o[6+j]
		}
	}
	return r
}

// inverse returns the matrix inverse via the adjugate. All conversion
// matrices are well-conditioned, so no pivoting is needed.
func (m matrix3) inverse() matrix3 {
	c00 := m[4]*m[8] - m[5]*m[7]
	c01 := m[5]*m[6] - m[3]*m[8]
	c02 := m[3]*m[7] - m[4]*m[6]
	det := m[0]*c00 + m[1]*c01 + m[2]*c02
	return matrix3{
		c00 / det, (m[2]*m[7] - m[1]*m[8]) / det, (m[1]*m[5] - m[2]*m[4]) / det,
		c01 / det, (m[0]*m[8] - m[2]*m[6]) / det, (m[2]*m[3] - m[0]*m[5]) / det,
		c02 / det, (m[1]*m[6] - m[0]*m[7]) / det, (m[0]*m[4] - m[1]*m[3]) / det,
	}
}

// Authoritative forward matrices. These literals are the reference
// colorimetric constants; every inverse and cross-gamut composite below is
// derived from them at package init so that round trips cancel exactly.

// Linear-light sRGB to CIE XYZ, D65 white.
var linearSRGBToXYZD65 = matrix3{
	0.41239079926595934, 0.357584339383878, 0.1804807884018343,
	0.21263900587151027, 0.715168678767756, 0.07219231536073371,
	0.01933081871559182, 0.11919477979462598, 0.9505321522496607,
}

// Linear-light Display P3 to CIE XYZ, D65 white.
var linearDisplayP3ToXYZD65 = matrix3{
	0.4865709486482162, 0.26566769316909306, 0.19821728523436247,
	0.2289745640697488, 0.6917385218365064, 0.079286914093745,
	0.0, 0.04511338185890264, 1.043944368900976,
}

// Linear-light A98 RGB to CIE XYZ, D65 white.
var linearA98RGBToXYZD65 = matrix3{
	0.5766690429101305, 0.1855582379065463, 0.1882286462349947,
	0.29734497525053605, 0.6273635662554661, 0.07529145849399788,
	0.02703136138641234, 0.07068885253582723, 0.9913375368376388,
}

// Linear-light Rec. 2020 to CIE XYZ, D65 white.
var linearRec2020ToXYZD65 = matrix3{
	0.6369580483012914, 0.14461690358620832, 0.16888097516417205,
	0.2627002120112671, 0.6779980715188708, 0.05930171646986196,
	0.0, 0.028072693049087428, 1.060985057710791,
}

// Linear-light ProPhoto RGB to CIE XYZ, D50 white.
var linearProPhotoToXYZD50 = matrix3{
	0.7977604896723027, 0.13518583717574031, 0.0313493495815248,
	0.2880711282292934, 0.7118432178101014, 0.00008565396060525902,
	0.0, 0.0, 0.8251046025104601,
}

// Bradford chromatic adaptation, D65 to D50.
var xyzD65ToXYZD50 = matrix3{
	1.0479298208405488, 0.022946793341019088, -0.05019222954313557,
	0.029627815688159344, 0.990434484573249, -0.01707382502938514,
	-0.009243058152591178, 0.015055144896577895, 0.7518742899580008,
}

// CIE XYZ (D65) to cone-response LMS, the Oklab M1 matrix.
var xyzD65ToLMS = matrix3{
	0.8189330101, 0.3618667424, -0.1288597137,
	0.0329845436, 0.9293118715, 0.0361456387,
	0.0482003018, 0.2643662691, 0.6338517070,
}

// Nonlinear (cube-rooted) LMS to Oklab, the Oklab M2 matrix.
var lmsPrimeToOklab = matrix3{
	0.2104542553, 0.7936177850, -0.0040720468,
	1.9779984951, -2.4285922050, 0.4505937099,
	0.0259040371, 0.7827717662, -0.8086757660,
}

var oklabToLMSPrime = lmsPrimeToOklab.inverse()

// linearNode identifies a coordinate frame reachable by pure matrix algebra
// once channels are linearized. Spaces sharing a frame (rgb, srgb,
// srgb-linear) map to the same node.
type linearNode int

const (
	nodeSRGB linearNode = iota
	nodeDisplayP3
	nodeA98RGB
	nodeProPhoto
	nodeRec2020
	nodeXYZD65
	nodeXYZD50
	nodeLMS

	numNodes
)

// node returns the linear frame of a matrix-connected space. Polar and CIE
// opponent spaces never reach the matrix step; they are reparameterized
// through their hubs first.
func (s Space) node() linearNode {
	switch s {
	case SpaceRGB, SpaceSRGB, SpaceSRGBLinear:
		return nodeSRGB
	case SpaceDisplayP3:
		return nodeDisplayP3
	case SpaceA98RGB:
		return nodeA98RGB
	case SpaceProPhotoRGB:
		return nodeProPhoto
	case SpaceRec2020:
		return nodeRec2020
	case SpaceXYZD65:
		return nodeXYZD65
	case SpaceXYZD50:
		return nodeXYZD50
	case spaceLMS:
		return nodeLMS
	}
	panic("csscolor: space " + s.Name() + " is not matrix-connected")
}

// convMatrix[src][dst] transforms linearized channels from frame src to
// frame dst. Built once at init from the forward matrices above.
var convMatrix = buildConvMatrices()

func buildConvMatrices() [numNodes][numNodes]matrix3 {
	var toD65 [numNodes]matrix3
	toD65[nodeSRGB] = linearSRGBToXYZD65
	toD65[nodeDisplayP3] = linearDisplayP3ToXYZD65
	toD65[nodeA98RGB] = linearA98RGBToXYZD65
	toD65[nodeRec2020] = linearRec2020ToXYZD65
	toD65[nodeXYZD65] = identity3
	toD65[nodeXYZD50] = xyzD65ToXYZD50.inverse()
	toD65[nodeProPhoto] = toD65[nodeXYZD50].mul(linearProPhotoToXYZD50)
	toD65[nodeLMS] = xyzD65ToLMS.inverse()

	var table [numNodes][numNodes]matrix3
	for src := linearNode(0); src < numNodes; src++ {
		fromSrc := toD65[src]
		for dst := linearNode(0); dst < numNodes; dst++ {
			if src == dst {
				table[src][dst] = identity3
				continue
			}
			table[src][dst] = toD65[dst].inverse().mul(fromSrc)
		}
	}
	return table
}

// transformationMatrix returns the fixed matrix that maps this space's
// linearized channels onto dest's linear frame.
func (s Space) transformationMatrix(dest Space) matrix3 {
	return convMatrix[s.node()][dest.node()]
}
