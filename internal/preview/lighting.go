package preview

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// LightConfig holds precomputed lighting parameters for the flat-shaded
// preview: ambient + hemisphere fill + two directional lights + Blinn-Phong
// specular, with ACES tone mapping and sRGB output.
type LightConfig struct {
	LightDir mgl64.Vec3
	RimDir   mgl64.Vec3
	ViewDir  mgl64.Vec3
	HalfMain mgl64.Vec3 // precomputed half-vector for Blinn-Phong
	Ambient  float64
	Hemi     float64
	Direct   float64
	Rim      float64
	SpecInt  float64
	SpecPow  float64
	Exposure float64
	InvGamma float64
}

// DefaultLightConfig returns the standard preview lighting.
func DefaultLightConfig() LightConfig {
	lightDir := mgl64.Vec3{180, 260, 140}.Normalize()
	rimDir := mgl64.Vec3{-160, 130, -210}.Normalize()
	viewDir := mgl64.Vec3{0, -110, -400}.Normalize()

	return LightConfig{
		LightDir: lightDir,
		RimDir:   rimDir,
		ViewDir:  viewDir,
		HalfMain: lightDir.Sub(viewDir).Normalize(),
		Ambient:  0.55,
		Hemi:     0.50,
		Direct:   1.50,
		Rim:      0.60,
		SpecInt:  0.45,
		SpecPow:  12.0,
		Exposure: 1.05,
		InvGamma: 1.0 / 2.2,
	}
}

// computeShade returns the combined lighting scalar for a face normal.
func (lc *LightConfig) computeShade(normal mgl64.Vec3) float64 {
	// Lambertian, abs for double-sided faces
	ndlMain := math.Abs(normal.Dot(lc.LightDir))
	ndlRim := math.Abs(normal.Dot(lc.RimDir))

	// Hemisphere fill
	hemi := (1.0-math.Abs(normal.Y()))*0.5 + 0.5

	// Blinn-Phong specular
	ndh := normal.Dot(lc.HalfMain)
	if ndh < 0 {
		ndh = 0
	}
	spec := math.Pow(ndh, lc.SpecPow) * lc.SpecInt

	return lc.Ambient + hemi*lc.Hemi + ndlMain*lc.Direct + ndlRim*lc.Rim + spec
}

// Precomputed sRGB-to-linear lookup table.
var srgbToLinear [256]float64

func init() {
	for i := 0; i < 256; i++ {
		srgbToLinear[i] = math.Pow(float64(i)/255.0, 2.2)
	}
}

// acesTonemap applies ACES filmic tone mapping to a linear value.
func acesTonemap(x float64) float64 {
	return (x * (2.51*x + 0.03)) / (x*(2.43*x+0.59) + 0.14)
}
