package renderer

import (
	perlin "github.com/aquilax/go-perlin"
)

// NoiseStyle selects the palette of a generated fallback texture.
type NoiseStyle int

const (
	NoiseStone NoiseStyle = iota
	NoiseGrass
)

const generatedTextureSize = 256

// Fixed seed so generated fallbacks are stable between runs.
const noiseSeed = 330

// generateNoiseTexture builds a tileable-looking Perlin noise texture in
// the requested palette. Used when a texture asset is missing on disk so
// the scene still renders with plausible surfaces.
func generateNoiseTexture(style NoiseStyle, size int) texturePixels {
	p := perlin.NewPerlin(2, 2, 3, noiseSeed)

	pix := make([]byte, size*size*4)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			base := p.Noise2D(float64(x)*0.035, float64(y)*0.035)
			detail := p.Noise2D(float64(x)*0.11, float64(y)*0.11)
			// Combined noise in [0, 1].
			n := (base*0.7 + detail*0.3 + 1.0) * 0.5
			if n < 0 {
				n = 0
			} else if n > 1 {
				n = 1
			}

			var r, g, b float64
			switch style {
			case NoiseGrass:
				r = 0.18 + 0.22*n
				g = 0.42 + 0.38*n
				b = 0.14 + 0.16*n
			default: // NoiseStone
				v := 0.35 + 0.45*n
				r, g, b = v, v, v*1.04
			}

			i := (y*size + x) * 4
			pix[i+0] = byte(r * 255)
			pix[i+1] = byte(g * 255)
			pix[i+2] = byte(b * 255)
			pix[i+3] = 255
		}
	}

	return texturePixels{pix: pix, width: size, height: size, channels: 4}
}
