package renderer

import (
	"bytes"
	"testing"
)

func TestGenerateNoiseTextureDeterministic(t *testing.T) {
	a := generateNoiseTexture(NoiseStone, 32)
	b := generateNoiseTexture(NoiseStone, 32)
	if !bytes.Equal(a.pix, b.pix) {
		t.Fatal("generated texture differs between runs")
	}
}

func TestGenerateNoiseTextureShape(t *testing.T) {
	p := generateNoiseTexture(NoiseGrass, 64)
	if p.width != 64 || p.height != 64 {
		t.Fatalf("size = %dx%d, want 64x64", p.width, p.height)
	}
	if p.channels != 4 {
		t.Fatalf("channels = %d, want 4", p.channels)
	}
	if len(p.pix) != 64*64*4 {
		t.Fatalf("pixel buffer length = %d, want %d", len(p.pix), 64*64*4)
	}
	for i := 3; i < len(p.pix); i += 4 {
		if p.pix[i] != 255 {
			t.Fatalf("pixel %d alpha = %d, want 255", i/4, p.pix[i])
		}
	}
}

func TestGenerateNoiseTexturePalettes(t *testing.T) {
	grass := generateNoiseTexture(NoiseGrass, 32)

	var rSum, gSum int
	for i := 0; i < len(grass.pix); i += 4 {
		rSum += int(grass.pix[i])
		gSum += int(grass.pix[i+1])
	}
	if gSum <= rSum {
		t.Fatalf("grass palette not green-dominant: r=%d g=%d", rSum, gSum)
	}
}
