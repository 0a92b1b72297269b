package renderer

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mbly-snhu-portfolio/CS-330/internal/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func writePNG(t *testing.T, img image.Image) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "texture.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDecodeTextureFileRejectsGrayscale(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 2, 2))
	path := writePNG(t, gray)

	_, err := decodeTextureFile(path)
	if err == nil {
		t.Fatal("grayscale image accepted")
	}
	if !strings.Contains(err.Error(), "unsupported channel layout") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDecodeTextureFileFourChannels(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	path := writePNG(t, img)

	pixels, err := decodeTextureFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if pixels.channels != 4 {
		t.Fatalf("channels = %d, want 4", pixels.channels)
	}
	if pixels.width != 2 || pixels.height != 2 {
		t.Fatalf("size = %dx%d, want 2x2", pixels.width, pixels.height)
	}
}

func TestDecodeTextureFileThreeChannelsJPEG(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}

	path := filepath.Join(t.TempDir(), "texture.jpg")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := jpeg.Encode(f, img, nil); err != nil {
		f.Close()
		t.Fatal(err)
	}
	f.Close()

	pixels, err := decodeTextureFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if pixels.channels != 3 {
		t.Fatalf("channels = %d, want 3", pixels.channels)
	}
}

func TestDecodeTextureFileFlipsRows(t *testing.T) {
	// Top row red, bottom row blue. After the flip the first stored row
	// must be the blue one.
	img := image.NewNRGBA(image.Rect(0, 0, 1, 2))
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})
	img.Set(0, 1, color.NRGBA{B: 255, A: 255})
	path := writePNG(t, img)

	pixels, err := decodeTextureFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if pixels.pix[2] != 255 {
		t.Fatalf("first row blue = %d, want 255 (rows not flipped)", pixels.pix[2])
	}
	if pixels.pix[4] != 255 {
		t.Fatalf("second row red = %d, want 255 (rows not flipped)", pixels.pix[4])
	}
}

func TestDecodeTextureFileMissing(t *testing.T) {
	_, err := decodeTextureFile(filepath.Join(t.TempDir(), "missing.png"))
	if err == nil {
		t.Fatal("missing file accepted")
	}
}

func TestRegisterCapacity(t *testing.T) {
	tr := &TextureRegistry{entries: make([]textureEntry, MaxTextures)}

	// The capacity check runs before any file or GL work, so a bogus path
	// is never touched.
	if err := tr.Register("does-not-exist.png", "overflow"); err == nil {
		t.Fatal("registration beyond capacity accepted")
	}
	if tr.Count() != MaxTextures {
		t.Fatalf("count = %d, want %d", tr.Count(), MaxTextures)
	}
}

func TestRegisterFailureLeavesRegistryUnchanged(t *testing.T) {
	tr := NewTextureRegistry()
	if err := tr.Register(filepath.Join(t.TempDir(), "missing.png"), "stone"); err == nil {
		t.Fatal("missing file accepted")
	}
	if tr.Count() != 0 {
		t.Fatalf("failed registration left %d entries", tr.Count())
	}
	if tr.SlotOf("stone") != -1 {
		t.Fatalf("slot for failed tag = %d, want -1", tr.SlotOf("stone"))
	}
}

func TestSlotLookup(t *testing.T) {
	tr := &TextureRegistry{entries: []textureEntry{
		{tag: "stone", id: 11},
		{tag: "grass", id: 22},
		{tag: "stone", id: 33}, // duplicate tag, first registration wins
	}}

	if slot := tr.SlotOf("grass"); slot != 1 {
		t.Fatalf("SlotOf(grass) = %d, want 1", slot)
	}
	if slot := tr.SlotOf("stone"); slot != 0 {
		t.Fatalf("SlotOf(stone) = %d, want 0 (first registration)", slot)
	}
	if id := tr.HandleOf("stone"); id != 11 {
		t.Fatalf("HandleOf(stone) = %d, want 11", id)
	}
	if slot := tr.SlotOf("wood"); slot != -1 {
		t.Fatalf("SlotOf(wood) = %d, want -1", slot)
	}
	if id := tr.HandleOf("wood"); id != 0 {
		t.Fatalf("HandleOf(wood) = %d, want 0", id)
	}
}
