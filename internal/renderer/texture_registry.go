package renderer

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/mbly-snhu-portfolio/CS-330/internal/logger"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"
)

// MaxTextures is the number of simultaneously registered textures; each
// registered texture occupies one texture unit.
const MaxTextures = 16

type textureEntry struct {
	tag string
	id  uint32
}

// TextureRegistry decodes image files, uploads them as 2D textures and
// tracks tag -> texture unit/handle mappings. Entry i is bound to texture
// unit i by BindAll, in registration order.
type TextureRegistry struct {
	entries []textureEntry
}

func NewTextureRegistry() *TextureRegistry {
	return &TextureRegistry{}
}

// texturePixels is a decoded image ready for upload: RGBA byte rows,
// bottom row first (texture origin is bottom-left).
type texturePixels struct {
	pix      []byte
	width    int
	height   int
	channels int
}

// decodeTextureFile reads and decodes an image file into bottom-up RGBA
// pixels. Only 3-channel (JPEG/YCbCr) and 4-channel layouts are accepted;
// grayscale and other layouts are rejected.
func decodeTextureFile(path string) (texturePixels, error) {
	f, err := os.Open(path)
	if err != nil {
		return texturePixels{}, fmt.Errorf("open texture %q: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return texturePixels{}, fmt.Errorf("decode texture %q: %w", path, err)
	}

	var channels int
	switch img.(type) {
	case *image.Gray, *image.Gray16, *image.Alpha, *image.Alpha16:
		return texturePixels{}, fmt.Errorf("texture %q: unsupported channel layout %T", path, img)
	case *image.YCbCr:
		channels = 3
	default:
		channels = 4
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			// Flip rows vertically so row 0 of the upload is the bottom of
			// the image.
			rgba.Set(x, h-1-y, img.At(bounds.Min.X+x, bounds.Min.Y+y))
		}
	}

	return texturePixels{pix: rgba.Pix, width: w, height: h, channels: channels}, nil
}

// upload creates the GL texture object with repeat wrapping, linear
// filtering and mipmaps.
func (tp texturePixels) upload() uint32 {
	internalFormat := int32(gl.RGBA8)
	if tp.channels == 3 {
		internalFormat = gl.RGB8
	}

	var textureID uint32
	gl.GenTextures(1, &textureID)
	gl.BindTexture(gl.TEXTURE_2D, textureID)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.TexImage2D(gl.TEXTURE_2D, 0, internalFormat,
		int32(tp.width), int32(tp.height),
		0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(tp.pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return textureID
}

// Register decodes the image file at path and registers it under tag. On
// any failure the registry is left unchanged. Tags are not deduplicated;
// lookups return the first registration for a tag.
func (tr *TextureRegistry) Register(path, tag string) error {
	if len(tr.entries) >= MaxTextures {
		return fmt.Errorf("texture registry full (%d entries), cannot register %q", MaxTextures, tag)
	}

	pixels, err := decodeTextureFile(path)
	if err != nil {
		logger.Log.Error("Could not load texture",
			zap.String("path", path),
			zap.String("tag", tag),
			zap.Error(err))
		return err
	}

	textureID := pixels.upload()
	tr.entries = append(tr.entries, textureEntry{tag: tag, id: textureID})

	logger.Log.Info("Texture registered",
		zap.String("path", path),
		zap.String("tag", tag),
		zap.Int("width", pixels.width),
		zap.Int("height", pixels.height),
		zap.Int("channels", pixels.channels),
		zap.Int("slot", len(tr.entries)-1))
	return nil
}

// RegisterGenerated registers a procedural noise texture under tag, used
// as a stand-in when the real asset file is missing on disk.
func (tr *TextureRegistry) RegisterGenerated(tag string, style NoiseStyle) error {
	if len(tr.entries) >= MaxTextures {
		return fmt.Errorf("texture registry full (%d entries), cannot register %q", MaxTextures, tag)
	}

	pixels := generateNoiseTexture(style, generatedTextureSize)
	textureID := pixels.upload()
	tr.entries = append(tr.entries, textureEntry{tag: tag, id: textureID})

	logger.Log.Info("Generated texture registered",
		zap.String("tag", tag),
		zap.Int("size", generatedTextureSize),
		zap.Int("slot", len(tr.entries)-1))
	return nil
}

// BindAll binds every registered texture to the unit matching its
// registration order and points the default sampler at unit 0. Call once
// after all registrations, before the first draw.
func (tr *TextureRegistry) BindAll(shader *ShaderManager) {
	for i, entry := range tr.entries {
		gl.ActiveTexture(gl.TEXTURE0 + uint32(i))
		gl.BindTexture(gl.TEXTURE_2D, entry.id)
	}
	if shader != nil {
		shader.SetSampler("objectTexture", 0)
	}
}

// SlotOf returns the texture unit registered for tag, or -1 if the tag is
// unknown. Callers treat -1 as "fall back to unit 0".
func (tr *TextureRegistry) SlotOf(tag string) int {
	for i, entry := range tr.entries {
		if entry.tag == tag {
			return i
		}
	}
	return -1
}

// HandleOf returns the GL texture handle registered for tag, or 0 if the
// tag is unknown.
func (tr *TextureRegistry) HandleOf(tag string) uint32 {
	for _, entry := range tr.entries {
		if entry.tag == tag {
			return entry.id
		}
	}
	return 0
}

// Count returns the number of registered textures.
func (tr *TextureRegistry) Count() int {
	return len(tr.entries)
}

// ReleaseAll frees every texture handle and empties the registry.
// Idempotent.
func (tr *TextureRegistry) ReleaseAll() {
	for i := range tr.entries {
		if tr.entries[i].id != 0 {
			gl.DeleteTextures(1, &tr.entries[i].id)
			tr.entries[i].id = 0
		}
	}
	tr.entries = tr.entries[:0]
}
