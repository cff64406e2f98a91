package plume

import (
	"bytes"
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Texture is a grid sprite sheet: one image divided into equal-size frames,
// numbered left to right, top to bottom. A frame size of zero means the whole
// image is a single frame.
type Texture struct {
	img            *ebiten.Image
	frameW, frameH int
	columns        int
}

// NewTexture wraps an already-loaded image as a texture with the given frame
// size. Frame dimensions of zero (or exceeding the image) fall back to the
// full image size.
func NewTexture(img *ebiten.Image, frameW, frameH int) *Texture {
	b := img.Bounds()
	if frameW <= 0 || frameW > b.Dx() {
		frameW = b.Dx()
	}
	if frameH <= 0 || frameH > b.Dy() {
		frameH = b.Dy()
	}
	return &Texture{
		img:     img,
		frameW:  frameW,
		frameH:  frameH,
		columns: b.Dx() / frameW,
	}
}

// LoadTexture reads an image file from disk and wraps it as a texture. The
// result is cached per runtime by path, so repeated loads of the same file
// share one image.
func (r *Runtime) LoadTexture(path string, frameW, frameH int) (*Texture, error) {
	if t, ok := r.textures[path]; ok {
		return t, nil
	}
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("plume: failed to load texture %q: %w", path, err)
	}
	t := NewTexture(img, frameW, frameH)
	if r.textures == nil {
		r.textures = make(map[string]*Texture)
	}
	r.textures[path] = t
	return t, nil
}

// Image returns the full sheet image.
func (t *Texture) Image() *ebiten.Image { return t.img }

// FrameSize returns the per-frame dimensions in pixels.
func (t *Texture) FrameSize() (w, h int) { return t.frameW, t.frameH }

// FrameCount returns the number of frames on the sheet.
func (t *Texture) FrameCount() int {
	b := t.img.Bounds()
	return t.columns * (b.Dy() / t.frameH)
}

// frameImage returns the sub-image for frame i. Out-of-range indices wrap,
// so animations never index past the sheet.
func (t *Texture) frameImage(i int) *ebiten.Image {
	n := t.FrameCount()
	if n == 0 {
		return t.img
	}
	i = ((i % n) + n) % n
	col := i % t.columns
	row := i / t.columns
	rect := image.Rect(col*t.frameW, row*t.frameH, (col+1)*t.frameW, (row+1)*t.frameH)
	return t.img.SubImage(rect).(*ebiten.Image)
}

// --- Fonts ---

// Font wraps Ebitengine's text/v2 for TrueType rendering.
type Font struct {
	face *text.GoTextFace
	lh   float64
}

// LoadFont parses raw TTF/OTF data at the given size.
func LoadFont(ttfData []byte, size float64) (*Font, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("plume: failed to parse font data: %w", err)
	}
	face := &text.GoTextFace{
		Source: source,
		Size:   size,
	}
	m := face.Metrics()
	return &Font{
		face: face,
		lh:   m.HAscent + m.HDescent + m.HLineGap,
	}, nil
}

// Face returns the underlying GoTextFace for direct text/v2 rendering.
func (f *Font) Face() *text.GoTextFace { return f.face }

// LineHeight returns the vertical distance between baselines.
func (f *Font) LineHeight() float64 { return f.lh }

// Measure returns the rendered width and height of s.
func (f *Font) Measure(s string) (width, height float64) {
	return text.Measure(s, f.face, f.lh)
}

// DrawText renders s onto dst at (x, y) with the given color.
func (f *Font) DrawText(dst *ebiten.Image, s string, x, y float64, clr ebiten.ColorScale) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale = clr
	op.LineSpacing = f.lh
	text.Draw(dst, s, f.face, op)
}
