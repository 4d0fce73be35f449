package media

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

const (
	DefaultMaxEdge   = 512
	WebPContentType  = "image/webp"
	defaultQuality   = 80
	maxDecodedPixels = 40_000_000
)

var ErrInvalidImage = errors.New("invalid image")

// Processor normalizes uploaded photos: JPEG, PNG or WebP in, WebP out,
// long edge capped at maxEdge.
type Processor struct {
	maxEdge int
	quality float32
}

func NewProcessor(maxEdge int) *Processor {
	if maxEdge <= 0 {
		maxEdge = DefaultMaxEdge
	}
	return &Processor{maxEdge: maxEdge, quality: defaultQuality}
}

func (p *Processor) Process(data []byte) ([]byte, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	if cfg.Width*cfg.Height > maxDecodedPixels {
		return nil, fmt.Errorf("%w: %dx%d is too large", ErrInvalidImage, cfg.Width, cfg.Height)
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}

	img := p.downscale(src)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: p.quality}); err != nil {
		return nil, fmt.Errorf("encode webp: %w", err)
	}
	return buf.Bytes(), nil
}

func (p *Processor) downscale(src image.Image) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= p.maxEdge && h <= p.maxEdge {
		return src
	}

	if w >= h {
		h = h * p.maxEdge / w
		w = p.maxEdge
	} else {
		w = w * p.maxEdge / h
		h = p.maxEdge
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
