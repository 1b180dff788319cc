package blog

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"os"

	"golang.org/x/image/draw"
)

const (
	socialCardWidth  = 1200
	socialCardHeight = 630
	jpegQuality      = 80

	// Smallest source that still fills a card once cropped.
	minSourceWidth  = 200
	minSourceHeight = 105
)

// SocialCardFromFile reads the image at path and turns it into the default
// social card.
func SocialCardFromFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return SocialCard(f)
}

// SocialCard decodes an image from src, crops it to the 1200x630 card aspect
// ratio around its center, scales it, and encodes it as JPEG. Sources smaller
// than 200x105 are rejected.
func SocialCard(src io.Reader) ([]byte, error) {
	img, _, err := image.Decode(src)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	b := img.Bounds()
	if b.Dx() < minSourceWidth || b.Dy() < minSourceHeight {
		return nil, fmt.Errorf("image is %dx%d, need at least %dx%d", b.Dx(), b.Dy(), minSourceWidth, minSourceHeight)
	}
	crop := coverRect(b, socialCardWidth, socialCardHeight)
	if crop.Empty() {
		return nil, fmt.Errorf("image is %dx%d, too narrow to crop", b.Dx(), b.Dy())
	}
	dst := image.NewRGBA(image.Rect(0, 0, socialCardWidth, socialCardHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, crop, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

// coverRect returns the largest centered sub-rectangle of b with the w:h
// aspect ratio.
func coverRect(b image.Rectangle, w, h int) image.Rectangle {
	bw, bh := b.Dx(), b.Dy()
	if bw*h > bh*w {
		cw := bh * w / h
		x0 := b.Min.X + (bw-cw)/2
		return image.Rect(x0, b.Min.Y, x0+cw, b.Max.Y)
	}
	ch := bw * h / w
	y0 := b.Min.Y + (bh-ch)/2
	return image.Rect(b.Min.X, y0, b.Max.X, y0+ch)
}
