// Package signature produces the base64 PNG signature image required when
// creating a client plan. In the terminal the signer either types their
// name, which is rendered to an image, or points at a scanned PNG on disk.
// Either way the backend receives raw base64 with no data-URI prefix.
package signature

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/powertrack/powertrack/internal/errors"
)

const (
	padX       = 12
	padY       = 16
	lineHeight = 20
)

// FromText renders the signer's typed name onto a white canvas and returns
// the image as base64 PNG. Empty input is rejected before any encoding; the
// backend refuses plans without a signature.
func FromText(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", errors.NewValidationError("signature", "signature is required")
	}

	face := basicfont.Face7x13
	width := font.MeasureString(face, name).Ceil() + 2*padX
	img := image.NewRGBA(image.Rect(0, 0, width, 2*padY+lineHeight))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: face,
		Dot:  fixed.P(padX, padY+face.Ascent),
	}
	drawer.DrawString(name)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// FromFile loads a scanned signature from disk. The file must decode as a
// PNG; anything else is rejected before it reaches the backend.
func FromFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if _, err := png.Decode(bytes.NewReader(data)); err != nil {
		return "", errors.NewValidationError("signature", "file is not a valid PNG")
	}
	return base64.StdEncoding.EncodeToString(data), nil
}
