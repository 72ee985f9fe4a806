package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"

	"github.com/disintegration/imaging"
)

// PNGMimeType is the MIME type of every encoded meme.
const PNGMimeType = "image/png"

// EncodedImage contains a PNG payload ready for display or download.
type EncodedImage struct {
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	MimeType string `json:"mime_type"`
	Data     []byte `json:"-"`
}

// EncodePNG encodes img as a PNG using the highest compression level.
func EncodePNG(img image.Image) (*EncodedImage, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG, imaging.PNGCompressionLevel(png.BestCompression)); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	bounds := img.Bounds()
	return &EncodedImage{
		Width:    bounds.Dx(),
		Height:   bounds.Dy(),
		MimeType: PNGMimeType,
		Data:     buf.Bytes(),
	}, nil
}

// Base64 returns the payload as standard base64.
func (e *EncodedImage) Base64() string {
	return base64.StdEncoding.EncodeToString(e.Data)
}

// DataURI returns the payload as a self-contained data URI.
func (e *EncodedImage) DataURI() string {
	return "data:" + e.MimeType + ";base64," + e.Base64()
}
