package storage

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"
)

var (
	ErrImageTooLarge      = errors.New("image exceeds maximum size (5MB)")
	ErrInvalidImageFormat = errors.New("image must be JPEG or PNG format")
)

// ImageProcessor validates uploads and scales them to cover size
type ImageProcessor struct {
	MaxSize   int64 // bytes
	MaxWidth  int
	MaxHeight int
	Quality   int
}

func NewImageProcessor() *ImageProcessor {
	return &ImageProcessor{
		MaxSize:   5 * 1024 * 1024,
		MaxWidth:  600,
		MaxHeight: 900,
		Quality:   85,
	}
}

// ValidateImage accepts JPEG/PNG up to MaxSize
func (p *ImageProcessor) ValidateImage(data []byte) error {
	if int64(len(data)) > p.MaxSize {
		return ErrImageTooLarge
	}
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidImageFormat, err)
	}
	switch format {
	case "jpeg", "png":
		return nil
	default:
		return ErrInvalidImageFormat
	}
}

// Process validates, fits the image inside MaxWidth x MaxHeight (never
// upscaling) and re-encodes it as JPEG.
func (p *ImageProcessor) Process(data []byte) ([]byte, error) {
	if err := p.ValidateImage(data); err != nil {
		return nil, err
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("cannot decode image: %w", err)
	}

	resized := imaging.Fit(img, p.MaxWidth, p.MaxHeight, imaging.Lanczos)

	out := new(bytes.Buffer)
	if err := jpeg.Encode(out, resized, &jpeg.Options{Quality: p.Quality}); err != nil {
		return nil, fmt.Errorf("cannot encode image: %w", err)
	}
	return out.Bytes(), nil
}

// DataURI embeds data as a base64 data: URI
func DataURI(contentType string, data []byte) string {
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data)
}
