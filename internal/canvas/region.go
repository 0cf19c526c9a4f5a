package canvas

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"math"

	"github.com/anthonynsimon/bild/blur"
	"github.com/disintegration/imaging"

	"github.com/slickdexic/layers-kernel/internal/geometry"
)

// RegionResult carries an extracted or processed image region as
// base64-encoded PNG, ready to hand to a front end.
type RegionResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// CropBounds extracts the region under a kernel Bounds from the background
// image, optionally rescaling it. Bounds outside the canvas are clipped to
// it; a region that clips down to nothing is an error.
func CropBounds(img image.Image, b *geometry.Bounds, scale float64) (*RegionResult, error) {
	rect, err := clipToCanvas(img, b)
	if err != nil {
		return nil, err
	}
	cropped := imaging.Crop(img, rect)

	if scale > 0 && scale != 1.0 {
		w := int(float64(cropped.Bounds().Dx()) * scale)
		h := int(float64(cropped.Bounds().Dy()) * scale)
		cropped = imaging.Resize(cropped, w, h, imaging.Lanczos)
	}
	return encodeRegion(cropped)
}

// BlurRegion applies a gaussian blur of the given radius to the region under
// a blur layer's bounds and returns the whole canvas with the region
// blurred in place. radius values at or below zero default to 8, the
// editor's redaction strength.
func BlurRegion(img image.Image, b *geometry.Bounds, radius float64) (*RegionResult, error) {
	rect, err := clipToCanvas(img, b)
	if err != nil {
		return nil, err
	}
	if radius <= 0 || math.IsNaN(radius) || math.IsInf(radius, 0) {
		radius = 8
	}

	region := imaging.Crop(img, rect)
	blurred := blur.Gaussian(region, radius)
	composited := imaging.Paste(imaging.Clone(img), blurred, rect.Min)
	return encodeRegion(composited)
}

// clipToCanvas converts a kernel Bounds to an integer pixel rectangle
// clipped to the image. Nil bounds, non-finite coordinates, and regions
// entirely outside the canvas are rejected.
func clipToCanvas(img image.Image, b *geometry.Bounds) (image.Rectangle, error) {
	if b == nil {
		return image.Rectangle{}, fmt.Errorf("no bounds to address a region with")
	}
	for _, v := range []float64{b.X, b.Y, b.Width, b.Height} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return image.Rectangle{}, fmt.Errorf("non-finite bounds %+v", *b)
		}
	}
	rect := image.Rect(
		int(math.Floor(b.X)),
		int(math.Floor(b.Y)),
		int(math.Ceil(b.X+b.Width)),
		int(math.Ceil(b.Y+b.Height)),
	).Intersect(img.Bounds())
	if rect.Empty() {
		return image.Rectangle{}, fmt.Errorf("bounds %+v lie outside the %v canvas", *b, img.Bounds())
	}
	return rect, nil
}

// encodeRegion packages an image as a base64 PNG result.
func encodeRegion(img image.Image) (*RegionResult, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode region: %w", err)
	}
	return &RegionResult{
		Width:       img.Bounds().Dx(),
		Height:      img.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}
