package corridor

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"

	// Registered decoders for the supported upload formats. PNG comes in
	// through the png import above.
	_ "image/jpeg"

	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// DecodeImage decodes a PNG, JPEG, WEBP or TIFF image from r.
// Undecodable data is reported as an InputError wrapping ErrDecodeImage.
func DecodeImage(r io.Reader) (image.Image, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, NewInputError(fmt.Errorf("%w: %v", ErrDecodeImage, err))
	}
	logger().Debug("base image decoded",
		"format", format,
		"width", img.Bounds().Dx(),
		"height", img.Bounds().Dy())
	return img, nil
}

// DecodeConfig reads only the dimensions of an encoded image.
func DecodeConfig(r io.Reader) (width, height int, err error) {
	cfg, _, err := image.DecodeConfig(r)
	if err != nil {
		return 0, 0, NewInputError(fmt.Errorf("%w: %v", ErrDecodeImage, err))
	}
	return cfg.Width, cfg.Height, nil
}

// EncodePNG serializes an image as PNG bytes.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, renderErrorf("png encode: %w", err)
	}
	return buf.Bytes(), nil
}
