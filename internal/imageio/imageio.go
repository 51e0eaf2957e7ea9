// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package imageio

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
)

// Info describes a decodable raster image.
type Info struct {
	// Format is the image format, "jpeg" or "png".
	Format string

	// Width is the pixel width of the image.
	Width int

	// Height is the pixel height of the image.
	Height int
}

// Probe decodes the header of an image payload and returns its format and
// dimensions. Only JPEG and PNG are supported.
func Probe(data []byte) (Info, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Info{}, fmt.Errorf("imageio: decoding image config: %w", err)
	}
	if format != "jpeg" && format != "png" {
		return Info{}, fmt.Errorf("imageio: unsupported image format %s", format)
	}
	return Info{
		Format: format,
		Width:  cfg.Width,
		Height: cfg.Height,
	}, nil
}

// EncodeJPEG re-encodes an image payload as JPEG. PNG content is converted;
// JPEG content is returned as is.
func EncodeJPEG(data []byte) ([]byte, error) {
	info, err := Probe(data)
	if err != nil {
		return nil, err
	}
	if info.Format == "jpeg" {
		return data, nil
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("imageio: decoding png image: %w", err)
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		return nil, fmt.Errorf("imageio: encoding png to jpeg: %w", err)
	}
	return buf.Bytes(), nil
}
