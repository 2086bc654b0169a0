package rasterizer

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"strings"

	"golang.org/x/image/tiff"
)

// intersectMask multiplies the coverage of dst by that of src, both masks must have the same bounds.
func intersectMask(dst, src *image.Alpha) {
	for i, a := range src.Pix {
		dst.Pix[i] = uint8((uint16(dst.Pix[i])*uint16(a) + 127) / 255)
	}
}

// Encode writes the image in the format given by its file extension: png, jpg, gif or tiff.
func Encode(w io.Writer, img image.Image, ext string) error {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "png":
		return png.Encode(w, img)
	case "jpg", "jpeg":
		return jpeg.Encode(w, img, nil)
	case "gif":
		return gif.Encode(w, img, nil)
	case "tif", "tiff":
		return tiff.Encode(w, img, nil)
	}
	return fmt.Errorf("rasterizer: unsupported image format %q", ext)
}
