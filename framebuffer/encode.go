package framebuffer

import (
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spakin/netpbm"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Supported image formats.
type Format uint8

const (
	PPM Format = iota
	PNG
	BMP
	TIFF
)

func (f Format) String() string {
	switch f {
	case PPM:
		return "ppm"
	case PNG:
		return "png"
	case BMP:
		return "bmp"
	case TIFF:
		return "tiff"
	}
	return fmt.Sprintf("Format(%d)", uint8(f))
}

// Detect the image format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".ppm":
		return PPM, nil
	case ".png":
		return PNG, nil
	case ".bmp":
		return BMP, nil
	case ".tif", ".tiff":
		return TIFF, nil
	default:
		return PPM, fmt.Errorf("%w %q", ErrUnsupportedFormat, ext)
	}
}

// Encode the framebuffer contents to w.
func Encode(w io.Writer, fb *Framebuffer, format Format) error {
	if fb == nil || len(fb.Pix) == 0 {
		return ErrEmptyFrame
	}

	switch format {
	case PPM:
		return netpbm.Encode(w, fb.RGBA(), &netpbm.EncodeOptions{
			Format:   netpbm.PPM,
			MaxValue: 255,
		})
	case PNG:
		return png.Encode(w, fb.RGBA())
	case BMP:
		return bmp.Encode(w, fb.RGBA())
	case TIFF:
		return tiff.Encode(w, fb.RGBA(), &tiff.Options{Compression: tiff.Deflate})
	}
	return fmt.Errorf("%w %s", ErrUnsupportedFormat, format)
}

// Write the framebuffer to a file. The image format is selected by the file
// extension.
func Save(path string, fb *Framebuffer) (err error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()

	return Encode(f, fb, format)
}

// Create a post-processing stage that saves the rendered frame to path.
func SaveStage(path string) func(*Framebuffer) error {
	return func(fb *Framebuffer) error {
		if err := Save(path, fb); err != nil {
			return fmt.Errorf("framebuffer: could not save frame to %s: %w", path, err)
		}
		return nil
	}
}
