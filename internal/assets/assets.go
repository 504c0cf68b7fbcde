// Package assets loads the toolbar icons and scales them to the size they
// are drawn at.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io/fs"
	"os"

	xdraw "golang.org/x/image/draw"
)

//go:embed res/*.png
var embedded embed.FS

// ErrMissing is returned when a required icon is absent.
var ErrMissing = errors.New("asset missing")

// Spec names an icon and the pixel size it must be delivered at.
type Spec struct {
	Name          string
	Width, Height int
}

// Embedded returns the icon set compiled into the binary.
func Embedded() fs.FS {
	sub, err := fs.Sub(embedded, "res")
	if err != nil {
		panic(err)
	}
	return sub
}

// Source picks the on-disk directory dir when set, the embedded set
// otherwise. A dir that does not exist is an error.
func Source(dir string) (fs.FS, error) {
	if dir == "" {
		return Embedded(), nil
	}
	st, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("asset dir %q: %w", dir, err)
	}
	if !st.IsDir() {
		return nil, fmt.Errorf("asset dir %q: not a directory", dir)
	}
	return os.DirFS(dir), nil
}

// Load decodes every icon in specs from fsys. The first failure aborts the
// load. A name listed twice keeps the last size requested.
func Load(fsys fs.FS, specs []Spec) (map[string]*image.RGBA, error) {
	out := make(map[string]*image.RGBA, len(specs))
	for _, s := range specs {
		if img, ok := out[s.Name]; ok && img.Bounds().Dx() == s.Width && img.Bounds().Dy() == s.Height {
			continue
		}
		img, err := Decode(fsys, s)
		if err != nil {
			return nil, err
		}
		out[s.Name] = img
	}
	return out, nil
}

// Decode reads <name>.png and returns it as RGBA scaled to the spec size.
// A zero size keeps the source dimensions.
func Decode(fsys fs.FS, s Spec) (*image.RGBA, error) {
	file := s.Name + ".png"
	f, err := fsys.Open(file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissing, file)
		}
		return nil, fmt.Errorf("open %s: %w", file, err)
	}
	defer f.Close()

	src, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", file, err)
	}

	w, h := s.Width, s.Height
	if w <= 0 || h <= 0 {
		w, h = src.Bounds().Dx(), src.Bounds().Dy()
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if src.Bounds().Dx() == w && src.Bounds().Dy() == h {
		xdraw.Copy(dst, image.Point{}, src, src.Bounds(), xdraw.Src, nil)
		return dst, nil
	}
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst, nil
}
