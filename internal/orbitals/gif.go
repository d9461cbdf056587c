package orbitals

import (
	"errors"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"math"
	"os"
	"path/filepath"
)

// SaveOrbitGIF writes an animated GIF with opts.Frames frames, one full turn
// of the cloud about the vertical axis. opts.Delay is in 100ths of a second.
func SaveOrbitGIF(res *SampleResult, opts RenderOptions, path string) error {
	if err := opts.validate(); err != nil {
		return err
	}
	if opts.Frames <= 0 {
		return errors.New("frame count must be positive")
	}

	out := &gif.GIF{
		Image:     make([]*image.Paletted, 0, opts.Frames),
		Delay:     make([]int, 0, opts.Frames),
		LoopCount: 0,
	}
	pts := res.ViewPoints(opts.ViewSize)
	for k := 0; k < opts.Frames; k++ {
		if k%max(1, opts.Frames/10) == 0 {
			DebugLog("rendering GIF", "percent", Real(k+1)*100/Real(opts.Frames))
		}
		yaw := float32(2 * math.Pi * Real(k) / Real(opts.Frames))
		rgba := renderFrame(pts, res.Signs, opts, yaw)

		// Quantize to paletted for GIF
		pimg := image.NewPaletted(rgba.Bounds(), palette.Plan9)
		draw.FloydSteinberg.Draw(pimg, pimg.Bounds(), rgba, image.Point{})

		out.Image = append(out.Image, pimg)
		out.Delay = append(out.Delay, opts.Delay)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := gif.EncodeAll(f, out); err != nil {
		return err
	}
	DebugLog("saved animated GIF", "path", path, "frames", opts.Frames)
	return nil
}
