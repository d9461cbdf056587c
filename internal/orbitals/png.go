package orbitals

import (
	"image/png"
	"os"
	"path/filepath"
)

// SavePNG renders res with opts and writes a single lossless PNG.
func SavePNG(res *SampleResult, opts RenderOptions, path string) error {
	img, err := Render(res, opts)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	DebugLog("saved PNG", "path", path)
	return f.Close()
}
