package orbitals

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
)

// SaveRawBuffers writes the view-space buffers of res as little-endian binary:
// int32 point count, then 3*count float32 positions, then 3*count float32 colors.
func SaveRawBuffers(res *SampleResult, viewSize Real, path string) error {
	positions, colors := res.Buffers(viewSize)
	if len(positions) != len(colors) || len(positions)%3 != 0 {
		return fmt.Errorf("buffer length mismatch: positions=%d colors=%d", len(positions), len(colors))
	}

	// Make sure parent directory exists.
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := binary.Write(w, binary.LittleEndian, int32(len(positions)/3)); err != nil {
		return err
	}
	if len(positions) > 0 {
		if err := binary.Write(w, binary.LittleEndian, positions); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, colors); err != nil {
			return err
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	DebugLog("saved raw buffers", "path", path, "points", len(positions)/3)
	return f.Close()
}
