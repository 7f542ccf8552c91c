package dataset

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// LoadFile parses the dataset stored at path. Paths ending in .gz or .zst are
// decompressed on the fly.
func LoadFile(path string) (Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("dataset: %s: %w", path, err)
		}
		defer gz.Close()
		r = gz
	case ".zst":
		zr, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("dataset: %s: %w", path, err)
		}
		defer zr.Close()
		r = zr
	}

	ds, err := Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ds, nil
}

// SaveFile writes ds to path, compressing it when the extension is .gz or
// .zst.
func SaveFile(path string, ds Dataset) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		gz := gzip.NewWriter(f)
		if err := Write(gz, ds); err != nil {
			return err
		}
		return gz.Close()
	case ".zst":
		zw, err := zstd.NewWriter(f)
		if err != nil {
			return err
		}
		if err := Write(zw, ds); err != nil {
			_ = zw.Close()
			return err
		}
		return zw.Close()
	default:
		return Write(f, ds)
	}
}
