package convert

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/woozymasta/csv2geojson/internal/geo"

	"gopkg.in/yaml.v3"
)

// Format is an output encoding.
type Format string

// Supported output formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format name. The empty string selects JSON.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", FormatJSON:
		return FormatJSON, nil
	case FormatYAML:
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown output format %q", s)
	}
}

// WriteOptions controls how a collection is serialized.
type WriteOptions struct {
	Format Format
	Indent bool // JSON only, YAML is always indented
}

// Encode serializes the collection to w.
func Encode(w io.Writer, fc geo.FeatureCollection, opts WriteOptions) error {
	format, err := ParseFormat(string(opts.Format))
	if err != nil {
		return err
	}

	if format == FormatYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(fc); err != nil {
			return err
		}
		return enc.Close()
	}

	enc := json.NewEncoder(w)
	if opts.Indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(fc)
}

// Write serializes the collection and replaces path with the result.
// The document goes to a temporary file next to path first, so a failed
// write never leaves a truncated output behind. An existing output keeps
// its permissions, and a symlink is followed to the file it points at.
func Write(fc geo.FeatureCollection, path string, opts WriteOptions) error {
	var buf bytes.Buffer
	if err := Encode(&buf, fc, opts); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}

	target := path
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		target = resolved
	}

	var mode os.FileMode = 0644
	if info, err := os.Stat(target); err == nil {
		mode = info.Mode().Perm()
	}

	dir, base := filepath.Split(target)
	if dir == "" {
		dir = "."
	}

	tmp, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return &IOError{Op: "create", Path: path, Err: err}
	}
	tmpPath := tmp.Name()

	fail := func(op string, err error) error {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return &IOError{Op: op, Path: path, Err: err}
	}

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		return fail("write", err)
	}
	if err := tmp.Chmod(mode); err != nil {
		return fail("chmod", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return &IOError{Op: "close", Path: path, Err: err}
	}

	if err := os.Rename(tmpPath, target); err != nil {
		_ = os.Remove(tmpPath)
		return &IOError{Op: "rename", Path: path, Err: err}
	}

	return nil
}
