package levels

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}

// LoadFile reads and parses a single level file.
func LoadFile(path string) (File, error) {
	ext := strings.ToLower(filepath.Ext(path))
	supported := false
	for _, e := range FormatExtensions() {
		if ext == e {
			supported = true
		}
	}
	if !supported {
		return File{}, fmt.Errorf("unsupported level format %q", ext)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("reading file %s: %w", path, err)
	}
	f, err := ParseYAML(data)
	if err != nil {
		return File{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	f.Path = path
	if f.ID == "" {
		f.ID = strings.TrimSuffix(filepath.Base(path), ext)
	}
	return f, nil
}

// SaveFile writes a level file, creating parent directories.
func SaveFile(path string, f File) error {
	data, err := MarshalYAML(f)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing file %s: %w", path, err)
	}
	return nil
}
