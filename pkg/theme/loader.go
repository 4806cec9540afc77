package theme

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ThemeFileName is the file LoadSwitchButtonTheme looks for.
const ThemeFileName = "switchbutton.yaml"

// LoadSwitchButtonTheme reads switchbutton.yaml from dir if present. A
// missing file yields the default theme; keys present in the file override
// the defaults.
func LoadSwitchButtonTheme(dir string) (SwitchButtonThemeData, error) {
	path := filepath.Join(dir, ThemeFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultSwitchButtonTheme(), nil
		}
		return SwitchButtonThemeData{}, fmt.Errorf("failed to read %s: %w", ThemeFileName, err)
	}

	t, err := ParseSwitchButtonTheme(data)
	if err != nil {
		return SwitchButtonThemeData{}, fmt.Errorf("failed to parse %s: %w", ThemeFileName, err)
	}
	return t, nil
}

// LoadSwitchButtonThemeFile reads a theme from an explicit path. Unlike
// LoadSwitchButtonTheme, a missing file is an error.
func LoadSwitchButtonThemeFile(path string) (SwitchButtonThemeData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SwitchButtonThemeData{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	t, err := ParseSwitchButtonTheme(data)
	if err != nil {
		return SwitchButtonThemeData{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return t, nil
}

// ParseSwitchButtonTheme decodes YAML over the default theme. Unknown keys
// are rejected.
func ParseSwitchButtonTheme(data []byte) (SwitchButtonThemeData, error) {
	t := DefaultSwitchButtonTheme()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil && !errors.Is(err, io.EOF) {
		return SwitchButtonThemeData{}, err
	}
	return t, nil
}
