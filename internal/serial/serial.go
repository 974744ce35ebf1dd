package serial

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

const (
	// CurrentVersion is written into every saved scene file.
	CurrentVersion = "v1.0.0"
	// SupportedMajor is the scene format major version this build reads.
	SupportedMajor = "v1"
	// Extension is the file name suffix of scene files.
	Extension = ".scene.yaml"
)

// ErrVersion is returned for scene files of an unreadable format version.
var ErrVersion = errors.New("unsupported scene version")

// LoadFile loads and parses a scene file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene %s: %w", path, err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}

// Parse parses and validates scene YAML data.
func Parse(data []byte) (*File, error) {
	var f File

	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse scene YAML: %w", err)
	}

	applyDefaults(&f)

	if !semver.IsValid(f.Version) {
		return nil, fmt.Errorf("%w: %q is not a semantic version", ErrVersion, f.Version)
	}

	if semver.Major(f.Version) != SupportedMajor {
		return nil, fmt.Errorf("%w: %s, want %s.x", ErrVersion, f.Version, SupportedMajor)
	}

	return &f, nil
}

// applyDefaults sets default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = CurrentVersion
	}
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// WriteFile writes a File to the given path.
func WriteFile(f *File, path string) error {
	data, err := Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal scene: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write scene file %s: %w", path, err)
	}

	return nil
}
