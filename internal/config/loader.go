package config

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// LoadFile reads a settings file and overlays it on the defaults. The
// decoder is chosen by extension. A partial file is fine; keys it omits
// keep their default values.
func LoadFile(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Settings{}, ErrFileNotFound
		}
		return Settings{}, err
	}

	var parse func([]byte) (Settings, error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		parse = ParseTOML
	case ".yaml", ".yml":
		parse = ParseYAML
	case ".json":
		parse = ParseJSON
	default:
		return Settings{}, ErrUnknownFormat
	}

	s, err := parse(data)
	if err != nil {
		return Settings{}, &ParseError{Path: path, Err: err}
	}
	return s, nil
}

// ParseTOML decodes TOML settings over the defaults.
func ParseTOML(data []byte) (Settings, error) {
	s := Default()
	if err := toml.Unmarshal(data, &s); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// ParseYAML decodes YAML settings over the defaults.
func ParseYAML(data []byte) (Settings, error) {
	s := Default()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// ParseJSON decodes JSON settings over the defaults.
func ParseJSON(data []byte) (Settings, error) {
	s := Default()
	if err := json.Unmarshal(data, &s); err != nil {
		return Settings{}, err
	}
	return s, nil
}
