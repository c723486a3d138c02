// Package theme loads design-token namespaces from theme files.
// Two formats are supported, dispatched on file extension: JSON and TOML.
//
// A theme file is either a bare namespace (category tables at the top
// level) or a wrapped document with an optional "meta" table next to a
// "tokens" table:
//
//	{
//	  "meta":   {"name": "Dusk", "version": "1.0"},
//	  "tokens": {"colors": {"primary": "#336699", "accent": "@primary"}}
//	}
package theme

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"tinct/pkg/tokens"
)

// Meta contains theme metadata.
type Meta struct {
	Name    string
	Version string
	Author  string
}

// File is a decoded theme file: metadata plus the token namespace ready
// for registration.
type File struct {
	Meta   Meta
	Tokens tokens.Namespace
}

// Load reads and decodes a theme file. The format is chosen by the file
// extension (.json or .toml).
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file: %w", err)
	}

	format := strings.TrimPrefix(filepath.Ext(path), ".")
	f, err := LoadBytes(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", filepath.Base(path), err)
	}
	return f, nil
}

// LoadBytes decodes a theme from a byte slice in the given format
// ("json" or "toml").
func LoadBytes(data []byte, format string) (*File, error) {
	var raw map[string]any

	switch strings.ToLower(format) {
	case "json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse JSON theme: %w", err)
		}
	case "toml":
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse TOML theme: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported theme format %q", format)
	}

	return fromRaw(raw)
}

// fromRaw converts a decoded document into a File. When a top-level
// "tokens" table exists the document is treated as wrapped; otherwise the
// whole document is the namespace.
func fromRaw(raw map[string]any) (*File, error) {
	f := &File{Tokens: tokens.Namespace{}}

	body := raw
	if wrapped, ok := raw["tokens"].(map[string]any); ok {
		body = wrapped
		if meta, ok := raw["meta"].(map[string]any); ok {
			f.Meta = Meta{
				Name:    getString(meta, "name"),
				Version: getString(meta, "version"),
				Author:  getString(meta, "author"),
			}
		}
	}

	for category, v := range body {
		table, ok := v.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("category %q is not a table", category)
		}
		f.Tokens[category] = table
	}

	return f, nil
}

func getString(table map[string]any, key string) string {
	if s, ok := table[key].(string); ok {
		return s
	}
	return ""
}
