// Package api provides a clean public API for theme loading and token
// resolution. This is the main entry point for external consumers.
package api

import (
	"fmt"
	"image"
	"sort"

	"tinct/pkg/paint"
	"tinct/pkg/swatch"
	"tinct/pkg/theme"
	"tinct/pkg/tokens"
)

// Theme represents a loaded theme: its metadata, its token namespace and
// the resolver registered with it.
type Theme struct {
	path     string
	file     *theme.File
	resolver *tokens.Resolver
	renderer *swatch.Renderer
}

// Open loads a theme file and registers its tokens.
func Open(path string) (*Theme, error) {
	file, err := theme.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open theme: %w", err)
	}

	t := newTheme(file)
	t.path = path
	return t, nil
}

// OpenBytes loads a theme from a byte slice in the given format
// ("json" or "toml").
func OpenBytes(data []byte, format string) (*Theme, error) {
	file, err := theme.LoadBytes(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to open theme: %w", err)
	}
	return newTheme(file), nil
}

// New creates a theme directly from a namespace, without a backing file.
func New(ns tokens.Namespace) *Theme {
	return newTheme(&theme.File{Tokens: ns})
}

func newTheme(file *theme.File) *Theme {
	resolver := tokens.NewResolver()
	resolver.Register(file.Tokens)

	return &Theme{
		file:     file,
		resolver: resolver,
		renderer: swatch.NewRenderer(resolver, file.Tokens),
	}
}

// Reload re-reads the backing file and re-registers its tokens, replacing
// all previously resolved state. Themes created from bytes or a bare
// namespace have no backing file and cannot be reloaded.
func (t *Theme) Reload() error {
	if t.path == "" {
		return fmt.Errorf("theme has no backing file")
	}

	file, err := theme.Load(t.path)
	if err != nil {
		return fmt.Errorf("failed to reload theme: %w", err)
	}

	t.file = file
	t.resolver.Register(file.Tokens)
	t.renderer = swatch.NewRenderer(t.resolver, file.Tokens)
	return nil
}

// Path returns the backing file path, if any.
func (t *Theme) Path() string {
	return t.path
}

// Info returns theme metadata.
func (t *Theme) Info() theme.Meta {
	return t.file.Meta
}

// Namespace returns the registered token namespace.
func (t *Theme) Namespace() tokens.Namespace {
	return t.file.Tokens
}

// Categories returns every category name in sorted order.
func (t *Theme) Categories() []string {
	names := make([]string, 0, len(t.file.Tokens))
	for name := range t.file.Tokens {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TokenNames returns every resolvable token name in sorted order.
func (t *Theme) TokenNames() []string {
	return t.resolver.Names()
}

// Tokens returns the flat resolved lookup.
func (t *Theme) Tokens() map[string]any {
	return t.resolver.Tokens()
}

// Resolve maps a token reference to its concrete value; non-references
// and unknown references pass through unchanged.
func (t *Theme) Resolve(v any) any {
	return t.resolver.Resolve(v)
}

// ResolveColor resolves token references inside a color value.
func (t *Theme) ResolveColor(v any) any {
	return t.resolver.ResolveColor(v)
}

// PaintStyle returns a copy of the style with present fill and stroke
// values resolved.
func (t *Theme) PaintStyle(s *paint.Style) *paint.Style {
	return t.resolver.PaintStyle(s)
}

// ResolveStyle returns a copy of the style with truthy fill and stroke
// values resolved.
func (t *Theme) ResolveStyle(s *paint.Style) *paint.Style {
	return t.resolver.ResolveStyle(s)
}

// Resolver exposes the underlying resolver (for advanced use).
func (t *Theme) Resolver() *tokens.Resolver {
	return t.resolver
}

// RenderSheet renders every category as one swatch-sheet image.
func (t *Theme) RenderSheet(opts ...swatch.Option) *image.RGBA {
	return t.renderer.RenderSheet(opts...)
}

// RenderCategory renders the swatches of a single category.
func (t *Theme) RenderCategory(name string, opts ...swatch.Option) (*image.RGBA, error) {
	return t.renderer.RenderCategory(name, opts...)
}

// ColorCategories returns the categories that contain at least one
// color-bearing token.
func (t *Theme) ColorCategories() []string {
	return t.renderer.Categories()
}
