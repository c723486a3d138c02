package theme_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tinct/pkg/theme"
	"tinct/pkg/tokens"
)

func TestLoadBytesJSON(t *testing.T) {
	data := []byte(`{
		"meta":   {"name": "Dusk", "version": "1.0", "author": "tinct"},
		"tokens": {
			"colors":  {"primary": "#336699", "accent": "@primary"},
			"spacing": {"gap": 8}
		}
	}`)

	f, err := theme.LoadBytes(data, "json")
	require.NoError(t, err)

	assert.Equal(t, "Dusk", f.Meta.Name)
	assert.Equal(t, "1.0", f.Meta.Version)
	assert.Equal(t, "tinct", f.Meta.Author)
	assert.Equal(t, "#336699", f.Tokens["colors"]["primary"])
	assert.Equal(t, "@primary", f.Tokens["colors"]["accent"])
	assert.Equal(t, float64(8), f.Tokens["spacing"]["gap"])
}

func TestLoadBytesTOML(t *testing.T) {
	data := []byte(`
[meta]
name = "Dawn"

[tokens.colors]
primary = "#FF8800"
accent = "@primary"

[tokens.spacing]
gap = 8
`)

	f, err := theme.LoadBytes(data, "toml")
	require.NoError(t, err)

	assert.Equal(t, "Dawn", f.Meta.Name)
	assert.Equal(t, "#FF8800", f.Tokens["colors"]["primary"])
	assert.Equal(t, int64(8), f.Tokens["spacing"]["gap"])
}

func TestLoadBytesBareNamespace(t *testing.T) {
	data := []byte(`{"colors": {"primary": "#123456"}}`)

	f, err := theme.LoadBytes(data, "json")
	require.NoError(t, err)

	assert.Empty(t, f.Meta.Name)
	assert.Equal(t, "#123456", f.Tokens["colors"]["primary"])
}

func TestLoadBytesErrors(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format string
	}{
		{"unsupported format", `{}`, "yaml"},
		{"malformed json", `{`, "json"},
		{"malformed toml", `[[[`, "toml"},
		{"category not a table", `{"colors": "red"}`, "json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := theme.LoadBytes([]byte(tt.data), tt.format)
			assert.Error(t, err)
		})
	}
}

func TestLoadDispatchesOnExtension(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "dusk.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"colors": {"primary": "#111111"}}`), 0644))

	tomlPath := filepath.Join(dir, "dawn.toml")
	require.NoError(t, os.WriteFile(tomlPath, []byte("[colors]\nprimary = \"#222222\"\n"), 0644))

	jf, err := theme.Load(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, "#111111", jf.Tokens["colors"]["primary"])

	tf, err := theme.Load(tomlPath)
	require.NoError(t, err)
	assert.Equal(t, "#222222", tf.Tokens["colors"]["primary"])

	_, err = theme.Load(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestLoadedNamespaceRegisters(t *testing.T) {
	f, err := theme.LoadBytes([]byte(`{
		"colors":  {"primary": "#336699"},
		"borders": {"outline": "@primary"}
	}`), "json")
	require.NoError(t, err)

	r := tokens.NewResolver()
	r.Register(f.Tokens)

	assert.Equal(t, "#336699", r.Resolve("@outline"))
}
