package xrule

import (
	"net/netip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlRules = `
rules:
  - 10.0.0.0/8
  - 192.168.1.0/24
`

const jsonRules = `{"rules": ["10.0.0.0/8", "192.168.1.0/24"]}`

func TestLoadBytes(t *testing.T) {
	for _, tt := range []struct {
		name   string
		data   string
		format string
	}{
		{name: "yaml", data: yamlRules, format: "yaml"},
		{name: "yml alias", data: yamlRules, format: "yml"},
		{name: "json", data: jsonRules, format: "json"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			rs, err := LoadBytes([]byte(tt.data), tt.format)
			require.NoError(t, err)
			assert.Equal(t, 2, rs.Len())
			assert.True(t, rs.Match(netip.MustParseAddr("10.1.2.3")))
			assert.False(t, rs.Match(netip.MustParseAddr("172.16.0.1")))
		})
	}
}

func TestLoadBytesErrors(t *testing.T) {
	_, err := LoadBytes([]byte(yamlRules), "toml")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = LoadBytes([]byte("rules: []"), "yaml")
	assert.ErrorIs(t, err, ErrNoRules)

	_, err = LoadBytes([]byte("other: 1"), "yaml")
	assert.ErrorIs(t, err, ErrNoRules)

	_, err = LoadBytes([]byte("{not yaml: ["), "json")
	assert.Error(t, err)

	_, err = LoadBytes([]byte(`{"rules": ["bad/99"]}`), "json")
	assert.ErrorIs(t, err, ErrInvalidRule)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yamlRules), 0o600))

	rs, err := LoadFile(path)
	require.NoError(t, err)
	assert.True(t, rs.Match(netip.MustParseAddr("192.168.1.1")))
}

func TestLoadFileErrors(t *testing.T) {
	_, err := LoadFile("/nonexistent/rules.yaml")
	assert.Error(t, err)

	_, err = LoadFile("/tmp/rules")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	dir := t.TempDir()
	path := filepath.Join(dir, "rules.toml")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))
	_, err = LoadFile(path)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}
