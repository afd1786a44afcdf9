package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("missing file returns defaults", func(t *testing.T) {
		cfg, err := LoadConfig(filepath.Join(t.TempDir(), "carts.yaml"))
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
		assert.Equal(t, "carts.json", cfg.Path)
		assert.Equal(t, "0644", cfg.FileMode)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.False(t, cfg.Indent)
	})

	t.Run("full config", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "carts.yaml")
		content := `path: /var/lib/carts/carts.json
indent: true
file_mode: "0600"
log_level: debug
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "/var/lib/carts/carts.json", cfg.Path)
		assert.True(t, cfg.Indent)
		assert.Equal(t, "0600", cfg.FileMode)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("partial config merges with defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "carts.yaml")
		require.NoError(t, os.WriteFile(path, []byte("indent: true\n"), 0644))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.True(t, cfg.Indent)
		assert.Equal(t, DefaultPath, cfg.Path)
		assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	})

	t.Run("invalid YAML returns error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "carts.yaml")
		require.NoError(t, os.WriteFile(path, []byte("path: [unclosed\n"), 0644))

		_, err := LoadConfig(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse")
	})

	t.Run("invalid file mode returns error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "carts.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`file_mode: "rw-r--r--"`+"\n"), 0644))

		_, err := LoadConfig(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "file_mode")
	})
}

func TestConfigMode(t *testing.T) {
	tests := []struct {
		mode    string
		want    os.FileMode
		wantErr bool
	}{
		{mode: "", want: DefaultFileMode},
		{mode: "0644", want: 0644},
		{mode: "600", want: 0600},
		{mode: "0999", wantErr: true},
		{mode: "1777", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			cfg := &Config{FileMode: tt.mode}
			got, err := cfg.Mode()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOpenConfig(t *testing.T) {
	t.Run("configured store writes with configured options", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "carts.json")
		cfg := DefaultConfig()
		cfg.Path = path
		cfg.Indent = true

		s, err := OpenConfig(cfg, nil)
		require.NoError(t, err)
		assert.Equal(t, path, s.Path())

		_, err = s.CreateCart()
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "\n")
	})

	t.Run("empty path returns error", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Path = ""
		_, err := OpenConfig(cfg, nil)
		require.Error(t, err)
	})
}
