package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joffroy59/icoforge/pkg/config"
	"github.com/joffroy59/icoforge/pkg/icon"
)

func TestValidateSizes(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"blank keeps the default", "", false},
		{"whitespace only", "   ", false},
		{"single size", "256", false},
		{"several sizes", "16 32 48", false},
		{"not a number", "sixteen", true},
		{"zero", "0", true},
		{"negative", "-5", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateSizes(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestApplySizes(t *testing.T) {
	t.Run("blank keeps configuration", func(t *testing.T) {
		cfg := config.Default(t.TempDir())
		want := cfg.Sizes.String()

		require.NoError(t, applySizes(cfg, ""))
		assert.Equal(t, want, cfg.Sizes.String())
	})

	t.Run("overrides configuration sorted", func(t *testing.T) {
		cfg := config.Default(t.TempDir())

		require.NoError(t, applySizes(cfg, "24 8"))
		assert.Equal(t, icon.SizeSet{8, 24}, cfg.Sizes)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		cfg := config.Default(t.TempDir())

		err := applySizes(cfg, "large")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid sizes")
	})
}

func TestApplyStrict(t *testing.T) {
	t.Run("existing directory pins the input", func(t *testing.T) {
		h := NewTestHelper(t)
		h.WriteSVG("svg_flags", "fr.svg")

		cfg := config.Default(h.BaseDir())
		require.NoError(t, applyStrict(cfg, "svg_flags"))
		assert.Equal(t, []string{"svg_flags"}, cfg.InputFolders)
	})

	t.Run("missing directory fails", func(t *testing.T) {
		cfg := config.Default(t.TempDir())

		err := applyStrict(cfg, "missing")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing")
	})

	t.Run("regular file fails", func(t *testing.T) {
		h := NewTestHelper(t)
		h.WriteFile("notes.txt", "not a folder")

		cfg := config.Default(h.BaseDir())
		err := applyStrict(cfg, "notes.txt")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a directory")
	})
}

func TestLoadConfig(t *testing.T) {
	t.Run("anchors at the current directory", func(t *testing.T) {
		h := NewTestHelper(t)
		h.Chdir()

		cfg, err := loadConfig("")
		require.NoError(t, err)
		assert.Equal(t, h.BaseDir(), cfg.BaseDir)
	})

	t.Run("merges the default file", func(t *testing.T) {
		h := NewTestHelper(t)
		h.WriteFile("icoforge.json", `{"jobs": 4}`)
		h.Chdir()

		cfg, err := loadConfig("")
		require.NoError(t, err)
		assert.Equal(t, 4, cfg.Jobs)
	})

	t.Run("explicit path must exist", func(t *testing.T) {
		h := NewTestHelper(t)
		h.Chdir()

		_, err := loadConfig(filepath.Join(h.BaseDir(), "nope.json"))
		require.Error(t, err)
	})
}
