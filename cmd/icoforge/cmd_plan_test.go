package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanCommand(t *testing.T) {
	t.Run("resolves plans without converting", func(t *testing.T) {
		h := NewTestHelper(t)
		h.Chdir()
		h.WriteSVG("svg", "logo.svg")
		h.WriteSVG("svg", "logo-16px.svg")

		cmd := newPlanCmd()
		cmd.SetArgs([]string{"--input", "svg", "--sizes", "16 32 48"})

		require.NoError(t, cmd.Execute())

		_, err := os.Stat(filepath.Join(h.BaseDir(), "temp_pngs"))
		assert.True(t, os.IsNotExist(err), "planning must not create conversion directories")
	})

	t.Run("table format", func(t *testing.T) {
		h := NewTestHelper(t)
		h.Chdir()
		h.WriteSVG("svg", "logo.svg")
		h.WriteSVG("svg", "logo-16px.svg")
		h.WriteSVG("svg", "logo-32px.svg")

		cmd := newPlanCmd()
		cmd.SetArgs([]string{"--input", "svg", "--sizes", "16 32 48", "--table"})

		require.NoError(t, cmd.Execute())
	})

	t.Run("discovers svg folders", func(t *testing.T) {
		h := NewTestHelper(t)
		h.Chdir()
		h.WriteSVG("svg", "a.svg")
		h.WriteSVG("svg_flags", "fr.svg")

		cmd := newPlanCmd()
		cmd.SetArgs([]string{"--sizes", "16"})

		require.NoError(t, cmd.Execute())
	})

	t.Run("rejects unparseable sizes", func(t *testing.T) {
		h := NewTestHelper(t)
		h.Chdir()

		cmd := newPlanCmd()
		cmd.SetArgs([]string{"--sizes", "nope"})

		err := cmd.Execute()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid sizes")
	})

	t.Run("missing folder fails", func(t *testing.T) {
		h := NewTestHelper(t)
		h.Chdir()

		cmd := newPlanCmd()
		cmd.SetArgs([]string{"--input", "missing"})

		err := cmd.Execute()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to plan")
	})
}
