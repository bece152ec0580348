package resolve

import (
	"encoding/json"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashicorp-forge/decnum/internal/cmd/base"
)

func newTestCommand(t *testing.T) (*Command, *cli.MockUi) {
	t.Helper()
	t.Setenv(base.SpecifierTableEnv, "")

	ui := cli.NewMockUi()
	b := &base.Command{
		Log: hclog.NewNullLogger(),
		UI:  ui,
		FS:  afero.NewMemMapFs(),
	}
	return &Command{Command: b}, ui
}

func TestRun(t *testing.T) {
	t.Run("resolves every argument", func(t *testing.T) {
		c, ui := newTestCommand(t)

		code := c.Run([]string{"ВУИА.735678.123", "ВУИА.012345-123"})
		assert.Equal(t, 0, code)
		assert.Equal(t, "VUIA/735678/123/KD\nVUIA/012345/123/SP\n", ui.OutputWriter.String())
		assert.Empty(t, ui.ErrorWriter.String())
	})

	t.Run("reports failures and exits 1", func(t *testing.T) {
		c, ui := newTestCommand(t)

		code := c.Run([]string{"ВУИА.735678.123", "БАX123.456"})
		assert.Equal(t, 1, code)
		assert.Equal(t, "VUIA/735678/123/KD\n", ui.OutputWriter.String())
		assert.Contains(t, ui.ErrorWriter.String(), "unsupported company code")
		assert.Contains(t, ui.ErrorWriter.String(), "БАX123.456")
	})

	t.Run("JSON output", func(t *testing.T) {
		c, ui := newTestCommand(t)

		code := c.Run([]string{"-json", "ВУИА.735678.12-3", "ВУИА.468332.001ЖЖ"})
		assert.Equal(t, 1, code)

		var results []result
		require.NoError(t, json.Unmarshal([]byte(ui.OutputWriter.String()), &results))
		require.Len(t, results, 2)

		assert.Equal(t, "ВУИА.735678.12-3", results[0].DecimalNumber)
		assert.Equal(t, "VUIA/735678/12/-3/KD", results[0].Path)
		assert.Equal(t, []string{"VUIA", "735678", "12", "-3", "KD"}, results[0].Segments)
		assert.Empty(t, results[0].Error)

		assert.Equal(t, "ВУИА.468332.001ЖЖ", results[1].DecimalNumber)
		assert.Empty(t, results[1].Path)
		assert.Contains(t, results[1].Error, "unsupported document specifier")
	})

	t.Run("custom specifier table", func(t *testing.T) {
		c, ui := newTestCommand(t)
		require.NoError(t, afero.WriteFile(c.FS, "specifiers.hcl", []byte(`
specifier "КД" {
  directory = "DETAIL"
}
`), 0o644))

		code := c.Run([]string{"-config", "specifiers.hcl", "ВУИА.735678.123"})
		assert.Equal(t, 0, code)
		assert.Equal(t, "VUIA/735678/123/DETAIL\n", ui.OutputWriter.String())
	})

	t.Run("specifier table from environment", func(t *testing.T) {
		c, ui := newTestCommand(t)
		require.NoError(t, afero.WriteFile(c.FS, "env.yaml", []byte(`
specifiers:
  - abbreviation: КД
    directory: FROM_ENV
`), 0o644))
		t.Setenv(base.SpecifierTableEnv, "env.yaml")

		code := c.Run([]string{"ВУИА.735678.123"})
		assert.Equal(t, 0, code)
		assert.Equal(t, "VUIA/735678/123/FROM_ENV\n", ui.OutputWriter.String())
	})

	t.Run("missing specifier table", func(t *testing.T) {
		c, ui := newTestCommand(t)

		code := c.Run([]string{"-config", "missing.hcl", "ВУИА.735678.123"})
		assert.Equal(t, 1, code)
		assert.Contains(t, ui.ErrorWriter.String(), "specifier table not found")
	})

	t.Run("no arguments", func(t *testing.T) {
		c, ui := newTestCommand(t)

		code := c.Run(nil)
		assert.Equal(t, 1, code)
		assert.Contains(t, ui.ErrorWriter.String(), "at least one decimal number is required")
	})

	t.Run("invalid separator", func(t *testing.T) {
		c, ui := newTestCommand(t)

		code := c.Run([]string{"-separator", "backslash", "ВУИА.735678.123"})
		assert.Equal(t, 1, code)
		assert.Contains(t, ui.ErrorWriter.String(), "invalid separator")
	})

	t.Run("invalid log level", func(t *testing.T) {
		c, ui := newTestCommand(t)

		code := c.Run([]string{"-log-level", "loud", "ВУИА.735678.123"})
		assert.Equal(t, 1, code)
		assert.Contains(t, ui.ErrorWriter.String(), "invalid log level")
	})
}

func TestHelp(t *testing.T) {
	c, _ := newTestCommand(t)

	help := c.Help()
	assert.Contains(t, help, "Usage: decnum resolve")
	assert.Contains(t, help, "-config")
	assert.Contains(t, help, "-json")
	assert.Contains(t, help, "-separator=slash")
}
