package yaml_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/drivetext"
	"github.com/fwojciec/drivetext/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("empty input yields defaults", func(t *testing.T) {
		t.Parallel()

		cfg, err := yaml.Parse(strings.NewReader(""))

		require.NoError(t, err)
		assert.Equal(t, yaml.DefaultConfig(), cfg)
	})

	t.Run("overrides thresholds and keeps default lists", func(t *testing.T) {
		t.Parallel()

		cfg, err := yaml.Parse(strings.NewReader(`
sanitizer:
  min_length: 20
`))

		require.NoError(t, err)
		assert.Equal(t, 20, cfg.Sanitizer.MinLength)
		assert.Equal(t, 2, cfg.Sanitizer.MinSpaces)
		assert.Equal(t, drivetext.DefaultRules().UIPhrases, cfg.Sanitizer.UIPhrases)
		assert.Equal(t, drivetext.DefaultMatchRules(), cfg.Frames)
	})

	t.Run("given list replaces defaults", func(t *testing.T) {
		t.Parallel()

		cfg, err := yaml.Parse(strings.NewReader(`
frames:
  - name: office
    selector: "iframe[src*='officeapps']"
  - selector: iframe
sanitizer:
  ui_phrases: ["Print", "Download"]
`))

		require.NoError(t, err)
		assert.Equal(t, []drivetext.MatchRule{
			{Name: "office", Selector: "iframe[src*='officeapps']"},
			{Name: "iframe", Selector: "iframe"},
		}, cfg.Frames)
		assert.Equal(t, []string{"Print", "Download"}, cfg.Sanitizer.UIPhrases)
		assert.Equal(t, drivetext.DefaultRules().Noise, cfg.Sanitizer.Noise)
	})

	t.Run("rejects invalid selector", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.Parse(strings.NewReader(`
frames:
  - name: broken
    selector: "iframe["
`))

		require.Error(t, err)
		assert.Equal(t, drivetext.EINVALID, drivetext.ErrorCode(err))
		assert.Contains(t, drivetext.ErrorMessage(err), "frame rule 1")
	})

	t.Run("rejects empty frame list", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.Parse(strings.NewReader("frames: []\n"))

		assert.Equal(t, drivetext.EINVALID, drivetext.ErrorCode(err))
	})

	t.Run("rejects unknown keys", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.Parse(strings.NewReader(`
sanitizer:
  min_lenght: 20
`))

		assert.Equal(t, drivetext.EINVALID, drivetext.ErrorCode(err))
	})

	t.Run("rejects negative thresholds", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.Parse(strings.NewReader(`
sanitizer:
  min_spaces: -1
`))

		assert.Equal(t, drivetext.EINVALID, drivetext.ErrorCode(err))
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.Parse(strings.NewReader("frames: [unclosed\n"))

		assert.Equal(t, drivetext.EINVALID, drivetext.ErrorCode(err))
	})
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("reads file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "rules.yaml")
		require.NoError(t, os.WriteFile(path, []byte("sanitizer:\n  min_length: 5\n"), 0o644))

		cfg, err := yaml.Load(path)

		require.NoError(t, err)
		assert.Equal(t, 5, cfg.Sanitizer.MinLength)
	})

	t.Run("missing file is not found", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.Load(filepath.Join(t.TempDir(), "missing.yaml"))

		assert.Equal(t, drivetext.ENOTFOUND, drivetext.ErrorCode(err))
	})
}
