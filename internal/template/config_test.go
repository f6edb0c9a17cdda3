package template

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/AiYo-Studio/emod-cli/internal/errors"
)

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join("testdata", "basic"))
	require.NoError(t, err)

	assert.Equal(t, "basic", cfg.Template.Name)
	assert.Equal(t, "Minimal two-pack project", cfg.Template.Description)
	require.Len(t, cfg.Renames, 3)
	assert.Equal(t, RenameRule{From: "behavior_pack", To: "behavior_pack_{{behavior_pack_uuid_short}}"}, cfg.Renames[0])
	assert.Equal(t, []string{"json", "py"}, cfg.Process.FileExtensions)
	assert.Len(t, cfg.Variables, 5)
	assert.False(t, cfg.Variables["author"].Required)
}

func TestRequiredVariables_Sorted(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join("testdata", "basic"))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"behavior_pack_uuid_short",
		"mod_name",
		"mod_name_lower",
		"resource_pack_uuid_short",
	}, cfg.RequiredVariables())
}

func TestLoadConfig_Missing(t *testing.T) {
	_, err := LoadConfig(t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrConfig))
}

func TestLoadConfig_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad syntax", "[template\nname = "},
		{"missing name", "[template]\ndescription = \"x\"\n"},
		{"rename without target", "[template]\nname = \"x\"\n[[renames]]\nfrom = \"a\"\n"},
		{"wrong type", "[template]\nname = \"x\"\n[process]\nfile_extensions = \"json\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(dir, DescriptorFile), []byte(tt.content), 0644))

			_, err := LoadConfig(dir)
			require.Error(t, err)
			assert.True(t, errors.Is(err, oerrors.ErrConfig))
		})
	}
}

func TestParseConfig_NoVariablesTable(t *testing.T) {
	cfg, err := ParseConfig([]byte("[template]\nname = \"bare\"\n"))
	require.NoError(t, err)
	assert.NotNil(t, cfg.Variables)
	assert.Empty(t, cfg.RequiredVariables())
}
