package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/AiYo-Studio/emod-cli/internal/errors"
)

func TestLowerFirst(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"DemoMod", "demoMod"},
		{"demoMod", "demoMod"},
		{"ABC", "aBC"},
		{"Ärger", "ärger"},
		{"", ""},
		{"1st", "1st"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, LowerFirst(tt.in))
		})
	}
}

func TestNewInfo(t *testing.T) {
	info := NewInfo("DemoMod")

	assert.Equal(t, "DemoMod", info.Name)
	assert.Equal(t, "demoMod", info.LowerName)

	ids := []string{info.BehaviorPackUUID, info.ResourcePackUUID, info.BehaviorModuleUUID, info.ResourceModuleUUID}
	seen := map[string]bool{}
	for _, id := range ids {
		parsed, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(4), parsed.Version())
		assert.Len(t, id, 36)
		seen[id] = true
	}
	assert.Len(t, seen, 4, "identifiers must be independent")
}

func TestInfo_Bindings(t *testing.T) {
	info := &Info{
		Name:               "DemoMod",
		LowerName:          "demoMod",
		BehaviorPackUUID:   "1a2b3c4d-0000-4000-8000-000000000001",
		ResourcePackUUID:   "5e6f7a8b-0000-4000-8000-000000000002",
		BehaviorModuleUUID: "9c0d1e2f-0000-4000-8000-000000000003",
		ResourceModuleUUID: "3a4b5c6d-0000-4000-8000-000000000004",
	}

	assert.Equal(t, map[string]string{
		"mod_name":                 "DemoMod",
		"mod_name_lower":           "demoMod",
		"behavior_pack_uuid":       "1a2b3c4d-0000-4000-8000-000000000001",
		"resource_pack_uuid":       "5e6f7a8b-0000-4000-8000-000000000002",
		"behavior_module_uuid":     "9c0d1e2f-0000-4000-8000-000000000003",
		"resource_module_uuid":     "3a4b5c6d-0000-4000-8000-000000000004",
		"behavior_pack_uuid_short": "1a2b3c4d",
		"resource_pack_uuid_short": "5e6f7a8b",
	}, info.Bindings())
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestReadReleaseInfo(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, WorldBehaviorPacksFile),
		`[{"pack_id": "1a2b3c4d-0000-4000-8000-000000000001", "version": [1, 2, 3]}]`)
	writeFile(t, filepath.Join(dir, WorldResourcePacksFile),
		`[{"pack_id": "5e6f7a8b-0000-4000-8000-000000000002", "version": [1, 2, 0]}]`)

	info, err := ReadReleaseInfo(dir)
	require.NoError(t, err)

	assert.Equal(t, []uint64{1, 2, 3}, info.BehaviorVersion)
	assert.Equal(t, []uint64{1, 2, 0}, info.ResourceVersion)
	assert.Equal(t, "1a2b3c4d", info.BehaviorID)
	assert.Equal(t, "5e6f7a8b", info.ResourceID)
	assert.Equal(t, filepath.Join(dir, "behavior_pack_1a2b3c4d"), info.BehaviorPackPath(dir))
	assert.Equal(t, filepath.Join(dir, "resource_pack_5e6f7a8b"), info.ResourcePackPath(dir))
}

func TestReadReleaseInfo_Errors(t *testing.T) {
	valid := `[{"pack_id": "5e6f7a8b", "version": [1, 0, 0]}]`

	tests := []struct {
		name     string
		behavior string
		want     error
	}{
		{"missing document", "", oerrors.ErrNotFound},
		{"bad syntax", `[{"pack_id": `, oerrors.ErrParse},
		{"empty array", `[]`, oerrors.ErrInvalidData},
		{"version not an array", `[{"pack_id": "x", "version": "1.0.0"}]`, oerrors.ErrInvalidData},
		{"negative component", `[{"pack_id": "x", "version": [1, -1, 0]}]`, oerrors.ErrInvalidData},
		{"pack_id missing", `[{"version": [1, 0, 0]}]`, oerrors.ErrInvalidData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if tt.behavior != "" {
				writeFile(t, filepath.Join(dir, WorldBehaviorPacksFile), tt.behavior)
			}
			writeFile(t, filepath.Join(dir, WorldResourcePacksFile), valid)

			_, err := ReadReleaseInfo(dir)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}
