package release

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	behaviorID = "1a2b3c4d"
	resourceID = "5e6f7a8b"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

// newProject lays out a released-once project with behavior version
// [1,2,3] and resource version [1,2,0].
func newProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	writeFile(t, filepath.Join(dir, "world_behavior_packs.json"),
		`[{"pack_id": "`+behaviorID+`-0000-4000-8000-000000000001", "version": [1, 2, 3]}]`)
	writeFile(t, filepath.Join(dir, "world_resource_packs.json"),
		`[{"pack_id": "`+resourceID+`-0000-4000-8000-000000000002", "version": [1, 2, 0]}]`)

	bp := filepath.Join(dir, "behavior_pack_"+behaviorID)
	writeFile(t, filepath.Join(bp, "pack_manifest.json"), `{
  "format_version": 1,
  "header": {"name": "Demo", "uuid": "`+behaviorID+`-0000-4000-8000-000000000001", "version": [1, 2, 3]},
  "modules": [{"type": "data", "uuid": "9c0d1e2f-0000-4000-8000-000000000003", "version": [1, 2, 3]}]
}`)
	writeFile(t, filepath.Join(bp, "demoScripts", "modMain.py"), "# main\n")
	writeFile(t, filepath.Join(bp, "entities", ".gitkeep"), "")

	rp := filepath.Join(dir, "resource_pack_"+resourceID)
	writeFile(t, filepath.Join(rp, "pack_manifest.json"), `{
  "format_version": 1,
  "header": {"name": "Demo", "uuid": "`+resourceID+`-0000-4000-8000-000000000002", "version": [1, 2, 0]},
  "modules": [{"type": "resources", "uuid": "3a4b5c6d-0000-4000-8000-000000000004", "version": [1, 2, 0]}]
}`)
	writeFile(t, filepath.Join(rp, "textures", ".gitkeep"), "")

	return dir
}

func zipEntries(t *testing.T, path string) map[string]string {
	t.Helper()
	r, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer r.Close()

	entries := map[string]string{}
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			entries[f.Name] = ""
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		data := make([]byte, f.UncompressedSize64)
		_, err = io.ReadFull(rc, data)
		require.NoError(t, err)
		rc.Close()
		entries[f.Name] = string(data)
	}
	return entries
}
