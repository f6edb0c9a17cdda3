//go:build integration

package integration_test

import (
	"archive/zip"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/AiYo-Studio/emod-cli/internal/fsutil"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	ConfigPath string // EMOD_CONFIG
	CacheDir   string // EMOD_CACHE_DIR, receives the template clone
	RepoDir    string // local git repository serving the templates
	WorkDir    string // where projects are created
}

// setupTestEnv creates isolated temp directories and sets environment
// variables so no user settings or caches are touched.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		ConfigPath: filepath.Join(t.TempDir(), "config.yaml"),
		CacheDir:   t.TempDir(),
		RepoDir:    t.TempDir(),
		WorkDir:    t.TempDir(),
	}

	t.Setenv("EMOD_CONFIG", env.ConfigPath)
	t.Setenv("EMOD_CACHE_DIR", env.CacheDir)
	t.Setenv("EMOD_REPO_URL", "file://"+env.RepoDir)
	return env
}

// setupTemplateRepo turns env.RepoDir into a git repository holding the
// templates shipped under examples/ at the module root.
func setupTemplateRepo(t *testing.T, env *testEnv) {
	t.Helper()

	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}
	if err := fsutil.CopyDir(filepath.Join("..", "..", "examples"), filepath.Join(env.RepoDir, "examples")); err != nil {
		t.Fatalf("copying templates: %v", err)
	}

	for _, args := range [][]string{
		{"init", "-q"},
		{"add", "."},
		{"-c", "user.name=test", "-c", "user.email=test@example.com", "commit", "-q", "-m", "templates"},
	} {
		cmd := exec.Command("git", args...)
		cmd.Dir = env.RepoDir
		if out, err := cmd.CombinedOutput(); err != nil {
			t.Fatalf("git %v: %v\n%s", args, err, out)
		}
	}
}

// writeFile creates parent directories and writes content to path.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// zipNames returns the entry names of the archive at path.
func zipNames(t *testing.T, path string) []string {
	t.Helper()
	r, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("opening %s: %v", path, err)
	}
	defer r.Close()

	names := make([]string, len(r.File))
	for i, f := range r.File {
		names[i] = f.Name
	}
	return names
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileNotExists fails the test if the file exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}
