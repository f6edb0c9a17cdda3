// Package catalog manages the local clone of the template repository. It
// handles cloning, updating and freshness tracking, and locates the
// templates inside the clone.
package catalog

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/AiYo-Studio/emod-cli/internal/config"
	oerrors "github.com/AiYo-Studio/emod-cli/internal/errors"
	"github.com/AiYo-Studio/emod-cli/internal/fsutil"
	"github.com/AiYo-Studio/emod-cli/internal/output"
	"github.com/AiYo-Studio/emod-cli/internal/template"
)

const (
	// freshnessFile is the name of the timestamp marker file.
	freshnessFile = ".emod-updated"

	// tmpSuffix is appended to the target dir during atomic clone.
	tmpSuffix = ".tmp"

	// TemplatesDir is the directory of the repository holding one
	// subdirectory per template.
	TemplatesDir = "examples"

	// DefaultTemplate is used when no template is named.
	DefaultTemplate = "default"
)

// Catalog is a template repository cloned under a cache directory.
type Catalog struct {
	RepoURL string
	// Dir is the clone location.
	Dir    string
	MaxAge time.Duration
}

// New returns the Catalog described by cfg.
func New(cfg *config.Config) *Catalog {
	return &Catalog{
		RepoURL: cfg.RepoURL,
		Dir:     filepath.Join(cfg.CacheDir, "repo"),
		MaxAge:  cfg.TemplateMaxAge,
	}
}

// Ensure makes sure a usable clone exists. A missing clone is cloned; a
// stale one is pulled. When pulling fails the existing clone is kept and a
// warning is logged.
func (c *Catalog) Ensure() error {
	if !fsutil.Exists(filepath.Join(c.Dir, ".git")) {
		output.Info("fetching templates", "repo", c.RepoURL)
		return c.Clone()
	}
	if !IsStale(c.Dir, c.MaxAge) {
		output.Debug("templates are fresh", "dir", c.Dir)
		return nil
	}

	output.Info("refreshing templates", "repo", c.RepoURL)
	if err := c.Update(); err != nil {
		output.Warn("could not refresh templates, using cached copy", "error", err)
	}
	return nil
}

// Clone performs a shallow clone of the repository into c.Dir. It tries a
// sparse checkout of the templates directory first and falls back to a
// full shallow clone.
//
// The clone is atomic: it writes to a .tmp directory first, then renames
// on success. On failure the .tmp directory is cleaned up.
func (c *Catalog) Clone() error {
	if err := ensureGit(); err != nil {
		return err
	}

	tmpDir := c.Dir + tmpSuffix

	// Clean up any leftover tmp dir from a previous failed attempt.
	_ = os.RemoveAll(tmpDir)

	if err := os.MkdirAll(filepath.Dir(tmpDir), 0755); err != nil {
		return oerrors.WrapIO(err, "creating template cache directory")
	}

	if err := trySparseClone(tmpDir, c.RepoURL); err != nil {
		output.Debug("sparse clone failed, falling back", "error", err)
		_ = os.RemoveAll(tmpDir)
		if err := fullShallowClone(tmpDir, c.RepoURL); err != nil {
			_ = os.RemoveAll(tmpDir)
			return fmt.Errorf("cloning templates: %w", err)
		}
	}

	if err := os.RemoveAll(c.Dir); err != nil {
		_ = os.RemoveAll(tmpDir)
		return oerrors.WrapIO(err, "removing previous template clone")
	}
	if err := os.Rename(tmpDir, c.Dir); err != nil {
		_ = os.RemoveAll(tmpDir)
		return oerrors.WrapIO(err, "finalizing template clone")
	}

	WriteFreshnessMarker(c.Dir)
	return nil
}

// Update pulls the latest changes, cloning first if there is no clone.
func (c *Catalog) Update() error {
	if err := ensureGit(); err != nil {
		return err
	}

	if !fsutil.Exists(filepath.Join(c.Dir, ".git")) {
		return c.Clone()
	}

	cmd := exec.Command("git", "pull", "--depth=1", "--rebase")
	cmd.Dir = c.Dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("pulling template updates: %w\n%s", err, strings.TrimSpace(string(out)))
	}

	WriteFreshnessMarker(c.Dir)
	return nil
}

// TemplateDir returns the directory of the named template.
func (c *Catalog) TemplateDir(name string) (string, error) {
	return Locate(filepath.Join(c.Dir, TemplatesDir), name)
}

// List returns the templates available in the clone.
func (c *Catalog) List() ([]Entry, error) {
	return ListDir(filepath.Join(c.Dir, TemplatesDir))
}

// Locate returns root/name if it is a template directory.
func Locate(root, name string) (string, error) {
	if name == "" {
		name = DefaultTemplate
	}
	if name != filepath.Base(name) || name == "." || name == ".." {
		return "", oerrors.NewInvalidDataError(fmt.Sprintf("invalid template name %q", name), root)
	}

	dir := filepath.Join(root, name)
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return "", oerrors.NewNotFoundError(
			fmt.Sprintf("template %q does not exist", name), dir,
			"run `emod templates` to see the available templates")
	}
	return dir, nil
}

// Entry describes one available template.
type Entry struct {
	Name        string
	Description string
	Dir         string
}

// ListDir returns the templates found directly under root, sorted by name.
// Directories without a readable descriptor are skipped.
func ListDir(root string) ([]Entry, error) {
	dirents, err := os.ReadDir(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, oerrors.NewNotFoundError("template directory does not exist", root, "")
		}
		return nil, oerrors.WrapIO(err, fmt.Sprintf("reading %s", root))
	}

	var entries []Entry
	for _, d := range dirents {
		if !d.IsDir() {
			continue
		}
		dir := filepath.Join(root, d.Name())
		cfg, err := template.LoadConfig(dir)
		if err != nil {
			output.Debug("skipping template", "dir", dir, "error", err)
			continue
		}
		entries = append(entries, Entry{
			Name:        d.Name(),
			Description: cfg.Template.Description,
			Dir:         dir,
		})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

// WriteFreshnessMarker writes the current Unix timestamp to the freshness file.
func WriteFreshnessMarker(repoDir string) {
	markerPath := filepath.Join(repoDir, freshnessFile)
	ts := strconv.FormatInt(time.Now().Unix(), 10)
	_ = os.WriteFile(markerPath, []byte(ts), 0644)
}

// ReadFreshnessMarker reads the timestamp from the freshness file.
// Returns zero time if the file doesn't exist or can't be parsed.
func ReadFreshnessMarker(repoDir string) time.Time {
	data, err := os.ReadFile(filepath.Join(repoDir, freshnessFile))
	if err != nil {
		return time.Time{}
	}
	ts, err := strconv.ParseInt(strings.TrimSpace(string(data)), 10, 64)
	if err != nil {
		return time.Time{}
	}
	return time.Unix(ts, 0)
}

// IsStale returns true if the clone was last updated more than maxAge ago
// or has no freshness marker.
func IsStale(repoDir string, maxAge time.Duration) bool {
	lastUpdated := ReadFreshnessMarker(repoDir)
	if lastUpdated.IsZero() {
		return true
	}
	return time.Since(lastUpdated) > maxAge
}

// trySparseClone attempts a sparse shallow clone that only checks out the
// templates directory.
func trySparseClone(targetDir, repoURL string) error {
	cmd := exec.Command("git", "clone", "--depth=1", "--sparse", "--no-checkout", repoURL, targetDir)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("sparse clone: %w\n%s", err, strings.TrimSpace(string(out)))
	}

	cmd = exec.Command("git", "sparse-checkout", "set", TemplatesDir+"/")
	cmd.Dir = targetDir
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("sparse-checkout set: %w\n%s", err, strings.TrimSpace(string(out)))
	}

	cmd = exec.Command("git", "checkout")
	cmd.Dir = targetDir
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("checkout: %w\n%s", err, strings.TrimSpace(string(out)))
	}
	return nil
}

// fullShallowClone performs a regular --depth=1 clone (fallback for older git).
func fullShallowClone(targetDir, repoURL string) error {
	cmd := exec.Command("git", "clone", "--depth=1", repoURL, targetDir)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("shallow clone: %w\n%s", err, strings.TrimSpace(string(out)))
	}
	return nil
}

// ensureGit checks that git is available on PATH.
func ensureGit() error {
	if _, err := exec.LookPath("git"); err != nil {
		return oerrors.NewNotFoundError("git is required but not found in PATH", "",
			"install git or pass --template-dir with a local template")
	}
	return nil
}
