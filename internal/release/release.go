package release

import (
	"fmt"
	"os"
	"path/filepath"

	oerrors "github.com/AiYo-Studio/emod-cli/internal/errors"
	"github.com/AiYo-Studio/emod-cli/internal/output"
	"github.com/AiYo-Studio/emod-cli/internal/project"
)

// Options configures a release.
type Options struct {
	// Dir is the project root.
	Dir string
	// Version is the explicit version to release. When empty, the behavior
	// pack's patch version is incremented.
	Version string
}

// Result describes a completed release.
type Result struct {
	Previous *project.ReleaseInfo
	Version  Version
	Archive  string
	Entries  []string
	Warnings []string
}

// Run releases the project described by opts. The version is resolved and
// the pack directories are checked before any file is modified.
func Run(opts Options) (*Result, error) {
	dir := opts.Dir
	if dir == "" {
		dir = "."
	}

	info, err := project.ReadReleaseInfo(dir)
	if err != nil {
		return nil, err
	}
	output.Info("current versions",
		"behavior", Version(info.BehaviorVersion), "resource", Version(info.ResourceVersion))

	version, err := ResolveVersion(opts.Version, info.BehaviorVersion)
	if err != nil {
		return nil, err
	}
	output.Info("resolved version", "version", version)

	result := &Result{Previous: info, Version: version}
	result.Warnings = checkVersion(info, version)
	for _, w := range result.Warnings {
		output.Warn(w)
	}

	packs := []string{
		filepath.Base(info.BehaviorPackPath(dir)),
		filepath.Base(info.ResourcePackPath(dir)),
	}
	for _, pack := range packs {
		if err := requireDir(filepath.Join(dir, pack)); err != nil {
			return nil, err
		}
	}

	if err := UpdateManifests(dir, info, version); err != nil {
		return nil, fmt.Errorf("updating manifests: %w", err)
	}

	dest := filepath.Join(dir, ArchiveName(version))
	entries, err := Archive(dir, packs, dest)
	if err != nil {
		return nil, fmt.Errorf("packaging release: %w", err)
	}
	result.Archive = dest
	result.Entries = entries
	output.Info("packaged release", "archive", dest, "entries", len(entries))

	return result, nil
}

// checkVersion returns advisory warnings about the resolved version.
func checkVersion(info *project.ReleaseInfo, next Version) []string {
	var warnings []string

	if len(next) != 3 {
		warnings = append(warnings,
			fmt.Sprintf("version %s has %d components; manifests expect 3", next, len(next)))
		return warnings
	}

	advances, err := Advances(Version(info.BehaviorVersion), next)
	if err != nil {
		output.Debug("skipping version order check", "error", err)
	} else if !advances {
		warnings = append(warnings,
			fmt.Sprintf("version %s does not advance the current behavior version %s",
				next, Version(info.BehaviorVersion)))
	}

	if !Version(info.BehaviorVersion).equal(Version(info.ResourceVersion)) {
		warnings = append(warnings,
			fmt.Sprintf("behavior version %s and resource version %s differ; both are set to %s",
				Version(info.BehaviorVersion), Version(info.ResourceVersion), next))
	}
	return warnings
}

func (v Version) equal(other Version) bool {
	if len(v) != len(other) {
		return false
	}
	for i := range v {
		if v[i] != other[i] {
			return false
		}
	}
	return true
}

func requireDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return oerrors.NewNotFoundError("pack directory does not exist", path,
				"the pack_id in the pack reference documents must match the pack directory suffix")
		}
		return oerrors.WrapIO(err, fmt.Sprintf("reading %s", path))
	}
	if !info.IsDir() {
		return oerrors.NewInvalidDataError("pack path is not a directory", path)
	}
	return nil
}
