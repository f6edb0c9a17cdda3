package release

import (
	"path/filepath"

	"github.com/AiYo-Studio/emod-cli/internal/manifest"
	"github.com/AiYo-Studio/emod-cli/internal/output"
	"github.com/AiYo-Studio/emod-cli/internal/project"
)

// UpdateManifests writes v into every version-bearing field of the project
// at dir: [0].version of both pack reference documents, then header.version
// and modules[0].version of each pack manifest.
func UpdateManifests(dir string, info *project.ReleaseInfo, v Version) error {
	refs := []string{
		filepath.Join(dir, project.WorldBehaviorPacksFile),
		filepath.Join(dir, project.WorldResourcePacksFile),
	}
	for _, path := range refs {
		err := manifest.Update(path, func(doc *manifest.Document) error {
			return doc.Set([]uint64(v), 0, "version")
		})
		if err != nil {
			return err
		}
		output.Debug("updated pack reference", "file", path, "version", v)
	}

	packs := []string{
		filepath.Join(info.BehaviorPackPath(dir), project.PackManifestFile),
		filepath.Join(info.ResourcePackPath(dir), project.PackManifestFile),
	}
	for _, path := range packs {
		err := manifest.Update(path, func(doc *manifest.Document) error {
			if err := doc.Set([]uint64(v), "header", "version"); err != nil {
				return err
			}
			return doc.Set([]uint64(v), "modules", 0, "version")
		})
		if err != nil {
			return err
		}
		output.Debug("updated pack manifest", "file", path, "version", v)
	}
	return nil
}
