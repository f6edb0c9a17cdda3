package project

import (
	"fmt"
	"path/filepath"

	"github.com/AiYo-Studio/emod-cli/internal/ident"
	"github.com/AiYo-Studio/emod-cli/internal/manifest"
	"github.com/AiYo-Studio/emod-cli/internal/output"
)

// ReleaseInfo is the version and identity state of a project, recovered
// from its pack reference documents on every call.
type ReleaseInfo struct {
	BehaviorVersion []uint64
	ResourceVersion []uint64
	// BehaviorID and ResourceID are the short identifiers that suffix the
	// pack directory names.
	BehaviorID string
	ResourceID string
}

// BehaviorPackPath returns the behavior pack directory under dir.
func (r *ReleaseInfo) BehaviorPackPath(dir string) string {
	return BehaviorPackPath(dir, r.BehaviorID)
}

// ResourcePackPath returns the resource pack directory under dir.
func (r *ReleaseInfo) ResourcePackPath(dir string) string {
	return ResourcePackPath(dir, r.ResourceID)
}

// ReadReleaseInfo recovers the ReleaseInfo of the project at dir.
func ReadReleaseInfo(dir string) (*ReleaseInfo, error) {
	bVersion, bID, err := readPackReference(filepath.Join(dir, WorldBehaviorPacksFile))
	if err != nil {
		return nil, err
	}
	rVersion, rID, err := readPackReference(filepath.Join(dir, WorldResourcePacksFile))
	if err != nil {
		return nil, err
	}

	info := &ReleaseInfo{
		BehaviorVersion: bVersion,
		ResourceVersion: rVersion,
		BehaviorID:      ident.Short(bID),
		ResourceID:      ident.Short(rID),
	}
	output.Debug("recovered release info",
		"behavior", info.BehaviorID, "resource", info.ResourceID)
	return info, nil
}

// readPackReference returns the version and pack_id of the first entry of
// a pack reference document.
func readPackReference(path string) ([]uint64, string, error) {
	doc, err := manifest.Read(path)
	if err != nil {
		return nil, "", err
	}

	version, err := doc.GetUintArray(0, "version")
	if err != nil {
		return nil, "", fmt.Errorf("reading %s: %w", path, err)
	}
	id, err := doc.GetString(0, "pack_id")
	if err != nil {
		return nil, "", fmt.Errorf("reading %s: %w", path, err)
	}
	return version, id, nil
}
