// Package project describes the on-disk layout of an emod mod project and
// the identity values generated for it.
package project

import (
	"path/filepath"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/AiYo-Studio/emod-cli/internal/ident"
)

// Files at the project root and inside each pack.
const (
	WorldBehaviorPacksFile = "world_behavior_packs.json"
	WorldResourcePacksFile = "world_resource_packs.json"
	PackManifestFile       = "pack_manifest.json"

	// KeepMarker is the suffix of files that only keep empty directories
	// under version control. They are never packaged.
	KeepMarker = ".gitkeep"
)

// Template variable names bound from an Info.
const (
	VarModName            = "mod_name"
	VarModNameLower       = "mod_name_lower"
	VarBehaviorPackUUID   = "behavior_pack_uuid"
	VarResourcePackUUID   = "resource_pack_uuid"
	VarBehaviorModuleUUID = "behavior_module_uuid"
	VarResourceModuleUUID = "resource_module_uuid"
	VarBehaviorPackShort  = "behavior_pack_uuid_short"
	VarResourcePackShort  = "resource_pack_uuid_short"
)

// Info holds the values generated once when a project is created.
type Info struct {
	Name               string
	LowerName          string
	BehaviorPackUUID   string
	ResourcePackUUID   string
	BehaviorModuleUUID string
	ResourceModuleUUID string
}

// NewInfo generates a fresh Info for a project called name.
func NewInfo(name string) *Info {
	return &Info{
		Name:               name,
		LowerName:          LowerFirst(name),
		BehaviorPackUUID:   uuid.NewString(),
		ResourcePackUUID:   uuid.NewString(),
		BehaviorModuleUUID: uuid.NewString(),
		ResourceModuleUUID: uuid.NewString(),
	}
}

// Bindings returns the template variables derived from the Info.
func (i *Info) Bindings() map[string]string {
	return map[string]string{
		VarModName:            i.Name,
		VarModNameLower:       i.LowerName,
		VarBehaviorPackUUID:   i.BehaviorPackUUID,
		VarResourcePackUUID:   i.ResourcePackUUID,
		VarBehaviorModuleUUID: i.BehaviorModuleUUID,
		VarResourceModuleUUID: i.ResourceModuleUUID,
		VarBehaviorPackShort:  ident.Short(i.BehaviorPackUUID),
		VarResourcePackShort:  ident.Short(i.ResourcePackUUID),
	}
}

var lowerCaser = cases.Lower(language.Und)

// LowerFirst lowercases the first rune of s and leaves the rest unchanged:
// "DemoMod" becomes "demoMod".
func LowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return lowerCaser.String(s[:size]) + s[size:]
}

// BehaviorPackPath returns the behavior pack directory of the project at dir.
func BehaviorPackPath(dir, short string) string {
	return filepath.Join(dir, ident.BehaviorPackDir(short))
}

// ResourcePackPath returns the resource pack directory of the project at dir.
func ResourcePackPath(dir, short string) string {
	return filepath.Join(dir, ident.ResourcePackDir(short))
}
