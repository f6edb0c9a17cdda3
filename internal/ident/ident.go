// Package ident derives the short identifiers used in pack directory names.
package ident

// ShortLen is the number of leading characters kept from a pack UUID.
const ShortLen = 8

// Directory name prefixes for the two packs of a project.
const (
	BehaviorPackPrefix = "behavior_pack_"
	ResourcePackPrefix = "resource_pack_"
)

// Short returns the first ShortLen characters of id. Shorter input is
// returned whole; the format is not validated.
func Short(id string) string {
	runes := []rune(id)
	if len(runes) <= ShortLen {
		return id
	}
	return string(runes[:ShortLen])
}

// BehaviorPackDir returns the directory name of the behavior pack whose
// short identifier is short, e.g. "behavior_pack_1a2b3c4d".
func BehaviorPackDir(short string) string {
	return BehaviorPackPrefix + short
}

// ResourcePackDir returns the directory name of the resource pack whose
// short identifier is short.
func ResourcePackDir(short string) string {
	return ResourcePackPrefix + short
}
