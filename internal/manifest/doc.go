// Package manifest reads, mutates and writes the JSON documents of a mod
// project: the root pack-reference lists (world_behavior_packs.json,
// world_resource_packs.json) and each pack's pack_manifest.json. Documents
// are addressed by explicit key/index paths so an absent field or a field of
// the wrong shape is reported as an error instead of being silently created.
// It also validates those documents against embedded JSON Schemas.
package manifest
