// Package release bumps the version of an emod project and packages its
// behavior and resource packs into a single zip archive.
//
// A release runs in a fixed order: the version is resolved, the two pack
// reference documents at the project root are updated, then each pack's
// own manifest, and finally the archive is assembled. Every step reads
// state the previous one left on disk, so the order never changes.
package release
