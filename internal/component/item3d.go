package component

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	oerrors "github.com/AiYo-Studio/emod-cli/internal/errors"
	"github.com/AiYo-Studio/emod-cli/internal/fsutil"
	"github.com/AiYo-Studio/emod-cli/internal/manifest"
	"github.com/AiYo-Studio/emod-cli/internal/project"
)

// Item3D is a wearable item rendered with a custom geometry.
const Item3D = "3ditem"

// DefaultIdentifier is used when no identifier is given.
const DefaultIdentifier = "unknown"

const geometryFormatVersion = "1.12.0"

func generate3DItem(info *project.ReleaseInfo, opts Options) ([]string, error) {
	for _, f := range []struct{ kind, path string }{
		{"geometry", opts.Geometry},
		{"texture", opts.Texture},
	} {
		if !fsutil.Exists(f.path) {
			return nil, oerrors.NewNotFoundError(fmt.Sprintf("%s file does not exist", f.kind), f.path, "")
		}
	}

	identifier := opts.Identifier
	if identifier == "" {
		identifier = DefaultIdentifier
	}
	fileID := strings.ReplaceAll(identifier, ":", "_")
	geometryName := "geometry." + strings.ReplaceAll(identifier, ":", ".")

	beh := info.BehaviorPackPath(opts.ProjectDir)
	res := info.ResourcePackPath(opts.ProjectDir)

	geo, err := manifest.Read(opts.Geometry)
	if err != nil {
		return nil, err
	}
	if err := geo.Set(geometryFormatVersion, "format_version"); err != nil {
		return nil, err
	}
	if err := geo.Set(geometryName, "minecraft:geometry", 0, "description", "identifier"); err != nil {
		return nil, fmt.Errorf("geometry %s: %w", opts.Geometry, err)
	}

	outputs := []struct {
		path string
		doc  *manifest.Document
	}{
		{filepath.Join(beh, "netease_items_beh", fileID+".json"), manifest.New(itemBehavior(identifier))},
		{filepath.Join(res, "netease_items_res", fileID+".json"), manifest.New(itemResource(identifier))},
		{filepath.Join(res, "models", "entity", fileID+".geo.json"), geo},
		{filepath.Join(res, "attachables", fileID+".json"), manifest.New(attachable(identifier, fileID, geometryName))},
	}

	var created []string
	for _, o := range outputs {
		if err := os.MkdirAll(filepath.Dir(o.path), 0755); err != nil {
			return created, oerrors.WrapIO(err, fmt.Sprintf("creating %s", filepath.Dir(o.path)))
		}
		if err := manifest.Write(o.path, o.doc); err != nil {
			return created, err
		}
		created = append(created, rel(opts.ProjectDir, o.path))
	}

	texture := filepath.Join(res, "textures", "models", fileID+".png")
	if err := copyFile(opts.Texture, texture); err != nil {
		return created, err
	}
	created = append(created, rel(opts.ProjectDir, texture))

	return created, nil
}

func itemBehavior(identifier string) map[string]any {
	return map[string]any{
		"format_version": "1.10",
		"minecraft:item": map[string]any{
			"components": map[string]any{
				"minecraft:max_damage": 10,
				"netease:armor": map[string]any{
					"armor_slot":  3,
					"defense":     20,
					"enchantment": 10,
				},
			},
			"description": map[string]any{
				"category":                "Equipment",
				"identifier":              identifier,
				"register_to_create_menu": true,
			},
		},
	}
}

func itemResource(identifier string) map[string]any {
	return map[string]any{
		"format_version": "1.10",
		"minecraft:item": map[string]any{
			"components": map[string]any{
				"minecraft:icon": identifier,
			},
			"description": map[string]any{
				"category":                "Equipment",
				"identifier":              identifier,
				"register_to_create_menu": true,
			},
		},
	}
}

func attachable(identifier, fileID, geometryName string) map[string]any {
	return map[string]any{
		"format_version": "1.10.0",
		"minecraft:attachable": map[string]any{
			"description": map[string]any{
				"geometry": map[string]any{
					"default": geometryName,
				},
				"identifier": identifier,
				"materials": map[string]any{
					"default":   "armor",
					"enchanted": "armor_enchanted",
				},
				"render_controllers": []any{"controller.render.armor"},
				"scripts": map[string]any{
					"parent_setup": "variable.chest_layer_visible = 0.0;",
				},
				"textures": map[string]any{
					"default":   "textures/models/" + fileID,
					"enchanted": "textures/misc/enchanted_item_glint",
				},
			},
		},
	}
}

func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return oerrors.WrapIO(err, fmt.Sprintf("reading %s", src))
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return oerrors.WrapIO(err, fmt.Sprintf("creating %s", filepath.Dir(dst)))
	}
	if err := os.WriteFile(dst, data, 0644); err != nil {
		return oerrors.WrapIO(err, fmt.Sprintf("writing %s", dst))
	}
	return nil
}

func rel(base, path string) string {
	r, err := filepath.Rel(base, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(r)
}
