package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateFile_Valid(t *testing.T) {
	tests := []struct {
		file   string
		schema Schema
	}{
		{"pack_manifest.json", SchemaPackManifest},
		{"world_behavior_packs.json", SchemaPackReferences},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			result, err := ValidateFile(tt.schema, testPath(tt.file))
			require.NoError(t, err)
			if !result.Valid {
				for _, issue := range result.Issues {
					t.Errorf("  path=%s keyword=%s message=%s", issue.Path, issue.Keyword, issue.Message)
				}
			}
		})
	}
}

func TestValidateFile_InvalidShape(t *testing.T) {
	result, err := ValidateFile(SchemaPackManifest, testPath("invalid-version-shape.json"))
	require.NoError(t, err)
	require.False(t, result.Valid)
	require.NotEmpty(t, result.Issues)

	var paths []string
	for _, issue := range result.Issues {
		assert.NotEmpty(t, issue.Message)
		assert.NotEmpty(t, issue.Keyword)
		paths = append(paths, issue.Path)
	}
	assert.Contains(t, paths, "/header/version")
	assert.Contains(t, paths, "/modules")
}

func TestValidate_WrongSchemaForDocument(t *testing.T) {
	doc, err := Read(testPath("world_behavior_packs.json"))
	require.NoError(t, err)

	result, err := Validate(SchemaPackManifest, doc)
	require.NoError(t, err)
	assert.False(t, result.Valid)
}

func TestValidate_UnknownSchema(t *testing.T) {
	_, err := Validate(Schema("nope.schema.json"), New(map[string]any{}))
	assert.Error(t, err)
}

func TestValidateFile_NotFound(t *testing.T) {
	_, err := ValidateFile(SchemaPackManifest, testPath("nonexistent.json"))
	assert.Error(t, err)
}

func TestValidationIssue_String(t *testing.T) {
	assert.Equal(t, "/0/pack_id: missing", ValidationIssue{Path: "/0/pack_id", Message: "missing"}.String())
	assert.Equal(t, "bad", ValidationIssue{Message: "bad"}.String())
}
