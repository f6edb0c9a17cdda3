package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	oerrors "github.com/AiYo-Studio/emod-cli/internal/errors"
)

// Document is a parsed JSON tree. Objects decode to map[string]any, arrays
// to []any and numbers to json.Number so integers round-trip unchanged.
type Document struct {
	root any
}

// FieldError reports an absent field or a field with an unexpected shape.
type FieldError struct {
	Path   string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %s: %s", e.Path, e.Reason)
}

// Is makes FieldError match ErrInvalidData.
func (e *FieldError) Is(target error) bool {
	return target == oerrors.ErrInvalidData
}

// New wraps an already-built tree in a Document.
func New(root any) *Document {
	return &Document{root: root}
}

// Parse decodes data into a Document.
func Parse(data []byte) (*Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var root any
	if err := dec.Decode(&root); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, fmt.Errorf("unexpected data after top-level value")
	}
	return &Document{root: root}, nil
}

// Marshal serializes the document with two-space indentation and a
// trailing newline. Object keys are emitted in sorted order.
func (d *Document) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d.root); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Get returns the value at path. Each segment is a string (object key) or
// an int (array index).
func (d *Document) Get(path ...any) (any, error) {
	cur := d.root
	for i, seg := range path {
		next, err := step(cur, seg, path[:i+1])
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

// Set replaces the value at path. Every container along the path must
// already exist; the final segment may add a new key to an existing object
// but an array index must be in range. value is stored in the same shape
// Parse produces, so typed slices and structs read back through the
// typed getters.
func (d *Document) Set(value any, path ...any) error {
	value, err := normalize(value)
	if err != nil {
		return &FieldError{Path: formatPath(path), Reason: fmt.Sprintf("unsupported value: %v", err)}
	}
	if len(path) == 0 {
		d.root = value
		return nil
	}

	parent, err := d.Get(path[:len(path)-1]...)
	if err != nil {
		return err
	}

	last := path[len(path)-1]
	switch seg := last.(type) {
	case string:
		obj, ok := parent.(map[string]any)
		if !ok {
			return &FieldError{Path: formatPath(path[:len(path)-1]), Reason: "not an object"}
		}
		obj[seg] = value
	case int:
		arr, ok := parent.([]any)
		if !ok {
			return &FieldError{Path: formatPath(path[:len(path)-1]), Reason: "not an array"}
		}
		if seg < 0 || seg >= len(arr) {
			return &FieldError{Path: formatPath(path), Reason: "index out of range"}
		}
		arr[seg] = value
	default:
		return &FieldError{Path: formatPath(path), Reason: fmt.Sprintf("unsupported path segment %T", last)}
	}
	return nil
}

// GetString returns the string at path.
func (d *Document) GetString(path ...any) (string, error) {
	v, err := d.Get(path...)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", &FieldError{Path: formatPath(path), Reason: "not a string"}
	}
	return s, nil
}

// GetUintArray returns the array of non-negative integers at path, as
// stored in version fields.
func (d *Document) GetUintArray(path ...any) ([]uint64, error) {
	v, err := d.Get(path...)
	if err != nil {
		return nil, err
	}
	arr, ok := v.([]any)
	if !ok {
		return nil, &FieldError{Path: formatPath(path), Reason: "not an array"}
	}

	out := make([]uint64, len(arr))
	for i, elem := range arr {
		n, ok := toUint(elem)
		if !ok {
			return nil, &FieldError{
				Path:   formatPath(append(append([]any{}, path...), i)),
				Reason: "not a non-negative integer",
			}
		}
		out[i] = n
	}
	return out, nil
}

// normalize converts value into the map[string]any / []any / json.Number
// tree Parse produces.
func normalize(value any) (any, error) {
	switch value.(type) {
	case nil, string, bool, json.Number:
		return value, nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return doc.root, nil
}

func step(cur any, seg any, walked []any) (any, error) {
	switch s := seg.(type) {
	case string:
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil, &FieldError{Path: formatPath(walked[:len(walked)-1]), Reason: "not an object"}
		}
		v, ok := obj[s]
		if !ok {
			return nil, &FieldError{Path: formatPath(walked), Reason: "absent"}
		}
		return v, nil
	case int:
		arr, ok := cur.([]any)
		if !ok {
			return nil, &FieldError{Path: formatPath(walked[:len(walked)-1]), Reason: "not an array"}
		}
		if s < 0 || s >= len(arr) {
			return nil, &FieldError{Path: formatPath(walked), Reason: "absent"}
		}
		return arr[s], nil
	default:
		return nil, &FieldError{Path: formatPath(walked), Reason: fmt.Sprintf("unsupported path segment %T", seg)}
	}
}

func toUint(v any) (uint64, bool) {
	switch n := v.(type) {
	case json.Number:
		u, err := strconv.ParseUint(n.String(), 10, 64)
		return u, err == nil
	case float64:
		if n < 0 || n != float64(uint64(n)) {
			return 0, false
		}
		return uint64(n), true
	case int:
		return uint64(n), n >= 0
	case uint64:
		return n, true
	default:
		return 0, false
	}
}

// formatPath renders a path as "$.header.version" / "$[0].pack_id".
func formatPath(path []any) string {
	var b strings.Builder
	b.WriteString("$")
	for _, seg := range path {
		switch s := seg.(type) {
		case int:
			b.WriteString("[")
			b.WriteString(strconv.Itoa(s))
			b.WriteString("]")
		default:
			b.WriteString(".")
			b.WriteString(fmt.Sprint(s))
		}
	}
	return b.String()
}

// Read parses the JSON file at path.
func Read(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, oerrors.NewNotFoundError("manifest file does not exist", path, "")
		}
		return nil, oerrors.WrapIO(err, fmt.Sprintf("reading %s", path))
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, oerrors.NewParseError(path, err)
	}
	return doc, nil
}

// Write serializes doc to path. The content is written to a sibling
// temporary file first and renamed over path.
func Write(path string, doc *Document) error {
	data, err := doc.Marshal()
	if err != nil {
		return oerrors.NewInvalidDataError(fmt.Sprintf("serializing document: %v", err), path)
	}

	mode := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return oerrors.WrapIO(err, fmt.Sprintf("writing %s", path))
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		_ = os.Remove(tmpName)
		return oerrors.WrapIO(err, fmt.Sprintf("writing %s", path))
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return oerrors.WrapIO(err, fmt.Sprintf("writing %s", path))
	}
	if err := os.Chmod(tmpName, mode); err != nil {
		_ = os.Remove(tmpName)
		return oerrors.WrapIO(err, fmt.Sprintf("writing %s", path))
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return oerrors.WrapIO(err, fmt.Sprintf("replacing %s", path))
	}
	return nil
}

// Update reads path, applies mutate and writes the result back. Nothing is
// written if reading or mutate fails.
func Update(path string, mutate func(*Document) error) error {
	doc, err := Read(path)
	if err != nil {
		return err
	}
	if err := mutate(doc); err != nil {
		return fmt.Errorf("updating %s: %w", path, err)
	}
	return Write(path, doc)
}
