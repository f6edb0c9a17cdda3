// Package fsutil provides file system utility functions.
package fsutil

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// WalkFunc is called for every entry visited by Walk. Returning fs.SkipDir
// for a directory skips its contents; any other error stops the walk.
type WalkFunc func(path string, d fs.DirEntry) error

// Walk visits root and everything beneath it in lexical pre-order using an
// explicit stack, so tree depth never grows the call stack. The first error
// from reading a directory or from fn aborts the walk and is returned.
// A symlinked root is followed; links beneath it are not.
func Walk(root string, fn WalkFunc) error {
	info, err := os.Stat(root)
	if err != nil {
		return err
	}

	stack := []walkItem{{path: root, entry: fs.FileInfoToDirEntry(info)}}
	for len(stack) > 0 {
		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		err := fn(item.path, item.entry)
		if err != nil {
			if errors.Is(err, fs.SkipDir) && item.entry.IsDir() {
				continue
			}
			return err
		}
		if !item.entry.IsDir() {
			continue
		}

		entries, err := os.ReadDir(item.path)
		if err != nil {
			return err
		}
		// Push in reverse so the lexically first child is popped first.
		for i := len(entries) - 1; i >= 0; i-- {
			stack = append(stack, walkItem{
				path:  filepath.Join(item.path, entries[i].Name()),
				entry: entries[i],
			})
		}
	}
	return nil
}

type walkItem struct {
	path  string
	entry fs.DirEntry
}

// FindFilesByExtension returns every regular file under rootPath whose
// extension (without the leading dot) is one of extensions.
func FindFilesByExtension(rootPath string, extensions []string) ([]string, error) {
	allowed := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		allowed[strings.TrimPrefix(ext, ".")] = true
	}

	var files []string
	err := Walk(rootPath, func(path string, d fs.DirEntry) error {
		if !d.Type().IsRegular() {
			return nil
		}
		ext := strings.TrimPrefix(filepath.Ext(d.Name()), ".")
		if ext != "" && allowed[ext] {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// Exists reports whether path exists. Errors other than "not exist" are
// treated as existing so callers surface them on the next operation.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil || !os.IsNotExist(err)
}
