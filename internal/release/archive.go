package release

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/flate"

	oerrors "github.com/AiYo-Studio/emod-cli/internal/errors"
	"github.com/AiYo-Studio/emod-cli/internal/fsutil"
	"github.com/AiYo-Studio/emod-cli/internal/output"
	"github.com/AiYo-Studio/emod-cli/internal/project"
)

// ArchiveName returns the file name of the archive for version v.
func ArchiveName(v Version) string {
	return fmt.Sprintf("release_%s.zip", v)
}

// Archive writes the pack directories packs (relative to root) into a zip
// file at dest and returns the entry names in the order they were written.
// Entry names are relative to root. Keep-marker files are left out, and a
// directory gets an entry only if it holds at least one packaged file.
//
// The archive is assembled in dest+".tmp" and renamed over dest once
// complete; on failure the temporary file is removed.
func Archive(root string, packs []string, dest string) ([]string, error) {
	var files []archiveFile
	for _, pack := range packs {
		collected, err := collect(root, pack)
		if err != nil {
			return nil, err
		}
		files = append(files, collected...)
	}

	tmp := dest + ".tmp"
	entries, err := writeArchive(tmp, files)
	if err != nil {
		_ = os.Remove(tmp)
		return nil, err
	}
	if err := os.Rename(tmp, dest); err != nil {
		_ = os.Remove(tmp)
		return nil, oerrors.WrapIO(err, fmt.Sprintf("moving archive into place at %s", dest))
	}
	return entries, nil
}

type archiveFile struct {
	path string // absolute path on disk
	name string // slash-separated entry name
	dir  bool
}

// collect lists the entries for the pack directory root/pack in lexical
// pre-order.
func collect(root, pack string) ([]archiveFile, error) {
	packDir := filepath.Join(root, pack)
	info, err := os.Stat(packDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, oerrors.NewNotFoundError("pack directory does not exist", packDir, "")
		}
		return nil, oerrors.WrapIO(err, fmt.Sprintf("reading %s", packDir))
	}
	if !info.IsDir() {
		return nil, oerrors.NewInvalidDataError("pack path is not a directory", packDir)
	}

	// First pass: every directory on the way to a packaged file is kept.
	keep := map[string]bool{}
	err = fsutil.Walk(packDir, func(path string, d fs.DirEntry) error {
		if !packaged(d) {
			return nil
		}
		for dir := filepath.Dir(path); ; dir = filepath.Dir(dir) {
			if keep[dir] {
				break
			}
			keep[dir] = true
			if dir == packDir {
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, oerrors.WrapIO(err, fmt.Sprintf("scanning %s", packDir))
	}
	if !keep[packDir] {
		output.Debug("pack has no files to package", "dir", pack)
		return nil, nil
	}

	var files []archiveFile
	err = fsutil.Walk(packDir, func(path string, d fs.DirEntry) error {
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		name := filepath.ToSlash(rel)
		switch {
		case d.IsDir():
			if !keep[path] {
				return fs.SkipDir
			}
			files = append(files, archiveFile{path: path, name: name + "/", dir: true})
		case packaged(d):
			files = append(files, archiveFile{path: path, name: name})
		default:
			output.Debug("not packaged", "file", name)
		}
		return nil
	})
	if err != nil {
		return nil, oerrors.WrapIO(err, fmt.Sprintf("scanning %s", packDir))
	}
	return files, nil
}

// packaged reports whether d is a regular file that belongs in an archive.
func packaged(d fs.DirEntry) bool {
	return d.Type().IsRegular() && !strings.HasSuffix(d.Name(), project.KeepMarker)
}

func writeArchive(path string, files []archiveFile) ([]string, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, oerrors.WrapIO(err, fmt.Sprintf("creating %s", path))
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	zw.RegisterCompressor(zip.Deflate, func(w io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(w, flate.BestCompression)
	})

	entries := make([]string, 0, len(files))
	for _, file := range files {
		if err := addEntry(zw, file); err != nil {
			return nil, oerrors.WrapIO(err, fmt.Sprintf("adding %s", file.name))
		}
		entries = append(entries, file.name)
	}

	if err := zw.Close(); err != nil {
		return nil, oerrors.WrapIO(err, fmt.Sprintf("finishing %s", path))
	}
	if err := f.Close(); err != nil {
		return nil, oerrors.WrapIO(err, fmt.Sprintf("closing %s", path))
	}
	return entries, nil
}

func addEntry(zw *zip.Writer, file archiveFile) error {
	info, err := os.Stat(file.path)
	if err != nil {
		return err
	}
	header, err := zip.FileInfoHeader(info)
	if err != nil {
		return err
	}
	header.Name = file.name

	if file.dir {
		header.Method = zip.Store
		_, err := zw.CreateHeader(header)
		return err
	}

	header.Method = zip.Deflate
	w, err := zw.CreateHeader(header)
	if err != nil {
		return err
	}
	src, err := os.Open(file.path)
	if err != nil {
		return err
	}
	defer src.Close()
	_, err = io.Copy(w, src)
	return err
}
