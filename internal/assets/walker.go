// Package assets finds and copies the static files a portfolio links to.
package assets

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// File holds metadata about a single asset discovered during traversal.
type File struct {
	Path        string // Absolute path on disk.
	RelPath     string // Slash-separated path relative to the root.
	Size        int64
	Kind        Kind
	ContentHash string // SHA-256 hex digest of the file content.
}

// Walk returns every regular file under root that is not excluded, in
// lexical order. A missing root yields no files.
func Walk(root string, exclude []string) ([]File, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("assets: resolve root: %w", err)
	}
	if _, err := os.Stat(root); os.IsNotExist(err) {
		return nil, nil
	}

	var files []File
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			if path != root && shouldSkipDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if Excluded(relPath, exclude) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		hash, err := hashFile(path)
		if err != nil {
			return err
		}

		files = append(files, File{
			Path:        path,
			RelPath:     filepath.ToSlash(relPath),
			Size:        info.Size(),
			Kind:        DetectKind(d.Name()),
			ContentHash: hash,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("assets: traversal: %w", err)
	}
	return files, nil
}

// Copy copies files into dst under their relative paths. Files whose
// destination already has the same content are left alone. It returns the
// number of files written.
func Copy(files []File, dst string) (int, error) {
	written := 0
	for _, f := range files {
		destPath := filepath.Join(dst, filepath.FromSlash(f.RelPath))
		if hash, err := hashFile(destPath); err == nil && hash == f.ContentHash {
			continue
		}
		if err := copyFile(f.Path, destPath); err != nil {
			return written, fmt.Errorf("copying %s: %w", f.RelPath, err)
		}
		written++
	}
	return written, nil
}

// copyFile copies a single file.
func copyFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}

	srcFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer srcFile.Close()

	dstFile, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		dstFile.Close()
		return err
	}
	return dstFile.Close()
}

// hashFile computes the SHA-256 digest of the given file.
func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
