// Package adapter contains filesystem, parser and persistence adapters
// for the cooplint CLI.
package adapter

import (
	"crypto/sha256"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	m "github.com/mouse-blink/cooplint/internal/model"
)

// SourceFSAdapter abstracts the filesystem operations the command layer
// relies on when scanning user projects. It hides direct os access so
// the commands can be tested without touching the disk.
type SourceFSAdapter interface {
	// Get collects Kotlin source files for the provided roots. A root
	// may be a file, a directory, or a directory with the /... suffix
	// for recursive scanning.
	Get(roots []m.Path) ([]m.Source, error)

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// HashFile returns the SHA-256 fingerprint of the file at path.
	HashFile(path m.Path) (string, error)
}

var sourceExtensions = map[string]bool{
	".kt":  true,
	".kts": true,
}

// LocalSourceFSAdapter backs SourceFSAdapter with the local filesystem.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Get collects Kotlin source files for the provided roots, de-duplicated
// by absolute path, in walk order.
func (a *LocalSourceFSAdapter) Get(roots []m.Path) ([]m.Source, error) {
	if len(roots) == 0 {
		return []m.Source{}, nil
	}

	seen := make(map[string]struct{})

	var sources []m.Source

	for _, root := range roots {
		rootPath, recursive, err := normalizeRootPath(string(root))
		if err != nil {
			return nil, err
		}

		info, err := os.Stat(rootPath)
		if err != nil {
			return nil, fmt.Errorf("root path error: %w", err)
		}

		if !info.IsDir() {
			if err := a.collect(rootPath, seen, &sources); err != nil {
				return nil, err
			}

			continue
		}

		err = filepath.Walk(rootPath, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if info.IsDir() {
				if skipDir(path, rootPath, recursive) {
					return filepath.SkipDir
				}

				return nil
			}

			return a.collect(path, seen, &sources)
		})
		if err != nil {
			return nil, err
		}
	}

	return sources, nil
}

func skipDir(path, root string, recursive bool) bool {
	if path == root {
		return false
	}

	if !recursive {
		return true
	}

	base := filepath.Base(path)

	return strings.HasPrefix(base, ".") || base == "build" || base == "node_modules"
}

func (a *LocalSourceFSAdapter) collect(path string, seen map[string]struct{}, sources *[]m.Source) error {
	if !sourceExtensions[filepath.Ext(path)] {
		return nil
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	if _, exists := seen[abs]; exists {
		return nil
	}

	hash, err := a.HashFile(m.Path(abs))
	if err != nil {
		return fmt.Errorf("hash error for %s: %w", abs, err)
	}

	seen[abs] = struct{}{}

	*sources = append(*sources, m.Source{Origin: m.Path(abs), Hash: hash})

	return nil
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// HashFile returns the SHA-256 hash of the file at the provided path.
func (a *LocalSourceFSAdapter) HashFile(path m.Path) (string, error) {
	f, err := os.Open(string(path))
	if err != nil {
		return "", err
	}

	defer func() {
		_ = f.Close()
	}()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

func normalizeRootPath(root string) (string, bool, error) {
	rootStr, recursive := parseRootPath(root)

	if strings.HasPrefix(rootStr, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", false, err
		}

		suffix := strings.TrimPrefix(rootStr, "~")
		suffix = strings.TrimPrefix(suffix, string(os.PathSeparator))
		rootStr = filepath.Join(home, suffix)
	}

	if rootStr == "" {
		rootStr = "."
	}

	abs, err := filepath.Abs(rootStr)
	if err != nil {
		return "", false, err
	}

	return abs, recursive, nil
}

func parseRootPath(rootStr string) (path string, recursive bool) {
	if len(rootStr) >= 4 && rootStr[len(rootStr)-4:] == "/..." {
		return rootStr[:len(rootStr)-4], true
	}

	return rootStr, false
}
