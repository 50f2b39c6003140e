package utils

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// SourceExt is the extension picked up when a directory is given as input.
const SourceExt = ".golet"

func GetPathInfo(relPath string) (fullPath string, parentDir string, err error) {
	// Convert to absolute path (resolves ../../ and cleans the path)
	fullPath, err = filepath.Abs(relPath)
	if err != nil {
		return "", "", err
	}

	parentDir = filepath.Dir(fullPath)

	return fullPath, parentDir, nil
}

// Source is one program read from disk.
type Source struct {
	Name     string // path as given on the command line
	FullPath string
	Dir      string
	Text     string
}

func ReadSource(path string) (Source, error) {
	fullPath, dir, err := GetPathInfo(path)
	if err != nil {
		return Source{}, err
	}
	data, err := os.ReadFile(fullPath)
	if err != nil {
		return Source{}, err
	}
	return Source{Name: path, FullPath: fullPath, Dir: dir, Text: string(data)}, nil
}

// ExpandPaths replaces every directory in paths with the SourceExt files
// below it, sorted. Plain files are kept in order whatever their extension.
func ExpandPaths(paths []string) ([]string, error) {
	var out []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			out = append(out, p)
			continue
		}

		var found []string
		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && filepath.Ext(path) == SourceExt {
				found = append(found, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", p, err)
		}
		sort.Strings(found)
		out = append(out, found...)
	}
	return out, nil
}
