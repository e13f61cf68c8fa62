package collector

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// Collect recursively finds all files under root whose name ends with one of
// the given extensions. Matching is a plain case-sensitive suffix test, not a
// dot-boundary check, so ".py" also matches "foo.jpython". Returned paths are
// relative to root, in traversal order.
func Collect(root string, extensions []string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !matches(d.Name(), extensions) {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

func matches(name string, extensions []string) bool {
	for _, ext := range extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}
