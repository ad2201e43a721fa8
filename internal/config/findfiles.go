package config

import (
	"os"
	"path/filepath"
	"strings"
)

// findFilesInPath returns all *.hcl files below configDir in lexical order.
func findFilesInPath(configDir string) ([]string, error) {
	var matches []string

	err := filepath.Walk(configDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && strings.HasSuffix(info.Name(), ".hcl") {
			matches = append(matches, path)
		}
		return nil
	})

	return matches, err
}
