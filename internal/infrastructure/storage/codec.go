package storage

import (
	"encoding/json"
	"os"
	"path"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/nickmafra/sym-balls/internal/domain"
)

var levelExts = []string{".json", ".yaml", ".yml"}

func isLevelFile(name string) bool {
	ext := strings.ToLower(path.Ext(name))
	for _, e := range levelExts {
		if ext == e {
			return true
		}
	}
	return false
}

// ReadLevelFile decodes a level file from the local file system the same way
// the catalogs do.
func ReadLevelFile(name string) (*domain.Level, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	return decodeLevel(filepath.Base(name), data)
}

// decodeLevel reads JSON or YAML depending on the file extension. A level
// without an id takes the file name without extension.
func decodeLevel(name string, data []byte) (*domain.Level, error) {
	var out domain.Level
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &out); err != nil {
			return nil, err
		}
	default:
		if err := json.Unmarshal(data, &out); err != nil {
			return nil, err
		}
	}
	if out.ID == "" {
		out.ID = strings.TrimSuffix(path.Base(name), path.Ext(name))
	}
	return &out, nil
}
