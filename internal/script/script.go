// Package script loads edit scripts: named lists of session ops kept in YAML,
// TOML or JSON files.
package script

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"nyxventure/internal/common/fsutil"
	"nyxventure/pkg/types"
)

// Extensions lists the supported script file extensions.
var Extensions = []string{".yaml", ".yml", ".json", ".toml"}

// Script is a named sequence of ops.
type Script struct {
	Name string     `json:"name" yaml:"name" toml:"name"`
	Ops  []types.Op `json:"ops" yaml:"ops" toml:"ops"`
	// Path is the file the script was loaded from.
	Path string `json:"-" yaml:"-" toml:"-"`
}

// Load reads a script based on its extension. A script without a name is
// named after its file.
func Load(path string) (Script, error) {
	var s Script
	if path == "" {
		return s, fmt.Errorf("empty script path")
	}
	p, err := fsutil.ExpandHome(path)
	if err != nil {
		return s, err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		return s, err
	}
	switch ext := strings.ToLower(filepath.Ext(p)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &s)
	case ".json":
		err = json.Unmarshal(b, &s)
	case ".toml":
		err = toml.Unmarshal(b, &s)
	default:
		return s, fmt.Errorf("unsupported script extension: %s", ext)
	}
	if err != nil {
		return s, fmt.Errorf("decode %s: %w", p, err)
	}
	for i, op := range s.Ops {
		if strings.TrimSpace(op.Op) == "" {
			return s, fmt.Errorf("%s: op %d has no op name", p, i)
		}
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(p), filepath.Ext(p))
	}
	s.Path = p
	return s, nil
}

// LoadDir loads every supported file in dir, sorted by file name. Sub
// directories are skipped.
func LoadDir(dir string) ([]Script, error) {
	paths, err := fsutil.ListFiles(dir, Extensions...)
	if err != nil {
		return nil, err
	}
	out := make([]Script, 0, len(paths))
	for _, p := range paths {
		s, err := Load(p)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// Find returns the script called name from scripts.
func Find(scripts []Script, name string) (Script, bool) {
	for _, s := range scripts {
		if s.Name == name {
			return s, true
		}
	}
	return Script{}, false
}
