package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// LoadFile parses a theme from a TOML file and registers it. Unset colors
// fall back to the default palette, so a theme file only needs to override
// the colors it cares about. The theme name defaults to the file basename.
func LoadFile(path string) (Theme, error) {
	t := Default()
	t.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	if _, err := toml.DecodeFile(path, &t); err != nil {
		return Theme{}, fmt.Errorf("theme %s: %w", path, err)
	}
	Register(t)
	return t, nil
}

// LoadDir registers every *.toml theme in dir. A missing directory is not an
// error; the built-ins remain available.
func LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".toml" {
			continue
		}
		if _, err := LoadFile(filepath.Join(dir, e.Name())); err != nil {
			return err
		}
	}
	return nil
}
