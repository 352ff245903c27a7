package layout

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.yaml
var LayoutsFS embed.FS

// layoutDir is where on-disk layout overrides live, relative to the
// working directory.
const layoutDir = "layout"

// Load reads a layout file, preferring a copy on disk under layout/ so
// cabinets can be re-skinned without rebuilding, and falling back to the
// embedded defaults.
func Load(name string) ([]byte, error) {
	clean := cleanLayoutPath(name)
	if data, err := os.ReadFile(diskLayoutPath(clean)); err == nil {
		return data, nil
	}
	return LayoutsFS.ReadFile(clean)
}

func cleanLayoutPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "layout/"); ok {
		s = after
	}
	if !strings.HasSuffix(s, ".yaml") && !strings.HasSuffix(s, ".yml") {
		s += ".yaml"
	}
	return s
}

func diskLayoutPath(clean string) string {
	return filepath.Join(layoutDir, filepath.FromSlash(clean))
}
