// Package records reads and writes collections of loosely typed records.
package records

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Supported formats
const (
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatTable = "table"
)

// FormatFromPath infers the format of a file from its extension
func FormatFromPath(pth string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(pth)); ext {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("cannot infer records format from extension %q", ext)
	}
}
