package static

import (
	"mime"
	"path"
	"strings"
)

// Content types that replace the extension table's guess.
const (
	TypeGeoJSON    = "application/geo+json"
	TypeJavaScript = "application/javascript"
	TypeCSS        = "text/css"
)

// DefaultType returns the extension table's type for p, or "" if unknown.
func DefaultType(p string) string {
	return mime.TypeByExtension(path.Ext(p))
}

// ResolveType applies the suffix overrides to p. The first match wins; any
// other path keeps defaultType.
func ResolveType(p, defaultType string) string {
	switch {
	case strings.HasSuffix(p, ".geojson"):
		return TypeGeoJSON
	case strings.HasSuffix(p, ".js"):
		return TypeJavaScript
	case strings.HasSuffix(p, ".css"):
		return TypeCSS
	default:
		return defaultType
	}
}
