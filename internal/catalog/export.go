package catalog

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/solarbyte-dev/fuzzyfont/internal/errors"
	"github.com/solarbyte-dev/fuzzyfont/pkg/types"
)

// Format selects an export serialization.
type Format string

// Supported export formats.
const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// ParseFormat resolves a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "text", "txt":
		return FormatText, nil
	}
	return "", errors.NewExportError("unsupported export format", s, errors.InvalidFormat, nil)
}

// FormatForPath infers the export format from a destination's extension.
// Anything that is not .json exports as text.
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatText
}

// exportEntry is the JSON shape of one exported entry. Categories are
// sorted lexically so output is deterministic and diff-friendly even
// though the internal representation is an unordered set.
type exportEntry struct {
	Name       string   `json:"name"`
	Categories []string `json:"categories"`
	FilePath   string   `json:"filePath"`
}

// Export serializes a view. It returns content only; writing it anywhere
// is the caller's responsibility, so a bad destination can never make
// Export fail. Output is deterministic for a given view.
func Export(view []types.CatalogEntry, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		out := make([]exportEntry, 0, len(view))
		for _, e := range view {
			out = append(out, exportEntry{
				Name:       e.Name,
				Categories: e.Categories.Sorted(),
				FilePath:   e.FilePath,
			})
		}
		return json.MarshalIndent(out, "", "  ")
	case FormatText:
		var sb strings.Builder
		for _, e := range view {
			sb.WriteString(e.Name)
			sb.WriteByte('\t')
			sb.WriteString(strings.Join(e.Categories.Sorted(), ","))
			sb.WriteByte('\t')
			sb.WriteString(e.FilePath)
			sb.WriteByte('\n')
		}
		return []byte(sb.String()), nil
	}
	return nil, errors.NewExportError("unsupported export format", string(format), errors.InvalidFormat, nil)
}
