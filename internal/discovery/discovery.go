// Package discovery enumerates fonts installed on the host. It prefers
// fontconfig's fc-list, which reports family metadata alongside each file,
// and falls back to walking font directories when fontconfig is missing or
// disabled. Discovery fails only when no usable source exists at all;
// finding zero fonts in an existing source is a valid empty result.
package discovery

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"

	"github.com/solarbyte-dev/fuzzyfont/internal/config"
	"github.com/solarbyte-dev/fuzzyfont/internal/errors"
	"github.com/solarbyte-dev/fuzzyfont/internal/log"
	"github.com/solarbyte-dev/fuzzyfont/pkg/types"
)

// fontExtensions are the file types treated as installable fonts during a
// directory scan.
var fontExtensions = map[string]struct{}{
	".ttf": {},
	".otf": {},
	".ttc": {},
	".otc": {},
}

// Scanner produces the raw font records the catalog is built from.
type Scanner struct {
	dirs       []string
	excludes   []glob.Glob
	fontconfig bool

	// fcList runs the fontconfig listing; swapped out in tests.
	fcList func() ([]byte, error)
}

// New creates a scanner from configuration. Without configured
// directories the conventional system and per-user font locations are
// used.
func New(cfg *config.Config) (*Scanner, error) {
	excludes, err := cfg.CompiledExcludes()
	if err != nil {
		return nil, err
	}

	dirs := cfg.Discovery.Directories
	if len(dirs) == 0 {
		dirs = defaultDirectories()
	}
	expanded := make([]string, 0, len(dirs))
	for _, dir := range dirs {
		expanded = append(expanded, expandHome(dir))
	}

	return &Scanner{
		dirs:       expanded,
		excludes:   excludes,
		fontconfig: cfg.UseFontconfig(),
		fcList:     runFcList,
	}, nil
}

// Directories returns the font directories the scanner walks, with any
// home prefix already expanded.
func (s *Scanner) Directories() []string {
	dirs := make([]string, len(s.dirs))
	copy(dirs, s.dirs)
	return dirs
}

// Records enumerates fonts from the first source that works. The result
// carries no ordering guarantee; the catalog establishes its own order.
func (s *Scanner) Records() ([]types.FontRecord, error) {
	if s.fontconfig {
		if out, err := s.fcList(); err == nil {
			records := s.parseFcList(out)
			if len(records) > 0 {
				log.LogWithFields(log.F("source", "fontconfig"), log.F("fonts", len(records))).Debugf("Fonts discovered")
				return records, nil
			}
		} else {
			log.LogWithFields(log.F("error", err)).Debugf("fc-list unavailable, falling back to directory scan")
		}
	}
	return s.scanDirectories()
}

// parseFcList parses "file\tfamily\tfullname" lines as produced by
// fc-list with the scanner's format string.
func (s *Scanner) parseFcList(out []byte) []types.FontRecord {
	records := make([]types.FontRecord, 0, 128)
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, "\t", 3)
		if len(parts) < 2 {
			continue
		}
		path := strings.TrimSpace(parts[0])
		family := firstValue(parts[1])
		name := family
		if len(parts) == 3 {
			if full := firstValue(parts[2]); full != "" {
				name = full
			}
		}
		if path == "" || name == "" || s.excluded(path) {
			continue
		}
		records = append(records, types.FontRecord{
			Name:           name,
			FamilyMetadata: family,
			FilePath:       path,
		})
	}
	return records
}

// scanDirectories walks the configured font directories. Family metadata
// is unavailable without fontconfig, so records carry only a name derived
// from the file name; classification falls through to the heuristic tier.
func (s *Scanner) scanDirectories() ([]types.FontRecord, error) {
	records := make([]types.FontRecord, 0, 128)
	found := false
	for _, dir := range s.dirs {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			continue
		}
		found = true
		err = filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				log.LogWithFields(log.F("path", path), log.F("error", err)).Debugf("Skipping unreadable entry")
				return nil
			}
			if d.IsDir() {
				return nil
			}
			ext := strings.ToLower(filepath.Ext(path))
			if _, ok := fontExtensions[ext]; !ok {
				return nil
			}
			if s.excluded(path) {
				return nil
			}
			records = append(records, types.FontRecord{
				Name:     nameFromFile(path),
				FilePath: path,
			})
			return nil
		})
		if err != nil {
			return nil, errors.NewDiscoveryError("directory scan failed", dir, errors.DiscoveryFailed, err)
		}
	}

	if !found {
		return nil, errors.Wrapf(errors.ErrNoFontSource, "no font directory exists: %s", strings.Join(s.dirs, ", "))
	}
	log.LogWithFields(log.F("source", "directories"), log.F("fonts", len(records))).Debugf("Fonts discovered")
	return records, nil
}

func (s *Scanner) excluded(path string) bool {
	base := filepath.Base(path)
	for _, g := range s.excludes {
		if g.Match(path) || g.Match(base) {
			return true
		}
	}
	return false
}

func runFcList() ([]byte, error) {
	return exec.Command("fc-list", "--format", "%{file}\t%{family}\t%{fullname}\n").Output()
}

// firstValue takes the first entry of a comma-separated fontconfig value
// list.
func firstValue(v string) string {
	if i := strings.IndexByte(v, ','); i >= 0 {
		v = v[:i]
	}
	return strings.TrimSpace(v)
}

// nameFromFile turns "DejaVu_Sans-Mono.ttf" into "DejaVu Sans Mono".
func nameFromFile(path string) string {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return strings.Join(strings.Fields(strings.NewReplacer("-", " ", "_", " ").Replace(stem)), " ")
}

func defaultDirectories() []string {
	return []string{
		"/usr/share/fonts",
		"/usr/local/share/fonts",
		"~/.local/share/fonts",
		"~/.fonts",
	}
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
