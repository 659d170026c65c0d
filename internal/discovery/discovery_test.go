package discovery

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solarbyte-dev/fuzzyfont/internal/config"
	"github.com/solarbyte-dev/fuzzyfont/internal/errors"
)

func writeFontFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte("stub"), 0644))
	}
}

func newScanner(t *testing.T, dirs []string, exclude []string) *Scanner {
	t.Helper()
	cfg := config.New()
	cfg.Discovery.Directories = dirs
	cfg.Discovery.Exclude = exclude
	off := false
	cfg.Discovery.Fontconfig = &off

	s, err := New(cfg)
	require.NoError(t, err)
	return s
}

func TestDirectoryScan(t *testing.T) {
	dir := t.TempDir()
	writeFontFiles(t, dir,
		"DejaVu_Sans-Mono.ttf",
		"Lato.otf",
		"nested/Georgia.ttc",
		"README.txt",
		"preview.png",
	)

	records, err := newScanner(t, []string{dir}, nil).Records()
	require.NoError(t, err)
	require.Len(t, records, 3)

	byName := map[string]string{}
	for _, r := range records {
		byName[r.Name] = r.FilePath
		assert.Empty(t, r.FamilyMetadata, "directory scan has no family metadata")
	}
	assert.Contains(t, byName, "DejaVu Sans Mono")
	assert.Contains(t, byName, "Lato")
	assert.Contains(t, byName, "Georgia")
}

func TestDirectoryScanExcludes(t *testing.T) {
	dir := t.TempDir()
	writeFontFiles(t, dir, "Keep.ttf", "legacy/Old.ttf", "Skip-Me.otf")

	records, err := newScanner(t, []string{dir}, []string{"Skip*", "**/legacy/**"}).Records()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Keep", records[0].Name)
}

func TestZeroFontsIsValidEmptyResult(t *testing.T) {
	records, err := newScanner(t, []string{t.TempDir()}, nil).Records()
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestNoSourceIsDiscoveryFailure(t *testing.T) {
	_, err := newScanner(t, []string{"/nonexistent/fonts-a", "/nonexistent/fonts-b"}, nil).Records()
	require.Error(t, err)
	assert.True(t, errors.IsDiscoveryFailure(err))
	assert.True(t, errors.Is(err, errors.ErrNoFontSource))
	assert.Contains(t, err.Error(), "/nonexistent/fonts-a")
}

func TestFcListParsing(t *testing.T) {
	s := newScanner(t, []string{t.TempDir()}, []string{"*.pcf.gz"})
	out := []byte(
		"/usr/share/fonts/dejavu/DejaVuSansMono.ttf\tDejaVu Sans Mono\tDejaVu Sans Mono Book\n" +
			"/usr/share/fonts/noto/NotoSans.ttf\tNoto Sans,Noto Sans UI\tNoto Sans Regular\n" +
			"/usr/share/fonts/misc/term.pcf.gz\tTerminus\tTerminus Medium\n" +
			"\n" +
			"malformed-line-without-tabs\n" +
			"/usr/share/fonts/nameless/blank.ttf\t\t\n",
	)

	records := s.parseFcList(out)
	require.Len(t, records, 2)

	assert.Equal(t, "DejaVu Sans Mono Book", records[0].Name)
	assert.Equal(t, "DejaVu Sans Mono", records[0].FamilyMetadata)
	assert.Equal(t, "/usr/share/fonts/dejavu/DejaVuSansMono.ttf", records[0].FilePath)

	// Comma-separated family lists collapse to the first entry.
	assert.Equal(t, "Noto Sans", records[1].FamilyMetadata)
	assert.Equal(t, "Noto Sans Regular", records[1].Name)
}

func TestFcListPreferredOverDirectories(t *testing.T) {
	s := newScanner(t, []string{"/nonexistent"}, nil)
	s.fontconfig = true
	s.fcList = func() ([]byte, error) {
		return []byte("/f/a.ttf\tAlpha\tAlpha Regular\n"), nil
	}

	records, err := s.Records()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Alpha Regular", records[0].Name)
}

func TestFcListFailureFallsBack(t *testing.T) {
	dir := t.TempDir()
	writeFontFiles(t, dir, "Backup.ttf")

	s := newScanner(t, []string{dir}, nil)
	s.fontconfig = true
	s.fcList = func() ([]byte, error) {
		return nil, os.ErrNotExist
	}

	records, err := s.Records()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Backup", records[0].Name)
}
