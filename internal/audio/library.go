// Package audio picks motivational clips from a category tree on disk,
// rotating through categories and files without repeats until each
// pool is exhausted. Decoding and playback are the host's problem; the
// selector only deals in file names.
package audio

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DirName is the asset tree root inside the data directory:
// <base>/motivation_audio/<category>/<file>.
const DirName = "motivation_audio"

var extensions = []string{".mp3", ".wav", ".ogg"}

func isAudioFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Library lists clips under a base directory.
type Library struct {
	base string
}

// NewLibrary roots a library at dataDir/motivation_audio.
func NewLibrary(dataDir string) *Library {
	return &Library{base: filepath.Join(dataDir, DirName)}
}

func (l *Library) Base() string { return l.base }

// CategoryDir returns the directory for a category.
func (l *Library) CategoryDir(category string) string {
	return filepath.Join(l.base, category)
}

// EnsureCategories creates the tree for the configured categories.
func (l *Library) EnsureCategories(categories []string) error {
	for _, c := range categories {
		if err := os.MkdirAll(l.CategoryDir(c), 0o755); err != nil {
			return fmt.Errorf("create audio dir: %w", err)
		}
	}
	return nil
}

// Files returns the sorted audio file names in a category. A missing
// category directory is an empty category, not an error.
func (l *Library) Files(category string) ([]string, error) {
	entries, err := os.ReadDir(l.CategoryDir(category))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("list audio: %w", err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || !isAudioFile(e.Name()) {
			continue
		}
		files = append(files, e.Name())
	}
	sort.Strings(files)
	return files, nil
}
