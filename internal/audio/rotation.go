package audio

import (
	"errors"
	"math/rand"
	"path"

	"habitbuilder/internal/store"
)

// ErrNoClips means no category had a playable file.
var ErrNoClips = errors.New("no audio clips available")

// Pick is one selected clip.
type Pick struct {
	Category string
	File     string
}

// Ref is the category/file reference stored on the day log.
func (p Pick) Ref() string { return path.Join(p.Category, p.File) }

// Selector rotates through categories and files using the persisted
// playback history, so fairness survives restarts.
type Selector struct {
	state *store.State
	lib   *Library
	rng   *rand.Rand
}

func NewSelector(state *store.State, lib *Library, rng *rand.Rand) *Selector {
	return &Selector{state: state, lib: lib, rng: rng}
}

// PickCategory chooses among categories not in the history. Once every
// category has been heard the whole rotation resets (file history
// included). The uniform fallback over all categories is defensive;
// after a reset something is always absent from history.
func (s *Selector) PickCategory(today string) (string, error) {
	ap := &s.state.AudioPlayback
	if len(ap.Categories) == 0 {
		return "", ErrNoClips
	}
	if len(ap.CategoryHistory) >= len(ap.Categories) {
		ap.CategoryHistory = map[string]string{}
		ap.FileHistory = map[string][]string{}
	}
	var fresh []string
	for _, c := range ap.Categories {
		if _, heard := ap.CategoryHistory[c]; !heard {
			fresh = append(fresh, c)
		}
	}
	if len(fresh) == 0 {
		fresh = ap.Categories
	}
	return fresh[s.rng.Intn(len(fresh))], nil
}

// PickFile chooses an unplayed file from the category, resetting the
// category's played list once everything has been heard.
func (s *Selector) PickFile(category string, files []string) (string, error) {
	if len(files) == 0 {
		return "", ErrNoClips
	}
	ap := &s.state.AudioPlayback
	played := ap.FileHistory[category]

	var fresh []string
	for _, f := range files {
		if !contains(played, f) {
			fresh = append(fresh, f)
		}
	}
	if len(fresh) == 0 {
		ap.FileHistory[category] = nil
		fresh = files
	}
	return fresh[s.rng.Intn(len(fresh))], nil
}

// Next selects today's clip and records it in the rotation history.
// If today's log already carries a clip reference, that pick is
// returned unchanged so a day never hears two "random" clips.
func (s *Selector) Next(today string) (Pick, error) {
	if log, ok := s.state.DayLogs[today]; ok && log.AudioPlayed != "" {
		return Pick{
			Category: path.Dir(log.AudioPlayed),
			File:     path.Base(log.AudioPlayed),
		}, nil
	}

	category, err := s.PickCategory(today)
	if err != nil {
		return Pick{}, err
	}
	files, err := s.lib.Files(category)
	if err != nil {
		return Pick{}, err
	}
	file, err := s.PickFile(category, files)
	if err != nil {
		return Pick{}, err
	}

	ap := &s.state.AudioPlayback
	ap.CategoryHistory[category] = today
	ap.FileHistory[category] = append(ap.FileHistory[category], file)
	return Pick{Category: category, File: file}, nil
}

func contains(list []string, item string) bool {
	for _, s := range list {
		if s == item {
			return true
		}
	}
	return false
}
