package audio

import (
	"errors"
	"fmt"

	"habitbuilder/internal/store"
)

// Category management mutates the configured list and keeps rotation
// history consistent. Moving files on disk is left to the host.

func AddCategory(st *store.State, name string) error {
	if name == "" {
		return errors.New("category name is required")
	}
	for _, c := range st.AudioPlayback.Categories {
		if c == name {
			return fmt.Errorf("category %q already exists", name)
		}
	}
	st.AudioPlayback.Categories = append(st.AudioPlayback.Categories, name)
	return nil
}

func RenameCategory(st *store.State, oldName, newName string) error {
	if newName == "" || newName == oldName {
		return errors.New("a different category name is required")
	}
	ap := &st.AudioPlayback
	for _, c := range ap.Categories {
		if c == newName {
			return fmt.Errorf("category %q already exists", newName)
		}
	}
	for i, c := range ap.Categories {
		if c == oldName {
			ap.Categories[i] = newName
			if day, ok := ap.CategoryHistory[oldName]; ok {
				delete(ap.CategoryHistory, oldName)
				ap.CategoryHistory[newName] = day
			}
			if played, ok := ap.FileHistory[oldName]; ok {
				delete(ap.FileHistory, oldName)
				ap.FileHistory[newName] = played
			}
			return nil
		}
	}
	return fmt.Errorf("category %q not found", oldName)
}

func RemoveCategory(st *store.State, name string) error {
	ap := &st.AudioPlayback
	for i, c := range ap.Categories {
		if c == name {
			ap.Categories = append(ap.Categories[:i], ap.Categories[i+1:]...)
			delete(ap.CategoryHistory, name)
			delete(ap.FileHistory, name)
			return nil
		}
	}
	return fmt.Errorf("category %q not found", name)
}
