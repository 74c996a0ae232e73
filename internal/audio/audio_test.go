package audio

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"
	"time"

	"habitbuilder/internal/store"
)

func newTestLibrary(t *testing.T, clips map[string][]string) *Library {
	t.Helper()
	dir := t.TempDir()
	lib := NewLibrary(dir)
	for category, files := range clips {
		if err := os.MkdirAll(lib.CategoryDir(category), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		for _, f := range files {
			if err := os.WriteFile(filepath.Join(lib.CategoryDir(category), f), nil, 0o644); err != nil {
				t.Fatalf("write clip: %v", err)
			}
		}
	}
	return lib
}

func newTestState(categories ...string) *store.State {
	st := store.Default(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))
	st.AudioPlayback.Categories = categories
	return st
}

func TestFilesFiltersAndSorts(t *testing.T) {
	lib := newTestLibrary(t, map[string][]string{
		"English": {"b.mp3", "a.WAV", "notes.txt", "c.ogg"},
	})

	files, err := lib.Files("English")
	if err != nil {
		t.Fatalf("Files: %v", err)
	}
	want := []string{"a.WAV", "b.mp3", "c.ogg"}
	if len(files) != len(want) {
		t.Fatalf("files=%v, want %v", files, want)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Fatalf("files=%v, want %v", files, want)
		}
	}
}

func TestFilesMissingCategoryIsEmpty(t *testing.T) {
	lib := newTestLibrary(t, nil)
	files, err := lib.Files("Nope")
	if err != nil {
		t.Fatalf("Files: %v", err)
	}
	if len(files) != 0 {
		t.Fatalf("files=%v, want none", files)
	}
}

func TestNoClipsAnywhere(t *testing.T) {
	lib := newTestLibrary(t, nil)
	st := newTestState() // no categories at all
	sel := NewSelector(st, lib, rand.New(rand.NewSource(1)))
	if _, err := sel.Next("2025-03-10"); err != ErrNoClips {
		t.Fatalf("err=%v, want ErrNoClips", err)
	}
}

func TestCategoriesRotateWithoutRepeats(t *testing.T) {
	lib := newTestLibrary(t, map[string][]string{
		"English": {"a.mp3"},
		"Hindi":   {"b.mp3"},
		"Other":   {"c.mp3"},
	})
	st := newTestState("English", "Hindi", "Other")
	sel := NewSelector(st, lib, rand.New(rand.NewSource(7)))

	seen := map[string]bool{}
	for i := 0; i < 3; i++ {
		pick, err := sel.Next("2025-03-1" + string(rune('0'+i)))
		if err != nil {
			t.Fatalf("Next #%d: %v", i, err)
		}
		if seen[pick.Category] {
			t.Fatalf("category %q repeated before rotation exhausted", pick.Category)
		}
		seen[pick.Category] = true
	}
	if len(seen) != 3 {
		t.Fatalf("seen=%v, want all three categories", seen)
	}
}

func TestExhaustedRotationResetsBothHistories(t *testing.T) {
	lib := newTestLibrary(t, map[string][]string{
		"English": {"a.mp3"},
		"Hindi":   {"b.mp3"},
	})
	st := newTestState("English", "Hindi")
	sel := NewSelector(st, lib, rand.New(rand.NewSource(3)))

	days := []string{"2025-03-10", "2025-03-11", "2025-03-12"}
	for _, day := range days[:2] {
		if _, err := sel.Next(day); err != nil {
			t.Fatalf("Next %s: %v", day, err)
		}
	}
	if len(st.AudioPlayback.CategoryHistory) != 2 {
		t.Fatalf("category history=%v, want both heard", st.AudioPlayback.CategoryHistory)
	}

	// Third pick starts a new rotation: both histories clear first.
	pick, err := sel.Next(days[2])
	if err != nil {
		t.Fatalf("Next after exhaustion: %v", err)
	}
	if len(st.AudioPlayback.CategoryHistory) != 1 {
		t.Fatalf("category history=%v, want only the new pick", st.AudioPlayback.CategoryHistory)
	}
	if got := st.AudioPlayback.FileHistory[pick.Category]; len(got) != 1 {
		t.Fatalf("file history=%v, want only the new pick", st.AudioPlayback.FileHistory)
	}
}

func TestFilesRotateWithinCategory(t *testing.T) {
	st := newTestState("English")
	sel := NewSelector(st, nil, rand.New(rand.NewSource(5)))
	files := []string{"a.mp3", "b.mp3", "c.mp3"}

	seen := map[string]bool{}
	for i := 0; i < 3; i++ {
		f, err := sel.PickFile("English", files)
		if err != nil {
			t.Fatalf("PickFile #%d: %v", i, err)
		}
		if seen[f] {
			t.Fatalf("file %q repeated before pool exhausted", f)
		}
		seen[f] = true
		st.AudioPlayback.FileHistory["English"] = append(st.AudioPlayback.FileHistory["English"], f)
	}

	// Pool exhausted: the played list resets and picking works again.
	if _, err := sel.PickFile("English", files); err != nil {
		t.Fatalf("PickFile after exhaustion: %v", err)
	}
	if len(st.AudioPlayback.FileHistory["English"]) != 0 {
		t.Fatalf("file history=%v, want reset", st.AudioPlayback.FileHistory["English"])
	}
}

func TestNextIsStableForALoggedDay(t *testing.T) {
	lib := newTestLibrary(t, map[string][]string{
		"English": {"a.mp3", "b.mp3"},
	})
	st := newTestState("English")
	st.DayLogs["2025-03-10"] = &store.DayLog{DayNumber: 1, AudioPlayed: "English/a.mp3"}
	sel := NewSelector(st, lib, rand.New(rand.NewSource(9)))

	pick, err := sel.Next("2025-03-10")
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if pick.Category != "English" || pick.File != "a.mp3" {
		t.Fatalf("pick=%+v, want the clip already on the log", pick)
	}
	if len(st.AudioPlayback.FileHistory["English"]) != 0 {
		t.Fatalf("replaying a logged day must not touch rotation history")
	}
}

func TestCategoryManagement(t *testing.T) {
	st := newTestState("English", "Hindi")
	st.AudioPlayback.CategoryHistory["English"] = "2025-03-09"
	st.AudioPlayback.FileHistory["English"] = []string{"a.mp3"}

	if err := AddCategory(st, "English"); err == nil {
		t.Fatalf("duplicate add should fail")
	}
	if err := AddCategory(st, "Tamil"); err != nil {
		t.Fatalf("AddCategory: %v", err)
	}

	if err := RenameCategory(st, "English", "Hindi"); err == nil {
		t.Fatalf("rename onto existing name should fail")
	}
	if err := RenameCategory(st, "English", "British"); err != nil {
		t.Fatalf("RenameCategory: %v", err)
	}
	if st.AudioPlayback.CategoryHistory["British"] != "2025-03-09" {
		t.Fatalf("rename lost category history: %v", st.AudioPlayback.CategoryHistory)
	}
	if len(st.AudioPlayback.FileHistory["British"]) != 1 {
		t.Fatalf("rename lost file history: %v", st.AudioPlayback.FileHistory)
	}

	if err := RemoveCategory(st, "British"); err != nil {
		t.Fatalf("RemoveCategory: %v", err)
	}
	if _, ok := st.AudioPlayback.FileHistory["British"]; ok {
		t.Fatalf("remove kept file history")
	}
	if err := RemoveCategory(st, "British"); err == nil {
		t.Fatalf("removing a missing category should fail")
	}
}
