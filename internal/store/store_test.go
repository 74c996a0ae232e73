package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

var testTime = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), FileName)).WithClock(func() time.Time { return testTime })
}

func writeProgress(t *testing.T, s *Store, doc string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(s.Path()), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(s.Path(), []byte(doc), 0o644); err != nil {
		t.Fatalf("write progress: %v", err)
	}
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	s := newTestStore(t)
	st := s.Load()

	if st.StartDate != "2025-03-10" {
		t.Fatalf("start_date=%q, want today", st.StartDate)
	}
	if st.CurrentLevel != 1 || st.TotalPoints != 0 {
		t.Fatalf("fresh state level=%d points=%d, want 1/0", st.CurrentLevel, st.TotalPoints)
	}
	if len(st.Habits) == 0 {
		t.Fatalf("fresh state has no seeded habits")
	}
	if len(st.AudioPlayback.Categories) == 0 {
		t.Fatalf("fresh state has no audio categories")
	}
}

func TestLoadCorruptFileYieldsDefaults(t *testing.T) {
	s := newTestStore(t)
	writeProgress(t, s, "{not json")

	st := s.Load()
	if st.StartDate != "2025-03-10" {
		t.Fatalf("corrupt file did not fall back to defaults")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := newTestStore(t)
	st := Default(testTime)
	st.TotalPoints = 123
	st.Streak = 4
	st.LastLogDate = "2025-03-10"
	st.DayLogs["2025-03-10"] = &DayLog{
		DayNumber:  1,
		Completion: 50,
		Habits:     map[string]bool{"Wake up early": true},
		Energy:     7,
		Points:     12,
	}

	if err := s.Save(st); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got := s.Load()

	if got.TotalPoints != 123 || got.Streak != 4 {
		t.Fatalf("round trip lost totals: points=%d streak=%d", got.TotalPoints, got.Streak)
	}
	log, ok := got.DayLogs["2025-03-10"]
	if !ok {
		t.Fatalf("round trip lost day log")
	}
	if log.Energy.Rating() != 7 || !log.Habits["Wake up early"] {
		t.Fatalf("round trip mangled day log: %+v", log)
	}
}

func TestLegacyStringHabitsMigrate(t *testing.T) {
	s := newTestStore(t)
	writeProgress(t, s, `{
		"start_date": "2025-01-01",
		"total_points": 40,
		"habits": ["Exercise", "Read"]
	}`)

	st := s.Load()
	if len(st.Habits) != 2 {
		t.Fatalf("habits=%v, want 2 migrated entries", st.Habits)
	}
	for _, h := range st.Habits {
		if h.Points != 5 {
			t.Fatalf("migrated habit %q points=%d, want 5", h.Name, h.Points)
		}
	}
	if st.TotalPoints != 40 {
		t.Fatalf("migration clobbered total_points: %d", st.TotalPoints)
	}
}

func TestAdditiveMergeFillsMissingKeysOnly(t *testing.T) {
	s := newTestStore(t)
	// An old document: no audio_playback, no reminder_settings.
	writeProgress(t, s, `{
		"start_date": "2024-06-01",
		"total_points": 900,
		"current_level": 2,
		"streak": 7,
		"last_log_date": "2024-06-20",
		"habits": [{"name": "Run", "points": 6}]
	}`)

	st := s.Load()
	if st.StartDate != "2024-06-01" || st.TotalPoints != 900 || st.Streak != 7 {
		t.Fatalf("merge overwrote existing values: %+v", st)
	}
	if len(st.Habits) != 1 || st.Habits[0].Name != "Run" {
		t.Fatalf("merge replaced habit list: %v", st.Habits)
	}
	if len(st.AudioPlayback.Categories) == 0 {
		t.Fatalf("merge did not seed audio categories")
	}
	if st.Reminders.Time != DefaultReminderTime {
		t.Fatalf("merge did not seed reminder time: %q", st.Reminders.Time)
	}
	if len(st.Reminders.JournalQuestions) == 0 {
		t.Fatalf("merge did not seed journal questions")
	}
}

func TestLenientEnergyAndCompletionDecoding(t *testing.T) {
	s := newTestStore(t)
	writeProgress(t, s, `{
		"start_date": "2025-01-01",
		"day_logs": {
			"2025-01-02": {
				"DayNumber": 2,
				"Completion": "75",
				"Habits": {"Run": true},
				"Energy": "8",
				"Points": 10
			},
			"2025-01-03": {
				"DayNumber": 3,
				"Completion": 50,
				"Habits": {"Run": false},
				"Energy": "high",
				"Points": 1
			}
		}
	}`)

	st := s.Load()
	stringy := st.DayLogs["2025-01-02"]
	if stringy == nil || int(stringy.Completion) != 75 || stringy.Energy.Rating() != 8 {
		t.Fatalf("string-numeric log decoded wrong: %+v", stringy)
	}
	garbage := st.DayLogs["2025-01-03"]
	if garbage == nil || garbage.Energy.Rating() != DefaultEnergy {
		t.Fatalf("garbage energy should fall back to default: %+v", garbage)
	}
}

func TestLegacyStringJournalDecodes(t *testing.T) {
	s := newTestStore(t)
	writeProgress(t, s, `{
		"start_date": "2025-01-01",
		"day_logs": {
			"2025-01-02": {
				"DayNumber": 2,
				"Completion": 100,
				"Habits": {},
				"Energy": 5,
				"Journal": "wrote it as a plain string once",
				"Points": 5
			}
		}
	}`)

	st := s.Load()
	log := st.DayLogs["2025-01-02"]
	if log == nil || log.Journal.FreeText != "wrote it as a plain string once" {
		t.Fatalf("legacy journal string lost: %+v", log)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	s := newTestStore(t)
	st := Default(testTime)
	st.TotalPoints = 321

	exportPath := filepath.Join(t.TempDir(), ExportFileName)
	if err := s.ExportTo(st, exportPath); err != nil {
		t.Fatalf("ExportTo: %v", err)
	}

	got, err := s.ImportFrom(exportPath)
	if err != nil {
		t.Fatalf("ImportFrom: %v", err)
	}
	if got.TotalPoints != 321 {
		t.Fatalf("import lost totals: %d", got.TotalPoints)
	}
}

func TestImportMissingFileIsAnError(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.ImportFrom(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatalf("expected error importing missing file")
	}
}

func TestResetBacksUpThenStartsFresh(t *testing.T) {
	s := newTestStore(t)
	st := Default(testTime)
	st.TotalPoints = 555
	if err := s.Save(st); err != nil {
		t.Fatalf("Save: %v", err)
	}

	fresh, backup, err := s.Reset(st)
	if err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if fresh.TotalPoints != 0 {
		t.Fatalf("fresh state kept points: %d", fresh.TotalPoints)
	}
	old, err := s.ImportFrom(backup)
	if err != nil {
		t.Fatalf("read backup: %v", err)
	}
	if old.TotalPoints != 555 {
		t.Fatalf("backup lost points: %d", old.TotalPoints)
	}
	if s.Load().TotalPoints != 0 {
		t.Fatalf("reset did not persist fresh state")
	}
}

func TestAppendNotificationEvictsOldest(t *testing.T) {
	st := Default(testTime)
	for i := 0; i < MaxNotificationHistory+10; i++ {
		st.AppendNotification(Notification{Message: string(rune('a' + i%26))})
	}
	if len(st.Reminders.NotificationHistory) != MaxNotificationHistory {
		t.Fatalf("history len=%d, want cap %d", len(st.Reminders.NotificationHistory), MaxNotificationHistory)
	}
}
