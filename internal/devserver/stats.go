package devserver

import (
	"time"

	"github.com/dr-rompecabezas/langportal/internal/api"
)

const (
	masteryMinAttempts = 5
	masteryMinRate     = 0.8
	activeGroupWindow  = 30 * 24 * time.Hour
)

// recentSession returns the session with the latest start time, or nil.
func (f *Fixtures) recentSession() *api.RecentSession {
	var latest *SessionRecord
	for i := range f.Sessions {
		s := &f.Sessions[i]
		if latest == nil || s.StartTime.After(latest.StartTime) {
			latest = s
		}
	}
	if latest == nil {
		return nil
	}
	return &api.RecentSession{
		ID:           latest.ID,
		GroupID:      latest.GroupID,
		ActivityName: latest.ActivityName,
		CreatedAt:    latest.StartTime,
		CorrectCount: latest.CorrectCount,
		WrongCount:   latest.WrongCount,
	}
}

// stats aggregates word counters and session history.
func (f *Fixtures) stats() api.StudyStats {
	st := api.StudyStats{
		TotalVocabulary: len(f.Words),
		TotalSessions:   len(f.Sessions),
	}

	var correct, attempts int
	for _, w := range f.Words {
		n := w.CorrectCount + w.WrongCount
		if n == 0 {
			continue
		}
		st.TotalWordsStudied++
		correct += w.CorrectCount
		attempts += n
		if n >= masteryMinAttempts && float64(w.CorrectCount)/float64(n) >= masteryMinRate {
			st.MasteredWords++
		}
	}
	if attempts > 0 {
		st.SuccessRate = float64(correct) / float64(attempts)
	}

	active := make(map[int]bool)
	for _, s := range f.Sessions {
		if f.Now.Sub(s.StartTime) <= activeGroupWindow {
			active[s.GroupID] = true
		}
	}
	st.ActiveGroups = len(active)
	st.CurrentStreak = f.streak()
	return st
}

// streak counts consecutive days with at least one session, ending today
// or yesterday.
func (f *Fixtures) streak() int {
	days := make(map[string]bool)
	for _, s := range f.Sessions {
		days[s.StartTime.UTC().Format(time.DateOnly)] = true
	}

	cursor := f.Now.UTC()
	if !days[cursor.Format(time.DateOnly)] {
		cursor = cursor.AddDate(0, 0, -1)
	}

	n := 0
	for days[cursor.Format(time.DateOnly)] {
		n++
		cursor = cursor.AddDate(0, 0, -1)
	}
	return n
}
