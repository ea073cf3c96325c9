package devserver

import (
	"time"

	"github.com/dr-rompecabezas/langportal/internal/api"
)

// SessionRecord is a study session plus its review outcome.
type SessionRecord struct {
	api.StudySession
	CorrectCount int
	WrongCount   int
}

// Fixtures is the in-memory data set served by the dev server.
type Fixtures struct {
	Words      []api.Word
	Groups     []api.Group
	Members    map[int][]int // group id -> word ids
	Sessions   []SessionRecord
	Activities []api.StudyActivity

	// Now anchors time-relative stats (active groups, streak).
	Now time.Time
}

// DefaultFixtures returns a small JLPT N5 data set.
func DefaultFixtures(now time.Time) *Fixtures {
	day := func(n int, hour int) time.Time {
		d := now.AddDate(0, 0, -n)
		return time.Date(d.Year(), d.Month(), d.Day(), hour, 0, 0, 0, time.UTC)
	}

	words := []api.Word{
		{ID: 1, Kanji: "日", Romaji: "hi", English: "sun", CorrectCount: 5, WrongCount: 2},
		{ID: 2, Kanji: "月", Romaji: "tsuki", English: "moon", CorrectCount: 3, WrongCount: 1},
		{ID: 3, Kanji: "火", Romaji: "hi", English: "fire", CorrectCount: 8, WrongCount: 0},
		{ID: 4, Kanji: "水", Romaji: "mizu", English: "water", CorrectCount: 6, WrongCount: 1},
		{ID: 5, Kanji: "木", Romaji: "ki", English: "tree", CorrectCount: 2, WrongCount: 3},
		{ID: 6, Kanji: "金", Romaji: "kane", English: "money", CorrectCount: 4, WrongCount: 4},
		{ID: 7, Kanji: "土", Romaji: "tsuchi", English: "soil", CorrectCount: 0, WrongCount: 0},
		{ID: 8, Kanji: "山", Romaji: "yama", English: "mountain", CorrectCount: 9, WrongCount: 1},
		{ID: 9, Kanji: "川", Romaji: "kawa", English: "river", CorrectCount: 1, WrongCount: 0},
		{ID: 10, Kanji: "田", Romaji: "ta", English: "rice field", CorrectCount: 0, WrongCount: 2},
		{ID: 11, Kanji: "人", Romaji: "hito", English: "person", CorrectCount: 7, WrongCount: 0},
		{ID: 12, Kanji: "口", Romaji: "kuchi", English: "mouth", CorrectCount: 3, WrongCount: 2},
		{ID: 13, Kanji: "食べる", Romaji: "taberu", English: "to eat", CorrectCount: 5, WrongCount: 0},
		{ID: 14, Kanji: "飲む", Romaji: "nomu", English: "to drink", CorrectCount: 2, WrongCount: 2},
		{ID: 15, Kanji: "行く", Romaji: "iku", English: "to go", CorrectCount: 6, WrongCount: 2},
		{ID: 16, Kanji: "来る", Romaji: "kuru", English: "to come", CorrectCount: 0, WrongCount: 1},
		{ID: 17, Kanji: "見る", Romaji: "miru", English: "to see", CorrectCount: 4, WrongCount: 0},
		{ID: 18, Kanji: "聞く", Romaji: "kiku", English: "to listen", CorrectCount: 1, WrongCount: 1},
		{ID: 19, Kanji: "大きい", Romaji: "ookii", English: "big", CorrectCount: 3, WrongCount: 0},
		{ID: 20, Kanji: "小さい", Romaji: "chiisai", English: "small", CorrectCount: 0, WrongCount: 0},
		{ID: 21, Kanji: "新しい", Romaji: "atarashii", English: "new", CorrectCount: 2, WrongCount: 1},
		{ID: 22, Kanji: "古い", Romaji: "furui", English: "old", CorrectCount: 1, WrongCount: 3},
	}

	groups := []api.Group{
		{ID: 1, Name: "JLPT N5 Kanji", Description: "Single-character kanji for N5"},
		{ID: 2, Name: "Core Verbs", Description: "Everyday verbs in dictionary form"},
		{ID: 3, Name: "Adjectives", Description: "Common i-adjectives"},
	}
	members := map[int][]int{
		1: {1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12},
		2: {13, 14, 15, 16, 17, 18},
		3: {19, 20, 21, 22},
	}

	activities := []api.StudyActivity{
		{ID: 1, Name: "Vocabulary Review", URL: "http://localhost:8081", Description: "Flashcards for the words in a group"},
		{ID: 2, Name: "Writing Practice", URL: "http://localhost:8082", Description: "Draw the kanji and get it graded"},
		{ID: 3, Name: "Listening Comprehension", URL: "http://localhost:8083", Description: "Answer questions about short clips"},
	}

	session := func(id, activityID, groupID, daysAgo, hour, minutes, correct, wrong int) SessionRecord {
		start := day(daysAgo, hour)
		return SessionRecord{
			StudySession: api.StudySession{
				ID:               id,
				ActivityID:       activityID,
				ActivityName:     activities[activityID-1].Name,
				GroupID:          groupID,
				GroupName:        groups[groupID-1].Name,
				StartTime:        start,
				EndTime:          start.Add(time.Duration(minutes) * time.Minute),
				ReviewItemsCount: correct + wrong,
			},
			CorrectCount: correct,
			WrongCount:   wrong,
		}
	}

	sessions := []SessionRecord{
		session(1, 1, 1, 40, 9, 30, 12, 8),
		session(2, 2, 1, 12, 18, 15, 6, 4),
		session(3, 1, 2, 5, 20, 20, 9, 3),
		session(4, 3, 3, 2, 7, 10, 4, 4),
		session(5, 1, 1, 1, 21, 25, 14, 2),
		session(6, 2, 2, 0, 8, 30, 8, 2),
	}

	fx := &Fixtures{
		Words:      words,
		Groups:     groups,
		Members:    members,
		Sessions:   sessions,
		Activities: activities,
		Now:        now,
	}
	fx.countGroupWords()
	return fx
}

func (f *Fixtures) countGroupWords() {
	for i := range f.Groups {
		f.Groups[i].WordsCount = len(f.Members[f.Groups[i].ID])
	}
}
