package api

import "time"

// Word is a vocabulary entry with its review counters.
type Word struct {
	ID           int    `json:"id"`
	Kanji        string `json:"kanji"`
	Romaji       string `json:"romaji"`
	English      string `json:"english"`
	CorrectCount int    `json:"correct_count"`
	WrongCount   int    `json:"wrong_count"`
}

// StudySession is one row of the study-session history.
type StudySession struct {
	ID               int       `json:"id"`
	ActivityID       int       `json:"activity_id"`
	ActivityName     string    `json:"activity_name"`
	GroupID          int       `json:"group_id"`
	GroupName        string    `json:"group_name"`
	StartTime        time.Time `json:"start_time"`
	EndTime          time.Time `json:"end_time"`
	ReviewItemsCount int       `json:"review_items_count"`
}

// RecentSession is the dashboard summary of the latest study session.
// It is a denormalized view, not a StudySession.
type RecentSession struct {
	ID           int       `json:"id"`
	GroupID      int       `json:"group_id"`
	ActivityName string    `json:"activity_name"`
	CreatedAt    time.Time `json:"created_at"`
	CorrectCount int       `json:"correct_count"`
	WrongCount   int       `json:"wrong_count"`
}

// StudyStats holds the dashboard's aggregate learning statistics.
type StudyStats struct {
	TotalVocabulary   int     `json:"total_vocabulary"`
	TotalWordsStudied int     `json:"total_words_studied"`
	MasteredWords     int     `json:"mastered_words"`
	SuccessRate       float64 `json:"success_rate"` // 0.0 - 1.0
	TotalSessions     int     `json:"total_sessions"`
	ActiveGroups      int     `json:"active_groups"`
	CurrentStreak     int     `json:"current_streak"`
}

// Group is a named collection of words.
type Group struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	WordsCount  int    `json:"words_count"`
}

// StudyActivity is a launchable study app (flashcards, writing practice, ...).
type StudyActivity struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	URL          string `json:"url"`
	Description  string `json:"description"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
}

// Page is one page of a paginated listing.
type Page[T any] struct {
	Items      []T `json:"items"`
	TotalPages int `json:"total_pages"`
}

// SortDirection orders a sorted listing.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// Flip returns the opposite direction.
func (d SortDirection) Flip() SortDirection {
	if d == SortDesc {
		return SortAsc
	}
	return SortDesc
}

// WordsQuery selects a page of words.
type WordsQuery struct {
	Page          int
	SortKey       string
	SortDirection SortDirection
}

// SessionsQuery selects a page of study sessions.
type SessionsQuery struct {
	Page         int
	ItemsPerPage int
}

// GroupsQuery selects a page of word groups.
type GroupsQuery struct {
	Page          int
	SortKey       string // "name" or "words_count"
	SortDirection SortDirection
}

// WordSortKeys are the sortable fields accepted by the words endpoint.
var WordSortKeys = []string{"kanji", "romaji", "english", "correct_count", "wrong_count"}

// GroupSortKeys are the sortable fields accepted by the groups endpoint.
var GroupSortKeys = []string{"name", "words_count"}
