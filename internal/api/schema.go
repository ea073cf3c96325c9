package api

// Schema names a JSON schema that a response body must satisfy.
type Schema struct {
	Name       string
	Definition map[string]any
}

var (
	integer     = map[string]any{"type": "integer"}
	nonNegative = map[string]any{"type": "integer", "minimum": 0}
	text        = map[string]any{"type": "string"}
	timestamp   = map[string]any{"type": "string", "minLength": 1}
)

func object(required []any, props map[string]any) map[string]any {
	return map[string]any{
		"type":       "object",
		"properties": props,
		"required":   required,
	}
}

func pageOf(item map[string]any) map[string]any {
	return object([]any{"items", "total_pages"}, map[string]any{
		"items":       map[string]any{"type": "array", "items": item},
		"total_pages": nonNegative,
	})
}

var wordDef = object(
	[]any{"id", "kanji", "romaji", "english", "correct_count", "wrong_count"},
	map[string]any{
		"id":            integer,
		"kanji":         text,
		"romaji":        text,
		"english":       text,
		"correct_count": nonNegative,
		"wrong_count":   nonNegative,
	},
)

var studySessionDef = object(
	[]any{"id", "activity_id", "activity_name", "group_id", "group_name", "start_time", "review_items_count"},
	map[string]any{
		"id":                 integer,
		"activity_id":        integer,
		"activity_name":      text,
		"group_id":           integer,
		"group_name":         text,
		"start_time":         timestamp,
		"end_time":           map[string]any{"type": []any{"string", "null"}},
		"review_items_count": nonNegative,
	},
)

var groupDef = object(
	[]any{"id", "name"},
	map[string]any{
		"id":          integer,
		"name":        text,
		"description": map[string]any{"type": []any{"string", "null"}},
		"words_count": nonNegative,
	},
)

var activityDef = object(
	[]any{"id", "name", "url"},
	map[string]any{
		"id":            integer,
		"name":          text,
		"url":           text,
		"description":   text,
		"thumbnail_url": text,
	},
)

// RecentSessionSchema accepts a recent session or null.
var RecentSessionSchema = &Schema{
	Name: "recent-session",
	Definition: map[string]any{
		"oneOf": []any{
			map[string]any{"type": "null"},
			object(
				[]any{"id", "group_id", "created_at", "correct_count", "wrong_count"},
				map[string]any{
					"id":            integer,
					"group_id":      integer,
					"activity_name": text,
					"created_at":    timestamp,
					"correct_count": nonNegative,
					"wrong_count":   nonNegative,
				},
			),
		},
	},
}

// StudyStatsSchema validates the dashboard stats payload.
var StudyStatsSchema = &Schema{
	Name: "study-stats",
	Definition: object(
		[]any{"total_vocabulary", "total_words_studied", "mastered_words", "success_rate", "total_sessions", "active_groups"},
		map[string]any{
			"total_vocabulary":    nonNegative,
			"total_words_studied": nonNegative,
			"mastered_words":      nonNegative,
			"success_rate":        map[string]any{"type": "number", "minimum": 0, "maximum": 1},
			"total_sessions":      nonNegative,
			"active_groups":       nonNegative,
			"current_streak":      nonNegative,
		},
	),
}

var (
	WordSchema         = &Schema{Name: "word", Definition: wordDef}
	WordPageSchema     = &Schema{Name: "word-page", Definition: pageOf(wordDef)}
	SessionSchema      = &Schema{Name: "study-session", Definition: studySessionDef}
	SessionPageSchema  = &Schema{Name: "study-session-page", Definition: pageOf(studySessionDef)}
	GroupSchema        = &Schema{Name: "group", Definition: groupDef}
	GroupPageSchema    = &Schema{Name: "group-page", Definition: pageOf(groupDef)}
	ActivitySchema     = &Schema{Name: "study-activity", Definition: activityDef}
	ActivityListSchema = &Schema{Name: "study-activity-list", Definition: map[string]any{"type": "array", "items": activityDef}}
)
