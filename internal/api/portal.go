package api

//go:generate mockgen -source=portal.go -destination=mock/portal_mock.go -package=mock_api

import "context"

// Portal is the full read surface of the portal backend. Consumers usually
// depend on a narrower interface of their own.
type Portal interface {
	RecentSession(ctx context.Context) (*RecentSession, error)
	Stats(ctx context.Context) (*StudyStats, error)
	Words(ctx context.Context, q WordsQuery) (*Page[Word], error)
	Word(ctx context.Context, id int) (*Word, error)
	StudySessions(ctx context.Context, q SessionsQuery) (*Page[StudySession], error)
	StudySession(ctx context.Context, id int) (*StudySession, error)
	Groups(ctx context.Context, q GroupsQuery) (*Page[Group], error)
	Group(ctx context.Context, id int) (*Group, error)
	GroupWords(ctx context.Context, groupID int, q WordsQuery) (*Page[Word], error)
	StudyActivities(ctx context.Context) ([]StudyActivity, error)
	StudyActivity(ctx context.Context, id int) (*StudyActivity, error)
}
