package dashboard

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dr-rompecabezas/langportal/internal/api"
	mock_api "github.com/dr-rompecabezas/langportal/internal/api/mock"
)

var (
	sampleRecent = &api.RecentSession{ID: 7, GroupID: 1, ActivityName: "Vocabulary Review", CorrectCount: 8, WrongCount: 2}
	sampleStats  = &api.StudyStats{TotalVocabulary: 1000, MasteredWords: 200, SuccessRate: 0.8}
)

func TestLoadSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	portal := mock_api.NewMockPortal(ctrl)
	portal.EXPECT().RecentSession(gomock.Any()).Return(sampleRecent, nil)
	portal.EXPECT().Stats(gomock.Any()).Return(sampleStats, nil)

	var s State
	req := s.Begin()
	assert.True(t, s.Loading())

	require.True(t, s.Apply(Load(context.Background(), portal, req)))

	assert.False(t, s.Loading())
	assert.True(t, s.Ready())
	assert.Equal(t, sampleRecent, s.Recent())
	assert.Equal(t, sampleStats, s.Stats())
}

func TestLoadFailureHidesPartialData(t *testing.T) {
	boom := errors.New("502 bad gateway")

	tests := []struct {
		name      string
		recentErr error
		statsErr  error
	}{
		{"recent session fails", boom, nil},
		{"stats fails", nil, boom},
		{"both fail", boom, boom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			portal := mock_api.NewMockPortal(ctrl)
			portal.EXPECT().RecentSession(gomock.Any()).Return(sampleRecent, tt.recentErr)
			portal.EXPECT().Stats(gomock.Any()).Return(sampleStats, tt.statsErr)

			var s State
			s.Apply(Load(context.Background(), portal, s.Begin()))

			assert.False(t, s.Loading())
			assert.True(t, s.Failed())
			assert.False(t, s.Ready())
			assert.Equal(t, FailureMessage, s.Message())
			assert.Nil(t, s.Recent())
			assert.Nil(t, s.Stats())
			assert.ErrorIs(t, s.Err(), boom)
		})
	}
}

func TestNoRecentSessionIsNotAnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	portal := mock_api.NewMockPortal(ctrl)
	portal.EXPECT().RecentSession(gomock.Any()).Return(nil, nil)
	portal.EXPECT().Stats(gomock.Any()).Return(sampleStats, nil)

	var s State
	s.Apply(Load(context.Background(), portal, s.Begin()))

	assert.True(t, s.Ready())
	assert.False(t, s.Failed())
	assert.Nil(t, s.Recent())
}

// slowFetcher blocks RecentSession until released so the test can observe
// that both calls were in flight at once.
type slowFetcher struct {
	inFlight atomic.Int32
	peak     atomic.Int32
	release  chan struct{}
}

func (f *slowFetcher) track() func() {
	n := f.inFlight.Add(1)
	for {
		p := f.peak.Load()
		if n <= p || f.peak.CompareAndSwap(p, n) {
			break
		}
	}
	return func() { f.inFlight.Add(-1) }
}

func (f *slowFetcher) RecentSession(context.Context) (*api.RecentSession, error) {
	defer f.track()()
	<-f.release
	return sampleRecent, nil
}

func (f *slowFetcher) Stats(context.Context) (*api.StudyStats, error) {
	defer f.track()()
	<-f.release
	return sampleStats, nil
}

func TestLoadIsConcurrent(t *testing.T) {
	f := &slowFetcher{release: make(chan struct{})}

	done := make(chan Result)
	go func() { done <- Load(context.Background(), f, Request{StateID: "test", Seq: 1}) }()

	require.Eventually(t, func() bool { return f.peak.Load() == 2 }, time.Second, time.Millisecond)
	close(f.release)

	res := <-done
	assert.NoError(t, res.Err)
}

func TestSupersededLoadDropped(t *testing.T) {
	var s State
	old := s.Begin()
	current := s.Begin()

	assert.False(t, s.Apply(Result{StateID: old.StateID, Seq: old.Seq, Stats: sampleStats}))
	assert.True(t, s.Loading())

	assert.True(t, s.Apply(Result{StateID: current.StateID, Seq: current.Seq, Stats: sampleStats}))
	assert.False(t, s.Loading())
}

func TestResultFromAnotherStateDropped(t *testing.T) {
	var previous, fresh State
	stale := previous.Begin()
	current := fresh.Begin()
	require.Equal(t, stale.Seq, current.Seq)

	assert.False(t, fresh.Apply(Result{StateID: stale.StateID, Seq: stale.Seq, Stats: sampleStats}))
	assert.True(t, fresh.Loading())

	assert.True(t, fresh.Apply(Result{StateID: current.StateID, Seq: current.Seq, Stats: sampleStats}))
	assert.True(t, fresh.Ready())
}
