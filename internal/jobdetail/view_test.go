package jobdetail

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"

	"github.com/jonathan/hire-caliber/internal/apitest"
	"github.com/jonathan/hire-caliber/internal/jobs"
	"github.com/jonathan/hire-caliber/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBackendView(t *testing.T) (*View, *apitest.Backend) {
	t.Helper()
	backend := apitest.New(t)
	return New(jobs.NewService(backend.Client(t)), nil), backend
}

func TestLoad_Success(t *testing.T) {
	view, backend := newBackendView(t)
	backend.JSON(http.MethodGet, "/api/jobs/42", http.StatusOK, map[string]string{
		"id": "42", "title": "X", "description": "Y",
	})

	require.NoError(t, view.Load(context.Background(), "42"))

	s := view.Snapshot()
	assert.False(t, s.Loading)
	assert.Empty(t, s.Error)
	assert.Equal(t, &types.Job{ID: "42", Title: "X", Description: "Y"}, s.Job)
	assert.Equal(t, PhaseReady, s.Phase())

	reqs := backend.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, http.MethodGet, reqs[0].Method)
	assert.Equal(t, "/api/jobs/42", reqs[0].Path)
}

func TestLoad_Failure(t *testing.T) {
	view, backend := newBackendView(t)
	backend.JSON(http.MethodGet, "/api/jobs/404", http.StatusNotFound, map[string]string{"detail": "Job not found."})

	err := view.Load(context.Background(), "404")
	require.Error(t, err)

	s := view.Snapshot()
	assert.False(t, s.Loading)
	assert.Equal(t, "Job not found.", s.Error)
	assert.Nil(t, s.Job)
	assert.Equal(t, PhaseError, s.Phase())
}

func TestReload_WithoutSelection(t *testing.T) {
	view, _ := newBackendView(t)
	assert.ErrorIs(t, view.Reload(context.Background()), ErrNoJob)
	assert.ErrorIs(t, view.Screen(context.Background()), ErrNoJob)
	assert.Equal(t, PhaseIdle, view.Snapshot().Phase())
}

func TestScreen_ReplacesCandidates(t *testing.T) {
	view, backend := newBackendView(t)
	backend.JSON(http.MethodPost, "/api/jobs/screen-candidates/42", http.StatusOK, []map[string]any{
		{"id": "c1", "name": "Ada", "skills": []string{"go"}},
	})
	view.Select("42")

	require.NoError(t, view.Screen(context.Background()))

	s := view.Snapshot()
	assert.False(t, s.CandidatesLoading)
	assert.True(t, s.ShowCandidates())
	assert.Equal(t, []types.Candidate{{ID: "c1", Name: "Ada", Skills: []string{"go"}}}, s.Candidates)

	reqs := backend.Requests()
	require.Len(t, reqs, 1)
	assert.JSONEq(t, `{}`, string(reqs[0].Body))
}

func TestScreen_FailureRetainsCandidates(t *testing.T) {
	view, backend := newBackendView(t)
	backend.JSON(http.MethodPost, "/api/jobs/screen-candidates/42", http.StatusOK, []map[string]any{
		{"id": "c1", "name": "Ada", "skills": []string{"go"}},
	})
	view.Select("42")
	require.NoError(t, view.Screen(context.Background()))

	backend.JSON(http.MethodPost, "/api/jobs/screen-candidates/42", http.StatusInternalServerError, map[string]string{
		"detail": "vector store unavailable",
	})
	err := view.Screen(context.Background())
	require.Error(t, err)

	s := view.Snapshot()
	assert.Equal(t, "vector store unavailable", s.Error)
	assert.False(t, s.CandidatesLoading)
	require.Len(t, s.Candidates, 1)
	assert.Equal(t, "Ada", s.Candidates[0].Name)
}

func TestScreen_EmptyResultHidesTable(t *testing.T) {
	view, backend := newBackendView(t)
	backend.JSON(http.MethodPost, "/api/jobs/screen-candidates/42", http.StatusOK, []any{})
	view.Select("42")

	require.NoError(t, view.Screen(context.Background()))
	s := view.Snapshot()
	assert.False(t, s.ShowCandidates())
	assert.NotNil(t, s.Candidates)
}

// blockingSource lets a test hold responses until it releases them.
type blockingSource struct {
	mu      sync.Mutex
	jobs    map[string]chan result
	screens map[string]chan result
	started chan string
}

type result struct {
	job        *types.Job
	candidates []types.Candidate
	err        error
}

func newBlockingSource() *blockingSource {
	return &blockingSource{
		jobs:    map[string]chan result{},
		screens: map[string]chan result{},
		started: make(chan string, 16),
	}
}

func (b *blockingSource) ch(m map[string]chan result, key string) chan result {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := m[key]; !ok {
		m[key] = make(chan result, 1)
	}
	return m[key]
}

func (b *blockingSource) GetJob(_ context.Context, id string) (*types.Job, error) {
	b.started <- "get:" + id
	r := <-b.ch(b.jobs, id)
	return r.job, r.err
}

func (b *blockingSource) ScreenCandidates(_ context.Context, id string) ([]types.Candidate, error) {
	b.started <- "screen:" + id
	r := <-b.ch(b.screens, id)
	return r.candidates, r.err
}

func TestReload_DiscardsStaleResponse(t *testing.T) {
	src := newBlockingSource()
	view := New(src, nil)
	ctx := context.Background()

	staleErr := make(chan error, 1)
	go func() { staleErr <- view.Load(ctx, "1") }()
	require.Equal(t, "get:1", <-src.started)

	freshErr := make(chan error, 1)
	go func() { freshErr <- view.Load(ctx, "2") }()
	require.Equal(t, "get:2", <-src.started)

	src.ch(src.jobs, "2") <- result{job: &types.Job{ID: "2", Title: "new"}}
	require.NoError(t, <-freshErr)

	src.ch(src.jobs, "1") <- result{job: &types.Job{ID: "1", Title: "old"}}
	assert.ErrorIs(t, <-staleErr, ErrStale)

	s := view.Snapshot()
	assert.Equal(t, "2", s.JobID)
	assert.Equal(t, "new", s.Job.Title)
	assert.False(t, s.Loading)
}

func TestScreen_DiscardedAfterNavigation(t *testing.T) {
	src := newBlockingSource()
	view := New(src, nil)
	ctx := context.Background()
	view.Select("1")

	screenErr := make(chan error, 1)
	go func() { screenErr <- view.Screen(ctx) }()
	require.Equal(t, "screen:1", <-src.started)

	view.Select("2")
	src.ch(src.screens, "1") <- result{candidates: []types.Candidate{{ID: "c1", Name: "Ada"}}}
	assert.ErrorIs(t, <-screenErr, ErrStale)

	s := view.Snapshot()
	assert.Equal(t, "2", s.JobID)
	assert.Empty(t, s.Candidates)
	assert.True(t, s.CanScreen())
}

func TestScreen_BusyWhileInFlight(t *testing.T) {
	src := newBlockingSource()
	view := New(src, nil)
	ctx := context.Background()
	view.Select("1")

	done := make(chan error, 1)
	go func() { done <- view.Screen(ctx) }()
	require.Equal(t, "screen:1", <-src.started)

	s := view.Snapshot()
	assert.True(t, s.CandidatesLoading)
	assert.False(t, s.CanScreen())
	assert.Equal(t, LabelScreening, s.ScreenLabel())
	assert.ErrorIs(t, view.Screen(ctx), ErrBusy)

	src.ch(src.screens, "1") <- result{candidates: []types.Candidate{}}
	require.NoError(t, <-done)
	assert.Equal(t, LabelScreen, view.Snapshot().ScreenLabel())
}

func TestFetchAndScreen_Overlap(t *testing.T) {
	src := newBlockingSource()
	view := New(src, nil)
	ctx := context.Background()
	view.Select("1")

	loadErr := make(chan error, 1)
	screenErr := make(chan error, 1)
	go func() { loadErr <- view.Reload(ctx) }()
	go func() { screenErr <- view.Screen(ctx) }()
	started := []string{<-src.started, <-src.started}
	assert.ElementsMatch(t, []string{"get:1", "screen:1"}, started)

	s := view.Snapshot()
	assert.True(t, s.Loading)
	assert.True(t, s.CandidatesLoading)

	src.ch(src.screens, "1") <- result{err: errors.New("screening backend down")}
	require.Error(t, <-screenErr)
	assert.Equal(t, PhaseLoading, view.Snapshot().Phase())

	src.ch(src.jobs, "1") <- result{job: &types.Job{ID: "1", Title: "X"}}
	require.NoError(t, <-loadErr)

	s = view.Snapshot()
	assert.Equal(t, "screening backend down", s.Error)
	assert.Equal(t, PhaseError, s.Phase())
	assert.NotNil(t, s.Job)
}

func TestSelect_SameJobKeepsState(t *testing.T) {
	view, backend := newBackendView(t)
	backend.JSON(http.MethodPost, "/api/jobs/screen-candidates/42", http.StatusOK, []map[string]any{
		{"id": "c1", "name": "Ada"},
	})
	view.Select("42")
	require.NoError(t, view.Screen(context.Background()))

	view.Select("42")
	assert.Len(t, view.Snapshot().Candidates, 1)

	view.Select("43")
	assert.Empty(t, view.Snapshot().Candidates)
}
