// Package jobdetail implements the job detail workflow: fetching one job and
// screening candidates against it.
package jobdetail

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/jonathan/hire-caliber/internal/types"
)

// Button labels for the screening action.
const (
	LabelScreen    = "Find Candidates"
	LabelScreening = "Screening..."
)

// Fallback messages used when an error carries no text.
const (
	msgJobFailed        = "Could not fetch job details."
	msgCandidatesFailed = "Could not fetch candidates."
)

var (
	// ErrNoJob is returned by Reload and Screen before a job is selected.
	ErrNoJob = errors.New("no job selected")
	// ErrBusy is returned by Screen while a screening call is in flight.
	ErrBusy = errors.New("screening already in progress")
	// ErrStale is returned when a result arrives after the view moved on.
	ErrStale = errors.New("result discarded: view changed while request was in flight")
)

// Source fetches jobs and screens candidates. *jobs.Service satisfies it.
type Source interface {
	GetJob(ctx context.Context, id string) (*types.Job, error)
	ScreenCandidates(ctx context.Context, id string) ([]types.Candidate, error)
}

// State is a snapshot of the view.
type State struct {
	JobID             string
	Loading           bool
	Error             string
	Job               *types.Job
	CandidatesLoading bool
	Candidates        []types.Candidate
}

// Phase is the active part of the view.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseError
	PhaseReady
)

// Phase returns the single active view state. Loading wins over an error
// left by a concurrent screening call.
func (s State) Phase() Phase {
	switch {
	case s.Loading:
		return PhaseLoading
	case s.Error != "":
		return PhaseError
	case s.Job != nil:
		return PhaseReady
	default:
		return PhaseIdle
	}
}

// ShowCandidates reports whether the candidates table should render.
func (s State) ShowCandidates() bool {
	return len(s.Candidates) > 0
}

// CanScreen reports whether the screening action is enabled.
func (s State) CanScreen() bool {
	return s.JobID != "" && !s.CandidatesLoading
}

// ScreenLabel is the label of the screening action.
func (s State) ScreenLabel() string {
	if s.CandidatesLoading {
		return LabelScreening
	}
	return LabelScreen
}

// View is the detail workflow. Detail fetches and screening use separate
// loading flags and may overlap. It is safe for concurrent use.
type View struct {
	source Source
	logger *slog.Logger

	mu           sync.Mutex
	state        State
	fetchTicket  uuid.UUID
	screenTicket uuid.UUID
}

// New creates an empty View.
func New(source Source, logger *slog.Logger) *View {
	if logger == nil {
		logger = slog.Default()
	}
	return &View{
		source: source,
		logger: logger,
		state:  State{Candidates: []types.Candidate{}},
	}
}

// Snapshot returns a copy of the current state.
func (v *View) Snapshot() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	s := v.state
	s.Candidates = append([]types.Candidate{}, v.state.Candidates...)
	if v.state.Job != nil {
		job := *v.state.Job
		s.Job = &job
	}
	return s
}

// Select points the view at id without fetching. Selecting a different job
// discards the previous job, its candidates and any in-flight results.
func (v *View) Select(id string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.selectLocked(id)
}

func (v *View) selectLocked(id string) {
	if id == v.state.JobID {
		return
	}
	v.state = State{JobID: id, Candidates: []types.Candidate{}}
	v.fetchTicket = uuid.Nil
	v.screenTicket = uuid.Nil
}

// Load selects id and fetches it.
func (v *View) Load(ctx context.Context, id string) error {
	v.Select(id)
	return v.Reload(ctx)
}

// Reload fetches the selected job again.
func (v *View) Reload(ctx context.Context) error {
	v.mu.Lock()
	id := v.state.JobID
	if id == "" {
		v.mu.Unlock()
		return ErrNoJob
	}
	ticket := uuid.New()
	v.fetchTicket = ticket
	v.state.Loading = true
	v.state.Error = ""
	v.mu.Unlock()

	job, err := v.source.GetJob(ctx, id)

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.fetchTicket != ticket || v.state.JobID != id {
		v.logger.Debug("discarding stale job response", "job_id", id)
		return ErrStale
	}
	v.state.Loading = false
	if err != nil {
		v.state.Error = message(err, msgJobFailed)
		return fmt.Errorf("failed to fetch job %s: %w", id, err)
	}
	v.state.Job = job
	return nil
}

// Screen asks the backend for candidates matching the selected job. On
// success the candidates are replaced; on failure the error is recorded and
// earlier candidates are kept.
func (v *View) Screen(ctx context.Context) error {
	v.mu.Lock()
	id := v.state.JobID
	if id == "" {
		v.mu.Unlock()
		return ErrNoJob
	}
	if v.state.CandidatesLoading {
		v.mu.Unlock()
		return ErrBusy
	}
	ticket := uuid.New()
	v.screenTicket = ticket
	v.state.CandidatesLoading = true
	v.state.Error = ""
	v.mu.Unlock()

	candidates, err := v.source.ScreenCandidates(ctx, id)

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.screenTicket != ticket || v.state.JobID != id {
		v.logger.Debug("discarding stale screening response", "job_id", id)
		return ErrStale
	}
	v.state.CandidatesLoading = false
	if err != nil {
		v.state.Error = message(err, msgCandidatesFailed)
		v.logger.Warn("screening failed", "job_id", id, "error", err)
		return fmt.Errorf("failed to screen candidates for job %s: %w", id, err)
	}
	if candidates == nil {
		candidates = []types.Candidate{}
	}
	v.state.Candidates = candidates
	v.logger.Info("screening finished", "job_id", id, "candidates", len(candidates))
	return nil
}

func message(err error, fallback string) string {
	if msg := err.Error(); msg != "" {
		return msg
	}
	return fallback
}
