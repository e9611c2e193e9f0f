// Package joblist implements the job listing workflow and owns the creation
// form opened from it.
package joblist

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/jonathan/hire-caliber/internal/jobform"
	"github.com/jonathan/hire-caliber/internal/notify"
	"github.com/jonathan/hire-caliber/internal/types"
)

const msgListFailed = "Could not fetch jobs."

// Source lists and creates jobs. *jobs.Service satisfies it.
type Source interface {
	ListJobs(ctx context.Context) ([]types.Job, error)
	jobform.Creator
}

// State is a snapshot of the listing.
type State struct {
	Loading bool
	Error   string
	Jobs    []types.Job
}

// List is the listing workflow. It is safe for concurrent use.
type List struct {
	source Source
	logger *slog.Logger
	form   *jobform.Form

	mu    sync.Mutex
	state State
}

// New creates a List whose creation form appends saved jobs to the listing.
func New(source Source, notifier notify.Notifier, logger *slog.Logger) *List {
	if logger == nil {
		logger = slog.Default()
	}
	l := &List{
		source: source,
		logger: logger,
		state:  State{Jobs: []types.Job{}},
	}
	l.form = jobform.New(source, l.appendJob, notifier, logger)
	return l
}

// Form returns the creation form.
func (l *List) Form() *jobform.Form {
	return l.form
}

// OpenCreate opens the creation form.
func (l *List) OpenCreate() {
	l.form.Open()
}

// CloseCreate closes the creation form.
func (l *List) CloseCreate() {
	l.form.Close()
}

// Snapshot returns a copy of the current state.
func (l *List) Snapshot() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	s := l.state
	s.Jobs = append([]types.Job{}, l.state.Jobs...)
	return s
}

// Refresh reloads the listing. On failure earlier jobs are kept.
func (l *List) Refresh(ctx context.Context) error {
	l.mu.Lock()
	l.state.Loading = true
	l.state.Error = ""
	l.mu.Unlock()

	jobList, err := l.source.ListJobs(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.state.Loading = false
	if err != nil {
		l.state.Error = err.Error()
		if l.state.Error == "" {
			l.state.Error = msgListFailed
		}
		return fmt.Errorf("failed to list jobs: %w", err)
	}
	l.state.Jobs = jobList
	l.logger.Debug("jobs listed", "count", len(jobList))
	return nil
}

func (l *List) appendJob(job *types.Job) {
	if job == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.state.Jobs = append(l.state.Jobs, *job)
}
