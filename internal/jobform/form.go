// Package jobform implements the job creation workflow: it accumulates field
// edits and skills, validates the request and submits it.
package jobform

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/jonathan/hire-caliber/internal/notify"
	"github.com/jonathan/hire-caliber/internal/types"
)

// Field names accepted by EditField.
const (
	FieldTitle       = "title"
	FieldDescription = "description"
)

// ErrBusy is returned when Save is called while a save is in flight.
var ErrBusy = errors.New("a save is already in progress")

// Creator creates jobs. *jobs.Service satisfies it.
type Creator interface {
	CreateJob(ctx context.Context, req types.CreateJobRequest) (*types.Job, error)
}

// SkillDraft is the skill being typed before it is added.
type SkillDraft struct {
	Name string
	Type types.SkillType
}

// State is a snapshot of the form.
type State struct {
	Open       bool
	Fields     types.CreateJobRequest
	Draft      SkillDraft
	Submitting bool
}

// Form is the creation workflow. It is safe for concurrent use.
type Form struct {
	creator  Creator
	onSave   func(*types.Job)
	notifier notify.Notifier
	logger   *slog.Logger

	mu    sync.Mutex
	state State
}

// New creates a closed form with empty fields. onSave may be nil.
func New(creator Creator, onSave func(*types.Job), notifier notify.Notifier, logger *slog.Logger) *Form {
	if notifier == nil {
		notifier = notify.Discard
	}
	if logger == nil {
		logger = slog.Default()
	}
	f := &Form{
		creator:  creator,
		onSave:   onSave,
		notifier: notifier,
		logger:   logger,
	}
	f.state = emptyState()
	return f
}

func emptyState() State {
	return State{
		Fields: types.CreateJobRequest{Skills: []types.Skill{}},
		Draft:  SkillDraft{Type: types.DefaultSkillType},
	}
}

// Open shows the form.
func (f *Form) Open() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.Open = true
}

// Close hides the form. Entered fields are kept.
func (f *Form) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.Open = false
}

// Snapshot returns a copy of the current state.
func (f *Form) Snapshot() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	s := f.state
	s.Fields.Skills = append([]types.Skill{}, f.state.Fields.Skills...)
	return s
}

// EditField merges value into the named field. It reports false for an
// unknown field name.
func (f *Form) EditField(name, value string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch name {
	case FieldTitle:
		f.state.Fields.Title = value
	case FieldDescription:
		f.state.Fields.Description = value
	default:
		return false
	}
	return true
}

// SetSkillDraft sets the draft skill name.
func (f *Form) SetSkillDraft(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.Draft.Name = name
}

// SetSkillDraftType sets the draft skill type.
func (f *Form) SetSkillDraftType(t types.SkillType) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.Draft.Type = t
}

// AddDraftSkill adds the current draft as a skill.
func (f *Form) AddDraftSkill() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.addSkillLocked(f.state.Draft.Name, f.state.Draft.Type)
}

// AddSkill appends {trim(name), t}. A name that trims to empty is ignored
// and an unknown t becomes DefaultSkillType. After an add the draft is reset.
func (f *Form) AddSkill(name string, t types.SkillType) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.addSkillLocked(name, t)
}

func (f *Form) addSkillLocked(name string, t types.SkillType) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	if !t.Valid() {
		t = types.DefaultSkillType
	}
	f.state.Fields.Skills = append(f.state.Fields.Skills, types.Skill{Name: name, Type: t})
	f.state.Draft = SkillDraft{Type: types.DefaultSkillType}
	return true
}

// RemoveSkill removes the skill at index. Out-of-range indices are ignored.
func (f *Form) RemoveSkill(index int) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	skills := f.state.Fields.Skills
	if index < 0 || index >= len(skills) {
		return false
	}
	f.state.Fields.Skills = append(skills[:index:index], skills[index+1:]...)
	return true
}

// Save submits the fields. On success onSave receives the created job, the
// form closes and its fields are reset. On failure the form stays open with
// its fields intact and an error notice is raised.
func (f *Form) Save(ctx context.Context) error {
	f.mu.Lock()
	if f.state.Submitting {
		f.mu.Unlock()
		return ErrBusy
	}
	req := f.state.Fields
	req.Skills = append([]types.Skill{}, f.state.Fields.Skills...)
	if err := req.Validate(); err != nil {
		f.mu.Unlock()
		notify.Errorf(f.notifier, "Please fill in the job details: %s", describeValidation(err))
		return fmt.Errorf("invalid job: %w", err)
	}
	f.state.Submitting = true
	f.mu.Unlock()

	job, err := f.creator.CreateJob(ctx, req)
	if err != nil {
		f.mu.Lock()
		f.state.Submitting = false
		f.mu.Unlock()
		f.logger.Warn("job creation failed", "title", req.Title, "error", err)
		notify.Errorf(f.notifier, "Could not save job: %s", err)
		return fmt.Errorf("failed to create job: %w", err)
	}

	f.logger.Info("job created", "id", job.ID, "title", job.Title)
	if f.onSave != nil {
		f.onSave(job)
	}

	f.mu.Lock()
	f.state = emptyState()
	f.mu.Unlock()

	notify.Successf(f.notifier, "Job \"%s\" created.", job.Title)
	return nil
}
