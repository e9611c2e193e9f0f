// Package upload implements the resume upload workflow: one selected-file
// slot fed by the picker or a drop, client-side size checks, and a
// multipart submission to the job's resume endpoint.
package upload

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/gabriel-vasile/mimetype"
	"github.com/jonathan/hire-caliber/internal/notify"
)

// Source is where a selection came from.
type Source string

const (
	SourcePicker Source = "picker"
	SourceDrop   Source = "drop"
)

// Notice texts.
const (
	MsgTooLarge     = "File size exceeds 5 MB limit."
	MsgNoFile       = "Please select a file first!"
	MsgUploadFailed = "Upload failed. Please try again."
)

var (
	// ErrTooLarge is returned by Select for files over MaxFileSize.
	ErrTooLarge = errors.New("file exceeds size limit")
	// ErrNoFile is returned by Upload when nothing is selected.
	ErrNoFile = errors.New("no file selected")
	// ErrBusy is returned by Upload while an upload is in flight.
	ErrBusy = errors.New("an upload is already in progress")
)

// Uploader submits resumes. *jobs.Service satisfies it.
type Uploader interface {
	UploadResume(ctx context.Context, jobID, filename, contentType string, content io.Reader) (json.RawMessage, error)
}

// State is a snapshot of the workflow.
type State struct {
	JobID     string
	Selected  *File
	Uploading bool
	// LastAck is the backend's acknowledgment of the last successful upload.
	LastAck json.RawMessage
}

// Workflow is the upload workflow for one job. It is safe for concurrent use.
type Workflow struct {
	uploader Uploader
	notifier notify.Notifier
	logger   *slog.Logger

	mu    sync.Mutex
	state State
}

// New creates a Workflow that uploads to jobID.
func New(uploader Uploader, jobID string, notifier notify.Notifier, logger *slog.Logger) *Workflow {
	if notifier == nil {
		notifier = notify.Discard
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Workflow{
		uploader: uploader,
		notifier: notifier,
		logger:   logger,
		state:    State{JobID: jobID},
	}
}

// Snapshot returns a copy of the current state.
func (w *Workflow) Snapshot() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// Select puts f in the selected-file slot, replacing any earlier selection.
// Oversized files are rejected with a notice and leave the slot unchanged.
func (w *Workflow) Select(f *File, source Source) error {
	if f == nil {
		return nil
	}
	if f.Size > MaxFileSize {
		w.logger.Debug("rejected oversized file", "name", f.Name, "size", f.Size, "source", source)
		notify.Errorf(w.notifier, MsgTooLarge)
		return fmt.Errorf("%s (%d bytes): %w", f.Name, f.Size, ErrTooLarge)
	}
	if !Accepted(f.Name) {
		w.logger.Debug("selected file outside accepted types", "name", f.Name)
	}

	w.mu.Lock()
	w.state.Selected = f
	w.mu.Unlock()

	w.logger.Debug("file selected", "name", f.Name, "size", f.Size, "source", source)
	return nil
}

// Clear empties the selected-file slot.
func (w *Workflow) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.state.Selected = nil
}

// Upload submits the selected file under the "resume" field. Success clears
// the slot; failure keeps it so the user can retry.
func (w *Workflow) Upload(ctx context.Context) error {
	w.mu.Lock()
	f := w.state.Selected
	jobID := w.state.JobID
	if f == nil {
		w.mu.Unlock()
		notify.Warnf(w.notifier, MsgNoFile)
		return ErrNoFile
	}
	if w.state.Uploading {
		w.mu.Unlock()
		return ErrBusy
	}
	w.state.Uploading = true
	w.mu.Unlock()

	ack, err := w.send(ctx, jobID, f)

	w.mu.Lock()
	w.state.Uploading = false
	if err != nil {
		w.mu.Unlock()
		w.logger.Warn("resume upload failed", "job_id", jobID, "name", f.Name, "error", err)
		notify.Errorf(w.notifier, MsgUploadFailed)
		return fmt.Errorf("failed to upload %s: %w", f.Name, err)
	}
	if w.state.Selected == f {
		w.state.Selected = nil
	}
	w.state.LastAck = ack
	w.mu.Unlock()

	w.logger.Info("resume uploaded", "job_id", jobID, "name", f.Name, "size", f.Size)
	notify.Successf(w.notifier, "File \"%s\" uploaded successfully!", f.Name)
	return nil
}

func (w *Workflow) send(ctx context.Context, jobID string, f *File) (json.RawMessage, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	br := bufio.NewReaderSize(rc, 3072)
	head, _ := br.Peek(3072)
	contentType := mimetype.Detect(head).String()

	return w.uploader.UploadResume(ctx, jobID, f.Name, contentType, br)
}
