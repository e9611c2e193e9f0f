// Package jobs is the typed facade over the API client for job, screening
// and resume endpoints.
package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"

	"github.com/jonathan/hire-caliber/internal/apiclient"
	"github.com/jonathan/hire-caliber/internal/schemas"
	"github.com/jonathan/hire-caliber/internal/types"
	schemafiles "github.com/jonathan/hire-caliber/schemas"
)

// ResumeField is the multipart field name the backend reads resumes from.
const ResumeField = "resume"

// ErrEmptyResponse is returned when a call that must produce a payload
// returns nothing.
var ErrEmptyResponse = errors.New("server returned an empty response")

// Requester is the subset of apiclient.Client the service needs.
type Requester interface {
	Get(ctx context.Context, path string) (json.RawMessage, error)
	Post(ctx context.Context, path string, body any) (json.RawMessage, error)
	PostMultipart(ctx context.Context, path, field string, part apiclient.FilePart) (json.RawMessage, error)
}

// Service issues job-related API calls and decodes their payloads.
type Service struct {
	api Requester
}

// NewService creates a Service over api.
func NewService(api Requester) *Service {
	return &Service{api: api}
}

// CreateJob posts req to /jobs/create.
func (s *Service) CreateJob(ctx context.Context, req types.CreateJobRequest) (*types.Job, error) {
	payload, err := s.api.Post(ctx, "/jobs/create", req)
	if err != nil {
		return nil, err
	}
	return decodeJob(payload)
}

// GetJob fetches a job by identifier.
func (s *Service) GetJob(ctx context.Context, id string) (*types.Job, error) {
	payload, err := s.api.Get(ctx, "/jobs/"+url.PathEscape(id))
	if err != nil {
		return nil, err
	}
	return decodeJob(payload)
}

// ListJobs fetches every job.
func (s *Service) ListJobs(ctx context.Context) ([]types.Job, error) {
	payload, err := s.api.Get(ctx, "/jobs")
	if err != nil {
		return nil, err
	}
	if len(payload) == 0 || string(payload) == "null" {
		return []types.Job{}, nil
	}
	if err := schemas.ValidateBytes(schemafiles.JobList, payload); err != nil {
		return nil, fmt.Errorf("unexpected job list: %w", err)
	}
	var jobList []types.Job
	if err := json.Unmarshal(payload, &jobList); err != nil {
		return nil, fmt.Errorf("failed to decode job list: %w", err)
	}
	return jobList, nil
}

// ScreenCandidates asks the backend to match candidates against the job.
// The payload must be a candidate list; anything else is an error.
func (s *Service) ScreenCandidates(ctx context.Context, id string) ([]types.Candidate, error) {
	payload, err := s.api.Post(ctx, "/jobs/screen-candidates/"+url.PathEscape(id), struct{}{})
	if err != nil {
		return nil, err
	}
	return decodeCandidates(payload)
}

// ListCandidates fetches candidates already processed for the job.
func (s *Service) ListCandidates(ctx context.Context, id string) ([]types.Candidate, error) {
	payload, err := s.api.Get(ctx, "/jobs/"+url.PathEscape(id)+"/candidates")
	if err != nil {
		return nil, err
	}
	return decodeCandidates(payload)
}

// ListMatches fetches the backend's top-ranked candidate matches for the job.
func (s *Service) ListMatches(ctx context.Context, id string) ([]types.Match, error) {
	payload, err := s.api.Get(ctx, "/jobs/"+url.PathEscape(id)+"/matches")
	if err != nil {
		return nil, err
	}
	if len(payload) == 0 || string(payload) == "null" {
		return []types.Match{}, nil
	}
	if err := schemas.ValidateBytes(schemafiles.Matches, payload); err != nil {
		return nil, fmt.Errorf("unexpected match list: %w", err)
	}
	var matches []types.Match
	if err := json.Unmarshal(payload, &matches); err != nil {
		return nil, fmt.Errorf("failed to decode matches: %w", err)
	}
	return matches, nil
}

// UploadResume submits a resume for the job as multipart field "resume" and
// returns the backend's acknowledgment.
func (s *Service) UploadResume(ctx context.Context, id, filename, contentType string, content io.Reader) (json.RawMessage, error) {
	return s.api.PostMultipart(ctx, "/jobs/"+url.PathEscape(id)+"/resumes", ResumeField, apiclient.FilePart{
		Filename:    filename,
		ContentType: contentType,
		Content:     content,
	})
}

func decodeJob(payload json.RawMessage) (*types.Job, error) {
	if len(payload) == 0 || string(payload) == "null" {
		return nil, ErrEmptyResponse
	}
	if err := schemas.ValidateBytes(schemafiles.Job, payload); err != nil {
		return nil, fmt.Errorf("unexpected job payload: %w", err)
	}
	var job types.Job
	if err := json.Unmarshal(payload, &job); err != nil {
		return nil, fmt.Errorf("failed to decode job: %w", err)
	}
	return &job, nil
}

func decodeCandidates(payload json.RawMessage) ([]types.Candidate, error) {
	if len(payload) == 0 || string(payload) == "null" {
		return nil, ErrEmptyResponse
	}
	if err := schemas.ValidateBytes(schemafiles.Candidates, payload); err != nil {
		return nil, fmt.Errorf("unexpected candidate list: %w", err)
	}
	var candidates []types.Candidate
	if err := json.Unmarshal(payload, &candidates); err != nil {
		return nil, fmt.Errorf("failed to decode candidates: %w", err)
	}
	return candidates, nil
}
