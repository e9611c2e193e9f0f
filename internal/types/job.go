// Package types provides the transport DTOs exchanged with the Hire Caliber API.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// SkillType classifies how strongly a job asks for a skill.
type SkillType string

const (
	SkillNiceToHave SkillType = "Nice-to-Have"
	SkillRequired   SkillType = "Required"
)

// DefaultSkillType is the type a skill draft starts with.
const DefaultSkillType = SkillNiceToHave

// Valid reports whether t is one of the known skill types.
func (t SkillType) Valid() bool {
	return t == SkillNiceToHave || t == SkillRequired
}

// ParseSkillType maps loose user input ("required", "nice", "nice-to-have")
// onto a SkillType.
func ParseSkillType(s string) (SkillType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "nice", "nice-to-have", "nice_to_have", "nicetohave":
		return SkillNiceToHave, nil
	case "required", "req", "must":
		return SkillRequired, nil
	default:
		return "", fmt.Errorf("unknown skill type %q (want %q or %q)", s, SkillRequired, SkillNiceToHave)
	}
}

// Skill is a named requirement attached to a job at creation time.
type Skill struct {
	Name string    `json:"name" validate:"required"`
	Type SkillType `json:"type" validate:"required,oneof=Nice-to-Have Required"`
}

// Job is a posting as returned by the API.
type Job struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// UnmarshalJSON accepts both "id" and the backend's "_id" alias.
func (j *Job) UnmarshalJSON(data []byte) error {
	var dto struct {
		ID          string `json:"id"`
		MongoID     string `json:"_id"`
		Title       string `json:"title"`
		Description string `json:"description"`
	}
	if err := json.Unmarshal(data, &dto); err != nil {
		return err
	}
	j.ID = dto.ID
	if j.ID == "" {
		j.ID = dto.MongoID
	}
	j.Title = dto.Title
	j.Description = dto.Description
	return nil
}

// CreateJobRequest is the body of POST /jobs/create.
type CreateJobRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description"`
	Skills      []Skill `json:"skills,omitempty" validate:"dive"`
}

// Validate validates the CreateJobRequest using the validator.
func (r *CreateJobRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
