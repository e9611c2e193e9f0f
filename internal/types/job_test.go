//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateJobRequest_Validation(t *testing.T) {
	tests := []struct {
		name    string
		request CreateJobRequest
		wantErr bool
		errMsg  string
	}{
		{
			name:    "title and description",
			request: CreateJobRequest{Title: "Go Engineer", Description: "Build things"},
		},
		{
			name:    "title only",
			request: CreateJobRequest{Title: "Go Engineer"},
		},
		{
			name: "with skills",
			request: CreateJobRequest{
				Title: "Go Engineer",
				Skills: []Skill{
					{Name: "Go", Type: SkillRequired},
					{Name: "Kubernetes", Type: SkillNiceToHave},
				},
			},
		},
		{
			name:    "missing title",
			request: CreateJobRequest{Description: "Build things"},
			wantErr: true,
			errMsg:  "Title",
		},
		{
			name: "unknown skill type",
			request: CreateJobRequest{
				Title:  "Go Engineer",
				Skills: []Skill{{Name: "Go", Type: "Optional"}},
			},
			wantErr: true,
			errMsg:  "oneof",
		},
		{
			name: "empty skill name",
			request: CreateJobRequest{
				Title:  "Go Engineer",
				Skills: []Skill{{Type: SkillRequired}},
			},
			wantErr: true,
			errMsg:  "Name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateJobRequest_OmitsEmptySkills(t *testing.T) {
	data, err := json.Marshal(CreateJobRequest{Title: "X", Description: "Y"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"X","description":"Y"}`, string(data))

	data, err = json.Marshal(CreateJobRequest{Title: "X", Skills: []Skill{{Name: "Go", Type: SkillRequired}}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"X","description":"","skills":[{"name":"Go","type":"Required"}]}`, string(data))
}

func TestParseSkillType(t *testing.T) {
	tests := []struct {
		in      string
		want    SkillType
		wantErr bool
	}{
		{in: "", want: SkillNiceToHave},
		{in: "nice", want: SkillNiceToHave},
		{in: "Nice-to-Have", want: SkillNiceToHave},
		{in: "required", want: SkillRequired},
		{in: " REQUIRED ", want: SkillRequired},
		{in: "bonus", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSkillType(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestJob_UnmarshalAcceptsUnderscoreID(t *testing.T) {
	var job Job
	require.NoError(t, json.Unmarshal([]byte(`{"_id":"6650a1","title":"X","description":"Y"}`), &job))
	assert.Equal(t, Job{ID: "6650a1", Title: "X", Description: "Y"}, job)

	require.NoError(t, json.Unmarshal([]byte(`{"id":"42","_id":"ignored","title":"X","description":"Y"}`), &job))
	assert.Equal(t, "42", job.ID)
}

func TestCandidate_Unmarshal(t *testing.T) {
	var c Candidate
	require.NoError(t, json.Unmarshal([]byte(`{"_id":"c1","name":"Ada"}`), &c))
	assert.Equal(t, "c1", c.ID)
	assert.Equal(t, "Ada", c.Name)
	assert.NotNil(t, c.Skills)
	assert.Empty(t, c.ResumeURL)

	require.NoError(t, json.Unmarshal([]byte(`{"id":"c2","name":"Lin","skills":["go","sql"],"resumeUrl":"https://cdn/r.pdf"}`), &c))
	assert.Equal(t, []string{"go", "sql"}, c.Skills)
	assert.Equal(t, "https://cdn/r.pdf", c.ResumeURL)
}

func TestSkillType_Valid(t *testing.T) {
	assert.True(t, SkillNiceToHave.Valid())
	assert.True(t, SkillRequired.Valid())
	assert.False(t, SkillType("").Valid())
	assert.False(t, SkillType("required").Valid())
}
