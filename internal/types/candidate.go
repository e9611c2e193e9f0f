//nolint:revive // types is a standard Go package name pattern
package types

import "encoding/json"

// Candidate is a screening result for a job.
type Candidate struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Skills    []string `json:"skills"`
	ResumeURL string   `json:"resumeUrl,omitempty"`
}

// UnmarshalJSON accepts both "id" and the backend's "_id" alias and never
// leaves Skills nil.
func (c *Candidate) UnmarshalJSON(data []byte) error {
	var dto struct {
		ID        string   `json:"id"`
		MongoID   string   `json:"_id"`
		Name      string   `json:"name"`
		Skills    []string `json:"skills"`
		ResumeURL string   `json:"resumeUrl"`
	}
	if err := json.Unmarshal(data, &dto); err != nil {
		return err
	}
	c.ID = dto.ID
	if c.ID == "" {
		c.ID = dto.MongoID
	}
	c.Name = dto.Name
	c.Skills = dto.Skills
	if c.Skills == nil {
		c.Skills = []string{}
	}
	c.ResumeURL = dto.ResumeURL
	return nil
}
