//nolint:revive // types is a standard Go package name pattern
package types

import "encoding/json"

// Match is a ranked candidate match for a job.
type Match struct {
	CandidateID string `json:"candidate_id"`
	Name        string `json:"name"`
	// RelevanceScore is nil when the backend does not score matches.
	RelevanceScore *float64 `json:"relevance_score,omitempty"`
}

// UnmarshalJSON accepts the candidate id as candidate_id, _id or id, the
// score as relevance_score or score, and falls back to candidate_filename
// when no name is sent.
func (m *Match) UnmarshalJSON(data []byte) error {
	var dto struct {
		CandidateID       string   `json:"candidate_id"`
		MongoID           string   `json:"_id"`
		ID                string   `json:"id"`
		Name              string   `json:"name"`
		CandidateFilename string   `json:"candidate_filename"`
		RelevanceScore    *float64 `json:"relevance_score"`
		Score             *float64 `json:"score"`
	}
	if err := json.Unmarshal(data, &dto); err != nil {
		return err
	}

	m.CandidateID = firstNonEmpty(dto.CandidateID, dto.MongoID, dto.ID)
	m.Name = firstNonEmpty(dto.Name, dto.CandidateFilename)
	m.RelevanceScore = dto.RelevanceScore
	if m.RelevanceScore == nil {
		m.RelevanceScore = dto.Score
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
