// Package schemas holds the JSON Schemas for API response payloads.
package schemas

import "embed"

// FS contains every *.schema.json file in this directory.
//
//go:embed *.schema.json
var FS embed.FS

// Schema file names.
const (
	Job        = "job.schema.json"
	JobList    = "jobs.schema.json"
	Candidates = "candidates.schema.json"
	Matches    = "matches.schema.json"
)
