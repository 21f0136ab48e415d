package pipeline

import (
	"fmt"
	"time"

	"github.com/agentstation/utc"

	"github.com/greenroomhq/greenroom/pkg/meetup"
)

// Result represents the outcome of one pipeline run.
type Result struct {
	// The meetup that was published
	MeetupID    int    `json:"meetupId"`
	Title       string `json:"title"`
	Speakers    int    `json:"speakers"`
	SponsorName string `json:"sponsor,omitempty"`

	// Overridden reports whether an override document was present and
	// parseable; a freshly scaffolded template counts, its nulls just
	// merge to nothing.
	Overridden bool `json:"overridden"`
	// ScaffoldCreated reports whether this run created the override
	// template.
	ScaffoldCreated bool `json:"scaffoldCreated"`
	DryRun          bool `json:"dryRun"`

	// Operation metadata
	StartedAt   utc.Time `json:"startedAt"`
	CompletedAt utc.Time `json:"completedAt"`
	Outputs     []string `json:"outputs,omitempty"`

	// Data is the merged document, kept for display without a re-read of
	// the artifact (dry runs never write one).
	Data *meetup.Data `json:"-"`
}

// Elapsed returns the wall-clock duration of the run.
func (r *Result) Elapsed() time.Duration {
	return r.CompletedAt.Sub(r.StartedAt)
}

// Summary returns a human-readable one-line summary of the run.
func (r *Result) Summary() string {
	summary := fmt.Sprintf("meetup %d %q: %d speakers", r.MeetupID, r.Title, r.Speakers)
	if r.SponsorName != "" {
		summary += fmt.Sprintf(", sponsor %s", r.SponsorName)
	}
	if r.ScaffoldCreated {
		summary += ", override template created"
	}
	if r.DryRun {
		summary += " (dry run)"
	}
	return summary
}
