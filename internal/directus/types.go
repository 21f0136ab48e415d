// Package directus talks to the Directus-style content API the meetup data
// lives in. It fetches the raw collections and extracts them into the
// normalized meetup.Data shape. The source-specific casing and junction
// wrappers (Session_id, Sponsor_id, filename_disk) are confined to this
// package: downstream components only ever see the extracted form, so a
// remote schema change stays a one-package fix.
package directus

import "encoding/json"

// Meetup is the raw meetup record as served by the content API. Casing
// follows the remote collection, which mixes capitalized and lowercase
// field names.
type Meetup struct {
	ID       int          `json:"id"`
	Title    string       `json:"title"`
	Date     *string      `json:"Date"`
	Venue    *string      `json:"Venue"`
	Location *string      `json:"Location"`
	Time     *string      `json:"Time"`
	Sessions []SessionRef `json:"sessions"`
	Sponsors []SponsorRef `json:"sponsors"`
}

// SessionRef is the junction row linking a meetup to a session.
type SessionRef struct {
	SessionID *Session `json:"Session_id"`
}

// Session wraps a talk title and its (at most one) speaker. The remote field
// is named "speakers" but holds a single object, not a list.
type Session struct {
	Title    string   `json:"title"`
	Speakers *Speaker `json:"speakers"`
}

// Speaker is the raw speaker object nested in a session.
type Speaker struct {
	Name   string  `json:"name"`
	GitHub *string `json:"github"`
}

// SponsorRef is the junction row linking a meetup to a sponsor.
type SponsorRef struct {
	SponsorID *Sponsor `json:"Sponsor_id"`
}

// Sponsor is the raw sponsor record nested in a sponsor reference.
type Sponsor struct {
	Name string `json:"Name"`
	Logo *Logo  `json:"Logo"`
}

// Logo is the uploaded logo asset; FilenameDisk is the stored object name
// the public asset URL is derived from.
type Logo struct {
	FilenameDisk string `json:"filename_disk"`
}

// Collections bundles the three raw collections fetched by one run. Only
// the meetup collection is structurally decoded; the speaker and sponsor
// collections are kept as raw records, un-validated beyond being JSON.
type Collections struct {
	Meetups  []Meetup
	Speakers []json.RawMessage
	Sponsors []json.RawMessage
}
