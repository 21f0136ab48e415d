// Package meetup defines the normalized meetup data model shared by the
// pipeline stages and written to the meetup-data.json artifact. The shapes
// here are the contract with the slide deck: the Vue components import the
// artifact directly, so field names and nullability are part of the API.
package meetup

// Meetup holds the deck-facing details of a single meetup event.
type Meetup struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Date     string `json:"date"`
	Venue    string `json:"venue"`
	Location string `json:"location"`
	Time     string `json:"time"`
}

// Sponsor is the single sponsor shown on the deck's sponsor slide.
// Logo is nil when the sponsor has no uploaded logo asset.
type Sponsor struct {
	Name string  `json:"name"`
	Logo *string `json:"logo"`
}

// Data is the merged, denormalized document consumed by the presentation
// layer. It is rebuilt from scratch on every run; the on-disk artifact is
// fully overwritten and never read back as a merge input.
type Data struct {
	Meetup   Meetup    `json:"meetup"`
	Speakers []Speaker `json:"speakers"`
	Sponsor  *Sponsor  `json:"sponsor"`
}
