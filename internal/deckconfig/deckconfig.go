// Package deckconfig extracts the pipeline inputs from the deck's project
// configuration file. The file is TypeScript, but only two values matter
// here, so they are pulled out by pattern extraction instead of a full
// parser: the quoted numeric meetup id and the optional extraFields list of
// quoted speaker field names.
package deckconfig

import (
	"fmt"
	"os"
	"regexp"
	"strconv"

	"github.com/greenroomhq/greenroom/pkg/errors"
)

// Deck holds the values extracted from the deck configuration file.
type Deck struct {
	// MeetupID is the configured meetup identifier, as written (a quoted
	// digit string in the source file).
	MeetupID string

	// SpeakerExtraFields lists additional per-speaker override fields the
	// deck wants scaffolded, in declaration order. Duplicates are kept
	// as-given.
	SpeakerExtraFields []string
}

var (
	idPattern          = regexp.MustCompile(`id:\s*['"](\d+)['"]`)
	extraFieldsPattern = regexp.MustCompile(`extraFields:\s*\[([^\]]*)\]`)
	quotedValuePattern = regexp.MustCompile(`['"]([^'"]*)['"]`)
)

// Read loads the configuration file at path and extracts the deck values.
// A missing or unreadable file is a configuration error: the run must abort
// before any network call.
func Read(path string) (*Deck, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewConfigError("deck config", fmt.Sprintf("cannot read %s", path), err)
	}
	return Parse(string(raw), path)
}

// Parse extracts the deck values from file content. The id is required;
// an absent extraFields declaration yields an empty list.
func Parse(content, path string) (*Deck, error) {
	idMatch := idPattern.FindStringSubmatch(content)
	if idMatch == nil {
		return nil, errors.NewConfigError("deck config",
			fmt.Sprintf("no quoted numeric id found in %s", path), nil)
	}

	deck := &Deck{
		MeetupID:           idMatch[1],
		SpeakerExtraFields: []string{},
	}

	if listMatch := extraFieldsPattern.FindStringSubmatch(content); listMatch != nil {
		for _, m := range quotedValuePattern.FindAllStringSubmatch(listMatch[1], -1) {
			deck.SpeakerExtraFields = append(deck.SpeakerExtraFields, m[1])
		}
	}

	return deck, nil
}

// NumericID returns the meetup id as an integer for exact matching against
// the remote collection. The id pattern only captures digits, so this cannot
// fail on a Deck produced by Parse.
func (d *Deck) NumericID() (int, error) {
	id, err := strconv.Atoi(d.MeetupID)
	if err != nil {
		return 0, errors.NewConfigError("deck config",
			fmt.Sprintf("meetup id %q is not numeric", d.MeetupID), err)
	}
	return id, nil
}
