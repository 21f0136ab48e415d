// Package overrides manages the manual override file that lets organizers
// correct or enrich fetched meetup data. The file is scaffolded once (never
// overwritten, so user edits survive every later run) and read tolerantly:
// a missing or unparseable file downgrades to "no overrides" instead of
// blocking the publish of fresh speaker data.
package overrides

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/greenroomhq/greenroom/pkg/errors"
	"github.com/greenroomhq/greenroom/pkg/logging"
)

// Document is the parsed override file. Sections mirror the artifact shape:
// optional meetup-level fields, per-speaker field maps keyed by exact
// speaker name, and optional sponsor fields. A JSON null value anywhere
// means "no override, keep the derived value"; null is a sentinel, never
// data.
type Document struct {
	Meetup   map[string]any            `json:"meetup"`
	Speakers map[string]map[string]any `json:"speakers"`
	Sponsor  map[string]any            `json:"sponsor"`
}

// Parse strictly decodes an override document. Callers that want the
// tolerant missing-or-malformed behavior use Load instead.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.WrapParse("json", "", err)
	}
	return &doc, nil
}

// Load reads the override file at path. A missing file yields (nil, nil).
// A present but malformed file is logged at warn level and also yields
// (nil, nil): an editing mistake in the override file must never abort a
// run, only downgrade it to purely derived data.
func Load(ctx context.Context, store Store, path string) (*Document, error) {
	exists, err := store.Exists(path)
	if err != nil {
		return nil, errors.WrapIO("stat", path, err)
	}
	if !exists {
		logging.Ctx(ctx).Debug().
			Str("path", path).
			Msg("No override file present, using derived data")
		return nil, nil
	}

	data, err := store.ReadFile(path)
	if err != nil {
		logging.Ctx(ctx).Warn().
			Err(err).
			Str("path", path).
			Msg("Override file unreadable, continuing without overrides")
		return nil, nil
	}

	doc, err := Parse(data)
	if err != nil {
		logging.Ctx(ctx).Warn().
			Err(err).
			Str("path", path).
			Msg("Override file is not valid JSON, continuing without overrides")
		return nil, nil
	}

	return doc, nil
}

// Scaffold writes a template override file when none exists at path and
// reports whether it created one. The template holds one entry per speaker
// name, pre-populated with the configured extra fields set to null, plus
// empty meetup and sponsor sections. An existing file is never touched,
// even if it is empty.
func Scaffold(ctx context.Context, store Store, path string, speakerNames, extraFields []string) (bool, error) {
	exists, err := store.Exists(path)
	if err != nil {
		return false, errors.WrapIO("stat", path, err)
	}
	if exists {
		logging.Ctx(ctx).Debug().
			Str("path", path).
			Msg("Override file already exists, keeping user edits")
		return false, nil
	}

	data, err := scaffoldJSON(speakerNames, extraFields)
	if err != nil {
		return false, err
	}
	if err := store.WriteFile(path, data); err != nil {
		return false, errors.WrapIO("write", path, err)
	}

	logging.Ctx(ctx).Info().
		Str("path", path).
		Int("speakers", len(speakerNames)).
		Msg("Created override template")
	return true, nil
}

// scaffoldJSON renders the template document. Speaker entries keep the
// extracted order and extra fields keep their declaration order, with
// duplicates collapsing into a single key the way object assignment would.
func scaffoldJSON(speakerNames, extraFields []string) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"meetup":{},"speakers":{`)

	seenNames := make(map[string]bool, len(speakerNames))
	first := true
	for _, name := range speakerNames {
		if seenNames[name] {
			continue
		}
		seenNames[name] = true

		if !first {
			buf.WriteByte(',')
		}
		first = false

		nameJSON, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(nameJSON)
		buf.WriteString(":{")

		seenFields := make(map[string]bool, len(extraFields))
		firstField := true
		for _, field := range extraFields {
			if seenFields[field] {
				continue
			}
			seenFields[field] = true

			if !firstField {
				buf.WriteByte(',')
			}
			firstField = false

			fieldJSON, err := json.Marshal(field)
			if err != nil {
				return nil, err
			}
			buf.Write(fieldJSON)
			buf.WriteString(":null")
		}
		buf.WriteByte('}')
	}

	buf.WriteString(`},"sponsor":{}}`)

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, buf.Bytes(), "", "  "); err != nil {
		return nil, err
	}
	pretty.WriteByte('\n')
	return pretty.Bytes(), nil
}
