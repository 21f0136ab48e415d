// Package merge applies an override document onto extracted meetup data.
// The rules are specific to the artifact schema and deliberately not a
// general merge library: three fixed sections, null as the "keep derived
// value" sentinel, and a single legacy key spelling to normalize.
package merge

import (
	"maps"

	"github.com/greenroomhq/greenroom/internal/overrides"
	"github.com/greenroomhq/greenroom/pkg/logging"
	"github.com/greenroomhq/greenroom/pkg/meetup"
)

// legacySpeakerKeys maps legacy override spellings to canonical artifact
// keys. Normalization applies to speaker overrides only.
var legacySpeakerKeys = map[string]string{
	"jobtitle": "jobTitle",
}

// Apply merges doc onto data and returns the result. A nil document returns
// the input unchanged. Apply never mutates its input: the returned Data owns
// fresh speaker and sponsor values wherever an override touched them.
func Apply(data meetup.Data, doc *overrides.Document) meetup.Data {
	if doc == nil {
		return data
	}

	merged := data
	merged.Meetup = mergeMeetup(data.Meetup, pruneNulls(doc.Meetup))
	merged.Speakers = mergeSpeakers(data.Speakers, doc.Speakers)
	merged.Sponsor = mergeSponsor(data.Sponsor, pruneNulls(doc.Sponsor))
	return merged
}

// pruneNulls drops entries whose value is JSON null. Null means "no
// override"; an override set that prunes to nothing is treated as absent.
func pruneNulls(fields map[string]any) map[string]any {
	if len(fields) == 0 {
		return nil
	}
	pruned := make(map[string]any, len(fields))
	for key, value := range fields {
		if value == nil {
			continue
		}
		pruned[key] = value
	}
	if len(pruned) == 0 {
		return nil
	}
	return pruned
}

// normalizeSpeakerKeys rewrites legacy key spellings to their canonical
// form. An explicit canonical key wins over its legacy spelling.
func normalizeSpeakerKeys(fields map[string]any) map[string]any {
	if len(fields) == 0 {
		return nil
	}
	normalized := make(map[string]any, len(fields))
	for key, value := range fields {
		canonical, isLegacy := legacySpeakerKeys[key]
		if !isLegacy {
			normalized[key] = value
			continue
		}
		if _, explicit := fields[canonical]; explicit {
			continue
		}
		normalized[canonical] = value
	}
	return normalized
}

func mergeMeetup(m meetup.Meetup, fields map[string]any) meetup.Meetup {
	for key, value := range fields {
		switch key {
		case "id":
			if f, ok := value.(float64); ok {
				m.ID = int(f)
			} else {
				logUnusableValue("meetup", key, value)
			}
		case "title":
			if s, ok := stringValue("meetup", key, value); ok {
				m.Title = s
			}
		case "date":
			if s, ok := stringValue("meetup", key, value); ok {
				m.Date = s
			}
		case "venue":
			if s, ok := stringValue("meetup", key, value); ok {
				m.Venue = s
			}
		case "location":
			if s, ok := stringValue("meetup", key, value); ok {
				m.Location = s
			}
		case "time":
			if s, ok := stringValue("meetup", key, value); ok {
				m.Time = s
			}
		default:
			logUnknownKey("meetup", key)
		}
	}
	return m
}

func mergeSpeakers(speakers []meetup.Speaker, byName map[string]map[string]any) []meetup.Speaker {
	if len(speakers) == 0 || len(byName) == 0 {
		return speakers
	}
	merged := make([]meetup.Speaker, len(speakers))
	for i, speaker := range speakers {
		fields := pruneNulls(normalizeSpeakerKeys(byName[speaker.Name]))
		merged[i] = mergeSpeaker(speaker, fields)
	}
	return merged
}

func mergeSpeaker(speaker meetup.Speaker, fields map[string]any) meetup.Speaker {
	if len(fields) == 0 {
		return speaker
	}

	// Clone before writing so the caller's Extra map stays untouched.
	speaker.Extra = maps.Clone(speaker.Extra)

	for key, value := range fields {
		switch key {
		case "name":
			if s, ok := stringValue("speakers", key, value); ok {
				speaker.Name = s
			}
		case "talkTitle":
			if s, ok := stringValue("speakers", key, value); ok {
				speaker.TalkTitle = s
			}
		case "github":
			if s, ok := stringValue("speakers", key, value); ok {
				speaker.GitHub = &s
			}
		case "githubAvatar":
			if s, ok := stringValue("speakers", key, value); ok {
				speaker.GitHubAvatar = &s
			}
		case "company":
			if s, ok := stringValue("speakers", key, value); ok {
				speaker.Company = &s
			}
		case "jobTitle":
			if s, ok := stringValue("speakers", key, value); ok {
				speaker.JobTitle = &s
			}
		case "bio":
			if s, ok := stringValue("speakers", key, value); ok {
				speaker.Bio = &s
			}
		default:
			if speaker.Extra == nil {
				speaker.Extra = make(map[string]any)
			}
			speaker.Extra[key] = value
		}
	}
	return speaker
}

// mergeSponsor merges sponsor overrides. When no sponsor was extracted but
// the override provides fields, a sponsor is materialized from the override
// alone, so organizers can hand-add a sponsor missing from the CMS.
func mergeSponsor(sponsor *meetup.Sponsor, fields map[string]any) *meetup.Sponsor {
	if len(fields) == 0 {
		return sponsor
	}

	var merged meetup.Sponsor
	if sponsor != nil {
		merged = *sponsor
	}
	for key, value := range fields {
		switch key {
		case "name":
			if s, ok := stringValue("sponsor", key, value); ok {
				merged.Name = s
			}
		case "logo":
			if s, ok := stringValue("sponsor", key, value); ok {
				merged.Logo = &s
			}
		default:
			logUnknownKey("sponsor", key)
		}
	}
	return &merged
}

// stringValue asserts an override value for a fixed string field. Non-string
// values are logged and skipped rather than coerced.
func stringValue(section, key string, value any) (string, bool) {
	s, ok := value.(string)
	if !ok {
		logUnusableValue(section, key, value)
	}
	return s, ok
}

func logUnusableValue(section, key string, value any) {
	logging.Warn().
		Str("section", section).
		Str("key", key).
		Interface("value", value).
		Msg("Override value has the wrong type, keeping derived value")
}

func logUnknownKey(section, key string) {
	logging.Debug().
		Str("section", section).
		Str("key", key).
		Msg("Ignoring unknown override key")
}
