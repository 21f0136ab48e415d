package meetup

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"sort"

	"github.com/greenroomhq/greenroom/pkg/constants"
)

// Speaker is one extracted speaker entry. Name is required and doubles as
// the override merge key. The remaining fields stay nil until the remote
// source or an override provides a value; nil marshals as JSON null so the
// deck can distinguish "unknown" from "empty".
//
// Extra carries the deck-configured extra fields (and any other keys a user
// adds to a speaker override). Its entries are emitted after the fixed
// fields, in sorted key order, as part of the same JSON object.
type Speaker struct {
	Name         string         `json:"name"`
	TalkTitle    string         `json:"talkTitle"`
	GitHub       *string        `json:"github"`
	GitHubAvatar *string        `json:"githubAvatar"`
	Company      *string        `json:"company"`
	JobTitle     *string        `json:"jobTitle"`
	Bio          *string        `json:"bio"`
	Extra        map[string]any `json:"-"`
}

// fixedSpeakerKeys are the JSON keys handled by the struct fields above, in
// emission order.
var fixedSpeakerKeys = []string{"name", "talkTitle", "github", "githubAvatar", "company", "jobTitle", "bio"}

// SpeakerFieldNames returns the JSON field names a Speaker always carries,
// in emission order. Override keys outside this set end up in Extra.
func SpeakerFieldNames() []string {
	return slices.Clone(fixedSpeakerKeys)
}

// AvatarURL derives the GitHub avatar image URL for a username.
func AvatarURL(username string) string {
	return fmt.Sprintf(constants.GitHubAvatarURLFormat, username)
}

// MarshalJSON emits the fixed fields in a stable order followed by the Extra
// entries in sorted key order, all within one flat object.
func (s Speaker) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	writeField := func(key string, value any) error {
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}
		keyJSON, err := json.Marshal(key)
		if err != nil {
			return err
		}
		valueJSON, err := json.Marshal(value)
		if err != nil {
			return err
		}
		buf.Write(keyJSON)
		buf.WriteByte(':')
		buf.Write(valueJSON)
		return nil
	}

	fixed := []struct {
		key   string
		value any
	}{
		{"name", s.Name},
		{"talkTitle", s.TalkTitle},
		{"github", s.GitHub},
		{"githubAvatar", s.GitHubAvatar},
		{"company", s.Company},
		{"jobTitle", s.JobTitle},
		{"bio", s.Bio},
	}
	for _, f := range fixed {
		if err := writeField(f.key, f.value); err != nil {
			return nil, err
		}
	}

	extraKeys := make([]string, 0, len(s.Extra))
	for k := range s.Extra {
		extraKeys = append(extraKeys, k)
	}
	sort.Strings(extraKeys)
	for _, k := range extraKeys {
		if err := writeField(k, s.Extra[k]); err != nil {
			return nil, err
		}
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON fills the fixed fields and collects every remaining key into
// Extra, so a round trip through JSON loses nothing.
func (s *Speaker) UnmarshalJSON(data []byte) error {
	type alias Speaker
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for _, k := range fixedSpeakerKeys {
		delete(raw, k)
	}
	if len(raw) > 0 {
		a.Extra = raw
	}

	*s = Speaker(a)
	return nil
}
