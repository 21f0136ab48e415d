package directus

import (
	"fmt"
	"strconv"

	"github.com/greenroomhq/greenroom/pkg/constants"
	"github.com/greenroomhq/greenroom/pkg/errors"
	"github.com/greenroomhq/greenroom/pkg/meetup"
)

// Extract locates the meetup with the given id in the raw collection and
// derives the normalized data shape from it. It performs no I/O.
//
// Speakers come from the meetup's sessions in their original order; a
// session without a populated speaker object contributes nothing. The
// GitHub avatar URL is derived from the username, and both stay null when
// the username is missing or empty.
//
// Only the first sponsor reference is materialized. An empty sponsor list,
// or a reference without a nested sponsor object, yields a nil sponsor.
// assetBase is the API host used to resolve sponsor logo filenames into
// public URLs.
func Extract(meetups []Meetup, targetID int, assetBase string) (*meetup.Data, error) {
	var found *Meetup
	for i := range meetups {
		if meetups[i].ID == targetID {
			found = &meetups[i]
			break
		}
	}
	if found == nil {
		return nil, errors.NewNotFoundError("meetup", strconv.Itoa(targetID))
	}

	data := &meetup.Data{
		Meetup: meetup.Meetup{
			ID:       found.ID,
			Title:    found.Title,
			Date:     deref(found.Date),
			Venue:    deref(found.Venue),
			Location: deref(found.Location),
			Time:     deref(found.Time),
		},
		Speakers: make([]meetup.Speaker, 0, len(found.Sessions)),
	}

	for _, ref := range found.Sessions {
		session := ref.SessionID
		if session == nil || session.Speakers == nil {
			continue
		}

		speaker := meetup.Speaker{
			Name:      session.Speakers.Name,
			TalkTitle: session.Title,
		}
		if username := session.Speakers.GitHub; username != nil && *username != "" {
			gh := *username
			avatar := meetup.AvatarURL(gh)
			speaker.GitHub = &gh
			speaker.GitHubAvatar = &avatar
		}
		data.Speakers = append(data.Speakers, speaker)
	}

	data.Sponsor = extractSponsor(found.Sponsors, assetBase)

	return data, nil
}

// extractSponsor materializes at most one sponsor from the reference list.
func extractSponsor(refs []SponsorRef, assetBase string) *meetup.Sponsor {
	if len(refs) == 0 || refs[0].SponsorID == nil {
		return nil
	}

	raw := refs[0].SponsorID
	sponsor := &meetup.Sponsor{Name: raw.Name}
	if raw.Logo != nil && raw.Logo.FilenameDisk != "" {
		logo := fmt.Sprintf(constants.AssetURLFormat, assetBase, raw.Logo.FilenameDisk)
		sponsor.Logo = &logo
	}
	return sponsor
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
