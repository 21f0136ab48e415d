package slides

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	md "github.com/nao1215/markdown"

	"github.com/greenroomhq/greenroom/pkg/constants"
	"github.com/greenroomhq/greenroom/pkg/errors"
	"github.com/greenroomhq/greenroom/pkg/logging"
	"github.com/greenroomhq/greenroom/pkg/meetup"
)

// WriteLineup writes a human-readable lineup summary next to the generated
// fragments. Organizers paste it into announcements; the deck itself does
// not consume it.
func (w *Writer) WriteLineup(ctx context.Context, data meetup.Data) (string, error) {
	content, err := lineupMarkdown(data)
	if err != nil {
		return "", fmt.Errorf("rendering lineup: %w", err)
	}

	if err := os.MkdirAll(w.SlidesDir, constants.DirPermissions); err != nil {
		return "", errors.WrapIO("mkdir", w.SlidesDir, err)
	}

	path := filepath.Join(w.SlidesDir, lineupFileName)
	if err := os.WriteFile(path, content, constants.FilePermissions); err != nil {
		return "", errors.WrapIO("write", path, err)
	}

	logging.Ctx(ctx).Debug().
		Str("path", path).
		Msg("Wrote lineup summary")
	return path, nil
}

func lineupMarkdown(data meetup.Data) ([]byte, error) {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(data.Meetup.Title)
	if details := eventDetails(data.Meetup); details != "" {
		doc.PlainText(details).LF()
	}

	if len(data.Speakers) > 0 {
		rows := make([][]string, len(data.Speakers))
		for i, speaker := range data.Speakers {
			rows[i] = []string{
				speaker.Name,
				speaker.TalkTitle,
				githubCell(speaker.GitHub),
				stringOrEmpty(speaker.Company),
			}
		}
		doc.H2("Speakers").Table(md.TableSet{
			Header: []string{"Speaker", "Talk", "GitHub", "Company"},
			Rows:   rows,
		})
	}

	if data.Sponsor != nil {
		doc.H2("Sponsor")
		if data.Sponsor.Logo != nil {
			doc.PlainText(md.Image(data.Sponsor.Name, *data.Sponsor.Logo)).LF()
		} else {
			doc.PlainText(data.Sponsor.Name).LF()
		}
	}

	if err := doc.Build(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// eventDetails joins the non-empty schedule fields into one line.
func eventDetails(m meetup.Meetup) string {
	parts := make([]string, 0, 4)
	for _, part := range []string{m.Date, m.Time, m.Venue, m.Location} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, ", ")
}

func githubCell(username *string) string {
	if username == nil {
		return ""
	}
	return md.Link("@"+*username, fmt.Sprintf(constants.GitHubProfileURLFormat, *username))
}
