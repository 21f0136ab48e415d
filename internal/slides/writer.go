// Package slides persists the merged meetup data as the deck's inputs: the
// meetup-data.json artifact, one Slidev fragment per speaker, a composite
// file that pulls the fragments into the deck, and a lineup summary. Every
// file is rebuilt from scratch on each run; nothing on disk is read back.
package slides

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/greenroomhq/greenroom/pkg/constants"
	"github.com/greenroomhq/greenroom/pkg/errors"
	"github.com/greenroomhq/greenroom/pkg/logging"
	"github.com/greenroomhq/greenroom/pkg/meetup"
)

const (
	speakersDirName   = "speakers"
	compositeFileName = "speakers.md"
	lineupFileName    = "lineup.md"
)

// Writer persists pipeline output to explicit paths. Both paths are
// injected; the writer never consults the working directory on its own.
type Writer struct {
	// DataPath is the meetup-data.json artifact location.
	DataPath string
	// SlidesDir is the directory the slide fragments are generated into.
	SlidesDir string
}

// NewWriter returns a Writer for the given artifact path and slides
// directory, falling back to the standard deck layout for empty values.
func NewWriter(dataPath, slidesDir string) *Writer {
	if dataPath == "" {
		dataPath = constants.DefaultDataPath
	}
	if slidesDir == "" {
		slidesDir = constants.DefaultSlidesDir
	}
	return &Writer{DataPath: dataPath, SlidesDir: slidesDir}
}

// WriteAll writes every output file and returns the written paths in write
// order: the JSON artifact, the per-speaker fragments, the composite
// reference file, and the lineup summary.
func (w *Writer) WriteAll(ctx context.Context, data meetup.Data) ([]string, error) {
	outputs := make([]string, 0, len(data.Speakers)+3)

	dataPath, err := w.WriteData(ctx, data)
	if err != nil {
		return nil, err
	}
	outputs = append(outputs, dataPath)

	fragmentPaths, err := w.WriteSpeakerSlides(ctx, data.Speakers)
	if err != nil {
		return nil, err
	}
	outputs = append(outputs, fragmentPaths...)

	lineupPath, err := w.WriteLineup(ctx, data)
	if err != nil {
		return nil, err
	}
	outputs = append(outputs, lineupPath)

	return outputs, nil
}

// WriteData writes the pretty-printed meetup-data.json artifact, fully
// replacing any previous version.
func (w *Writer) WriteData(ctx context.Context, data meetup.Data) (string, error) {
	encoded, err := json.MarshalIndent(data, "", constants.JSONIndent)
	if err != nil {
		return "", fmt.Errorf("marshaling meetup data: %w", err)
	}
	encoded = append(encoded, '\n')

	if err := os.WriteFile(w.DataPath, encoded, constants.FilePermissions); err != nil {
		return "", errors.WrapIO("write", w.DataPath, err)
	}

	logging.Ctx(ctx).Debug().
		Str("path", w.DataPath).
		Int("bytes", len(encoded)).
		Msg("Wrote meetup data artifact")
	return w.DataPath, nil
}

// WriteSpeakerSlides writes one fragment per speaker, numbered from 1 in
// speaker order, plus the composite file that includes them all. The
// returned paths list the fragments first and the composite last.
func (w *Writer) WriteSpeakerSlides(ctx context.Context, speakers []meetup.Speaker) ([]string, error) {
	speakersDir := filepath.Join(w.SlidesDir, speakersDirName)
	if err := os.MkdirAll(speakersDir, constants.DirPermissions); err != nil {
		return nil, errors.WrapIO("mkdir", speakersDir, err)
	}

	paths := make([]string, 0, len(speakers)+1)
	for i, speaker := range speakers {
		content, err := speakerSlide(speaker)
		if err != nil {
			return nil, fmt.Errorf("rendering slide for %s: %w", speaker.Name, err)
		}

		path := filepath.Join(speakersDir, fmt.Sprintf("%d.md", i+1))
		if err := os.WriteFile(path, content, constants.FilePermissions); err != nil {
			return nil, errors.WrapIO("write", path, err)
		}
		paths = append(paths, path)
	}

	compositePath := filepath.Join(w.SlidesDir, compositeFileName)
	if err := os.WriteFile(compositePath, compositeSlide(len(speakers)), constants.FilePermissions); err != nil {
		return nil, errors.WrapIO("write", compositePath, err)
	}
	paths = append(paths, compositePath)

	logging.Ctx(ctx).Debug().
		Str("dir", speakersDir).
		Int("speakers", len(speakers)).
		Msg("Wrote speaker slide fragments")
	return paths, nil
}

// slideFrontmatter is the Slidev frontmatter of one speaker fragment. Field
// order here is emission order; empty optionals are omitted entirely.
type slideFrontmatter struct {
	Layout    string `yaml:"layout"`
	Image     string `yaml:"image,omitempty"`
	Name      string `yaml:"name"`
	TalkTitle string `yaml:"talkTitle,omitempty"`
	GitHub    string `yaml:"github,omitempty"`
	Company   string `yaml:"company,omitempty"`
	JobTitle  string `yaml:"jobTitle,omitempty"`
}

// speakerSlide renders one fragment: a fenced YAML frontmatter block using
// the deck's speaker layout.
func speakerSlide(speaker meetup.Speaker) ([]byte, error) {
	fm := slideFrontmatter{
		Layout:    "speaker",
		Image:     stringOrEmpty(speaker.GitHubAvatar),
		Name:      speaker.Name,
		TalkTitle: speaker.TalkTitle,
		GitHub:    stringOrEmpty(speaker.GitHub),
		Company:   stringOrEmpty(speaker.Company),
		JobTitle:  stringOrEmpty(speaker.JobTitle),
	}

	encoded, err := yaml.Marshal(fm)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString("---\n")
	buf.Write(encoded)
	buf.WriteString("---\n")
	return buf.Bytes(), nil
}

// compositeSlide renders the reference file that pulls each numbered
// fragment into the deck, one inclusion block per fragment.
func compositeSlide(count int) []byte {
	if count == 0 {
		return []byte{}
	}

	blocks := make([]string, count)
	for i := range blocks {
		blocks[i] = fmt.Sprintf("---\nsrc: ./%s/%d.md\nhide: false\n---", speakersDirName, i+1)
	}
	return []byte(strings.Join(blocks, "\n\n") + "\n")
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
