// Package pipeline wires the deck config reader, the content API fetcher,
// the override store, and the artifact writer into one run: read config,
// fetch collections, extract the target meetup, scaffold and load
// overrides, merge, write.
package pipeline

import (
	"context"

	"github.com/agentstation/utc"

	"github.com/greenroomhq/greenroom/internal/deckconfig"
	"github.com/greenroomhq/greenroom/internal/directus"
	"github.com/greenroomhq/greenroom/internal/merge"
	"github.com/greenroomhq/greenroom/internal/overrides"
	"github.com/greenroomhq/greenroom/internal/slides"
	"github.com/greenroomhq/greenroom/internal/transport"
	"github.com/greenroomhq/greenroom/pkg/logging"
	"github.com/greenroomhq/greenroom/pkg/meetup"
)

// ConfigReader loads the deck configuration the pipeline targets.
type ConfigReader interface {
	Read(path string) (*deckconfig.Deck, error)
}

// Fetcher retrieves the remote collections the meetup is extracted from.
type Fetcher interface {
	FetchCollections(ctx context.Context) (*directus.Collections, error)
	BaseURL() string
}

// Writer persists the merged result as the deck's input files.
type Writer interface {
	WriteAll(ctx context.Context, data meetup.Data) ([]string, error)
}

// fileConfigReader reads the deck config from the local file system.
type fileConfigReader struct{}

func (fileConfigReader) Read(path string) (*deckconfig.Deck, error) {
	return deckconfig.Read(path)
}

// Pipeline executes the fetch, extract, merge, write flow with explicit
// injected paths. It never consults the working directory implicitly.
type Pipeline struct {
	cfg *config
}

// New assembles a Pipeline. Unset components default to the production
// implementations: file-based config reader, HTTP fetcher against the
// configured base URL, OS override store, and the slides writer.
func New(opts ...Option) (*Pipeline, error) {
	cfg := defaults()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if cfg.reader == nil {
		cfg.reader = fileConfigReader{}
	}
	if cfg.fetcher == nil {
		cfg.fetcher = directus.NewClient(cfg.baseURL, transport.New(&transport.BearerAuth{}, cfg.apiToken, cfg.timeout))
	}
	if cfg.store == nil {
		cfg.store = &overrides.OSStore{}
	}
	if cfg.writer == nil {
		cfg.writer = slides.NewWriter(cfg.dataPath, cfg.slidesDir)
	}

	return &Pipeline{cfg: cfg}, nil
}

// Run executes the full flow and returns a summary of what was published.
// On a dry run it stops after the merge and writes nothing.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	started := utc.Now()

	deck, err := p.cfg.reader.Read(p.cfg.configPath)
	if err != nil {
		return nil, err
	}
	meetupID, err := deck.NumericID()
	if err != nil {
		return nil, err
	}

	ctx = logging.WithMeetup(ctx, meetupID)
	log := logging.Ctx(ctx)
	log.Info().
		Str("config", p.cfg.configPath).
		Strs("extra_fields", deck.SpeakerExtraFields).
		Msg("Read deck configuration")

	collections, err := p.cfg.fetcher.FetchCollections(ctx)
	if err != nil {
		return nil, err
	}

	data, err := directus.Extract(collections.Meetups, meetupID, p.cfg.fetcher.BaseURL())
	if err != nil {
		return nil, err
	}
	log.Info().
		Int("speakers", len(data.Speakers)).
		Bool("sponsor", data.Sponsor != nil).
		Msg("Extracted meetup data")

	names := make([]string, len(data.Speakers))
	for i, speaker := range data.Speakers {
		names[i] = speaker.Name
	}
	created, err := overrides.Scaffold(ctx, p.cfg.store, p.cfg.overridesPath, names, deck.SpeakerExtraFields)
	if err != nil {
		return nil, err
	}
	doc, err := overrides.Load(ctx, p.cfg.store, p.cfg.overridesPath)
	if err != nil {
		return nil, err
	}

	merged := merge.Apply(*data, doc)

	result := &Result{
		MeetupID:        meetupID,
		Title:           merged.Meetup.Title,
		Speakers:        len(merged.Speakers),
		Overridden:      doc != nil,
		ScaffoldCreated: created,
		DryRun:          p.cfg.dryRun,
		StartedAt:       started,
		Data:            &merged,
	}
	if merged.Sponsor != nil {
		result.SponsorName = merged.Sponsor.Name
	}

	if p.cfg.dryRun {
		result.CompletedAt = utc.Now()
		log.Info().Msg("Dry run, skipping artifact writes")
		return result, nil
	}

	outputs, err := p.cfg.writer.WriteAll(ctx, merged)
	if err != nil {
		return nil, err
	}
	result.Outputs = outputs
	result.CompletedAt = utc.Now()

	log.Info().
		Int("outputs", len(outputs)).
		Dur("elapsed", result.Elapsed()).
		Msg("Pipeline complete")
	return result, nil
}
