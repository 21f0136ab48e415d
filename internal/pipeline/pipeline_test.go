package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenroomhq/greenroom/internal/deckconfig"
	"github.com/greenroomhq/greenroom/internal/directus"
	"github.com/greenroomhq/greenroom/internal/overrides"
	"github.com/greenroomhq/greenroom/internal/utils/ptr"
	"github.com/greenroomhq/greenroom/pkg/errors"
	"github.com/greenroomhq/greenroom/pkg/meetup"
)

const meetupsPayload = `{
  "data": [
    {
      "id": 42,
      "title": "Vue Meetup #42",
      "Date": "2025-11-20",
      "Venue": "Basecamp",
      "Location": "Düsseldorf",
      "Time": "18:30",
      "sessions": [
        {"Session_id": {"title": "Composable Pipelines", "speakers": {"name": "Jane", "github": "janedev"}}},
        {"Session_id": {"title": "No speaker yet", "speakers": null}}
      ],
      "sponsors": [
        {"Sponsor_id": {"Name": "Acme", "Logo": {"filename_disk": "acme.svg"}}}
      ]
    }
  ]
}`

func collectionsServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/items/meetups":
			_, _ = w.Write([]byte(meetupsPayload))
		case "/items/speakers":
			_, _ = w.Write([]byte(`{"data": [{"name": "Jane"}]}`))
		case "/items/sponsors":
			_, _ = w.Write([]byte(`{"data": [{"Name": "Acme"}]}`))
		default:
			http.NotFound(w, r)
		}
	}))
}

func writeDeckConfig(t *testing.T, dir, id string) string {
	t.Helper()
	path := filepath.Join(dir, "meetup.config.ts")
	content := fmt.Sprintf(`export default defineMeetup({
  id: '%s',
  extraFields: ['pronouns'],
})
`, id)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newTestPipeline(t *testing.T, serverURL, configPath string, store overrides.Store, extra ...Option) (*Pipeline, string, string) {
	t.Helper()
	dir := t.TempDir()
	dataPath := filepath.Join(dir, "meetup-data.json")
	slidesDir := filepath.Join(dir, "slides")

	opts := []Option{
		WithConfigPath(configPath),
		WithDataPath(dataPath),
		WithSlidesDir(slidesDir),
		WithOverridesPath("meetup-data.override.json"),
		WithBaseURL(serverURL),
		WithTimeout(5 * time.Second),
		WithStore(store),
	}
	opts = append(opts, extra...)

	p, err := New(opts...)
	require.NoError(t, err)
	return p, dataPath, slidesDir
}

func TestPipelineEndToEnd(t *testing.T) {
	server := collectionsServer(t)
	defer server.Close()

	dir := t.TempDir()
	configPath := writeDeckConfig(t, dir, "42")
	store := overrides.NewMemStore()
	p, dataPath, slidesDir := newTestPipeline(t, server.URL, configPath, store)

	result, err := p.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 42, result.MeetupID)
	assert.Equal(t, "Vue Meetup #42", result.Title)
	assert.Equal(t, 1, result.Speakers)
	assert.Equal(t, "Acme", result.SponsorName)
	assert.True(t, result.ScaffoldCreated)
	assert.True(t, result.Overridden, "a freshly scaffolded template still parses")
	assert.False(t, result.CompletedAt.IsZero())
	assert.GreaterOrEqual(t, result.Elapsed(), time.Duration(0))
	assert.Contains(t, result.Summary(), "meetup 42")

	require.Equal(t, []string{
		dataPath,
		filepath.Join(slidesDir, "speakers", "1.md"),
		filepath.Join(slidesDir, "speakers.md"),
		filepath.Join(slidesDir, "lineup.md"),
	}, result.Outputs)

	raw, err := os.ReadFile(dataPath)
	require.NoError(t, err)
	var data meetup.Data
	require.NoError(t, json.Unmarshal(raw, &data))

	require.Len(t, data.Speakers, 1, "the session without a speaker is filtered out")
	jane := data.Speakers[0]
	assert.Equal(t, "Jane", jane.Name)
	assert.Equal(t, "Composable Pipelines", jane.TalkTitle)
	require.NotNil(t, jane.GitHubAvatar)
	assert.Equal(t, "https://github.com/janedev.png", *jane.GitHubAvatar)

	require.NotNil(t, data.Sponsor)
	assert.Equal(t, "Acme", data.Sponsor.Name)
	require.NotNil(t, data.Sponsor.Logo)
	assert.Equal(t, server.URL+"/assets/acme.svg", *data.Sponsor.Logo)

	scaffold, ok := store.Files["meetup-data.override.json"]
	require.True(t, ok, "first run should scaffold the override template")
	var doc overrides.Document
	require.NoError(t, json.Unmarshal(scaffold, &doc))
	require.Contains(t, doc.Speakers, "Jane")
	assert.Contains(t, doc.Speakers["Jane"], "pronouns")
}

func TestPipelineAppliesOverrides(t *testing.T) {
	server := collectionsServer(t)
	defer server.Close()

	dir := t.TempDir()
	configPath := writeDeckConfig(t, dir, "42")
	store := overrides.NewMemStore()
	store.Files["meetup-data.override.json"] = []byte(`{
		"speakers": {
			"Jane": {"company": "Acme GmbH", "jobtitle": "Lead Engineer", "pronouns": "she/her"}
		}
	}`)
	p, dataPath, _ := newTestPipeline(t, server.URL, configPath, store)

	result, err := p.Run(context.Background())
	require.NoError(t, err)
	assert.False(t, result.ScaffoldCreated, "existing override file must not be replaced")
	assert.True(t, result.Overridden)

	raw, err := os.ReadFile(dataPath)
	require.NoError(t, err)
	var data meetup.Data
	require.NoError(t, json.Unmarshal(raw, &data))

	jane := data.Speakers[0]
	require.NotNil(t, jane.Company)
	assert.Equal(t, "Acme GmbH", *jane.Company)
	require.NotNil(t, jane.JobTitle)
	assert.Equal(t, "Lead Engineer", *jane.JobTitle, "legacy jobtitle key merges into jobTitle")
	assert.Equal(t, "she/her", jane.Extra["pronouns"])
}

func TestPipelineMalformedOverridesContinues(t *testing.T) {
	server := collectionsServer(t)
	defer server.Close()

	dir := t.TempDir()
	configPath := writeDeckConfig(t, dir, "42")
	store := overrides.NewMemStore()
	store.Files["meetup-data.override.json"] = []byte(`{"speakers": {"Jane": {"company": "Acme",}}}`)
	p, dataPath, _ := newTestPipeline(t, server.URL, configPath, store)

	result, err := p.Run(context.Background())
	require.NoError(t, err, "a malformed override file must not abort the run")
	assert.False(t, result.Overridden)

	raw, err := os.ReadFile(dataPath)
	require.NoError(t, err)
	var data meetup.Data
	require.NoError(t, json.Unmarshal(raw, &data))
	assert.Nil(t, data.Speakers[0].Company, "unparseable overrides leave derived data unmerged")
}

func TestPipelineDryRun(t *testing.T) {
	server := collectionsServer(t)
	defer server.Close()

	dir := t.TempDir()
	configPath := writeDeckConfig(t, dir, "42")
	store := overrides.NewMemStore()
	p, dataPath, slidesDir := newTestPipeline(t, server.URL, configPath, store, WithDryRun(true))

	result, err := p.Run(context.Background())
	require.NoError(t, err)

	assert.True(t, result.DryRun)
	assert.Empty(t, result.Outputs)
	require.NotNil(t, result.Data)
	assert.Len(t, result.Data.Speakers, 1)
	assert.Contains(t, result.Summary(), "(dry run)")

	_, err = os.Stat(dataPath)
	assert.True(t, os.IsNotExist(err), "dry run must not write the artifact")
	_, err = os.Stat(slidesDir)
	assert.True(t, os.IsNotExist(err), "dry run must not create the slides dir")

	_, scaffolded := store.Files["meetup-data.override.json"]
	assert.True(t, scaffolded, "the override template is still scaffolded on dry runs")
}

func TestPipelineMeetupNotFound(t *testing.T) {
	server := collectionsServer(t)
	defer server.Close()

	dir := t.TempDir()
	configPath := writeDeckConfig(t, dir, "999")
	store := overrides.NewMemStore()
	p, _, _ := newTestPipeline(t, server.URL, configPath, store)

	_, err := p.Run(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestPipelineConfigMissing(t *testing.T) {
	server := collectionsServer(t)
	defer server.Close()

	store := overrides.NewMemStore()
	p, _, _ := newTestPipeline(t, server.URL, filepath.Join(t.TempDir(), "absent.config.ts"), store)

	_, err := p.Run(context.Background())
	require.Error(t, err)
	configErr := &errors.ConfigError{}
	assert.ErrorAs(t, err, &configErr)
}

func TestPipelineFetchFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	dir := t.TempDir()
	configPath := writeDeckConfig(t, dir, "42")
	store := overrides.NewMemStore()
	p, _, _ := newTestPipeline(t, server.URL, configPath, store)

	_, err := p.Run(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsFetchFailed(err))
}

func TestNewValidatesOptions(t *testing.T) {
	_, err := New(WithTimeout(-1 * time.Second))
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))

	_, err = New(WithConfigPath(""))
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

type stubReader struct {
	deck *deckconfig.Deck
}

func (s stubReader) Read(string) (*deckconfig.Deck, error) {
	return s.deck, nil
}

type stubFetcher struct {
	collections *directus.Collections
}

func (s *stubFetcher) FetchCollections(context.Context) (*directus.Collections, error) {
	return s.collections, nil
}

func (s *stubFetcher) BaseURL() string {
	return "https://cms.example.test"
}

type recordingWriter struct {
	written *meetup.Data
}

func (w *recordingWriter) WriteAll(_ context.Context, data meetup.Data) ([]string, error) {
	w.written = &data
	return []string{"meetup-data.json"}, nil
}

func TestPipelineWithInjectedComponents(t *testing.T) {
	fetcher := &stubFetcher{
		collections: &directus.Collections{
			Meetups: []directus.Meetup{
				{
					ID:    7,
					Title: "Injected Meetup",
					Sessions: []directus.SessionRef{
						{SessionID: &directus.Session{
							Title:    "Stub Talk",
							Speakers: &directus.Speaker{Name: "Sam", GitHub: ptr.String("samlee")},
						}},
					},
				},
			},
		},
	}
	writer := &recordingWriter{}
	store := overrides.NewMemStore()

	p, err := New(
		WithConfigReader(stubReader{deck: &deckconfig.Deck{MeetupID: "7"}}),
		WithFetcher(fetcher),
		WithStore(store),
		WithWriter(writer),
	)
	require.NoError(t, err)

	result, err := p.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 7, result.MeetupID)
	assert.Equal(t, "Injected Meetup", result.Title)
	assert.Equal(t, []string{"meetup-data.json"}, result.Outputs)
	require.NotNil(t, writer.written)
	require.Len(t, writer.written.Speakers, 1)
	assert.Equal(t, "Sam", writer.written.Speakers[0].Name)
}
