package directus

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync"

	"github.com/greenroomhq/greenroom/internal/transport"
	"github.com/greenroomhq/greenroom/pkg/constants"
	"github.com/greenroomhq/greenroom/pkg/errors"
	"github.com/greenroomhq/greenroom/pkg/logging"
)

// Collection query paths. The meetups query asks for the nested session and
// sponsor objects inline; without the explicit fields selection the API
// only returns foreign keys. limit=-1 disables the API's default page size.
const (
	meetupsQuery  = "/items/meetups?fields=*,sessions.Session_id.*,sessions.Session_id.speakers.*,sponsors.Sponsor_id.*,sponsors.Sponsor_id.Logo.*&limit=-1"
	speakersQuery = "/items/speakers?limit=-1"
	sponsorsQuery = "/items/sponsors?limit=-1"
)

// Client fetches collections from the content API.
type Client struct {
	baseURL string
	http    *transport.Client
}

// NewClient creates a content API client. An empty baseURL falls back to
// the default API host; a nil httpClient gets a default transport.
func NewClient(baseURL string, httpClient *transport.Client) *Client {
	if baseURL == "" {
		baseURL = constants.DefaultAPIBaseURL
	}
	if httpClient == nil {
		httpClient = transport.New(&transport.BearerAuth{}, "", 0)
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// BaseURL reports the API host the client is bound to. The asset URL
// template for sponsor logos is derived from it.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// FetchCollections retrieves the meetup, speaker, and sponsor collections
// concurrently. The first failure cancels the sibling requests and aborts
// the run: there are no retries and no partial results.
func (c *Client) FetchCollections(ctx context.Context) (*Collections, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg          sync.WaitGroup
		collections Collections
	)
	errChan := make(chan error, 3)

	fetch := func(name string, do func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := do(); err != nil {
				logging.Ctx(ctx).Debug().
					Err(err).
					Str("collection", name).
					Msg("Collection fetch failed")
				errChan <- err
				cancel()
			}
		}()
	}

	fetch("meetups", func() error {
		meetups, err := fetchItems[Meetup](ctx, c, meetupsQuery)
		if err != nil {
			return err
		}
		collections.Meetups = meetups
		return nil
	})
	fetch("speakers", func() error {
		speakers, err := fetchItems[json.RawMessage](ctx, c, speakersQuery)
		if err != nil {
			return err
		}
		collections.Speakers = speakers
		return nil
	})
	fetch("sponsors", func() error {
		sponsors, err := fetchItems[json.RawMessage](ctx, c, sponsorsQuery)
		if err != nil {
			return err
		}
		collections.Sponsors = sponsors
		return nil
	})

	wg.Wait()
	close(errChan)

	// The channel preserves send order, so the first entry is the failure
	// that triggered cancellation, not a sibling's cancel fallout.
	for err := range errChan {
		return nil, err
	}

	logging.Ctx(ctx).Debug().
		Int("meetups", len(collections.Meetups)).
		Int("speakers", len(collections.Speakers)).
		Int("sponsors", len(collections.Sponsors)).
		Msg("Fetched collections")

	return &collections, nil
}

// fetchItems retrieves one collection and decodes its data envelope.
func fetchItems[T any](ctx context.Context, c *Client, query string) ([]T, error) {
	url := c.baseURL + query

	resp, err := c.http.Get(ctx, url)
	if err != nil {
		return nil, &errors.FetchError{
			Endpoint: url,
			Message:  "request failed",
			Err:      err,
		}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, &errors.FetchError{
			Endpoint:   url,
			StatusCode: resp.StatusCode,
			Message:    resp.Status,
		}
	}

	var envelope struct {
		Data []T `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, errors.WrapParse("json", url, err)
	}
	return envelope.Data, nil
}
