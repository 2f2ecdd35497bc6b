package library

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/cockroachdb/errors"

	"github.com/kemblesong/music-player-challenge/internal/catalog"
)

// Client fetches the canned library. Every fetch is one-shot: a
// failure is terminal and surfaced to the caller, which may trigger a
// manual retry. No automatic retry, backoff or timeout is applied.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a Client for the library service at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{baseURL: baseURL, http: &http.Client{}}
}

// FetchTracks retrieves the full catalog.
func (c *Client) FetchTracks(ctx context.Context) ([]catalog.Track, error) {
	var tracks []catalog.Track
	if err := c.getJSON(ctx, "/api/tracks", &tracks); err != nil {
		return nil, errors.Wrap(err, "fetching tracks")
	}
	return tracks, nil
}

// FetchPlaylists retrieves all playlists.
func (c *Client) FetchPlaylists(ctx context.Context) ([]catalog.Playlist, error) {
	var playlists []catalog.Playlist
	if err := c.getJSON(ctx, "/api/playlists", &playlists); err != nil {
		return nil, errors.Wrap(err, "fetching playlists")
	}
	return playlists, nil
}

// FetchPlaylist retrieves a single playlist by ID.
func (c *Client) FetchPlaylist(ctx context.Context, id string) (*catalog.Playlist, error) {
	var playlist catalog.Playlist
	if err := c.getJSON(ctx, "/api/playlists/"+id, &playlist); err != nil {
		return nil, errors.Wrapf(err, "fetching playlist %s", id)
	}
	return &playlist, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return errors.Wrap(err, "building request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.Newf("library returned %s", resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "decoding response")
	}
	return nil
}
