package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/spotify-backup/internal/models"
	"github.com/desertthunder/spotify-backup/internal/services"
	"github.com/desertthunder/spotify-backup/internal/shared"
)

const (
	savedTracksPath    = "me/tracks?limit=50"
	followedArtistPath = "me/following?type=artist&limit=50"
	playlistsPath      = "users/%s/playlists?limit=50"
	playlistTracksPath = "users/%s/playlists/%s/tracks?limit=100"

	followedArtistKey = "artists"
)

// APIClient defines the paginated read access the exporter needs.
// This abstraction allows for easier testing and decoupling from concrete implementation.
type APIClient interface {
	GetAll(ctx context.Context, path, key string) ([]json.RawMessage, error)
	Identity(ctx context.Context) (*services.User, error)
}

// Exporter builds export records from an [APIClient].
type Exporter struct {
	api    APIClient
	logger *log.Logger
}

// NewExporter creates a new Exporter. The logger defaults to [shared.NewLogger].
func NewExporter(api APIClient, logger *log.Logger) *Exporter {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Exporter{api: api, logger: logger}
}

// Tracks returns the user's saved tracks in API order.
func (e *Exporter) Tracks(ctx context.Context) ([]models.Track, error) {
	items, err := e.api.GetAll(ctx, savedTracksPath, "")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch saved tracks: %w", err)
	}

	return e.tracks(items, "saved tracks")
}

// Artists returns the followed artists sorted by name.
func (e *Exporter) Artists(ctx context.Context) ([]models.Artist, error) {
	items, err := e.api.GetAll(ctx, followedArtistPath, followedArtistKey)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch followed artists: %w", err)
	}

	raw, err := services.DecodeItems[services.RawArtist](items)
	if err != nil {
		return nil, fmt.Errorf("failed to decode followed artists: %w", err)
	}

	artists := make([]models.Artist, 0, len(raw))
	for _, a := range raw {
		artist := models.Artist{Name: a.Name, URI: a.URI}
		if a.Followers != nil {
			artist.Followers = a.Followers.Total
		}
		artists = append(artists, artist)
	}

	sort.SliceStable(artists, func(i, j int) bool {
		return artists[i].Name < artists[j].Name
	})

	return artists, nil
}

// Playlists returns the user's playlists with their tracks, sorted by name.
func (e *Exporter) Playlists(ctx context.Context) ([]models.Playlist, error) {
	user, err := e.api.Identity(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user profile: %w", err)
	}
	if user == nil || user.ID == "" {
		e.logger.Warn("user profile unavailable, skipping playlists")
		return []models.Playlist{}, nil
	}

	items, err := e.api.GetAll(ctx, fmt.Sprintf(playlistsPath, url.PathEscape(user.ID)), "")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch playlists: %w", err)
	}

	raw, err := services.DecodeItems[services.RawPlaylist](items)
	if err != nil {
		return nil, fmt.Errorf("failed to decode playlists: %w", err)
	}

	playlists := make([]models.Playlist, 0, len(raw))
	for _, p := range raw {
		tracks, err := e.PlaylistTracks(ctx, p.ID)
		if err != nil {
			return nil, err
		}

		playlist := models.Playlist{Name: p.Name, URI: p.URI, Tracks: tracks}
		if p.Public != nil {
			playlist.Public = *p.Public
		}
		playlists = append(playlists, playlist)
	}

	sort.SliceStable(playlists, func(i, j int) bool {
		return playlists[i].Name < playlists[j].Name
	})

	return playlists, nil
}

// PlaylistTracks returns every track of one of the user's playlists. The result is never nil.
func (e *Exporter) PlaylistTracks(ctx context.Context, playlistID string) ([]models.Track, error) {
	user, err := e.api.Identity(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user profile: %w", err)
	}
	if user == nil {
		user = &services.User{}
	}

	path := fmt.Sprintf(playlistTracksPath, url.PathEscape(user.ID), url.PathEscape(playlistID))
	items, err := e.api.GetAll(ctx, path, "")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tracks of playlist %s: %w", playlistID, err)
	}

	return e.tracks(items, "playlist "+playlistID)
}

// tracks maps saved-track or playlist-track items, skipping entries without a track.
func (e *Exporter) tracks(items []json.RawMessage, source string) ([]models.Track, error) {
	saved, err := services.DecodeItems[services.RawSavedTrack](items)
	if err != nil {
		return nil, fmt.Errorf("failed to decode tracks of %s: %w", source, err)
	}

	tracks := make([]models.Track, 0, len(saved))
	for i, item := range saved {
		if item.Track == nil {
			e.logger.Warn("skipping entry without track", "source", source, "position", i)
			continue
		}
		tracks = append(tracks, toTrack(item.Track))
	}

	return tracks, nil
}

func toTrack(t *services.RawTrack) models.Track {
	track := models.Track{
		Name:    t.Name,
		URI:     t.URI,
		Artists: make([]models.ArtistRef, 0, len(t.Artists)),
	}

	if t.Album != nil {
		track.Album = models.Album{Name: t.Album.Name, URI: t.Album.URI}
	}

	for _, a := range t.Artists {
		track.Artists = append(track.Artists, models.ArtistRef{Name: a.Name, URI: a.URI})
	}

	return track
}
