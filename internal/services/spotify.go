// Spotify API response records
//
// Only the members the export reads are declared. Nested objects are pointers because the API omits or nulls them
// (local files, removed tracks, collaborative playlists).
// See https://developer.spotify.com/documentation/web-api/reference/
package services

// User represents the authenticated user's profile.
type User struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

// RawFollowers represents the followers object of an artist.
type RawFollowers struct {
	Total int `json:"total"`
}

// RawArtist represents a Spotify artist, either followed or credited on a track.
type RawArtist struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	URI       string        `json:"uri"`
	Followers *RawFollowers `json:"followers"`
}

// RawAlbum represents the album a track belongs to.
type RawAlbum struct {
	Name string `json:"name"`
	URI  string `json:"uri"`
}

// RawTrack represents a Spotify track.
type RawTrack struct {
	ID      string      `json:"id"`
	Name    string      `json:"name"`
	URI     string      `json:"uri"`
	Album   *RawAlbum   `json:"album"`
	Artists []RawArtist `json:"artists"`
}

// RawSavedTrack wraps a track in the user's library or in a playlist.
type RawSavedTrack struct {
	AddedAt string    `json:"added_at"`
	Track   *RawTrack `json:"track"`
}

// RawPlaylist represents a simplified playlist object from the playlists listing.
type RawPlaylist struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	URI    string `json:"uri"`
	Public *bool  `json:"public"`
}
