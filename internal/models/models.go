// package models defines the export records for the library backup
package models

// Kind names one of the exported artifacts.
type Kind string

const (
	KindTracks    Kind = "tracks"
	KindArtists   Kind = "artists"
	KindPlaylists Kind = "playlists"
)

// Kinds lists the artifacts in the order they are written.
var Kinds = []Kind{KindTracks, KindArtists, KindPlaylists}

// Album is the album reference embedded in a [Track].
type Album struct {
	Name string `json:"name"`
	URI  string `json:"uri"`
}

// ArtistRef is a credited artist embedded in a [Track].
type ArtistRef struct {
	Name string `json:"name"`
	URI  string `json:"uri"`
}

// Track represents a saved or playlist track.
type Track struct {
	Name    string      `json:"name"`
	URI     string      `json:"uri"`
	Album   Album       `json:"album"`
	Artists []ArtistRef `json:"artists"`
}

// Artist represents a followed artist.
type Artist struct {
	Name      string `json:"name"`
	URI       string `json:"uri"`
	Followers int    `json:"followers"`
}

// Playlist represents a playlist with all of its tracks.
type Playlist struct {
	Name   string  `json:"name"`
	URI    string  `json:"uri"`
	Public bool    `json:"public"`
	Tracks []Track `json:"tracks"`
}
