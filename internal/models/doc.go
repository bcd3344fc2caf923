// Package models defines the export schema written by spotify-backup.
//
// Every record is a flattened, whitelisted subset of the Spotify Web API objects:
//   - [Track] : name, uri, album and credited artists
//   - [Artist] : a followed artist with its follower count
//   - [Playlist] : playlist metadata with its complete track listing
//
// Records carry no omitempty tags and slices are never nil, so every field is always present in the written JSON.
package models
