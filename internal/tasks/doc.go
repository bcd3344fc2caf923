// Package tasks builds the library export from the Spotify Web API.
//
// # Export Builder
//
// [Exporter] turns paginated API listings into the flat records of the models package:
//
//  1. [Exporter.Tracks] : saved tracks, in API order (most recently saved first)
//  2. [Exporter.Artists] : followed artists, sorted by name
//  3. [Exporter.Playlists] : the user's playlists with every track, sorted by name
//
// Nested API objects are optional everywhere. A missing album exports as empty name/uri, missing artists as an
// empty list, and an entry without a track (local files, removed tracks) is skipped with a warning.
//
// # Backup
//
// [Exporter.Backup] writes the three artifacts to spotify-<timestamp>-<kind>.json in the output directory, one at
// a time. Files written before a failure are left in place.
//
// # Implementation
//
// [Exporter] depends on [APIClient], implemented by services.Session. Requests are strictly sequential.
package tasks
