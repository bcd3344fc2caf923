// Package services implements the Spotify Web API client used by backups.
//
// # Session
//
// A [Session] owns the base URL, the bearer token and an in-memory response cache for one run.
// Every request is a GET carrying "Authorization: Bearer <token>", set by an [oauth2.Transport] around the caller's transport.
//
// [Session.Get] memoizes successful responses by request path, so a path is fetched at most once.
// A non-2xx response is logged at error level and reads as an empty [Object]; it is never cached.
// Transport failures and undecodable bodies are returned as [shared.ErrAPIRequest].
//
// # Pagination
//
// [Session.GetAll] walks the cursor envelope ("items" plus an optional absolute "next" URL) and returns every item in order.
// Some endpoints nest the envelope under a key (followed artists use "artists").
// A cursor that was already visited ends the walk.
//
// # Payloads
//
// [Object] gives keyed access to a decoded JSON object. The Raw* types are loose decode targets
// where every nested object is optional.
package services
