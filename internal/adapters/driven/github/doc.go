// Package github fetches license and .gitignore templates from GitHub.
//
// Gitignore templates come from the gitignore templates API
// (GET /gitignore/templates). License templates come from the
// licenses/license-templates repository, one file per license under
// templates/<name>.txt.
//
// # Authentication
//
// A token is optional. Without one, GitHub allows 60 requests per hour,
// which is enough for interactive use. A personal access token raises
// the limit to 5,000 per hour.
//
// # Rate Limiting
//
// Requests pass through a [RateLimiter] that combines a token bucket with
// the X-RateLimit-* response headers, waiting for the reset time when the
// remaining quota runs low.
//
// # Resilience
//
// Each request runs under a timeout and is retried with exponential
// backoff. Not-found responses are returned at once without retrying.
// All failures wrap [domain.ErrRemoteUnavailable] so callers can fall back
// to local templates.
package github
