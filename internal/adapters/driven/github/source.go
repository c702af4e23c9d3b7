package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/felixgeelhaar/fortify/retry"
	"github.com/felixgeelhaar/fortify/timeout"
	gh "github.com/google/go-github/v80/github"
	"golang.org/x/oauth2"

	"github.com/custodia-labs/docschema/internal/core/domain"
	"github.com/custodia-labs/docschema/internal/core/ports/driven"
)

// Ensure Source implements the interface.
var _ driven.RemoteTemplateSource = (*Source)(nil)

const (
	// LicenseOwner owns the license templates repository.
	LicenseOwner = "licenses"

	// LicenseRepo holds one license per file under LicenseDir.
	LicenseRepo = "license-templates"

	// LicenseDir is the directory of license files in LicenseRepo.
	LicenseDir = "templates"

	licenseExt = ".txt"

	// DefaultMaxAttempts is the number of attempts for transient errors.
	DefaultMaxAttempts = 3

	// DefaultRetryDelay is the initial delay between attempts.
	DefaultRetryDelay = 500 * time.Millisecond
)

// Config configures a Source.
type Config struct {
	// Token is an optional personal access token.
	Token string

	// Timeout bounds each operation including retries.
	Timeout time.Duration

	// MaxAttempts is the number of attempts per request.
	MaxAttempts int

	// RetryDelay is the initial backoff delay.
	RetryDelay time.Duration

	// RequestsPerSecond is the proactive throttle rate.
	RequestsPerSecond float64

	// BaseURL overrides the API endpoint.
	BaseURL string
}

// Source fetches templates from GitHub.
type Source struct {
	gh          *gh.Client
	rateLimiter *RateLimiter
	timeout     time.Duration
	retryCfg    retry.Config
}

// New creates a GitHub template source.
func New(ctx context.Context, cfg Config) (*Source, error) {
	if cfg.Timeout <= 0 {
		cfg.Timeout = domain.DefaultGitHubTimeout
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultMaxAttempts
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = DefaultRetryDelay
	}

	var (
		httpClient *http.Client
		limit      = UnauthenticatedLimit
	)
	if cfg.Token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token})
		httpClient = oauth2.NewClient(ctx, ts)
		limit = AuthenticatedLimit
	} else {
		httpClient = &http.Client{}
	}
	httpClient.Timeout = cfg.Timeout

	client := gh.NewClient(httpClient)
	if cfg.BaseURL != "" {
		base, err := url.Parse(strings.TrimSuffix(cfg.BaseURL, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("parse base url: %w", err)
		}
		client.BaseURL = base
	}

	return &Source{
		gh:          client,
		rateLimiter: NewRateLimiter(limit, cfg.RequestsPerSecond),
		timeout:     cfg.Timeout,
		retryCfg: retry.Config{
			MaxAttempts:   cfg.MaxAttempts,
			InitialDelay:  cfg.RetryDelay,
			BackoffPolicy: retry.BackoffExponential,
		},
	}, nil
}

// RateLimiter returns the rate limiter for external access.
func (s *Source) RateLimiter() *RateLimiter {
	return s.rateLimiter
}

// Fetch returns the text of a license or gitignore template.
func (s *Source) Fetch(ctx context.Context, category domain.TemplateCategory, name string) (string, error) {
	switch category {
	case domain.TemplateCategoryLicense:
		return call(ctx, s, "get license", func(ctx context.Context) (string, *gh.Response, error) {
			path := LicenseDir + "/" + name + licenseExt
			file, _, resp, err := s.gh.Repositories.GetContents(ctx, LicenseOwner, LicenseRepo, path, nil)
			if err != nil {
				return "", resp, err
			}
			if file == nil {
				return "", resp, fmt.Errorf("%s is a directory", path)
			}
			content, err := file.GetContent()
			if err != nil {
				return "", resp, fmt.Errorf("decode content: %w", err)
			}
			return content, resp, nil
		})
	case domain.TemplateCategoryGitignore:
		return call(ctx, s, "get gitignore", func(ctx context.Context) (string, *gh.Response, error) {
			tmpl, resp, err := s.gh.Gitignores.Get(ctx, name)
			if err != nil {
				return "", resp, err
			}
			return tmpl.GetSource(), resp, nil
		})
	default:
		return "", fmt.Errorf("template category %q: %w", category, domain.ErrInvalidInput)
	}
}

// List returns the template names GitHub offers for a category.
func (s *Source) List(ctx context.Context, category domain.TemplateCategory) ([]string, error) {
	switch category {
	case domain.TemplateCategoryLicense:
		return call(ctx, s, "list licenses", func(ctx context.Context) ([]string, *gh.Response, error) {
			_, entries, resp, err := s.gh.Repositories.GetContents(ctx, LicenseOwner, LicenseRepo, LicenseDir, nil)
			if err != nil {
				return nil, resp, err
			}
			var names []string
			for _, e := range entries {
				if name, ok := strings.CutSuffix(e.GetName(), licenseExt); ok {
					names = append(names, name)
				}
			}
			return names, resp, nil
		})
	case domain.TemplateCategoryGitignore:
		return call(ctx, s, "list gitignores", func(ctx context.Context) ([]string, *gh.Response, error) {
			return s.gh.Gitignores.List(ctx)
		})
	default:
		return nil, fmt.Errorf("template category %q: %w", category, domain.ErrInvalidInput)
	}
}

// call runs fn under the rate limiter, a timeout and retries.
// Not-found, unauthorized and rate-limited responses are not retried.
func call[T any](
	ctx context.Context,
	s *Source,
	operation string,
	fn func(ctx context.Context) (T, *gh.Response, error),
) (T, error) {
	var (
		zero      T
		permanent error
	)

	r := retry.New[T](s.retryCfg)
	t := timeout.New[T](timeout.Config{DefaultTimeout: s.timeout})

	res, err := t.Execute(ctx, s.timeout, func(ctx context.Context) (T, error) {
		return r.Do(ctx, func(ctx context.Context) (T, error) {
			if err := s.rateLimiter.Wait(ctx); err != nil {
				permanent = fmt.Errorf("rate limit wait: %w", err)
				return zero, nil
			}

			v, resp, err := fn(ctx)
			s.updateRateLimitFromResponse(resp)
			if err != nil {
				wrapped := s.wrapError(err, operation)
				if IsNotFound(wrapped) || IsUnauthorized(wrapped) || IsRateLimited(wrapped) {
					permanent = wrapped
					return zero, nil
				}
				return zero, wrapped
			}
			return v, nil
		})
	})
	if err == nil && permanent != nil {
		err = permanent
	}
	if err != nil {
		return zero, fmt.Errorf("%w: %w", domain.ErrRemoteUnavailable, err)
	}
	return res, nil
}

// updateRateLimitFromResponse updates the rate limiter from GitHub response headers.
func (s *Source) updateRateLimitFromResponse(resp *gh.Response) {
	if resp == nil || resp.Response == nil {
		return
	}
	s.rateLimiter.UpdateFromResponse(resp.Response)
}

// wrapError converts go-github errors to our error types.
func (s *Source) wrapError(err error, operation string) error {
	if err == nil {
		return nil
	}

	var rateLimitErr *gh.RateLimitError
	if errors.As(err, &rateLimitErr) {
		return &RateLimitError{
			ResetAt:   rateLimitErr.Rate.Reset.Time,
			Remaining: rateLimitErr.Rate.Remaining,
			Limit:     rateLimitErr.Rate.Limit,
		}
	}

	var ghErr *gh.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil {
		apiErr := &APIError{
			StatusCode: ghErr.Response.StatusCode,
			Message:    ghErr.Message,
		}
		if ghErr.Response.Request != nil {
			apiErr.URL = ghErr.Response.Request.URL.String()
		}
		return apiErr
	}

	return fmt.Errorf("%s: %w", operation, err)
}
