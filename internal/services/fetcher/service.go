package fetcher

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	domainErrors "pulseboard/internal/errors"
	"pulseboard/internal/models"

	"github.com/gofiber/fiber/v2"
)

// Fetcher reads the dashboard data resource.
type Fetcher interface {
	Fetch(ctx context.Context) (*models.DashboardSnapshot, error)
}

type httpFetcher struct {
	url string
}

// NewHTTPFetcher returns a Fetcher issuing one GET of url per call. There is
// no retry and no timeout beyond the caller's context deadline.
func NewHTTPFetcher(url string) Fetcher {
	if url == "" {
		panic("data url is required")
	}
	return &httpFetcher{url: url}
}

// Fetch returns the parsed snapshot. Failures wrap ErrFetchFailure for
// transport and non-2xx responses and ErrParseFailure for bodies that do not
// decode into a valid snapshot.
func (f *httpFetcher) Fetch(ctx context.Context) (*models.DashboardSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", domainErrors.ErrFetchFailure, err)
	}

	agent := fiber.Get(f.url)
	if deadline, ok := ctx.Deadline(); ok {
		agent.Timeout(time.Until(deadline))
	}

	status, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %v", domainErrors.ErrFetchFailure, errors.Join(errs...))
	}
	if status < fiber.StatusOK || status >= fiber.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: unexpected status %d", domainErrors.ErrFetchFailure, status)
	}

	return Decode(body)
}

// Decode parses a data resource body into a validated snapshot.
func Decode(body []byte) (*models.DashboardSnapshot, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, fmt.Errorf("%w: body is not a JSON object", domainErrors.ErrParseFailure)
	}

	var snapshot models.DashboardSnapshot
	if err := json.Unmarshal(trimmed, &snapshot); err != nil {
		return nil, fmt.Errorf("%w: %v", domainErrors.ErrParseFailure, err)
	}
	if err := snapshot.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domainErrors.ErrParseFailure, err)
	}
	return &snapshot, nil
}
