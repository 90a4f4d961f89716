// Package purgomalum checks texts against the PurgoMalum profanity filter service
// (https://www.purgomalum.com) and caches the verdicts in Redis.
package purgomalum

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"kitchenpos/internal/core/ports"
	"kitchenpos/internal/pkg/errs"

	"github.com/cenkalti/backoff/v4"
	"github.com/pkg/errors"
)

const (
	DefaultBaseURL = "https://www.purgomalum.com"

	containsProfanityPath = "/service/containsprofanity"
	defaultMaxRetries     = 2
)

var _ ports.ProfanityClient = (*Client)(nil)

// Client calls the containsprofanity endpoint, which answers with a plain "true" or
// "false". Server errors and transport failures are retried with exponential backoff.
type Client struct {
	baseURL    string
	httpClient *http.Client
	maxRetries uint64
	newBackOff func() backoff.BackOff
}

func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("baseURL", err)
	}
	if timeout <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("timeout", timeout, "1ns", "unbounded")
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		maxRetries: defaultMaxRetries,
		newBackOff: func() backoff.BackOff { return backoff.NewExponentialBackOff() },
	}, nil
}

func (c *Client) ContainsProfanity(ctx context.Context, text string) (bool, error) {
	endpoint := c.baseURL + containsProfanityPath + "?" + url.Values{"text": {text}}.Encode()

	var profane bool
	operation := func() error {
		var err error
		profane, err = c.call(ctx, endpoint)
		return err
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(c.newBackOff(), c.maxRetries),
		ctx,
	)
	if err := backoff.Retry(operation, policy); err != nil {
		return false, errors.Wrap(err, "purgomalum containsprofanity")
	}
	return profane, nil
}

func (c *Client) call(ctx context.Context, endpoint string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false, backoff.Permanent(err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64))
	if err != nil {
		return false, err
	}

	switch {
	case resp.StatusCode >= http.StatusInternalServerError:
		return false, fmt.Errorf("unexpected status %d", resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return false, backoff.Permanent(fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	profane, err := strconv.ParseBool(strings.TrimSpace(string(body)))
	if err != nil {
		return false, backoff.Permanent(errors.Wrapf(err, "unexpected answer %q", body))
	}
	return profane, nil
}
