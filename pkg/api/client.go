// Copyright (c) 2025 horeilly
//
// This software is licensed under the MIT License.
// See the LICENSE file in the root of the repository for details.

// Package api implements the client for the Quinta do Lago availability
// endpoint. One GET per (date, time, course) cell, transient failures
// retried with exponential backoff, responses schema-checked before they
// are handed to the rest of the pipeline.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/cenkalti/backoff/v4"

	"github.com/horeilly/qdl-tee-times/pkg/config"
	"github.com/horeilly/qdl-tee-times/pkg/models"
)

const userAgent = "qdl-tee-times/1.0 (github.com/horeilly/qdl-tee-times)"

// Client talks to the booking API. It owns a single pooled *http.Client
// reused across every cell of a search; Close releases idle connections.
type Client struct {
	cfg config.Config
	hc  *http.Client
}

func New(cfg config.Config) *Client {
	return &Client{
		cfg: cfg,
		hc:  &http.Client{Timeout: cfg.Timeout},
	}
}

// FetchAvailability fetches the availability for one grid cell. Zero slots
// is a valid result; any transport, status or schema problem comes back as
// a *models.Error carrying the cell coordinates. Transient failures
// (network errors and retryable statuses) are retried up to cfg.MaxRetries
// times with exponential backoff before the error is surfaced.
func (c *Client) FetchAvailability(ctx context.Context, date, teeTime, courseID string, players int) (models.CourseAvailabilityResponse, error) {
	var out models.CourseAvailabilityResponse

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = c.cfg.BackoffBase
	bo.MaxElapsedTime = 0 // bounded by retry count, not wall clock

	attempt := func() error {
		resp, err := c.fetchOnce(ctx, date, teeTime, courseID, players)
		if err != nil {
			var qe *models.Error
			if errors.As(err, &qe) && qe.Kind == models.KindTransientFetch {
				return err
			}
			return backoff.Permanent(err)
		}
		out = resp
		return nil
	}

	err := backoff.Retry(attempt, backoff.WithContext(backoff.WithMaxRetries(bo, uint64(c.cfg.MaxRetries)), ctx))
	if err != nil {
		return models.CourseAvailabilityResponse{}, err
	}
	return out, nil
}

// fetchOnce performs a single request/decode cycle for a cell.
func (c *Client) fetchOnce(ctx context.Context, date, teeTime, courseID string, players int) (models.CourseAvailabilityResponse, error) {
	cellErr := func(kind models.ErrorKind, err error) *models.Error {
		return &models.Error{Kind: kind, Date: date, Time: teeTime, CourseID: courseID, Err: err}
	}

	u, err := url.Parse(c.cfg.APIURL)
	if err != nil {
		return models.CourseAvailabilityResponse{}, cellErr(models.KindPermanentFetch, fmt.Errorf("invalid API URL: %w", err))
	}
	q := u.Query()
	q.Set("date", date)
	q.Set("time", teeTime)
	q.Set("players", strconv.Itoa(players))
	q.Set("course", courseID)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return models.CourseAvailabilityResponse{}, cellErr(models.KindPermanentFetch, err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	log.Printf("[api] GET %s", u.String())

	resp, err := c.hc.Do(req)
	if err != nil {
		return models.CourseAvailabilityResponse{}, cellErr(models.KindTransientFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused by the next attempt.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		kind := models.KindPermanentFetch
		if c.retryable(resp.StatusCode) {
			kind = models.KindTransientFetch
		}
		return models.CourseAvailabilityResponse{}, cellErr(kind, fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var wire wireResponse
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return models.CourseAvailabilityResponse{}, cellErr(models.KindPermanentFetch, fmt.Errorf("malformed response body: %w", err))
	}
	validated, err := wire.validate()
	if err != nil {
		return models.CourseAvailabilityResponse{}, cellErr(models.KindPermanentFetch, err)
	}
	return validated, nil
}

func (c *Client) retryable(status int) bool {
	for _, s := range c.cfg.RetryStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Close releases the client's idle connections. Safe to call after a
// search regardless of how many cells failed.
func (c *Client) Close() {
	c.hc.CloseIdleConnections()
}
