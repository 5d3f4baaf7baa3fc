package peers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"hospital-manager-api/config"
	"hospital-manager-api/internal/apperr"
	"hospital-manager-api/pkg/breaker"
)

type doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// client is the shared transport under the typed peer clients. Domain
// outcomes (404/409/4xx) come back classified and are never retried;
// network failures and 5xx are retried up to cfg.Retries times and feed the
// circuit breaker.
type client struct {
	name    string
	base    string
	http    doer
	br      *breaker.Breaker
	retries int
	log     *zap.Logger
}

func newClient(name string, cfg config.Peer, logger *zap.Logger) *client {
	return &client{
		name:    name,
		base:    strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
		br:      breaker.New(cfg.BreakerThreshold, cfg.BreakerCooldown),
		retries: cfg.Retries,
		log:     logger,
	}
}

// errorBody is the error shape every service in this system responds with.
type errorBody struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details"`
}

type boolResponse struct {
	Value bool `json:"value"`
}

func (c *client) doJSON(ctx context.Context, method, path string, in, out any) error {
	if !c.br.Allow() {
		return apperr.RemoteUnavailable(c.name+" service is unavailable", breaker.ErrOpen)
	}

	var lastErr error
	for attempt := 0; attempt <= c.retries; attempt++ {
		// a canceled caller is not a peer failure and must not trip the circuit
		if err := ctx.Err(); err != nil {
			return apperr.Internal(c.name+" call canceled", err)
		}

		var body io.Reader
		if in != nil {
			b, err := json.Marshal(in)
			if err != nil {
				return apperr.Internal("failed to encode "+c.name+" request", err)
			}
			body = bytes.NewReader(b)
		}

		req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
		if err != nil {
			return apperr.Internal("failed to build "+c.name+" request", err)
		}
		if in != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.http.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return apperr.Internal(c.name+" call canceled", ctx.Err())
			}
			lastErr = err
			c.br.Failure()
			continue
		}

		err = c.handle(resp, out)
		if err == nil {
			c.br.Success()
			return nil
		}
		if apperr.KindOf(err) == apperr.KindRemoteUnavailable {
			lastErr = err
			c.br.Failure()
			continue
		}

		// The remote answered deliberately; the circuit stays healthy and
		// the classification is reflected to the caller as-is.
		c.br.Success()
		return err
	}

	c.log.Error("peer call exhausted retries",
		zap.String("peer", c.name),
		zap.String("path", path),
		zap.Error(lastErr),
	)

	return apperr.RemoteUnavailable(c.name+" service is unavailable", lastErr)
}

func (c *client) handle(resp *http.Response, out any) error {
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil {
			_, _ = io.Copy(io.Discard, resp.Body)
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return apperr.RemoteUnavailable("malformed response from "+c.name, err)
		}
		return nil
	}

	var eb errorBody
	_ = json.NewDecoder(resp.Body).Decode(&eb)
	msg := eb.Error
	if msg == "" {
		msg = fmt.Sprintf("%s rejected the request (status %d)", c.name, resp.StatusCode)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return apperr.NotFound(msg)
	case resp.StatusCode == http.StatusConflict:
		return apperr.Conflict(msg)
	case resp.StatusCode == http.StatusUnauthorized:
		return apperr.Unauthorized(msg)
	case resp.StatusCode == http.StatusForbidden:
		return apperr.Forbidden(msg)
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return apperr.RemoteRejected(msg, eb.Details)
	default:
		return apperr.RemoteUnavailable(
			fmt.Sprintf("%s returned status %d", c.name, resp.StatusCode), nil)
	}
}

// getBool runs an existence/dependency probe. A remote 404 means the subject
// row itself is gone, which reads as "no dependents": false, not an error.
func (c *client) getBool(ctx context.Context, path string) (bool, error) {
	var out boolResponse
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		if apperr.KindOf(err) == apperr.KindNotFound {
			return false, nil
		}
		return false, err
	}

	return out.Value, nil
}
