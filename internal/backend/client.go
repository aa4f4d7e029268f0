// Package backend is the typed HTTP client for the academic REST backend.
// Every call attaches the caller's Authorization header verbatim; any 2xx
// response is success, anything else is a uniform request failure.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/fernandarrocha/AV2-faculdade/internal/models"
	appErrors "github.com/fernandarrocha/AV2-faculdade/pkg/errors"
)

// Client talks to the REST backend under a fixed base path.
type Client struct {
	baseURL string
	httpc   *http.Client
	logger  *zap.Logger

	alunos resource[models.Aluno]
	cursos resource[models.Curso]
}

// New constructs a Client for the given base URL (e.g. http://host:8080/api).
// No client-side timeout is set: a pending operation waits on the
// transport's own limits, matching the dashboard's interaction model.
func New(baseURL string, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{},
		logger:  logger,
	}
	c.alunos = resource[models.Aluno]{client: c, base: "/alunos"}
	c.cursos = resource[models.Curso]{client: c, base: "/cursos"}
	return c
}

// Ping issues the read-only credential probe used by login. The student
// collection doubles as the known protected endpoint.
func (c *Client) Ping(ctx context.Context, auth string) error {
	return c.do(ctx, http.MethodGet, "/alunos", auth, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path, auth string, body, out interface{}) error {
	var payload io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "falha ao codificar requisição")
		}
		payload = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "falha ao montar requisição")
	}
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.logger.Warn("backend unreachable", zap.String("method", method), zap.String("path", path), zap.Error(err))
		return appErrors.Wrap(err, appErrors.ErrTransport.Code, appErrors.ErrTransport.Status, appErrors.ErrTransport.Message)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, resp.Body)
		c.logger.Warn("backend rejected request", zap.String("method", method), zap.String("path", path), zap.Int("status", resp.StatusCode))
		return appErrors.Wrap(
			fmt.Errorf("%s %s: status %d", method, path, resp.StatusCode),
			appErrors.ErrRequestFailed.Code, appErrors.ErrRequestFailed.Status, appErrors.ErrRequestFailed.Message,
		)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return appErrors.Wrap(err, appErrors.ErrRequestFailed.Code, appErrors.ErrRequestFailed.Status, "resposta inválida do backend")
	}
	return nil
}

// resource generalises the CRUD surface shared by the two entity
// collections; the enrollment call is the aluno-only extension on Client.
type resource[T any] struct {
	client *Client
	base   string
}

func (r resource[T]) list(ctx context.Context, auth string) ([]T, error) {
	var items []T
	if err := r.client.do(ctx, http.MethodGet, r.base, auth, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r resource[T]) create(ctx context.Context, auth string, payload interface{}) (*T, error) {
	var created T
	if err := r.client.do(ctx, http.MethodPost, r.base, auth, payload, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r resource[T]) update(ctx context.Context, auth string, id int, payload interface{}) (*T, error) {
	var updated T
	path := fmt.Sprintf("%s/%d", r.base, id)
	if err := r.client.do(ctx, http.MethodPut, path, auth, payload, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r resource[T]) delete(ctx context.Context, auth string, id int) error {
	path := fmt.Sprintf("%s/%d", r.base, id)
	return r.client.do(ctx, http.MethodDelete, path, auth, nil, nil)
}
