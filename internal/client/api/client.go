package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/iudanet/servermanager/internal/models"
	"github.com/iudanet/servermanager/pkg/api"
)

const (
	// DefaultBaseURL is the server api root used when nothing is configured
	DefaultBaseURL = "http://localhost:8080/api/server/"

	// DefaultTimeout bounds a single remote call
	DefaultTimeout = 30 * time.Second

	// RequestIDHeader carries the per-call correlation id
	RequestIDHeader = "X-Request-ID"

	tracerName = "github.com/iudanet/servermanager/internal/client/api"
)

type requestIDKey struct{}

// ContextWithRequestID makes calls made with ctx reuse id instead of generating one.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// Client представляет HTTP клиент для взаимодействия с server api
type Client struct {
	httpClient *http.Client
	logger     *slog.Logger
	tracer     trace.Tracer
	baseURL    string
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout overrides the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// WithLogger sets the logger used for response tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// NewClient создает новый API клиент.
// baseURL указывает на корень ресурса, например http://localhost:8080/api/server/
func NewClient(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	// Все пути строятся относительно корня ресурса
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				return nil
			},
		},
		logger: slog.New(slog.DiscardHandler),
		tracer: otel.Tracer(tracerName),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// BaseURL returns the normalized api root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ListServers получает полный список серверов.
// Порядок не меняется: разворот коллекции делает потребитель.
func (c *Client) ListServers(ctx context.Context) (*api.Response, error) {
	var resp api.Response
	if err := c.doRequest(ctx, "ListServers", http.MethodGet, "", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Ping проверяет доступность сервера по IP адресу.
// Запись для обновления определяет backend.
func (c *Client) Ping(ctx context.Context, ipAddress string) (*api.Response, error) {
	ipAddress = strings.TrimSpace(ipAddress)
	if ipAddress == "" {
		return nil, &OperationError{
			StatusCode: http.StatusBadRequest,
			Message:    ErrEmptyIPAddress.Error(),
			Err:        ErrEmptyIPAddress,
		}
	}

	var resp api.Response
	path := "ping/" + url.PathEscape(ipAddress)
	if err := c.doRequest(ctx, "Ping", http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Filter фильтрует снимок локально, без обращения к backend.
func (c *Client) Filter(ctx context.Context, filter models.Filter, snapshot *api.Response) (*api.Response, error) {
	_, span := c.tracer.Start(ctx, "ServerGateway.Filter",
		trace.WithAttributes(attribute.String("servermanager.filter", string(filter))))
	defer span.End()

	resp, err := FilterSnapshot(filter, snapshot)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	c.logger.Debug("servers filtered",
		"filter", filter,
		"matched", len(resp.Data.Servers),
		"message", resp.Message)

	return resp, nil
}

// Save создает новый сервер
func (c *Client) Save(ctx context.Context, input api.ServerInput) (*api.Response, error) {
	var resp api.Response
	if err := c.doRequest(ctx, "Save", http.MethodPost, "", input, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Delete удаляет сервер по id
func (c *Client) Delete(ctx context.Context, serverID int64) (*api.Response, error) {
	var resp api.Response
	path := strconv.FormatInt(serverID, 10)
	if err := c.doRequest(ctx, "Delete", http.MethodDelete, path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// doRequest выполняет HTTP запрос и приводит любую ошибку к *OperationError
func (c *Client) doRequest(ctx context.Context, operation, method, path string, body, result interface{}) error {
	requestID, ok := ctx.Value(requestIDKey{}).(string)
	if !ok || requestID == "" {
		requestID = uuid.NewString()
	}
	ctx, span := c.tracer.Start(ctx, "ServerGateway."+operation,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("servermanager.request_id", requestID),
		))
	defer span.End()

	err := c.send(ctx, span, requestID, method, c.baseURL+path, body, result)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.logger.Warn("server api request failed",
			"operation", operation,
			"request_id", requestID,
			"error", err,
			"detail", detailOf(err))
	}
	return err
}

func (c *Client) send(ctx context.Context, span trace.Span, requestID, method, target string, body, result interface{}) error {
	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return &OperationError{Err: fmt.Errorf("failed to marshal request body: %w", err)}
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, bodyReader)
	if err != nil {
		return &OperationError{Err: fmt.Errorf("failed to create request: %w", err)}
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &OperationError{Err: fmt.Errorf("request failed: %w", err)}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &OperationError{
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("failed to read response body: %w", err),
		}
	}

	c.logger.Debug("server api response",
		"method", method,
		"url", target,
		"request_id", requestID,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
		"body", string(respBody))

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &OperationError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(respBody),
		}
	}

	// Декодируем успешный ответ
	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return &OperationError{
				StatusCode: resp.StatusCode,
				Err:        fmt.Errorf("failed to decode response: %w", err),
			}
		}
	}

	return nil
}

// errorMessage извлекает сообщение из тела ошибки, если backend его прислал
func errorMessage(body []byte) string {
	var errResp api.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil {
		switch {
		case errResp.Message != "":
			return errResp.Message
		case errResp.Reason != "":
			return errResp.Reason
		case errResp.Error != "":
			return errResp.Error
		}
	}
	return strings.TrimSpace(string(body))
}

func detailOf(err error) string {
	var opErr *OperationError
	if errors.As(err, &opErr) {
		return opErr.Detail()
	}
	return ""
}
