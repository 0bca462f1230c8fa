package analytics

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"foxboard/pkg/logger"
)

const serviceName = "analytics-backend"

// defaultTimeout - жесткий потолок одного запроса. Бэкенд пересчитывает
// агрегаты синхронно и на больших выгрузках отвечает долго.
const defaultTimeout = 120 * time.Second

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Gateway - тонкая обертка над REST API бэкенда аналитики.
// Классифицирует не-2xx ответы в типизированные ошибки и конвертирует
// таймаут в ErrTimeout. Сам никогда не ретраит и не кеширует,
// политика повторов живет уровнем выше.
type Gateway struct {
	baseURL string
	timeout time.Duration
	client  *http.Client
	log     handlerLogger
}

func New(log handlerLogger, cfg Config) *Gateway {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Gateway{
		baseURL: cfg.BaseURL,
		timeout: timeout,
		client:  &http.Client{},
		log:     log.With(),
	}
}

// getJSON выполняет GET и декодирует 2xx ответ в out.
func (g *Gateway) getJSON(ctx context.Context, path string, query url.Values, out interface{}) error {
	return g.do(ctx, http.MethodGet, path, query, nil, "", out)
}

func (g *Gateway) do(
	ctx context.Context,
	method string,
	path string,
	query url.Values,
	body io.Reader,
	contentType string,
	out interface{},
) error {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	endpoint := g.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	if contentType == "" {
		contentType = "application/json"
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := g.client.Do(req)
	code := statusLabel(resp, err)
	RequestDuration.WithLabelValues(serviceName, path, code).Observe(time.Since(start).Seconds())

	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || ctx.Err() == context.DeadlineExceeded {
			return fmt.Errorf("%s %s: %w", method, path, ErrTimeout)
		}
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Тело ошибки опционально, нечитаемое тело считаем пустым.
		var eb errorBody
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		_ = json.Unmarshal(raw, &eb)

		message := eb.Erro
		if message == "" {
			message = eb.Detalhes
		}

		ErrorsTotal.WithLabelValues(serviceName, path, code).Inc()
		return fmt.Errorf("%s %s: %w", method, path, classifyStatus(resp.StatusCode, message))
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s %s: decode response: %w", method, path, err)
	}
	return nil
}

// rawJSON читает тело 2xx ответа целиком, не зная формата заранее.
func (g *Gateway) rawJSON(ctx context.Context, path string) ([]byte, error) {
	var raw json.RawMessage
	if err := g.getJSON(ctx, path, nil, &raw); err != nil {
		return nil, err
	}
	return bytes.TrimSpace(raw), nil
}

func statusLabel(resp *http.Response, err error) string {
	if err != nil {
		return "error"
	}
	return fmt.Sprintf("%d", resp.StatusCode)
}
