package identity

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

const serviceName = "identity-store"

var (
	// ErrUnauthorized - identity store отклонил креденшелы или токен.
	ErrUnauthorized = errors.New("identity store rejected credentials")

	// ErrProfileNotFound - в таблице профилей нет строки для пользователя.
	ErrProfileNotFound = errors.New("user profile not found")
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Config struct {
	BaseURL string
	// AnonKey - публичный ключ для пользовательских операций.
	AnonKey string
	// ServiceKey - привилегированный ключ для админских RPC и таблицы профилей.
	ServiceKey string
	Timeout    time.Duration
}

// Client - клиент удаленного identity/profile store (auth REST + таблица
// профилей + привилегированные админские вызовы). Сессии и политика
// повторов живут в service/session, здесь только транспорт.
type Client struct {
	cfg    Config
	client *http.Client
	log    handlerLogger
}

func New(log handlerLogger, cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	return &Client{
		cfg:    cfg,
		client: &http.Client{},
		log:    log.With(),
	}
}

// do выполняет запрос с ключом apikey и опциональным bearer-токеном.
// 401/403 переводятся в ErrUnauthorized, прочие не-2xx - в ошибку с телом.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, bearer string, in, out interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	endpoint := c.cfg.BaseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("apikey", c.cfg.AnonKey)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return fmt.Errorf("%s %s: %w", method, path, ErrUnauthorized)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb struct {
			Message          string `json:"msg"`
			ErrorDescription string `json:"error_description"`
		}
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		_ = json.Unmarshal(raw, &eb)

		message := eb.Message
		if message == "" {
			message = eb.ErrorDescription
		}
		return fmt.Errorf("%s %s: identity store status %d: %s", method, path, resp.StatusCode, message)
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
