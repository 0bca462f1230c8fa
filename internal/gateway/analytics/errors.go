package analytics

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound - 404 от бэкенда. Может означать "данные еще обрабатываются",
	// а не "их нет", поэтому вызывающая сторона считает его ретраябельным.
	ErrNotFound = errors.New("resource not found or still processing")

	// ErrServer - 500, внутренняя ошибка бэкенда.
	ErrServer = errors.New("backend internal error")

	// ErrUnavailable - 503, бэкенд перегружен или лежит.
	ErrUnavailable = errors.New("backend temporarily unavailable")

	// ErrTimeout - клиентский дедлайн истек до ответа.
	ErrTimeout = errors.New("request timed out")
)

// StatusError - любой другой не-2xx ответ, с кодом и телом ошибки бэкенда.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("unexpected status %d", e.Code)
	}
	return fmt.Sprintf("unexpected status %d: %s", e.Code, e.Message)
}

// classifyStatus переводит не-2xx код в типизированную ошибку слоя.
func classifyStatus(code int, message string) error {
	switch code {
	case 404:
		return ErrNotFound
	case 500:
		return ErrServer
	case 503:
		return ErrUnavailable
	default:
		return &StatusError{Code: code, Message: message}
	}
}
