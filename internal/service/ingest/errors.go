package ingest

import "errors"

var (
	// ErrUnsupportedFile - загружать можно только .xlsx.
	ErrUnsupportedFile = errors.New("only .xlsx files are supported")
	// ErrConfirmationMismatch - фраза подтверждения очистки не совпала.
	ErrConfirmationMismatch = errors.New("confirmation phrase mismatch")
)
