package session

import "errors"

// Ошибки валидации: проверяются до любого сетевого вызова.
var (
	ErrFieldsRequired      = errors.New("name, email and password are required")
	ErrPasswordTooShort    = errors.New("password must be at least 6 characters")
	ErrPasswordMismatch    = errors.New("passwords do not match")
	ErrCompanyNameRequired = errors.New("company name is required for company accounts")
	ErrInvalidRole         = errors.New("unknown role")
)

// ErrNotAuthenticated - операция требует активной сессии.
var ErrNotAuthenticated = errors.New("not authenticated")
