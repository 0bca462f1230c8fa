package identity

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"foxboard/internal/entities"
)

var errMalformedToken = errors.New("malformed access token")

// TokenClaims - клеймы, встроенные в access-токен. Подпись здесь не
// проверяется: токен валидирует identity store, клеймы нужны только как
// деградированный источник личности, когда store недоступен.
type TokenClaims struct {
	Subject     string
	Email       string
	Name        string
	Role        entities.Role
	CompanyName string
}

// ParseClaims декодирует payload JWT без верификации подписи.
func ParseClaims(accessToken string) (*TokenClaims, error) {
	parts := strings.Split(accessToken, ".")
	if len(parts) != 3 {
		return nil, errMalformedToken
	}

	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errMalformedToken, err)
	}

	var raw struct {
		Subject      string       `json:"sub"`
		Email        string       `json:"email"`
		UserMetadata wireMetadata `json:"user_metadata"`
	}
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", errMalformedToken, err)
	}
	if raw.Subject == "" {
		return nil, errMalformedToken
	}

	return &TokenClaims{
		Subject:     raw.Subject,
		Email:       raw.Email,
		Name:        raw.UserMetadata.Name,
		Role:        entities.Role(raw.UserMetadata.Role),
		CompanyName: raw.UserMetadata.CompanyName,
	}, nil
}
