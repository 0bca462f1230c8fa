package identity

import "foxboard/internal/entities"

// Session - выданная identity store сессия с токенами и встроенными
// клеймами пользователя.
type Session struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int
	User         SessionUser
}

// SessionUser - личность, как ее видит auth-сервис (без строки профиля).
type SessionUser struct {
	ID          string
	Email       string
	Name        string
	Role        entities.Role
	CompanyName string
}

type wireSession struct {
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
	ExpiresIn    int      `json:"expires_in"`
	User         wireUser `json:"user"`
}

type wireUser struct {
	ID           string       `json:"id"`
	Email        string       `json:"email"`
	UserMetadata wireMetadata `json:"user_metadata"`
}

type wireMetadata struct {
	Name        string `json:"name"`
	Role        string `json:"role"`
	CompanyName string `json:"company_name"`
}

type wireProfile struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	CompanyName string `json:"company_name"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

func toSessionUser(w wireUser) SessionUser {
	return SessionUser{
		ID:          w.ID,
		Email:       w.Email,
		Name:        w.UserMetadata.Name,
		Role:        entities.Role(w.UserMetadata.Role),
		CompanyName: w.UserMetadata.CompanyName,
	}
}

func toSession(w wireSession) *Session {
	return &Session{
		AccessToken:  w.AccessToken,
		RefreshToken: w.RefreshToken,
		ExpiresIn:    w.ExpiresIn,
		User:         toSessionUser(w.User),
	}
}

func toProfile(w wireProfile) entities.UserProfile {
	return entities.UserProfile{
		ID:          w.ID,
		Email:       w.Email,
		Name:        w.Name,
		Role:        entities.Role(w.Role),
		CompanyName: w.CompanyName,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
	}
}
