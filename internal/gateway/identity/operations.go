package identity

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"foxboard/internal/entities"
)

// SignIn выполняет парольный вход.
func (c *Client) SignIn(ctx context.Context, email, password string) (*Session, error) {
	query := url.Values{}
	query.Set("grant_type", "password")

	in := map[string]string{
		"email":    email,
		"password": password,
	}

	var w wireSession
	if err := c.do(ctx, http.MethodPost, "/auth/v1/token", query, "", in, &w); err != nil {
		return nil, fmt.Errorf("sign in: %w", err)
	}
	return toSession(w), nil
}

// SignUp регистрирует пользователя; имя, роль и компания уходят в метаданные,
// строку профиля создает триггер на стороне identity store.
func (c *Client) SignUp(ctx context.Context, reg entities.Registration) (*Session, error) {
	in := map[string]interface{}{
		"email":    reg.Email,
		"password": reg.Password,
		"data": map[string]string{
			"name":         reg.Name,
			"role":         reg.Role.String(),
			"company_name": reg.CompanyName,
		},
	}

	var w wireSession
	if err := c.do(ctx, http.MethodPost, "/auth/v1/signup", nil, "", in, &w); err != nil {
		return nil, fmt.Errorf("sign up: %w", err)
	}
	return toSession(w), nil
}

// CurrentUser проверяет сессию по access-токену.
func (c *Client) CurrentUser(ctx context.Context, accessToken string) (*SessionUser, error) {
	var w wireUser
	if err := c.do(ctx, http.MethodGet, "/auth/v1/user", nil, accessToken, nil, &w); err != nil {
		return nil, fmt.Errorf("current user: %w", err)
	}
	if w.ID == "" {
		return nil, ErrUnauthorized
	}
	user := toSessionUser(w)
	return &user, nil
}

// SignOut инвалидирует сессию на стороне identity store.
func (c *Client) SignOut(ctx context.Context, accessToken string) error {
	if err := c.do(ctx, http.MethodPost, "/auth/v1/logout", nil, accessToken, nil, nil); err != nil {
		return fmt.Errorf("sign out: %w", err)
	}
	return nil
}

// Profile читает строку профиля по id пользователя через сервисный ключ.
func (c *Client) Profile(ctx context.Context, userID string) (*entities.UserProfile, error) {
	query := url.Values{}
	query.Set("id", "eq."+userID)
	query.Set("select", "*")

	var rows []wireProfile
	if err := c.do(ctx, http.MethodGet, "/rest/v1/user_profiles", query, c.cfg.ServiceKey, nil, &rows); err != nil {
		return nil, fmt.Errorf("fetch profile: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrProfileNotFound
	}

	profile := toProfile(rows[0])
	return &profile, nil
}

// UpdateProfileRole правит роль (и компанию) в строке профиля.
// Используется корректирующим шагом после создания аккаунта: триггер
// identity store выставляет роль не всегда синхронно.
func (c *Client) UpdateProfileRole(ctx context.Context, userID string, role entities.Role, companyName string) error {
	query := url.Values{}
	query.Set("id", "eq."+userID)

	in := map[string]string{
		"role": role.String(),
	}
	if companyName != "" {
		in["company_name"] = companyName
	}

	if err := c.do(ctx, http.MethodPatch, "/rest/v1/user_profiles", query, c.cfg.ServiceKey, in, nil); err != nil {
		return fmt.Errorf("update profile role: %w", err)
	}
	return nil
}

// ListProfiles возвращает все строки профилей (только сервисный ключ).
func (c *Client) ListProfiles(ctx context.Context) ([]entities.UserProfile, error) {
	query := url.Values{}
	query.Set("select", "*")
	query.Set("order", "created_at.desc")

	var rows []wireProfile
	if err := c.do(ctx, http.MethodGet, "/rest/v1/user_profiles", query, c.cfg.ServiceKey, nil, &rows); err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}

	profiles := make([]entities.UserProfile, 0, len(rows))
	for _, row := range rows {
		profiles = append(profiles, toProfile(row))
	}
	return profiles, nil
}

// DeleteUser удаляет пользователя привилегированным вызовом.
func (c *Client) DeleteUser(ctx context.Context, userID string) error {
	path := "/auth/v1/admin/users/" + url.PathEscape(userID)
	if err := c.do(ctx, http.MethodDelete, path, nil, c.cfg.ServiceKey, nil, nil); err != nil {
		return fmt.Errorf("delete user %s: %w", userID, err)
	}
	return nil
}
