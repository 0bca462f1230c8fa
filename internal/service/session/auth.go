package session

import (
	"context"

	"foxboard/internal/entities"
	"foxboard/internal/pkg/tokenstore"
	"foxboard/pkg/logger"
)

const minPasswordLength = 6

// RegisterInput - данные формы регистрации; проверяются до любого
// сетевого вызова.
type RegisterInput struct {
	Email           string
	Password        string
	ConfirmPassword string
	Name            string
	Role            entities.Role
	CompanyName     string
}

func (in RegisterInput) validate() error {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return ErrFieldsRequired
	}
	if !in.Role.Valid() {
		return ErrInvalidRole
	}
	if in.Role == entities.RoleCompany && in.CompanyName == "" {
		return ErrCompanyNameRequired
	}
	if in.Password != in.ConfirmPassword {
		return ErrPasswordMismatch
	}
	if len(in.Password) < minPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}

// Login проверяет учетные данные у identity-провайдера и переводит
// менеджер в авторизованное состояние.
func (m *Manager) Login(ctx context.Context, creds entities.Credentials) (*entities.AuthUser, error) {
	if creds.Email == "" || creds.Password == "" {
		return nil, ErrFieldsRequired
	}

	sess, err := m.identity.SignIn(ctx, creds.Email, creds.Password)
	if err != nil {
		return nil, err
	}

	if err := m.tokens.Save(ctx, m.config.TokenKey, tokenstore.Token{
		AccessToken:  sess.AccessToken,
		RefreshToken: sess.RefreshToken,
	}); err != nil {
		// Сессия уже получена, без durable-копии переживем.
		m.log.Warn("token not persisted", logger.NewField("error", err.Error()))
	}

	user := m.resolveProfile(ctx, &sess.User, sess.AccessToken)
	m.initialized.Store(true)
	m.setState(StateAuthenticated, user, sess.AccessToken)

	m.log.Info("user logged in",
		logger.NewField("user_id", user.ID),
		logger.NewField("role", user.Role.String()),
	)
	return user, nil
}

// Register создает пользователя. Профиль на стороне identity-провайдера
// пишется триггером с задержкой, поэтому итоговый пользователь собирается
// из входных данных, не из профиля.
func (m *Manager) Register(ctx context.Context, in RegisterInput) (*entities.AuthUser, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	sess, err := m.identity.SignUp(ctx, entities.Registration{
		Email:       in.Email,
		Password:    in.Password,
		Name:        in.Name,
		Role:        in.Role,
		CompanyName: in.CompanyName,
	})
	if err != nil {
		return nil, err
	}

	m.sleep(m.config.TriggerWait)

	user := &entities.AuthUser{
		ID:          sess.User.ID,
		Email:       in.Email,
		Name:        in.Name,
		Role:        in.Role,
		CompanyName: in.CompanyName,
	}

	// Провайдер мог сразу выдать сессию новому пользователю.
	if sess.AccessToken != "" {
		if err := m.tokens.Save(ctx, m.config.TokenKey, tokenstore.Token{
			AccessToken:  sess.AccessToken,
			RefreshToken: sess.RefreshToken,
		}); err != nil {
			m.log.Warn("token not persisted", logger.NewField("error", err.Error()))
		}
		m.initialized.Store(true)
		m.setState(StateAuthenticated, user, sess.AccessToken)
	}

	m.log.Info("user registered",
		logger.NewField("user_id", user.ID),
		logger.NewField("role", user.Role.String()),
	)
	return user, nil
}

// Logout завершает сессию. Недоступность identity-провайдера не мешает
// локальному разлогину.
func (m *Manager) Logout(ctx context.Context) error {
	m.mu.RLock()
	accessToken := m.accessToken
	m.mu.RUnlock()

	if accessToken != "" {
		if err := m.identity.SignOut(ctx, accessToken); err != nil {
			m.log.Warn("remote sign-out failed", logger.NewField("error", err.Error()))
		}
	}

	if err := m.tokens.Delete(ctx, m.config.TokenKey); err != nil {
		m.log.Warn("token not removed", logger.NewField("error", err.Error()))
	}

	m.initialized.Store(true)
	m.setState(StateAnonymous, nil, "")

	m.log.Info("user logged out")
	return nil
}
