package session

import (
	"context"

	"foxboard/internal/entities"
	"foxboard/pkg/logger"
)

// ListAllUsers возвращает все профили identity-провайдера.
func (m *Manager) ListAllUsers(ctx context.Context) ([]entities.AuthUser, error) {
	profiles, err := m.identity.ListProfiles(ctx)
	if err != nil {
		return nil, err
	}

	users := make([]entities.AuthUser, 0, len(profiles))
	for _, p := range profiles {
		users = append(users, entities.AuthUser{
			ID:          p.ID,
			Email:       p.Email,
			Name:        p.Name,
			Role:        p.Role,
			CompanyName: p.CompanyName,
		})
	}
	return users, nil
}

// CreateAdmin создает пользователя с ролью администратора.
func (m *Manager) CreateAdmin(ctx context.Context, in RegisterInput) (*entities.AuthUser, error) {
	in.Role = entities.RoleAdmin
	return m.createPrivileged(ctx, in)
}

// CreateCompanyAccount создает пользователя-компанию.
func (m *Manager) CreateCompanyAccount(ctx context.Context, in RegisterInput) (*entities.AuthUser, error) {
	in.Role = entities.RoleCompany
	return m.createPrivileged(ctx, in)
}

// createPrivileged создает пользователя и сверяет роль в его профиле.
// Профиль пишется триггером на стороне провайдера, и роль из метаданных
// регистрации доезжает не всегда: после паузы профиль перечитывается и,
// если роль не та, чинится корректирующим обновлением. Текущую сессию
// менеджера операция не трогает.
func (m *Manager) createPrivileged(ctx context.Context, in RegisterInput) (*entities.AuthUser, error) {
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

	m.verifyRole(ctx, sess.User.ID, in.Role, in.CompanyName)

	m.log.Info("privileged account created",
		logger.NewField("user_id", sess.User.ID),
		logger.NewField("role", in.Role.String()),
	)

	return &entities.AuthUser{
		ID:          sess.User.ID,
		Email:       in.Email,
		Name:        in.Name,
		Role:        in.Role,
		CompanyName: in.CompanyName,
	}, nil
}

// verifyRole перечитывает свежесозданный профиль и при расхождении роли
// выполняет корректирующее обновление. Неудача проверки не валит
// создание: пользователь уже существует.
func (m *Manager) verifyRole(ctx context.Context, userID string, want entities.Role, companyName string) {
	profile, err := m.identity.Profile(ctx, userID)
	if err == nil && profile.Role == want {
		return
	}

	if err != nil {
		m.log.Warn("created profile not readable yet",
			logger.NewField("user_id", userID),
			logger.NewField("error", err.Error()),
		)
	} else {
		m.log.Warn("created profile has wrong role",
			logger.NewField("user_id", userID),
			logger.NewField("got", profile.Role.String()),
			logger.NewField("want", want.String()),
		)
	}

	if err := m.identity.UpdateProfileRole(ctx, userID, want, companyName); err != nil {
		m.log.Error("corrective role update failed",
			logger.NewField("user_id", userID),
			logger.NewField("error", err.Error()),
		)
	}
}

// DeleteUser удаляет пользователя привилегированным вызовом провайдера.
func (m *Manager) DeleteUser(ctx context.Context, userID string) error {
	if err := m.identity.DeleteUser(ctx, userID); err != nil {
		return err
	}
	m.log.Info("user deleted", logger.NewField("user_id", userID))
	return nil
}
