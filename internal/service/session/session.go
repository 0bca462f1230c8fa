package session

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"foxboard/internal/entities"
	"foxboard/internal/gateway/identity"
	"foxboard/internal/pkg/tokenstore"
	"foxboard/pkg/logger"
)

// State - фаза жизненного цикла сессии.
type State int

const (
	StateUninitialized State = iota
	StateLoading
	StateAuthenticated
	StateAnonymous
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateLoading:
		return "loading"
	case StateAuthenticated:
		return "authenticated"
	case StateAnonymous:
		return "anonymous"
	default:
		return "unknown"
	}
}

// Snapshot - согласованная пара состояния и пользователя, уходит подписчикам.
type Snapshot struct {
	State State
	User  *entities.AuthUser
}

const (
	defaultInitTimeout    = 3 * time.Second
	defaultInitAttempts   = 3
	defaultInitDelay      = 500 * time.Millisecond
	defaultProfileTimeout = 2 * time.Second
	defaultTriggerWait    = time.Second
	defaultTokenKey       = "auth-token"

	subscriberBuffer = 8
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Config struct {
	// InitTimeout - общий дедлайн инициализации, отдельный от таймаута
	// HTTP-слоя: авторизация не должна задерживать весь сервис.
	InitTimeout time.Duration
	// InitAttempts и InitDelay - повторы проверки сессии с фиксированной паузой.
	InitAttempts int
	InitDelay    time.Duration
	// ProfileTimeout - дедлайн на дочитывание профиля после подтверждения сессии.
	ProfileTimeout time.Duration
	// TriggerWait - пауза после создания пользователя: профиль пишет
	// триггер на стороне identity-провайдера, и пишет не мгновенно.
	TriggerWait time.Duration
	// TokenKey - фиксированный ключ токена в durable-хранилище.
	TokenKey string
}

func (c *Config) withDefaults() {
	if c.InitTimeout <= 0 {
		c.InitTimeout = defaultInitTimeout
	}
	if c.InitAttempts <= 0 {
		c.InitAttempts = defaultInitAttempts
	}
	if c.InitDelay <= 0 {
		c.InitDelay = defaultInitDelay
	}
	if c.ProfileTimeout <= 0 {
		c.ProfileTimeout = defaultProfileTimeout
	}
	if c.TriggerWait <= 0 {
		c.TriggerWait = defaultTriggerWait
	}
	if c.TokenKey == "" {
		c.TokenKey = defaultTokenKey
	}
}

// Manager - машина состояний сессии поверх identity-провайдера и
// durable-хранилища токенов. Единственное место в сервисе, где ошибка
// может быть заменена деградированным результатом: полностью потерять
// авторизацию хуже, чем временно доверять устаревшим данным.
type Manager struct {
	log      handlerLogger
	identity Identity
	tokens   TokenStore
	config   Config

	// initialized - латч "первый завершившийся побеждает": начальная
	// загрузка и внешние уведомления о смене сессии не должны дать два
	// разных перехода в initialized.
	initialized atomic.Bool

	mu          sync.RWMutex
	state       State
	user        *entities.AuthUser
	accessToken string
	subscribers map[int]chan Snapshot
	nextSub     int

	// sleep подменяется в тестах.
	sleep func(time.Duration)
}

func New(log handlerLogger, idp Identity, tokens TokenStore, config Config) *Manager {
	config.withDefaults()

	return &Manager{
		log:         log.With(),
		identity:    idp,
		tokens:      tokens,
		config:      config,
		state:       StateUninitialized,
		subscribers: make(map[int]chan Snapshot),
		sleep:       time.Sleep,
	}
}

// Snapshot возвращает текущее состояние и пользователя.
func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return Snapshot{State: m.state, User: m.user}
}

// CurrentUser возвращает пользователя активной сессии, nil для анонима.
func (m *Manager) CurrentUser() *entities.AuthUser {
	return m.Snapshot().User
}

// AccessToken возвращает токен активной сессии.
func (m *Manager) AccessToken() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.accessToken
}

// Subscribe подписывает на смены состояния. Возвращенная функция
// отписывает; медленный подписчик теряет уведомления, не блокируя менеджер.
func (m *Manager) Subscribe() (<-chan Snapshot, func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextSub
	m.nextSub++
	ch := make(chan Snapshot, subscriberBuffer)
	m.subscribers[id] = ch

	return ch, func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		if sub, ok := m.subscribers[id]; ok {
			delete(m.subscribers, id)
			close(sub)
		}
	}
}

// Init восстанавливает сессию по сохраненному токену. Сначала проверка
// у identity-провайдера с повторами, при недоступности - деградация до
// личности из claims токена. Ошибок наружу не отдает: худший исход -
// анонимное состояние.
func (m *Manager) Init(ctx context.Context) {
	if !m.initialized.Load() {
		m.setState(StateLoading, nil, "")
	}

	ctx, cancel := context.WithTimeout(ctx, m.config.InitTimeout)
	defer cancel()

	token, err := m.tokens.Load(ctx, m.config.TokenKey)
	if err != nil {
		if !errors.Is(err, tokenstore.ErrNotFound) {
			m.log.Warn("token store unavailable", logger.NewField("error", err.Error()))
		}
		m.completeInit(StateAnonymous, nil, "")
		return
	}

	user, err := m.checkSession(ctx, token.AccessToken)
	if err == nil {
		resolved := m.resolveProfile(ctx, user, token.AccessToken)
		m.completeInit(StateAuthenticated, resolved, token.AccessToken)
		return
	}

	if errors.Is(err, identity.ErrUnauthorized) {
		// Токен отозван, хранить его дальше незачем.
		if err := m.tokens.Delete(context.WithoutCancel(ctx), m.config.TokenKey); err != nil {
			m.log.Warn("stale token not removed", logger.NewField("error", err.Error()))
		}
		m.completeInit(StateAnonymous, nil, "")
		return
	}

	// Провайдер недоступен: восстанавливаем минимальную личность из
	// claims сохраненного токена вместо принудительного разлогина.
	claims, claimsErr := identity.ParseClaims(token.AccessToken)
	if claimsErr != nil {
		m.log.Warn("session check failed, token unusable",
			logger.NewField("check_error", err.Error()),
			logger.NewField("claims_error", claimsErr.Error()),
		)
		m.completeInit(StateAnonymous, nil, "")
		return
	}

	m.log.Warn("session check failed, degrading to token claims",
		logger.NewField("error", err.Error()),
	)
	m.completeInit(StateAuthenticated, userFromClaims(claims), token.AccessToken)
}

// checkSession опрашивает identity-провайдера с фиксированной паузой
// между попытками. ErrUnauthorized - окончательный ответ, не повторяется.
func (m *Manager) checkSession(ctx context.Context, accessToken string) (*identity.SessionUser, error) {
	var lastErr error
	for attempt := 1; attempt <= m.config.InitAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(err, lastErr)
		}

		user, err := m.identity.CurrentUser(ctx, accessToken)
		if err == nil {
			return user, nil
		}
		if errors.Is(err, identity.ErrUnauthorized) {
			return nil, err
		}

		lastErr = err
		m.log.Warn("session check attempt failed",
			logger.NewField("attempt", attempt),
			logger.NewField("error", err.Error()),
		)

		if attempt < m.config.InitAttempts {
			m.sleep(m.config.InitDelay)
		}
	}
	return nil, lastErr
}

// resolveProfile дочитывает профиль пользователя со своим коротким
// дедлайном; при неудаче откатывается на claims токена.
func (m *Manager) resolveProfile(ctx context.Context, user *identity.SessionUser, accessToken string) *entities.AuthUser {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), m.config.ProfileTimeout)
	defer cancel()

	profile, err := m.identity.Profile(ctx, user.ID)
	if err == nil {
		return &entities.AuthUser{
			ID:          profile.ID,
			Email:       profile.Email,
			Name:        profile.Name,
			Role:        profile.Role,
			CompanyName: profile.CompanyName,
		}
	}

	m.log.Warn("profile lookup failed, falling back to token claims",
		logger.NewField("user_id", user.ID),
		logger.NewField("error", err.Error()),
	)

	if claims, claimsErr := identity.ParseClaims(accessToken); claimsErr == nil {
		fallback := userFromClaims(claims)
		if fallback.Email == "" {
			fallback.Email = user.Email
		}
		if fallback.Name == "" {
			fallback.Name = user.Name
		}
		return fallback
	}

	return &entities.AuthUser{
		ID:          user.ID,
		Email:       user.Email,
		Name:        user.Name,
		Role:        user.Role,
		CompanyName: user.CompanyName,
	}
}

// ApplySessionChange принимает асинхронное уведомление о смене сессии
// (обновление токена, внешний разлогин). Если инициализация еще не
// завершилась, уведомление состязается с ней через латч.
func (m *Manager) ApplySessionChange(ctx context.Context, sess *identity.Session) {
	if sess == nil || sess.AccessToken == "" {
		m.initialized.Store(true)
		m.setState(StateAnonymous, nil, "")
		return
	}

	user := m.resolveProfile(ctx, &sess.User, sess.AccessToken)
	m.initialized.Store(true)
	m.setState(StateAuthenticated, user, sess.AccessToken)

	if err := m.tokens.Save(ctx, m.config.TokenKey, tokenstore.Token{
		AccessToken:  sess.AccessToken,
		RefreshToken: sess.RefreshToken,
	}); err != nil {
		m.log.Warn("token not persisted", logger.NewField("error", err.Error()))
	}
}

// completeInit применяет итог начальной загрузки только если латч еще
// не закрыт. Если внешнее уведомление о смене сессии успело раньше,
// его результат новее и не перетирается.
func (m *Manager) completeInit(state State, user *entities.AuthUser, accessToken string) {
	if !m.initialized.CompareAndSwap(false, true) {
		m.log.Info("init result discarded, session change arrived first")
		return
	}
	m.setState(state, user, accessToken)
}

// Initialized сообщает, завершился ли хотя бы один переход инициализации.
func (m *Manager) Initialized() bool {
	return m.initialized.Load()
}

func (m *Manager) setState(state State, user *entities.AuthUser, accessToken string) {
	m.mu.Lock()
	m.state = state
	m.user = user
	m.accessToken = accessToken
	snapshot := Snapshot{State: state, User: user}
	subs := make([]chan Snapshot, 0, len(m.subscribers))
	for _, sub := range m.subscribers {
		subs = append(subs, sub)
	}
	m.mu.Unlock()

	for _, sub := range subs {
		select {
		case sub <- snapshot:
		default:
		}
	}
}

func userFromClaims(claims *identity.TokenClaims) *entities.AuthUser {
	return &entities.AuthUser{
		ID:          claims.Subject,
		Email:       claims.Email,
		Name:        claims.Name,
		Role:        claims.Role,
		CompanyName: claims.CompanyName,
	}
}
