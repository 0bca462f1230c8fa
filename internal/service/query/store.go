package query

import (
	"context"
	"errors"
	"sync"
	"time"

	"foxboard/internal/gateway/analytics"
	"foxboard/pkg/logger"
	retrierconfig "foxboard/pkg/retrier"
	"foxboard/pkg/retrier/backoff_adapter"
	"golang.org/x/sync/singleflight"
)

// Key - стабильный идентификатор логического ресурса в кеше.
type Key string

const (
	KeyRecords        Key = "records"
	KeyRecordsHybrid  Key = "records-hybrid"
	KeyMetrics        Key = "metrics"
	KeyStatus         Key = "status"
	KeyCompanies      Key = "companies"
	KeyDrivers        Key = "drivers"
	KeyLocations      Key = "locations"
	KeyTemporal       Key = "temporal"
	KeyCompanyMetrics Key = "company-metrics" // с суффиксом имени компании
)

const (
	// DefaultStaleAfter - порог свежести агрегатных ресурсов.
	DefaultStaleAfter = 5 * time.Minute

	// StatusStaleAfter - статус связности устаревает быстро, им гейтятся
	// остальные ресурсы.
	StatusStaleAfter = 30 * time.Second
)

const (
	retryInitialInterval = 500 * time.Millisecond
	retryMaxInterval     = 3 * time.Second
	retryRandomization   = 0.5
	retryMultiplier      = 2.0

	// notFoundRetries - бюджет повторов для 404: бэкенд мог еще не
	// закоммитить асинхронную обработку. Остальные классы ошибок получают
	// один повтор.
	notFoundRetries = 3
	defaultRetries  = 1
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// FetchFunc загружает ресурс из внешнего источника.
type FetchFunc func(ctx context.Context) (interface{}, error)

type entry struct {
	data      interface{}
	fetchedAt time.Time
	attempts  int
	err       error
}

// Store - процессный кеш ресурсов дашборда: одна запись на ключ,
// staleness по TTL, дедупликация конкурентных загрузок через singleflight,
// политика повторов на загрузку. Между рестартами не переживает.
type Store struct {
	log     handlerLogger
	retrier func(shouldRetry retrierconfig.ShouldRetryFunc) retrierconfig.Retrier

	mu      sync.RWMutex
	entries map[Key]*entry
	group   singleflight.Group
}

func New(log handlerLogger) *Store {
	return &Store{
		log:     log.With(),
		entries: make(map[Key]*entry),
		retrier: func(shouldRetry retrierconfig.ShouldRetryFunc) retrierconfig.Retrier {
			return backoff_adapter.New(retrierconfig.Config{
				InitialInterval: retryInitialInterval,
				MaxInterval:     retryMaxInterval,
				Randomization:   retryRandomization,
				Multiplier:      retryMultiplier,
				ShouldRetry:     shouldRetry,
			})
		},
	}
}

// Resolve возвращает свежие данные ресурса, при необходимости загружая их.
// Конкурентные обращения к одному ключу складываются в один запрос.
func (s *Store) Resolve(ctx context.Context, key Key, staleAfter time.Duration, fetch FetchFunc) (interface{}, error) {
	if staleAfter <= 0 {
		staleAfter = DefaultStaleAfter
	}

	if data, ok := s.fresh(key, staleAfter); ok {
		HitsTotal.WithLabelValues(string(key)).Inc()
		return data, nil
	}
	MissesTotal.WithLabelValues(string(key)).Inc()

	data, err, _ := s.group.Do(string(key), func() (interface{}, error) {
		// Пока мы ждали очередь singleflight, запись могла обновиться.
		if data, ok := s.fresh(key, staleAfter); ok {
			return data, nil
		}
		return s.fetchWithRetry(ctx, key, fetch)
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *Store) fresh(key Key, staleAfter time.Duration) (interface{}, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[key]
	if !ok || e.err != nil {
		return nil, false
	}
	if time.Since(e.fetchedAt) > staleAfter {
		return nil, false
	}
	return e.data, true
}

func (s *Store) fetchWithRetry(ctx context.Context, key Key, fetch FetchFunc) (interface{}, error) {
	var (
		data     interface{}
		failures int
	)

	shouldRetry := func(err error) bool {
		failures++
		budget := defaultRetries
		if errors.Is(err, analytics.ErrNotFound) {
			budget = notFoundRetries
		}
		if failures > budget {
			return false
		}
		RetriesTotal.WithLabelValues(string(key)).Inc()
		return true
	}

	err := s.retrier(shouldRetry).ExecuteWithContext(ctx, func(ctx context.Context) error {
		var fetchErr error
		data, fetchErr = fetch(ctx)
		return fetchErr
	})

	s.mu.Lock()
	s.entries[key] = &entry{
		data:      data,
		fetchedAt: time.Now(),
		attempts:  failures + 1,
		err:       err,
	}
	s.mu.Unlock()

	if err != nil {
		s.log.Warn("resource fetch failed",
			logger.NewField("key", key),
			logger.NewField("attempts", failures+1),
			logger.NewField("error", err),
		)
		return nil, err
	}
	return data, nil
}

// Invalidate помечает ресурсы устаревшими: следующее обращение пойдет в сеть.
func (s *Store) Invalidate(keys ...Key) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range keys {
		if e, ok := s.entries[key]; ok {
			e.fetchedAt = time.Time{}
		}
	}
}

// InvalidatePrefix помечает устаревшими все ключи с данным префиксом
// (параметризованные ресурсы вроде метрик отдельной компании).
func (s *Store) InvalidatePrefix(prefix Key) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, e := range s.entries {
		if len(key) >= len(prefix) && key[:len(prefix)] == prefix {
			e.fetchedAt = time.Time{}
		}
	}
}

// Put перезаписывает запись локальным значением (оптимистичное обновление).
// Значение не авторитетно: последующий refetch его перетрет.
func (s *Store) Put(key Key, data interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = &entry{
		data:      data,
		fetchedAt: time.Now(),
	}
}

// Attempts возвращает число попыток последней загрузки ключа (для тестов
// и диагностики).
func (s *Store) Attempts(key Key) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if e, ok := s.entries[key]; ok {
		return e.attempts
	}
	return 0
}
