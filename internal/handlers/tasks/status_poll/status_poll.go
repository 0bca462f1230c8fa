package status_poll

import (
	"context"
	"time"

	"foxboard/internal/entities"
	"foxboard/pkg/logger"
)

type Service interface {
	Status(ctx context.Context) (*entities.StatusInfo, error)
}

// StatusPoll периодически обновляет статус бэкенда, чтобы кеш статуса
// не протухал между запросами пользователей.
type StatusPoll struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewStatusPoll(log logger.Logger, service Service, interval time.Duration) *StatusPoll {
	return &StatusPoll{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (s *StatusPoll) TTL() time.Duration {
	return s.interval
}

func (s *StatusPoll) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	status, err := s.service.Status(ctxWithTimeout)
	if err != nil {
		// Статус недоступен - не причина ронять воркер, бэкенд мог
		// просто перезапускаться.
		s.log.With(
			logger.NewField("error", err),
		).Warn("status poll failed")
		return nil
	}

	s.log.With(
		logger.NewField("connected", status.Connected),
		logger.NewField("database_records", status.DatabaseRecords),
	).Debug("status poll")

	return nil
}

func (s *StatusPoll) Info() string {
	return "backend status poll"
}
