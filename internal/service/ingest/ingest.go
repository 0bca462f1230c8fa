package ingest

import (
	"context"
	"io"
	"path/filepath"
	"strings"
	"time"

	"foxboard/internal/entities"
	"foxboard/internal/service/query"
	"foxboard/pkg/logger"
)

const (
	// clearPhrase - фраза-подтверждение полной очистки базы,
	// сравнивается без учета регистра.
	clearPhrase = "clear data"

	defaultStatusDelay     = time.Second
	defaultDependentsDelay = 500 * time.Millisecond
)

// dependentKeys - ресурсы, производные от содержимого базы. Сбрасываются
// второй волной после статуса.
var dependentKeys = []query.Key{
	query.KeyRecords,
	query.KeyRecordsHybrid,
	query.KeyMetrics,
	query.KeyCompanies,
	query.KeyDrivers,
	query.KeyLocations,
	query.KeyTemporal,
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Config struct {
	// StatusDelay - пауза перед сбросом статуса после загрузки: бэкенд
	// коммитит асинхронно, мгновенный сброс прочтет старое состояние.
	StatusDelay time.Duration
	// DependentsDelay - добавочная пауза перед второй волной сброса.
	DependentsDelay time.Duration
}

// Ingest - пишущая сторона: загрузка таблиц и очистка базы, с
// каскадным сбросом кеша после каждой мутации. Мутации не повторяются
// автоматически, решение о повторе остается за вызывающим.
type Ingest struct {
	log     handlerLogger
	gateway Gateway
	cache   Invalidator

	statusDelay     time.Duration
	dependentsDelay time.Duration

	// sleep подменяется в тестах.
	sleep func(time.Duration)
}

func New(log handlerLogger, gateway Gateway, cache Invalidator, config Config) *Ingest {
	if config.StatusDelay <= 0 {
		config.StatusDelay = defaultStatusDelay
	}
	if config.DependentsDelay <= 0 {
		config.DependentsDelay = defaultDependentsDelay
	}

	return &Ingest{
		log:             log.With(),
		gateway:         gateway,
		cache:           cache,
		statusDelay:     config.StatusDelay,
		dependentsDelay: config.DependentsDelay,
		sleep:           time.Sleep,
	}
}

// UploadSpreadsheet отправляет xlsx-файл на бэкенд и, в случае успеха,
// запускает отложенный каскадный сброс кеша. Возвращается сразу после
// ответа бэкенда, не дожидаясь сброса.
func (i *Ingest) UploadSpreadsheet(ctx context.Context, filename string, file io.Reader) (*entities.UploadResult, error) {
	if !strings.EqualFold(filepath.Ext(filename), ".xlsx") {
		return nil, ErrUnsupportedFile
	}

	result, err := i.gateway.Upload(ctx, filename, file)
	if err != nil {
		return nil, err
	}

	i.log.Info("spreadsheet uploaded",
		logger.NewField("file", filename),
		logger.NewField("inserted", result.Inserted),
		logger.NewField("duplicates_skipped", result.DuplicatesSkipped),
	)

	go i.invalidateAfterUpload()

	return result, nil
}

// invalidateAfterUpload сбрасывает кеш двумя волнами: сперва статус,
// он гейтит остальные ресурсы, затем производные ресурсы.
func (i *Ingest) invalidateAfterUpload() {
	i.sleep(i.statusDelay)
	i.cache.Invalidate(query.KeyStatus)

	i.sleep(i.dependentsDelay)
	i.cache.Invalidate(dependentKeys...)
	i.cache.InvalidatePrefix(query.KeyCompanyMetrics)
}

// ClearDatabase полностью очищает базу на бэкенде. Требует фразу
// подтверждения, после успеха оптимистично обнуляет локальные данные.
func (i *Ingest) ClearDatabase(ctx context.Context, confirmation string) (*entities.ClearResult, error) {
	if !strings.EqualFold(strings.TrimSpace(confirmation), clearPhrase) {
		return nil, ErrConfirmationMismatch
	}

	result, err := i.gateway.ClearDatabase(ctx)
	if err != nil {
		return nil, err
	}

	i.log.Info("database cleared", logger.NewField("removed", result.Removed))

	// Тяжелые ресурсы обнуляем не дожидаясь перечитывания, статус и
	// агрегаты перечитаются с бэкенда.
	i.cache.Put(query.KeyRecords, &entities.RecordSet{})
	i.cache.Put(query.KeyRecordsHybrid, &entities.RecordSet{})
	i.cache.Put(query.KeyMetrics, &entities.DashboardMetrics{})

	i.cache.Invalidate(
		query.KeyStatus,
		query.KeyCompanies,
		query.KeyDrivers,
		query.KeyLocations,
		query.KeyTemporal,
	)
	i.cache.InvalidatePrefix(query.KeyCompanyMetrics)

	return result, nil
}
