package analytics

import (
	"context"

	"foxboard/internal/entities"
	"foxboard/pkg/logger"
)

const (
	// pageSize фиксирован: бэкенд режет ответы, чтобы один гигантский
	// запрос не упирался в таймаут гейтвея.
	pageSize = 1000

	// maxEmptyPages - сколько подряд пустых (или упавших) страниц
	// считаем концом данных.
	maxEmptyPages = 3

	// maxPages - жесткий потолок, ~100 000 записей. Гарантия терминации
	// против бесконечно отвечающего бэкенда.
	maxPages = 100
)

// FetchAllRecords собирает полную логическую коллекцию из постраничных
// ответов. Страницы запрашиваются строго последовательно по возрастанию
// offset, порядок записей сохраняется.
//
// Короткая непустая страница НЕ завершает цикл: бэкенд может вернуть
// частичную страницу в середине выборки, дальше по offset данные еще есть.
// Подтверждаем конец только серией пустых страниц, одна лишняя итерация -
// принятая плата за корректность.
//
// Ошибка запроса учитывается как пустая страница: транзиентный сбой не
// должен ни оборвать сбор, ни зациклить его.
func (g *Gateway) FetchAllRecords(ctx context.Context, source RecordSource) (*entities.RecordSet, error) {
	result := &entities.RecordSet{}

	offset := 0
	emptyStreak := 0
	pagesFetched := 0

	for emptyStreak < maxEmptyPages && pagesFetched < maxPages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		page, err := g.RecordsPage(ctx, source, pageSize, offset)
		pagesFetched++
		PagesFetched.WithLabelValues(serviceName, source.path()).Inc()

		switch {
		case err != nil:
			emptyStreak++
			g.log.Warn("records page failed, counting as empty",
				logger.NewField("offset", offset),
				logger.NewField("empty_streak", emptyStreak),
				logger.NewField("error", err),
			)
		case len(page.Records) == 0:
			emptyStreak++
		default:
			emptyStreak = 0
			result.Records = append(result.Records, page.Records...)
			if page.Source != "" {
				result.Source = page.Source
			}
		}

		// offset двигается всегда, независимо от полноты страницы.
		offset += pageSize
	}

	result.Total = len(result.Records)
	return result, nil
}
