package analytics

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"foxboard/internal/entities"
)

// RecordSource выбирает источник сырых записей на бэкенде.
type RecordSource string

const (
	SourceDatabase RecordSource = "database"
	SourceHybrid   RecordSource = "hybrid"
)

func (s RecordSource) path() string {
	if s == SourceHybrid {
		return "/dados-hibrido"
	}
	return "/dados-banco"
}

// Liveness проверяет корневой эндпоинт бэкенда.
func (g *Gateway) Liveness(ctx context.Context) error {
	return g.getJSON(ctx, "/", nil, nil)
}

// Status возвращает связность базы и счетчики записей.
func (g *Gateway) Status(ctx context.Context) (*entities.StatusInfo, error) {
	var w wireStatus
	if err := g.getJSON(ctx, "/status-banco", nil, &w); err != nil {
		return nil, fmt.Errorf("fetch status: %w", err)
	}
	return toDomainStatus(w), nil
}

// RecordsPage запрашивает одну страницу сырых записей.
func (g *Gateway) RecordsPage(ctx context.Context, source RecordSource, limit, offset int) (*entities.RecordSet, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	query.Set("offset", strconv.Itoa(offset))

	var page recordPage
	if err := g.getJSON(ctx, source.path(), query, &page); err != nil {
		return nil, fmt.Errorf("fetch records page at offset %d: %w", offset, err)
	}

	set := &entities.RecordSet{
		Total:  page.TotalRegistros,
		Source: page.Fonte,
	}
	for _, w := range page.items() {
		set.Records = append(set.Records, toDomainRecord(w))
	}
	return set, nil
}

// Metrics возвращает агрегированные метрики в каноническом виде.
// Бэкенд отвечает одним из двух форматов, различаем по наличию ключа
// "metrics"; легаси-форма приводится адаптером на этой границе.
// При 404 на /dashboard-metrics пробуем легаси-маршрут.
func (g *Gateway) Metrics(ctx context.Context) (*entities.DashboardMetrics, error) {
	raw, err := g.rawJSON(ctx, "/dashboard-metrics")
	if errors.Is(err, ErrNotFound) {
		raw, err = g.rawJSON(ctx, "/metricas-resumo-banco")
	}
	if err != nil {
		return nil, fmt.Errorf("fetch metrics: %w", err)
	}
	return decodeMetrics(raw)
}

func decodeMetrics(raw []byte) (*entities.DashboardMetrics, error) {
	var probe struct {
		Metrics json.RawMessage `json:"metrics"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, fmt.Errorf("decode metrics: %w", err)
	}

	if len(probe.Metrics) > 0 {
		var w wireDashboardMetrics
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, fmt.Errorf("decode metrics: %w", err)
		}
		return toDomainMetrics(w), nil
	}

	var legacy wireLegacyMetrics
	if err := json.Unmarshal(raw, &legacy); err != nil {
		return nil, fmt.Errorf("decode legacy metrics: %w", err)
	}
	return toDomainLegacyMetrics(legacy), nil
}

// Companies возвращает серверную агрегацию по компаниям.
func (g *Gateway) Companies(ctx context.Context) (*entities.CompanyReport, error) {
	var w wireCompanies
	if err := g.getJSON(ctx, "/empresas", nil, &w); err != nil {
		return nil, fmt.Errorf("fetch companies: %w", err)
	}
	return toDomainCompanyReport(w), nil
}

// Drivers возвращает серверную агрегацию по водителям.
func (g *Gateway) Drivers(ctx context.Context) (*entities.DriverReport, error) {
	var w wireDrivers
	if err := g.getJSON(ctx, "/entregadores", nil, &w); err != nil {
		return nil, fmt.Errorf("fetch drivers: %w", err)
	}
	return toDomainDriverReport(w), nil
}

// Locations возвращает агрегацию по адресам доставки.
func (g *Gateway) Locations(ctx context.Context) (*entities.LocationReport, error) {
	var w wireLocations
	if err := g.getJSON(ctx, "/localizacoes-entrega", nil, &w); err != nil {
		return nil, fmt.Errorf("fetch locations: %w", err)
	}
	return toDomainLocationReport(w), nil
}

// Temporal возвращает анализ спроса по времени суток.
func (g *Gateway) Temporal(ctx context.Context) (*entities.TemporalReport, error) {
	var w wireTemporal
	if err := g.getJSON(ctx, "/analise-temporal", nil, &w); err != nil {
		return nil, fmt.Errorf("fetch temporal analysis: %w", err)
	}
	return toDomainTemporalReport(w), nil
}

// CompanyMetrics возвращает детальные метрики одной компании.
func (g *Gateway) CompanyMetrics(ctx context.Context, company string) (*entities.CompanyMetrics, error) {
	query := url.Values{}
	query.Set("empresa", company)

	var w wireCompanyMetrics
	if err := g.getJSON(ctx, "/empresa-metricas", query, &w); err != nil {
		return nil, fmt.Errorf("fetch company metrics for %q: %w", company, err)
	}
	return toDomainCompanyMetrics(w), nil
}

// Upload отправляет файл таблицы как multipart form data.
// Валидация содержимого - зона ответственности бэкенда.
func (g *Gateway) Upload(ctx context.Context, filename string, file io.Reader) (*entities.UploadResult, error) {
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		part, err := mw.CreateFormFile("file", filename)
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, file); err != nil {
			pw.CloseWithError(err)
			return
		}
		pw.CloseWithError(mw.Close())
	}()

	var w wireUploadResult
	err := g.do(ctx, http.MethodPost, "/upload", nil, pr, mw.FormDataContentType(), &w)
	if err != nil {
		return nil, fmt.Errorf("upload %q: %w", filename, err)
	}
	return toDomainUploadResult(w), nil
}

// ClearDatabase полностью очищает базу записей на бэкенде.
func (g *Gateway) ClearDatabase(ctx context.Context) (*entities.ClearResult, error) {
	var w wireClearResult
	if err := g.do(ctx, http.MethodDelete, "/limpar-banco", nil, nil, "", &w); err != nil {
		return nil, fmt.Errorf("clear database: %w", err)
	}
	return toDomainClearResult(w), nil
}
