package analytics

import (
	"time"

	"foxboard/internal/entities"
)

var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

func parseTimestamp(s string) *time.Time {
	if s == "" {
		return nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

func toDomainRecord(w wireRecord) entities.DeliveryRecord {
	return entities.DeliveryRecord{
		ID:               w.ID,
		JobID:            w.JobID,
		InvoiceID:        w.InvoiceID,
		InvoiceNumber:    w.InvoiceNumber,
		Priority:         w.Priority,
		CustomerName:     w.CustomerName,
		CompanyName:      w.CompanyName,
		CollectingDriver: w.CollectingDriver,
		DeliveringDriver: w.DeliveringDriver,
		PickupAddress:    w.PickupAddress,
		DeliveryAddress:  w.DeliveryAddress,
		ServiceType:      w.ServiceType,
		Cost:             w.Cost,
		TipAmount:        w.TipAmount,
		Commission:       w.CourierCommission,
		CommissionVAT:    w.CommissionVAT,
		Status:           w.Status,
		SubmittedAt:      parseTimestamp(w.SubmittedAt),
		AcceptedAt:       parseTimestamp(w.AcceptedAt),
		CollectedAt:      parseTimestamp(w.CollectedAt),
		DeliveredAt:      parseTimestamp(w.DeliveredAt),
		CanceledAt:       parseTimestamp(w.CanceledAt),
		DriverNotes:      w.DriverNotes,
		ReturnJob:        w.ReturnJob,
		PaymentMethod:    w.PaymentMethod,
		FuelSurcharge:    w.FuelSurcharge,
		UploadedAt:       parseTimestamp(w.UploadedAt),
		UploadedBy:       w.UploadedBy,

		CollectionMinutes: w.CollectionMinutes,
		DeliveryMinutes:   w.DeliveryMinutes,
		ExperienceMinutes: w.ExperienceMinutes,
	}
}

// items возвращает записи страницы независимо от того, в каком из двух
// исторических полей бэкенд их прислал.
func (p recordPage) items() []wireRecord {
	if len(p.Dados) > 0 {
		return p.Dados
	}
	return p.Data
}

func toDomainMetrics(w wireDashboardMetrics) *entities.DashboardMetrics {
	m := &entities.DashboardMetrics{
		TotalDeliveries: int(w.Metrics.TotalDeliveries.Value),
		ExperienceMinutes: entities.MetricSample{
			Value:   w.Metrics.CustomerExperience.Value,
			Samples: w.Metrics.CustomerExperience.Samples,
		},
		CollectionMinutes: entities.MetricSample{
			Value:   w.Metrics.CollectionTime.Value,
			Samples: w.Metrics.CollectionTime.Samples,
		},
		DeliveryMinutes: entities.MetricSample{
			Value:   w.Metrics.AverageDeliveryTime.Value,
			Samples: w.Metrics.AverageDeliveryTime.Samples,
		},
		TotalCommission: w.Metrics.TotalCourierCommission.Value,
		ActiveDrivers:   int(w.Metrics.ActiveDrivers.Value),
		ActiveCompanies: int(w.Metrics.ActiveCompanies.Value),
		TotalDistance:   w.Metrics.TotalDistance.Value,
		Completion: entities.CompletionStatus{
			Percent:   w.Metrics.DeliveryCompletion.Value,
			Completed: w.Metrics.DeliveryCompletion.Completed,
			Total:     w.Metrics.DeliveryCompletion.Total,
		},
		AnalyzedRecords: w.Metadata.TotalRecordsAnalyzed,
		DatabaseRecords: w.Metadata.TotalRecordsDatabase,
	}

	if ts := parseTimestamp(w.Timestamp); ts != nil {
		m.Timestamp = *ts
	}

	for _, d := range w.TopDrivers {
		m.TopDrivers = append(m.TopDrivers, entities.TopDriver{
			Rank:       d.Rank,
			Name:       d.Name,
			Deliveries: d.Deliveries,
		})
	}

	return m
}

// toDomainLegacyMetrics приводит легаси-формат к каноническому.
// Таймстемпа в легаси-ответе нет, берем момент получения.
func toDomainLegacyMetrics(w wireLegacyMetrics) *entities.DashboardMetrics {
	return &entities.DashboardMetrics{
		Timestamp:       time.Now().UTC(),
		TotalDeliveries: w.MetricasPrincipais.TotalDeliveries,
		ExperienceMinutes: entities.MetricSample{
			Value:   deref(w.Medias.CustomerExperience),
			Samples: w.EstatisticasDetalhadas.CustomerExperience.Amostras,
		},
		CollectionMinutes: entities.MetricSample{
			Value:   deref(w.Medias.CollectionTime),
			Samples: w.EstatisticasDetalhadas.CollectionTime.Amostras,
		},
		DeliveryMinutes: entities.MetricSample{
			Value:   deref(w.Medias.DeliveryTime),
			Samples: w.EstatisticasDetalhadas.DeliveryTime.Amostras,
		},
		TotalCommission: w.MetricasPrincipais.TotalCourierCommission,
		ActiveDrivers:   w.MetricasPrincipais.ActiveDrivers,
		TotalDistance:   w.MetricasPrincipais.TotalDistance,
		Completion: entities.CompletionStatus{
			Percent:   w.AnaliseStatus.TaxaSucesso.Percentual,
			Completed: w.AnaliseStatus.ResumoQuantitativo.EntregasConcluidas,
			Total:     w.AnaliseStatus.ResumoQuantitativo.TotalEntregas,
		},
		AnalyzedRecords: w.AnaliseStatus.ResumoQuantitativo.TotalEntregas,
	}
}

func deref(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

func toDomainStatus(w wireStatus) *entities.StatusInfo {
	return &entities.StatusInfo{
		Connected:       w.BancoConectado,
		DatabaseRecords: w.TotalRegistrosBanco,
		MemoryRecords:   w.TotalRegistrosMemoria,
		DatabaseURL:     w.URLBanco,
		LastUpload:      w.UltimoUpload,
		Err:             w.Erro,
	}
}

func toDomainCompany(w wireCompany) entities.CompanyStats {
	return entities.CompanyStats{
		Name:              w.Nome,
		TotalOrders:       w.TotalPedidos,
		PickupLocations:   w.LocalizacoesPickup,
		TotalLocations:    w.TotalLocalizacoes,
		MostCommonAddress: w.EnderecoMaisComum,
		TotalDeliveries:   w.TotalEntregas,
	}
}

func toDomainCompanyReport(w wireCompanies) *entities.CompanyReport {
	report := &entities.CompanyReport{
		TotalCompanies: w.TotalEmpresas,
		TotalOrders:    w.TotalPedidos,
		Source:         w.Fonte,
	}
	if w.EmpresaMaisAtiva != nil {
		mostActive := toDomainCompany(*w.EmpresaMaisAtiva)
		report.MostActive = &mostActive
	}
	for _, c := range w.Empresas {
		report.Companies = append(report.Companies, toDomainCompany(c))
	}
	return report
}

func toDomainDriver(w wireDriver) entities.DriverActivity {
	return entities.DriverActivity{
		Name:        w.Nome,
		Collections: w.EntregasColeta,
		Deliveries:  w.EntregasEntrega,
		Total:       w.TotalEntregas,
	}
}

func toDomainDriverReport(w wireDrivers) *entities.DriverReport {
	report := &entities.DriverReport{
		TotalDrivers:     w.TotalEntregadores,
		TotalDeliveries:  w.TotalEntregas,
		AveragePerDriver: w.MediaEntregasPorEntregador,
		Source:           w.Fonte,
	}
	if w.EntregadorMaisAtivo != nil {
		mostActive := toDomainDriver(*w.EntregadorMaisAtivo)
		report.MostActive = &mostActive
	}
	for _, d := range w.Entregadores {
		report.Drivers = append(report.Drivers, toDomainDriver(d))
	}
	return report
}

func toDomainLocationReport(w wireLocations) *entities.LocationReport {
	report := &entities.LocationReport{
		TotalLocations:  w.TotalLocalizacoes,
		TotalDeliveries: w.TotalEntregas,
		Source:          w.Fonte,
	}
	if w.LocalizacaoMaisComum != nil {
		report.MostCommon = &entities.DeliveryLocation{
			Address:         w.LocalizacaoMaisComum.Endereco,
			TotalDeliveries: w.LocalizacaoMaisComum.TotalEntregas,
		}
	}
	for _, l := range w.Localizacoes {
		report.Locations = append(report.Locations, entities.DeliveryLocation{
			Address:         l.Endereco,
			TotalDeliveries: l.TotalEntregas,
		})
	}
	return report
}

func toDomainTemporalReport(w wireTemporal) *entities.TemporalReport {
	a := w.AnaliseTemporal
	report := &entities.TemporalReport{
		Source:         w.Fonte,
		AnalyzedOrders: a.TotalPedidosAnalisados,
		DistinctTimes:  a.TotalHorariosDiferentes,
		IntervalCount:  a.TotalIntervalos30Min,
	}
	if a.HorarioMaisMovimentado != nil {
		report.BusiestMoment = &entities.PeakMoment{
			At:     a.HorarioMaisMovimentado.DataHora,
			Orders: a.HorarioMaisMovimentado.QuantidadePedidos,
		}
	}
	for _, p := range a.PedidosPorDatetime {
		report.OrdersByMoment = append(report.OrdersByMoment, entities.PeakMoment{
			At:     p.DataHora,
			Orders: p.QuantidadePedidos,
		})
	}
	for _, i := range a.Top10Intervalos30Min {
		report.TopIntervals = append(report.TopIntervals, entities.TimeInterval{
			Center:      i.IntervaloCentro,
			Start:       i.IntervaloInicio,
			End:         i.IntervaloFim,
			Orders:      i.QuantidadePedidos,
			Description: i.Descricao,
			Weekday:     i.DiaSemana,
			DayPeriod:   i.PeriodoDoDia,
		})
	}
	return report
}

func toDomainRangeStat(w wireRangeStat) entities.MetricRange {
	return entities.MetricRange{
		Mean:    w.MediaMinutos,
		Min:     w.MinimoMinutos,
		Max:     w.MaximoMinutos,
		Samples: w.AmostrasValidas,
	}
}

func toDomainCompanyMetrics(w wireCompanyMetrics) *entities.CompanyMetrics {
	return &entities.CompanyMetrics{
		Company:           w.Empresa,
		TotalDeliveries:   w.TotalDeliveries,
		CollectionMinutes: toDomainRangeStat(w.CollectionTime),
		DeliveryMinutes:   toDomainRangeStat(w.DeliveryTime),
		ExperienceMinutes: toDomainRangeStat(w.CustomerExperience),
		DelayedOrders: entities.DelayedOrders{
			Total:       w.DelayedOrders.Total,
			Percent:     w.DelayedOrders.Percentual,
			Criteria:    w.DelayedOrders.Criterio,
			WithMetrics: w.DelayedOrders.TotalComMetricas,
		},
	}
}

func toDomainUploadResult(w wireUploadResult) *entities.UploadResult {
	return &entities.UploadResult{
		Message:           w.Mensagem,
		File:              w.Arquivo,
		TotalRecords:      w.TotalRegistros,
		Inserted:          w.RegistrosInseridos,
		DuplicatesSkipped: w.DuplicatasEvitadas,
		SavedToDatabase:   w.SalvoNoBanco,
	}
}

func toDomainClearResult(w wireClearResult) *entities.ClearResult {
	return &entities.ClearResult{
		Message: w.Mensagem,
		Removed: w.RegistrosRemovidos,
	}
}
