package dashboard

import (
	"sort"
	"strings"

	"foxboard/internal/entities"
)

// successStatuses - статусы, которые считаем успешной доставкой.
// Бэкенд присылает вперемешку английские и португальские варианты.
var successStatuses = map[string]struct{}{
	"delivered": {},
	"completed": {},
	"finished":  {},
	"done":      {},
	"entregue":  {},
	"concluído": {},
	"concluido": {},
}

type driverAccumulator struct {
	deliveries int
	revenue    float64
	successful int
	durations  []float64
}

// ComputeDriverStats агрегирует сырые записи по водителям.
// Водитель берется из collecting, при его отсутствии - из delivering;
// записи без водителя и с заглушкой "n/a" пропускаются. Результат
// отсортирован по числу доставок по убыванию.
func ComputeDriverStats(records []entities.DeliveryRecord) []entities.DriverStats {
	acc := make(map[string]*driverAccumulator)
	order := make([]string, 0)

	for _, rec := range records {
		driver := rec.CollectingDriver
		if driver == "" {
			driver = rec.DeliveringDriver
		}
		if driver == "" || strings.EqualFold(driver, "n/a") {
			continue
		}

		stats, ok := acc[driver]
		if !ok {
			stats = &driverAccumulator{}
			acc[driver] = stats
			order = append(order, driver)
		}

		stats.deliveries++
		stats.revenue += rec.Cost

		if _, ok := successStatuses[strings.ToLower(rec.Status)]; ok {
			stats.successful++
		}
		if rec.DeliveryMinutes != nil && *rec.DeliveryMinutes > 0 {
			stats.durations = append(stats.durations, *rec.DeliveryMinutes)
		}
	}

	result := make([]entities.DriverStats, 0, len(order))
	for _, driver := range order {
		stats := acc[driver]
		result = append(result, entities.DriverStats{
			DriverName:      driver,
			TotalDeliveries: stats.deliveries,
			TotalRevenue:    stats.revenue,
			SuccessRate:     ratio(stats.successful, stats.deliveries) * 100,
			AverageMinutes:  mean(stats.durations),
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].TotalDeliveries > result[j].TotalDeliveries
	})

	return result
}

// ComputeStatusDistribution считает долю каждого статуса среди записей.
// Статус "submitted" из распределения исключается, пустой статус
// попадает в корзину Unknown. Результат отсортирован по убыванию счетчика.
func ComputeStatusDistribution(records []entities.DeliveryRecord) []entities.StatusDistribution {
	counts := make(map[string]int)
	order := make([]string, 0)

	for _, rec := range records {
		status := rec.Status
		if status == "" {
			status = "Unknown"
		}
		if strings.EqualFold(status, "submitted") {
			continue
		}
		if _, ok := counts[status]; !ok {
			order = append(order, status)
		}
		counts[status]++
	}

	total := 0
	for _, count := range counts {
		total += count
	}

	result := make([]entities.StatusDistribution, 0, len(order))
	for _, status := range order {
		result = append(result, entities.StatusDistribution{
			Status:  status,
			Count:   counts[status],
			Percent: ratio(counts[status], total) * 100,
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Count > result[j].Count
	})

	return result
}

func ratio(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total)
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
