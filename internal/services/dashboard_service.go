package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/dmstancu/workshop-api/internal/dto"
	"github.com/dmstancu/workshop-api/internal/models"
	"github.com/dmstancu/workshop-api/internal/repository"
)

const dateLayout = "2006-01-02"

// DashboardService aggregates a workshop's work-order history into the
// dashboard metrics.
type DashboardService struct {
	orderRepo repository.WorkOrderRepository
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(orderRepo repository.WorkOrderRepository) *DashboardService {
	return &DashboardService{orderRepo: orderRepo}
}

// DashboardFilters are the raw, optional filter inputs. Set filters are
// ORed within themselves and ANDed across dimensions. Dates use the
// "2006-01-02" layout; an unparseable date drops that bound rather than
// failing the query. End is inclusive of its whole day.
type DashboardFilters struct {
	MechanicNames []string
	Statuses      []string
	Start         string
	End           string
}

// Query selects the workshop's work orders matching the filters and
// computes all metric groups in one pass.
func (s *DashboardService) Query(workshopID uint64, filters DashboardFilters) (*dto.DashboardData, error) {
	filter := repository.WorkOrderFilter{
		WorkshopID:    workshopID,
		MechanicNames: filters.MechanicNames,
		Statuses:      filters.Statuses,
	}

	if filters.Start != "" {
		if from, err := time.Parse(dateLayout, filters.Start); err == nil {
			filter.DataFrom = &from
		}
	}
	if filters.End != "" {
		if end, err := time.Parse(dateLayout, filters.End); err == nil {
			// Include the whole end day: exclusive bound at end + 1 day.
			to := end.AddDate(0, 0, 1)
			filter.DataTo = &to
		}
	}

	orders, err := s.orderRepo.Query(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query work orders: %w", err)
	}

	return aggregate(orders), nil
}

func aggregate(orders []models.WorkOrder) *dto.DashboardData {
	data := &dto.DashboardData{
		RevenueByMonth:     []dto.MonthlyRevenue{},
		RevenueByMechanic:  []dto.MechanicRevenue{},
		StatusDistribution: []dto.StatusCount{},
		DailyJobs:          []dto.DailyJobs{},
	}

	byMonth := make(map[string]int64)
	byMechanic := make(map[string]int64)
	byStatus := make(map[models.WorkOrderStatus]int)
	byDay := make(map[string]int)

	for _, order := range orders {
		gross := order.TotalGross
		if gross == 0 {
			gross = order.TotalNet
		}
		data.KPIs.TotalRevenueGross += gross
		data.KPIs.TotalRevenueNet += order.TotalNet
		data.KPIs.TotalVAT += order.VATAmount

		byMonth[order.Data.Format("2006-01")] += order.TotalGross
		byMechanic[order.MechanicName] += order.TotalGross
		byStatus[order.Status]++
		byDay[order.Data.Format(dateLayout)]++
	}
	data.KPIs.JobCount = len(orders)

	for _, month := range sortedKeys(byMonth) {
		data.RevenueByMonth = append(data.RevenueByMonth, dto.MonthlyRevenue{Month: month, Value: byMonth[month]})
	}
	for _, mechanic := range sortedKeys(byMechanic) {
		data.RevenueByMechanic = append(data.RevenueByMechanic, dto.MechanicRevenue{Mechanic: mechanic, Value: byMechanic[mechanic]})
	}
	for status, count := range byStatus {
		data.StatusDistribution = append(data.StatusDistribution, dto.StatusCount{Label: models.StatusLabel(status), Count: count})
	}
	sort.Slice(data.StatusDistribution, func(i, j int) bool {
		return data.StatusDistribution[i].Label < data.StatusDistribution[j].Label
	})
	for _, day := range sortedKeys(byDay) {
		data.DailyJobs = append(data.DailyJobs, dto.DailyJobs{Date: day, Count: byDay[day]})
	}

	return data
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
