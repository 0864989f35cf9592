package dto

// DashboardKPIs are the headline totals over the filtered window. Revenue
// is in integer minor units; the gross figure falls back to a row's net
// total when its gross is unset.
type DashboardKPIs struct {
	TotalRevenueGross int64 `json:"total_revenue_gross"`
	TotalRevenueNet   int64 `json:"total_revenue_net"`
	TotalVAT          int64 `json:"total_vat"`
	JobCount          int   `json:"job_count"`
}

// MonthlyRevenue is gross revenue grouped by "YYYY-MM" period key.
type MonthlyRevenue struct {
	Month string `json:"month"`
	Value int64  `json:"value"`
}

// MechanicRevenue is gross revenue grouped by stored mechanic name.
type MechanicRevenue struct {
	Mechanic string `json:"mechanic"`
	Value    int64  `json:"value"`
}

// StatusCount is a job count per status, with its human-readable label.
type StatusCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// DailyJobs is a job count per creation date ("YYYY-MM-DD").
type DailyJobs struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// DashboardData is the aggregate response of the dashboard query.
type DashboardData struct {
	KPIs               DashboardKPIs     `json:"kpis"`
	RevenueByMonth     []MonthlyRevenue  `json:"revenue_by_month"`
	RevenueByMechanic  []MechanicRevenue `json:"revenue_by_mechanic"`
	StatusDistribution []StatusCount     `json:"status_distribution"`
	DailyJobs          []DailyJobs       `json:"daily_jobs"`
}
