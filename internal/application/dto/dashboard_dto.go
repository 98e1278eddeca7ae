package dto

// DashboardSummary métricas agregadas para el mes seleccionado y su año.
type DashboardSummary struct {
	Month           string  `json:"month"` // "YYYY-MM"
	TotalCustomers  int     `json:"totalCustomers"`
	MonthlyShoots   int     `json:"monthlyShoots"`
	MonthlyRevenue  float64 `json:"monthlyRevenue"`
	MonthlyExpenses float64 `json:"monthlyExpenses"`
	MonthlyProfit   float64 `json:"monthlyProfit"`
	YearlyRevenue   float64 `json:"yearlyRevenue"`
	YearlyExpenses  float64 `json:"yearlyExpenses"`
	YearlyProfit    float64 `json:"yearlyProfit"`
	PendingTasks    int     `json:"pendingTasks"`
	UnpaidCustomers int     `json:"unpaidCustomers"`
}
