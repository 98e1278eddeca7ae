package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/jhoicas/PhotoCRM-api/internal/application/dto"
	"github.com/jhoicas/PhotoCRM-api/internal/domain/repository"
)

// DashboardUseCase métricas agregadas del estudio para un mes dado.
type DashboardUseCase struct {
	store     repository.DocumentStore
	expenseUC *ExpenseUseCase
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(store repository.DocumentStore) *DashboardUseCase {
	return &DashboardUseCase{store: store, expenseUC: NewExpenseUseCase(store)}
}

// Summary calcula las métricas del mes (sesiones, ingresos por fecha de
// sesión, gastos) y los acumulados del año. Un month vacío o que no sea
// "YYYY-MM" cae al mes actual.
func (uc *DashboardUseCase) Summary(ctx context.Context, userID, month string) (*dto.DashboardSummary, error) {
	month = normalizeMonth(month)
	year := month[:4]

	customers, err := loadCustomers(ctx, uc.store, userID)
	if err != nil {
		return nil, err
	}
	expenses, err := uc.expenseUC.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	s := &dto.DashboardSummary{Month: month, TotalCustomers: len(customers)}
	for _, c := range customers {
		shootMonth := monthKey(c.ShootingDate)
		if shootMonth == month {
			s.MonthlyShoots++
			s.MonthlyRevenue += c.Revenue
		}
		if strings.HasPrefix(shootMonth, year) {
			s.YearlyRevenue += c.Revenue
		}
		if !c.PaymentChecked {
			s.UnpaidCustomers++
		}
		for _, task := range c.Tasks {
			if !task.Done {
				s.PendingTasks++
			}
		}
	}
	for _, e := range expenses {
		expMonth := monthKey(e.Date)
		if expMonth == month {
			s.MonthlyExpenses += e.Amount
		}
		if strings.HasPrefix(expMonth, year) {
			s.YearlyExpenses += e.Amount
		}
	}
	s.MonthlyProfit = s.MonthlyRevenue - s.MonthlyExpenses
	s.YearlyProfit = s.YearlyRevenue - s.YearlyExpenses
	return s, nil
}

// normalizeMonth valida el parámetro de mes. Viene directo del query string,
// así que cualquier cosa que no sea "YYYY-MM" se defiende con el mes actual.
func normalizeMonth(month string) string {
	if t, err := time.Parse("2006-01", month); err == nil {
		return t.Format("2006-01")
	}
	return time.Now().Format("2006-01")
}

// monthKey reduce una fecha a "YYYY-MM". Las fechas guardadas pueden venir en
// formatos sueltos (imports, esquemas viejos); dateparse absorbe la mayoría y
// si no, se recorta el prefijo cuando ya tiene pinta de ISO.
func monthKey(date string) string {
	if date == "" {
		return ""
	}
	if t, err := dateparse.ParseAny(date); err == nil {
		return t.Format("2006-01")
	}
	if len(date) >= 7 && date[4] == '-' {
		return date[:7]
	}
	return ""
}
