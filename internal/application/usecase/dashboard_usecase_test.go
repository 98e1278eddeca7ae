package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/PhotoCRM-api/internal/application/dto"
	"github.com/jhoicas/PhotoCRM-api/internal/application/usecase"
	"github.com/jhoicas/PhotoCRM-api/internal/domain/entity"
)

func newDashboardFixture(t *testing.T) *usecase.DashboardUseCase {
	t.Helper()
	store := newMemStore()
	customers := usecase.NewCustomerUseCase(store)
	expenses := usecase.NewExpenseUseCase(store)
	ctx := context.Background()

	_, err := customers.Create(ctx, testUser, dto.CustomerInput{
		Name:         "Tanaka",
		ShootingDate: "2024-05-10",
		PlanDetails:  entity.PlanDetails{BasePrice: 50000},
	})
	require.NoError(t, err)
	_, err = customers.Create(ctx, testUser, dto.CustomerInput{
		Name:         "Sato",
		ShootingDate: "2024-06-02",
		PlanDetails:  entity.PlanDetails{BasePrice: 30000},
	})
	require.NoError(t, err)
	_, err = expenses.Create(ctx, testUser, dto.ExpenseInput{
		Date: "2024-05-03", Item: "Props", Amount: 8000,
	})
	require.NoError(t, err)

	return usecase.NewDashboardUseCase(store)
}

func TestDashboardSummary_MetricasDelMes(t *testing.T) {
	uc := newDashboardFixture(t)

	s, err := uc.Summary(context.Background(), testUser, "2024-05")
	require.NoError(t, err)

	assert.Equal(t, 1, s.MonthlyShoots)
	assert.Equal(t, 50000.0, s.MonthlyRevenue)
	assert.Equal(t, 8000.0, s.MonthlyExpenses)
	assert.Equal(t, 42000.0, s.MonthlyProfit)
	assert.Equal(t, 80000.0, s.YearlyRevenue, "el acumulado del año suma todos los meses")
}

func TestDashboardSummary_MesMalformadoCaeAlActual(t *testing.T) {
	uc := newDashboardFixture(t)
	ctx := context.Background()
	current := time.Now().Format("2006-01")

	for _, month := range []string{"5", "2024", "mayo", ""} {
		s, err := uc.Summary(ctx, testUser, month)
		require.NoError(t, err, "month=%q", month)
		assert.Equal(t, current, s.Month, "month=%q se defiende con el mes actual", month)
	}
}
