package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/PhotoCRM-api/internal/application/dto"
	"github.com/jhoicas/PhotoCRM-api/internal/domain"
	"github.com/jhoicas/PhotoCRM-api/internal/domain/entity"
	"github.com/jhoicas/PhotoCRM-api/internal/domain/repository"
)

// ExpenseUseCase gastos del estudio.
type ExpenseUseCase struct {
	store repository.DocumentStore
}

// NewExpenseUseCase construye el caso de uso.
func NewExpenseUseCase(store repository.DocumentStore) *ExpenseUseCase {
	return &ExpenseUseCase{store: store}
}

// List devuelve los gastos ordenados por fecha descendente.
func (uc *ExpenseUseCase) List(ctx context.Context, userID string) ([]entity.Expense, error) {
	expenses, err := uc.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(expenses, func(i, j int) bool {
		return expenses[i].Date > expenses[j].Date
	})
	return expenses, nil
}

// Create registra un gasto. Concepto y monto positivo son obligatorios.
func (uc *ExpenseUseCase) Create(ctx context.Context, userID string, in dto.ExpenseInput) (*entity.Expense, error) {
	if strings.TrimSpace(in.Item) == "" || in.Amount <= 0 {
		return nil, domain.ErrInvalidInput
	}
	expenses, err := uc.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	date := in.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	exp := entity.Expense{
		ID:       uuid.New().String(),
		Date:     date,
		Item:     strings.TrimSpace(in.Item),
		Category: in.Category,
		Amount:   in.Amount,
		Memo:     in.Memo,
	}
	expenses = append(expenses, exp)
	if err := saveDoc(ctx, uc.store, userID, repository.KeyExpenses, expenses); err != nil {
		return nil, err
	}
	return &exp, nil
}

// Delete elimina un gasto por id.
func (uc *ExpenseUseCase) Delete(ctx context.Context, userID, id string) error {
	expenses, err := uc.load(ctx, userID)
	if err != nil {
		return err
	}
	for i, e := range expenses {
		if e.ID == id {
			expenses = append(expenses[:i], expenses[i+1:]...)
			return saveDoc(ctx, uc.store, userID, repository.KeyExpenses, expenses)
		}
	}
	return domain.ErrNotFound
}

func (uc *ExpenseUseCase) load(ctx context.Context, userID string) ([]entity.Expense, error) {
	var expenses []entity.Expense
	if _, err := loadDoc(ctx, uc.store, userID, repository.KeyExpenses, &expenses); err != nil {
		return nil, err
	}
	if expenses == nil {
		expenses = []entity.Expense{}
	}
	return expenses, nil
}
