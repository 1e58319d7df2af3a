// Package expenses implements the expense query, mutation and
// aggregation engine.
//
// The engine is stateless, every call is scoped to the user it is made
// for and durable state lives entirely behind the Store interface.
package expenses

import (
	"time"

	"github.com/expenseledger/backend/internal/models"
	"github.com/expenseledger/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Store is the persistence port the engine operates on.
//
// Implementations scope every operation to the user ID given: an
// expense owned by a different user behaves exactly like a missing one.
type Store interface {
	Insert(expense *models.Expense) error
	FindByID(userID, id uuid.UUID) (models.Expense, error)
	FindMany(userID uuid.UUID, filter models.ExpenseFilter, skip, limit int) ([]models.Expense, int64, error)
	Update(expense *models.Expense) error
	Delete(expense *models.Expense) error
	AggregateByCategory(userID uuid.UUID, month types.Month) ([]models.CategorySum, error)
}

// Service orchestrates the expense operations for the API.
type Service struct {
	store Store
}

// NewService returns a Service using the store that is passed.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Create validates the payload and persists a new expense owned by the
// given user. ID and timestamps are assigned by the persistence layer.
func (s *Service) Create(userID uuid.UUID, payload CreatePayload) (models.Expense, error) {
	if err := payload.Validate(); err != nil {
		return models.Expense{}, err
	}

	expense := models.Expense{
		UserID:      userID,
		Amount:      payload.Amount,
		Category:    payload.Category,
		Description: payload.Description,
		Date:        payload.Date,
	}

	if err := s.store.Insert(&expense); err != nil {
		return models.Expense{}, err
	}

	return expense, nil
}

// Get returns the expense if it exists and is owned by the user.
func (s *Service) Get(userID, id uuid.UUID) (models.Expense, error) {
	return s.store.FindByID(userID, id)
}

// List returns one page of the user's expenses matching the filter and
// the total count of matches ignoring pagination.
//
// A skip beyond the last match yields an empty page, the total still
// reflects the full matching count.
func (s *Service) List(userID uuid.UUID, filter models.ExpenseFilter, page Page) ([]models.Expense, int64, error) {
	return s.store.FindMany(userID, filter, page.Skip, page.Limit)
}

// Update resolves the expense scoped to the user, re-validates only the
// supplied fields and applies them. The modification timestamp is
// refreshed by the persistence layer.
func (s *Service) Update(userID, id uuid.UUID, payload UpdatePayload) (models.Expense, error) {
	expense, err := s.store.FindByID(userID, id)
	if err != nil {
		return models.Expense{}, err
	}

	if err := payload.Validate(); err != nil {
		return models.Expense{}, err
	}

	payload.apply(&expense)

	if err := s.store.Update(&expense); err != nil {
		return models.Expense{}, err
	}

	return expense, nil
}

// Delete removes the expense permanently. Deleting an expense that does
// not exist, is already deleted or belongs to someone else returns a
// not found error, never a second success.
func (s *Service) Delete(userID, id uuid.UUID) error {
	expense, err := s.store.FindByID(userID, id)
	if err != nil {
		return err
	}

	return s.store.Delete(&expense)
}

// MonthlySummary is the per-category breakdown of one calendar month.
type MonthlySummary struct {
	Year       int                  `json:"year" example:"2022"`
	Month      int                  `json:"month" example:"3"`
	Categories []models.CategorySum `json:"categories"`
	GrandTotal decimal.Decimal      `json:"grand_total" example:"100.00"`
}

// SummarizeMonth sums the user's expenses of the given calendar month
// per category. The grand total is computed as the exact decimal sum of
// the category subtotals, so both are always consistent.
//
// The boundary layer already validates the year and month ranges, the
// month is checked again here regardless.
func (s *Service) SummarizeMonth(userID uuid.UUID, year, month int) (MonthlySummary, error) {
	if month < 1 || month > 12 {
		return MonthlySummary{}, ErrMonthOutOfRange
	}

	sums, err := s.store.AggregateByCategory(userID, types.NewMonth(year, time.Month(month)))
	if err != nil {
		return MonthlySummary{}, err
	}

	grandTotal := decimal.Zero
	for _, sum := range sums {
		grandTotal = grandTotal.Add(sum.Total)
	}

	return MonthlySummary{
		Year:       year,
		Month:      month,
		Categories: sums,
		GrandTotal: grandTotal,
	}, nil
}
