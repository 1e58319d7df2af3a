package models

import (
	"strings"

	"github.com/expenseledger/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// ExpenseFilter restricts an expense query. The zero value matches all
// expenses of a user.
type ExpenseFilter struct {
	Category Category   // Only expenses of this category. Empty matches all categories.
	From     types.Date // Only expenses at or after this date
	Until    types.Date // Only expenses at or before this date
}

// CategorySum is the summed amount of all matching expenses of one category.
type CategorySum struct {
	Category Category        `json:"category" example:"Food"`
	Total    decimal.Decimal `json:"total" example:"80.00"`
}

// Store gives access to the persisted resources of the expense ledger.
//
// Every expense query is scoped to a single user. A store never returns
// or modifies an expense owned by a different user than the one given,
// such expenses are reported as not found.
type Store struct {
	db *gorm.DB
}

// NewStore returns a Store using the database handle that is passed.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Insert persists a new expense.
func (s *Store) Insert(expense *Expense) error {
	return s.db.Create(expense).Error
}

// FindByID returns the expense with the given ID if it is owned by the
// given user. A missing expense and an expense owned by someone else
// are indistinguishable, both return a not found error.
func (s *Store) FindByID(userID, id uuid.UUID) (Expense, error) {
	var expense Expense

	err := s.db.Where("user_id = ?", userID).First(&expense, "id = ?", id).Error
	if err != nil {
		return Expense{}, err
	}

	return expense, nil
}

// FindMany returns one page of the user's expenses matching the filter,
// ordered by date descending, and the total number of matching expenses
// ignoring pagination.
func (s *Store) FindMany(userID uuid.UUID, filter ExpenseFilter, skip, limit int) ([]Expense, int64, error) {
	q := s.db.
		Order("datetime(expenses.date) DESC, datetime(expenses.created_at) DESC").
		Where("user_id = ?", userID)

	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}

	// Date filters are inclusive on both ends
	if !filter.From.IsZero() {
		q = q.Where("expenses.date >= date(?)", filter.From.Time())
	}

	if !filter.Until.IsZero() {
		q = q.Where("expenses.date < date(?)", filter.Until.AddDays(1).Time())
	}

	expenses := make([]Expense, 0)
	err := q.Offset(skip).Limit(limit).Find(&expenses).Error
	if err != nil {
		return nil, 0, err
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		return nil, 0, err
	}

	return expenses, count, nil
}

// Update persists all fields of the expense.
func (s *Store) Update(expense *Expense) error {
	return s.db.Save(expense).Error
}

// Delete removes the expense permanently.
func (s *Store) Delete(expense *Expense) error {
	return s.db.Delete(expense).Error
}

// AggregateByCategory sums the user's expenses of the given month per
// category. Categories without expenses in the month are not contained
// in the result.
//
// sqlite coerces DECIMAL columns to REAL in SUM(), so the subtotals are
// added up in process with exact decimal arithmetic instead.
func (s *Store) AggregateByCategory(userID uuid.UUID, month types.Month) ([]CategorySum, error) {
	var expenses []Expense

	err := s.db.
		Where("user_id = ?", userID).
		Where("expenses.date >= date(?)", month.First().Time()).
		Where("expenses.date < date(?)", month.Next().First().Time()).
		Find(&expenses).Error
	if err != nil {
		return nil, err
	}

	totals := make(map[Category]decimal.Decimal)
	for _, expense := range expenses {
		totals[expense.Category] = totals[expense.Category].Add(expense.Amount)
	}

	sums := make([]CategorySum, 0, len(totals))
	for category, total := range totals {
		sums = append(sums, CategorySum{Category: category, Total: total})
	}

	// Map iteration order is random, sort for a stable result
	slices.SortFunc(sums, func(a, b CategorySum) int {
		return strings.Compare(string(a.Category), string(b.Category))
	})

	return sums, nil
}

// InsertUser persists a new user. Users are provisioned directly, the
// API itself has no signup surface.
func (s *Store) InsertUser(user *User) error {
	return s.db.Create(user).Error
}

// UserByAPIKey returns the user a credential belongs to.
func (s *Store) UserByAPIKey(key string) (User, error) {
	var user User

	err := s.db.Where("api_key = ?", key).First(&user).Error
	if err != nil {
		return User{}, err
	}

	return user, nil
}
