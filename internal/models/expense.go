package models

import (
	"strings"
	"unicode/utf8"

	"github.com/expenseledger/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/unicode/norm"
	"gorm.io/gorm"
)

// DescriptionMaxLength is the maximum number of characters for an
// expense description.
const DescriptionMaxLength = 255

// Expense represents a single monetary expense of a user.
type Expense struct {
	DefaultModel
	UserID      uuid.UUID       `json:"user_id" gorm:"index;index:idx_expenses_user_date,priority:1"` // ID of the owning user
	User        User            `json:"-"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:DECIMAL(10,2)" example:"14.03"`     // The amount, always greater than zero
	Category    Category        `json:"category" example:"Food"`                              // Category of the expense
	Description string          `json:"description" example:"Lunch" default:""`               // Optional description, up to 255 characters
	Date        types.Date      `json:"date" gorm:"index:idx_expenses_user_date,priority:2"`  // The effective calendar date of the expense
}

func (e Expense) Self() string {
	return "Expense"
}

// PositiveAmount reports whether an amount satisfies the invariant
// that expense amounts are strictly greater than zero.
func PositiveAmount(amount decimal.Decimal) bool {
	return amount.IsPositive()
}

// ValidDescriptionLength reports whether a description fits into the
// 255 character limit. Characters are counted as Unicode code points
// after NFC normalization so that the count does not depend on the
// encoding the client happened to send.
func ValidDescriptionLength(description string) bool {
	return utf8.RuneCountInString(norm.NFC.String(description)) <= DescriptionMaxLength
}

// BeforeSave validates the expense invariants and normalizes the
// description. The validation layer reports violations field by field
// before anything reaches the database, this hook ensures the
// invariants hold for every write regardless of the code path.
func (e *Expense) BeforeSave(_ *gorm.DB) error {
	e.Description = norm.NFC.String(strings.TrimSpace(e.Description))

	if !PositiveAmount(e.Amount) {
		return ErrAmountNotPositive
	}

	if !ValidDescriptionLength(e.Description) {
		return ErrDescriptionTooLong
	}

	if !e.Category.Valid() {
		return ErrCategoryInvalid
	}

	if e.Date.IsZero() {
		return ErrDateNotSet
	}

	return nil
}
