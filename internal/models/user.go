package models

// User is an authenticated caller of the API.
//
// A user exclusively owns their expenses: deleting a user deletes all
// owned expenses with it, enforced by the foreign key constraint.
type User struct {
	DefaultModel
	APIKey   string    `json:"-" gorm:"uniqueIndex"` // The API credential, immutable once issued
	Expenses []Expense `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

func (u User) Self() string {
	return "User"
}
