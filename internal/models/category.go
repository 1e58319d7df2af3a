package models

import (
	"golang.org/x/exp/slices"
)

// Category classifies the purpose of an expense.
//
// The set of categories is fixed, there is no dynamic extension.
// swagger:enum Category
type Category string

const (
	CategoryFood          Category = "Food"
	CategoryTransport     Category = "Transport"
	CategoryEntertainment Category = "Entertainment"
	CategoryUtilities     Category = "Utilities"
	CategoryHealthcare    Category = "Healthcare"
	CategoryShopping      Category = "Shopping"
	CategoryOther         Category = "Other"
)

// Categories returns all valid categories.
func Categories() []Category {
	return []Category{
		CategoryFood,
		CategoryTransport,
		CategoryEntertainment,
		CategoryUtilities,
		CategoryHealthcare,
		CategoryShopping,
		CategoryOther,
	}
}

// Valid reports whether c is a member of the fixed category set.
// The comparison is case-sensitive.
func (c Category) Valid() bool {
	return slices.Contains(Categories(), c)
}

func (c Category) String() string {
	return string(c)
}
