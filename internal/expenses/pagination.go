package expenses

// Page is the window of a list query in skip/limit form.
type Page struct {
	Skip  int // Number of matching expenses to skip, >= 0
	Limit int // Maximum number of expenses to return, 1-100
}

// PageFor converts 1-based page/per_page pagination into a Page.
func PageFor(page, perPage int) Page {
	return Page{
		Skip:  (page - 1) * perPage,
		Limit: perPage,
	}
}

// Pagination is the metadata returned alongside a page of expenses.
type Pagination struct {
	Page       int   `json:"page" example:"1"`          // The 1-based number of the returned page
	PerPage    int   `json:"per_page" example:"20"`     // Maximum number of expenses per page
	Total      int64 `json:"total" example:"83"`        // Total number of matching expenses, ignoring pagination
	TotalPages int64 `json:"total_pages" example:"5"`   // ceil(total / per_page)
}

// NewPagination computes the pagination metadata for a page.
func NewPagination(page, perPage int, total int64) Pagination {
	return Pagination{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: (total + int64(perPage) - 1) / int64(perPage),
	}
}
