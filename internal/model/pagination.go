package model

// UserPage is one page of the user listing plus paging metadata.
// Page numbers are 1-based.
type UserPage struct {
	Data            []UserSummary `json:"data"`
	TotalItems      int           `json:"totalItems"`
	CurrentPage     int           `json:"currentPage"`
	TotalPages      int           `json:"totalPages"`
	ItemsPerPage    int           `json:"itemsPerPage"`
	HasNextPage     bool          `json:"hasNextPage"`
	HasPreviousPage bool          `json:"hasPreviousPage"`
}
