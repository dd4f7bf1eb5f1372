package source

import "laundry-finder-backend/internal/model"

// ApiResponse models the top-level structure of the upstream shop feed.
type ApiResponse struct {
	Code int     `json:"code"`
	Data ApiPage `json:"data"`
}

// ApiPage is one page of shops.
type ApiPage struct {
	Page     int                 `json:"page"`
	PageSize int                 `json:"pageSize"`
	Total    int                 `json:"total"`
	Items    []model.LaundryShop `json:"items"`
}
