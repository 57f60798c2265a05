// Rolodex - Contacts Management REST Backend
// Copyright 2026 Rolodex Contributors
// SPDX-License-Identifier: MIT
// https://github.com/rolodex-api/rolodex

package models

import "math"

// DataResponse is the envelope for every successful response body.
type DataResponse struct {
	Data interface{} `json:"data"`
}

// PagedResponse is the envelope for paginated list responses.
type PagedResponse struct {
	Data   interface{} `json:"data"`
	Paging Paging      `json:"paging"`
}

// ErrorResponse is the envelope for every failure response body.
type ErrorResponse struct {
	Errors string `json:"errors"`
}

// Paging describes a windowed result set.
type Paging struct {
	Page      int `json:"page"`
	TotalItem int `json:"total_item"`
	TotalPage int `json:"total_page"`
}

// NewPaging computes paging metadata for totalItem matches at the given
// page size. An empty result set yields total_page 0.
func NewPaging(page, size, totalItem int) Paging {
	return Paging{
		Page:      page,
		TotalItem: totalItem,
		TotalPage: int(math.Ceil(float64(totalItem) / float64(size))),
	}
}
