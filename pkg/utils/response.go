package utils

import (
	"encoding/json"
	"net/http"
)

// FieldError carries a per-field validation message.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Pagination is the list-response pagination block.
type Pagination struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

// NewPagination computes the page count for a result set.
func NewPagination(total, page, limit int) *Pagination {
	if limit <= 0 {
		limit = 20
	}
	totalPages := total / limit
	if total%limit != 0 {
		totalPages++
	}
	return &Pagination{
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}
}

// Response is the JSON envelope shared by every endpoint.
type Response struct {
	Success    bool         `json:"success"`
	Message    string       `json:"message,omitempty"`
	Data       interface{}  `json:"data,omitempty"`
	Errors     []FieldError `json:"errors,omitempty"`
	Pagination *Pagination  `json:"pagination,omitempty"`
}

func JSON(w http.ResponseWriter, status int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}

// OK writes a 200 envelope with data.
func OK(w http.ResponseWriter, data interface{}) {
	JSON(w, http.StatusOK, Response{Success: true, Data: data})
}

// OKMessage writes a 200 envelope with only a message.
func OKMessage(w http.ResponseWriter, message string) {
	JSON(w, http.StatusOK, Response{Success: true, Message: message})
}

// Created writes a 201 envelope.
func Created(w http.ResponseWriter, message string, data interface{}) {
	JSON(w, http.StatusCreated, Response{Success: true, Message: message, Data: data})
}

// Paginated writes a 200 list envelope with the pagination block.
func Paginated(w http.ResponseWriter, data interface{}, p *Pagination) {
	JSON(w, http.StatusOK, Response{Success: true, Data: data, Pagination: p})
}

// Fail writes an error envelope with the given status.
func Fail(w http.ResponseWriter, status int, message string) {
	JSON(w, status, Response{Success: false, Message: message})
}

// FailValidation writes a 400 envelope carrying per-field messages.
func FailValidation(w http.ResponseWriter, errs []FieldError) {
	JSON(w, http.StatusBadRequest, Response{Success: false, Errors: errs})
}
