package api

import "time"

type meta struct {
	TotalRecords uint64 `json:"totalRecords"`
	Limit        *int   `json:"limit,omitempty"`
	Count        uint64 `json:"count"`
}

type ApiResponse struct {
	Meta *meta `json:"meta,omitempty"`
	Data any   `json:"data"`
}

func collection[T any](items []T, limit *int) ApiResponse {
	if items == nil {
		items = []T{}
	}

	return ApiResponse{
		Meta: &meta{
			TotalRecords: uint64(len(items)),
			Limit:        limit,
			Count:        uint64(len(items)),
		},
		Data: items,
	}
}

type errorResponse struct {
	Message string `json:"message"`
}

type createdResponse struct {
	ID int `json:"id"`
}

type environmentRequest struct {
	Name string `json:"name"`
}

type plantRequest struct {
	Name          string `json:"name"`
	Type          string `json:"type"`
	EnvironmentID int    `json:"environmentID"`
}

type photoRequest struct {
	Photo string `json:"photo"`
}

type photoResponse struct {
	Photo string `json:"photo"`
}

type moduleRequest struct {
	ModuleID int `json:"moduleID"`
}

type disconnectResponse struct {
	IDs []int `json:"ids"`
}

type readingRequest struct {
	Temperature *float64   `json:"temperature"`
	Humidity    *float64   `json:"humidity"`
	Timestamp   *time.Time `json:"timestamp,omitempty"`
}

type wateringRequest struct {
	Duration  *float64   `json:"duration"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}
