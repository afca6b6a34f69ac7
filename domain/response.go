package domain

import (
	"kucukaslan/interactions/buildinfo"
	"time"
)

// HealthResponse represents the health status of the service
type HealthResponse struct {
	Status    string              `json:"status" example:"healthy"`
	Timestamp time.Time           `json:"timestamp" example:"2026-10-16T10:00:00Z"`
	BuildInfo buildinfo.Info      `json:"buildInfo"`
	Services  ServiceHealthStatus `json:"services"`
}

// ServiceHealthStatus represents the health status of dependent services
type ServiceHealthStatus struct {
	ClickHouse ServiceStatus `json:"clickhouse"`
	Redis      ServiceStatus `json:"redis"`
	Postgres   ServiceStatus `json:"postgres"`
}

// ServiceStatus represents the status of a single service
type ServiceStatus struct {
	Status  string `json:"status" example:"healthy"`
	Message string `json:"message,omitempty" example:""`
}

// ClickResponse is returned by the click ingestion endpoint
type ClickResponse struct {
	Success  bool   `json:"success" example:"true"`
	Message  string `json:"message" example:"Click recorded"`
	ClickID  string `json:"clickId" example:"01JA2Z6T8D3F4G5H6J7K8M9N0P"`
	IsUnique bool   `json:"isUnique" example:"true"`
}

// ViewResponse is returned by the view ingestion endpoint
type ViewResponse struct {
	Success       bool   `json:"success" example:"true"`
	Message       string `json:"message" example:"View recorded"`
	AlreadyViewed bool   `json:"alreadyViewed" example:"false"`
	ViewID        string `json:"viewId,omitempty" example:"01JA2Z6T8D3F4G5H6J7K8M9N0P"`
}

// ReportResponse wraps a single report payload
type ReportResponse[T any] struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Report generated successfully"`
	Data    T      `json:"data"`
}

// ErrorResponse is returned for every failed request
type ErrorResponse struct {
	Success bool         `json:"success" example:"false"`
	Message string       `json:"message" example:"Validation failed"`
	Errors  []FieldError `json:"errors,omitempty"`
}
