package server

import "github.com/rezonia/df-accountant/internal/model"

// ErrorResponse is the JSON body for every failed request. Details is
// populated only for validation failures.
type ErrorResponse struct {
	Error   string            `json:"error"`
	Details []model.Violation `json:"details,omitempty"`
}

// IndexResponse describes the service at the root path.
type IndexResponse struct {
	Service   string   `json:"service"`
	Version   string   `json:"version"`
	Endpoints []string `json:"endpoints"`
}
