// Package handlers provides HTTP request handling
package handlers

import "github.com/madenai/arqflow/internal/services"

// APIHandler is a handler for the API
type APIHandler struct {
	user      *services.User
	project   *services.Project
	budget    *services.Budget
	schedule  *services.Schedule
	assistant *services.Assistant
	payment   *services.Payment
	admin     *services.Admin
}

// NewAPIHandler creates a new API handler
func NewAPIHandler(
	user *services.User,
	project *services.Project,
	budget *services.Budget,
	schedule *services.Schedule,
	assistant *services.Assistant,
	payment *services.Payment,
	admin *services.Admin,
) *APIHandler {
	return &APIHandler{
		user:      user,
		project:   project,
		budget:    budget,
		schedule:  schedule,
		assistant: assistant,
		payment:   payment,
		admin:     admin,
	}
}
