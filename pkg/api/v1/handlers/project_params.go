// Package handlers provides HTTP request handling
package handlers

import (
	"fmt"
	"strings"
)

// ProjectCreateParams defines the parameters for registering a project
type ProjectCreateParams struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	ProjectType string  `json:"project_type,omitempty"`
	TotalArea   float64 `json:"total_area,omitempty"`
	FileURL     string  `json:"file_url,omitempty"`
}

// Validate validates the parameters for registering a project. Project type
// and area are optional; the estimator falls back to its defaults.
func (p ProjectCreateParams) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%s", strings.ToLower(ErrMsgProjNameRequired))
	}
	if p.TotalArea < 0 {
		return fmt.Errorf("total area must not be negative")
	}
	return nil
}

// ProjectGetParams defines the parameters for retrieving a project
type ProjectGetParams struct {
	Name string `json:"name"`
}

// Validate validates the parameters for retrieving a project
func (p ProjectGetParams) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%s", strings.ToLower(ErrMsgProjNameRequired))
	}
	return nil
}

// ProjectListParams defines the parameters for listing projects
type ProjectListParams struct {
	Page int `json:"page,omitempty"`
}

// Validate validates the parameters for listing projects
func (p ProjectListParams) Validate() error {
	if p.Page < 0 {
		return fmt.Errorf("page must be a positive number")
	}
	return nil
}

// ProjectDeleteParams defines the parameters for deleting a project
type ProjectDeleteParams struct {
	Name string `json:"name"`
}

// Validate validates the parameters for deleting a project
func (p ProjectDeleteParams) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%s", strings.ToLower(ErrMsgProjNameRequired))
	}
	return nil
}
