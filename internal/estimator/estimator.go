// Package estimator derives SINAPI-style budgets and construction schedules
// from a project's floor area and type. Generation is deterministic and pure:
// the same input always yields the same line items, and no operation here
// ever fails. Persistence and presentation are the caller's concern.
package estimator

import (
	"math"
	"strings"
)

// Defaults applied when the project record is missing attributes.
const (
	// DefaultArea is the floor area assumed when a project has none, in m².
	DefaultArea = 100.0
	// DefaultProjectType is the category assumed when a project has none.
	DefaultProjectType = "residencial"
)

// BDIRate is the fixed "Benefícios e Despesas Indiretas" markup applied
// over the raw subtotal. Not configurable.
const BDIRate = 0.25

// ProjectInput is the subset of a project consumed by the templaters.
type ProjectInput struct {
	// TotalArea is the floor area in m²; zero or negative means "not set".
	TotalArea float64
	// ProjectType is a free-text category matched by keyword.
	ProjectType string
}

// area returns the effective floor area, applying the default.
func (p ProjectInput) area() float64 {
	if p.TotalArea <= 0 {
		return DefaultArea
	}
	return p.TotalArea
}

// projectType returns the effective project type, lowercased, applying the
// default.
func (p ProjectInput) projectType() string {
	if strings.TrimSpace(p.ProjectType) == "" {
		return DefaultProjectType
	}
	return strings.ToLower(p.ProjectType)
}

// isResidential reports whether the project type selects the structural
// slab/beam items. Substring match, not an exact category.
func (p ProjectInput) isResidential() bool {
	t := p.projectType()
	return strings.Contains(t, "residencial") || strings.Contains(t, "casa")
}

// Complexity buckets a project by floor area. Boundaries are strict: an area
// of exactly 100 m² is "média", exactly 200 m² is still "média".
type Complexity string

// Complexity buckets, smallest first.
const (
	ComplexityBaixa Complexity = "baixa"
	ComplexityMedia Complexity = "média"
	ComplexityAlta  Complexity = "alta"
)

// ComplexityFor returns the complexity bucket for the given input.
func ComplexityFor(p ProjectInput) Complexity {
	area := p.area()
	switch {
	case area > 200:
		return ComplexityAlta
	case area > 100:
		return ComplexityMedia
	default:
		return ComplexityBaixa
	}
}

// round2 rounds a currency or quantity value to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
