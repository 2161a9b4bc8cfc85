package estimator

import (
	"github.com/google/uuid"
)

// Unit is the measurement unit of a budget line item.
type Unit string

// Units recognized by the budget templater.
const (
	UnitSquareMeter Unit = "m²"
	UnitCubicMeter  Unit = "m³"
	UnitMeter       Unit = "m"
	UnitEach        Unit = "un"
	UnitKilogram    Unit = "kg"
	UnitTon         Unit = "ton"
)

// BudgetItem is a single derived budget line. IDs are synthetic and stable
// only within one generation pass; a regeneration produces fresh IDs.
type BudgetItem struct {
	ID          string  `json:"id"`
	Environment string  `json:"environment"`
	Material    string  `json:"material"`
	Quantity    float64 `json:"quantity"`
	Unit        Unit    `json:"unit"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
}

// Budget is the full derived budget with its aggregates.
type Budget struct {
	Items      []BudgetItem `json:"items"`
	Subtotal   float64      `json:"subtotal"`
	BDI        float64      `json:"bdi"`
	GrandTotal float64      `json:"grand_total"`
}

// BudgetItemPatch carries partial edits to a budget item. Nil fields are
// left untouched.
type BudgetItemPatch struct {
	Environment *string
	Material    *string
	Quantity    *float64
	Unit        *Unit
	UnitPrice   *float64
}

// budgetLine is one row of the fixed generation template.
type budgetLine struct {
	environment string
	material    string
	unit        Unit
	// ratio is the quantity per m² of floor area, or, for lump lines, the
	// price per m² folded into the unit price.
	ratio     float64
	unitPrice float64
	// lump lines are priced as quantity=1 with unitPrice = area × ratio.
	lump bool
	// structural lines only apply to residential builds.
	structural bool
}

// budgetTemplate is the fixed ordered sequence of candidate line items.
// Unit prices follow the SINAPI reference table.
var budgetTemplate = []budgetLine{
	{environment: "Fundação", material: "Concreto armado FCK 25 MPa", unit: UnitCubicMeter, ratio: 0.08, unitPrice: 340.00},
	{environment: "Fundação", material: "Aço CA-50 3/8\"", unit: UnitKilogram, ratio: 1.20, unitPrice: 8.50},
	{environment: "Estrutura", material: "Laje pré-moldada H12", unit: UnitSquareMeter, ratio: 0.85, unitPrice: 98.00, structural: true},
	{environment: "Estrutura", material: "Vigas e pilares em concreto", unit: UnitCubicMeter, ratio: 0.05, unitPrice: 380.00, structural: true},
	{environment: "Alvenaria", material: "Tijolo cerâmico 9x19x19 cm", unit: UnitSquareMeter, ratio: 2.50, unitPrice: 45.00},
	{environment: "Cobertura", material: "Telha cerâmica tipo colonial", unit: UnitSquareMeter, ratio: 1.10, unitPrice: 52.00},
	{environment: "Revestimento", material: "Reboco interno e externo", unit: UnitSquareMeter, ratio: 3.20, unitPrice: 28.00},
	{environment: "Instalações", material: "Instalações elétricas completas", unit: UnitEach, ratio: 85.00, lump: true},
	{environment: "Instalações", material: "Instalações hidráulicas completas", unit: UnitEach, ratio: 75.00, lump: true},
	{environment: "Acabamentos", material: "Piso cerâmico esmaltado", unit: UnitSquareMeter, ratio: 0.95, unitPrice: 62.00},
	{environment: "Acabamentos", material: "Tinta acrílica fosca", unit: UnitSquareMeter, ratio: 3.20, unitPrice: 18.00},
}

// GenerateBudget derives the budget for a project. It never fails: absent or
// invalid numeric inputs silently take defaults.
func GenerateBudget(p ProjectInput) *Budget {
	area := p.area()
	residential := p.isResidential()

	items := make([]BudgetItem, 0, len(budgetTemplate))
	for _, line := range budgetTemplate {
		if line.structural && !residential {
			continue
		}

		item := BudgetItem{
			ID:          uuid.NewString(),
			Environment: line.environment,
			Material:    line.material,
			Unit:        line.unit,
		}
		if line.lump {
			item.Quantity = 1
			item.UnitPrice = round2(area * line.ratio)
		} else {
			item.Quantity = round2(area * line.ratio)
			item.UnitPrice = line.unitPrice
		}
		items = append(items, item)
	}

	b := &Budget{Items: items}
	b.Recompute()
	return b
}

// Recompute re-derives every item total from quantity × unit price and then
// the budget aggregates. It must run after generation and after any edit;
// item totals are never trusted as stored.
func (b *Budget) Recompute() {
	subtotal := 0.0
	for i := range b.Items {
		b.Items[i].Total = round2(b.Items[i].Quantity * b.Items[i].UnitPrice)
		subtotal += b.Items[i].Total
	}
	b.Subtotal = round2(subtotal)
	b.BDI = round2(b.Subtotal * BDIRate)
	b.GrandTotal = round2(b.Subtotal + b.BDI)
}

// UpdateItem applies a partial edit to the item with the given ID and
// recomputes all totals. It reports whether the item was found.
func (b *Budget) UpdateItem(id string, patch BudgetItemPatch) bool {
	for i := range b.Items {
		if b.Items[i].ID != id {
			continue
		}
		if patch.Environment != nil {
			b.Items[i].Environment = *patch.Environment
		}
		if patch.Material != nil {
			b.Items[i].Material = *patch.Material
		}
		if patch.Quantity != nil {
			b.Items[i].Quantity = *patch.Quantity
		}
		if patch.Unit != nil {
			b.Items[i].Unit = *patch.Unit
		}
		if patch.UnitPrice != nil {
			b.Items[i].UnitPrice = *patch.UnitPrice
		}
		b.Recompute()
		return true
	}
	return false
}

// AddItem appends a user-defined item, assigning an ID when absent, and
// recomputes all totals.
func (b *Budget) AddItem(item BudgetItem) BudgetItem {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if item.Unit == "" {
		item.Unit = UnitEach
	}
	b.Items = append(b.Items, item)
	b.Recompute()
	return item
}

// RemoveItem deletes the item with the given ID and recomputes all totals.
// It reports whether the item was found.
func (b *Budget) RemoveItem(id string) bool {
	for i := range b.Items {
		if b.Items[i].ID == id {
			b.Items = append(b.Items[:i], b.Items[i+1:]...)
			b.Recompute()
			return true
		}
	}
	return false
}
