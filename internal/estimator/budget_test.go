package estimator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateBudgetDefaults(t *testing.T) {
	// Zero input takes the 100 m² residential defaults and still produces a
	// full budget.
	b := GenerateBudget(ProjectInput{})
	require.NotEmpty(t, b.Items)
	require.Greater(t, b.Subtotal, 0.0)

	defaulted := GenerateBudget(ProjectInput{TotalArea: DefaultArea, ProjectType: DefaultProjectType})
	require.Equal(t, len(defaulted.Items), len(b.Items))
	require.Equal(t, defaulted.Subtotal, b.Subtotal)
}

func TestGenerateBudgetFoundationScenario(t *testing.T) {
	// 100 m² residential: foundation concrete = 100×0.08 = 8.0 m³ @ 340.00.
	b := GenerateBudget(ProjectInput{TotalArea: 100, ProjectType: "residencial"})

	found := false
	for _, item := range b.Items {
		if item.Environment == "Fundação" && item.Unit == UnitCubicMeter {
			require.Equal(t, 8.0, item.Quantity)
			require.Equal(t, 340.00, item.UnitPrice)
			require.Equal(t, 2720.00, item.Total)
			found = true
		}
	}
	require.True(t, found, "foundation concrete item missing")
}

func TestGenerateBudgetGrandTotalIsSubtotalPlusBDI(t *testing.T) {
	for _, area := range []float64{0, 1, 50, 100, 100.5, 200, 250, 1000} {
		b := GenerateBudget(ProjectInput{TotalArea: area})

		sum := 0.0
		for _, item := range b.Items {
			require.Equal(t, round2(item.Quantity*item.UnitPrice), item.Total)
			sum += item.Total
		}
		require.Equal(t, round2(sum), b.Subtotal)
		require.Equal(t, round2(b.Subtotal*0.25), b.BDI)
		require.Equal(t, round2(b.Subtotal*1.25), b.GrandTotal)
	}
}

func TestGenerateBudgetStructuralGate(t *testing.T) {
	residential := GenerateBudget(ProjectInput{TotalArea: 120, ProjectType: "Residencial unifamiliar"})
	house := GenerateBudget(ProjectInput{TotalArea: 120, ProjectType: "Casa térrea"})
	commercial := GenerateBudget(ProjectInput{TotalArea: 120, ProjectType: "comercial"})

	countStructural := func(b *Budget) int {
		n := 0
		for _, item := range b.Items {
			if item.Environment == "Estrutura" {
				n++
			}
		}
		return n
	}

	// The gate is binary inclusion, matched case-insensitively on substrings.
	require.Equal(t, 2, countStructural(residential))
	require.Equal(t, 2, countStructural(house))
	require.Zero(t, countStructural(commercial))
	require.Less(t, commercial.GrandTotal, residential.GrandTotal)
}

func TestGenerateBudgetLumpItems(t *testing.T) {
	b := GenerateBudget(ProjectInput{TotalArea: 200, ProjectType: "comercial"})

	lumps := 0
	for _, item := range b.Items {
		if item.Environment == "Instalações" {
			require.Equal(t, 1.0, item.Quantity)
			require.Equal(t, UnitEach, item.Unit)
			// Lump pricing folds the area into the unit price.
			require.Equal(t, item.UnitPrice, item.Total)
			lumps++
		}
	}
	require.Equal(t, 2, lumps)
}

func TestBudgetUpdateItemRecomputesTotal(t *testing.T) {
	b := GenerateBudget(ProjectInput{TotalArea: 100})
	item := b.Items[0]

	qty := 12.5
	price := 99.90
	ok := b.UpdateItem(item.ID, BudgetItemPatch{Quantity: &qty, UnitPrice: &price})
	require.True(t, ok)

	require.Equal(t, round2(12.5*99.90), b.Items[0].Total)

	// Aggregates follow the edit.
	sum := 0.0
	for _, it := range b.Items {
		sum += it.Total
	}
	require.Equal(t, round2(sum), b.Subtotal)
	require.Equal(t, round2(b.Subtotal*1.25), b.GrandTotal)

	require.False(t, b.UpdateItem("no-such-id", BudgetItemPatch{Quantity: &qty}))
}

func TestBudgetAddAndRemoveItem(t *testing.T) {
	b := GenerateBudget(ProjectInput{TotalArea: 100})
	before := len(b.Items)

	added := b.AddItem(BudgetItem{
		Environment: "Esquadrias",
		Material:    "Janela de alumínio",
		Quantity:    4,
		Unit:        UnitEach,
		UnitPrice:   450.00,
	})
	require.NotEmpty(t, added.ID)
	require.Len(t, b.Items, before+1)
	require.Equal(t, 1800.00, b.Items[before].Total)

	require.True(t, b.RemoveItem(added.ID))
	require.Len(t, b.Items, before)
	require.False(t, b.RemoveItem(added.ID))
}

func TestGenerateBudgetRegenerationProducesFreshIDs(t *testing.T) {
	first := GenerateBudget(ProjectInput{TotalArea: 100})
	second := GenerateBudget(ProjectInput{TotalArea: 100})

	seen := make(map[string]bool)
	for _, item := range first.Items {
		seen[item.ID] = true
	}
	for _, item := range second.Items {
		require.False(t, seen[item.ID], "item IDs must not survive regeneration")
	}
}
