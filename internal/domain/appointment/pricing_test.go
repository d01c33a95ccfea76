package appointment

import (
	"testing"

	"github.com/navalha-app/agenda-api/internal/models"
)

func TestBuildServiceLinesSnapshotsAndTotals(t *testing.T) {
	services := []models.Service{
		{ID: 1, Name: "Corte", DurationMin: 30, Price: 50},
		{ID: 2, Name: "Barba", DurationMin: 20, Price: 30},
	}
	covered := map[uint]bool{1: true}

	lines, totals := BuildServiceLines(services, covered)

	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !lines[0].CoveredByPlan || lines[1].CoveredByPlan {
		t.Fatalf("coverage flags wrong: %+v", lines)
	}
	if lines[0].Name != "Corte" || lines[0].Price != 50 || lines[0].DurationMin != 30 {
		t.Fatalf("line must snapshot the catalog values: %+v", lines[0])
	}

	if totals.DurationMin != 50 {
		t.Fatalf("expected total duration 50, got %d", totals.DurationMin)
	}
	if totals.FullPrice != 80 {
		t.Fatalf("expected full price 80, got %.2f", totals.FullPrice)
	}
	if totals.CoveredAmount != 50 || totals.ChargeableAmount != 30 {
		t.Fatalf("expected covered 50 / chargeable 30, got %.2f / %.2f",
			totals.CoveredAmount, totals.ChargeableAmount)
	}
	if totals.CoveredAmount+totals.ChargeableAmount != totals.FullPrice {
		t.Fatalf("covered + chargeable must equal full price")
	}
}

func TestBuildServiceLinesNoCoverage(t *testing.T) {
	services := []models.Service{
		{ID: 3, Name: "Sobrancelha", DurationMin: 15, Price: 20},
	}

	lines, totals := BuildServiceLines(services, map[uint]bool{})

	if lines[0].CoveredByPlan {
		t.Fatalf("no subscription means nothing covered")
	}
	if totals.ChargeableAmount != 20 || totals.CoveredAmount != 0 {
		t.Fatalf("unexpected totals: %+v", totals)
	}
}
