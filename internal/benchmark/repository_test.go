package benchmark

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRepository_Lookup(t *testing.T) {
	repo := NewRepository()

	band, ok := repo.Lookup("multifamily", "garden_lowrise", "cap_rate")
	if !ok {
		t.Fatal("Expected cap_rate band for multifamily/garden_lowrise")
	}
	if band.Min != 4.5 || band.Preferred[0] != 5.5 || band.Max != 7.0 {
		t.Errorf("Expected [4.5, 5.5, 7.0], got [%v, %v, %v]", band.Min, band.Preferred[0], band.Max)
	}
	if band.Source == "" {
		t.Error("Expected band to carry a source")
	}
}

func TestRepository_LookupNormalizesKeys(t *testing.T) {
	repo := NewRepository()

	band, ok := repo.Lookup("Mixed Use", "res+retail", "Cap Rate")
	if !ok {
		t.Fatal("Expected lookup to tolerate spacing and case")
	}
	if band.Preferred[0] != 5.75 {
		t.Errorf("Expected preferred 5.75, got %v", band.Preferred[0])
	}

	if _, ok := repo.Lookup("life-science", "wet lab", "dscr"); !ok {
		t.Error("Expected hyphens and spaces to normalize to underscores")
	}
}

func TestRepository_UnknownSubclassFallsBackToFirst(t *testing.T) {
	repo := NewRepository()

	// garden_lowrise is the first multifamily subclass
	fallback, ok := repo.Lookup("multifamily", "penthouse_collection", "cap_rate")
	if !ok {
		t.Fatal("Expected fallback band for unknown subclass")
	}
	first, _ := repo.Lookup("multifamily", "garden_lowrise", "cap_rate")
	if fallback.Preferred[0] != first.Preferred[0] {
		t.Errorf("Expected fallback to first subclass band %v, got %v", first.Preferred[0], fallback.Preferred[0])
	}
}

func TestRepository_UnknownAssetClass(t *testing.T) {
	repo := NewRepository()

	if _, ok := repo.Lookup("parking_garage", "underground", "cap_rate"); ok {
		t.Error("Expected no band for unknown asset class")
	}
	if repo.HasAssetClass("parking_garage") {
		t.Error("Expected HasAssetClass false for unknown class")
	}
	if !repo.HasAssetClass("hospitality") {
		t.Error("Expected HasAssetClass true for hospitality")
	}
}

func TestRepository_MetricsFor(t *testing.T) {
	repo := NewRepository()

	metrics := repo.MetricsFor("industrial", "bulk_distribution")
	if len(metrics) != 10 {
		t.Errorf("Expected 10 bulk_distribution metrics, got %d", len(metrics))
	}
	if band, ok := metrics["clear_height"]; !ok {
		t.Error("Expected clear_height band for bulk distribution")
	} else if band.Min != 32 {
		t.Errorf("Expected clear_height min 32, got %v", band.Min)
	}
	if band, ok := metrics["dock_doors"]; !ok {
		t.Error("Expected dock_doors band for bulk distribution")
	} else if band.Min != 20 {
		t.Errorf("Expected dock_doors min 20, got %v", band.Min)
	}

	// Unknown subclass returns the first subclass's metrics
	fallback := repo.MetricsFor("industrial", "unknown")
	if len(fallback) != len(metrics) {
		t.Errorf("Expected fallback metrics to match first subclass, got %d vs %d", len(fallback), len(metrics))
	}

	if got := repo.MetricsFor("unknown", ""); len(got) != 0 {
		t.Errorf("Expected empty metrics for unknown asset class, got %d", len(got))
	}
}

func TestRepository_SubclassOrder(t *testing.T) {
	repo := NewRepository()

	order := repo.Subclasses("hospitality")
	if len(order) != 6 {
		t.Fatalf("Expected 6 hospitality subclasses, got %d", len(order))
	}
	if order[0] != "full_service" {
		t.Errorf("Expected full_service first, got %s", order[0])
	}
}

func TestRepository_LoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "benchmarks.yaml")
	content := `
office:
  downtown:
    cap_rate: [5.0, 6.0, 7.0, "Internal Research 2025"]
    occupancy: [85, [90, 94], 97, "Internal Research 2025"]
  suburban:
    cap_rate: [5.5, 6.5, 8.0, "Internal Research 2025"]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	repo, err := NewRepositoryFromFile(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	band, ok := repo.Lookup("office", "downtown", "cap_rate")
	if !ok {
		t.Fatal("Expected cap_rate band from loaded file")
	}
	if band.Source != "Internal Research 2025" {
		t.Errorf("Expected custom source, got '%s'", band.Source)
	}

	occ, ok := repo.Lookup("office", "downtown", "occupancy")
	if !ok {
		t.Fatal("Expected occupancy band from loaded file")
	}
	if len(occ.Preferred) != 2 || occ.Preferred[0] != 90 || occ.Preferred[1] != 94 {
		t.Errorf("Expected preferred range [90, 94], got %v", occ.Preferred)
	}

	// Declaration order in the file drives the fallback
	if order := repo.Subclasses("office"); len(order) != 2 || order[0] != "downtown" {
		t.Errorf("Expected downtown first in file order, got %v", order)
	}
}

func TestRepository_LoadFromFileErrors(t *testing.T) {
	if _, err := NewRepositoryFromFile("/nonexistent/benchmarks.yaml"); err == nil {
		t.Error("Expected error for missing file")
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("- not\n- a\n- mapping\n"), 0o644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}
	if _, err := NewRepositoryFromFile(path); err == nil {
		t.Error("Expected error for non-mapping table")
	}
}
