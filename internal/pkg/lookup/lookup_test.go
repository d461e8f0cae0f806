package lookup

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestTableResolve(t *testing.T) {
	path := writeFile(t, "categories.json", `{"10":"Music","24":"Entertainment"}`)

	table, err := LoadTable(path, "Unknown")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := table.Resolve("10"); got != "Music" {
		t.Errorf("Resolve(10) = %q, want Music", got)
	}
	if got := table.Resolve("999"); got != "Unknown" {
		t.Errorf("Resolve(999) = %q, want fallback Unknown", got)
	}
}

func TestLoadTableMissingFile(t *testing.T) {
	if _, err := LoadTable(filepath.Join(t.TempDir(), "nope.json"), ""); err == nil {
		t.Fatal("expected error for missing lookup file")
	}
}

func TestLoadRegions(t *testing.T) {
	path := writeFile(t, "regions.json", `["IN","US","JP"]`)

	regions, err := LoadRegions(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(regions) != 3 || regions[0] != "IN" || regions[2] != "JP" {
		t.Errorf("unexpected regions: %v", regions)
	}
}

func TestLoadRegionsEmpty(t *testing.T) {
	path := writeFile(t, "regions.json", `[]`)
	if _, err := LoadRegions(path); err == nil {
		t.Fatal("expected error for empty region list")
	}
}
