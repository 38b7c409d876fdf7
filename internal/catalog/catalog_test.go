package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleDoc = `
managers:
  default: "+375290000000"
  georgia: "+375291234567"
  avia: "+375298888888"
tours:
  georgia:
    name: Грузия
    description: "Грузия — прекрасная страна с горами, морем и вином."
    url: https://example.com/georgia
  abkhazia:
    name: Абхазия
    description: "<b>Абхазия: два варианта!</b>"
    url: https://example.com/abkhazia
  piter:
    name: Питер
    description: "<b>Тур в Санкт-Петербург</b>"
    url: https://example.com/piter
    manager_contact: "+375295678901"
`

func TestParsePreservesOrder(t *testing.T) {
	cat, _, err := Parse([]byte(sampleDoc), "")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := []string{"georgia", "abkhazia", "piter"}
	got := cat.Keys()
	if len(got) != len(want) {
		t.Fatalf("keys = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("keys[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestParseTourFields(t *testing.T) {
	cat, dir, err := Parse([]byte(sampleDoc), "")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	tour, ok := cat.Get("piter")
	if !ok {
		t.Fatal("piter not found")
	}
	if tour.Key != "piter" || tour.Name != "Питер" {
		t.Fatalf("unexpected tour: %+v", tour)
	}
	if tour.ManagerContact != "+375295678901" {
		t.Fatalf("manager override not decoded: %q", tour.ManagerContact)
	}
	if _, ok := cat.Get("atlantis"); ok {
		t.Fatal("unknown key must not resolve")
	}
	if dir.Resolve("georgia") != "+375291234567" {
		t.Fatalf("georgia contact = %q", dir.Resolve("georgia"))
	}
}

func TestDirectoryFallsBackToDefault(t *testing.T) {
	_, dir, err := Parse([]byte(sampleDoc), "")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := dir.Resolve("teriberka"); got != "+375290000000" {
		t.Fatalf("unknown key must resolve to default, got %q", got)
	}
	if got := dir.Resolve(""); got == "" {
		t.Fatal("resolve must never return empty")
	}
}

func TestParseRequiresDefaultContact(t *testing.T) {
	doc := `
tours:
  georgia:
    name: Грузия
    url: https://example.com/georgia
`
	if _, _, err := Parse([]byte(doc), ""); err == nil {
		t.Fatal("expected error without default contact")
	}
	_, dir, err := Parse([]byte(doc), "+375290000001")
	if err != nil {
		t.Fatalf("fallback contact should satisfy default: %v", err)
	}
	if dir.Default() != "+375290000001" {
		t.Fatalf("default = %q", dir.Default())
	}
}

func TestParseRejectsDuplicatesAndNamelessTours(t *testing.T) {
	dup := `
managers: {default: "+1"}
tours:
  georgia: {name: A, url: u}
  georgia: {name: B, url: u}
`
	if _, _, err := Parse([]byte(dup), ""); err == nil {
		t.Fatal("expected duplicate key error")
	}
	nameless := `
managers: {default: "+1"}
tours:
  georgia: {url: u}
`
	if _, _, err := Parse([]byte(nameless), ""); err == nil {
		t.Fatal("expected missing name error")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tours.yml")
	if err := os.WriteFile(path, []byte(sampleDoc), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cat, _, err := Load(path, "")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cat.Len() != 3 {
		t.Fatalf("len = %d, want 3", cat.Len())
	}
	if _, _, err := Load(filepath.Join(t.TempDir(), "missing.yml"), ""); err == nil {
		t.Fatal("expected error for missing file")
	}
}
