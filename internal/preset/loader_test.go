package preset

import (
	"os"
	"path/filepath"
	"testing"
)

const literaturePreset = `id: literatura-comparada
name: Seminario de Literatura Comparada
input:
  title: Seminario de Literatura Comparada
  sessions: 12
  session_duration: 90
  midterm_exams:
    - id: 1
      percentage: 30
    - id: 2
      percentage: 30
  final_percentage: 40
  semester: 2024-2
  level: grado
  weekly_hours: "3"
  format: presencial
  competencies: Análisis crítico de textos literarios, argumentación escrita.
`

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoader(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "literatura.yaml", literaturePreset)
	writeFile(t, dir, "otro.yaml", "id: metodologia\nname: Metodología de la Investigación\ninput:\n  title: Metodología\n  sessions: 10\n  session_duration: 120\n  level: posgrado\n  format: virtual\n")
	writeFile(t, dir, "roto.yaml", "{{{not yaml")
	writeFile(t, dir, "sin-id.yaml", "name: anon\n")
	writeFile(t, dir, "notas.txt", "ignorado")

	loader, err := NewLoader(dir)
	if err != nil {
		t.Fatalf("NewLoader() error = %v", err)
	}

	all := loader.All()
	if len(all) != 2 {
		t.Fatalf("All() = %d presets, want 2", len(all))
	}
	// Sorted by name.
	if all[0].Name != "Metodología de la Investigación" {
		t.Errorf("first preset = %q, want sorted by name", all[0].Name)
	}

	p, ok := loader.Get("literatura-comparada")
	if !ok {
		t.Fatal("Get() did not find the literature preset")
	}
	if p.Input.Sessions != 12 || p.Input.SessionDuration != 90 {
		t.Errorf("input = %+v, want 12 sessions of 90 minutes", p.Input)
	}
	if p.Input.TotalAssigned() != 100 {
		t.Errorf("TotalAssigned() = %d, want 100", p.Input.TotalAssigned())
	}
}

func TestLoader_MissingDir(t *testing.T) {
	// A missing directory loads zero presets rather than failing startup.
	loader, err := NewLoader(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("NewLoader() error = %v", err)
	}
	if len(loader.All()) != 0 {
		t.Errorf("All() = %d presets, want 0", len(loader.All()))
	}
}
