package resume

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/anatolykoptev/go_resume/internal/engine"
)

// The store opens once per process, so the whole round-trip lives in one test.
func TestVersionStoreRoundTrip(t *testing.T) {
	engine.Init(engine.Config{
		StorePath: filepath.Join(t.TempDir(), "resumes.db"),
	})
	ctx := context.Background()

	rec := Record{
		Personal: Personal{Name: "Jane Smith", Summary: "Backend engineer"},
		Skills:   []string{"Go", "SQL"},
		Experience: []Experience{
			{Company: "Acme", Role: "Engineer", Duration: "2020-2024", Description: "Built services"},
		},
	}

	id1, err := SaveVersion(ctx, "first draft", rec)
	if err != nil {
		t.Fatalf("SaveVersion: %v", err)
	}
	id2, err := SaveVersion(ctx, "", rec)
	if err != nil {
		t.Fatalf("SaveVersion: %v", err)
	}
	if id2 <= id1 {
		t.Errorf("ids not increasing: %d then %d", id1, id2)
	}

	versions, err := ListVersions(ctx, 0)
	if err != nil {
		t.Fatalf("ListVersions: %v", err)
	}
	if len(versions) != 2 {
		t.Fatalf("ListVersions returned %d entries, want 2", len(versions))
	}
	// Newest first; blank label defaults.
	if versions[0].ID != id2 || versions[0].Label != "untitled" {
		t.Errorf("versions[0] = %+v", versions[0])
	}
	if versions[1].Label != "first draft" {
		t.Errorf("versions[1] = %+v", versions[1])
	}

	loaded, v, err := LoadVersion(ctx, id1)
	if err != nil {
		t.Fatalf("LoadVersion(%d): %v", id1, err)
	}
	if v.ID != id1 {
		t.Errorf("loaded version id = %d, want %d", v.ID, id1)
	}
	if loaded.Personal.Name != "Jane Smith" || len(loaded.Skills) != 2 {
		t.Errorf("loaded record = %+v", loaded)
	}
	if len(loaded.Experience) != 1 || loaded.Experience[0].Company != "Acme" {
		t.Errorf("loaded experience = %+v", loaded.Experience)
	}

	// id 0 loads the most recent snapshot.
	_, latest, err := LoadVersion(ctx, 0)
	if err != nil {
		t.Fatalf("LoadVersion(0): %v", err)
	}
	if latest.ID != id2 {
		t.Errorf("latest id = %d, want %d", latest.ID, id2)
	}

	if _, _, err := LoadVersion(ctx, 9999); err == nil {
		t.Error("LoadVersion of unknown id should fail")
	}
}
