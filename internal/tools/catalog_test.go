package tools

import (
	"context"
	"strings"
	"testing"
)

func TestLoadCatalog(t *testing.T) {
	paths, err := LoadCatalog()
	if err != nil {
		t.Fatalf("LoadCatalog failed: %v", err)
	}
	if len(paths) == 0 {
		t.Fatal("catalog is empty")
	}
	for _, p := range paths {
		if p.Method == "" || p.Summary == "" {
			t.Fatalf("incomplete catalog entry: %+v", p)
		}
		if !strings.HasPrefix(p.Path, "/api/") {
			t.Fatalf("catalog path outside /api/: %s", p.Path)
		}
	}
}

func TestListAPIPathsNeedsNoExecutor(t *testing.T) {
	exec := &mockExecutor{}
	r := newTestRegistry(exec)

	out, err := r.Invoke(context.Background(), "list_api_paths", nil)
	if err != nil {
		t.Fatalf("list_api_paths failed: %v", err)
	}
	paths, ok := out.([]APIPath)
	if !ok {
		t.Fatalf("expected []APIPath, got %T", out)
	}
	if len(paths) == 0 {
		t.Fatal("no endpoints returned")
	}
	if len(exec.calls) != 0 {
		t.Fatalf("catalog listing performed %d requests", len(exec.calls))
	}
}
