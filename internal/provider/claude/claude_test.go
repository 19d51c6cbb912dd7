package claude

import "testing"

func TestNew_RequiresKey(t *testing.T) {
	if _, err := New(""); err == nil {
		t.Error("expected error when API key is empty")
	}
}

func TestNew(t *testing.T) {
	p, err := New("sk-ant-test")
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if p.Name() != "claude" {
		t.Errorf("Name() = %q, want claude", p.Name())
	}
}

func TestModels(t *testing.T) {
	models := Models()
	if len(models) == 0 {
		t.Fatal("expected known models")
	}
	for _, m := range models {
		if m.ID == "" {
			t.Error("model with empty ID")
		}
	}
}
