package settings

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFile(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "settings.json"))

	st, err := store.Load()
	if err != nil {
		t.Fatalf("Load on missing file: %v", err)
	}
	if st != nil {
		t.Errorf("expected nil settings, got %+v", st)
	}
}

func TestStoreLoadRoundTrip(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "settings.json"))

	in := &Settings{
		LLMModel:               "anthropic/claude-sonnet-4-20250514",
		LLMAPIKey:              "sk-ant-secret",
		Agent:                  "CodeActAgent",
		EnableDefaultCondenser: true,
	}
	if err := store.Store(in); err != nil {
		t.Fatalf("Store: %v", err)
	}

	if in.InstallID == "" {
		t.Error("install id not stamped on first store")
	}

	out, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if out == nil {
		t.Fatal("Load returned nil after Store")
	}
	if out.LLMModel != in.LLMModel {
		t.Errorf("model = %q, want %q", out.LLMModel, in.LLMModel)
	}
	if out.LLMAPIKey.Reveal() != "sk-ant-secret" {
		t.Errorf("api key did not round trip: %q", out.LLMAPIKey.Reveal())
	}
	if out.InstallID != in.InstallID {
		t.Errorf("install id changed across round trip")
	}
}

func TestStoreKeepsInstallID(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "settings.json"))

	first := &Settings{LLMModel: "openai/gpt-4o"}
	if err := store.Store(first); err != nil {
		t.Fatal(err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatal(err)
	}
	loaded.LLMModel = "openai/o3"
	if err := store.Store(loaded); err != nil {
		t.Fatal(err)
	}

	again, err := store.Load()
	if err != nil {
		t.Fatal(err)
	}
	if again.InstallID != first.InstallID {
		t.Errorf("install id not stable: %q vs %q", again.InstallID, first.InstallID)
	}
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := NewFileStore(path).Load(); err == nil {
		t.Error("expected error for corrupt settings file")
	}
}

func TestSecretsPersistUnmasked(t *testing.T) {
	// The mask is a display concern; the stored document carries the
	// real value so a reload can use it.
	path := filepath.Join(t.TempDir(), "settings.json")
	store := NewFileStore(path)

	if err := store.Store(&Settings{SearchAPIKey: "tvly-abc123"}); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatal(err)
	}
	if raw["search_api_key"] != "tvly-abc123" {
		t.Errorf("persisted key = %v", raw["search_api_key"])
	}
}
