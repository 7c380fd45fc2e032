package agent

import (
	"sort"
	"testing"
)

func TestListAgentsSorted(t *testing.T) {
	names := ListAgents()
	if len(names) == 0 {
		t.Fatal("no agents registered")
	}
	if !sort.StringsAreSorted(names) {
		t.Errorf("agent list not sorted: %v", names)
	}

	// Deterministic across calls
	again := ListAgents()
	if len(again) != len(names) {
		t.Fatalf("list size changed: %d vs %d", len(names), len(again))
	}
	for i := range names {
		if names[i] != again[i] {
			t.Errorf("list order changed at %d: %q vs %q", i, names[i], again[i])
		}
	}
}

func TestDefaultAgentRegistered(t *testing.T) {
	if !IsRegistered("CodeActAgent") {
		t.Error("CodeActAgent missing from registry")
	}
	if IsRegistered("NoSuchAgent") {
		t.Error("unknown agent reported registered")
	}
}

func TestRegisterReplaces(t *testing.T) {
	Register(Info{Name: "CodeActAgent", Description: "updated"})
	info, ok := Get("CodeActAgent")
	if !ok || info.Description != "updated" {
		t.Errorf("re-registration not applied: %+v", info)
	}
}
