package service

import "testing"

func TestDiff(t *testing.T) {
	before := map[string]any{"name": "Old School", "city": "Bandung", "is_active": true}
	after := map[string]any{"name": "New School", "city": "Bandung", "is_active": true, "motto": "Learn"}

	got := Diff(before, after)

	if len(got) != 2 {
		t.Fatalf("diff has %d entries, want 2: %v", len(got), got)
	}
	name, ok := got["name"].(map[string]any)
	if !ok || name["from"] != "Old School" || name["to"] != "New School" {
		t.Errorf("name entry = %v, want from/to pair", got["name"])
	}
	if _, ok := got["motto"]; !ok {
		t.Error("newly set field missing from diff")
	}
	if _, ok := got["city"]; ok {
		t.Error("unchanged field present in diff")
	}
}

func TestDiffEmpty(t *testing.T) {
	same := map[string]any{"a": 1}
	if got := Diff(same, map[string]any{"a": 1}); len(got) != 0 {
		t.Fatalf("diff of identical maps = %v, want empty", got)
	}
}
