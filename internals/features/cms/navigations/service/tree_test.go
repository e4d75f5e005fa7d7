package service

import (
	"testing"

	"github.com/google/uuid"

	"schoolhub_backend/internals/features/cms/navigations/model"
)

func item(id uuid.UUID, parent *uuid.UUID, slug string) model.NavigationMenuModel {
	return model.NavigationMenuModel{
		NavigationID:       id,
		NavigationParentID: parent,
		NavigationSlug:     slug,
		NavigationTitle:    slug,
	}
}

func TestBuildTree(t *testing.T) {
	home := uuid.New()
	about := uuid.New()
	team := uuid.New()
	history := uuid.New()

	rows := []model.NavigationMenuModel{
		item(home, nil, "home"),
		item(about, nil, "about"),
		item(team, &about, "team"),
		item(history, &about, "history"),
	}

	roots := BuildTree(rows)
	if len(roots) != 2 {
		t.Fatalf("roots = %d, want 2", len(roots))
	}
	if roots[0].NavigationSlug != "home" || roots[1].NavigationSlug != "about" {
		t.Errorf("root order not preserved: %s, %s", roots[0].NavigationSlug, roots[1].NavigationSlug)
	}
	if len(roots[1].Children) != 2 {
		t.Fatalf("about children = %d, want 2", len(roots[1].Children))
	}
	if roots[1].Children[0].NavigationSlug != "team" {
		t.Errorf("sibling order not preserved: %s", roots[1].Children[0].NavigationSlug)
	}
	if len(roots[0].Children) != 0 {
		t.Errorf("home must have no children")
	}
}

func TestBuildTreeOrphanBecomesRoot(t *testing.T) {
	missingParent := uuid.New()
	orphan := uuid.New()

	roots := BuildTree([]model.NavigationMenuModel{
		item(orphan, &missingParent, "orphan"),
	})
	// Parent hidden or deleted from the row set: the child still renders.
	if len(roots) != 1 || roots[0].NavigationSlug != "orphan" {
		t.Fatalf("orphan not promoted to root: %+v", roots)
	}
}

func TestBuildTreeEmpty(t *testing.T) {
	if roots := BuildTree(nil); len(roots) != 0 {
		t.Errorf("empty input produced %d roots", len(roots))
	}
}

func TestWouldCycle(t *testing.T) {
	a := uuid.New()
	b := uuid.New()
	c := uuid.New()
	d := uuid.New()

	// a -> b -> c, d standalone
	parents := map[uuid.UUID]*uuid.UUID{
		a: nil,
		b: &a,
		c: &b,
		d: nil,
	}

	cases := []struct {
		name      string
		itemID    uuid.UUID
		newParent *uuid.UUID
		want      bool
	}{
		{"to root", c, nil, false},
		{"to unrelated", a, &d, false},
		{"self parent", a, &a, true},
		{"direct child", a, &b, true},
		{"grandchild", a, &c, true},
		{"deeper item moves up", c, &a, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := WouldCycle(tc.itemID, tc.newParent, parents); got != tc.want {
				t.Errorf("WouldCycle = %v, want %v", got, tc.want)
			}
		})
	}
}
