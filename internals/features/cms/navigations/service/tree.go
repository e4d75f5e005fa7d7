// file: internals/features/cms/navigations/service/tree.go
package service

import (
	"github.com/google/uuid"

	"schoolhub_backend/internals/features/cms/navigations/model"
)

// MenuNode is a menu item with its children attached, ready for rendering.
type MenuNode struct {
	model.NavigationMenuModel
	Children []*MenuNode `json:"children"`
}

// BuildTree assembles the flat row set into a forest, siblings already
// ordered by the caller's query.
func BuildTree(rows []model.NavigationMenuModel) []*MenuNode {
	nodes := make(map[uuid.UUID]*MenuNode, len(rows))
	for i := range rows {
		nodes[rows[i].NavigationID] = &MenuNode{NavigationMenuModel: rows[i], Children: []*MenuNode{}}
	}

	var roots []*MenuNode
	for i := range rows {
		node := nodes[rows[i].NavigationID]
		if pid := rows[i].NavigationParentID; pid != nil {
			if parent, ok := nodes[*pid]; ok {
				parent.Children = append(parent.Children, node)
				continue
			}
		}
		roots = append(roots, node)
	}
	return roots
}

// WouldCycle reports whether setting item's parent to newParent creates a
// cycle, by walking the ancestor chain in the given parent map.
func WouldCycle(itemID uuid.UUID, newParent *uuid.UUID, parents map[uuid.UUID]*uuid.UUID) bool {
	cur := newParent
	for cur != nil {
		if *cur == itemID {
			return true
		}
		next, ok := parents[*cur]
		if !ok {
			return false
		}
		cur = next
	}
	return false
}
