package foldertree

import "notekeep-be/internal/entity"

// Node is a folder plus its resolved children.
type Node struct {
	Folder   *entity.Folder
	Children []*Node
}

// Build assembles the folder hierarchy from a flat slice. Folders with a
// nil parent become roots; a folder whose parent id is not present in the
// input is promoted to root rather than dropped. Runs in O(n), no cycle
// detection.
func Build(folders []*entity.Folder) []*Node {
	nodes := make(map[int]*Node, len(folders))
	for _, f := range folders {
		nodes[f.Id] = &Node{Folder: f}
	}

	roots := make([]*Node, 0)
	for _, f := range folders {
		node := nodes[f.Id]
		if f.ParentId == nil {
			roots = append(roots, node)
			continue
		}
		parent, ok := nodes[*f.ParentId]
		if !ok {
			roots = append(roots, node)
			continue
		}
		parent.Children = append(parent.Children, node)
	}
	return roots
}

// Descendants returns the ids of every folder below the given root id,
// walking the parent links of the flat slice. The root itself is not
// included.
func Descendants(folders []*entity.Folder, rootId int) []int {
	children := make(map[int][]int, len(folders))
	for _, f := range folders {
		if f.ParentId != nil {
			children[*f.ParentId] = append(children[*f.ParentId], f.Id)
		}
	}

	var result []int
	queue := []int{rootId}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, child := range children[id] {
			result = append(result, child)
			queue = append(queue, child)
		}
	}
	return result
}
