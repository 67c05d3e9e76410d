package foldertree

import (
	"testing"

	"notekeep-be/internal/entity"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestBuild(t *testing.T) {
	tests := []struct {
		name      string
		folders   []*entity.Folder
		wantRoots []int
	}{
		{
			name:      "empty input",
			folders:   nil,
			wantRoots: []int{},
		},
		{
			name: "flat list of roots",
			folders: []*entity.Folder{
				{Id: 1, Name: "Work"},
				{Id: 2, Name: "Personal"},
			},
			wantRoots: []int{1, 2},
		},
		{
			name: "nested under parent",
			folders: []*entity.Folder{
				{Id: 1, Name: "Work"},
				{Id: 2, Name: "Projects", ParentId: intPtr(1)},
				{Id: 3, Name: "Archive", ParentId: intPtr(1)},
			},
			wantRoots: []int{1},
		},
		{
			name: "dangling parent promoted to root",
			folders: []*entity.Folder{
				{Id: 1, Name: "Work"},
				{Id: 2, Name: "Orphan", ParentId: intPtr(99)},
			},
			wantRoots: []int{1, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roots := Build(tt.folders)

			gotRoots := make([]int, 0, len(roots))
			for _, r := range roots {
				gotRoots = append(gotRoots, r.Folder.Id)
			}
			assert.Equal(t, tt.wantRoots, gotRoots)
		})
	}
}

func TestBuildPlacesEveryFolderExactlyOnce(t *testing.T) {
	folders := []*entity.Folder{
		{Id: 1, Name: "Work"},
		{Id: 2, Name: "Projects", ParentId: intPtr(1)},
		{Id: 3, Name: "Deep", ParentId: intPtr(2)},
		{Id: 4, Name: "Personal"},
		{Id: 5, Name: "Orphan", ParentId: intPtr(42)},
	}

	roots := Build(folders)

	seen := make(map[int]int)
	var walk func(nodes []*Node)
	walk = func(nodes []*Node) {
		for _, n := range nodes {
			seen[n.Folder.Id]++
			walk(n.Children)
		}
	}
	walk(roots)

	assert.Len(t, seen, len(folders))
	for id, count := range seen {
		assert.Equalf(t, 1, count, "folder %d placed %d times", id, count)
	}
}

func TestBuildChildrenOrder(t *testing.T) {
	folders := []*entity.Folder{
		{Id: 1, Name: "Root"},
		{Id: 2, Name: "First", ParentId: intPtr(1)},
		{Id: 3, Name: "Second", ParentId: intPtr(1)},
	}

	roots := Build(folders)
	assert.Len(t, roots, 1)
	assert.Len(t, roots[0].Children, 2)
	assert.Equal(t, 2, roots[0].Children[0].Folder.Id)
	assert.Equal(t, 3, roots[0].Children[1].Folder.Id)
}

func TestDescendants(t *testing.T) {
	folders := []*entity.Folder{
		{Id: 1, Name: "Root"},
		{Id: 2, Name: "Child", ParentId: intPtr(1)},
		{Id: 3, Name: "Grandchild", ParentId: intPtr(2)},
		{Id: 4, Name: "Unrelated"},
	}

	assert.ElementsMatch(t, []int{2, 3}, Descendants(folders, 1))
	assert.ElementsMatch(t, []int{3}, Descendants(folders, 2))
	assert.Empty(t, Descendants(folders, 4))
}
