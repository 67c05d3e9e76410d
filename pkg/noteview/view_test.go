package noteview

import (
	"testing"

	"notekeep-be/internal/entity"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func ids(notes []*entity.Note) []int {
	result := make([]int, 0, len(notes))
	for _, n := range notes {
		result = append(result, n.Id)
	}
	return result
}

func TestVisible(t *testing.T) {
	notes := []*entity.Note{
		{Id: 1, Title: "Groceries", Content: "milk eggs", FolderId: intPtr(5)},
		{Id: 2, Title: "Trashed", FolderId: intPtr(5), IsTrashed: true},
		{Id: 3, Title: "Old plan", Content: "quarterly", IsArchived: true},
		{Id: 4, Title: "Ideas", Content: "go hiking", Labels: []entity.Label{{Id: 7, Name: "outdoor"}}},
	}

	tests := []struct {
		name string
		view View
		want []int
	}{
		{
			name: "default view excludes trashed and archived",
			view: View{},
			want: []int{1, 4},
		},
		{
			name: "archived view shows archived only",
			view: View{ShowArchived: true},
			want: []int{3},
		},
		{
			name: "folder filter",
			view: View{FolderId: intPtr(5)},
			want: []int{1},
		},
		{
			name: "folder filter ignored in archived view",
			view: View{FolderId: intPtr(5), ShowArchived: true},
			want: []int{3},
		},
		{
			name: "search matches title case-insensitive",
			view: View{SearchTerm: "GROC"},
			want: []int{1},
		},
		{
			name: "search matches content",
			view: View{SearchTerm: "hiking"},
			want: []int{4},
		},
		{
			name: "search with no match yields empty set",
			view: View{SearchTerm: "zzz-not-here"},
			want: []int{},
		},
		{
			name: "label filter",
			view: View{LabelId: intPtr(7)},
			want: []int{4},
		},
		{
			name: "label filter with unknown label",
			view: View{LabelId: intPtr(999)},
			want: []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Visible(notes, tt.view)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestVisibleNeverReturnsTrashed(t *testing.T) {
	notes := []*entity.Note{
		{Id: 1, IsTrashed: true},
		{Id: 2, IsTrashed: true, IsArchived: true},
		{Id: 3, IsTrashed: true, IsPinned: true},
	}

	for _, view := range []View{{}, {ShowArchived: true}, {SearchTerm: ""}} {
		assert.Empty(t, Visible(notes, view))
	}
}

func TestVisibleArchivedFlipIsDisjoint(t *testing.T) {
	notes := []*entity.Note{
		{Id: 1},
		{Id: 2, IsArchived: true},
		{Id: 3},
		{Id: 4, IsArchived: true},
	}

	active := Visible(notes, View{})
	archived := Visible(notes, View{ShowArchived: true})

	assert.Equal(t, []int{1, 3}, ids(active))
	assert.Equal(t, []int{2, 4}, ids(archived))
	for _, a := range active {
		assert.NotContains(t, ids(archived), a.Id)
	}
}

func TestVisibleFolderExample(t *testing.T) {
	notes := []*entity.Note{
		{Id: 1, Title: "A", FolderId: intPtr(5)},
		{Id: 2, Title: "B", FolderId: intPtr(5), IsTrashed: true},
	}
	got := Visible(notes, View{FolderId: intPtr(5)})
	assert.Equal(t, []int{1}, ids(got))
}

func TestPartition(t *testing.T) {
	notes := []*entity.Note{
		{Id: 1, IsPinned: true},
		{Id: 2},
		{Id: 3, IsPinned: true},
	}

	pinned, others := Partition(notes, View{})
	assert.Equal(t, []int{1, 3}, ids(pinned))
	assert.Equal(t, []int{2}, ids(others))
}

func TestPartitionArchivedViewHasNoPinnedSection(t *testing.T) {
	notes := []*entity.Note{
		{Id: 1, IsArchived: true, IsPinned: true},
		{Id: 2, IsArchived: true},
	}

	pinned, others := Partition(notes, View{ShowArchived: true})
	assert.Empty(t, pinned)
	assert.Equal(t, []int{1, 2}, ids(others))
}
