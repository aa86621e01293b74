package models

import "testing"

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total int64
		limit int
		want  int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{250, 100, 3},
		{7, 1, 7},
	}
	for _, tc := range cases {
		if got := TotalPages(tc.total, tc.limit); got != tc.want {
			t.Fatalf("TotalPages(%d, %d) = %d, want %d", tc.total, tc.limit, got, tc.want)
		}
	}
}

func TestPageRequestNormalize(t *testing.T) {
	got := PageRequest{}.Normalize()
	if got.Page != DefaultPage || got.Limit != DefaultLimit {
		t.Fatalf("unexpected defaults: %+v", got)
	}
	got = PageRequest{Page: 3, Limit: 500}.Normalize()
	if got.Limit != MaxLimit || got.Offset() != 2*MaxLimit {
		t.Fatalf("unexpected clamp: %+v offset=%d", got, got.Offset())
	}
}

func TestNewPageNeverNilItems(t *testing.T) {
	p := NewPage[Board](nil, 0, PageRequest{Page: 1, Limit: 10})
	if p.Items == nil {
		t.Fatal("expected empty, non-nil items")
	}
}

func TestTaskStatus(t *testing.T) {
	for _, s := range TaskStatuses {
		if !s.Valid() {
			t.Fatalf("%s should be valid", s)
		}
	}
	if _, err := ParseTaskStatus("todo"); err == nil {
		t.Fatal("status matching is case-sensitive")
	}
	if s, err := ParseTaskStatus("DOING"); err != nil || s != TaskStatusDoing {
		t.Fatalf("unexpected parse result %q %v", s, err)
	}
}

func TestPatchEmpty(t *testing.T) {
	if !(BoardPatch{}).Empty() || !(TaskPatch{}).Empty() {
		t.Fatal("zero patches must be empty")
	}
	done := TaskStatusDone
	cols := TaskPatch{Status: &done}.Columns()
	if len(cols) != 1 || cols["status"] != "DONE" {
		t.Fatalf("unexpected columns %#v", cols)
	}
}
