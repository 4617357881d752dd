// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"context"
	"fmt"
	"testing"
	"time"
)

func openTestIndex(t *testing.T) *Index {
	t.Helper()
	idx, err := OpenIndex(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { idx.Close() })
	return idx
}

func TestIndexRecordAndRecent(t *testing.T) {
	idx := openTestIndex(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		r := &Run{
			Source:  "google",
			Query:   fmt.Sprintf("query %d", i),
			Items:   i * 10,
			File:    "/h/2026-03-14.json",
			Created: base.Add(time.Duration(i) * time.Minute),
		}
		if err := idx.Record(ctx, r); err != nil {
			t.Fatal(err)
		}
		if r.ID == 0 {
			t.Fatal("Record did not set ID")
		}
	}

	runs, err := idx.Recent(ctx, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 2 {
		t.Fatalf("got %d runs, want 2", len(runs))
	}
	if runs[0].Query != "query 2" || runs[1].Query != "query 1" {
		t.Errorf("runs not newest first: %q, %q", runs[0].Query, runs[1].Query)
	}
	if !runs[0].Created.Equal(base.Add(2 * time.Minute)) {
		t.Errorf("created = %v", runs[0].Created)
	}
	if runs[0].Items != 20 {
		t.Errorf("items = %d, want 20", runs[0].Items)
	}
}

func TestIndexRecentEmpty(t *testing.T) {
	idx := openTestIndex(t)

	runs, err := idx.Recent(context.Background(), 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 0 {
		t.Errorf("got %d runs from an empty index", len(runs))
	}

	runs, err = idx.Recent(context.Background(), 0)
	if err != nil || runs != nil {
		t.Errorf("Recent(0) = %v, %v", runs, err)
	}
}

func TestIndexReopen(t *testing.T) {
	dir := t.TempDir()
	idx, err := OpenIndex(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := idx.Record(context.Background(), &Run{Source: "gemini", Query: "q", Created: time.Now()}); err != nil {
		t.Fatal(err)
	}
	idx.Close()

	idx, err = OpenIndex(dir)
	if err != nil {
		t.Fatal(err)
	}
	defer idx.Close()

	runs, err := idx.Recent(context.Background(), 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 || runs[0].Source != "gemini" {
		t.Errorf("runs after reopen = %+v", runs)
	}
}
