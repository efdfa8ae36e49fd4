package service

import (
	"context"
	"reflect"
	"testing"
)

func TestListPageNormalization(t *testing.T) {
	store := newFakeAccountStore()
	seedUsers(store, 5)
	svc := NewUserService(store)

	zero, err := svc.List(context.Background(), 0, 10)
	if err != nil {
		t.Fatalf("List(0, 10): %v", err)
	}
	one, err := svc.List(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("List(1, 10): %v", err)
	}
	if !reflect.DeepEqual(zero, one) {
		t.Fatalf("List(0, 10) and List(1, 10) differ:\n%+v\n%+v", zero, one)
	}
	if one.CurrentPage != 1 {
		t.Fatalf("expected page 1, got %d", one.CurrentPage)
	}
}

func TestListPageSizeResetsToDefault(t *testing.T) {
	store := newFakeAccountStore()
	seedUsers(store, 25)
	svc := NewUserService(store)

	tests := []struct {
		name    string
		perPage int
	}{
		{name: "zero", perPage: 0},
		{name: "negative", perPage: -3},
		{name: "over-max", perPage: 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := svc.List(context.Background(), 1, tt.perPage)
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			// Out-of-range sizes reset to 10, they do not clamp to 100.
			if page.ItemsPerPage != 10 {
				t.Fatalf("expected itemsPerPage 10, got %d", page.ItemsPerPage)
			}
			if len(page.Data) != 10 {
				t.Fatalf("expected 10 items, got %d", len(page.Data))
			}
		})
	}
}

func TestListEmptyStore(t *testing.T) {
	svc := NewUserService(newFakeAccountStore())

	page, err := svc.List(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(page.Data) != 0 || page.TotalItems != 0 {
		t.Fatalf("expected empty page, got %+v", page)
	}
	if page.TotalPages != 1 {
		t.Fatalf("totalPages must be at least 1, got %d", page.TotalPages)
	}
	if page.HasNextPage || page.HasPreviousPage {
		t.Fatalf("no paging flags expected on an empty set: %+v", page)
	}
}

func TestListPagingMetadata(t *testing.T) {
	store := newFakeAccountStore()
	seedUsers(store, 25)
	svc := NewUserService(store)

	tests := []struct {
		name       string
		page       int
		wantLen    int
		wantNext   bool
		wantPrev   bool
		totalPages int
	}{
		{name: "first", page: 1, wantLen: 10, wantNext: true, wantPrev: false, totalPages: 3},
		{name: "middle", page: 2, wantLen: 10, wantNext: true, wantPrev: true, totalPages: 3},
		{name: "last", page: 3, wantLen: 5, wantNext: false, wantPrev: true, totalPages: 3},
		{name: "past-end", page: 4, wantLen: 0, wantNext: false, wantPrev: true, totalPages: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := svc.List(context.Background(), tt.page, 10)
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			if len(page.Data) != tt.wantLen {
				t.Fatalf("expected %d items, got %d", tt.wantLen, len(page.Data))
			}
			if page.TotalItems != 25 || page.TotalPages != tt.totalPages {
				t.Fatalf("metadata mismatch: %+v", page)
			}
			if page.HasNextPage != tt.wantNext || page.HasPreviousPage != tt.wantPrev {
				t.Fatalf("paging flags mismatch: %+v", page)
			}
		})
	}
}

func TestListNewestFirstAndStable(t *testing.T) {
	store := newFakeAccountStore()
	seedUsers(store, 12)
	svc := NewUserService(store)

	first, err := svc.List(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	for i := 1; i < len(first.Data); i++ {
		if first.Data[i].CreatedAt.After(first.Data[i-1].CreatedAt) {
			t.Fatalf("ordering not newest-first at index %d", i)
		}
	}

	again, err := svc.List(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if !reflect.DeepEqual(first, again) {
		t.Fatal("repeated calls returned different orderings")
	}
}

func TestListOmitsPasswordHash(t *testing.T) {
	store := newFakeAccountStore()
	seedUsers(store, 3)
	for _, u := range store.users {
		u.PasswordHash = "secret-hash"
	}
	svc := NewUserService(store)

	page, err := svc.List(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	// UserSummary has no hash field at all; make sure the projection
	// still carries the identity fields.
	for _, item := range page.Data {
		if item.ID == "" || item.Username == "" {
			t.Fatalf("incomplete projection: %+v", item)
		}
	}
}
