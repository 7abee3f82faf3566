package dataset

import (
	"testing"

	"github.com/eubelhor/house-scraper/app/member"
	"github.com/eubelhor/house-scraper/app/scraper"
)

func TestStore_SetAndGet(t *testing.T) {
	store := NewStore()

	if store.Count() != 0 {
		t.Errorf("Expected empty store, got %d members", store.Count())
	}
	if !store.UpdatedAt().IsZero() {
		t.Error("Expected zero update time for empty store")
	}

	members := []member.Member{
		{Name: "Jared Huffman", State: "CA", District: "2"},
	}
	stats := &scraper.Stats{Seats: 1, Parsed: 1}

	store.Set(members, stats)

	if store.Count() != 1 {
		t.Errorf("Expected 1 member, got %d", store.Count())
	}
	if store.Members()[0].Name != "Jared Huffman" {
		t.Errorf("Unexpected member: %+v", store.Members()[0])
	}
	if store.Stats().Seats != 1 {
		t.Errorf("Unexpected stats: %+v", store.Stats())
	}
	if store.UpdatedAt().IsZero() {
		t.Error("Expected update time to be set")
	}
}

func TestStore_SwapWholesale(t *testing.T) {
	store := NewStore()
	store.Set([]member.Member{{Name: "A B", State: "CA", District: "1"}}, &scraper.Stats{Seats: 1})

	first := store.UpdatedAt()

	store.Set([]member.Member{
		{Name: "C D", State: "TX", District: "1"},
		{Name: "E F", State: "TX", District: "2"},
	}, &scraper.Stats{Seats: 2})

	if store.Count() != 2 {
		t.Errorf("Expected replacement set of 2, got %d", store.Count())
	}
	if store.Members()[0].State != "TX" {
		t.Errorf("Expected old set to be fully replaced, got %+v", store.Members()[0])
	}
	if store.UpdatedAt().Before(first) {
		t.Error("Expected update time to advance")
	}
}
