package catalogs

import (
	"fmt"
	"sync"
	"testing"
)

func testPublication(id PublicationID) *Publication {
	return &Publication{
		ID:          id,
		Release:     ReleaseDR12,
		ScanColumns: ColumnsPerpFirst,
		Variants:    []string{"physical"},
	}
}

func TestPublicationsSetGet(t *testing.T) {
	pubs := NewPublications()

	if err := pubs.Set("alpha2020", testPublication("alpha2020")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	pub, ok := pubs.Get("alpha2020")
	if !ok {
		t.Fatal("Get() ok = false, want true")
	}
	if pub.ID != "alpha2020" {
		t.Errorf("ID = %q, want alpha2020", pub.ID)
	}

	if _, ok := pubs.Get("nosuch1999"); ok {
		t.Error("Get(nosuch1999) ok = true, want false")
	}

	if err := pubs.Set("alpha2020", nil); err == nil {
		t.Error("Set(nil) error = nil, want failure")
	}
}

func TestPublicationsAdd(t *testing.T) {
	pubs := NewPublications()

	if err := pubs.Add(testPublication("alpha2020")); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if err := pubs.Add(testPublication("alpha2020")); err == nil {
		t.Error("Add() of duplicate error = nil, want failure")
	}
	if err := pubs.Add(nil); err == nil {
		t.Error("Add(nil) error = nil, want failure")
	}
}

func TestPublicationsLenListClear(t *testing.T) {
	pubs := NewPublications(WithPublicationsCapacity(4))

	for _, id := range []PublicationID{"a2020", "b2021", "c2022"} {
		if err := pubs.Add(testPublication(id)); err != nil {
			t.Fatalf("Add(%s) error = %v", id, err)
		}
	}

	if got := pubs.Len(); got != 3 {
		t.Errorf("Len() = %d, want 3", got)
	}
	if got := len(pubs.List()); got != 3 {
		t.Errorf("len(List()) = %d, want 3", got)
	}
	if !pubs.Exists("b2021") {
		t.Error("Exists(b2021) = false, want true")
	}

	pubs.Clear()
	if got := pubs.Len(); got != 0 {
		t.Errorf("Len() after Clear = %d, want 0", got)
	}
}

func TestPublicationsForEach(t *testing.T) {
	pubs := NewPublications()
	for _, id := range []PublicationID{"a2020", "b2021", "c2022"} {
		if err := pubs.Add(testPublication(id)); err != nil {
			t.Fatalf("Add(%s) error = %v", id, err)
		}
	}

	count := 0
	pubs.ForEach(func(_ PublicationID, _ *Publication) bool {
		count++
		return count < 2 // stop early
	})
	if count != 2 {
		t.Errorf("ForEach visited %d publications, want 2", count)
	}
}

func TestPublicationsMapIsCopy(t *testing.T) {
	pubs := NewPublications()
	if err := pubs.Add(testPublication("alpha2020")); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	m := pubs.Map()
	delete(m, "alpha2020")
	if !pubs.Exists("alpha2020") {
		t.Error("mutating Map() result affected the collection")
	}
}

func TestPublicationsConcurrentAccess(t *testing.T) {
	pubs := NewPublications()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		id := PublicationID(fmt.Sprintf("pub%d", i))
		go func() {
			defer wg.Done()
			_ = pubs.Set(id, testPublication(id))
		}()
		go func() {
			defer wg.Done()
			pubs.Get(id)
			pubs.Len()
		}()
	}
	wg.Wait()

	if got := pubs.Len(); got != 10 {
		t.Errorf("Len() = %d, want 10", got)
	}
}
