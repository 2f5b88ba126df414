package registry

import "testing"

func TestRegisterAndLookup(t *testing.T) {
	Register(Variant{ID: "test_5", Title: "Test 5x5", Size: 5})

	v, err := Lookup("test_5")
	if err != nil {
		t.Fatalf("Lookup() failed: %v", err)
	}
	if v.Size != 5 || v.Title != "Test 5x5" {
		t.Errorf("Lookup() = %+v", v)
	}
	if !Exists("test_5") {
		t.Error("Exists() should report registered variant")
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, err := Lookup("no_such_variant"); err == nil {
		t.Error("Lookup() should fail for unknown variant")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register(Variant{ID: "test_dup", Title: "Dup", Size: 4})

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register(Variant{ID: "test_dup", Title: "Dup", Size: 4})
}

func TestRegisterInvalidSizePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Register with size 1 should panic")
		}
	}()
	Register(Variant{ID: "test_tiny", Title: "Tiny", Size: 1})
}

func TestListSorted(t *testing.T) {
	Register(Variant{ID: "test_list_b", Title: "B", Size: 7})
	Register(Variant{ID: "test_list_a", Title: "A", Size: 3})

	list := List()
	for i := 1; i < len(list); i++ {
		prev, cur := list[i-1], list[i]
		if prev.Size > cur.Size || (prev.Size == cur.Size && prev.ID > cur.ID) {
			t.Errorf("List() not sorted at %d: %v then %v", i, prev, cur)
		}
	}
}
