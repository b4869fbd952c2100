package framedata

import "testing"

func TestViewZeroValue(t *testing.T) {
	var view View[int32]
	if view.Len() != 0 {
		t.Errorf("zero View length = %d, want 0", view.Len())
	}
	for range view.All() {
		t.Error("zero View yielded a value")
	}
}

func TestViewReiterable(t *testing.T) {
	fd := New(4096)
	for i := 0; i < 10; i++ {
		Push(fd, int32(i))
	}
	view := Data[int32](fd)

	// Each range over All starts a fresh cursor
	for pass := 0; pass < 3; pass++ {
		i := int32(0)
		for v := range view.All() {
			if *v != i {
				t.Fatalf("pass %d: value = %d, want %d", pass, *v, i)
			}
			i++
		}
		if i != 10 {
			t.Fatalf("pass %d: iterated %d values, want 10", pass, i)
		}
	}
}

func TestViewEarlyBreak(t *testing.T) {
	fd := New(4096)
	for i := 0; i < 10; i++ {
		Push(fd, int32(i))
	}
	view := Data[int32](fd)

	count := 0
	for range view.All() {
		count++
		if count == 3 {
			break
		}
	}
	if count != 3 {
		t.Errorf("iterated %d values after break, want 3", count)
	}

	// A broken-out-of iteration does not affect later ones
	count = 0
	for range view.All() {
		count++
	}
	if count != 10 {
		t.Errorf("second iteration saw %d values, want 10", count)
	}
}

func TestViewAt(t *testing.T) {
	fd := New(4096)
	Push(fd, int32(5))
	Push(fd, int32(6))

	view := Data[int32](fd)
	if *view.At(0) != 5 || *view.At(1) != 6 {
		t.Errorf("At = (%d, %d), want (5, 6)", *view.At(0), *view.At(1))
	}
}

func TestViewSeesLaterPushes(t *testing.T) {
	// Data re-queried after more pushes reflects them; a previously taken
	// View is a snapshot of the address slice at query time.
	fd := New(4096)
	Push(fd, int32(1))
	before := Data[int32](fd)

	Push(fd, int32(2))
	after := Data[int32](fd)

	if before.Len() != 1 {
		t.Errorf("earlier view length = %d, want 1", before.Len())
	}
	if after.Len() != 2 {
		t.Errorf("re-queried view length = %d, want 2", after.Len())
	}
}
