package date

import "testing"

func TestAppend(t *testing.T) {
	h := new(History[string])
	d1, v1 := New(2025, 07, 01), "25 Jul 1"
	d2, v2 := New(2024, 07, 01), "24 Jul 1"

	// Test is about appending two values in reverse order and checking that everything is
	// as expected at every step of the way.

	if h.Len() != 0 {
		t.Errorf("History.Len() = %v want 0", h.Len())
	}

	h.Append(d1, v1)
	if h.Len() != 1 {
		t.Errorf("Append(d1, v1).Len() = %v want 1", h.Len())
	}

	h.Append(d2, v2)
	if h.Len() != 2 {
		t.Errorf("Append(d2, v2).Len() = %v want 2", h.Len())
	}

	if h.days[1] != d1 {
		t.Errorf("history[1].day = %v want %v", h.days[0], d1)
	}
	if h.days[0] != d2 {
		t.Errorf("history[0].day = %v want %v", h.days[1], d2)
	}
	if h.values[1] != v1 {
		t.Errorf("history[1].value = %v want %v", h.values[0], v1)
	}
	if h.values[0] != v2 {
		t.Errorf("history[0].value = %v want %v", h.values[1], v2)
	}

}

func TestAppend_overwrites(t *testing.T) {
	h := new(History[float64])
	d := New(2025, 7, 1)

	h.Append(d, 1.0)
	h.Append(d, 2.0)

	if h.Len() != 1 {
		t.Fatalf("History.Len() = %v want 1", h.Len())
	}
	if v, ok := h.Get(d); !ok || v != 2.0 {
		t.Errorf("Get(d) = %v, %v want 2.0, true", v, ok)
	}
}

func TestFirstLatest(t *testing.T) {
	h := new(History[float64])

	// empty history returns zero values
	if d, v := h.First(); !d.IsZero() || v != 0 {
		t.Errorf("First() on empty history = %v, %v want zero values", d, v)
	}
	if d, v := h.Latest(); !d.IsZero() || v != 0 {
		t.Errorf("Latest() on empty history = %v, %v want zero values", d, v)
	}

	d1, d2, d3 := New(2023, 1, 3), New(2023, 6, 15), New(2023, 12, 29)
	h.Append(d2, 2).Append(d3, 3).Append(d1, 1)

	if d, v := h.First(); d != d1 || v != 1 {
		t.Errorf("First() = %v, %v want %v, 1", d, v, d1)
	}
	if d, v := h.Latest(); d != d3 || v != 3 {
		t.Errorf("Latest() = %v, %v want %v, 3", d, v, d3)
	}
}

func TestValues_sorted(t *testing.T) {
	h := new(History[float64])
	h.Append(New(2025, 3, 1), 3)
	h.Append(New(2023, 1, 1), 1)
	h.Append(New(2024, 2, 1), 2)

	var prev Date
	for on, v := range h.Values() {
		if !prev.IsZero() && on.Before(prev) {
			t.Fatalf("Values() out of order: %v after %v", on, prev)
		}
		if int(v) != on.Year()-2022 {
			t.Errorf("Values() at %v = %v, values and dates no longer paired", on, v)
		}
		prev = on
	}
}
