package table

import (
	"reflect"
	"testing"
)

func set(lo, hi rune) Entry[struct{}] {
	return Entry[struct{}]{Range: Interval{Lo: lo, Hi: hi}}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		caption string
		in      []Entry[struct{}]
		want    []Entry[struct{}]
	}{
		{
			caption: "entries are sorted ascending by range start",
			in:      []Entry[struct{}]{set(0x61, 0x7A), set(0x30, 0x39), set(0x41, 0x5A)},
			want:    []Entry[struct{}]{set(0x30, 0x39), set(0x41, 0x5A), set(0x61, 0x7A)},
		},
		{
			caption: "an already sorted table is unchanged",
			in:      []Entry[struct{}]{set(0x30, 0x39), set(0x41, 0x5A)},
			want:    []Entry[struct{}]{set(0x30, 0x39), set(0x41, 0x5A)},
		},
		{
			caption: "duplicate starts keep their input order",
			in:      []Entry[struct{}]{set(0x41, 0x5A), set(0x41, 0x43), set(0x30, 0x39)},
			want:    []Entry[struct{}]{set(0x30, 0x39), set(0x41, 0x5A), set(0x41, 0x43)},
		},
		{
			caption: "empty input stays empty",
			in:      nil,
			want:    nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			got := Normalize(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("unexpected order; want: %v, got: %v", tt.want, got)
			}
		})
	}
}

func TestSorted(t *testing.T) {
	if !Sorted([]Entry[struct{}]{set(0x30, 0x39), set(0x41, 0x5A)}) {
		t.Fatal("a strictly ascending table must be sorted")
	}
	if Sorted([]Entry[struct{}]{set(0x41, 0x5A), set(0x30, 0x39)}) {
		t.Fatal("a descending table must not be sorted")
	}
	if Sorted([]Entry[struct{}]{set(0x41, 0x5A), set(0x41, 0x43)}) {
		t.Fatal("duplicate starts must not count as sorted")
	}
	if !Sorted[struct{}](nil) {
		t.Fatal("an empty table is trivially sorted")
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		caption string
		in      []Entry[struct{}]
		want    []Overlap
	}{
		{
			caption: "disjoint adjacent ranges do not overlap",
			in:      []Entry[struct{}]{set(0x30, 0x39), set(0x3A, 0x40)},
		},
		{
			caption: "a range starting inside its predecessor is reported",
			in:      []Entry[struct{}]{set(0x41, 0x5A), set(0x50, 0x60)},
			want: []Overlap{
				{Index: 1, Prev: Interval{0x41, 0x5A}, Next: Interval{0x50, 0x60}},
			},
		},
		{
			caption: "a contained range is reported",
			in:      []Entry[struct{}]{set(0x41, 0x5A), set(0x45, 0x46)},
			want: []Overlap{
				{Index: 1, Prev: Interval{0x41, 0x5A}, Next: Interval{0x45, 0x46}},
			},
		},
		{
			caption: "duplicate starts always overlap",
			in:      []Entry[struct{}]{set(0x41, 0x41), set(0x41, 0x41)},
			want: []Overlap{
				{Index: 1, Prev: Interval{0x41, 0x41}, Next: Interval{0x41, 0x41}},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			got := Overlaps(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("unexpected overlaps; want: %v, got: %v", tt.want, got)
			}
		})
	}
}

func TestInterval(t *testing.T) {
	iv := Interval{Lo: 0x41, Hi: 0x5A}
	if !iv.Contains(0x41) || !iv.Contains(0x5A) || !iv.Contains(0x4D) {
		t.Fatal("both ends and the middle are inside the interval")
	}
	if iv.Contains(0x40) || iv.Contains(0x5B) {
		t.Fatal("the neighbors of both ends are outside the interval")
	}
	if iv.Count() != 26 {
		t.Fatalf("unexpected count; want: 26, got: %v", iv.Count())
	}
	if iv.String() != "0041..005A" {
		t.Fatalf("unexpected format; got: %v", iv.String())
	}
	single := Interval{Lo: 0x1F600, Hi: 0x1F600}
	if single.String() != "1F600" || single.Count() != 1 {
		t.Fatalf("unexpected singleton; got: %v (%v)", single.String(), single.Count())
	}
}
