package filtering

import (
	"testing"

	"github.com/spigell/hiring-desk/internal/recruiting"
)

func TestSort(t *testing.T) {
	candidates, _ := fixture()

	tests := []struct {
		name string
		key  SortKey
		dir  Direction
		want []string
	}{
		{name: "none keeps order", key: SortNone, dir: Ascending, want: []string{"c1", "c2", "c3", "c4"}},
		{name: "score ascending", key: SortMatchScore, dir: Ascending, want: []string{"c3", "c1", "c4", "c2"}},
		{name: "score descending keeps unscored last", key: SortMatchScore, dir: Descending, want: []string{"c4", "c1", "c3", "c2"}},
		{name: "name ignores case", key: SortName, dir: Ascending, want: []string{"c1", "c2", "c3", "c4"}},
		{name: "name descending", key: SortName, dir: Descending, want: []string{"c4", "c3", "c2", "c1"}},
		{name: "status", key: SortStatus, dir: Ascending, want: []string{"c2", "c1", "c3", "c4"}},
		{name: "experience in years", key: SortExp, dir: Descending, want: []string{"c3", "c1", "c4", "c2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sort(candidates, tt.key, tt.dir)
			if !equal(ids(got), tt.want) {
				t.Fatalf("got %v, want %v", ids(got), tt.want)
			}
		})
	}

	if !equal(ids(candidates), []string{"c1", "c2", "c3", "c4"}) {
		t.Fatalf("input must not be reordered")
	}
}

func TestSortStable(t *testing.T) {
	candidates := []*recruiting.Candidate{
		{ID: "a", Exp: "2 Yrs"},
		{ID: "b", Exp: "-"},
		{ID: "c", Exp: "2 Yrs"},
	}

	got := Sort(candidates, SortExp, Ascending)
	if !equal(ids(got), []string{"b", "a", "c"}) {
		t.Fatalf("got %v", ids(got))
	}
}

func TestParseSortKey(t *testing.T) {
	for _, in := range []string{"", "matchScore", "name", "status", "exp"} {
		if _, err := ParseSortKey(in); err != nil {
			t.Fatalf("ParseSortKey(%q) returned error: %v", in, err)
		}
	}
	if _, err := ParseSortKey("salary"); err == nil {
		t.Fatalf("expected error for unknown key")
	}
}

func TestParseDirection(t *testing.T) {
	tests := map[string]Direction{"": Ascending, "ASC": Ascending, "desc": Descending}
	for in, want := range tests {
		got, err := ParseDirection(in)
		if err != nil || got != want {
			t.Fatalf("ParseDirection(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := ParseDirection("up"); err == nil {
		t.Fatalf("expected error for unknown direction")
	}
}
