package filtering

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/spigell/hiring-desk/internal/recruiting"
)

type SortKey string

const (
	SortNone       SortKey = ""
	SortMatchScore SortKey = "matchScore"
	SortName       SortKey = "name"
	SortStatus     SortKey = "status"
	SortExp        SortKey = "exp"
)

type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// ParseSortKey accepts the sort keys used by the pipeline table.
func ParseSortKey(s string) (SortKey, error) {
	switch key := SortKey(strings.TrimSpace(s)); key {
	case SortNone, SortMatchScore, SortName, SortStatus, SortExp:
		return key, nil
	default:
		return SortNone, fmt.Errorf("unknown sort key %q", s)
	}
}

// ParseDirection defaults to ascending for an empty value.
func ParseDirection(s string) (Direction, error) {
	switch d := Direction(strings.ToLower(strings.TrimSpace(s))); d {
	case "":
		return Ascending, nil
	case Ascending, Descending:
		return d, nil
	default:
		return Ascending, fmt.Errorf("unknown sort direction %q", s)
	}
}

// Sort returns a sorted copy of c. Ties keep their input order. When sorting by
// match score, unscored candidates go last in either direction.
func Sort(c []*recruiting.Candidate, key SortKey, dir Direction) []*recruiting.Candidate {
	out := slices.Clone(c)
	if key == SortNone {
		return out
	}

	sign := 1
	if dir == Descending {
		sign = -1
	}

	slices.SortStableFunc(out, func(a, b *recruiting.Candidate) int {
		switch key {
		case SortMatchScore:
			switch {
			case !a.Scored() && !b.Scored():
				return 0
			case !a.Scored():
				return 1
			case !b.Scored():
				return -1
			}
			return sign * cmp.Compare(*a.MatchScore, *b.MatchScore)
		case SortName:
			return sign * strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
		case SortStatus:
			return sign * strings.Compare(string(a.Status), string(b.Status))
		case SortExp:
			return sign * cmp.Compare(a.Years(), b.Years())
		}
		return 0
	})
	return out
}
