package core

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// MaxNeighbors is the largest neighbor count a Moore neighborhood can produce.
const MaxNeighbors = 8

var (
	// ErrInvalidRule reports rule notation that cannot be parsed.
	ErrInvalidRule = errors.New("invalid rule")
	// ErrUnknownRule reports a rule name missing from the registry.
	ErrUnknownRule = errors.New("unknown rule")
)

// NeighborSet is a bitmask of neighbor counts in [0, MaxNeighbors].
type NeighborSet uint16

// NewNeighborSet builds a set from counts. Counts outside [0, 8] can never be
// produced by a tally, so they are dropped instead of rejected.
func NewNeighborSet(counts ...int) NeighborSet {
	var s NeighborSet
	for _, n := range counts {
		if n < 0 || n > MaxNeighbors {
			continue
		}
		s |= 1 << uint(n)
	}
	return s
}

// Has reports whether n is a member of the set.
func (s NeighborSet) Has(n int) bool {
	if n < 0 || n > MaxNeighbors {
		return false
	}
	return s&(1<<uint(n)) != 0
}

// Counts lists the members in ascending order.
func (s NeighborSet) Counts() []int {
	var out []int
	for n := 0; n <= MaxNeighbors; n++ {
		if s.Has(n) {
			out = append(out, n)
		}
	}
	return out
}

func (s NeighborSet) String() string {
	var b strings.Builder
	for _, n := range s.Counts() {
		b.WriteByte(byte('0' + n))
	}
	return b.String()
}

// Rule decides the next state of a cell from its live-neighbor count.
type Rule struct {
	Birth   NeighborSet
	Survive NeighborSet
}

// Standard is Conway's Life, B3/S23.
var Standard = Rule{Birth: NewNeighborSet(3), Survive: NewNeighborSet(2, 3)}

// NewRule builds a rule from explicit birth and survive counts.
func NewRule(birth, survive []int) Rule {
	return Rule{Birth: NewNeighborSet(birth...), Survive: NewNeighborSet(survive...)}
}

// Next reports whether a cell with n live neighbors is alive in the next
// generation.
func (r Rule) Next(alive bool, n int) bool {
	if r.Birth.Has(n) {
		return true
	}
	return alive && r.Survive.Has(n)
}

// String renders the rule in B/S notation, e.g. "B3/S23".
func (r Rule) String() string {
	return "B" + r.Birth.String() + "/S" + r.Survive.String()
}

// ParseRule accepts a registered rule name or B/S notation ("B36/S23",
// "b3/s23", "B3S23", "B2/S").
func ParseRule(s string) (Rule, error) {
	s = strings.TrimSpace(s)
	if r, ok := LookupRule(s); ok {
		return r, nil
	}
	upper := strings.ToUpper(s)
	if !strings.HasPrefix(upper, "B") {
		return Rule{}, fmt.Errorf("%w %q: %w and not B/S notation", ErrInvalidRule, s, ErrUnknownRule)
	}
	body := strings.ReplaceAll(upper[1:], "/", "")
	birthPart, survivePart, ok := strings.Cut(body, "S")
	if !ok {
		return Rule{}, fmt.Errorf("%w %q: missing S section", ErrInvalidRule, s)
	}
	birth, err := parseCounts(birthPart)
	if err != nil {
		return Rule{}, fmt.Errorf("%w %q: birth: %v", ErrInvalidRule, s, err)
	}
	survive, err := parseCounts(survivePart)
	if err != nil {
		return Rule{}, fmt.Errorf("%w %q: survive: %v", ErrInvalidRule, s, err)
	}
	return Rule{Birth: birth, Survive: survive}, nil
}

func parseCounts(s string) (NeighborSet, error) {
	var set NeighborSet
	for _, ch := range s {
		if ch < '0' || ch > '8' {
			return 0, fmt.Errorf("count %q out of range 0-8", ch)
		}
		set |= 1 << uint(ch-'0')
	}
	return set, nil
}

var rules = map[string]Rule{}

// RegisterRule adds a named rule to the registry.
func RegisterRule(name string, r Rule) {
	if name == "" {
		return
	}
	rules[strings.ToLower(name)] = r
}

// LookupRule returns the rule registered under name.
func LookupRule(name string) (Rule, bool) {
	r, ok := rules[strings.ToLower(name)]
	return r, ok
}

// RuleNames lists the registered rule names in sorted order.
func RuleNames() []string {
	names := make([]string, 0, len(rules))
	for name := range rules {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// RuleName returns the registered name for r, or its B/S notation when it is
// not registered.
func RuleName(r Rule) string {
	for _, name := range RuleNames() {
		if rules[name] == r {
			return name
		}
	}
	return r.String()
}

func init() {
	RegisterRule("life", Standard)
	RegisterRule("highlife", NewRule([]int{3, 6}, []int{2, 3}))
	RegisterRule("seeds", NewRule([]int{2}, nil))
	RegisterRule("daynight", NewRule([]int{3, 6, 7, 8}, []int{3, 4, 6, 7, 8}))
	RegisterRule("replicator", NewRule([]int{1, 3, 5, 7}, []int{1, 3, 5, 7}))
	RegisterRule("maze", NewRule([]int{3}, []int{1, 2, 3, 4, 5}))
	RegisterRule("2x2", NewRule([]int{3, 6}, []int{1, 2, 5}))
	RegisterRule("34life", NewRule([]int{3, 4}, []int{3, 4}))
}
