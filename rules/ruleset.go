package rules

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// maxCount is the largest possible alive neighbor count
const maxCount = 8

// ErrInvalidRuleFormat is returned when a rule string does not match B<digits>/S<digits>[/<n>]
var ErrInvalidRuleFormat = errors.New("invalid rule format")

// CountSet is a set of neighbor counts in [0,8], one bit per count
type CountSet uint16

// Has reports whether n is in the set
func (s CountSet) Has(n int) bool {
	return n >= 0 && n <= maxCount && s&(1<<n) != 0
}

// Counts returns the members of the set in ascending order
func (s CountSet) Counts() []int {
	out := make([]int, 0, maxCount+1)
	for n := range maxCount + 1 {
		if s.Has(n) {
			out = append(out, n)
		}
	}
	return out
}

func (s CountSet) String() string {
	var b strings.Builder
	for _, n := range s.Counts() {
		b.WriteString(strconv.Itoa(n))
	}
	return b.String()
}

// RuleSet holds the birth, survival and refractory configuration of an automaton
type RuleSet struct {
	birth      CountSet
	survival   CountSet
	refractory int
}

// Default returns Conway's rules: B3/S23 without refractory period
func Default() *RuleSet {
	return &RuleSet{
		birth:    1 << 3,
		survival: 1<<2 | 1<<3,
	}
}

// IsBirth reports whether a dead cell with count alive neighbors is born
func (r *RuleSet) IsBirth(count int) bool {
	return r.birth.Has(count)
}

// IsSurvival reports whether a living cell with count alive neighbors survives
func (r *RuleSet) IsSurvival(count int) bool {
	return r.survival.Has(count)
}

// Birth returns the birth counts in ascending order
func (r *RuleSet) Birth() []int {
	return r.birth.Counts()
}

// Survival returns the survival counts in ascending order
func (r *RuleSet) Survival() []int {
	return r.survival.Counts()
}

// RefractoryLength returns how many generations a dead cell stays unable to be reborn
func (r *RuleSet) RefractoryLength() int {
	return r.refractory
}

// String returns the rule in B/S notation. The refractory suffix is the grammar's
// state count, so a length of k is written as k+2.
func (r *RuleSet) String() string {
	s := "B" + r.birth.String() + "/S" + r.survival.String()
	if r.refractory > 0 {
		s += "/" + strconv.Itoa(r.refractory+2)
	}
	return s
}

// Configure replaces the rules with a preset name or a raw rule string.
// On error the previous rules are kept.
func (r *RuleSet) Configure(text string) error {
	parsed, err := Parse(text)
	if err != nil {
		return err
	}
	*r = *parsed
	return nil
}

// Parse builds a RuleSet from a preset name or a raw B<digits>/S<digits>[/<n>] string
func Parse(text string) (*RuleSet, error) {
	raw := text
	if rule, ok := Lookup(text); ok {
		raw = rule
	}

	tokens := strings.Split(raw, "/")
	if len(tokens) < 2 || len(tokens) > 3 {
		return nil, errors.Wrapf(ErrInvalidRuleFormat, "[Parse] %q: expected 2 or 3 '/'-separated parts", text)
	}

	birth, err := parseCounts(tokens[0], 'B')
	if err != nil {
		return nil, errors.Wrapf(err, "[Parse] %q", text)
	}
	survival, err := parseCounts(tokens[1], 'S')
	if err != nil {
		return nil, errors.Wrapf(err, "[Parse] %q", text)
	}

	rs := &RuleSet{birth: birth, survival: survival}
	if len(tokens) == 3 {
		n, err := strconv.ParseInt(tokens[2], 10, 32)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidRuleFormat, "[Parse] %q: bad state count %q", text, tokens[2])
		}
		// n counts the alive and dying states too; only the extra ones cool down
		if n > 2 {
			rs.refractory = int(n) - 2
		}
	}
	return rs, nil
}

func parseCounts(token string, prefix byte) (CountSet, error) {
	if len(token) == 0 || token[0] != prefix {
		return 0, errors.Wrapf(ErrInvalidRuleFormat, "part %q must start with %c", token, prefix)
	}

	var set CountSet
	for _, ch := range token[1:] {
		if ch < '0' || ch > '9' {
			return 0, errors.Wrapf(ErrInvalidRuleFormat, "part %q: %q is not a digit", token, ch)
		}
		// 9 is a valid digit but no cell ever has nine neighbors
		if ch-'0' <= maxCount {
			set |= 1 << (ch - '0')
		}
	}
	return set, nil
}
