package rules

import (
	"reflect"
	"testing"

	"github.com/pkg/errors"
)

func TestDefaultIsConway(t *testing.T) {
	rs := Default()
	if !reflect.DeepEqual(rs.Birth(), []int{3}) {
		t.Fatalf("birth=%v, expected [3]", rs.Birth())
	}
	if !reflect.DeepEqual(rs.Survival(), []int{2, 3}) {
		t.Fatalf("survival=%v, expected [2 3]", rs.Survival())
	}
	if rs.RefractoryLength() != 0 {
		t.Fatalf("refractory=%d, expected 0", rs.RefractoryLength())
	}
	if rs.String() != "B3/S23" {
		t.Fatalf("String()=%q", rs.String())
	}
}

func TestConfigure(t *testing.T) {
	tests := []struct {
		text       string
		birth      []int
		survival   []int
		refractory int
	}{
		{"maze", []int{3}, []int{1, 2, 3, 4, 5}, 0},
		{"MAZE", []int{3}, []int{1, 2, 3, 4, 5}, 0},
		{"B2/S/3", []int{2}, []int{}, 1},
		{"bbrain", []int{2}, []int{}, 1},
		{"star_wars", []int{2}, []int{3, 4, 5}, 2},
		{"Star_Wars2", []int{2, 7, 8}, []int{3, 4, 5, 6}, 4},
		{"seeds", []int{2}, []int{}, 0},
		{"34 life", []int{3, 4}, []int{3, 4}, 0},
		{"no death", []int{3}, []int{0, 1, 2, 3, 4, 5, 6, 7, 8}, 0},
		{"B36/S23", []int{3, 6}, []int{2, 3}, 0},
		{"B3/S23/1", []int{3}, []int{2, 3}, 0},
		{"B3/S23/2", []int{3}, []int{2, 3}, 0},
		{"B3/S23/0", []int{3}, []int{2, 3}, 0},
		{"B/S", []int{}, []int{}, 0},
		{"B33/S32", []int{3}, []int{2, 3}, 0},
		{"B3/S23/-4", []int{3}, []int{2, 3}, 0},
		{"B3/S23/+5", []int{3}, []int{2, 3}, 3},
		{"B39/S239", []int{3}, []int{2, 3}, 0},
		{"B9/S", []int{}, []int{}, 0},
	}

	for _, tt := range tests {
		rs := Default()
		if err := rs.Configure(tt.text); err != nil {
			t.Fatalf("Configure(%q): %v", tt.text, err)
		}
		if !reflect.DeepEqual(rs.Birth(), tt.birth) {
			t.Fatalf("Configure(%q) birth=%v, expected %v", tt.text, rs.Birth(), tt.birth)
		}
		if !reflect.DeepEqual(rs.Survival(), tt.survival) {
			t.Fatalf("Configure(%q) survival=%v, expected %v", tt.text, rs.Survival(), tt.survival)
		}
		if rs.RefractoryLength() != tt.refractory {
			t.Fatalf("Configure(%q) refractory=%d, expected %d", tt.text, rs.RefractoryLength(), tt.refractory)
		}
	}
}

func TestConfigureResetsRefractory(t *testing.T) {
	rs := Default()
	if err := rs.Configure("star_wars"); err != nil {
		t.Fatal(err)
	}
	if err := rs.Configure("life"); err != nil {
		t.Fatal(err)
	}
	if rs.RefractoryLength() != 0 {
		t.Fatalf("refractory=%d after switching to life, expected 0", rs.RefractoryLength())
	}
}

func TestConfigureInvalidKeepsRules(t *testing.T) {
	bad := []string{
		"bad-rule",
		"",
		"B3",
		"S23/B3",
		"B3/S23/x",
		"B3/S23/4/5",
		"B3/S23/4.5",
		"B3/S23/ 4",
		"B3/S2a",
		"b3/s23",
		"B3/S23/",
	}

	for _, text := range bad {
		rs := Default()
		if err := rs.Configure("maze"); err != nil {
			t.Fatal(err)
		}
		err := rs.Configure(text)
		if !errors.Is(err, ErrInvalidRuleFormat) {
			t.Fatalf("Configure(%q) err=%v, expected ErrInvalidRuleFormat", text, err)
		}
		if rs.String() != "B3/S12345" {
			t.Fatalf("Configure(%q) changed rules to %s", text, rs.String())
		}
	}
}

func TestMembership(t *testing.T) {
	rs, err := Parse("B36/S23")
	if err != nil {
		t.Fatal(err)
	}
	for n := -1; n <= 9; n++ {
		if got, want := rs.IsBirth(n), n == 3 || n == 6; got != want {
			t.Fatalf("IsBirth(%d)=%v", n, got)
		}
		if got, want := rs.IsSurvival(n), n == 2 || n == 3; got != want {
			t.Fatalf("IsSurvival(%d)=%v", n, got)
		}
	}
}

func TestStringRoundTrip(t *testing.T) {
	for _, p := range Presets() {
		rs, err := Parse(p.Name)
		if err != nil {
			t.Fatalf("preset %s: %v", p.Name, err)
		}
		again, err := Parse(rs.String())
		if err != nil {
			t.Fatalf("preset %s: reparse %q: %v", p.Name, rs.String(), err)
		}
		if *again != *rs {
			t.Fatalf("preset %s: %q reparsed as %q", p.Name, rs.String(), again.String())
		}
	}
}

func TestLookup(t *testing.T) {
	if rule, ok := Lookup("  HighLife "); !ok || rule != "B36/S23" {
		t.Fatalf("Lookup(HighLife)=%q,%v", rule, ok)
	}
	if _, ok := Lookup("B3/S23"); ok {
		t.Fatal("raw rule resolved as a preset")
	}
	if len(Presets()) != 13 {
		t.Fatalf("%d presets, expected 13", len(Presets()))
	}
}
