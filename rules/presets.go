package rules

import "strings"

// Preset is a named, well-known rule
type Preset struct {
	Name string
	Rule string
}

var presets = [...]Preset{
	{"life", "B3/S23"},
	{"highlife", "B36/S23"},
	{"34life", "B34/S34"},
	{"nodeath", "B3/S012345678"},
	{"replicator", "B1357/S1357"},
	{"seeds", "B2/S"},
	{"maze", "B3/S12345"},
	{"bbrain", "B2/S/3"},
	{"star_wars", "B2/S345/4"},
	{"star_wars2", "B278/S3456/6"},
	{"walls", "B45678/S2345"},
	{"coag", "B378/S235678"},
	{"assimilation", "B345/S4567"},
}

// aliases keeps the spaced spellings accepted by older launch scripts
var aliases = map[string]string{
	"34 life":  "34life",
	"no death": "nodeath",
}

// Presets returns the preset table in its canonical order
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets[:])
	return out
}

// Lookup resolves a preset name, ignoring case, to its rule string
func Lookup(name string) (string, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if alias, ok := aliases[key]; ok {
		key = alias
	}
	for _, p := range presets {
		if p.Name == key {
			return p.Rule, true
		}
	}
	return "", false
}
