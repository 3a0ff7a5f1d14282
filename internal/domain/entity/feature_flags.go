package entity

import (
	"maps"
	"slices"
)

// Feature flag groups.
const (
	FeatureGroupLMS         = "lms"
	FeatureGroupMarketplace = "marketplace"
	FeatureGroupProducts    = "products"
)

// FeatureFlags is the platform-wide module enablement map, grouped by area.
// Values are treated as immutable: every mutator returns a new map.
type FeatureFlags map[string]map[string]bool

// FeatureChange describes one flag that differs between two snapshots.
type FeatureChange struct {
	Group string `json:"group"`
	Key   string `json:"key"`
	From  bool   `json:"from"`
	To    bool   `json:"to"`
}

// DefaultFeatureFlags is the map a fresh installation starts from.
func DefaultFeatureFlags() FeatureFlags {
	return FeatureFlags{
		FeatureGroupLMS: {
			"courses":      true,
			"certificates": true,
			"webinars":     true,
			"quizzes":      false,
		},
		FeatureGroupMarketplace: {
			"sellerSignup": true,
			"reviews":      true,
			"wishlist":     true,
			"affiliates":   false,
		},
		FeatureGroupProducts: {
			string(ProductTypeGraphics):       true,
			string(ProductTypeAudio):          true,
			string(ProductTypeVideoTemplates): true,
			string(ProductTypeAppTemplates):   true,
			string(ProductTypeWebsites):       true,
			string(ProductTypeUIKits):         true,
			string(ProductTypePhotos):         true,
			string(ProductTypeFonts):          true,
		},
	}
}

// FeatureGroups lists the groups a flag map may contain.
func FeatureGroups() []string {
	return []string{FeatureGroupLMS, FeatureGroupMarketplace, FeatureGroupProducts}
}

// Clone returns a deep copy.
func (f FeatureFlags) Clone() FeatureFlags {
	out := make(FeatureFlags, len(f))
	for group, flags := range f {
		out[group] = maps.Clone(flags)
		if out[group] == nil {
			out[group] = map[string]bool{}
		}
	}

	return out
}

// Enabled reports a single flag; unknown flags are disabled.
func (f FeatureFlags) Enabled(group, key string) bool {
	return f[group][key]
}

// Has reports whether the flag exists in the map.
func (f FeatureFlags) Has(group, key string) bool {
	_, ok := f[group][key]

	return ok
}

// Toggle returns a copy with one flag flipped.
func (f FeatureFlags) Toggle(group, key string) FeatureFlags {
	out := f.Clone()
	if out[group] == nil {
		out[group] = map[string]bool{}
	}
	out[group][key] = !f[group][key]

	return out
}

// Diff lists the flags whose value in next differs from f, ordered by group then key.
// A flag absent on one side counts as false.
func (f FeatureFlags) Diff(next FeatureFlags) []FeatureChange {
	var changes []FeatureChange

	for _, group := range unionKeys(f, next) {
		for _, key := range unionKeys(f[group], next[group]) {
			from, to := f[group][key], next[group][key]
			if from != to {
				changes = append(changes, FeatureChange{Group: group, Key: key, From: from, To: to})
			}
		}
	}

	return changes
}

// Equal reports whether both maps enable the same flags.
func (f FeatureFlags) Equal(other FeatureFlags) bool {
	return len(f.Diff(other)) == 0
}

func unionKeys[V any](a, b map[string]V) []string {
	keys := slices.Collect(maps.Keys(a))
	for k := range b {
		if _, ok := a[k]; !ok {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)

	return keys
}
