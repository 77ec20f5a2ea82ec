// Package options builds the two-level student -> grade option tree used to
// populate filter pickers from upstream usage counts.
package options

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/KirkDiggler/ba-raid-api/internal/entities/raid"
)

// Option is a top-level picker entry for one student
type Option struct {
	Value    int     `json:"value"`
	Label    string  `json:"label"`
	Children []Child `json:"children"`
}

// Child is a grade entry under a student
type Child struct {
	Value int    `json:"value"` // grade key: star*10 + weapon
	Label string `json:"label"`
	Count int    `json:"count"`
}

// UsageData maps student ID -> grade key -> usage count, all keys as the
// decimal strings found in the upstream JSON
type UsageData map[string]map[string]int

// Names maps student ID (decimal string) to display name
type Names map[string]string

// Build converts usage counts into picker options. Students are ordered by
// ascending ID and grades by ascending key. Grades with no usage are
// dropped. A student missing from names gets an empty label.
func Build(raw UsageData, names Names) []Option {
	usage := normalize(raw)

	out := make([]Option, 0, len(usage))
	for _, sid := range sortedKeys(usage) {
		name := names[strconv.Itoa(sid)]
		grades := usage[sid]

		opt := Option{
			Value:    sid,
			Label:    name,
			Children: []Child{},
		}
		for _, key := range sortedKeys(grades) {
			count := grades[key]
			if count <= 0 {
				continue
			}
			opt.Children = append(opt.Children, Child{
				Value: key,
				Label: ChildLabel(name, raid.GradeFromKey(key), count),
				Count: count,
			})
		}
		out = append(out, opt)
	}
	return out
}

// ChildLabel renders "<name> <star>★[ 무기<weapon>] (<count>)". The weapon
// part is only shown at five stars.
func ChildLabel(name string, g raid.Grade, count int) string {
	return fmt.Sprintf("%s %s (%d)", name, GradeLabel(g), count)
}

// GradeLabel renders "<star>★" or "<star>★ 무기<weapon>" at five stars
func GradeLabel(g raid.Grade) string {
	if !g.ShowsWeapon() {
		return fmt.Sprintf("%d★", g.Star)
	}
	return fmt.Sprintf("%d★ 무기%d", g.Star, g.Weapon)
}

// normalize parses the string keys, skipping ones that are not integers.
// Keys naming the same number (e.g. "52" and "052") have their counts
// summed.
func normalize(raw UsageData) map[int]map[int]int {
	out := make(map[int]map[int]int, len(raw))
	for sk, grades := range raw {
		sid, err := strconv.Atoi(sk)
		if err != nil {
			continue
		}
		merged, ok := out[sid]
		if !ok {
			merged = make(map[int]int, len(grades))
			out[sid] = merged
		}
		for gk, count := range grades {
			key, err := strconv.Atoi(gk)
			if err != nil {
				continue
			}
			merged[key] += count
		}
	}
	return out
}

func sortedKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
