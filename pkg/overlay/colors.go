package overlay

import "sort"

// Color is one of the three literal hex triplets the projector assigns.
// Emission is always canonical uppercase; a pre-existing color attribute
// is replaced whatever its value.
type Color string

// The three overlay colors, one per edit type.
const (
	ColorInsert Color = "#00FF00"
	ColorDelete Color = "#FF0000"
	ColorChange Color = "#FFFF00"
)

// ColorAttr is the attribute name the projector writes on colorable
// ancestors.
const ColorAttr = "color"

// colorable is the fixed, MusicXML-aware set of tags eligible to carry
// the overlay color attribute. It is a closed policy, not configurable
// at runtime.
var colorable = map[string]struct{}{
	"note":       {},
	"direction":  {},
	"harmony":    {},
	"backup":     {},
	"forward":    {},
	"attributes": {},
	"clef":       {},
	"key":        {},
	"time":       {},
	"part":       {},
	"measure":    {},
	"rest":       {},
}

func isColorable(tag string) bool {
	_, ok := colorable[tag]
	return ok
}

// ColorableTags returns the closed set of tag names eligible for the
// overlay color attribute, in a stable (sorted) order.
func ColorableTags() []string {
	tags := make([]string, 0, len(colorable))
	for tag := range colorable {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
