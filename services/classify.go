package services

import "strings"

// Category is the display classification of an event type: a stable key, a
// human label and the fixed color/icon pair used by the calendar, the list
// filter and the legend.
type Category struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

// The authoritative taxonomy and color table. "club" and "social" are
// distinct display categories; "meeting" is folded into the league category.
var categories = map[string]Category{
	"tournament":  {Key: "tournament", Label: "Tournament", Color: "#dc2626", Icon: "trophy"},
	"club":        {Key: "club", Label: "Club", Color: "#2563eb", Icon: "users"},
	"social":      {Key: "social", Label: "Social", Color: "#16a34a", Icon: "glass-cheers"},
	"instruction": {Key: "instruction", Label: "Instruction", Color: "#7c3aed", Icon: "chalkboard-teacher"},
	"league":      {Key: "league", Label: "League", Color: "#ca8a04", Icon: "medal"},
	"meeting":     {Key: "league", Label: "League", Color: "#ca8a04", Icon: "medal"},
}

var otherCategory = Category{Key: "other", Label: "Other", Color: "#6b7280", Icon: "calendar"}

// Classify maps an event type to its display category. It is total: empty,
// unknown and arbitrarily malformed inputs all resolve to the "Other"
// category.
func Classify(eventType string) Category {
	if c, ok := categories[strings.ToLower(strings.TrimSpace(eventType))]; ok {
		return c
	}
	return otherCategory
}

// Legend returns the fixed, ordered legend shown next to the calendar.
func Legend() []Category {
	return []Category{
		categories["tournament"],
		categories["club"],
		categories["social"],
		categories["instruction"],
		categories["league"],
		otherCategory,
	}
}
