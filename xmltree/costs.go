package xmltree

import (
	"encoding/xml"

	"github.com/katalvlaran/zsdiff/core"
)

// LabelCosts is the simplest fixed-cost model consistent with
// spec.md §8's unit-cost scenarios: every insert and every remove
// costs InsertCost/RemoveCost, and an update costs 0 when the two
// elements share a tag name and attribute set, UpdateCost otherwise.
type LabelCosts struct {
	InsertCost int
	RemoveCost int
	UpdateCost int
}

// NewLabelCosts returns the default model: 1 for insert, remove, and
// a mismatched update.
func NewLabelCosts() LabelCosts {
	return LabelCosts{InsertCost: 1, RemoveCost: 1, UpdateCost: 1}
}

// Insert is a zsdist.InsertCostFunc.
func (c LabelCosts) Insert(w core.Node) int { return c.InsertCost }

// Remove is a zsdist.RemoveCostFunc.
func (c LabelCosts) Remove(v core.Node) int { return c.RemoveCost }

// Update is a zsdist.UpdateCostFunc: 0 for a matching tag name and
// attribute set, c.UpdateCost otherwise.
func (c LabelCosts) Update(v, w core.Node) int {
	a, b := v.(*Node), w.(*Node)
	if a.XMLName == b.XMLName && attrsEqual(a.Attrs, b.Attrs) {
		return 0
	}

	return c.UpdateCost
}

// attrsEqual compares two attribute lists as sets, ignoring order:
// XML attribute order carries no semantic meaning.
func attrsEqual(a, b []xml.Attr) bool {
	if len(a) != len(b) {
		return false
	}

	count := make(map[xml.Attr]int, len(a))
	for _, attr := range a {
		count[attr]++
	}
	for _, attr := range b {
		count[attr]--
	}
	for _, n := range count {
		if n != 0 {
			return false
		}
	}

	return true
}
