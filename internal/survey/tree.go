package survey

import (
	"fmt"
	"slices"

	"github.com/surveyspec/surveyspec/internal/ident"
)

// ItemPath returns the field path of the i-th child under parent.
// An empty parent denotes the survey root.
func ItemPath(parent string, i int) string {
	return FieldPath(parent, fmt.Sprintf("children[%d]", i))
}

// RowPath returns the field path of the i-th row of the item at itemPath.
func RowPath(itemPath string, i int) string {
	return FieldPath(itemPath, fmt.Sprintf("rows[%d]", i))
}

// ColumnPath returns the field path of the i-th column of the item at itemPath.
func ColumnPath(itemPath string, i int) string {
	return FieldPath(itemPath, fmt.Sprintf("columns[%d]", i))
}

// FieldPath joins a base path and a field name with a dot.
func FieldPath(base, field string) string {
	if base == "" {
		return field
	}
	return base + "." + field
}

// WalkFunc is called for every item with its field path.
// Returning false skips the item's children.
type WalkFunc func(it Item, path string) bool

// Walk visits every item of s depth-first in pre-order.
func Walk(s Survey, fn WalkFunc) {
	WalkItems(s.Children, "", fn)
}

// WalkItems visits items and their descendants depth-first in pre-order.
func WalkItems(items []Item, parent string, fn WalkFunc) {
	for i, it := range items {
		path := ItemPath(parent, i)
		if fn(it, path) && len(it.Children) > 0 {
			WalkItems(it.Children, path, fn)
		}
	}
}

// FindByID returns the item with the given id.
func FindByID(s Survey, id string) (Item, bool) {
	chain, ok := locate(s.Children, id)
	if !ok {
		return Item{}, false
	}
	return itemAt(s.Children, chain), true
}

// FindByCode returns the first item, in depth-first order, with the given code.
func FindByCode(s Survey, code string) (Item, bool) {
	var (
		found Item
		ok    bool
	)
	Walk(s, func(it Item, _ string) bool {
		if ok {
			return false
		}
		if it.Code == code {
			found, ok = it, true
			return false
		}
		return true
	})
	return found, ok
}

// PathOf returns the field path of the item with the given id.
func PathOf(s Survey, id string) (string, bool) {
	chain, ok := locate(s.Children, id)
	if !ok {
		return "", false
	}
	path := ""
	for _, i := range chain {
		path = ItemPath(path, i)
	}
	return path, true
}

// Flatten returns every item of s in depth-first pre-order.
func Flatten(s Survey) []Item {
	var out []Item
	Walk(s, func(it Item, _ string) bool {
		out = append(out, it)
		return true
	})
	return out
}

// Count returns the number of items in s.
func Count(s Survey) int {
	n := 0
	Walk(s, func(Item, string) bool {
		n++
		return true
	})
	return n
}

// MaxDepth returns the nesting depth of the deepest item; root items have depth 0.
// An empty survey returns -1.
func MaxDepth(s Survey) int {
	return maxDepth(s.Children, 0)
}

func maxDepth(items []Item, depth int) int {
	best := -1
	for _, it := range items {
		d := depth
		if len(it.Children) > 0 {
			d = max(d, maxDepth(it.Children, depth+1))
		}
		best = max(best, d)
	}
	return best
}

// AllCodes collects the survey code followed by every item, row and column code,
// depth-first. Duplicates are kept.
func AllCodes(s Survey) []string {
	codes := []string{s.Code}
	Walk(s, func(it Item, _ string) bool {
		codes = append(codes, it.Code)
		for _, r := range it.Rows {
			codes = append(codes, r.Code)
		}
		for _, c := range it.Columns {
			codes = append(codes, c.Code)
		}
		return true
	})
	return codes
}

// Codes returns the set of every code used in s.
func Codes(s Survey) ident.CodeSet {
	return ident.NewCodeSet(AllCodes(s)...)
}

// locate returns the index chain from the root to the item with the given id.
func locate(items []Item, id string) ([]int, bool) {
	for i, it := range items {
		if it.ID == id {
			return []int{i}, true
		}
		if chain, ok := locate(it.Children, id); ok {
			return append([]int{i}, chain...), true
		}
	}
	return nil, false
}

func itemAt(items []Item, chain []int) Item {
	it := items[chain[0]]
	for _, i := range chain[1:] {
		it = it.Children[i]
	}
	return it
}

// containsID reports whether id is it or one of its descendants.
func containsID(it Item, id string) bool {
	if it.ID == id {
		return true
	}
	_, ok := locate(it.Children, id)
	return ok
}

// Reindex recomputes index, depth, isLast and parent references of every item,
// row and column from array position. Items whose positional fields are already
// correct are reused as-is.
func Reindex(s Survey) Survey {
	s.Children = reindexItems(s.Children, 0, nil)
	return s
}

func reindexItems(items []Item, depth int, parents []int) []Item {
	var out []Item
	for i, it := range items {
		next := it
		next.SortableItem = position(it.SortableItem, i, len(items), depth, parents)

		chain := appendChain(parents, i)
		if it.Children != nil {
			next.Children = reindexItems(it.Children, depth+1, chain)
		}
		if it.Rows != nil {
			next.Rows = reindexElements(it.Rows, depth+1, chain)
		}
		if it.Columns != nil {
			next.Columns = reindexElements(it.Columns, depth+1, chain)
		}

		if out == nil && !sameItem(it, next) {
			out = make([]Item, len(items))
			copy(out, items)
		}
		if out != nil {
			out[i] = next
		}
	}
	if out == nil {
		return items
	}
	return out
}

func reindexElements(elems []Element, depth int, parents []int) []Element {
	var out []Element
	for i, e := range elems {
		pos := position(e.SortableItem, i, len(elems), depth, parents)
		if out == nil && samePosition(e.SortableItem, pos) {
			continue
		}
		if out == nil {
			out = make([]Element, len(elems))
			copy(out, elems)
		}
		out[i].SortableItem = pos
	}
	if out == nil {
		return elems
	}
	return out
}

func position(si SortableItem, i, n, depth int, parents []int) SortableItem {
	si.Index = i
	si.Depth = depth
	si.IsLast = i == n-1
	if len(parents) == 0 {
		si.ParentIndex = nil
		si.ParentIndexes = nil
		return si
	}
	p := parents[len(parents)-1]
	si.ParentIndex = &p
	si.ParentIndexes = slices.Clone(parents)
	return si
}

func appendChain(parents []int, i int) []int {
	chain := make([]int, len(parents)+1)
	copy(chain, parents)
	chain[len(parents)] = i
	return chain
}

func samePosition(a, b SortableItem) bool {
	if a.Index != b.Index || a.Depth != b.Depth || a.IsLast != b.IsLast {
		return false
	}
	if (a.ParentIndex == nil) != (b.ParentIndex == nil) {
		return false
	}
	if a.ParentIndex != nil && *a.ParentIndex != *b.ParentIndex {
		return false
	}
	return slices.Equal(a.ParentIndexes, b.ParentIndexes)
}

// sameItem compares positional fields and child slice identity.
func sameItem(a, b Item) bool {
	return samePosition(a.SortableItem, b.SortableItem) &&
		sameSlice(a.Children, b.Children) &&
		sameSlice(a.Rows, b.Rows) &&
		sameSlice(a.Columns, b.Columns)
}

func sameSlice[T any](a, b []T) bool {
	if len(a) != len(b) || (a == nil) != (b == nil) {
		return false
	}
	return len(a) == 0 || &a[0] == &b[0]
}
