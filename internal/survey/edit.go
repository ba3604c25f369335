package survey

import (
	"errors"
	"fmt"
	"slices"
)

var (
	ErrItemNotFound    = errors.New("item not found")
	ErrElementNotFound = errors.New("row or column not found")
	ErrNotContainer    = errors.New("item cannot have children")
	ErrNoRows          = errors.New("item type does not support rows or columns")
	ErrInvalidMove     = errors.New("cannot move an item into its own subtree")
	ErrDuplicateID     = errors.New("item id already present")
)

// InsertItem inserts it under the container with parentID at pos.
// An empty parentID inserts at the survey root; pos outside [0, len] appends.
func InsertItem(s Survey, parentID string, pos int, it Item) (Survey, error) {
	if it.ID != "" {
		if _, ok := FindByID(s, it.ID); ok {
			return s, fmt.Errorf("inserting %s: %w", it.ID, ErrDuplicateID)
		}
	}

	if parentID == "" {
		s.Children = insertAt(s.Children, pos, it)
		return Reindex(s), nil
	}

	out, err := UpdateItem(s, parentID, func(parent Item) (Item, error) {
		if !parent.Type.IsContainer() {
			return parent, fmt.Errorf("inserting into %s (%s): %w", parent.Code, parent.Type, ErrNotContainer)
		}
		parent.Children = insertAt(parent.Children, pos, it)
		return parent, nil
	})
	if err != nil {
		return s, err
	}
	return out, nil
}

// RemoveItem removes the item with the given id together with its subtree.
func RemoveItem(s Survey, id string) (Survey, error) {
	chain, ok := locate(s.Children, id)
	if !ok {
		return s, fmt.Errorf("removing %s: %w", id, ErrItemNotFound)
	}
	s.Children = removeAt(s.Children, chain)
	return Reindex(s), nil
}

// MoveItem moves the item with the given id under newParentID at pos.
// An empty newParentID moves the item to the survey root.
func MoveItem(s Survey, id, newParentID string, pos int) (Survey, error) {
	it, ok := FindByID(s, id)
	if !ok {
		return s, fmt.Errorf("moving %s: %w", id, ErrItemNotFound)
	}
	if newParentID != "" && containsID(it, newParentID) {
		return s, fmt.Errorf("moving %s under %s: %w", id, newParentID, ErrInvalidMove)
	}

	removed, err := RemoveItem(s, id)
	if err != nil {
		return s, err
	}
	out, err := InsertItem(removed, newParentID, pos, it)
	if err != nil {
		return s, err
	}
	return out, nil
}

// UpdateItem replaces the item with the given id by fn's result.
// Only the item and its ancestors are copied.
func UpdateItem(s Survey, id string, fn func(Item) (Item, error)) (Survey, error) {
	chain, ok := locate(s.Children, id)
	if !ok {
		return s, fmt.Errorf("updating %s: %w", id, ErrItemNotFound)
	}
	children, err := updateAt(s.Children, chain, fn)
	if err != nil {
		return s, err
	}
	s.Children = children
	return Reindex(s), nil
}

// ReplaceItem swaps the item carrying it.ID for it.
func ReplaceItem(s Survey, it Item) (Survey, error) {
	return UpdateItem(s, it.ID, func(Item) (Item, error) {
		return it, nil
	})
}

// AddRow inserts a row into the item with the given id at pos.
func AddRow(s Survey, itemID string, pos int, row Element) (Survey, error) {
	return editElements(s, itemID, func(it *Item) error {
		it.Rows = insertAt(it.Rows, pos, row)
		return nil
	})
}

// RemoveRow removes the row with rowID from the item with the given id.
func RemoveRow(s Survey, itemID, rowID string) (Survey, error) {
	return editElements(s, itemID, func(it *Item) error {
		rows, err := removeElement(it.Rows, rowID)
		if err != nil {
			return err
		}
		it.Rows = rows
		return nil
	})
}

// AddColumn inserts a column into the item with the given id at pos.
func AddColumn(s Survey, itemID string, pos int, col Element) (Survey, error) {
	return editElements(s, itemID, func(it *Item) error {
		it.Columns = insertAt(it.Columns, pos, col)
		return nil
	})
}

// RemoveColumn removes the column with colID from the item with the given id.
func RemoveColumn(s Survey, itemID, colID string) (Survey, error) {
	return editElements(s, itemID, func(it *Item) error {
		cols, err := removeElement(it.Columns, colID)
		if err != nil {
			return err
		}
		it.Columns = cols
		return nil
	})
}

func editElements(s Survey, itemID string, fn func(*Item) error) (Survey, error) {
	return UpdateItem(s, itemID, func(it Item) (Item, error) {
		if !it.Type.Shape().Rows {
			return it, fmt.Errorf("editing %s (%s): %w", it.Code, it.Type, ErrNoRows)
		}
		if err := fn(&it); err != nil {
			return it, fmt.Errorf("editing %s: %w", it.Code, err)
		}
		return it, nil
	})
}

func updateAt(items []Item, chain []int, fn func(Item) (Item, error)) ([]Item, error) {
	out := slices.Clone(items)
	i := chain[0]
	if len(chain) == 1 {
		it, err := fn(out[i])
		if err != nil {
			return nil, err
		}
		out[i] = it
		return out, nil
	}
	children, err := updateAt(out[i].Children, chain[1:], fn)
	if err != nil {
		return nil, err
	}
	out[i].Children = children
	return out, nil
}

func removeAt(items []Item, chain []int) []Item {
	i := chain[0]
	if len(chain) == 1 {
		return slices.Delete(slices.Clone(items), i, i+1)
	}
	out := slices.Clone(items)
	out[i].Children = removeAt(out[i].Children, chain[1:])
	return out
}

// insertAt returns a new slice with v inserted at pos; the input is not modified.
// The result is never nil so that inserting into an absent list makes it present.
func insertAt[T any](list []T, pos int, v T) []T {
	if pos < 0 || pos > len(list) {
		pos = len(list)
	}
	out := make([]T, 0, len(list)+1)
	out = append(out, list[:pos]...)
	out = append(out, v)
	return append(out, list[pos:]...)
}

func removeElement(elems []Element, id string) ([]Element, error) {
	for i, e := range elems {
		if e.ID == id {
			return slices.Delete(slices.Clone(elems), i, i+1), nil
		}
	}
	return nil, fmt.Errorf("%s: %w", id, ErrElementNotFound)
}
