package survey

func str(s string) *string { return &s }

func question(id, code string, t ItemType) Item {
	it := Item{
		SortableItem: SortableItem{ID: id, Code: code},
		Type:         t,
		Label:        str("Label " + code),
		Options:      DefaultOptions(t),
	}
	if t.Shape().Help {
		it.Help = str("")
	}
	return it
}

func container(id, code string, t ItemType, children ...Item) Item {
	it := question(id, code, t)
	it.Children = append([]Item{}, children...)
	return it
}

// sample builds:
//
//	B1 (block)
//	  Q1 (string)
//	  Q2 (choice, rows R1 R2)
//	Q3 (number)
func sample() Survey {
	q2 := question("q2", "Q2", TypeChoice)
	q2.Rows = []Element{
		{SortableItem: SortableItem{ID: "r1", Code: "R1"}, Label: "Yes"},
		{SortableItem: SortableItem{ID: "r2", Code: "R2"}, Label: "No"},
	}
	return Reindex(Survey{
		Code:  "S1",
		Title: "Sample",
		Children: []Item{
			container("b1", "B1", TypeBlock,
				question("q1", "Q1", TypeString),
				q2,
			),
			question("q3", "Q3", TypeNumber),
		},
	})
}
