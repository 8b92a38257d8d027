package graph

// SelectNode replaces the node selection with id, or toggles id when toggle
// is set. Ids are not checked against the store.
func (c *Controller) SelectNode(id string, toggle bool) {
	if c.disposed {
		return
	}
	c.nodeSelection.Select(id, toggle)
}

// DeselectNode removes id from the node selection.
func (c *Controller) DeselectNode(id string) {
	if c.disposed {
		return
	}
	c.nodeSelection.Remove(id)
}

// ClearNodeSelection empties the node selection.
func (c *Controller) ClearNodeSelection() {
	if c.disposed {
		return
	}
	c.nodeSelection.Clear()
}

// SelectedNodeIDs returns the node selection in selection order.
func (c *Controller) SelectedNodeIDs() []string {
	return c.nodeSelection.IDs()
}

// IsNodeSelected reports whether id is selected.
func (c *Controller) IsNodeSelected(id string) bool {
	return c.nodeSelection.Has(id)
}
