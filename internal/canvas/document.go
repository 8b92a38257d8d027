package canvas

// Document is a complete graph in bulk form. LoadGraph inserts nodes first,
// then connections, then annotations, so connection endpoints always resolve
// against the nodes of the same document.
type Document struct {
	Nodes       []*Node
	Connections []*Connection
	Annotations []*Annotation
}

// Empty reports whether the document has no entities at all.
func (d *Document) Empty() bool {
	return d == nil || (len(d.Nodes) == 0 && len(d.Connections) == 0 && len(d.Annotations) == 0)
}
