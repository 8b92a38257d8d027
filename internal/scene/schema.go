package scene

import "github.com/hashicorp/hcl/v2"

// fileRoot is the top-level structure of a scene file. Anything else in the
// file is a decode error.
type fileRoot struct {
	Nodes       []*nodeBlock       `hcl:"node,block"`
	Connections []*connectionBlock `hcl:"connection,block"`
	Annotations []*annotationBlock `hcl:"annotation,block"`
	Drags       []*dragBlock       `hcl:"drag,block"`
	Wraps       []*wrapBlock       `hcl:"wrap,block"`
}

type nodeBlock struct {
	ID       string         `hcl:"id,label"`
	Label    string         `hcl:"label,optional"`
	Position hcl.Expression `hcl:"position"`
	Size     hcl.Expression `hcl:"size,optional"`
	Inputs   []*portBlock   `hcl:"input,block"`
	Outputs  []*portBlock   `hcl:"output,block"`
}

type portBlock struct {
	ID    string `hcl:"id,label"`
	Label string `hcl:"label,optional"`
}

type connectionBlock struct {
	ID         string `hcl:"id,label"`
	Source     string `hcl:"source"`
	SourcePort string `hcl:"source_port"`
	Target     string `hcl:"target"`
	TargetPort string `hcl:"target_port"`
}

type annotationBlock struct {
	Kind       string         `hcl:"kind,label"`
	ID         string         `hcl:"id,label"`
	Position   hcl.Expression `hcl:"position"`
	Size       hcl.Expression `hcl:"size,optional"`
	Color      string         `hcl:"color,optional"`
	Text       string         `hcl:"text,optional"`
	Title      string         `hcl:"title,optional"`
	MarkerType string         `hcl:"marker_type,optional"`
	Radius     *float64       `hcl:"radius,optional"`
	ZIndex     *int           `hcl:"z_index,optional"`
	Visible    *bool          `hcl:"visible,optional"`
}

type dragBlock struct {
	NodeID string         `hcl:"node,label"`
	Select []string       `hcl:"select,optional"`
	Moves  hcl.Expression `hcl:"moves"`
	Cancel bool           `hcl:"cancel,optional"`
}

type wrapBlock struct {
	Title string   `hcl:"title,optional"`
	Nodes []string `hcl:"nodes"`
}
