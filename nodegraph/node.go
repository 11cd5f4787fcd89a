package nodegraph

// Kind distinguishes the handful of node shapes nodegraph produces.
type Kind int

const (
	KindElement Kind = iota
	KindText
	KindAnchor
	KindFragment
)

// Node is the single node type nodegraph ever produces. Mirrors the
// property-map shape of a mock DOM value: attributes are an ordinary
// map rather than typed fields, so NodeOps.SetProps can apply the full
// prop-naming protocol without nodegraph knowing about it in advance.
type Node struct {
	Kind       Kind
	Tag        string // element tag name, or anchor/fragment label
	Namespace  string
	Text       string
	Attrs      map[string]string
	Classes    map[string]bool
	Styles     map[string]string
	Listeners  map[string][]func(Event)
	Parent     *Node
	Children   []*Node
}

// Event is the payload passed to a listener registered via the "on:"
// prop protocol, fired by test code driving the tree directly (there is
// no real input device behind nodegraph).
type Event struct {
	Type string
	Data any
}

func newNode(kind Kind, tag string) *Node {
	return &Node{
		Kind:      kind,
		Tag:       tag,
		Attrs:     make(map[string]string),
		Classes:   make(map[string]bool),
		Styles:    make(map[string]string),
		Listeners: make(map[string][]func(Event)),
	}
}

// Dispatch synthesizes an event of the given type on n, invoking every
// listener registered for it. Used by tests exercising the "Counter"
// end-to-end scenario (click handlers bound via "on:click").
func (n *Node) Dispatch(eventType string, data any) {
	for _, fn := range n.Listeners[eventType] {
		fn(Event{Type: eventType, Data: data})
	}
}

// IndexOf returns the index of child within n's children, or -1.
func (n *Node) IndexOf(child *Node) int {
	for i, c := range n.Children {
		if c == child {
			return i
		}
	}
	return -1
}

func (n *Node) removeChild(child *Node) {
	idx := n.IndexOf(child)
	if idx < 0 {
		return
	}
	n.Children = append(n.Children[:idx], n.Children[idx+1:]...)
	child.Parent = nil
}

func (n *Node) insertChildBefore(child, ref *Node) {
	if child.Parent != nil {
		child.Parent.removeChild(child)
	}
	child.Parent = n
	if ref == nil {
		n.Children = append(n.Children, child)
		return
	}
	idx := n.IndexOf(ref)
	if idx < 0 {
		n.Children = append(n.Children, child)
		return
	}
	n.Children = append(n.Children[:idx], append([]*Node{child}, n.Children[idx:]...)...)
}
