package physics

// Group is an ordered collection of bodies of one kind.
type Group struct {
	kind     Kind
	children []*Body
}

func NewGroup(kind Kind) *Group {
	return &Group{kind: kind}
}

func (g *Group) Kind() Kind { return g.kind }

// Add appends b to the group. Bodies of another kind are ignored.
func (g *Group) Add(b *Body) bool {
	if b == nil || b.kind != g.kind {
		return false
	}
	g.children = append(g.children, b)
	return true
}

// Children returns the bodies in insertion order.
func (g *Group) Children() []*Body {
	return g.children
}

func (g *Group) Len() int { return len(g.children) }

// Contains reports whether b belongs to the group.
func (g *Group) Contains(b *Body) bool {
	for _, c := range g.children {
		if c == b {
			return true
		}
	}
	return false
}

// CountActive returns the number of enabled bodies.
func (g *Group) CountActive() int {
	n := 0
	for _, c := range g.children {
		if c.active {
			n++
		}
	}
	return n
}
