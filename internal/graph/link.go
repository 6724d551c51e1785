package graph

// LinkState is the phase of the in-flight connection gesture.
type LinkState int

const (
	LinkEmpty LinkState = iota
	LinkParentBound
	LinkChildBound
)

func (s LinkState) String() string {
	switch s {
	case LinkParentBound:
		return "parent-bound"
	case LinkChildBound:
		return "child-bound"
	default:
		return "empty"
	}
}

// Link is the in-flight connection: at most one endpoint bound, never both.
type Link struct {
	State LinkState
	Box   int
}

func (l *Link) startParent(id int) {
	*l = Link{State: LinkParentBound, Box: id}
}

func (l *Link) startChild(id int) {
	*l = Link{State: LinkChildBound, Box: id}
}

// bindParent completes a child-bound link with parent id. The link is
// empty afterwards whether or not a key was produced.
func (l *Link) bindParent(id int) (EdgeKey, bool) {
	defer l.clear()
	if l.State != LinkChildBound {
		return EdgeKey{}, false
	}
	return EdgeKey{Parent: id, Child: l.Box}, true
}

// bindChild completes a parent-bound link with child id.
func (l *Link) bindChild(id int) (EdgeKey, bool) {
	defer l.clear()
	if l.State != LinkParentBound {
		return EdgeKey{}, false
	}
	return EdgeKey{Parent: l.Box, Child: id}, true
}

func (l *Link) clear() {
	*l = Link{}
}

func (l *Link) refersTo(id int) bool {
	return l.State != LinkEmpty && l.Box == id
}
