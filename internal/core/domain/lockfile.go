package domain

import (
	"maps"
	"slices"

	"go.trai.ch/zerr"
)

// Require is one dependency edge of a lockfile node.
type Require struct {
	// Slot names the dependency inside the requiring node.
	Slot string
	// UID is the uid of the required node.
	UID string
}

// LockfileNode is a vertex of the lockfile dependency graph.
type LockfileNode struct {
	UID      string
	Ref      PackageReference
	Requires []Require
	Modified bool
}

// Lockfile is the dependency graph recorded by a lockfile.
// It has no single root: every node is a top-level entry.
type Lockfile struct {
	Version string
	nodes   map[string]*LockfileNode
}

// NewLockfile creates an empty lockfile graph.
func NewLockfile(version string) *Lockfile {
	return &Lockfile{
		Version: version,
		nodes:   make(map[string]*LockfileNode),
	}
}

// AddNode adds a node to the graph, replacing any node with the same uid.
func (l *Lockfile) AddNode(n *LockfileNode) {
	l.nodes[n.UID] = n
}

// Node returns the node with the given uid.
func (l *Lockfile) Node(uid string) (*LockfileNode, error) {
	n, ok := l.nodes[uid]
	if !ok {
		return nil, zerr.With(zerr.Wrap(ErrMissingNode, "lookup node"), "uid", uid)
	}
	return n, nil
}

// Len returns the number of nodes.
func (l *Lockfile) Len() int {
	return len(l.nodes)
}

// UIDs returns every node uid in sorted order.
func (l *Lockfile) UIDs() []string {
	return slices.Sorted(maps.Keys(l.nodes))
}

// Modified returns the nodes built in the current session, ordered by uid.
func (l *Lockfile) Modified() []*LockfileNode {
	var out []*LockfileNode
	for _, uid := range l.UIDs() {
		if n := l.nodes[uid]; n.Modified {
			out = append(out, n)
		}
	}
	return out
}
