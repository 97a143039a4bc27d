// Package traverser computes transitive artifact closures over a lockfile graph.
package traverser

import (
	"context"
	"strings"

	"go.trai.ch/buildinfo/internal/core/domain"
	"go.trai.ch/zerr"
)

// ResolveFunc returns the artifacts of a single package reference.
type ResolveFunc func(ctx context.Context, ref domain.PackageReference) (domain.ArtifactSet, error)

type visitState int

const (
	unvisited visitState = iota
	visiting
	visited
)

// Traverser walks a lockfile graph and gathers the artifacts of every node reachable from a
// starting node. Results are memoised per node uid, so each distinct node is resolved at most
// once over the lifetime of the Traverser. A Traverser is not safe for concurrent use.
type Traverser struct {
	lockfile *domain.Lockfile
	resolve  ResolveFunc

	state map[string]visitState
	memo  map[string]domain.ArtifactSet
}

// New creates a Traverser over lockfile that resolves node references with resolve.
func New(lockfile *domain.Lockfile, resolve ResolveFunc) *Traverser {
	return &Traverser{
		lockfile: lockfile,
		resolve:  resolve,
		state:    make(map[string]visitState),
		memo:     make(map[string]domain.ArtifactSet),
	}
}

type frame struct {
	node *domain.LockfileNode
	next int
}

// Closure returns the artifacts of the node uid together with the artifacts of every node it
// transitively requires, deduplicated by SHA1.
//
// The walk uses an explicit stack, so deep graphs do not grow the call stack. A requirement
// that leads back to a node still being expanded fails with domain.ErrGraphCycle.
func (t *Traverser) Closure(ctx context.Context, uid string) (domain.ArtifactSet, error) {
	if set, ok := t.memo[uid]; ok {
		return set.Clone(), nil
	}

	var stack []frame
	push := func(uid string) error {
		n, err := t.lockfile.Node(uid)
		if err != nil {
			return err
		}
		t.state[uid] = visiting
		stack = append(stack, frame{node: n})
		return nil
	}

	if err := push(uid); err != nil {
		return domain.ArtifactSet{}, err
	}

	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			t.abort(stack)
			return domain.ArtifactSet{}, err
		}

		top := &stack[len(stack)-1]

		if top.next < len(top.node.Requires) {
			child := top.node.Requires[top.next].UID
			top.next++

			switch t.state[child] {
			case visiting:
				err := t.cycleError(stack, child)
				t.abort(stack)
				return domain.ArtifactSet{}, err
			case visited:
				continue
			case unvisited:
			}

			if err := push(child); err != nil {
				t.abort(stack)
				return domain.ArtifactSet{}, zerr.With(err, "required_by", top.node.UID)
			}
			continue
		}

		own, err := t.resolve(ctx, top.node.Ref)
		if err != nil {
			t.abort(stack)
			return domain.ArtifactSet{}, zerr.With(err, "uid", top.node.UID)
		}

		set := domain.NewArtifactSet()
		set.Union(own)
		for _, req := range top.node.Requires {
			set.Union(t.memo[req.UID])
		}

		t.memo[top.node.UID] = set
		t.state[top.node.UID] = visited
		stack = stack[:len(stack)-1]
	}

	return t.memo[uid].Clone(), nil
}

// abort resets the nodes still being expanded so a later call starts from a clean state.
func (t *Traverser) abort(stack []frame) {
	for _, f := range stack {
		delete(t.state, f.node.UID)
	}
}

// cycleError builds an error carrying the uid path of the cycle that ends at uid.
func (t *Traverser) cycleError(stack []frame, uid string) error {
	start := 0
	for i, f := range stack {
		if f.node.UID == uid {
			start = i
			break
		}
	}

	path := make([]string, 0, len(stack)-start+1)
	for _, f := range stack[start:] {
		path = append(path, f.node.UID)
	}
	path = append(path, uid)

	return zerr.With(zerr.Wrap(domain.ErrGraphCycle, "traverse lockfile"), "cycle", strings.Join(path, " -> "))
}
