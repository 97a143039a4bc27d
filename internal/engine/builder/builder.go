// Package builder turns the modified nodes of a lockfile into build-info modules.
package builder

import (
	"context"
	"runtime"

	"go.trai.ch/buildinfo/internal/core/domain"
	"go.trai.ch/buildinfo/internal/core/ports"
	"go.trai.ch/buildinfo/internal/engine/traverser"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Options controls how modules are laid out.
type Options struct {
	// MultiModule records the recipe and each package as separate modules. When false both
	// share the recipe module and artifact names are prefixed with their reference.
	MultiModule bool
	// Parallelism bounds concurrent artifact lookups. Zero or less means runtime.NumCPU().
	Parallelism int
}

// Builder builds the modules of a lockfile.
type Builder struct {
	resolver ports.ArtifactResolver
	tracer   ports.Tracer
	opts     Options
}

// New creates a Builder. resolver should memoise, as every reachable node is resolved
// once during prefetch and again while modules are assembled.
func New(resolver ports.ArtifactResolver, tracer ports.Tracer, opts Options) *Builder {
	return &Builder{
		resolver: resolver,
		tracer:   tracer,
		opts:     opts,
	}
}

var dependencyNaming = domain.Naming{Scoped: true, AsDependency: true}

// Build returns the modules of every modified node of lockfile, in uid order.
func (b *Builder) Build(ctx context.Context, lockfile *domain.Lockfile) (*domain.ModuleSet, error) {
	if err := b.prefetch(ctx, lockfile); err != nil {
		return nil, err
	}

	recipeDeps := traverser.New(lockfile, b.resolveFunc(domain.KindRecipe))
	packageDeps := traverser.New(lockfile, b.resolveFunc(domain.KindPackage))

	modules := domain.NewModuleSet()
	for _, node := range lockfile.Modified() {
		if err := b.buildNode(ctx, node, modules, recipeDeps, packageDeps); err != nil {
			return nil, err
		}
	}
	return modules, nil
}

func (b *Builder) resolveFunc(kind domain.ArtifactKind) traverser.ResolveFunc {
	return func(ctx context.Context, ref domain.PackageReference) (domain.ArtifactSet, error) {
		return b.resolver.Resolve(ctx, ref, kind, dependencyNaming)
	}
}

func (b *Builder) buildNode(
	ctx context.Context,
	node *domain.LockfileNode,
	modules *domain.ModuleSet,
	recipeDeps, packageDeps *traverser.Traverser,
) (err error) {
	recipeKey := node.Ref.RecipeReference()
	packageKey := recipeKey
	if b.opts.MultiModule {
		packageKey = node.Ref.PackageReferenceString()
	}

	ctx, span := b.tracer.Start(ctx, "module "+recipeKey)
	span.SetAttribute("uid", node.UID)
	span.SetAttribute("requires", len(node.Requires))
	defer func() {
		if err != nil {
			span.RecordError(err)
			err = zerr.With(err, "module", recipeKey)
		}
		span.End()
	}()

	naming := domain.Naming{Scoped: !b.opts.MultiModule}

	recipeArtifacts, err := b.resolver.Resolve(ctx, node.Ref, domain.KindRecipe, naming)
	if err != nil {
		return err
	}
	packageArtifacts, err := b.resolver.Resolve(ctx, node.Ref, domain.KindPackage, naming)
	if err != nil {
		return err
	}

	recipe := modules.Get(recipeKey)
	recipe.Artifacts.Union(recipeArtifacts)
	pkg := modules.Get(packageKey)
	pkg.Artifacts.Union(packageArtifacts)

	for _, req := range node.Requires {
		deps, err := recipeDeps.Closure(ctx, req.UID)
		if err != nil {
			return err
		}
		recipe.Dependencies.Union(deps)

		deps, err = packageDeps.Closure(ctx, req.UID)
		if err != nil {
			return err
		}
		pkg.Dependencies.Union(deps)
	}

	return nil
}

// prefetch resolves both artifact kinds of every node reachable from a modified node
// concurrently, so the sequential walk that follows is served from the resolver memo.
func (b *Builder) prefetch(ctx context.Context, lockfile *domain.Lockfile) (err error) {
	nodes := reachable(lockfile)

	ctx, span := b.tracer.Start(ctx, "prefetch")
	span.SetAttribute("nodes", len(nodes))
	defer func() {
		if err != nil {
			span.RecordError(err)
		}
		span.End()
	}()

	limit := b.opts.Parallelism
	if limit <= 0 {
		limit = runtime.NumCPU()
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for _, node := range nodes {
		for _, kind := range []domain.ArtifactKind{domain.KindRecipe, domain.KindPackage} {
			g.Go(func() error {
				if _, err := b.resolver.Resolve(ctx, node.Ref, kind, domain.Naming{}); err != nil {
					return zerr.With(err, "uid", node.UID)
				}
				return nil
			})
		}
	}

	return g.Wait()
}

// reachable returns the modified nodes and everything they transitively require, in
// discovery order. Unknown uids are skipped; the traversal reports them.
func reachable(lockfile *domain.Lockfile) []*domain.LockfileNode {
	seen := make(map[string]bool)
	var out []*domain.LockfileNode

	queue := lockfile.Modified()
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		if seen[node.UID] {
			continue
		}
		seen[node.UID] = true
		out = append(out, node)

		for _, req := range node.Requires {
			if seen[req.UID] {
				continue
			}
			if child, err := lockfile.Node(req.UID); err == nil {
				queue = append(queue, child)
			}
		}
	}
	return out
}
