// Package resolver resolves the artifacts recorded for package references.
package resolver

import (
	"context"
	"sync"

	"go.trai.ch/buildinfo/internal/core/domain"
	"go.trai.ch/buildinfo/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

// Resolver implements ports.ArtifactResolver on top of the local package cache.
//
// Checksum tables are memoised per (reference, kind) for the lifetime of the Resolver, so a
// reference reached through several dependency paths is looked up, and its sources archive
// fetched, at most once. A Resolver belongs to a single build-info creation.
type Resolver struct {
	cache ports.PackageCache
	repo  ports.ArtifactRepository
	creds domain.Credentials

	group singleflight.Group
	mu    sync.RWMutex
	memo  map[string]domain.ChecksumTable
}

// New creates a Resolver reading from cache and falling back to repo for missing sources archives.
func New(cache ports.PackageCache, repo ports.ArtifactRepository, creds domain.Credentials) *Resolver {
	return &Resolver{
		cache: cache,
		repo:  repo,
		creds: creds,
		memo:  make(map[string]domain.ChecksumTable),
	}
}

// Resolve returns the artifacts of ref for the given kind, labelled according to naming.
func (r *Resolver) Resolve(
	ctx context.Context,
	ref domain.PackageReference,
	kind domain.ArtifactKind,
	naming domain.Naming,
) (domain.ArtifactSet, error) {
	table, err := r.checksums(ctx, ref, kind)
	if err != nil {
		return domain.ArtifactSet{}, err
	}
	return table.Artifacts(ref, kind, naming), nil
}

func (r *Resolver) checksums(
	ctx context.Context,
	ref domain.PackageReference,
	kind domain.ArtifactKind,
) (domain.ChecksumTable, error) {
	key := ref.CacheKey(kind)

	if table, ok := r.lookup(key); ok {
		return table, nil
	}

	v, err, _ := r.group.Do(key, func() (any, error) {
		if table, ok := r.lookup(key); ok {
			return table, nil
		}

		table, err := r.load(ctx, ref, kind)
		if err != nil {
			return nil, err
		}

		r.mu.Lock()
		r.memo[key] = table
		r.mu.Unlock()
		return table, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(domain.ChecksumTable), nil
}

func (r *Resolver) lookup(key string) (domain.ChecksumTable, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	table, ok := r.memo[key]
	return table, ok
}

// load reads the checksum table from the cache and completes a recipe table with the
// sources archive checksum when the cache does not record it.
func (r *Resolver) load(
	ctx context.Context,
	ref domain.PackageReference,
	kind domain.ArtifactKind,
) (domain.ChecksumTable, error) {
	table, err := r.cache.Checksums(ref, kind)
	if err != nil {
		return nil, err
	}

	if kind != domain.KindRecipe {
		return table, nil
	}
	if _, ok := table[domain.SourcesFileName]; ok {
		return table, nil
	}

	baseURL, err := r.cache.RemoteURL(ref)
	if err != nil {
		return nil, err
	}

	sum, err := r.repo.FileChecksum(ctx, baseURL, ref.ExportPath()+"/"+domain.SourcesFileName, r.creds)
	if err != nil {
		return nil, zerr.With(err, "reference", ref.RecipeReference())
	}

	out := table.Clone()
	out[domain.SourcesFileName] = sum
	return out, nil
}
