package builder_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/buildinfo/internal/core/domain"
	"go.trai.ch/buildinfo/internal/core/ports"
	"go.trai.ch/buildinfo/internal/core/ports/mocks"
	"go.trai.ch/buildinfo/internal/engine/builder"
	"go.trai.ch/buildinfo/internal/engine/resolver"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

// fakeCache serves checksum tables keyed by reference name and counts lookups.
type fakeCache struct {
	mu       sync.Mutex
	recipes  map[string]domain.ChecksumTable
	packages map[string]domain.ChecksumTable
	calls    map[string]int
}

func newFakeCache() *fakeCache {
	return &fakeCache{
		recipes:  make(map[string]domain.ChecksumTable),
		packages: make(map[string]domain.ChecksumTable),
		calls:    make(map[string]int),
	}
}

// add registers a package whose recipe table already carries the sources archive.
func (c *fakeCache) add(name string) {
	c.recipes[name] = domain.ChecksumTable{
		domain.SourcesFileName: {SHA1: name + "-src", MD5: name + "-src-md5"},
	}
	c.packages[name] = domain.ChecksumTable{
		name + ".a": {SHA1: name + "-lib", MD5: name + "-lib-md5"},
	}
}

func (c *fakeCache) Checksums(ref domain.PackageReference, kind domain.ArtifactKind) (domain.ChecksumTable, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls[kind.String()+" "+ref.Name]++

	tables := c.recipes
	if kind == domain.KindPackage {
		tables = c.packages
	}
	table, ok := tables[ref.Name]
	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrMetadataNotFound, "load metadata"), "reference", ref.Name)
	}
	return table, nil
}

func (c *fakeCache) RemoteURL(domain.PackageReference) (string, error) {
	return "", zerr.Wrap(domain.ErrRemoteNotFound, "lookup remote")
}

func (c *fakeCache) count(key string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls[key]
}

func noopTracer(ctrl *gomock.Controller) ports.Tracer {
	tracer := mocks.NewMockTracer(ctrl)
	span := mocks.NewMockSpan(ctrl)
	tracer.EXPECT().Start(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string) (context.Context, ports.Span) {
			return ctx, span
		}).AnyTimes()
	span.EXPECT().SetAttribute(gomock.Any(), gomock.Any()).AnyTimes()
	span.EXPECT().RecordError(gomock.Any()).AnyTimes()
	span.EXPECT().End().AnyTimes()
	return tracer
}

func node(t *testing.T, uid, pref string, modified bool, requires ...string) *domain.LockfileNode {
	t.Helper()
	ref, err := domain.ParsePackageReference(pref)
	require.NoError(t, err)
	n := &domain.LockfileNode{UID: uid, Ref: ref, Modified: modified}
	for _, r := range requires {
		n.Requires = append(n.Requires, domain.Require{Slot: r, UID: r})
	}
	return n
}

func lockfile(nodes ...*domain.LockfileNode) *domain.Lockfile {
	lf := domain.NewLockfile("0.4")
	for _, n := range nodes {
		lf.AddNode(n)
	}
	return lf
}

func TestBuild_SingleModifiedNode(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := mocks.NewMockPackageCache(ctrl)
	repo := mocks.NewMockArtifactRepository(ctrl)

	n := node(t, "1", "libfoo/1.0#rrev:pid#prev", true)
	cache.EXPECT().Checksums(n.Ref, domain.KindRecipe).Return(domain.ChecksumTable{
		"conanfile.py":          {SHA1: "aaa", MD5: "111"},
		domain.SourcesFileName: {SHA1: "sss", MD5: "999"},
	}, nil).Times(1)
	cache.EXPECT().Checksums(n.Ref, domain.KindPackage).Return(domain.ChecksumTable{
		"lib.a": {SHA1: "bbb", MD5: "222"},
	}, nil).Times(1)
	// No repository call is expected: the sources archive is already recorded.

	b := builder.New(resolver.New(cache, repo, domain.Credentials{}), noopTracer(ctrl), builder.Options{MultiModule: true})
	modules, err := b.Build(context.Background(), lockfile(n))
	require.NoError(t, err)

	assert.Equal(t, []string{"libfoo/1.0", "libfoo/1.0:pid"}, modules.IDs())

	got := modules.Modules()
	assert.Equal(t, []domain.Artifact{
		{SHA1: "sss", MD5: "999", Name: "conan_sources.tgz"},
		{SHA1: "aaa", MD5: "111", Name: "conanfile.py"},
	}, got[0].Artifacts)
	assert.Empty(t, got[0].Dependencies)

	assert.Equal(t, []domain.Artifact{{SHA1: "bbb", MD5: "222", Name: "lib.a"}}, got[1].Artifacts)
	assert.Empty(t, got[1].Dependencies)
}

func TestBuild_Dependencies(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := newFakeCache()
	cache.add("app")
	cache.add("libbar")

	lf := lockfile(
		node(t, "app", "app/1.0#r:pid-app#p", true, "libbar"),
		node(t, "libbar", "libbar/2.0@acme/stable#r:pid-bar#p", false),
	)

	b := builder.New(resolver.New(cache, nil, domain.Credentials{}), noopTracer(ctrl), builder.Options{MultiModule: true})
	modules, err := b.Build(context.Background(), lf)
	require.NoError(t, err)

	require.Equal(t, []string{"app/1.0", "app/1.0:pid-app"}, modules.IDs())
	got := modules.Modules()

	assert.Equal(t, []domain.Artifact{
		{SHA1: "libbar-src", MD5: "libbar-src-md5", ID: "libbar/2.0@acme/stable :: conan_sources.tgz"},
	}, got[0].Dependencies)
	assert.Equal(t, []domain.Artifact{
		{SHA1: "libbar-lib", MD5: "libbar-lib-md5", ID: "libbar/2.0@acme/stable:pid-bar :: libbar.a"},
	}, got[1].Dependencies)
}

func TestBuild_DiamondResolvesSharedNodeOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := newFakeCache()
	for _, name := range []string{"root", "a", "b", "c"} {
		cache.add(name)
	}

	lf := lockfile(
		node(t, "root", "root/1.0#r:p#p", true, "a", "b"),
		node(t, "a", "a/1.0#r:p#p", false, "c"),
		node(t, "b", "b/1.0#r:p#p", false, "c"),
		node(t, "c", "c/1.0#r:p#p", false),
	)

	b := builder.New(resolver.New(cache, nil, domain.Credentials{}), noopTracer(ctrl), builder.Options{MultiModule: true, Parallelism: 4})
	modules, err := b.Build(context.Background(), lf)
	require.NoError(t, err)

	assert.Equal(t, 1, cache.count("recipe c"))
	assert.Equal(t, 1, cache.count("package c"))

	rec, ok := modules.Lookup("root/1.0")
	require.True(t, ok)
	assert.Equal(t, 3, rec.Dependencies.Len())
	assert.True(t, rec.Dependencies.Contains("c-src"))
}

func TestBuild_SingleModule(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := newFakeCache()
	cache.add("libfoo")

	lf := lockfile(node(t, "1", "libfoo/1.0#r:pid#p", true))

	b := builder.New(resolver.New(cache, nil, domain.Credentials{}), noopTracer(ctrl), builder.Options{MultiModule: false})
	modules, err := b.Build(context.Background(), lf)
	require.NoError(t, err)

	require.Equal(t, []string{"libfoo/1.0"}, modules.IDs())
	assert.Equal(t, []domain.Artifact{
		{SHA1: "libfoo-src", MD5: "libfoo-src-md5", Name: "libfoo/1.0 :: conan_sources.tgz"},
		{SHA1: "libfoo-lib", MD5: "libfoo-lib-md5", Name: "libfoo/1.0:pid :: libfoo.a"},
	}, modules.Modules()[0].Artifacts)
}

func TestBuild_RepeatedModuleIDsUnion(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := newFakeCache()
	cache.add("libfoo")
	cache.add("dep1")
	cache.add("dep2")

	lf := lockfile(
		node(t, "1", "libfoo/1.0#r:pid1#p", true, "3"),
		node(t, "2", "libfoo/1.0#r:pid2#p", true, "4"),
		node(t, "3", "dep1/1.0#r:p#p", false),
		node(t, "4", "dep2/1.0#r:p#p", false),
	)

	b := builder.New(resolver.New(cache, nil, domain.Credentials{}), noopTracer(ctrl), builder.Options{MultiModule: true})
	modules, err := b.Build(context.Background(), lf)
	require.NoError(t, err)

	assert.Equal(t, []string{"libfoo/1.0", "libfoo/1.0:pid1", "libfoo/1.0:pid2"}, modules.IDs())

	rec, ok := modules.Lookup("libfoo/1.0")
	require.True(t, ok)
	assert.Equal(t, 1, rec.Artifacts.Len())
	assert.Equal(t, 2, rec.Dependencies.Len())
}

func TestBuild_Deterministic(t *testing.T) {
	ctrl := gomock.NewController(t)

	build := func() []domain.Module {
		cache := newFakeCache()
		for _, name := range []string{"x", "y", "z"} {
			cache.add(name)
		}
		lf := lockfile(
			node(t, "x", "x/1.0#r:p#p", true, "y", "z"),
			node(t, "y", "y/1.0#r:p#p", true, "z"),
			node(t, "z", "z/1.0#r:p#p", false),
		)
		b := builder.New(resolver.New(cache, nil, domain.Credentials{}), noopTracer(ctrl), builder.Options{MultiModule: true})
		modules, err := b.Build(context.Background(), lf)
		require.NoError(t, err)
		return modules.Modules()
	}

	assert.Equal(t, build(), build())
}

func TestBuild_Errors(t *testing.T) {
	t.Run("MissingMetadata", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cache := newFakeCache()
		cache.add("app")

		lf := lockfile(
			node(t, "app", "app/1.0#r:p#p", true, "dep"),
			node(t, "dep", "dep/1.0#r:p#p", false),
		)

		b := builder.New(resolver.New(cache, nil, domain.Credentials{}), noopTracer(ctrl), builder.Options{MultiModule: true})
		_, err := b.Build(context.Background(), lf)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrMetadataNotFound))
	})

	t.Run("Cycle", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cache := newFakeCache()
		cache.add("x")
		cache.add("y")

		lf := lockfile(
			node(t, "x", "x/1.0#r:p#p", true, "y"),
			node(t, "y", "y/1.0#r:p#p", false, "x"),
		)

		b := builder.New(resolver.New(cache, nil, domain.Credentials{}), noopTracer(ctrl), builder.Options{MultiModule: true})
		_, err := b.Build(context.Background(), lf)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrGraphCycle))

		var zErr *zerr.Error
		require.ErrorAs(t, err, &zErr)
		assert.Equal(t, "x/1.0", zErr.Metadata()["module"])
	})

	t.Run("ResolverError", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		res := mocks.NewMockArtifactResolver(ctrl)
		res.EXPECT().Resolve(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(domain.ArtifactSet{}, zerr.Wrap(domain.ErrAuthentication, "lookup file checksum")).
			MinTimes(1)

		lf := lockfile(node(t, "1", "libfoo/1.0#r:p#p", true))

		b := builder.New(res, noopTracer(ctrl), builder.Options{MultiModule: true, Parallelism: 1})
		_, err := b.Build(context.Background(), lf)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrAuthentication))
	})
}

func TestBuild_RecordsModuleSpans(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := newFakeCache()
	cache.add("libfoo")

	tracer := mocks.NewMockTracer(ctrl)
	span := mocks.NewMockSpan(ctrl)
	var mu sync.Mutex
	var names []string
	tracer.EXPECT().Start(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, name string) (context.Context, ports.Span) {
			mu.Lock()
			names = append(names, name)
			mu.Unlock()
			return ctx, span
		}).Times(2)
	span.EXPECT().SetAttribute(gomock.Any(), gomock.Any()).AnyTimes()
	span.EXPECT().End().Times(2)

	b := builder.New(resolver.New(cache, nil, domain.Credentials{}), tracer, builder.Options{MultiModule: true})
	_, err := b.Build(context.Background(), lockfile(node(t, "1", "libfoo/1.0#r:p#p", true)))
	require.NoError(t, err)

	assert.Equal(t, []string{"prefetch", "module libfoo/1.0"}, names)
}
