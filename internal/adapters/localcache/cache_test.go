package localcache_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/buildinfo/internal/adapters/localcache"
	"go.trai.ch/buildinfo/internal/core/domain"
	"go.trai.ch/zerr"
)

const libfooMetadata = `{
  "recipe": {
    "revision": "rrev",
    "remote": "conan-local",
    "properties": {},
    "checksums": {
      "conanfile.py": {"md5": "111", "sha1": "aaa"},
      "conanmanifest.txt": {"md5": "333", "sha1": "ccc"}
    }
  },
  "packages": {
    "pid": {
      "revision": "prev",
      "recipe_revision": "rrev",
      "remote": "conan-local",
      "checksums": {"lib.a": {"md5": "222", "sha1": "bbb"}}
    }
  }
}`

const remotes = `{"remotes": [
  {"name": "conancenter", "url": "https://center.example.com", "verify_ssl": true},
  {"name": "conan-local", "url": "https://repo.example.com/artifactory/api/conan/conan", "verify_ssl": true}
]}`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
	require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))
}

func mustRef(t *testing.T, s string) domain.PackageReference {
	t.Helper()
	ref, err := domain.ParsePackageReference(s)
	require.NoError(t, err)
	return ref
}

func newCache(t *testing.T) (*localcache.Cache, string) {
	t.Helper()
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "data", "libfoo", "1.0", "_", "_", domain.MetadataFileName), libfooMetadata)
	writeFile(t, filepath.Join(root, domain.RemotesFileName), remotes)

	cache, err := localcache.New(root, 0)
	require.NoError(t, err)
	assert.Equal(t, root, cache.Root())
	return cache, root
}

func TestCache_Checksums(t *testing.T) {
	cache, _ := newCache(t)
	ref := mustRef(t, "libfoo/1.0#rrev:pid#prev")

	recipe, err := cache.Checksums(ref, domain.KindRecipe)
	require.NoError(t, err)
	assert.Equal(t, domain.ChecksumTable{
		"conanfile.py":      {SHA1: "aaa", MD5: "111"},
		"conanmanifest.txt": {SHA1: "ccc", MD5: "333"},
	}, recipe)

	pkg, err := cache.Checksums(ref, domain.KindPackage)
	require.NoError(t, err)
	assert.Equal(t, domain.ChecksumTable{"lib.a": {SHA1: "bbb", MD5: "222"}}, pkg)
}

func TestCache_ChecksumsAreCopies(t *testing.T) {
	cache, _ := newCache(t)
	ref := mustRef(t, "libfoo/1.0#rrev:pid#prev")

	first, err := cache.Checksums(ref, domain.KindRecipe)
	require.NoError(t, err)
	first[domain.SourcesFileName] = domain.Checksum{SHA1: "x"}

	second, err := cache.Checksums(ref, domain.KindRecipe)
	require.NoError(t, err)
	assert.NotContains(t, second, domain.SourcesFileName)
}

func TestCache_MetadataIsCached(t *testing.T) {
	cache, root := newCache(t)
	ref := mustRef(t, "libfoo/1.0#rrev:pid#prev")

	_, err := cache.Checksums(ref, domain.KindRecipe)
	require.NoError(t, err)

	require.NoError(t, os.Remove(filepath.Join(root, "data", "libfoo", "1.0", "_", "_", domain.MetadataFileName)))

	_, err = cache.Checksums(ref, domain.KindPackage)
	assert.NoError(t, err)
}

func TestCache_UserChannelLayout(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "data", "libfoo", "1.0", "acme", "stable", domain.MetadataFileName), libfooMetadata)

	cache, err := localcache.New(root, 4)
	require.NoError(t, err)

	table, err := cache.Checksums(mustRef(t, "libfoo/1.0@acme/stable#rrev:pid#prev"), domain.KindRecipe)
	require.NoError(t, err)
	assert.Len(t, table, 2)
}

func TestCache_RemoteURL(t *testing.T) {
	cache, _ := newCache(t)

	url, err := cache.RemoteURL(mustRef(t, "libfoo/1.0#rrev"))
	require.NoError(t, err)
	assert.Equal(t, "https://repo.example.com/artifactory/api/conan/conan", url)
}

func TestCache_Errors(t *testing.T) {
	t.Run("metadata not found", func(t *testing.T) {
		cache, _ := newCache(t)
		_, err := cache.Checksums(mustRef(t, "libbar/2.0#r:p#q"), domain.KindRecipe)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrMetadataNotFound))

		var zErr *zerr.Error
		require.ErrorAs(t, err, &zErr)
		assert.Equal(t, "libbar/2.0", zErr.Metadata()["reference"])
	})

	t.Run("package not in cache", func(t *testing.T) {
		cache, _ := newCache(t)
		_, err := cache.Checksums(mustRef(t, "libfoo/1.0#rrev:other#prev"), domain.KindPackage)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrPackageNotInCache))
	})

	t.Run("corrupt metadata", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "data", "libfoo", "1.0", "_", "_", domain.MetadataFileName), "{")
		cache, err := localcache.New(root, 0)
		require.NoError(t, err)

		_, err = cache.Checksums(mustRef(t, "libfoo/1.0#rrev"), domain.KindRecipe)
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrMetadataReadFailed.Error())
	})

	t.Run("unknown remote", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "data", "libfoo", "1.0", "_", "_", domain.MetadataFileName), libfooMetadata)
		writeFile(t, filepath.Join(root, domain.RemotesFileName), `{"remotes": []}`)
		cache, err := localcache.New(root, 0)
		require.NoError(t, err)

		_, err = cache.RemoteURL(mustRef(t, "libfoo/1.0#rrev"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrRemoteNotFound))
	})

	t.Run("missing registry", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "data", "libfoo", "1.0", "_", "_", domain.MetadataFileName), libfooMetadata)
		cache, err := localcache.New(root, 0)
		require.NoError(t, err)

		_, err = cache.RemoteURL(mustRef(t, "libfoo/1.0#rrev"))
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrRemotesReadFailed.Error())
	})
}
