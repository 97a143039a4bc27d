// Package localcache reads package metadata from the local package cache.
package localcache

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.trai.ch/buildinfo/internal/core/domain"
	"go.trai.ch/zerr"
)

// DefaultCacheSize bounds the number of parsed metadata files kept in memory.
const DefaultCacheSize = 1024

// Cache implements ports.PackageCache for the cache rooted at one directory.
type Cache struct {
	root     string
	metadata *lru.Cache[string, *metadataDTO]

	remotesOnce sync.Once
	remotes     map[string]string
	remotesErr  error
}

// New creates a Cache rooted at root.
func New(root string, size int) (*Cache, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	metadata, err := lru.New[string, *metadataDTO](size)
	if err != nil {
		return nil, zerr.Wrap(err, "create metadata cache")
	}
	return &Cache{root: root, metadata: metadata}, nil
}

// Root returns the cache directory.
func (c *Cache) Root() string {
	return c.root
}

// Checksums returns the recipe checksums of ref, or those of package ref.PackageID.
func (c *Cache) Checksums(ref domain.PackageReference, kind domain.ArtifactKind) (domain.ChecksumTable, error) {
	meta, err := c.load(ref)
	if err != nil {
		return nil, err
	}

	if kind == domain.KindRecipe {
		return meta.Recipe.Checksums.Clone(), nil
	}

	pkg, ok := meta.Packages[ref.PackageID]
	if !ok {
		err := zerr.With(zerr.Wrap(domain.ErrPackageNotInCache, "read checksums"), "reference", ref.RecipeReference())
		return nil, zerr.With(err, "package_id", ref.PackageID)
	}
	return pkg.Checksums.Clone(), nil
}

// RemoteURL returns the URL of the remote the recipe of ref was retrieved from.
func (c *Cache) RemoteURL(ref domain.PackageReference) (string, error) {
	meta, err := c.load(ref)
	if err != nil {
		return "", err
	}

	remotes, err := c.loadRemotes()
	if err != nil {
		return "", err
	}

	url, ok := remotes[meta.Recipe.Remote]
	if !ok {
		err := zerr.With(zerr.Wrap(domain.ErrRemoteNotFound, "lookup remote"), "reference", ref.RecipeReference())
		return "", zerr.With(err, "remote", meta.Recipe.Remote)
	}
	return url, nil
}

func (c *Cache) load(ref domain.PackageReference) (*metadataDTO, error) {
	path := filepath.Join(domain.RecipeDir(c.root, ref), domain.MetadataFileName)
	if meta, ok := c.metadata.Get(path); ok {
		return meta, nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is derived from the cache root
	if errors.Is(err, fs.ErrNotExist) {
		err := zerr.With(zerr.Wrap(domain.ErrMetadataNotFound, "read metadata"), "reference", ref.RecipeReference())
		return nil, zerr.With(err, "path", path)
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrMetadataReadFailed.Error()), "path", path)
	}

	meta := &metadataDTO{}
	if err := json.Unmarshal(data, meta); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrMetadataReadFailed.Error()), "path", path)
	}

	c.metadata.Add(path, meta)
	return meta, nil
}

func (c *Cache) loadRemotes() (map[string]string, error) {
	c.remotesOnce.Do(func() {
		path := filepath.Join(c.root, domain.RemotesFileName)
		data, err := os.ReadFile(path) //nolint:gosec // path is derived from the cache root
		if err != nil {
			c.remotesErr = zerr.With(zerr.Wrap(err, domain.ErrRemotesReadFailed.Error()), "path", path)
			return
		}

		var registry remotesDTO
		if err := json.Unmarshal(data, &registry); err != nil {
			c.remotesErr = zerr.With(zerr.Wrap(err, domain.ErrRemotesReadFailed.Error()), "path", path)
			return
		}

		c.remotes = make(map[string]string, len(registry.Remotes))
		for _, r := range registry.Remotes {
			c.remotes[r.Name] = r.URL
		}
	})
	return c.remotes, c.remotesErr
}
