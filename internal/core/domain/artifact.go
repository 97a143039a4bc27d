package domain

import (
	"maps"
	"slices"
	"strings"
)

// SourcesFileName is the stored-file name of a recipe's exported source archive.
const SourcesFileName = "conan_sources.tgz"

// Artifact is a content-addressed file record.
// Inside an ArtifactSet two artifacts are the same artifact when their SHA1 matches,
// regardless of their labels.
type Artifact struct {
	SHA1 string `json:"sha1"`
	MD5  string `json:"md5"`
	Name string `json:"name,omitempty"`
	ID   string `json:"id,omitempty"`
}

// Label returns the name of a build output, or the id of a dependency reference.
func (a Artifact) Label() string {
	if a.Name != "" {
		return a.Name
	}
	return a.ID
}

// Checksum holds the content hashes of one stored file.
type Checksum struct {
	SHA1 string `json:"sha1"`
	MD5  string `json:"md5"`
}

// ChecksumTable maps stored-file names to their checksums.
type ChecksumTable map[string]Checksum

// Clone returns a copy of the table that can be extended without touching the original.
func (t ChecksumTable) Clone() ChecksumTable {
	out := make(ChecksumTable, len(t)+1)
	maps.Copy(out, t)
	return out
}

// ArtifactKind selects between recipe-level and package-level artifacts.
type ArtifactKind int

const (
	// KindRecipe selects the exported recipe files.
	KindRecipe ArtifactKind = iota
	// KindPackage selects the files of one binary package.
	KindPackage
)

// String returns the lowercase name of the kind.
func (k ArtifactKind) String() string {
	if k == KindPackage {
		return "package"
	}
	return "recipe"
}

// Naming controls how resolved artifacts are labelled.
type Naming struct {
	// Scoped prefixes the label with the owning reference ("<scope> :: <file>").
	Scoped bool
	// AsDependency records the label in Artifact.ID and leaves Artifact.Name empty.
	AsDependency bool
}

// Artifacts converts a checksum table into an ArtifactSet labelled by naming.
// The scope is the recipe reference for recipe artifacts and the package reference otherwise.
func (t ChecksumTable) Artifacts(ref PackageReference, kind ArtifactKind, naming Naming) ArtifactSet {
	scope := ref.RecipeReference()
	if kind == KindPackage {
		scope = ref.PackageReferenceString()
	}

	set := NewArtifactSet()
	for _, file := range slices.Sorted(maps.Keys(t)) {
		sum := t[file]
		label := file
		if naming.Scoped {
			label = scope + " :: " + file
		}
		art := Artifact{SHA1: sum.SHA1, MD5: sum.MD5}
		if naming.AsDependency {
			art.ID = label
		} else {
			art.Name = label
		}
		set.Add(art)
	}
	return set
}

// ArtifactSet is a set of artifacts keyed by SHA1.
type ArtifactSet struct {
	items map[string]Artifact
}

// NewArtifactSet creates a set holding the given artifacts.
func NewArtifactSet(artifacts ...Artifact) ArtifactSet {
	s := ArtifactSet{items: make(map[string]Artifact, len(artifacts))}
	for _, a := range artifacts {
		s.Add(a)
	}
	return s
}

// Add inserts an artifact. An artifact with the same SHA1 already present is kept.
func (s *ArtifactSet) Add(a Artifact) {
	if s.items == nil {
		s.items = make(map[string]Artifact)
	}
	if _, ok := s.items[a.SHA1]; ok {
		return
	}
	s.items[a.SHA1] = a
}

// Union adds every artifact of other to s.
func (s *ArtifactSet) Union(other ArtifactSet) {
	for _, a := range other.items {
		s.Add(a)
	}
}

// Len returns the number of distinct artifacts.
func (s ArtifactSet) Len() int {
	return len(s.items)
}

// Contains reports whether an artifact with the given SHA1 is in the set.
func (s ArtifactSet) Contains(sha1 string) bool {
	_, ok := s.items[sha1]
	return ok
}

// Clone returns an independent copy of the set.
func (s ArtifactSet) Clone() ArtifactSet {
	return ArtifactSet{items: maps.Clone(s.items)}
}

// Sorted returns the artifacts ordered by label, then SHA1.
func (s ArtifactSet) Sorted() []Artifact {
	out := make([]Artifact, 0, len(s.items))
	for _, a := range s.items {
		out = append(out, a)
	}
	SortArtifacts(out)
	return out
}

// SortArtifacts orders artifacts by name (falling back to id), then SHA1.
func SortArtifacts(artifacts []Artifact) {
	slices.SortFunc(artifacts, func(a, b Artifact) int {
		if c := strings.Compare(a.Label(), b.Label()); c != 0 {
			return c
		}
		return strings.Compare(a.SHA1, b.SHA1)
	})
}
