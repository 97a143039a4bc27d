package domain

import (
	"slices"

	"go.trai.ch/zerr"
)

// Merge combines two documents of the same build into a new document.
// Merging with an empty document returns a copy of the other one.
// Neither input is modified.
func Merge(lhs, rhs *BuildInfo) (BuildInfo, error) {
	switch {
	case lhs.IsZero() && rhs.IsZero():
		return BuildInfo{}, nil
	case lhs.IsZero():
		return rhs.Clone(), nil
	case rhs.IsZero():
		return lhs.Clone(), nil
	}

	if err := checkCompatible(lhs, rhs); err != nil {
		return BuildInfo{}, err
	}

	out := lhs.Clone()
	out.Modules = nil
	index := make(map[string]int, len(lhs.Modules)+len(rhs.Modules))

	for _, m := range slices.Concat(lhs.Modules, rhs.Modules) {
		i, ok := index[m.ID]
		if !ok {
			out.Modules = append(out.Modules, Module{ID: m.ID})
			i = len(out.Modules) - 1
			index[m.ID] = i
		}

		acc := out.Modules[i]
		artifacts, err := mergeArtifacts(m.ID, "artifacts", acc.Artifacts, m.Artifacts, func(a Artifact) string { return a.Name })
		if err != nil {
			return BuildInfo{}, err
		}
		deps, err := mergeArtifacts(m.ID, "dependencies", acc.Dependencies, m.Dependencies, func(a Artifact) string { return a.ID })
		if err != nil {
			return BuildInfo{}, err
		}
		out.Modules[i] = Module{ID: m.ID, Artifacts: artifacts, Dependencies: deps}
	}

	return out, nil
}

// MergeAll folds the documents left to right and stops at the first error.
func MergeAll(docs ...*BuildInfo) (BuildInfo, error) {
	var acc BuildInfo
	for i, doc := range docs {
		merged, err := Merge(&acc, doc)
		if err != nil {
			return BuildInfo{}, zerr.With(err, "document_index", i)
		}
		acc = merged
	}
	return acc, nil
}

func checkCompatible(lhs, rhs *BuildInfo) error {
	fields := []struct {
		name     string
		lhs, rhs string
	}{
		{"version", lhs.Version, rhs.Version},
		{"name", lhs.Name, rhs.Name},
		{"number", lhs.Number, rhs.Number},
	}
	for _, f := range fields {
		if f.lhs != f.rhs {
			err := zerr.With(zerr.Wrap(ErrIncompatibleDocuments, "merge build info"), "field", f.name)
			err = zerr.With(err, "lhs", f.lhs)
			return zerr.With(err, "rhs", f.rhs)
		}
	}
	return nil
}

// mergeArtifacts unions two artifact lists keyed by key.
// Entries sharing a key must carry the same checksums, on either side.
func mergeArtifacts(moduleID, section string, lhs, rhs []Artifact, key func(Artifact) string) ([]Artifact, error) {
	out := make([]Artifact, 0, len(lhs)+len(rhs))
	seen := make(map[string]Artifact, len(lhs)+len(rhs))

	for _, a := range slices.Concat(lhs, rhs) {
		existing, ok := seen[key(a)]
		if !ok {
			seen[key(a)] = a
			out = append(out, a)
			continue
		}
		if existing != a {
			err := zerr.With(zerr.Wrap(ErrArtifactConflict, "merge module"), "module", moduleID)
			err = zerr.With(err, "section", section)
			err = zerr.With(err, "key", key(a))
			err = zerr.With(err, "lhs_sha1", existing.SHA1)
			return nil, zerr.With(err, "rhs_sha1", a.SHA1)
		}
	}

	SortArtifacts(out)
	return out, nil
}
