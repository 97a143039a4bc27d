package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// PackageReference identifies one concrete binary build recorded in a lockfile.
type PackageReference struct {
	Name            string
	Version         string
	User            string
	Channel         string
	RecipeRevision  string
	PackageID       string
	PackageRevision string
}

// ParsePackageReference parses a lockfile reference of the form
// name/version[@user/channel][#rrev][:package_id[#prev]].
// A user or channel of "_" is treated as absent.
func ParsePackageReference(s string) (PackageReference, error) {
	invalid := func(reason string) error {
		err := zerr.With(zerr.Wrap(ErrInvalidReference, "parse reference"), "reference", s)
		return zerr.With(err, "reason", reason)
	}

	recipe, rest := s, ""
	if i := strings.IndexAny(s, "#:"); i >= 0 {
		recipe, rest = s[:i], s[i:]
	}

	var ref PackageReference

	nameVersion, userChannel, scoped := strings.Cut(recipe, "@")
	name, version, ok := strings.Cut(nameVersion, "/")
	if !ok || name == "" || version == "" || strings.Contains(version, "/") {
		return PackageReference{}, invalid("expected name/version")
	}
	ref.Name, ref.Version = name, version

	if scoped {
		user, channel, ok := strings.Cut(userChannel, "/")
		if !ok || user == "" || channel == "" || strings.Contains(channel, "/") {
			return PackageReference{}, invalid("expected @user/channel")
		}
		if user != "_" {
			ref.User = user
		}
		if channel != "_" {
			ref.Channel = channel
		}
	}

	if after, found := strings.CutPrefix(rest, "#"); found {
		rrev, pkg, hasPkg := strings.Cut(after, ":")
		if rrev == "" {
			return PackageReference{}, invalid("empty recipe revision")
		}
		ref.RecipeRevision = rrev
		rest = ""
		if hasPkg {
			rest = ":" + pkg
		}
	}

	if after, found := strings.CutPrefix(rest, ":"); found {
		ref.PackageID, ref.PackageRevision, _ = strings.Cut(after, "#")
		if ref.PackageID == "" {
			return PackageReference{}, invalid("empty package id")
		}
	}

	return ref, nil
}

// HasUserChannel reports whether both user and channel are set.
func (r PackageReference) HasUserChannel() bool {
	return r.User != "" && r.Channel != ""
}

// RecipeReference returns name/version[@user/channel].
func (r PackageReference) RecipeReference() string {
	if r.HasUserChannel() {
		return r.Name + "/" + r.Version + "@" + r.User + "/" + r.Channel
	}
	return r.Name + "/" + r.Version
}

// PackageReferenceString returns the recipe reference followed by ":<package_id>".
func (r PackageReference) PackageReferenceString() string {
	return r.RecipeReference() + ":" + r.PackageID
}

// String returns the full reference including revisions.
func (r PackageReference) String() string {
	var b strings.Builder
	b.WriteString(r.RecipeReference())
	if r.RecipeRevision != "" {
		b.WriteString("#" + r.RecipeRevision)
	}
	if r.PackageID != "" {
		b.WriteString(":" + r.PackageID)
		if r.PackageRevision != "" {
			b.WriteString("#" + r.PackageRevision)
		}
	}
	return b.String()
}

// repositoryPrefix returns the user/name/version/channel/rrev path used by the artifact repository.
func (r PackageReference) repositoryPrefix() string {
	user, channel := "_", "_"
	if r.HasUserChannel() {
		user, channel = r.User, r.Channel
	}
	return strings.Join([]string{user, r.Name, r.Version, channel, r.RecipeRevision}, "/")
}

// ExportPath returns the repository path of the exported recipe files.
func (r PackageReference) ExportPath() string {
	return r.repositoryPrefix() + "/export"
}

// PackagePath returns the repository path of the binary package files.
func (r PackageReference) PackagePath() string {
	return r.repositoryPrefix() + "/package/" + r.PackageID + "/" + r.PackageRevision
}

// CacheKey identifies the artifacts of one kind for this reference, revisions included.
func (r PackageReference) CacheKey(kind ArtifactKind) string {
	ref := r.RecipeReference() + "#" + r.RecipeRevision
	if kind == KindPackage {
		ref += ":" + r.PackageID + "#" + r.PackageRevision
	}
	return kind.String() + "|" + ref
}
