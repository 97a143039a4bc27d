package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/buildinfo/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestParsePackageReference(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    domain.PackageReference
		recipe  string
		pkg     string
		export  string
		pkgPath  string
	}{
		{
			name:  "with user and channel",
			input: "zlib/1.2.11@conan/stable#rrev1:pid1#prev1",
			want: domain.PackageReference{
				Name: "zlib", Version: "1.2.11", User: "conan", Channel: "stable",
				RecipeRevision: "rrev1", PackageID: "pid1", PackageRevision: "prev1",
			},
			recipe:   "zlib/1.2.11@conan/stable",
			pkg:      "zlib/1.2.11@conan/stable:pid1",
			export:   "conan/zlib/1.2.11/stable/rrev1/export",
			pkgPath:  "conan/zlib/1.2.11/stable/rrev1/package/pid1/prev1",
		},
		{
			name:  "without user and channel",
			input: "libfoo/1.0#abc:def#ghi",
			want: domain.PackageReference{
				Name: "libfoo", Version: "1.0",
				RecipeRevision: "abc", PackageID: "def", PackageRevision: "ghi",
			},
			recipe:   "libfoo/1.0",
			pkg:      "libfoo/1.0:def",
			export:   "_/libfoo/1.0/_/abc/export",
			pkgPath:  "_/libfoo/1.0/_/abc/package/def/ghi",
		},
		{
			name:  "underscore user and channel",
			input: "libfoo/1.0@_/_#abc:def#ghi",
			want: domain.PackageReference{
				Name: "libfoo", Version: "1.0",
				RecipeRevision: "abc", PackageID: "def", PackageRevision: "ghi",
			},
			recipe:   "libfoo/1.0",
			pkg:      "libfoo/1.0:def",
			export:   "_/libfoo/1.0/_/abc/export",
			pkgPath:  "_/libfoo/1.0/_/abc/package/def/ghi",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, err := domain.ParsePackageReference(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ref)
			assert.Equal(t, tt.recipe, ref.RecipeReference())
			assert.Equal(t, tt.pkg, ref.PackageReferenceString())
			assert.Equal(t, tt.export, ref.ExportPath())
			assert.Equal(t, tt.pkgPath, ref.PackagePath())
		})
	}
}

func TestParsePackageReference_RoundTrip(t *testing.T) {
	for _, s := range []string{
		"zlib/1.2.11@conan/stable#rrev1:pid1#prev1",
		"libfoo/1.0#abc:def#ghi",
		"libfoo/1.0#abc",
		"libfoo/1.0:def",
		"libfoo/1.0",
	} {
		ref, err := domain.ParsePackageReference(s)
		require.NoError(t, err, s)
		assert.Equal(t, s, ref.String())
	}
}

func TestParsePackageReference_Invalid(t *testing.T) {
	for _, s := range []string{
		"",
		"libfoo",
		"libfoo/",
		"/1.0",
		"libfoo/1.0/extra",
		"libfoo/1.0@user",
		"libfoo/1.0@user/",
		"libfoo/1.0#:pid",
		"libfoo/1.0#rrev:",
	} {
		t.Run(s, func(t *testing.T) {
			_, err := domain.ParsePackageReference(s)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrInvalidReference))

			var zErr *zerr.Error
			require.ErrorAs(t, err, &zErr)
			assert.Equal(t, s, zErr.Metadata()["reference"])
		})
	}
}

func TestPackageReference_CacheKey(t *testing.T) {
	ref, err := domain.ParsePackageReference("libfoo/1.0#abc:def#ghi")
	require.NoError(t, err)

	assert.Equal(t, "recipe|libfoo/1.0#abc", ref.CacheKey(domain.KindRecipe))
	assert.Equal(t, "package|libfoo/1.0#abc:def#ghi", ref.CacheKey(domain.KindPackage))
}
