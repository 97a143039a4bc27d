package domain_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/buildinfo/internal/core/domain"
)

func TestCredentials_Mode(t *testing.T) {
	tests := []struct {
		name  string
		creds domain.Credentials
		want  domain.AuthMode
	}{
		{"anonymous", domain.Credentials{}, domain.AuthAnonymous},
		{"basic", domain.Credentials{User: "u", Password: "p"}, domain.AuthBasic},
		{"api key", domain.Credentials{APIKey: "k"}, domain.AuthAPIKey},
		{"basic wins over api key", domain.Credentials{User: "u", Password: "p", APIKey: "k"}, domain.AuthBasic},
		{"user without password", domain.Credentials{User: "u", APIKey: "k"}, domain.AuthAPIKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.creds.Mode())
		})
	}
}

func TestCredentials_Override(t *testing.T) {
	base := domain.Credentials{User: "u", Password: "p"}

	tests := []struct {
		name     string
		flags    domain.Credentials
		want     domain.Credentials
		wantMode domain.AuthMode
	}{
		{"no flags keeps settings", domain.Credentials{}, base, domain.AuthBasic},
		{"api key replaces basic", domain.Credentials{APIKey: "k"}, domain.Credentials{APIKey: "k"}, domain.AuthAPIKey},
		{"basic pair replaces basic", domain.Credentials{User: "ci", Password: "flag"}, domain.Credentials{User: "ci", Password: "flag"}, domain.AuthBasic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := base.Override(tt.flags)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantMode, got.Mode())
		})
	}

	assert.Equal(t, domain.Credentials{User: "u", Password: "p"}, base)
}

func TestLayoutPaths(t *testing.T) {
	ref := domain.PackageReference{Name: "libfoo", Version: "1.0"}
	scoped := domain.PackageReference{Name: "zlib", Version: "1.2", User: "conan", Channel: "stable"}

	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{
			name:     "DefaultCacheRoot",
			got:      domain.DefaultCacheRoot("home"),
			expected: filepath.Join("home", ".conan"),
		},
		{
			name:     "RecipeDir",
			got:      domain.RecipeDir("root", ref),
			expected: filepath.Join("root", "data", "libfoo", "1.0", "_", "_"),
		},
		{
			name:     "RecipeDirWithUserChannel",
			got:      domain.RecipeDir("root", scoped),
			expected: filepath.Join("root", "data", "zlib", "1.2", "conan", "stable"),
		},
		{
			name:     "PropertiesPath",
			got:      domain.PropertiesPath("root"),
			expected: filepath.Join("root", "artifacts.properties"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.got)
		})
	}
}
