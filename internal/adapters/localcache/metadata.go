package localcache

import "go.trai.ch/buildinfo/internal/core/domain"

// metadataDTO is the per-recipe metadata.json written by the package manager.
type metadataDTO struct {
	Recipe   recipeDTO             `json:"recipe"`
	Packages map[string]packageDTO `json:"packages"`
}

type recipeDTO struct {
	Revision  string               `json:"revision"`
	Remote    string               `json:"remote"`
	Checksums domain.ChecksumTable `json:"checksums"`
}

type packageDTO struct {
	Revision       string               `json:"revision"`
	RecipeRevision string               `json:"recipe_revision"`
	Remote         string               `json:"remote"`
	Checksums      domain.ChecksumTable `json:"checksums"`
}

// remotesDTO is the remotes.json registry.
type remotesDTO struct {
	Remotes []remoteDTO `json:"remotes"`
}

type remoteDTO struct {
	Name      string `json:"name"`
	URL       string `json:"url"`
	VerifySSL bool   `json:"verify_ssl"`
}
