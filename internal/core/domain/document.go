package domain

import (
	"encoding/json"
	"maps"
	"slices"
	"time"
)

const (
	// DocumentVersion is the build-info format version written by this tool.
	DocumentVersion = "1.0.1"

	// DocumentType is the build type recorded in every document.
	DocumentType = "GENERIC"

	// AgentName is the build agent name recorded in every document.
	AgentName = "buildinfo"

	// EnvPropertyPrefix prefixes environment variables captured as document properties.
	EnvPropertyPrefix = "buildInfo.env."

	// StartedLayout formats the start timestamp with a zeroed millisecond field.
	StartedLayout = "2006-01-02T15:04:05.000Z"
)

// BuildAgent identifies the tool that produced a document.
type BuildAgent struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// BuildInfo is a build-provenance document.
type BuildInfo struct {
	Version    string
	Name       string
	Number     string
	Type       string
	Started    string
	BuildAgent BuildAgent
	Modules    []Module
	Properties map[string]string
}

// FormatStarted renders t in UTC with second precision.
func FormatStarted(t time.Time) string {
	return t.UTC().Truncate(time.Second).Format(StartedLayout)
}

// IsZero reports whether the document is empty.
func (b *BuildInfo) IsZero() bool {
	return b == nil || (b.Version == "" && b.Name == "" && b.Number == "" && len(b.Modules) == 0)
}

// Module returns the module with the given id.
func (b *BuildInfo) Module(id string) (Module, bool) {
	for _, m := range b.Modules {
		if m.ID == id {
			return m, true
		}
	}
	return Module{}, false
}

// Clone returns a deep copy of the document.
func (b *BuildInfo) Clone() BuildInfo {
	out := *b
	out.Modules = make([]Module, len(b.Modules))
	for i, m := range b.Modules {
		out.Modules[i] = m.Clone()
	}
	out.Properties = maps.Clone(b.Properties)
	return out
}

// Clone returns a deep copy of the module.
func (m Module) Clone() Module {
	return Module{
		ID:           m.ID,
		Artifacts:    slices.Clone(m.Artifacts),
		Dependencies: slices.Clone(m.Dependencies),
	}
}

type moduleJSON struct {
	ID           string     `json:"id"`
	Artifacts    []Artifact `json:"artifacts"`
	Dependencies []Artifact `json:"dependencies"`
}

// MarshalJSON writes artifacts sorted by label and never emits null lists.
func (m Module) MarshalJSON() ([]byte, error) {
	out := moduleJSON{
		ID:           m.ID,
		Artifacts:    sortedCopy(m.Artifacts),
		Dependencies: sortedCopy(m.Dependencies),
	}
	return json.Marshal(out)
}

func sortedCopy(artifacts []Artifact) []Artifact {
	out := make([]Artifact, len(artifacts))
	copy(out, artifacts)
	SortArtifacts(out)
	return out
}

type buildInfoJSON struct {
	Version    string            `json:"version"`
	Name       string            `json:"name"`
	Number     string            `json:"number"`
	Type       string            `json:"type"`
	Started    string            `json:"started"`
	BuildAgent BuildAgent        `json:"buildAgent"`
	Modules    []Module          `json:"modules"`
	Properties map[string]string `json:"properties,omitempty"`
}

// MarshalJSON writes the document in the build-info wire format.
func (b BuildInfo) MarshalJSON() ([]byte, error) {
	modules := b.Modules
	if modules == nil {
		modules = []Module{}
	}
	return json.Marshal(buildInfoJSON{
		Version:    b.Version,
		Name:       b.Name,
		Number:     b.Number,
		Type:       b.Type,
		Started:    b.Started,
		BuildAgent: b.BuildAgent,
		Modules:    modules,
		Properties: b.Properties,
	})
}

// UnmarshalJSON reads a document in the build-info wire format.
func (b *BuildInfo) UnmarshalJSON(data []byte) error {
	var in buildInfoJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	*b = BuildInfo(in)
	return nil
}
