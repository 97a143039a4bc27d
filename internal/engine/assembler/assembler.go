// Package assembler wraps built modules and session metadata into a build-info document.
package assembler

import (
	"strings"
	"time"

	"go.trai.ch/buildinfo/internal/core/domain"
	"go.trai.ch/buildinfo/internal/core/ports"
	"go.trai.ch/zerr"
)

// excludedEnvTerms mark environment variables that are never captured.
var excludedEnvTerms = []string{"secret", "key", "password"}

// Assembler builds documents.
type Assembler struct {
	env          ports.EnvironmentReader
	now          func() time.Time
	agentVersion string
}

// New creates an Assembler reporting agentVersion as the build agent version.
func New(env ports.EnvironmentReader, agentVersion string) *Assembler {
	return &Assembler{
		env:          env,
		now:          time.Now,
		agentVersion: agentVersion,
	}
}

// WithClock replaces the clock used for the start timestamp.
func (a *Assembler) WithClock(now func() time.Time) *Assembler {
	a.now = now
	return a
}

// Assemble creates the document of session from modules. Environment variables are captured
// as properties unless skipEnv is set.
func (a *Assembler) Assemble(session domain.Session, modules *domain.ModuleSet, skipEnv bool) (*domain.BuildInfo, error) {
	if session.Name == "" || session.Number == "" {
		return nil, zerr.Wrap(domain.ErrNoActiveSession, "assemble build info")
	}

	doc := &domain.BuildInfo{
		Version: domain.DocumentVersion,
		Name:    session.Name,
		Number:  session.Number,
		Type:    domain.DocumentType,
		Started: domain.FormatStarted(a.now()),
		BuildAgent: domain.BuildAgent{
			Name:    domain.AgentName,
			Version: a.agentVersion,
		},
		Modules: modules.Modules(),
	}

	if !skipEnv {
		doc.Properties = a.environment()
	}

	return doc, nil
}

func (a *Assembler) environment() map[string]string {
	props := make(map[string]string)
	for _, kv := range a.env.Environ() {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" || sensitive(key) {
			continue
		}
		props[domain.EnvPropertyPrefix+key] = value
	}
	return props
}

func sensitive(key string) bool {
	lower := strings.ToLower(key)
	for _, term := range excludedEnvTerms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}
