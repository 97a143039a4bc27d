package domain

// ModuleRecord accumulates the artifacts of one module while a document is being built.
type ModuleRecord struct {
	ID           string
	Artifacts    ArtifactSet
	Dependencies ArtifactSet
}

// ModuleSet holds module records keyed by id, in insertion order.
type ModuleSet struct {
	order   []string
	records map[string]*ModuleRecord
}

// NewModuleSet creates an empty module set.
func NewModuleSet() *ModuleSet {
	return &ModuleSet{records: make(map[string]*ModuleRecord)}
}

// Get returns the record for id, creating an empty one when absent.
func (s *ModuleSet) Get(id string) *ModuleRecord {
	if rec, ok := s.records[id]; ok {
		return rec
	}
	rec := &ModuleRecord{
		ID:           id,
		Artifacts:    NewArtifactSet(),
		Dependencies: NewArtifactSet(),
	}
	s.records[id] = rec
	s.order = append(s.order, id)
	return rec
}

// Lookup returns the record for id if present.
func (s *ModuleSet) Lookup(id string) (*ModuleRecord, bool) {
	rec, ok := s.records[id]
	return rec, ok
}

// Len returns the number of modules.
func (s *ModuleSet) Len() int {
	return len(s.order)
}

// IDs returns the module ids in insertion order.
func (s *ModuleSet) IDs() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Modules converts the records into document modules with sorted artifact lists.
func (s *ModuleSet) Modules() []Module {
	out := make([]Module, 0, len(s.order))
	for _, id := range s.order {
		rec := s.records[id]
		out = append(out, Module{
			ID:           rec.ID,
			Artifacts:    rec.Artifacts.Sorted(),
			Dependencies: rec.Dependencies.Sorted(),
		})
	}
	return out
}

// Module is the document form of a module.
type Module struct {
	ID           string     `json:"id"`
	Artifacts    []Artifact `json:"artifacts"`
	Dependencies []Artifact `json:"dependencies"`
}
