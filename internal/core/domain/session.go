package domain

// PropertyPrefix prefixes the session keys stored in the artifacts properties file.
const PropertyPrefix = "artifact_property_"

const (
	// BuildNameProperty is the properties key holding the build name.
	BuildNameProperty = PropertyPrefix + "build.name"
	// BuildNumberProperty is the properties key holding the build number.
	BuildNumberProperty = PropertyPrefix + "build.number"
)

// Session identifies the build a document belongs to.
type Session struct {
	Name   string
	Number string
}

// IsZero reports whether no session is recorded.
func (s Session) IsZero() bool {
	return s.Name == "" && s.Number == ""
}
