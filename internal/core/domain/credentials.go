package domain

// APIKeyHeader is the request header carrying an artifact repository API key.
const APIKeyHeader = "X-JFrog-Art-Api"

// AuthMode selects how requests to the artifact repository are authenticated.
type AuthMode int

const (
	// AuthAnonymous sends no credentials.
	AuthAnonymous AuthMode = iota
	// AuthBasic sends user and password as HTTP basic credentials.
	AuthBasic
	// AuthAPIKey sends the API key header.
	AuthAPIKey
)

// Credentials for the artifact repository.
type Credentials struct {
	User     string
	Password string
	APIKey   string
}

// Mode returns the authentication mode. Basic credentials win over an API key.
func (c Credentials) Mode() AuthMode {
	switch {
	case c.User != "" && c.Password != "":
		return AuthBasic
	case c.APIKey != "":
		return AuthAPIKey
	default:
		return AuthAnonymous
	}
}

// IsZero reports whether no credential is set.
func (c Credentials) IsZero() bool {
	return c == Credentials{}
}

// Override returns o when it carries any credential and c otherwise.
// Credentials are never combined field by field, so the mode follows what the caller set.
func (c Credentials) Override(o Credentials) Credentials {
	if o.IsZero() {
		return c
	}
	return o
}
