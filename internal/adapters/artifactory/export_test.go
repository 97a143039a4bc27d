package artifactory

import "net/http"

// MaxMessageBytes exposes the service message cap.
const MaxMessageBytes = maxMessageBytes

// NewWithClient creates a Client using the given HTTP client.
func NewWithClient(client *http.Client) *Client {
	return newWithClient(client)
}
