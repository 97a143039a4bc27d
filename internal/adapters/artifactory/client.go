// Package artifactory implements ports.ArtifactRepository over the Artifactory REST API.
package artifactory

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"go.trai.ch/buildinfo/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	httpClientTimeout = 30 * time.Second

	storagePath = "/artifactory/api/storage/conan/"
	buildPath   = "/artifactory/api/build"

	// maxMessageBytes caps the service message copied into errors.
	maxMessageBytes = 4 << 10
)

// Client implements ports.ArtifactRepository.
type Client struct {
	httpClient *http.Client
}

// New creates a Client with the default timeout.
func New() *Client {
	return newWithClient(&http.Client{Timeout: httpClientTimeout})
}

func newWithClient(client *http.Client) *Client {
	return &Client{httpClient: client}
}

// outcome is the classification of a repository response.
type outcome int

const (
	outcomeSuccess outcome = iota
	outcomeAuthFailure
	outcomeFailure
)

// result is a repository response reduced to what callers act on.
type result struct {
	outcome outcome
	status  int
	body    []byte
}

// classify reads resp once. want is the status code that means success.
func classify(resp *http.Response, want int) (result, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return result{}, zerr.Wrap(err, domain.ErrRepositoryRequestFailed.Error())
	}

	res := result{status: resp.StatusCode, body: body}
	switch resp.StatusCode {
	case want:
		res.outcome = outcomeSuccess
	case http.StatusUnauthorized:
		res.outcome = outcomeAuthFailure
	default:
		res.outcome = outcomeFailure
	}
	return res, nil
}

func (r result) message() string {
	msg := strings.TrimSpace(string(r.body))
	if len(msg) > maxMessageBytes {
		cut := maxMessageBytes
		for cut > 0 && !utf8.RuneStart(msg[cut]) {
			cut--
		}
		msg = msg[:cut]
	}
	if msg == "" {
		msg = http.StatusText(r.status)
	}
	return msg
}

type storageResponse struct {
	Checksums domain.Checksum `json:"checksums"`
}

// FileChecksum queries the storage API for the checksums of the file at path.
func (c *Client) FileChecksum(
	ctx context.Context,
	baseURL, path string,
	creds domain.Credentials,
) (domain.Checksum, error) {
	endpoint, err := endpointURL(baseURL, storagePath+strings.TrimPrefix(path, "/"))
	if err != nil {
		return domain.Checksum{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return domain.Checksum{}, zerr.With(zerr.Wrap(err, domain.ErrRepositoryRequestFailed.Error()), "url", endpoint)
	}
	authenticate(req, creds)

	res, err := c.do(req)
	if err != nil {
		return domain.Checksum{}, err
	}

	switch res.outcome {
	case outcomeSuccess:
	case outcomeAuthFailure:
		return domain.Checksum{}, zerr.With(zerr.Wrap(domain.ErrAuthentication, "fetch checksum"), "url", endpoint)
	default:
		err := zerr.With(zerr.Wrap(domain.ErrResolution, "fetch checksum"), "url", endpoint)
		err = zerr.With(err, "status", res.status)
		return domain.Checksum{}, zerr.With(err, "message", res.message())
	}

	var payload storageResponse
	if err := json.Unmarshal(res.body, &payload); err != nil {
		return domain.Checksum{}, zerr.With(zerr.Wrap(err, domain.ErrRepositoryParseFailed.Error()), "url", endpoint)
	}
	return payload.Checksums, nil
}

// PublishBuildInfo uploads body to the build API.
func (c *Client) PublishBuildInfo(ctx context.Context, baseURL string, body []byte, creds domain.Credentials) error {
	endpoint, err := endpointURL(baseURL, buildPath)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, endpoint, bytes.NewReader(body))
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrRepositoryRequestFailed.Error()), "url", endpoint)
	}
	req.Header.Set("Content-Type", "application/json")
	authenticate(req, creds)

	res, err := c.do(req)
	if err != nil {
		return err
	}

	switch res.outcome {
	case outcomeSuccess:
		return nil
	case outcomeAuthFailure:
		return zerr.With(zerr.Wrap(domain.ErrAuthentication, "publish build info"), "url", endpoint)
	default:
		err := zerr.With(zerr.Wrap(domain.ErrPublishFailed, "publish build info"), "url", endpoint)
		err = zerr.With(err, "status", res.status)
		return zerr.With(err, "message", res.message())
	}
}

func (c *Client) do(req *http.Request) (result, error) {
	want := http.StatusOK
	if req.Method == http.MethodPut {
		want = http.StatusNoContent
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return result{}, zerr.With(zerr.Wrap(err, domain.ErrRepositoryRequestFailed.Error()), "url", req.URL.String())
	}
	defer func() { _ = resp.Body.Close() }()

	return classify(resp, want)
}

// authenticate applies basic credentials, else the API key header.
func authenticate(req *http.Request, creds domain.Credentials) {
	switch creds.Mode() {
	case domain.AuthBasic:
		req.SetBasicAuth(creds.User, creds.Password)
	case domain.AuthAPIKey:
		req.Header.Set(domain.APIKeyHeader, creds.APIKey)
	case domain.AuthAnonymous:
	}
}

// endpointURL keeps the scheme and host of baseURL and replaces its path.
func endpointURL(baseURL, path string) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", zerr.With(zerr.Wrap(domain.ErrInvalidURL, "build endpoint"), "url", baseURL)
	}
	return (&url.URL{Scheme: u.Scheme, Host: u.Host, Path: path}).String(), nil
}
