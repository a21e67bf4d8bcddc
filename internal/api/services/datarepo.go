package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

var ErrNoHTTPSAccess = errors.New("DRS object has no https access method")

// DataRepoClient resolves DRS objects served by the federated data
// repository.
type DataRepoClient struct {
	baseURL    string
	tokens     oauth2.TokenSource
	httpClient *http.Client
}

func NewDataRepoClient(baseURL string, tokens oauth2.TokenSource) *DataRepoClient {
	return &DataRepoClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		tokens:     oauth2.ReuseTokenSource(nil, tokens),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// AccessToken is the bearer token clients send to the data repository.
func (c *DataRepoClient) AccessToken(ctx context.Context) (string, error) {
	token, err := c.tokens.Token()
	if err != nil {
		return "", fmt.Errorf("data repository token: %w", err)
	}
	return token.AccessToken, nil
}

// ObjectID extracts the object id from a drs:// URI; other values are
// returned unchanged.
func ObjectID(drsID string) string {
	rest, ok := strings.CutPrefix(drsID, "drs://")
	if !ok {
		return drsID
	}
	if i := strings.LastIndex(rest, "/"); i >= 0 {
		return rest[i+1:]
	}
	return rest
}

// ResolveDRS returns the https URL of the object named by drsID, fetching a
// signed access URL when the object only carries an access id.
func (c *DataRepoClient) ResolveDRS(ctx context.Context, drsID string) (string, error) {
	objectID := url.PathEscape(ObjectID(drsID))

	var object DRSObject
	if err := c.get(ctx, "/ga4gh/drs/v1/objects/"+objectID, &object); err != nil {
		return "", err
	}
	method, ok := object.HTTPSAccess()
	if !ok {
		return "", ErrNoHTTPSAccess
	}
	if method.AccessURL != nil && method.AccessURL.URL != "" {
		return method.AccessURL.URL, nil
	}
	if method.AccessID == "" {
		return "", ErrNoHTTPSAccess
	}

	var access AccessURL
	if err := c.get(ctx, "/ga4gh/drs/v1/objects/"+objectID+"/access/"+url.PathEscape(method.AccessID), &access); err != nil {
		return "", err
	}
	if access.URL == "" {
		return "", ErrNoHTTPSAccess
	}
	return access.URL, nil
}

func (c *DataRepoClient) get(ctx context.Context, path string, out any) error {
	token, err := c.AccessToken(ctx)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &StatusError{Service: "data repository", StatusCode: resp.StatusCode}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode data repository response: %w", err)
	}
	return nil
}
