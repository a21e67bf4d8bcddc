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
)

var ErrNoManifestLocation = errors.New("manifest response carried no location")

// AzulClient resolves project manifest requests against the metadata
// index. Manifest preparation answers with a redirect to the finished file.
type AzulClient struct {
	baseURL    string
	catalog    string
	httpClient *http.Client
}

func NewAzulClient(baseURL, catalog string) *AzulClient {
	return &AzulClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		catalog: catalog,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

func (c *AzulClient) DefaultCatalog() string {
	return c.catalog
}

type manifestLocation struct {
	Status   int    `json:"Status"`
	Location string `json:"Location"`
}

// ProjectManifestLink requests manifestURL, relative to the base URL unless
// absolute, and returns the location the manifest is served from.
func (c *AzulClient) ProjectManifestLink(ctx context.Context, catalog, manifestURL string) (string, error) {
	target, err := c.manifestRequestURL(catalog, manifestURL)
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusMovedPermanently, http.StatusFound, http.StatusSeeOther,
		http.StatusTemporaryRedirect, http.StatusPermanentRedirect:
		if loc := resp.Header.Get("Location"); loc != "" {
			return loc, nil
		}
		return "", ErrNoManifestLocation
	case http.StatusOK:
		var body manifestLocation
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			return "", fmt.Errorf("decode manifest response: %w", err)
		}
		if body.Location == "" {
			return "", ErrNoManifestLocation
		}
		return body.Location, nil
	default:
		_, _ = io.Copy(io.Discard, resp.Body)
		return "", &StatusError{Service: "azul", StatusCode: resp.StatusCode}
	}
}

func (c *AzulClient) manifestRequestURL(catalog, manifestURL string) (string, error) {
	if manifestURL == "" {
		return "", errors.New("manifest url is empty")
	}
	u, err := url.Parse(manifestURL)
	if err != nil {
		return "", fmt.Errorf("invalid manifest url: %w", err)
	}
	if !u.IsAbs() {
		base, err := url.Parse(c.baseURL)
		if err != nil {
			return "", fmt.Errorf("invalid azul url: %w", err)
		}
		u = base.ResolveReference(u)
	}
	q := u.Query()
	if q.Get("catalog") == "" && catalog != "" {
		q.Set("catalog", catalog)
		u.RawQuery = q.Encode()
	}
	return u.String(), nil
}
