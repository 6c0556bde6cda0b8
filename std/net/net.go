package net

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

const userAgent = "ewb/1.0 (compatible; Go)"

// httpClient is a shared HTTP client with a conservative timeout.
var httpClient = &http.Client{
	Timeout: 30 * time.Second,
}

// Request retrieves the document at the given URL. Supported schemes are
// http, https, and file (local documents). Any other scheme is a transport
// error, as is a non-2xx status or a response encoding the engine cannot
// consume.
func Request(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parsing URL %q: %w", rawURL, err)
	}

	switch u.Scheme {
	case "http", "https":
		return fetchHTTP(rawURL)
	case "file":
		return fetchFile(u)
	case "":
		return "", fmt.Errorf("URL missing scheme: %q", rawURL)
	default:
		return "", fmt.Errorf("unsupported scheme %q in %q", u.Scheme, rawURL)
	}
}

func fetchHTTP(rawURL string) (string, error) {
	req, err := http.NewRequest("GET", rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("HTTP %d fetching %s", resp.StatusCode, rawURL)
	}

	// The transport decodes gzip it negotiated itself; an explicit
	// Content-Encoding it left alone would reach us raw, so reject it.
	if enc := resp.Header.Get("Content-Encoding"); enc != "" {
		return "", fmt.Errorf("unsupported content encoding %q from %s", enc, rawURL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response body: %w", err)
	}
	return string(body), nil
}

func fetchFile(u *url.URL) (string, error) {
	path := u.Path
	if u.Host != "" {
		// file://some/relative/path parses the first segment as a host
		path = u.Host + path
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

// IsNetworkURL reports whether the string looks like an HTTP or HTTPS URL.
func IsNetworkURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// ResolveURL resolves a possibly-relative reference against a base URL.
// If either side fails to parse, the reference is returned unchanged.
func ResolveURL(base, ref string) string {
	baseURL, err := url.Parse(base)
	if err != nil {
		return ref
	}
	refURL, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return baseURL.ResolveReference(refURL).String()
}
