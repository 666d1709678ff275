// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nokout

// Package fetch downloads remote WSDL/XSD inputs over HTTP(S).
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// DefaultTimeout bounds a single download.
const DefaultTimeout = 30 * time.Second

// Error reports a failed download.
type Error struct {
	URL    string
	Status int
	Err    error
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("download %s: unexpected status %d", e.URL, e.Status)
	}
	return fmt.Sprintf("download %s: %v", e.URL, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// IsURL reports whether input names an HTTP(S) resource rather than a
// local file.
func IsURL(input string) bool {
	return strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://")
}

// Download fetches rawURL into destDir and returns the written file path.
// The file name comes from the URL path, falling back to downloaded.wsdl
// for bare service endpoints like "?wsdl".
func Download(ctx context.Context, rawURL, destDir string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return "", &Error{URL: rawURL, Err: fmt.Errorf("not an http(s) URL")}
	}

	ctx, cancel := context.WithTimeout(ctx, DefaultTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", &Error{URL: rawURL, Err: err}
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", &Error{URL: rawURL, Err: err}
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return "", &Error{URL: rawURL, Status: resp.StatusCode}
	}

	name := path.Base(u.Path)
	if name == "" || name == "." || name == "/" {
		name = "downloaded.wsdl"
	}

	if err := os.MkdirAll(destDir, 0o750); err != nil {
		return "", &Error{URL: rawURL, Err: err}
	}
	dest := filepath.Join(destDir, name)
	f, err := os.Create(dest) //nolint:gosec // dest is derived from caller's destDir
	if err != nil {
		return "", &Error{URL: rawURL, Err: err}
	}
	defer f.Close() //nolint:errcheck

	if _, err := io.Copy(f, resp.Body); err != nil {
		return "", &Error{URL: rawURL, Err: err}
	}
	return dest, nil
}
