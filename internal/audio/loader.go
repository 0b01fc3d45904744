package audio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"focusboard/resources"
)

// maxDownloadBytes bounds remote track downloads.
const maxDownloadBytes = 64 << 20

// ErrNotFound is returned when a path matches neither a bundled asset nor a file.
var ErrNotFound = errors.New("audio resource not found")

// Loader resolves track URLs to bytes. Bare relative paths name bundled
// assets, absolute paths and file:// URLs read the disk, and http(s) URLs
// are downloaded.
type Loader struct {
	client *http.Client
	assets func(string) ([]byte, error)
}

// NewLoader creates a loader. A nil client gets a 30 second timeout.
func NewLoader(client *http.Client) *Loader {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &Loader{client: client, assets: bundledAsset}
}

// Load returns the raw bytes behind rawURL.
func (loader *Loader) Load(ctx context.Context, rawURL string) ([]byte, error) {
	location := strings.TrimSpace(rawURL)
	lower := strings.ToLower(location)

	switch {
	case strings.HasPrefix(lower, "http://"), strings.HasPrefix(lower, "https://"):
		return loader.download(ctx, location)
	case strings.HasPrefix(lower, "file://"):
		parsed, err := url.Parse(location)
		if err != nil {
			return nil, fmt.Errorf("parse file url %q: %w", location, err)
		}
		return readFile(parsed.Path)
	case filepath.IsAbs(location):
		return readFile(location)
	}

	data, err := loader.assets(location)
	if err == nil {
		return data, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	return readFile(location)
}

func (loader *Loader) download(ctx context.Context, location string) ([]byte, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", location, err)
	}
	response, err := loader.client.Do(request)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", location, err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %s", location, response.Status)
	}
	data, err := io.ReadAll(io.LimitReader(response.Body, maxDownloadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", location, err)
	}
	if len(data) > maxDownloadBytes {
		return nil, fmt.Errorf("fetch %s: larger than %d bytes", location, maxDownloadBytes)
	}
	return data, nil
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

func bundledAsset(name string) ([]byte, error) {
	if !resources.HasAsset(name) {
		return nil, ErrNotFound
	}
	return resources.Asset(name)
}
