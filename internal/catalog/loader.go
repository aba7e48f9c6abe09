package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// Source yields the raw catalog JSON array.
type Source interface {
	Open(ctx context.Context) (io.ReadCloser, error)
	String() string
}

// HTTPSource fetches the catalog over HTTP, asking every cache on the way
// to revalidate.
type HTTPSource struct {
	URL    string
	Client *http.Client
}

func (s HTTPSource) Open(ctx context.Context) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("build catalog request: %w", err)
	}
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Accept", "application/json")

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("fetch catalog: unexpected status %d", resp.StatusCode)
	}
	return resp.Body, nil
}

func (s HTTPSource) String() string { return s.URL }

// FileSource reads the catalog from a local path.
type FileSource struct {
	Path string
}

func (s FileSource) Open(context.Context) (io.ReadCloser, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	return f, nil
}

func (s FileSource) String() string { return s.Path }

// SourceFor picks an HTTPSource for http(s) locations and a FileSource
// otherwise.
func SourceFor(location string, timeout time.Duration) Source {
	loc := strings.TrimSpace(location)
	lower := strings.ToLower(loc)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return HTTPSource{URL: loc, Client: &http.Client{Timeout: timeout}}
	}
	return FileSource{Path: loc}
}

// Load reads and decodes the whole catalog. There is no retry and no
// partial result: any failure returns an error and a nil catalog.
func Load(ctx context.Context, src Source) (*Catalog, error) {
	if src == nil {
		return nil, fmt.Errorf("catalog source is required")
	}
	body, err := src.Open(ctx)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	var products []Product
	if err := json.NewDecoder(body).Decode(&products); err != nil {
		return nil, fmt.Errorf("decode catalog from %s: %w", src, err)
	}
	return New(products), nil
}
