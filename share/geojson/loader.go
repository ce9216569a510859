package geojson

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/bitmark-inc/covid-dashboard/schema"
)

// Decode reads a boundary document
func Decode(r io.Reader) (*schema.FeatureCollection, error) {
	var result schema.FeatureCollection
	if err := json.NewDecoder(r).Decode(&result); err != nil {
		return nil, err
	}
	return &result, nil
}

// FileLoader reads a boundary document from a local file
func FileLoader(file string) Loader {
	return func(_ context.Context) (*schema.FeatureCollection, error) {
		f, err := os.Open(file)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		return Decode(f)
	}
}

// HTTPLoader downloads a boundary document
func HTTPLoader(client *http.Client, url string) Loader {
	if client == nil {
		client = http.DefaultClient
	}

	return func(ctx context.Context) (*schema.FeatureCollection, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}

		resp, err := client.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("download geometry %s: status %d", url, resp.StatusCode)
		}

		return Decode(resp.Body)
	}
}

// NewLoader returns an http loader for http(s) locations and a file loader
// otherwise
func NewLoader(client *http.Client, location string) Loader {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return HTTPLoader(client, location)
	}
	return FileLoader(strings.TrimPrefix(location, "file://"))
}
