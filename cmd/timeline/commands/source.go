package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/TudorHulban/timeline/internal/source"
	"github.com/TudorHulban/timeline/internal/source/cached"
	"github.com/TudorHulban/timeline/internal/source/httpapi"
	"github.com/TudorHulban/timeline/internal/source/yamlfile"
)

// newSource returns the configured data source wrapped with the fetch cache.
func newSource(rootCmd *RootCommand) (source.Source, error) {
	var next source.Source

	switch rootCmd.SourceType {
	case SourceTypeAPI:
		client, err := httpapi.NewClient(httpapi.ClientConfig{
			BaseURL: rootCmd.APIURL,
			Timeout: rootCmd.APITimeout,
			Logger:  rootCmd.Logger,
		})
		if err != nil {
			return nil, fmt.Errorf("could not create API client: %w", err)
		}
		next = client

	default:
		path, err := filepath.Abs(rootCmd.File)
		if err != nil {
			return nil, fmt.Errorf("could not resolve snapshot path: %w", err)
		}
		next = yamlfile.NewSnapshotRepository(os.DirFS(filepath.Dir(path)), filepath.Base(path))
	}

	src, err := cached.NewSource(cached.SourceConfig{
		Source: next,
		Size:   rootCmd.CacheSize,
		Logger: rootCmd.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create cached source: %w", err)
	}

	return src, nil
}
