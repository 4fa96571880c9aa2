package services

import (
	"context"

	"github.com/yigit/coursemap/internal/app/models"
	"github.com/yigit/coursemap/internal/app/pipeline"
)

// CatalogSource loads the normalized catalog served by the API
type CatalogSource interface {
	List(ctx context.Context) (*models.Table, error)
}

// FileCatalogSource reads the catalog written by the pipeline
type FileCatalogSource struct {
	Path string
}

// NewFileCatalogSource creates a FileCatalogSource for path
func NewFileCatalogSource(path string) *FileCatalogSource {
	return &FileCatalogSource{Path: path}
}

// List implements CatalogSource
func (s *FileCatalogSource) List(ctx context.Context) (*models.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return pipeline.Read(s.Path)
}
