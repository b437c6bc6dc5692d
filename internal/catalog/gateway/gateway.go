package gateway

import (
	"context"

	"cafepos/internal/catalog/models"
	"cafepos/internal/datasource"
	strs "cafepos/pkg/platform/strings"
)

const resource = "Category"

// CatalogDataSource is the slice of the data source the catalog reads.
type CatalogDataSource interface {
	datasource.CategoryDataSource
	datasource.ProductDataSource
}

type Gateway struct {
	ds CatalogDataSource
}

func New(ds CatalogDataSource) *Gateway {
	return &Gateway{ds: ds}
}

func (g *Gateway) FindCategoryByID(ctx context.Context, id string) (*models.Category, error) {
	return g.load(g.ds.FindCategoryByID(ctx, id))
}

func (g *Gateway) FindCategoryByNameAndStoreID(ctx context.Context, name, storeID string) (*models.Category, error) {
	return g.load(g.ds.FindCategoryByNameAndStoreID(ctx, name, storeID))
}

// SaveCategory persists the category and its product set.
func (g *Gateway) SaveCategory(ctx context.Context, c *models.Category) error {
	return datasource.Translate(g.ds.SaveCategory(ctx, CategoryToDTO(c)), resource)
}

// FindProductsByID returns the products found, in no particular order.
// Repeated ids are queried once; missing ids are skipped.
func (g *Gateway) FindProductsByID(ctx context.Context, ids []string) ([]*models.Product, error) {
	ids = strs.DedupeAndTrim(ids)
	if len(ids) == 0 {
		return nil, nil
	}
	dtos, err := g.ds.FindProductsByID(ctx, ids)
	if err != nil {
		return nil, datasource.Translate(err, "Product")
	}
	out := make([]*models.Product, 0, len(dtos))
	for _, dto := range dtos {
		p, err := ProductFromDTO(dto)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (g *Gateway) load(dto datasource.CategoryDTO, err error) (*models.Category, error) {
	if err != nil {
		return nil, datasource.Translate(err, resource)
	}
	return CategoryFromDTO(dto)
}
