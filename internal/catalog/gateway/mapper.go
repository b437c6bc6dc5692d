package gateway

import (
	"cafepos/internal/catalog/models"
	"cafepos/internal/datasource"
)

func ProductToDTO(p *models.Product, categoryID string) datasource.ProductDTO {
	return datasource.ProductDTO{
		ID:          p.ID(),
		Name:        p.Name(),
		Price:       p.Price(),
		Description: p.Description(),
		PrepTime:    p.PrepTime(),
		ImageURL:    p.ImageURL(),
		StoreID:     p.StoreID(),
		CategoryID:  categoryID,
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   p.UpdatedAt(),
	}
}

func ProductFromDTO(dto datasource.ProductDTO) (*models.Product, error) {
	return models.RestoreProduct(models.ProductProps{
		ID:          dto.ID,
		Name:        dto.Name,
		Price:       dto.Price,
		Description: dto.Description,
		PrepTime:    dto.PrepTime,
		ImageURL:    dto.ImageURL,
		StoreID:     dto.StoreID,
		CreatedAt:   dto.CreatedAt,
		UpdatedAt:   dto.UpdatedAt,
	})
}

func CategoryToDTO(c *models.Category) datasource.CategoryDTO {
	products := c.Products()
	dto := datasource.CategoryDTO{
		ID:        c.ID(),
		Name:      c.Name(),
		StoreID:   c.StoreID(),
		CreatedAt: c.CreatedAt(),
		UpdatedAt: c.UpdatedAt(),
		Products:  make([]datasource.ProductDTO, 0, len(products)),
	}
	for _, p := range products {
		dto.Products = append(dto.Products, ProductToDTO(p, c.ID()))
	}
	return dto
}

func CategoryFromDTO(dto datasource.CategoryDTO) (*models.Category, error) {
	products := make([]*models.Product, 0, len(dto.Products))
	for _, pd := range dto.Products {
		p, err := ProductFromDTO(pd)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return models.RestoreCategory(models.CategoryProps{
		ID:        dto.ID,
		Name:      dto.Name,
		StoreID:   dto.StoreID,
		CreatedAt: dto.CreatedAt,
		UpdatedAt: dto.UpdatedAt,
		Products:  products,
	})
}
