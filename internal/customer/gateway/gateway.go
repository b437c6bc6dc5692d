package gateway

import (
	"context"

	"cafepos/internal/customer/models"
	"cafepos/internal/datasource"
	"cafepos/pkg/domain"
)

const resource = "Customer"

// Gateway is the only path from customer use cases to persistence.
type Gateway struct {
	ds datasource.CustomerDataSource
}

func New(ds datasource.CustomerDataSource) *Gateway {
	return &Gateway{ds: ds}
}

func (g *Gateway) FindByID(ctx context.Context, id string) (*models.Customer, error) {
	return g.load(g.ds.FindCustomerByID(ctx, id))
}

func (g *Gateway) FindByCPF(ctx context.Context, cpf domain.CPF) (*models.Customer, error) {
	return g.load(g.ds.FindCustomerByCPF(ctx, cpf.String()))
}

func (g *Gateway) FindByEmail(ctx context.Context, email domain.Email) (*models.Customer, error) {
	return g.load(g.ds.FindCustomerByEmail(ctx, email.String()))
}

func (g *Gateway) Save(ctx context.Context, c *models.Customer) error {
	return datasource.Translate(g.ds.SaveCustomer(ctx, ToDTO(c)), resource)
}

func (g *Gateway) FindAll(ctx context.Context, pagination datasource.Pagination, filters datasource.CustomerFilters) (datasource.Page[*models.Customer], error) {
	page, err := g.ds.FindAllCustomers(ctx, pagination, filters)
	if err != nil {
		return datasource.Page[*models.Customer]{}, datasource.Translate(err, resource)
	}
	out := datasource.Page[*models.Customer]{Total: page.Total, Page: page.Page, Limit: page.Limit}
	for _, dto := range page.Items {
		c, err := FromDTO(dto)
		if err != nil {
			return datasource.Page[*models.Customer]{}, err
		}
		out.Items = append(out.Items, c)
	}
	return out, nil
}

func (g *Gateway) load(dto datasource.CustomerDTO, err error) (*models.Customer, error) {
	if err != nil {
		return nil, datasource.Translate(err, resource)
	}
	return FromDTO(dto)
}
