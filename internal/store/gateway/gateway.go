package gateway

import (
	"context"

	"cafepos/internal/datasource"
	"cafepos/internal/store/models"
	"cafepos/pkg/domain"
)

const resource = "Store"

type Gateway struct {
	ds datasource.StoreDataSource
}

func New(ds datasource.StoreDataSource) *Gateway {
	return &Gateway{ds: ds}
}

func (g *Gateway) FindByID(ctx context.Context, id string) (*models.Store, error) {
	return g.load(g.ds.FindStoreByID(ctx, id))
}

func (g *Gateway) FindByEmail(ctx context.Context, email domain.Email) (*models.Store, error) {
	return g.load(g.ds.FindStoreByEmail(ctx, email.String()))
}

func (g *Gateway) FindByCNPJ(ctx context.Context, cnpj domain.CNPJ) (*models.Store, error) {
	return g.load(g.ds.FindStoreByCNPJ(ctx, cnpj.String()))
}

func (g *Gateway) FindByName(ctx context.Context, name string) (*models.Store, error) {
	return g.load(g.ds.FindStoreByName(ctx, name))
}

func (g *Gateway) FindByTotemAccessToken(ctx context.Context, token string) (*models.Store, error) {
	return g.load(g.ds.FindStoreByTotemAccessToken(ctx, token))
}

// Save persists the store together with its current totem set.
func (g *Gateway) Save(ctx context.Context, s *models.Store) error {
	return datasource.Translate(g.ds.SaveStore(ctx, ToDTO(s)), resource)
}

func (g *Gateway) load(dto datasource.StoreDTO, err error) (*models.Store, error) {
	if err != nil {
		return nil, datasource.Translate(err, resource)
	}
	return FromDTO(dto)
}
