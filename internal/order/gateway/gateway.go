package gateway

import (
	"context"

	"cafepos/internal/datasource"
	"cafepos/internal/order/models"
)

const (
	resource     = "Order"
	itemResource = "Order item"
)

type Gateway struct {
	ds datasource.OrderDataSource
}

func New(ds datasource.OrderDataSource) *Gateway {
	return &Gateway{ds: ds}
}

// Save upserts the order and replaces its stored item set.
func (g *Gateway) Save(ctx context.Context, o *models.Order) error {
	return datasource.Translate(g.ds.SaveOrder(ctx, ToDTO(o)), resource)
}

func (g *Gateway) FindByID(ctx context.Context, id string) (*models.Order, error) {
	dto, err := g.ds.FindOrderByID(ctx, id)
	if err != nil {
		return nil, datasource.Translate(err, resource)
	}
	return FromDTO(dto)
}

// FindItemByID returns the item and the id of the order that owns it.
func (g *Gateway) FindItemByID(ctx context.Context, itemID string) (*models.OrderItem, string, error) {
	dto, err := g.ds.FindByOrderItemID(ctx, itemID)
	if err != nil {
		return nil, "", datasource.Translate(err, itemResource)
	}
	item, err := ItemFromDTO(dto)
	if err != nil {
		return nil, "", err
	}
	return item, dto.OrderID, nil
}

func (g *Gateway) DeleteItem(ctx context.Context, itemID string) error {
	return datasource.Translate(g.ds.DeleteOrderItem(ctx, itemID), itemResource)
}

// Delete removes the order row. Items must already be gone.
func (g *Gateway) Delete(ctx context.Context, id string) error {
	return datasource.Translate(g.ds.DeleteOrder(ctx, id), resource)
}

func (g *Gateway) FindAll(ctx context.Context, query datasource.OrderQuery) (datasource.Page[*models.Order], error) {
	page, err := g.ds.GetAllOrders(ctx, query)
	if err != nil {
		return datasource.Page[*models.Order]{}, datasource.Translate(err, resource)
	}
	out := datasource.Page[*models.Order]{Total: page.Total, Page: page.Page, Limit: page.Limit}
	for _, dto := range page.Items {
		o, err := FromDTO(dto)
		if err != nil {
			return datasource.Page[*models.Order]{}, err
		}
		out.Items = append(out.Items, o)
	}
	return out, nil
}
