package gateway

import (
	"cafepos/internal/datasource"
	"cafepos/internal/order/models"
)

func ItemToDTO(item *models.OrderItem, orderID string) datasource.OrderItemDTO {
	return datasource.OrderItemDTO{
		ID:        item.ID(),
		OrderID:   orderID,
		ProductID: item.ProductID(),
		UnitPrice: item.UnitPrice(),
		Quantity:  item.Quantity(),
		Subtotal:  item.Subtotal(),
		CreatedAt: item.CreatedAt(),
	}
}

// ItemFromDTO ignores the stored subtotal; the entity recomputes it.
func ItemFromDTO(dto datasource.OrderItemDTO) (*models.OrderItem, error) {
	return models.RestoreOrderItem(models.OrderItemProps{
		ID:        dto.ID,
		ProductID: dto.ProductID,
		UnitPrice: dto.UnitPrice,
		Quantity:  dto.Quantity,
		CreatedAt: dto.CreatedAt,
	})
}

func ToDTO(o *models.Order) datasource.OrderDTO {
	items := o.Items()
	dto := datasource.OrderDTO{
		ID:         o.ID(),
		CustomerID: o.CustomerID(),
		StoreID:    o.StoreID(),
		TotemID:    o.TotemID(),
		Status:     string(o.Status()),
		TotalPrice: o.TotalPrice(),
		CreatedAt:  o.CreatedAt(),
		UpdatedAt:  o.UpdatedAt(),
		OrderItems: make([]datasource.OrderItemDTO, 0, len(items)),
	}
	for _, item := range items {
		dto.OrderItems = append(dto.OrderItems, ItemToDTO(item, o.ID()))
	}
	return dto
}

func FromDTO(dto datasource.OrderDTO) (*models.Order, error) {
	status, err := models.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	items := make([]*models.OrderItem, 0, len(dto.OrderItems))
	for _, itemDTO := range dto.OrderItems {
		item, err := ItemFromDTO(itemDTO)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return models.RestoreOrder(models.Props{
		ID:         dto.ID,
		CustomerID: dto.CustomerID,
		StoreID:    dto.StoreID,
		TotemID:    dto.TotemID,
		Status:     status,
		Items:      items,
		CreatedAt:  dto.CreatedAt,
		UpdatedAt:  dto.UpdatedAt,
	})
}
