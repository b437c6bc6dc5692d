package gateway

import (
	"cafepos/internal/datasource"
	"cafepos/internal/payment/models"
)

func ToDTO(p *models.Payment) datasource.PaymentDTO {
	return datasource.PaymentDTO{
		ID:          p.ID(),
		OrderID:     p.OrderID(),
		StoreID:     p.StoreID(),
		PaymentType: string(p.PaymentType()),
		Status:      string(p.Status()),
		Total:       p.Total(),
		ExternalID:  p.ExternalID(),
		QRCode:      p.QRCode(),
		Platform:    string(p.Platform()),
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   p.UpdatedAt(),
	}
}

func FromDTO(dto datasource.PaymentDTO) (*models.Payment, error) {
	paymentType, err := models.ParseType(dto.PaymentType)
	if err != nil {
		return nil, err
	}
	platform, err := models.ParsePlatform(dto.Platform)
	if err != nil {
		return nil, err
	}
	return models.RestorePayment(models.Props{
		ID:          dto.ID,
		OrderID:     dto.OrderID,
		StoreID:     dto.StoreID,
		PaymentType: paymentType,
		Status:      models.Status(dto.Status),
		Total:       dto.Total,
		ExternalID:  dto.ExternalID,
		QRCode:      dto.QRCode,
		Platform:    platform,
		CreatedAt:   dto.CreatedAt,
		UpdatedAt:   dto.UpdatedAt,
	})
}
