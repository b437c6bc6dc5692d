package gateway

import (
	"cafepos/internal/customer/models"
	"cafepos/internal/datasource"
	"cafepos/pkg/domain"
)

// ToDTO flattens a customer into its persisted shape.
func ToDTO(c *models.Customer) datasource.CustomerDTO {
	return datasource.CustomerDTO{
		ID:        c.ID(),
		CPF:       c.CPF().String(),
		Name:      c.Name(),
		Email:     c.Email().String(),
		CreatedAt: c.CreatedAt(),
		UpdatedAt: c.UpdatedAt(),
	}
}

// FromDTO rebuilds a customer, surfacing identifier validation errors.
func FromDTO(dto datasource.CustomerDTO) (*models.Customer, error) {
	cpf, err := domain.NewCPF(dto.CPF)
	if err != nil {
		return nil, err
	}
	email, err := domain.NewEmail(dto.Email)
	if err != nil {
		return nil, err
	}
	return models.RestoreCustomer(models.Props{
		ID:        dto.ID,
		CPF:       cpf,
		Name:      dto.Name,
		Email:     email,
		CreatedAt: dto.CreatedAt,
		UpdatedAt: dto.UpdatedAt,
	})
}
