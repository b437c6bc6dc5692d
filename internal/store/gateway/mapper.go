package gateway

import (
	"cafepos/internal/datasource"
	"cafepos/internal/store/models"
	"cafepos/pkg/domain"
)

func ToDTO(s *models.Store) datasource.StoreDTO {
	totems := s.Totems()
	dto := datasource.StoreDTO{
		ID:           s.ID(),
		Name:         s.Name(),
		FantasyName:  s.FantasyName(),
		Email:        s.Email().String(),
		CNPJ:         s.CNPJ().String(),
		Phone:        s.Phone().String(),
		Salt:         s.Salt(),
		PasswordHash: s.PasswordHash(),
		CreatedAt:    s.CreatedAt(),
		Totems:       make([]datasource.TotemDTO, 0, len(totems)),
	}
	for _, t := range totems {
		dto.Totems = append(dto.Totems, datasource.TotemDTO{
			ID:          t.ID(),
			Name:        t.Name(),
			TokenAccess: t.TokenAccess(),
			StoreID:     s.ID(),
			CreatedAt:   t.CreatedAt(),
		})
	}
	return dto
}

func FromDTO(dto datasource.StoreDTO) (*models.Store, error) {
	email, err := domain.NewEmail(dto.Email)
	if err != nil {
		return nil, err
	}
	cnpj, err := domain.NewCNPJ(dto.CNPJ)
	if err != nil {
		return nil, err
	}
	phone, err := domain.NewBrazilianPhone(dto.Phone)
	if err != nil {
		return nil, err
	}
	totems := make([]*models.Totem, 0, len(dto.Totems))
	for _, t := range dto.Totems {
		totem, err := models.RestoreTotem(models.TotemProps{
			ID:          t.ID,
			Name:        t.Name,
			TokenAccess: t.TokenAccess,
			CreatedAt:   t.CreatedAt,
		})
		if err != nil {
			return nil, err
		}
		totems = append(totems, totem)
	}
	return models.RestoreStore(models.Props{
		ID:           dto.ID,
		Name:         dto.Name,
		FantasyName:  dto.FantasyName,
		Email:        email,
		CNPJ:         cnpj,
		Phone:        phone,
		Salt:         dto.Salt,
		PasswordHash: dto.PasswordHash,
		CreatedAt:    dto.CreatedAt,
		Totems:       totems,
	})
}
