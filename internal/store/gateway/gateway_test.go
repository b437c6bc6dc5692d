package gateway

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"cafepos/internal/datasource/memory"
	"cafepos/internal/platform/idgen"
	"cafepos/internal/store/models"
	"cafepos/pkg/domain"
	dErrors "cafepos/pkg/domain-errors"
)

type StoreGatewaySuite struct {
	suite.Suite
	gateway *Gateway
	ctx     context.Context
	gen     *idgen.Sequence
	now     time.Time
}

func TestStoreGatewaySuite(t *testing.T) {
	suite.Run(t, new(StoreGatewaySuite))
}

func (s *StoreGatewaySuite) SetupTest() {
	s.gateway = New(memory.New())
	s.ctx = context.Background()
	s.gen = idgen.NewSequence("st")
	s.now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
}

func (s *StoreGatewaySuite) store() *models.Store {
	st, err := models.NewStore(s.gen, models.Input{
		Name:        "Cafe Central LTDA",
		FantasyName: "Cafe Central",
		Email:       domain.MustEmail("central@example.com"),
		CNPJ:        domain.MustCNPJ("11222333000181"),
		Phone:       domain.MustBrazilianPhone("(11) 98765-4321"),
		Password:    "s3cret-pass",
	}, s.now)
	s.Require().NoError(err)
	t, err := models.NewTotem(s.gen, "Entrada", s.now)
	s.Require().NoError(err)
	s.Require().NoError(st.AddTotem(t))
	return st
}

func (s *StoreGatewaySuite) TestRoundTrip() {
	st := s.store()
	dto := ToDTO(st)
	s.Equal("5511987654321", dto.Phone)
	s.Require().Len(dto.Totems, 1)
	s.Equal(st.ID(), dto.Totems[0].StoreID)

	back, err := FromDTO(dto)
	s.Require().NoError(err)
	s.Equal(st.Props(), back.Props())
}

func (s *StoreGatewaySuite) TestMalformedDTO() {
	dto := ToDTO(s.store())
	dto.CNPJ = "11222333000100"
	_, err := FromDTO(dto)
	s.True(dErrors.HasCode(err, dErrors.CodeInvalid))

	dto = ToDTO(s.store())
	dto.Totems[0].TokenAccess = ""
	_, err = FromDTO(dto)
	s.True(dErrors.HasCode(err, dErrors.CodeInvalid))
}

func (s *StoreGatewaySuite) TestTotemTokenLookup() {
	st := s.store()
	s.Require().NoError(s.gateway.Save(s.ctx, st))

	found, err := s.gateway.FindByTotemAccessToken(s.ctx, st.Totems()[0].TokenAccess())
	s.Require().NoError(err)
	s.Equal(st.ID(), found.ID())
	s.NoError(found.VerifyPassword("s3cret-pass"))

	_, err = s.gateway.FindByTotemAccessToken(s.ctx, "unknown")
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}
