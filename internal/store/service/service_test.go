package service

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"

	"cafepos/internal/datasource/memory"
	"cafepos/internal/platform/idgen"
	"cafepos/internal/platform/metrics"
	"cafepos/internal/store/gateway"
	"cafepos/internal/store/models"
	dErrors "cafepos/pkg/domain-errors"
	"cafepos/pkg/requestcontext"
)

type StoreServiceSuite struct {
	suite.Suite
	service *Service
	metrics *metrics.Metrics
	ctx     context.Context
}

func TestStoreServiceSuite(t *testing.T) {
	suite.Run(t, new(StoreServiceSuite))
}

func (s *StoreServiceSuite) SetupTest() {
	s.ctx = requestcontext.WithTime(context.Background(), time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))
	s.metrics = metrics.New(prometheus.NewRegistry())
	s.service = New(gateway.New(memory.New()),
		WithIDGenerator(idgen.NewSequence("st")),
		WithMetrics(s.metrics),
	)
}

func validInput() CreateStoreInput {
	return CreateStoreInput{
		Name:        "Cafe Central LTDA",
		FantasyName: "Cafe Central",
		Email:       "central@example.com",
		CNPJ:        "11222333000181",
		Phone:       "(11) 98765-4321",
		Password:    "s3cret-pass",
	}
}

func (s *StoreServiceSuite) createStore() *models.Store {
	st, err := s.service.CreateStore(s.ctx, validInput())
	s.Require().NoError(err)
	return st
}

func (s *StoreServiceSuite) TestCreateStore() {
	st := s.createStore()
	s.Equal("11222333000181", st.CNPJ().String())
	s.NoError(st.VerifyPassword("s3cret-pass"))
	s.Error(st.VerifyPassword("wrong-pass"))
	s.Equal(1.0, testutil.ToFloat64(s.metrics.StoresCreated))

	cases := map[string]struct {
		mutate  func(in *CreateStoreInput)
		code    dErrors.Code
		message string
	}{
		"duplicate email": {
			mutate:  func(in *CreateStoreInput) { in.Name = "Outra"; in.CNPJ = "11444777000161" },
			code:    dErrors.CodeConflict,
			message: "Store with this email already exists",
		},
		"duplicate CNPJ": {
			mutate:  func(in *CreateStoreInput) { in.Name = "Outra"; in.Email = "outra@example.com" },
			code:    dErrors.CodeConflict,
			message: "Store with this CNPJ already exists",
		},
		"duplicate name": {
			mutate:  func(in *CreateStoreInput) { in.Email = "outra@example.com"; in.CNPJ = "11444777000161" },
			code:    dErrors.CodeConflict,
			message: "Store with this name already exists",
		},
		"short password": {
			mutate: func(in *CreateStoreInput) {
				in.Name, in.Email, in.CNPJ, in.Password = "Outra", "outra@example.com", "11444777000161", "short"
			},
			code: dErrors.CodeInvalid,
		},
		"invalid phone": {
			mutate: func(in *CreateStoreInput) { in.Phone = "123" },
			code:   dErrors.CodeInvalid,
		},
	}
	for name, tc := range cases {
		s.Run(name, func() {
			in := validInput()
			tc.mutate(&in)
			_, err := s.service.CreateStore(s.ctx, in)
			s.True(dErrors.HasCode(err, tc.code), "got %v", err)
			if tc.message != "" {
				s.EqualError(err, tc.message)
			}
		})
	}
}

func (s *StoreServiceSuite) TestTotems() {
	st := s.createStore()

	totem, err := s.service.AddTotem(s.ctx, st.ID(), "Entrada")
	s.Require().NoError(err)
	s.Equal("token-1", totem.TokenAccess())

	found, err := s.service.FindStoreByTotemAccessToken(s.ctx, "token-1")
	s.Require().NoError(err)
	s.Equal(st.ID(), found.ID())

	_, err = s.service.AddTotem(s.ctx, st.ID(), "Entrada")
	s.True(dErrors.HasCode(err, dErrors.CodeConflict))
	s.EqualError(err, "Totem with this name already exists")

	s.Require().NoError(s.service.RemoveTotem(s.ctx, st.ID(), totem.ID()))
	_, err = s.service.FindStoreByTotemAccessToken(s.ctx, "token-1")
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))

	err = s.service.RemoveTotem(s.ctx, st.ID(), totem.ID())
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	s.EqualError(err, "Totem not found")

	_, err = s.service.AddTotem(s.ctx, "missing", "Caixa")
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))

	_, err = s.service.FindStoreByTotemAccessToken(s.ctx, " ")
	s.True(dErrors.HasCode(err, dErrors.CodeInvalid))
}
