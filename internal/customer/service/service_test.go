package service

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"

	"cafepos/internal/customer/gateway"
	"cafepos/internal/datasource"
	"cafepos/internal/datasource/memory"
	"cafepos/internal/platform/idgen"
	"cafepos/internal/platform/metrics"
	dErrors "cafepos/pkg/domain-errors"
	"cafepos/pkg/requestcontext"
)

type CustomerServiceSuite struct {
	suite.Suite
	service *Service
	metrics *metrics.Metrics
	logs    *bytes.Buffer
	ctx     context.Context
	now     time.Time
}

func TestCustomerServiceSuite(t *testing.T) {
	suite.Run(t, new(CustomerServiceSuite))
}

func (s *CustomerServiceSuite) SetupTest() {
	s.now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	s.ctx = requestcontext.WithRequestID(requestcontext.WithTime(context.Background(), s.now), "req-1")
	s.metrics = metrics.New(prometheus.NewRegistry())
	s.logs = &bytes.Buffer{}
	s.service = New(gateway.New(memory.New()),
		WithIDGenerator(idgen.NewSequence("cust")),
		WithMetrics(s.metrics),
		WithLogger(slog.New(slog.NewJSONHandler(s.logs, nil))),
	)
}

func (s *CustomerServiceSuite) create(name, cpf, email string) error {
	_, err := s.service.CreateCustomer(s.ctx, CreateCustomerInput{Name: name, CPF: cpf, Email: email})
	return err
}

func (s *CustomerServiceSuite) TestCreateCustomer() {
	s.Run("normalizes identifiers and records the event", func() {
		c, err := s.service.CreateCustomer(s.ctx, CreateCustomerInput{
			Name: "  Ana Souza ", CPF: "11144477735", Email: "Ana@Example.com",
		})
		s.Require().NoError(err)
		s.Equal("cust-1", c.ID())
		s.Equal("Ana Souza", c.Name())
		s.Equal("11144477735", c.CPF().String())
		s.Equal("ana@example.com", c.Email().String())
		s.Equal(s.now, c.CreatedAt())
		s.Equal(1.0, testutil.ToFloat64(s.metrics.CustomersCreated))
		s.Contains(s.logs.String(), `"request_id":"req-1"`)
		s.Contains(s.logs.String(), `"event":"customer_created"`)
	})

	s.Run("duplicate CPF is a conflict", func() {
		err := s.create("Outra Pessoa", "11144477735", "outra@example.com")
		s.True(dErrors.HasCode(err, dErrors.CodeConflict))
		s.EqualError(err, "Customer with this CPF already exists")
	})

	s.Run("duplicate email is a conflict", func() {
		err := s.create("Outra Pessoa", "52998224725", "ANA@example.com")
		s.True(dErrors.HasCode(err, dErrors.CodeConflict))
		s.EqualError(err, "Customer with this email already exists")
	})

	s.Run("invalid input", func() {
		s.True(dErrors.HasCode(s.create("Bia", "11111111111", "bia@example.com"), dErrors.CodeInvalid))
		s.True(dErrors.HasCode(s.create("Bia", "52998224725", "bia"), dErrors.CodeInvalid))
		s.True(dErrors.HasCode(s.create("Bi", "52998224725", "bia@example.com"), dErrors.CodeInvalid))
	})
}

func (s *CustomerServiceSuite) TestLookups() {
	s.Require().NoError(s.create("Ana Souza", "11144477735", "ana@example.com"))

	c, err := s.service.FindCustomerByCPF(s.ctx, " 11144477735 ")
	s.Require().NoError(err)
	s.Equal("Ana Souza", c.Name())

	c, err = s.service.FindCustomerByEmail(s.ctx, " ANA@example.com")
	s.Require().NoError(err)
	s.Equal("cust-1", c.ID())

	_, err = s.service.FindCustomerByID(s.ctx, "cust-9")
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))

	_, err = s.service.FindCustomerByCPF(s.ctx, "123")
	s.True(dErrors.HasCode(err, dErrors.CodeInvalid))
}

func (s *CustomerServiceSuite) TestListCustomers() {
	s.Require().NoError(s.create("Ana Souza", "11144477735", "ana@example.com"))
	s.Require().NoError(s.create("Bruno Lima", "52998224725", "bruno@example.com"))
	s.Require().NoError(s.create("Carla Souza", "39053344705", "carla@example.com"))

	page, err := s.service.ListCustomers(s.ctx, datasource.Pagination{Page: 1, Limit: 2}, datasource.CustomerFilters{})
	s.Require().NoError(err)
	s.Equal(3, page.Total)
	s.Len(page.Items, 2)

	page, err = s.service.ListCustomers(s.ctx, datasource.Pagination{}, datasource.CustomerFilters{Name: "souza"})
	s.Require().NoError(err)
	s.Equal(2, page.Total)
	s.Equal(datasource.DefaultLimit, page.Limit)

	page, err = s.service.ListCustomers(s.ctx, datasource.Pagination{}, datasource.CustomerFilters{CPF: "52998224725"})
	s.Require().NoError(err)
	s.Require().Len(page.Items, 1)
	s.Equal("Bruno Lima", page.Items[0].Name())

	_, err = s.service.ListCustomers(s.ctx, datasource.Pagination{}, datasource.CustomerFilters{Email: "nope"})
	s.True(dErrors.HasCode(err, dErrors.CodeInvalid))
}
