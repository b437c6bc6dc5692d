//go:build integration

package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"cafepos/internal/datasource"
	"cafepos/internal/datasource/postgres"
	"cafepos/pkg/platform/sentinel"
	"cafepos/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *postgres.Store
	ctx      context.Context
	now      time.Time
	storeID  string
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.ctx = context.Background()
	s.postgres = containers.GetManager().GetPostgres(s.T())
	s.Require().NoError(postgres.Migrate(s.ctx, s.postgres.DB))
	s.store = postgres.New(s.postgres.DB)
}

func (s *PostgresStoreSuite) SetupTest() {
	// Truncate in dependency order
	err := s.postgres.TruncateTables(s.ctx, "payments", "order_items", "orders", "products", "categories", "totems", "stores", "customers")
	s.Require().NoError(err)

	s.now = time.Now().UTC().Truncate(time.Microsecond)
	s.storeID = uuid.NewString()
	s.Require().NoError(s.store.SaveStore(s.ctx, datasource.StoreDTO{
		ID: s.storeID, Name: "Cafe Central", FantasyName: "Central", Email: "central@example.com",
		CNPJ: "11222333000181", Phone: "5511987654321", Salt: "salt", PasswordHash: "hash", CreatedAt: s.now,
		Totems: []datasource.TotemDTO{{ID: uuid.NewString(), Name: "Entrada", TokenAccess: "tok-1", CreatedAt: s.now}},
	}))
}

func (s *PostgresStoreSuite) TestStoreLookups() {
	s.Run("totem token resolves the owning store", func() {
		st, err := s.store.FindStoreByTotemAccessToken(s.ctx, "tok-1")
		s.Require().NoError(err)
		s.Equal(s.storeID, st.ID)
		s.Require().Len(st.Totems, 1)
		s.Equal(s.storeID, st.Totems[0].StoreID)
	})

	s.Run("saving replaces the totem set", func() {
		st, err := s.store.FindStoreByID(s.ctx, s.storeID)
		s.Require().NoError(err)
		st.Totems = nil
		s.Require().NoError(s.store.SaveStore(s.ctx, st))

		_, err = s.store.FindStoreByTotemAccessToken(s.ctx, "tok-1")
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("duplicate cnpj on another store conflicts", func() {
		err := s.store.SaveStore(s.ctx, datasource.StoreDTO{
			ID: uuid.NewString(), Name: "Outra", FantasyName: "Outra", Email: "outra@example.com",
			CNPJ: "11222333000181", Phone: "5511987654321", Salt: "s", PasswordHash: "h", CreatedAt: s.now,
		})
		s.Require().ErrorIs(err, sentinel.ErrConflict)
	})
}

func (s *PostgresStoreSuite) TestCustomers() {
	for i, name := range []string{"Ana Souza", "Bruno Lima", "Ana Paula"} {
		s.Require().NoError(s.store.SaveCustomer(s.ctx, datasource.CustomerDTO{
			ID: uuid.NewString(), CPF: uuid.NewString()[:11], Name: name, Email: uuid.NewString() + "@example.com",
			CreatedAt: s.now.Add(time.Duration(i) * time.Second), UpdatedAt: s.now,
		}))
	}

	page, err := s.store.FindAllCustomers(s.ctx, datasource.Pagination{Page: 1, Limit: 10}, datasource.CustomerFilters{Name: "ana"})
	s.Require().NoError(err)
	s.Equal(2, page.Total)
	s.Require().Len(page.Items, 2)
	s.Equal("Ana Souza", page.Items[0].Name)

	_, err = s.store.FindCustomerByCPF(s.ctx, "00000000000")
	s.Require().ErrorIs(err, sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestCatalogAndOrders() {
	catID, productID := uuid.NewString(), uuid.NewString()
	s.Require().NoError(s.store.SaveCategory(s.ctx, datasource.CategoryDTO{
		ID: catID, Name: "Bebidas", StoreID: s.storeID, CreatedAt: s.now, UpdatedAt: s.now,
		Products: []datasource.ProductDTO{{
			ID: productID, Name: "Cafe", Price: 12.45, PrepTime: 3, StoreID: s.storeID, CreatedAt: s.now, UpdatedAt: s.now,
		}},
	}))

	products, err := s.store.FindProductsByID(s.ctx, []string{productID, uuid.NewString()})
	s.Require().NoError(err)
	s.Require().Len(products, 1)
	s.Equal(12.45, products[0].Price)
	s.Equal(catID, products[0].CategoryID)

	orderID, itemID := uuid.NewString(), uuid.NewString()
	s.Require().NoError(s.store.SaveOrder(s.ctx, datasource.OrderDTO{
		ID: orderID, StoreID: s.storeID, Status: "P", TotalPrice: 49.8, CreatedAt: s.now, UpdatedAt: s.now,
		OrderItems: []datasource.OrderItemDTO{{
			ID: itemID, ProductID: productID, UnitPrice: 12.45, Quantity: 4, Subtotal: 49.8, CreatedAt: s.now,
		}},
	}))

	s.Run("order round-trips with items", func() {
		o, err := s.store.FindOrderByID(s.ctx, orderID)
		s.Require().NoError(err)
		s.Equal(49.8, o.TotalPrice)
		s.Empty(o.CustomerID)
		s.Require().Len(o.OrderItems, 1)
		s.Equal(4, o.OrderItems[0].Quantity)
	})

	s.Run("payments resolve by order", func() {
		s.Require().NoError(s.store.SavePayment(s.ctx, datasource.PaymentDTO{
			ID: uuid.NewString(), OrderID: orderID, StoreID: s.storeID, PaymentType: "PIX",
			Status: "PENDING", Total: 49.8, CreatedAt: s.now, UpdatedAt: s.now,
		}))
		p, err := s.store.FindPaymentByOrderID(s.ctx, orderID)
		s.Require().NoError(err)
		s.Equal("PENDING", p.Status)
		s.Empty(p.ExternalID)
	})

	s.Run("list filters by status", func() {
		page, err := s.store.GetAllOrders(s.ctx, datasource.OrderQuery{StoreID: s.storeID, Status: "R"})
		s.Require().NoError(err)
		s.Zero(page.Total)

		page, err = s.store.GetAllOrders(s.ctx, datasource.OrderQuery{StoreID: s.storeID})
		s.Require().NoError(err)
		s.Equal(1, page.Total)
	})

	s.Run("order with items cannot be deleted", func() {
		s.Require().NoError(s.postgres.TruncateTables(s.ctx, "payments"))
		s.Require().ErrorIs(s.store.DeleteOrder(s.ctx, orderID), sentinel.ErrConflict)

		it, err := s.store.FindByOrderItemID(s.ctx, itemID)
		s.Require().NoError(err)
		s.Equal(orderID, it.OrderID)

		s.Require().NoError(s.store.DeleteOrderItem(s.ctx, itemID))
		s.Require().NoError(s.store.DeleteOrder(s.ctx, orderID))
		_, err = s.store.FindOrderByID(s.ctx, orderID)
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})
}
