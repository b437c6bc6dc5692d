// Package memory is an in-process implementation of datasource.General used
// for local runs and service tests.
package memory

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"strings"
	"sync"

	"cafepos/internal/datasource"
	"cafepos/pkg/platform/sentinel"
)

type Store struct {
	mu         sync.RWMutex
	customers  map[string]datasource.CustomerDTO
	stores     map[string]datasource.StoreDTO
	categories map[string]datasource.CategoryDTO
	products   map[string]datasource.ProductDTO
	orders     map[string]datasource.OrderDTO
	items      map[string]datasource.OrderItemDTO
	payments   map[string]datasource.PaymentDTO
}

var _ datasource.General = (*Store)(nil)

func New() *Store {
	return &Store{
		customers:  make(map[string]datasource.CustomerDTO),
		stores:     make(map[string]datasource.StoreDTO),
		categories: make(map[string]datasource.CategoryDTO),
		products:   make(map[string]datasource.ProductDTO),
		orders:     make(map[string]datasource.OrderDTO),
		items:      make(map[string]datasource.OrderItemDTO),
		payments:   make(map[string]datasource.PaymentDTO),
	}
}

// Customers

func (s *Store) FindCustomerByID(_ context.Context, id string) (datasource.CustomerDTO, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if c, ok := s.customers[id]; ok {
		return c, nil
	}
	return datasource.CustomerDTO{}, sentinel.ErrNotFound
}

func (s *Store) FindCustomerByCPF(_ context.Context, cpf string) (datasource.CustomerDTO, error) {
	return s.findCustomer(func(c datasource.CustomerDTO) bool { return c.CPF == cpf })
}

func (s *Store) FindCustomerByEmail(_ context.Context, email string) (datasource.CustomerDTO, error) {
	return s.findCustomer(func(c datasource.CustomerDTO) bool { return c.Email == email })
}

func (s *Store) findCustomer(match func(datasource.CustomerDTO) bool) (datasource.CustomerDTO, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.customers {
		if match(c) {
			return c, nil
		}
	}
	return datasource.CustomerDTO{}, sentinel.ErrNotFound
}

func (s *Store) SaveCustomer(_ context.Context, customer datasource.CustomerDTO) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, c := range s.customers {
		if id != customer.ID && (c.CPF == customer.CPF || c.Email == customer.Email) {
			return fmt.Errorf("save customer %s: %w", customer.ID, sentinel.ErrConflict)
		}
	}
	s.customers[customer.ID] = customer
	return nil
}

func (s *Store) FindAllCustomers(_ context.Context, pagination datasource.Pagination, filters datasource.CustomerFilters) (datasource.Page[datasource.CustomerDTO], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	name := strings.ToLower(strings.TrimSpace(filters.Name))
	var matched []datasource.CustomerDTO
	for _, c := range s.customers {
		if name != "" && !strings.Contains(strings.ToLower(c.Name), name) {
			continue
		}
		if filters.Email != "" && c.Email != filters.Email {
			continue
		}
		if filters.CPF != "" && c.CPF != filters.CPF {
			continue
		}
		matched = append(matched, c)
	}
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].ID < matched[j].ID
		}
		return matched[i].CreatedAt.Before(matched[j].CreatedAt)
	})
	return paginate(matched, pagination), nil
}

// Stores

func (s *Store) FindStoreByID(_ context.Context, id string) (datasource.StoreDTO, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if st, ok := s.stores[id]; ok {
		return cloneStore(st), nil
	}
	return datasource.StoreDTO{}, sentinel.ErrNotFound
}

func (s *Store) FindStoreByEmail(_ context.Context, email string) (datasource.StoreDTO, error) {
	return s.findStore(func(st datasource.StoreDTO) bool { return st.Email == email })
}

func (s *Store) FindStoreByCNPJ(_ context.Context, cnpj string) (datasource.StoreDTO, error) {
	return s.findStore(func(st datasource.StoreDTO) bool { return st.CNPJ == cnpj })
}

func (s *Store) FindStoreByName(_ context.Context, name string) (datasource.StoreDTO, error) {
	return s.findStore(func(st datasource.StoreDTO) bool { return st.Name == name })
}

func (s *Store) FindStoreByTotemAccessToken(_ context.Context, token string) (datasource.StoreDTO, error) {
	return s.findStore(func(st datasource.StoreDTO) bool {
		return slices.ContainsFunc(st.Totems, func(t datasource.TotemDTO) bool { return t.TokenAccess == token })
	})
}

func (s *Store) findStore(match func(datasource.StoreDTO) bool) (datasource.StoreDTO, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, st := range s.stores {
		if match(st) {
			return cloneStore(st), nil
		}
	}
	return datasource.StoreDTO{}, sentinel.ErrNotFound
}

func (s *Store) SaveStore(_ context.Context, store datasource.StoreDTO) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, st := range s.stores {
		if id != store.ID && (st.Email == store.Email || st.CNPJ == store.CNPJ || st.Name == store.Name) {
			return fmt.Errorf("save store %s: %w", store.ID, sentinel.ErrConflict)
		}
	}
	s.stores[store.ID] = cloneStore(store)
	return nil
}

// Categories and products

func (s *Store) FindCategoryByID(_ context.Context, id string) (datasource.CategoryDTO, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if c, ok := s.categories[id]; ok {
		return s.withProducts(c), nil
	}
	return datasource.CategoryDTO{}, sentinel.ErrNotFound
}

func (s *Store) FindCategoryByNameAndStoreID(_ context.Context, name, storeID string) (datasource.CategoryDTO, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.categories {
		if c.Name == name && c.StoreID == storeID {
			return s.withProducts(c), nil
		}
	}
	return datasource.CategoryDTO{}, sentinel.ErrNotFound
}

func (s *Store) SaveCategory(_ context.Context, category datasource.CategoryDTO) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, p := range s.products {
		if p.CategoryID == category.ID {
			delete(s.products, id)
		}
	}
	for _, p := range category.Products {
		p.CategoryID = category.ID
		s.products[p.ID] = p
	}
	category.Products = nil
	s.categories[category.ID] = category
	return nil
}

func (s *Store) withProducts(c datasource.CategoryDTO) datasource.CategoryDTO {
	c.Products = nil
	for _, p := range s.products {
		if p.CategoryID == c.ID {
			c.Products = append(c.Products, p)
		}
	}
	sort.Slice(c.Products, func(i, j int) bool {
		if c.Products[i].CreatedAt.Equal(c.Products[j].CreatedAt) {
			return c.Products[i].ID < c.Products[j].ID
		}
		return c.Products[i].CreatedAt.Before(c.Products[j].CreatedAt)
	})
	return c
}

func (s *Store) FindProductsByID(_ context.Context, ids []string) ([]datasource.ProductDTO, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]datasource.ProductDTO, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if p, ok := s.products[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

// Orders

func (s *Store) SaveOrder(_ context.Context, order datasource.OrderDTO) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, it := range s.items {
		if it.OrderID == order.ID {
			delete(s.items, id)
		}
	}
	for _, it := range order.OrderItems {
		it.OrderID = order.ID
		s.items[it.ID] = it
	}
	order.OrderItems = nil
	s.orders[order.ID] = order
	return nil
}

func (s *Store) FindOrderByID(_ context.Context, id string) (datasource.OrderDTO, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if o, ok := s.orders[id]; ok {
		return s.withItems(o), nil
	}
	return datasource.OrderDTO{}, sentinel.ErrNotFound
}

func (s *Store) FindByOrderItemID(_ context.Context, itemID string) (datasource.OrderItemDTO, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if it, ok := s.items[itemID]; ok {
		return it, nil
	}
	return datasource.OrderItemDTO{}, sentinel.ErrNotFound
}

func (s *Store) DeleteOrder(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.orders[id]; !ok {
		return sentinel.ErrNotFound
	}
	for _, it := range s.items {
		if it.OrderID == id {
			return fmt.Errorf("delete order %s: items still reference it: %w", id, sentinel.ErrConflict)
		}
	}
	delete(s.orders, id)
	return nil
}

func (s *Store) DeleteOrderItem(_ context.Context, itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[itemID]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.items, itemID)
	return nil
}

func (s *Store) GetAllOrders(_ context.Context, query datasource.OrderQuery) (datasource.Page[datasource.OrderDTO], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var matched []datasource.OrderDTO
	for _, o := range s.orders {
		if o.StoreID != query.StoreID {
			continue
		}
		if query.Status != "" && o.Status != query.Status {
			continue
		}
		matched = append(matched, s.withItems(o))
	}
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].ID < matched[j].ID
		}
		return matched[i].CreatedAt.Before(matched[j].CreatedAt)
	})
	return paginate(matched, query.Pagination), nil
}

func (s *Store) withItems(o datasource.OrderDTO) datasource.OrderDTO {
	o.OrderItems = nil
	for _, it := range s.items {
		if it.OrderID == o.ID {
			o.OrderItems = append(o.OrderItems, it)
		}
	}
	sort.Slice(o.OrderItems, func(i, j int) bool {
		if o.OrderItems[i].CreatedAt.Equal(o.OrderItems[j].CreatedAt) {
			return o.OrderItems[i].ID < o.OrderItems[j].ID
		}
		return o.OrderItems[i].CreatedAt.Before(o.OrderItems[j].CreatedAt)
	})
	return o
}

// Payments

func (s *Store) SavePayment(_ context.Context, payment datasource.PaymentDTO) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payments[payment.ID] = payment
	return nil
}

func (s *Store) FindPaymentByID(_ context.Context, id string) (datasource.PaymentDTO, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if p, ok := s.payments[id]; ok {
		return p, nil
	}
	return datasource.PaymentDTO{}, sentinel.ErrNotFound
}

func (s *Store) FindPaymentByOrderID(_ context.Context, orderID string) (datasource.PaymentDTO, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var found *datasource.PaymentDTO
	for _, p := range s.payments {
		if p.OrderID != orderID {
			continue
		}
		if found == nil || p.CreatedAt.After(found.CreatedAt) ||
			(p.CreatedAt.Equal(found.CreatedAt) && p.ID > found.ID) {
			found = &p
		}
	}
	if found == nil {
		return datasource.PaymentDTO{}, sentinel.ErrNotFound
	}
	return *found, nil
}

func cloneStore(st datasource.StoreDTO) datasource.StoreDTO {
	st.Totems = slices.Clone(st.Totems)
	return st
}

func paginate[T any](all []T, pagination datasource.Pagination) datasource.Page[T] {
	p := pagination.Normalize()
	start := min(max(p.Offset(), 0), len(all))
	end := min(start+p.Limit, len(all))
	return datasource.Page[T]{
		Items: all[start:end],
		Total: len(all),
		Page:  p.Page,
		Limit: p.Limit,
	}
}
