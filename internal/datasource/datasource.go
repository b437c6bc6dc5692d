// Package datasource defines the persistence and external-provider contract
// consumed by gateways. Implementations return sentinel.ErrNotFound on lookup
// misses and wrapped raw errors for infrastructure failures.
package datasource

import "context"

type CustomerDataSource interface {
	FindCustomerByID(ctx context.Context, id string) (CustomerDTO, error)
	FindCustomerByCPF(ctx context.Context, cpf string) (CustomerDTO, error)
	FindCustomerByEmail(ctx context.Context, email string) (CustomerDTO, error)
	SaveCustomer(ctx context.Context, customer CustomerDTO) error
	FindAllCustomers(ctx context.Context, pagination Pagination, filters CustomerFilters) (Page[CustomerDTO], error)
}

type StoreDataSource interface {
	FindStoreByID(ctx context.Context, id string) (StoreDTO, error)
	FindStoreByEmail(ctx context.Context, email string) (StoreDTO, error)
	FindStoreByCNPJ(ctx context.Context, cnpj string) (StoreDTO, error)
	FindStoreByName(ctx context.Context, name string) (StoreDTO, error)
	FindStoreByTotemAccessToken(ctx context.Context, token string) (StoreDTO, error)
	// SaveStore upserts the store and replaces its totem set.
	SaveStore(ctx context.Context, store StoreDTO) error
}

type CategoryDataSource interface {
	FindCategoryByID(ctx context.Context, id string) (CategoryDTO, error)
	FindCategoryByNameAndStoreID(ctx context.Context, name, storeID string) (CategoryDTO, error)
	// SaveCategory upserts the category and replaces its product set.
	SaveCategory(ctx context.Context, category CategoryDTO) error
}

type ProductDataSource interface {
	// FindProductsByID returns the products found; missing ids are skipped.
	FindProductsByID(ctx context.Context, ids []string) ([]ProductDTO, error)
}

type OrderDataSource interface {
	// SaveOrder upserts the order and replaces its item set.
	SaveOrder(ctx context.Context, order OrderDTO) error
	FindOrderByID(ctx context.Context, id string) (OrderDTO, error)
	FindByOrderItemID(ctx context.Context, itemID string) (OrderItemDTO, error)
	// DeleteOrder fails with sentinel.ErrConflict while items still reference the order.
	DeleteOrder(ctx context.Context, id string) error
	DeleteOrderItem(ctx context.Context, itemID string) error
	GetAllOrders(ctx context.Context, query OrderQuery) (Page[OrderDTO], error)
}

type PaymentDataSource interface {
	SavePayment(ctx context.Context, payment PaymentDTO) error
	FindPaymentByID(ctx context.Context, id string) (PaymentDTO, error)
	// FindPaymentByOrderID returns the most recently created payment for the order.
	FindPaymentByOrderID(ctx context.Context, orderID string) (PaymentDTO, error)
}

// PaymentProvider registers a payment with an external processor.
type PaymentProvider interface {
	CreatePaymentExternal(ctx context.Context, payment CreatePaymentExternalDTO) (CreatePaymentExternalResultDTO, error)
}

// NotificationDataSource delivers messages over a concrete channel.
type NotificationDataSource interface {
	SendSMSNotification(ctx context.Context, destination, message string) error
	SendWhatsappNotification(ctx context.Context, destination, message string) error
	SendEmailNotification(ctx context.Context, destination, message string) error
	SendMonitorNotification(ctx context.Context, destination, message string) error
}

// General is the persistence side of the contract.
type General interface {
	CustomerDataSource
	StoreDataSource
	CategoryDataSource
	ProductDataSource
	OrderDataSource
	PaymentDataSource
}

// DataSource is the full façade gateways depend on.
type DataSource interface {
	General
	PaymentProvider
	NotificationDataSource
}
