package datasource

// Proxy composes a persistence implementation, a payment provider and a
// notification sender into one DataSource so each can vary independently.
type Proxy struct {
	General
	PaymentProvider
	NotificationDataSource
}

var _ DataSource = (*Proxy)(nil)

func NewProxy(general General, provider PaymentProvider, notifier NotificationDataSource) *Proxy {
	return &Proxy{General: general, PaymentProvider: provider, NotificationDataSource: notifier}
}
