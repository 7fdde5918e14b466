package erp

// TransactionFilter narrows a transaction listing
type TransactionFilter struct {
	Type      string // "income" or "expense"; empty means all
	StartDate string // inclusive YYYY-MM-DD bound; applied only with EndDate
	EndDate   string
}

type TransactionRepo interface {
	List(filter TransactionFilter, page, limit int) ([]Transaction, Pagination, error)
	Create(tx *Transaction) error
}

// CustomerFilter narrows a customer listing
type CustomerFilter struct {
	Status string
	Search string // case-insensitive match against name or email
}

type CustomerRepo interface {
	List(filter CustomerFilter, page, limit int) ([]Customer, Pagination, error)
	Create(customer *Customer) error
}

type ProductRepo interface {
	List(lowStockOnly bool) ([]Product, error)
}

type SaleRepo interface {
	List() ([]Sale, error)
	Create(sale *Sale) error
}

type AccountRepo interface {
	List() ([]Account, error)
}

type SettingsRepo interface {
	GetGeneral() (GeneralSettings, error)
	UpdateGeneral(settings GeneralSettings) error
}

// Repos bundles every data dependency of the API surface
type Repos struct {
	Transactions TransactionRepo
	Customers    CustomerRepo
	Products     ProductRepo
	Sales        SaleRepo
	Accounts     AccountRepo
	Settings     SettingsRepo
}
