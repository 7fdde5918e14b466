package erp

import (
	"strings"
	"sync"
	"time"
)

// MemoryTransactionRepo is the in-memory transaction store backing the demo
type MemoryTransactionRepo struct {
	transactions []Transaction
	now          func() time.Time
	lock         sync.RWMutex
}

var _ TransactionRepo = (*MemoryTransactionRepo)(nil)

func NewMemoryTransactionRepo() *MemoryTransactionRepo {
	return &MemoryTransactionRepo{
		transactions: []Transaction{
			{
				ID:          1,
				Date:        "2024-03-15",
				Description: "Venda Produto A",
				Type:        "income",
				Amount:      2500.50,
				Category:    "Vendas",
				Status:      "completed",
			},
		},
		now: time.Now,
	}
}

func (r *MemoryTransactionRepo) List(filter TransactionFilter, page, limit int) ([]Transaction, Pagination, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	filtered := make([]Transaction, 0, len(r.transactions))
	for _, tx := range r.transactions {
		if filter.Type != "" && tx.Type != filter.Type {
			continue
		}
		if filter.StartDate != "" && filter.EndDate != "" {
			if tx.Date < filter.StartDate || tx.Date > filter.EndDate {
				continue
			}
		}
		filtered = append(filtered, tx)
	}

	items, pagination := paginate(filtered, page, limit)
	return items, pagination, nil
}

func (r *MemoryTransactionRepo) Create(tx *Transaction) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	now := r.now()
	tx.ID = len(r.transactions) + 1
	if tx.Date == "" {
		tx.Date = now.Format("2006-01-02")
	}
	tx.Status = "completed"
	tx.CreatedAt = now.Format(time.RFC3339)

	// Newest first
	r.transactions = append([]Transaction{*tx}, r.transactions...)
	return nil
}

// MemoryCustomerRepo is the in-memory customer store backing the demo
type MemoryCustomerRepo struct {
	customers []Customer
	now       func() time.Time
	lock      sync.RWMutex
}

var _ CustomerRepo = (*MemoryCustomerRepo)(nil)

func NewMemoryCustomerRepo() *MemoryCustomerRepo {
	return &MemoryCustomerRepo{
		customers: []Customer{
			{
				ID:           1,
				Name:         "João da Silva",
				Email:        "joao@email.com",
				Phone:        "(11) 98765-4321",
				Status:       "active",
				TotalSpent:   4850.00,
				Points:       1245,
				LastPurchase: "2024-03-15",
			},
		},
		now: time.Now,
	}
}

func (r *MemoryCustomerRepo) List(filter CustomerFilter, page, limit int) ([]Customer, Pagination, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	search := strings.ToLower(filter.Search)

	filtered := make([]Customer, 0, len(r.customers))
	for _, c := range r.customers {
		if filter.Status != "" && c.Status != filter.Status {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(c.Name), search) &&
			!strings.Contains(strings.ToLower(c.Email), search) {
			continue
		}
		filtered = append(filtered, c)
	}

	items, pagination := paginate(filtered, page, limit)
	return items, pagination, nil
}

func (r *MemoryCustomerRepo) Create(customer *Customer) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	customer.ID = len(r.customers) + 1
	customer.TotalSpent = 0
	customer.Points = 0
	customer.Status = "active"
	customer.CreatedAt = r.now().Format(time.RFC3339)

	r.customers = append([]Customer{*customer}, r.customers...)
	return nil
}

// MemoryProductRepo is the in-memory product catalogue backing the demo
type MemoryProductRepo struct {
	products []Product
	lock     sync.RWMutex
}

var _ ProductRepo = (*MemoryProductRepo)(nil)

func NewMemoryProductRepo() *MemoryProductRepo {
	return &MemoryProductRepo{
		products: []Product{
			{
				ID:       1,
				Code:     "PROD001",
				Name:     "Produto A",
				Category: "Eletrônicos",
				Price:    125.00,
				Cost:     85.00,
				Stock:    150,
				MinStock: 20,
			},
		},
	}
}

func (r *MemoryProductRepo) List(lowStockOnly bool) ([]Product, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	products := make([]Product, 0, len(r.products))
	for _, p := range r.products {
		if lowStockOnly && p.Stock > p.MinStock {
			continue
		}
		products = append(products, p)
	}
	return products, nil
}

// MemorySaleRepo is the in-memory sales store backing the demo
type MemorySaleRepo struct {
	sales []Sale
	now   func() time.Time
	lock  sync.RWMutex
}

var _ SaleRepo = (*MemorySaleRepo)(nil)

func NewMemorySaleRepo() *MemorySaleRepo {
	return &MemorySaleRepo{
		sales: []Sale{
			{
				ID:            1001,
				CustomerID:    1,
				CustomerName:  "João da Silva",
				Date:          "2024-03-15",
				Total:         250.00,
				Discount:      10.00,
				PaymentMethod: "card",
				Status:        "completed",
			},
			{
				ID:            1002,
				CustomerID:    2,
				CustomerName:  "Maria Santos",
				Date:          "2024-03-14",
				Total:         850.00,
				Discount:      50.00,
				PaymentMethod: "cash",
				Status:        "completed",
			},
		},
		now: time.Now,
	}
}

func (r *MemorySaleRepo) List() ([]Sale, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	sales := make([]Sale, len(r.sales))
	copy(sales, r.sales)
	return sales, nil
}

func (r *MemorySaleRepo) Create(sale *Sale) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	now := r.now()
	sale.ID = 1000 + len(r.sales) + 1
	sale.Date = now.Format("2006-01-02")
	sale.Status = "completed"
	sale.CreatedAt = now.Format(time.RFC3339)

	r.sales = append([]Sale{*sale}, r.sales...)
	return nil
}

// MemoryAccountRepo serves the demo chart of accounts
type MemoryAccountRepo struct {
	accounts []Account
}

var _ AccountRepo = (*MemoryAccountRepo)(nil)

func NewMemoryAccountRepo() *MemoryAccountRepo {
	return &MemoryAccountRepo{
		accounts: []Account{
			{ID: 1, Code: "1", Name: "Ativo", Type: "asset", Balance: 1250450.00},
			{ID: 2, Code: "1.1", Name: "Ativo Circulante", Type: "asset", Balance: 450000.00},
			{ID: 3, Code: "2", Name: "Passivo", Type: "liability", Balance: 654320.00},
			{ID: 4, Code: "3", Name: "Patrimônio Líquido", Type: "equity", Balance: 596130.00},
			{ID: 5, Code: "4", Name: "Receitas", Type: "revenue", Balance: 1250000.00},
			{ID: 6, Code: "5", Name: "Despesas", Type: "expense", Balance: 1004220.00},
		},
	}
}

func (r *MemoryAccountRepo) List() ([]Account, error) {
	accounts := make([]Account, len(r.accounts))
	copy(accounts, r.accounts)
	return accounts, nil
}

// MemorySettingsRepo holds the mutable general settings block
type MemorySettingsRepo struct {
	general GeneralSettings
	lock    sync.RWMutex
}

var _ SettingsRepo = (*MemorySettingsRepo)(nil)

func NewMemorySettingsRepo() *MemorySettingsRepo {
	return &MemorySettingsRepo{
		general: GeneralSettings{
			CompanyName:        "NexaSuite ERP",
			NIF:                "123456789",
			Currency:           "MZN",
			Language:           "pt",
			Timezone:           "Africa/Maputo",
			DateFormat:         "DD/MM/YYYY",
			EmailNotifications: true,
			BackupEnabled:      true,
			BackupFrequency:    "daily",
		},
	}
}

func (r *MemorySettingsRepo) GetGeneral() (GeneralSettings, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()
	return r.general, nil
}

func (r *MemorySettingsRepo) UpdateGeneral(settings GeneralSettings) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.general = settings
	return nil
}

// NewMemoryRepos wires the full in-memory repo set with the demo seed data
func NewMemoryRepos() Repos {
	return Repos{
		Transactions: NewMemoryTransactionRepo(),
		Customers:    NewMemoryCustomerRepo(),
		Products:     NewMemoryProductRepo(),
		Sales:        NewMemorySaleRepo(),
		Accounts:     NewMemoryAccountRepo(),
		Settings:     NewMemorySettingsRepo(),
	}
}
