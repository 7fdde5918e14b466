package erp

// Transaction is an accounting ledger entry
type Transaction struct {
	ID          int     `json:"id"`
	Date        string  `json:"date"` // YYYY-MM-DD
	Description string  `json:"description"`
	Type        string  `json:"type"` // "income" or "expense"
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"createdAt,omitempty"`
}

// Customer is a CRM customer record
type Customer struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone,omitempty"`
	Status       string  `json:"status"`
	TotalSpent   float64 `json:"totalSpent"`
	Points       int     `json:"points"`
	LastPurchase string  `json:"lastPurchase,omitempty"`
	CreatedAt    string  `json:"createdAt,omitempty"`
}

// Product is an inventory item
type Product struct {
	ID       int     `json:"id"`
	Code     string  `json:"code"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Cost     float64 `json:"cost"`
	Stock    int     `json:"stock"`
	MinStock int     `json:"minStock"`
}

// Sale is a point-of-sale record
type Sale struct {
	ID            int     `json:"id"`
	CustomerID    int     `json:"customerId"`
	CustomerName  string  `json:"customerName"`
	Date          string  `json:"date"`
	Total         float64 `json:"total"`
	Discount      float64 `json:"discount"`
	PaymentMethod string  `json:"paymentMethod"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"createdAt,omitempty"`
}

// Account is a chart-of-accounts entry
type Account struct {
	ID      int     `json:"id"`
	Code    string  `json:"code"`
	Name    string  `json:"name"`
	Type    string  `json:"type"` // asset, liability, equity, revenue, expense
	Balance float64 `json:"balance"`
}

// GeneralSettings is the company-wide configuration block
type GeneralSettings struct {
	CompanyName        string `json:"companyName"`
	NIF                string `json:"nif"`
	Currency           string `json:"currency"`
	Language           string `json:"language"`
	Timezone           string `json:"timezone"`
	DateFormat         string `json:"dateFormat"`
	EmailNotifications bool   `json:"emailNotifications"`
	TwoFactorAuth      bool   `json:"twoFactorAuth"`
	DarkMode           bool   `json:"darkMode"`
	BackupEnabled      bool   `json:"backupEnabled"`
	BackupFrequency    string `json:"backupFrequency"`
}
