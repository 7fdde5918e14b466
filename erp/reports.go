package erp

// DashboardData is the aggregate snapshot served to the dashboard page
type DashboardData struct {
	Financial        FinancialSummary `json:"financial"`
	CRM              CRMSummary       `json:"crm"`
	Inventory        InventorySummary `json:"inventory"`
	RecentActivities []Activity       `json:"recentActivities"`
	SystemMetrics    SystemMetrics    `json:"systemMetrics"`
}

type FinancialSummary struct {
	TotalAssets        float64 `json:"totalAssets"`
	MonthlySales       float64 `json:"monthlySales"`
	AccountsPayable    float64 `json:"accountsPayable"`
	AccountsReceivable float64 `json:"accountsReceivable"`
	NetProfit          float64 `json:"netProfit"`
	Growth             float64 `json:"growth"`
}

type CRMSummary struct {
	TotalClients int     `json:"totalClients"`
	NewClients   int     `json:"newClients"`
	VIPClients   int     `json:"vipClients"`
	ActivePoints int     `json:"activePoints"`
	SalesGrowth  float64 `json:"salesGrowth"`
}

type InventorySummary struct {
	TotalProducts int     `json:"totalProducts"`
	LowStock      int     `json:"lowStock"`
	OutOfStock    int     `json:"outOfStock"`
	StockValue    float64 `json:"stockValue"`
}

type Activity struct {
	ID          int    `json:"id"`
	Date        string `json:"date"`
	Module      string `json:"module"`
	Description string `json:"description"`
	User        string `json:"user"`
	Status      string `json:"status"`
}

type SystemMetrics struct {
	Uptime      float64 `json:"uptime"`
	ActiveUsers int     `json:"activeUsers"`
	Storage     int     `json:"storage"`
	Performance int     `json:"performance"`
}

// BalanceSheet is the balance-sheet report payload
type BalanceSheet struct {
	Assets      BalanceSection `json:"assets"`
	Liabilities BalanceSection `json:"liabilities"`
	Equity      EquitySection  `json:"equity"`
}

type BalanceSection struct {
	Current    float64 `json:"current"`
	NonCurrent float64 `json:"nonCurrent"`
	Total      float64 `json:"total"`
}

type EquitySection struct {
	Capital          float64 `json:"capital"`
	RetainedEarnings float64 `json:"retainedEarnings"`
	Total            float64 `json:"total"`
}

// IncomeStatement is the income-statement report payload
type IncomeStatement struct {
	Revenue         float64 `json:"revenue"`
	CostOfGoodsSold float64 `json:"costOfGoodsSold"`
	GrossProfit     float64 `json:"grossProfit"`
	Expenses        float64 `json:"expenses"`
	NetIncome       float64 `json:"netIncome"`
	Period          string  `json:"period"`
}

// Dashboard returns the demo dashboard snapshot
func Dashboard() DashboardData {
	return DashboardData{
		Financial: FinancialSummary{
			TotalAssets:        1250450.00,
			MonthlySales:       89540.00,
			AccountsPayable:    320150.00,
			AccountsReceivable: 450230.00,
			NetProfit:          245780.00,
			Growth:             12.5,
		},
		CRM: CRMSummary{
			TotalClients: 1247,
			NewClients:   48,
			VIPClients:   48,
			ActivePoints: 245890,
			SalesGrowth:  8.3,
		},
		Inventory: InventorySummary{
			TotalProducts: 156,
			LowStock:      12,
			OutOfStock:    3,
			StockValue:    125000.00,
		},
		RecentActivities: []Activity{
			{
				ID:          1,
				Date:        "2024-03-15T14:30:00",
				Module:      "Contabilidade",
				Description: "Lançamento de transação - Venda Produto A",
				User:        "Super Admin",
				Status:      "completed",
			},
			{
				ID:          2,
				Date:        "2024-03-15T10:15:00",
				Module:      "CRM",
				Description: "Cadastro de novo cliente - João Silva",
				User:        "Super Admin",
				Status:      "completed",
			},
		},
		SystemMetrics: SystemMetrics{
			Uptime:      99.9,
			ActiveUsers: 1,
			Storage:     75,
			Performance: 95,
		},
	}
}

// ReportBalanceSheet returns the demo balance sheet
func ReportBalanceSheet() BalanceSheet {
	return BalanceSheet{
		Assets: BalanceSection{
			Current:    450000.00,
			NonCurrent: 800450.00,
			Total:      1250450.00,
		},
		Liabilities: BalanceSection{
			Current:    320150.00,
			NonCurrent: 334170.00,
			Total:      654320.00,
		},
		Equity: EquitySection{
			Capital:          500000.00,
			RetainedEarnings: 96130.00,
			Total:            596130.00,
		},
	}
}

// ReportIncomeStatement returns the demo income statement
func ReportIncomeStatement() IncomeStatement {
	return IncomeStatement{
		Revenue:         1250000.00,
		CostOfGoodsSold: 650000.00,
		GrossProfit:     600000.00,
		Expenses:        354220.00,
		NetIncome:       245780.00,
		Period:          "2024-01-01 to 2024-03-15",
	}
}
