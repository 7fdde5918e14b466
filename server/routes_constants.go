package server

// API route paths
const (
	RouteHealth      = "/api/health"
	RouteAuthLogin   = "/api/auth/login"
	RouteAuthRefresh = "/api/auth/refresh"
	RouteAuthMe      = "/api/auth/me"
	RouteAuthLogout  = "/api/auth/logout"

	RouteDashboard = "/api/dashboard"

	RouteAccountingTransactions = "/api/accounting/transactions"
	RouteAccountingAccounts     = "/api/accounting/accounts"
	RouteReportBalanceSheet     = "/api/accounting/reports/balance-sheet"
	RouteReportIncomeStatement  = "/api/accounting/reports/income-statement"

	RouteCRMCustomers = "/api/crm/customers"
	RouteCRMSales     = "/api/crm/sales"
	RouteCRMProducts  = "/api/crm/inventory/products"

	RouteSystemUsers           = "/api/system/users"
	RouteSystemSettingsGeneral = "/api/system/settings/general"

	RouteUpload = "/api/upload"
)

// placeholderRoutes are the endpoints the demo exposes without dedicated
// handlers; they acknowledge requests with empty mock data.
var placeholderRoutes = []string{
	"/api/accounting/payable",
	"/api/accounting/receivable",
	"/api/accounting/reports/cash-flow",
	"/api/accounting/reports/trial-balance",
	"/api/accounting/reports/financial-ratios",
	"/api/accounting/import",
	"/api/crm/loyalty",
	"/api/crm/pos",
	"/api/crm/reports",
	"/api/crm/promotions",
	"/api/system/settings/company",
	"/api/system/settings/modules",
	"/api/system/settings/integrations",
	"/api/system/settings/backup",
	"/api/system/audit/logs",
	"/api/system/subscriptions",
}
