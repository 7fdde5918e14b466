package server

func (s *Server) initRoutes() {
	// Public routes: health, login, refresh, and the dev index
	s.RegisterRouteHandler("GET "+RouteHealth, ChainMiddleware(s.HealthHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("POST "+RouteAuthLogin, ChainMiddleware(s.LoginHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("POST "+RouteAuthRefresh, ChainMiddleware(s.RefreshHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("GET /{$}", ChainMiddleware(s.IndexHandler(), s.APIMiddleware()...))

	// Authenticated session routes
	s.RegisterRouteHandler("GET "+RouteAuthMe, ChainMiddleware(s.MeHandler(), s.ProtectedMiddleware()...))
	s.RegisterRouteHandler("POST "+RouteAuthLogout, ChainMiddleware(s.LogoutHandler(), s.ProtectedMiddleware()...))

	// Dashboard
	s.RegisterRouteHandler("GET "+RouteDashboard, ChainMiddleware(s.DashboardHandler(), s.ProtectedMiddleware()...))

	// Accounting
	s.RegisterRouteHandler("GET "+RouteAccountingTransactions, ChainMiddleware(s.ListTransactionsHandler(), s.ProtectedMiddleware()...))
	s.RegisterRouteHandler("POST "+RouteAccountingTransactions, ChainMiddleware(s.CreateTransactionHandler(), s.ProtectedMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteAccountingAccounts, ChainMiddleware(s.ListAccountsHandler(), s.ProtectedMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteReportBalanceSheet, ChainMiddleware(s.BalanceSheetHandler(), s.ProtectedMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteReportIncomeStatement, ChainMiddleware(s.IncomeStatementHandler(), s.ProtectedMiddleware()...))

	// CRM
	s.RegisterRouteHandler("GET "+RouteCRMCustomers, ChainMiddleware(s.ListCustomersHandler(), s.ProtectedMiddleware()...))
	s.RegisterRouteHandler("POST "+RouteCRMCustomers, ChainMiddleware(s.CreateCustomerHandler(), s.ProtectedMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteCRMSales, ChainMiddleware(s.ListSalesHandler(), s.ProtectedMiddleware()...))
	s.RegisterRouteHandler("POST "+RouteCRMSales, ChainMiddleware(s.CreateSaleHandler(), s.ProtectedMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteCRMProducts, ChainMiddleware(s.ListProductsHandler(), s.ProtectedMiddleware()...))

	// System
	s.RegisterRouteHandler("GET "+RouteSystemUsers, ChainMiddleware(s.ListUsersHandler(), s.ProtectedMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteSystemSettingsGeneral, ChainMiddleware(s.GetGeneralSettingsHandler(), s.ProtectedMiddleware()...))
	s.RegisterRouteHandler("PUT "+RouteSystemSettingsGeneral, ChainMiddleware(s.UpdateGeneralSettingsHandler(), s.ProtectedMiddleware()...))

	// Upload simulation
	s.RegisterRouteHandler("POST "+RouteUpload, ChainMiddleware(s.UploadHandler(), s.ProtectedMiddleware()...))

	// Placeholder module endpoints
	for _, route := range placeholderRoutes {
		s.RegisterRouteHandler("GET "+route, ChainMiddleware(s.PlaceholderGetHandler(), s.ProtectedMiddleware()...))
		s.RegisterRouteHandler("POST "+route, ChainMiddleware(s.PlaceholderPostHandler(), s.ProtectedMiddleware()...))
	}

	// Everything else is a JSON 404
	s.RegisterRouteHandler("/", ChainMiddleware(s.NotFoundHandler(), s.APIMiddleware()...))
}
