package erp_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/victorucama-create/nexasuite-erp/erp"
)

func TestTransactionFilters(t *testing.T) {
	repo := erp.NewMemoryTransactionRepo()

	require.NoError(t, repo.Create(&erp.Transaction{
		Description: "Compra de material",
		Type:        "expense",
		Amount:      300,
		Category:    "Compras",
		Date:        "2024-04-01",
	}))

	all, pagination, err := repo.List(erp.TransactionFilter{}, 1, 20)
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, 1, pagination.Pages)
	require.Equal(t, "Compra de material", all[0].Description, "create must prepend")

	income, _, err := repo.List(erp.TransactionFilter{Type: "income"}, 1, 20)
	require.NoError(t, err)
	require.Len(t, income, 1)
	require.Equal(t, "Venda Produto A", income[0].Description)

	march, _, err := repo.List(erp.TransactionFilter{StartDate: "2024-03-01", EndDate: "2024-03-31"}, 1, 20)
	require.NoError(t, err)
	require.Len(t, march, 1)
	require.Equal(t, "2024-03-15", march[0].Date)
}

func TestTransactionCreateDefaults(t *testing.T) {
	repo := erp.NewMemoryTransactionRepo()

	tx := &erp.Transaction{Description: "Ajuste", Type: "expense", Amount: 10}
	require.NoError(t, repo.Create(tx))
	require.Equal(t, 2, tx.ID)
	require.Equal(t, "completed", tx.Status)
	require.NotEmpty(t, tx.Date)
	require.NotEmpty(t, tx.CreatedAt)
}

func TestCustomerFilters(t *testing.T) {
	repo := erp.NewMemoryCustomerRepo()

	require.NoError(t, repo.Create(&erp.Customer{Name: "Maria Santos", Email: "maria@email.com"}))

	byName, _, err := repo.List(erp.CustomerFilter{Search: "joão"}, 1, 20)
	require.NoError(t, err)
	require.Len(t, byName, 1)

	byEmail, _, err := repo.List(erp.CustomerFilter{Search: "MARIA@"}, 1, 20)
	require.NoError(t, err)
	require.Len(t, byEmail, 1)
	require.Equal(t, "Maria Santos", byEmail[0].Name)

	active, _, err := repo.List(erp.CustomerFilter{Status: "active"}, 1, 20)
	require.NoError(t, err)
	require.Len(t, active, 2, "created customers start active")

	none, pagination, err := repo.List(erp.CustomerFilter{Status: "inactive"}, 1, 20)
	require.NoError(t, err)
	require.Empty(t, none)
	require.Equal(t, 0, pagination.Pages)
}

func TestCustomerPaginationScenario(t *testing.T) {
	repo := erp.NewMemoryCustomerRepo()

	// One-item collection, page=1 limit=1: the item comes back, pages == 1
	items, pagination, err := repo.List(erp.CustomerFilter{}, 1, 1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, 1, pagination.Pages)
	require.Equal(t, 1, pagination.Total)
}

func TestProductLowStockFilter(t *testing.T) {
	repo := erp.NewMemoryProductRepo()

	all, err := repo.List(false)
	require.NoError(t, err)
	require.Len(t, all, 1)

	low, err := repo.List(true)
	require.NoError(t, err)
	require.Empty(t, low, "seed product is above its minimum stock")
}

func TestSaleCreateAssignsID(t *testing.T) {
	repo := erp.NewMemorySaleRepo()

	sale := &erp.Sale{CustomerID: 1, CustomerName: "João da Silva", Total: 99.90, PaymentMethod: "card"}
	require.NoError(t, repo.Create(sale))
	require.Equal(t, 1003, sale.ID)
	require.Equal(t, "completed", sale.Status)

	sales, err := repo.List()
	require.NoError(t, err)
	require.Len(t, sales, 3)
	require.Equal(t, sale.ID, sales[0].ID)
}

func TestSettingsUpdate(t *testing.T) {
	repo := erp.NewMemorySettingsRepo()

	settings, err := repo.GetGeneral()
	require.NoError(t, err)
	require.Equal(t, "NexaSuite ERP", settings.CompanyName)
	require.Equal(t, "MZN", settings.Currency)

	settings.DarkMode = true
	settings.Language = "en"
	require.NoError(t, repo.UpdateGeneral(settings))

	updated, err := repo.GetGeneral()
	require.NoError(t, err)
	require.True(t, updated.DarkMode)
	require.Equal(t, "en", updated.Language)
}
