package command_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/fxckxanaxx/gestorregmarketing/internal/inventory/domain"
	"github.com/fxckxanaxx/gestorregmarketing/internal/inventory/repository"
	"github.com/fxckxanaxx/gestorregmarketing/internal/inventory/usecase/command"
)

func setupRepos(t *testing.T) (*repository.GormProductRepository, *repository.GormHistoryRepository) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:cmd_"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err, "open db")

	repo := repository.NewGormProductRepository(db)
	require.NoError(t, repo.AutoMigrate(), "migrate")

	return repo, repository.NewGormHistoryRepository(db)
}

func validCreateCommand() command.CreateProductCommand {
	return command.CreateProductCommand{
		ClientName:  "Carlos Perez",
		ProductType: "Camiseta",
		Quantity:    10,
		Size:        "L",
		Color:       "Azul",
		DueDate:     time.Now().AddDate(0, 0, 7),
		Price:       5,
	}
}

func TestCreateProductDefaults(t *testing.T) {
	repo, _ := setupRepos(t)
	handler := command.NewCreateProductHandler(repo)

	product, err := handler.Handle(validCreateCommand())
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, product.Status, "missing status defaults to pending")
	assert.Equal(t, 0, product.QuantityCompleted, "new orders start with zero produced units")
	assert.NotZero(t, product.ID)
}

func TestCreateProductValidation(t *testing.T) {
	repo, _ := setupRepos(t)
	handler := command.NewCreateProductHandler(repo)

	cases := []struct {
		name   string
		mutate func(*command.CreateProductCommand)
	}{
		{"missing client name", func(c *command.CreateProductCommand) { c.ClientName = "" }},
		{"missing product type", func(c *command.CreateProductCommand) { c.ProductType = "" }},
		{"zero quantity", func(c *command.CreateProductCommand) { c.Quantity = 0 }},
		{"negative quantity", func(c *command.CreateProductCommand) { c.Quantity = -5 }},
		{"negative price", func(c *command.CreateProductCommand) { c.Price = -1 }},
		{"missing due date", func(c *command.CreateProductCommand) { c.DueDate = time.Time{} }},
		{"completed status on creation", func(c *command.CreateProductCommand) { c.Status = domain.StatusCompleted }},
		{"unknown status", func(c *command.CreateProductCommand) { c.Status = "urgent" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd := validCreateCommand()
			tc.mutate(&cmd)
			_, err := handler.Handle(cmd)
			assert.Error(t, err)
		})
	}
}

func TestUpdateProductRejectsQuantityBelowProgress(t *testing.T) {
	repo, _ := setupRepos(t)
	createHandler := command.NewCreateProductHandler(repo)
	progressHandler := command.NewAddProgressHandler(repo)
	updateHandler := command.NewUpdateProductHandler(repo)

	product, err := createHandler.Handle(validCreateCommand())
	require.NoError(t, err)

	_, err = progressHandler.Handle(context.Background(), command.AddProgressCommand{
		ProductID: product.ID,
		Delta:     6,
	})
	require.NoError(t, err)

	_, err = updateHandler.Handle(command.UpdateProductCommand{
		ID:          product.ID,
		ClientName:  product.ClientName,
		ProductType: product.ProductType,
		Quantity:    5,
		Status:      domain.StatusPending,
		DueDate:     product.DueDate,
		Price:       product.Price,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already completed")
}

func TestUpdateProductPersistsChanges(t *testing.T) {
	repo, _ := setupRepos(t)
	createHandler := command.NewCreateProductHandler(repo)
	updateHandler := command.NewUpdateProductHandler(repo)

	product, err := createHandler.Handle(validCreateCommand())
	require.NoError(t, err)

	updated, err := updateHandler.Handle(command.UpdateProductCommand{
		ID:          product.ID,
		ClientName:  "Ana Torres",
		ProductType: "Buzo",
		Quantity:    12,
		Status:      domain.StatusPriority,
		DueDate:     product.DueDate,
		Price:       8.5,
	})
	require.NoError(t, err)
	assert.Equal(t, "Ana Torres", updated.ClientName)
	assert.Equal(t, domain.StatusPriority, updated.Status)

	found, err := repo.FindByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 12, found.Quantity)
	assert.InDelta(t, 8.5, found.Price, 0.001)
}

func TestAddProgressRejectsBeforeStore(t *testing.T) {
	repo, _ := setupRepos(t)
	createHandler := command.NewCreateProductHandler(repo)
	progressHandler := command.NewAddProgressHandler(repo)
	ctx := context.Background()

	product, err := createHandler.Handle(validCreateCommand())
	require.NoError(t, err)

	_, err = progressHandler.Handle(ctx, command.AddProgressCommand{ProductID: product.ID, Delta: 0})
	assert.Error(t, err, "zero delta rejected")

	_, err = progressHandler.Handle(ctx, command.AddProgressCommand{ProductID: product.ID, Delta: -3})
	assert.Error(t, err, "negative delta rejected")

	_, err = progressHandler.Handle(ctx, command.AddProgressCommand{ProductID: product.ID, Delta: 11})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "10 units remaining")

	found, err := repo.FindByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, found.QuantityCompleted, "rejected commands leave the order untouched")
}

func TestAddProgressReportsCompletion(t *testing.T) {
	repo, _ := setupRepos(t)
	createHandler := command.NewCreateProductHandler(repo)
	progressHandler := command.NewAddProgressHandler(repo)
	ctx := context.Background()

	product, err := createHandler.Handle(validCreateCommand())
	require.NoError(t, err)

	result, err := progressHandler.Handle(ctx, command.AddProgressCommand{ProductID: product.ID, Delta: 4, Notes: "cutting done"})
	require.NoError(t, err)
	assert.False(t, result.NowComplete)

	result, err = progressHandler.Handle(ctx, command.AddProgressCommand{ProductID: product.ID, Delta: 6})
	require.NoError(t, err)
	assert.True(t, result.NowComplete)
	assert.Equal(t, domain.StatusCompleted, result.Product.Status)

	found, err := repo.FindByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, found.Status, "completion is not an archival, the order stays live")
}

func TestCompleteProductArchivesRemainingUnits(t *testing.T) {
	repo, histRepo := setupRepos(t)
	createHandler := command.NewCreateProductHandler(repo)
	progressHandler := command.NewAddProgressHandler(repo)
	completeHandler := command.NewCompleteProductHandler(repo)
	ctx := context.Background()

	product, err := createHandler.Handle(validCreateCommand())
	require.NoError(t, err)

	_, err = progressHandler.Handle(ctx, command.AddProgressCommand{ProductID: product.ID, Delta: 4})
	require.NoError(t, err)

	sale, err := completeHandler.Handle(ctx, command.CompleteProductCommand{ProductID: product.ID})
	require.NoError(t, err)
	assert.Equal(t, domain.ActionCompleted, sale.Action)
	assert.Equal(t, 10, sale.QuantityCompleted)
	assert.InDelta(t, 50.0, sale.TotalValue, 0.001)
	assert.NotNil(t, sale.CompletedDate)

	_, err = repo.FindByID(product.ID)
	assert.Error(t, err, "completed order left the live set")

	count, err := histRepo.Count()
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestDeleteProductArchivesWithDeletedAction(t *testing.T) {
	repo, histRepo := setupRepos(t)
	createHandler := command.NewCreateProductHandler(repo)
	progressHandler := command.NewAddProgressHandler(repo)
	deleteHandler := command.NewDeleteProductHandler(repo)
	ctx := context.Background()

	product, err := createHandler.Handle(validCreateCommand())
	require.NoError(t, err)

	_, err = progressHandler.Handle(ctx, command.AddProgressCommand{ProductID: product.ID, Delta: 3})
	require.NoError(t, err)

	sale, err := deleteHandler.Handle(ctx, command.DeleteProductCommand{ProductID: product.ID})
	require.NoError(t, err)
	assert.Equal(t, domain.ActionDeleted, sale.Action)
	assert.Equal(t, 3, sale.QuantityCompleted, "partial progress is preserved in the snapshot")
	assert.InDelta(t, 15.0, sale.TotalValue, 0.001)
	assert.Nil(t, sale.CompletedDate)

	sales, err := histRepo.FindRecent(10)
	require.NoError(t, err)
	require.Len(t, sales, 1, "one archival, one history row")
}

func TestArchiveProductValidatesAction(t *testing.T) {
	repo, _ := setupRepos(t)
	createHandler := command.NewCreateProductHandler(repo)
	archiveHandler := command.NewArchiveProductHandler(repo)
	ctx := context.Background()

	product, err := createHandler.Handle(validCreateCommand())
	require.NoError(t, err)

	_, err = archiveHandler.Handle(ctx, command.ArchiveProductCommand{ProductID: product.ID, Action: "misplaced"})
	assert.Error(t, err)

	_, err = archiveHandler.Handle(ctx, command.ArchiveProductCommand{ProductID: product.ID, Action: domain.ActionDeleted})
	assert.NoError(t, err)
}

func TestClearHistoryReportsRemovedCount(t *testing.T) {
	repo, histRepo := setupRepos(t)
	createHandler := command.NewCreateProductHandler(repo)
	deleteHandler := command.NewDeleteProductHandler(repo)
	clearHandler := command.NewClearHistoryHandler(histRepo)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		product, err := createHandler.Handle(validCreateCommand())
		require.NoError(t, err)
		_, err = deleteHandler.Handle(ctx, command.DeleteProductCommand{ProductID: product.ID})
		require.NoError(t, err)
	}

	count, err := clearHandler.Handle(command.ClearHistoryCommand{})
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)

	remaining, err := histRepo.Count()
	require.NoError(t, err)
	assert.EqualValues(t, 0, remaining)
}
