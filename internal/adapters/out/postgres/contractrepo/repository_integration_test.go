package contractrepo_test

import (
	"context"
	"testing"
	"time"

	"kitchenops/internal/adapters/out/postgres/contractrepo"
	"kitchenops/internal/core/domain/model/contract"
	"kitchenops/internal/core/domain/model/kernel"
	"kitchenops/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, any) {}

// ContractRepositoryIntegrationTestSuite tests the GORM contract repository
// against a real PostgreSQL database, including the optimistic version check.
type ContractRepositoryIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *contractrepo.GormContractRepository
}

func (suite *ContractRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&contractrepo.ContractDTO{}, &contractrepo.ProductionItemDTO{})
	suite.Require().NoError(err)

	suite.repo = contractrepo.NewGormContractRepository(db, noopTracker{})
}

func (suite *ContractRepositoryIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE production_contracts, production_items").Error
	suite.Require().NoError(err)
}

func (suite *ContractRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *ContractRepositoryIntegrationTestSuite) newContract(tenantID kernel.UUID) *contract.ProductionContract {
	recipeID := kernel.NewUUID()
	item, err := contract.NewProductionItem(kernel.NewUUID(), kernel.NewUUID(), &recipeID,
		"Smash Burger", 2, []string{"no onions"}, []string{"gluten", "dairy"}, 10)
	suite.Require().NoError(err)

	productionContract, err := contract.NewProductionContract(
		kernel.NewUUID(), kernel.NewUUID(), tenantID,
		[]contract.ProductionItem{item},
		contract.PriorityHigh,
		"ring bell twice",
		[]string{"gluten", "dairy"},
		time.Now().UTC().Add(20*time.Minute),
	)
	suite.Require().NoError(err)
	return productionContract
}

func (suite *ContractRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	tenantID := kernel.NewUUID()
	productionContract := suite.newContract(tenantID)

	suite.Require().NoError(suite.repo.Add(ctx, productionContract))

	stored, err := suite.repo.Get(ctx, tenantID, productionContract.ID())
	suite.Require().NoError(err)
	suite.True(stored.IsEqual(productionContract))
	suite.Equal(contract.StatusPending, stored.Status())
	suite.Equal(contract.PriorityHigh, stored.Priority())
	suite.Equal([]string{"gluten", "dairy"}, stored.AllergenAlerts())
	suite.Equal("ring bell twice", stored.SpecialInstructions())
	suite.Equal(int64(1), stored.Version())

	suite.Require().Len(stored.Items(), 1)
	item := stored.Items()[0]
	suite.Equal("Smash Burger", item.Name())
	suite.Equal(2, item.Quantity())
	suite.Equal(20, item.TotalMinutes())
	suite.NotNil(item.RecipeID())
}

func (suite *ContractRepositoryIntegrationTestSuite) TestUpdate_BumpsVersion() {
	ctx := context.Background()
	tenantID := kernel.NewUUID()
	productionContract := suite.newContract(tenantID)
	suite.Require().NoError(suite.repo.Add(ctx, productionContract))

	suite.Require().NoError(productionContract.Assign(kernel.NewUUID()))
	suite.Require().NoError(suite.repo.Update(ctx, productionContract))

	stored, err := suite.repo.Get(ctx, tenantID, productionContract.ID())
	suite.Require().NoError(err)
	suite.Equal(contract.StatusAssigned, stored.Status())
	suite.Equal(int64(2), stored.Version())
	suite.NotNil(stored.StationID())
}

func (suite *ContractRepositoryIntegrationTestSuite) TestUpdate_StaleVersionRejected() {
	ctx := context.Background()
	tenantID := kernel.NewUUID()
	productionContract := suite.newContract(tenantID)
	suite.Require().NoError(suite.repo.Add(ctx, productionContract))

	stale, err := suite.repo.Get(ctx, tenantID, productionContract.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(productionContract.Assign(kernel.NewUUID()))
	suite.Require().NoError(suite.repo.Update(ctx, productionContract))

	suite.Require().NoError(stale.Assign(kernel.NewUUID()))
	err = suite.repo.Update(ctx, stale)
	suite.Require().ErrorIs(err, errs.ErrVersionIsInvalid)
}

func (suite *ContractRepositoryIntegrationTestSuite) TestGetByOrderID() {
	ctx := context.Background()
	tenantID := kernel.NewUUID()
	productionContract := suite.newContract(tenantID)
	suite.Require().NoError(suite.repo.Add(ctx, productionContract))

	stored, err := suite.repo.GetByOrderID(ctx, tenantID, productionContract.OrderID())
	suite.Require().NoError(err)
	suite.True(stored.IsEqual(productionContract))

	_, err = suite.repo.GetByOrderID(ctx, tenantID, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestContractRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	suite.Run(t, new(ContractRepositoryIntegrationTestSuite))
}
