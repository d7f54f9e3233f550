package storerepo_test

import (
	"context"
	"testing"
	"time"

	"bestcat/internal/adapters/out/postgres/storerepo"
	"bestcat/internal/core/domain/model/kernel"
	"bestcat/internal/core/domain/model/store"
	"bestcat/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// StoreRepositoryIntegrationTestSuite provides integration tests for StoreRepository
// using PostgreSQL containers to verify database persistence behavior.
type StoreRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *storerepo.GormStoreRepository
	tracker    *MockAggregateTracker
}

func (suite *StoreRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&storerepo.StoreDTO{}, &storerepo.StoreCategoryDTO{}))
}

func (suite *StoreRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE stores, store_categories").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = storerepo.NewGormStoreRepository(suite.db, suite.tracker)
}

func (suite *StoreRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *StoreRepositoryIntegrationTestSuite) TestAdd_ValidStore_Success() {
	ctx := context.Background()

	testStore := suite.createTestStore()
	suite.tracker.On("TrackAggregate", testStore.ID(), testStore).Once()

	err := suite.repository.Add(ctx, testStore)
	suite.Require().NoError(err)

	suite.assertStoreCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *StoreRepositoryIntegrationTestSuite) TestGet_ExistingStore_ReturnsStoreWithCategories() {
	ctx := context.Background()

	id := kernel.NewUUID()
	ownerID := kernel.NewUUID()
	areaID := kernel.NewUUID()
	categories := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID()}

	originalStore, err := store.NewStore(id, ownerID, areaID, "Golden Wok", "3 Canal Road", categories)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", id, originalStore).Once()
	suite.Require().NoError(suite.repository.Add(ctx, originalStore))

	retrievedStore, err := suite.repository.Get(ctx, id)
	suite.Require().NoError(err)

	suite.Equal(id, retrievedStore.ID())
	suite.Equal(ownerID, retrievedStore.OwnerID())
	suite.Equal(areaID, retrievedStore.AreaID())
	suite.Equal("Golden Wok", retrievedStore.Name())
	suite.Equal("3 Canal Road", retrievedStore.Address())
	suite.Require().Len(retrievedStore.CategoryIDs(), 2)
	suite.False(retrievedStore.IsDeleted())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *StoreRepositoryIntegrationTestSuite) TestGet_NonExistentStore_ReturnsNotFoundError() {
	ctx := context.Background()

	retrievedStore, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrievedStore)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *StoreRepositoryIntegrationTestSuite) TestUpdate_ChangedFields_SurviveRoundTrip() {
	ctx := context.Background()

	testStore := suite.createTestStore()
	suite.tracker.On("TrackAggregate", testStore.ID(), testStore).Twice()

	suite.Require().NoError(suite.repository.Add(ctx, testStore))

	newAreaID := kernel.NewUUID()
	newCategories := []kernel.UUID{kernel.NewUUID()}
	suite.Require().NoError(testStore.Update("Silver Spoon", "9 Market Lane", newAreaID, newCategories))
	suite.Require().NoError(suite.repository.Update(ctx, testStore))

	retrievedStore, err := suite.repository.Get(ctx, testStore.ID())
	suite.Require().NoError(err)
	suite.Equal("Silver Spoon", retrievedStore.Name())
	suite.Equal("9 Market Lane", retrievedStore.Address())
	suite.Equal(newAreaID, retrievedStore.AreaID())
	suite.Require().Len(retrievedStore.CategoryIDs(), 1)

	var categoryCount int64
	suite.Require().NoError(suite.db.Model(&storerepo.StoreCategoryDTO{}).Count(&categoryCount).Error)
	suite.Equal(int64(1), categoryCount)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *StoreRepositoryIntegrationTestSuite) TestUpdate_SoftDeletedStore_StaysVisibleToGet() {
	ctx := context.Background()

	testStore := suite.createTestStore()
	suite.tracker.On("TrackAggregate", testStore.ID(), testStore).Twice()

	suite.Require().NoError(suite.repository.Add(ctx, testStore))

	deletedBy := kernel.NewUUID()
	suite.Require().NoError(testStore.Delete(deletedBy))
	suite.Require().NoError(suite.repository.Update(ctx, testStore))

	retrievedStore, err := suite.repository.Get(ctx, testStore.ID())
	suite.Require().NoError(err)
	suite.True(retrievedStore.IsDeleted())
	suite.Require().NotNil(retrievedStore.DeletedAt())
	suite.Require().NotNil(retrievedStore.DeletedBy())
	suite.Equal(deletedBy, *retrievedStore.DeletedBy())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *StoreRepositoryIntegrationTestSuite) TestUpdate_NonExistentStore_ReturnsNotFoundError() {
	ctx := context.Background()

	nonExistentStore := suite.createTestStore()

	err := suite.repository.Update(ctx, nonExistentStore)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	suite.tracker.AssertExpectations(suite.T())
}

// createTestStore creates a basic test store with default values.
func (suite *StoreRepositoryIntegrationTestSuite) createTestStore() *store.Store {
	testStore, err := store.NewStore(
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		"Golden Wok",
		"3 Canal Road",
		[]kernel.UUID{kernel.NewUUID()},
	)
	suite.Require().NoError(err)
	return testStore
}

// assertStoreCount verifies the number of stores in the database.
func (suite *StoreRepositoryIntegrationTestSuite) assertStoreCount(expected int) {
	var count int64
	err := suite.db.Model(&storerepo.StoreDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestStoreRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(StoreRepositoryIntegrationTestSuite))
}
