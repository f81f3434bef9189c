package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"parceltrack/internal/adapters/out/postgres/orderrepo"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/order"
	"parceltrack/internal/pkg/errs"

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

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for
// OrderRepository using PostgreSQL containers to verify database
// persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
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

	// Get connection string and connect to database
	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Auto-migrate the schema
	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.StatusUpdateDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error)
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE status_updates").Error)

	// Create fresh repository and tracker for each test
	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)
	// The seeded pending entry must land with the order row
	suite.assertHistoryCount(testOrder.ID(), 1)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_RoundTripsAggregate() {
	ctx := context.Background()

	originalOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", originalOrder.ID(), originalOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, originalOrder))

	retrievedOrder, err := suite.repository.Get(ctx, originalOrder.ID())
	suite.Require().NoError(err)

	suite.Equal(originalOrder.ID(), retrievedOrder.ID())
	suite.Equal(originalOrder.TrackingID(), retrievedOrder.TrackingID())
	suite.Equal(originalOrder.CustomerName(), retrievedOrder.CustomerName())
	suite.Equal(originalOrder.SenderAddress(), retrievedOrder.SenderAddress())
	suite.Equal(originalOrder.ReceiverAddress(), retrievedOrder.ReceiverAddress())
	suite.InDelta(originalOrder.WeightKg(), retrievedOrder.WeightKg(), 0.0001)
	suite.InDelta(originalOrder.Amount(), retrievedOrder.Amount(), 0.0001)
	suite.Equal(order.StatusPending, retrievedOrder.Status())
	suite.Equal(originalOrder.PaymentStatus(), retrievedOrder.PaymentStatus())
	suite.WithinDuration(originalOrder.CreatedAt(), retrievedOrder.CreatedAt(), time.Millisecond)
	suite.WithinDuration(originalOrder.EstimatedDelivery(), retrievedOrder.EstimatedDelivery(), time.Millisecond)

	history := retrievedOrder.StatusHistory()
	suite.Require().Len(history, 1)
	suite.Equal(order.StatusPending, history[0].Status())
	suite.NotEmpty(history[0].Note())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrievedOrder, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrievedOrder)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByTrackingID_ExistingOrder_ReturnsOrder() {
	ctx := context.Background()

	originalOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", originalOrder.ID(), originalOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, originalOrder))

	retrievedOrder, err := suite.repository.GetByTrackingID(ctx, originalOrder.TrackingID())
	suite.Require().NoError(err)
	suite.Equal(originalOrder.ID(), retrievedOrder.ID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByTrackingID_Unknown_ReturnsNotFoundError() {
	ctx := context.Background()

	retrievedOrder, err := suite.repository.GetByTrackingID(ctx, kernel.GenerateTrackingID())

	suite.Nil(retrievedOrder)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_AppendsHistoryWithoutRewritingExistingRows() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Times(3)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	// First transition
	firstAt := testOrder.CreatedAt().Add(24 * time.Hour)
	suite.Require().NoError(testOrder.ChangeStatus(order.StatusShipped, firstAt, "Banjul depot", ""))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))
	suite.assertHistoryCount(testOrder.ID(), 2)

	// Second transition re-sends the whole timeline; only the new entry
	// may be inserted
	secondAt := firstAt.Add(48 * time.Hour)
	suite.Require().NoError(testOrder.ChangeStatus(order.StatusDelivered, secondAt, "", "left at reception"))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))
	suite.assertHistoryCount(testOrder.ID(), 3)

	retrievedOrder, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.StatusDelivered, retrievedOrder.Status())

	history := retrievedOrder.StatusHistory()
	suite.Require().Len(history, 3)
	suite.Equal(order.StatusPending, history[0].Status())
	suite.Equal(order.StatusShipped, history[1].Status())
	suite.Equal("Banjul depot", history[1].Location())
	suite.Equal(order.StatusDelivered, history[2].Status())
	suite.Equal("left at reception", history[2].Note())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsError() {
	ctx := context.Background()

	nonExistentOrder := suite.createTestOrder()

	// No expectations on tracker since operation should fail
	err := suite.repository.Update(ctx, nonExistentOrder)
	suite.Require().Error(err)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAll_ReturnsNewestFirst() {
	ctx := context.Background()

	base := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	oldest := suite.createTestOrderAt(base)
	middle := suite.createTestOrderAt(base.Add(24 * time.Hour))
	newest := suite.createTestOrderAt(base.Add(48 * time.Hour))

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(3)
	// Insert out of order on purpose
	for _, o := range []*order.Order{middle, newest, oldest} {
		suite.Require().NoError(suite.repository.Add(ctx, o))
	}

	all, err := suite.repository.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(all, 3)

	suite.Equal(newest.ID(), all[0].ID())
	suite.Equal(middle.ID(), all[1].ID())
	suite.Equal(oldest.ID(), all[2].ID())

	for _, o := range all {
		suite.NotEmpty(o.StatusHistory())
	}

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAll_EmptyStore_ReturnsEmptySlice() {
	all, err := suite.repository.GetAll(context.Background())
	suite.Require().NoError(err)
	suite.Empty(all)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_InvalidUUID_ReturnsValidationError() {
	invalidID := kernel.UUID{}
	retrievedOrder, err := suite.repository.Get(context.Background(), invalidID)

	suite.Nil(retrievedOrder)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, kernel.ErrUUIDIsNotConstructed)
}

// TestOrderRepository_Concurrency verifies repository behavior under concurrent reads.
func (suite *OrderRepositoryIntegrationTestSuite) TestOrderRepository_Concurrency() {
	ctx := context.Background()

	initialOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", initialOrder.ID(), initialOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, initialOrder))

	results := make(chan *order.Order, 3)
	errorsCh := make(chan error, 3)

	for range 3 {
		go func() {
			retrievedOrder, readErr := suite.repository.Get(ctx, initialOrder.ID())
			if readErr != nil {
				errorsCh <- readErr
			} else {
				results <- retrievedOrder
			}
		}()
	}

	for range 3 {
		select {
		case result := <-results:
			suite.Equal(initialOrder.ID(), result.ID())
		case readErr := <-errorsCh:
			suite.Failf("Unexpected error in concurrent read", "%v", readErr)
		}
	}

	suite.tracker.AssertExpectations(suite.T())
}

// createTestOrder creates a basic test order with default values.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	return suite.createTestOrderAt(time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC))
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrderAt(createdAt time.Time) *order.Order {
	testOrder, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.GenerateTrackingID(),
		order.Details{
			CustomerName:       "Amina Diallo",
			CustomerPhone:      "+220 555 0134",
			CustomerEmail:      "amina@example.com",
			SenderAddress:      "12 Harbor Rd, Banjul",
			ReceiverAddress:    "7 Market Lane, Serekunda",
			PackageDescription: "Books, 2 boxes",
			WeightKg:           4.5,
			Amount:             25,
			PaymentMethod:      "card",
			TransactionID:      "txn_9f2c1",
		},
		createdAt,
		order.EstimateDelivery(createdAt),
	)
	suite.Require().NoError(err)
	return testOrder
}

// assertOrderCount verifies the number of orders in the database.
func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

// assertHistoryCount verifies the number of timeline rows for an order.
func (suite *OrderRepositoryIntegrationTestSuite) assertHistoryCount(id kernel.UUID, expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.StatusUpdateDTO{}).
		Where("order_id = ?", id.Bytes()).
		Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
