package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"fooddelivery/internal/adapters/out/postgres/orderrepo"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

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

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error)

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

	testOrder := suite.newPendingOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_SameOrderTwice_ReturnsDuplicateError() {
	ctx := context.Background()

	testOrder := suite.newPendingOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().Error(err)

	var dupErr *errs.DuplicateError
	suite.Require().ErrorAs(err, &dupErr)
	suite.assertOrderCount(1)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_RoundTripsAllFields() {
	ctx := context.Background()

	original := suite.newPendingOrder()
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal(original.RestaurantID(), retrieved.RestaurantID())
	suite.Equal(original.CustomerID(), retrieved.CustomerID())
	suite.Nil(retrieved.Driver())
	suite.Equal(order.Pending, retrieved.Status())
	suite.Equal(int64(1), retrieved.Version())
	suite.True(original.Subtotal().IsEqual(retrieved.Subtotal()))
	suite.True(original.Total().IsEqual(retrieved.Total()))
	suite.Equal("applePay", retrieved.PaymentMethod())
	suite.Equal(order.OptionDelivery, retrieved.DeliveryOption())
	suite.Require().NotNil(retrieved.Address())
	suite.Equal("135 Hudson St", retrieved.Address().Street())

	items := retrieved.Items()
	suite.Require().Len(items, 2)
	suite.Equal("Pad Thai", items[0].Name())
	suite.Equal(2, items[0].Quantity())
	suite.Equal([]string{"Extra spicy", "No peanuts"}, items[0].Customizations())
	suite.Equal("Spring Rolls", items[1].Name())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_PickupOrder_HasNoAddress() {
	ctx := context.Background()

	testOrder := suite.newPickupOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Equal(order.OptionPickup, retrieved.DeliveryOption())
	suite.Nil(retrieved.Address())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_LifecycleProgression_PersistsStatusAndVersion() {
	ctx := context.Background()

	testOrder := suite.newPendingOrder()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(3)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	driverID := kernel.NewUUID()
	suite.Require().NoError(testOrder.AssignDriver(driverID, "Dana", time.Now()))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	suite.Require().NoError(testOrder.Accept(driverID, time.Now()))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.DriverAccepted, retrieved.Status())
	suite.Require().NotNil(retrieved.Driver())
	suite.Equal(driverID, *retrieved.Driver())
	suite.Equal("Dana", retrieved.DriverName())
	suite.Equal(int64(3), retrieved.Version())
	suite.NotNil(retrieved.AcceptedAt())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StaleVersion_ReturnsConcurrencyConflict() {
	ctx := context.Background()

	testOrder := suite.newPendingOrder()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Maybe()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	// Two transactions load the same pending order.
	first, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(first.AssignDriver(kernel.NewUUID(), "Dana", time.Now()))
	suite.Require().NoError(suite.repository.Update(ctx, first))

	// The second writer still holds version 1 and must lose.
	suite.Require().NoError(second.AssignDriver(kernel.NewUUID(), "Marco", time.Now()))
	err = suite.repository.Update(ctx, second)
	suite.Require().Error(err)

	var conflictErr *errs.ConcurrencyConflictError
	suite.Require().ErrorAs(err, &conflictErr)

	// The first writer's claim survived.
	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal("Dana", retrieved.DriverName())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetFirstInPendingStatus_ReturnsOldestPendingOrder() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Maybe()

	oldest := suite.newPendingOrderAt(time.Now().Add(-2 * time.Hour))
	newer := suite.newPendingOrderAt(time.Now().Add(-1 * time.Hour))
	suite.Require().NoError(suite.repository.Add(ctx, newer))
	suite.Require().NoError(suite.repository.Add(ctx, oldest))

	claimed := suite.newPendingOrderAt(time.Now().Add(-3 * time.Hour))
	suite.Require().NoError(claimed.AssignDriver(kernel.NewUUID(), "Dana", time.Now()))
	suite.Require().NoError(suite.repository.Add(ctx, claimed))

	retrieved, err := suite.repository.GetFirstInPendingStatus(ctx)
	suite.Require().NoError(err)
	suite.Equal(oldest.ID(), retrieved.ID())
	suite.Equal(order.Pending, retrieved.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetFirstInPendingStatus_NoPendingOrders_ReturnsNotFoundError() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Maybe()

	claimed := suite.newPendingOrder()
	suite.Require().NoError(claimed.AssignDriver(kernel.NewUUID(), "Dana", time.Now()))
	suite.Require().NoError(suite.repository.Add(ctx, claimed))

	retrieved, err := suite.repository.GetFirstInPendingStatus(ctx)

	suite.Nil(retrieved)
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllInPendingStatus_ReturnsOnlyPendingOldestFirst() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Maybe()

	older := suite.newPendingOrderAt(time.Now().Add(-2 * time.Hour))
	newer := suite.newPendingOrderAt(time.Now().Add(-1 * time.Hour))
	claimed := suite.newPendingOrder()
	suite.Require().NoError(claimed.AssignDriver(kernel.NewUUID(), "Dana", time.Now()))

	suite.Require().NoError(suite.repository.Add(ctx, newer))
	suite.Require().NoError(suite.repository.Add(ctx, older))
	suite.Require().NoError(suite.repository.Add(ctx, claimed))

	pending, err := suite.repository.GetAllInPendingStatus(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(pending, 2)
	suite.Equal(older.ID(), pending[0].ID())
	suite.Equal(newer.ID(), pending[1].ID())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllByCustomer_ReturnsOnlyThatCustomersOrdersNewestFirst() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Maybe()

	customerID := kernel.NewUUID()
	older := suite.newPendingOrderForCustomerAt(customerID, time.Now().Add(-2*time.Hour))
	newer := suite.newPendingOrderForCustomerAt(customerID, time.Now().Add(-1*time.Hour))
	other := suite.newPendingOrder()

	suite.Require().NoError(suite.repository.Add(ctx, older))
	suite.Require().NoError(suite.repository.Add(ctx, newer))
	suite.Require().NoError(suite.repository.Add(ctx, other))

	orders, err := suite.repository.GetAllByCustomer(ctx, customerID)
	suite.Require().NoError(err)
	suite.Require().Len(orders, 2)
	suite.Equal(newer.ID(), orders[0].ID())
	suite.Equal(older.ID(), orders[1].ID())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllByDriver_ReturnsOrdersClaimedByDriver() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Maybe()

	driverID := kernel.NewUUID()
	mine := suite.newPendingOrder()
	suite.Require().NoError(mine.AssignDriver(driverID, "Dana", time.Now()))
	unclaimed := suite.newPendingOrder()

	suite.Require().NoError(suite.repository.Add(ctx, mine))
	suite.Require().NoError(suite.repository.Add(ctx, unclaimed))

	orders, err := suite.repository.GetAllByDriver(ctx, driverID)
	suite.Require().NoError(err)
	suite.Require().Len(orders, 1)
	suite.Equal(mine.ID(), orders[0].ID())
}

// newPendingOrder creates a two-item delivery order for a fresh customer.
func (suite *OrderRepositoryIntegrationTestSuite) newPendingOrder() *order.Order {
	return suite.newPendingOrderForCustomerAt(kernel.NewUUID(), time.Now())
}

func (suite *OrderRepositoryIntegrationTestSuite) newPendingOrderAt(createdAt time.Time) *order.Order {
	return suite.newPendingOrderForCustomerAt(kernel.NewUUID(), createdAt)
}

func (suite *OrderRepositoryIntegrationTestSuite) newPendingOrderForCustomerAt(
	customerID kernel.UUID, createdAt time.Time,
) *order.Order {
	padThaiPrice, err := kernel.NewMoney(1099)
	suite.Require().NoError(err)
	rollsPrice, err := kernel.NewMoney(1329)
	suite.Require().NoError(err)

	padThai, err := order.NewLineItem(
		kernel.NewUUID(), "Pad Thai", 2, padThaiPrice, []string{"Extra spicy", "No peanuts"}, "",
	)
	suite.Require().NoError(err)
	rolls, err := order.NewLineItem(kernel.NewUUID(), "Spring Rolls", 1, rollsPrice, nil, "")
	suite.Require().NoError(err)

	address, err := order.NewAddress("135 Hudson St", "Apt 4B", "New York", "NY", "10013", "Ring twice")
	suite.Require().NoError(err)

	fee, err := kernel.NewMoney(500)
	suite.Require().NoError(err)
	tip, err := kernel.NewMoney(300)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), customerID,
		[]order.LineItem{padThai, rolls},
		fee, tip,
		order.OptionDelivery, &address,
		"applePay",
		createdAt,
	)
	suite.Require().NoError(err)
	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) newPickupOrder() *order.Order {
	price, err := kernel.NewMoney(1099)
	suite.Require().NoError(err)
	item, err := order.NewLineItem(kernel.NewUUID(), "Pad Thai", 1, price, nil, "")
	suite.Require().NoError(err)

	zero, err := kernel.NewMoney(0)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		[]order.LineItem{item},
		zero, zero,
		order.OptionPickup, nil,
		"cash",
		time.Now(),
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

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
