package commands_test

import (
	"context"
	"testing"
	"time"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/chat"
	"fooddelivery/internal/core/domain/model/driver"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/rating"
	"fooddelivery/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetFirstInPendingStatus(ctx context.Context) (*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllInPendingStatus(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllByRestaurant(ctx context.Context, restaurantID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllByDriver(ctx context.Context, driverID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, driverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockDriverRepository struct{ mock.Mock }

func (m *MockDriverRepository) Add(ctx context.Context, d *driver.Driver) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDriverRepository) Update(ctx context.Context, d *driver.Driver) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDriverRepository) Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*driver.Driver), args.Error(1)
}

func (m *MockDriverRepository) GetAllFree(ctx context.Context) ([]*driver.Driver, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*driver.Driver), args.Error(1)
}

type MockRatingRepository struct{ mock.Mock }

func (m *MockRatingRepository) Add(ctx context.Context, r *rating.Rating) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRatingRepository) GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*rating.Rating, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*rating.Rating), args.Error(1)
}

type MockChatRepository struct{ mock.Mock }

func (m *MockChatRepository) Add(ctx context.Context, msg *chat.Message) (bool, error) {
	args := m.Called(ctx, msg)
	return args.Bool(0), args.Error(1)
}

func (m *MockChatRepository) GetAllByThread(ctx context.Context, threadID chat.ThreadID) ([]*chat.Message, error) {
	args := m.Called(ctx, threadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*chat.Message), args.Error(1)
}

func (m *MockChatRepository) MarkThreadRead(ctx context.Context, threadID chat.ThreadID, readerID kernel.UUID) error {
	args := m.Called(ctx, threadID, readerID)
	return args.Error(0)
}

// MockUoW satisfies every unit-of-work flavor the handlers use.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) DriverRepository() ports.DriverRepository {
	args := m.Called()
	return args.Get(0).(ports.DriverRepository)
}

func (m *MockUoW) RatingRepository() ports.RatingRepository {
	args := m.Called()
	return args.Get(0).(ports.RatingRepository)
}

func (m *MockUoW) ChatRepository() ports.ChatRepository {
	args := m.Called()
	return args.Get(0).(ports.ChatRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockRatingUoWFactory struct{ mock.Mock }

func (m *MockRatingUoWFactory) Create() commands.RatingUoW {
	args := m.Called()
	return args.Get(0).(commands.RatingUoW)
}

type MockChatUoWFactory struct{ mock.Mock }

func (m *MockChatUoWFactory) Create() commands.ChatUoW {
	args := m.Called()
	return args.Get(0).(commands.ChatUoW)
}

type MockNotificationSender struct{ mock.Mock }

func (m *MockNotificationSender) Send(ctx context.Context, n ports.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

// silentNotifier accepts anything; used where a test does not care about
// the notification.
func silentNotifier() *MockNotificationSender {
	notifier := new(MockNotificationSender)
	notifier.On("Send", mock.Anything, mock.Anything).Return(nil).Maybe()
	return notifier
}

func testLineItems(t *testing.T) []order.LineItem {
	t.Helper()

	padThaiPrice, err := kernel.NewMoney(1099)
	require.NoError(t, err)
	padThai, err := order.NewLineItem(kernel.NewUUID(), "Pad Thai", 2, padThaiPrice, []string{"extra spicy"}, "")
	require.NoError(t, err)

	rollsPrice, err := kernel.NewMoney(1329)
	require.NoError(t, err)
	rolls, err := order.NewLineItem(kernel.NewUUID(), "Spring Rolls", 1, rollsPrice, nil, "no peanuts")
	require.NoError(t, err)

	return []order.LineItem{padThai, rolls}
}

func testDeliveryAddress(t *testing.T) *order.Address {
	t.Helper()

	addr, err := order.NewAddress("1 Main St", "4B", "Springfield", "IL", "62704", "ring twice")
	require.NoError(t, err)
	return &addr
}

func pendingTestOrder(t *testing.T) *order.Order {
	t.Helper()

	fee, err := kernel.NewMoney(500)
	require.NoError(t, err)
	tip, err := kernel.NewMoney(300)
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		testLineItems(t), fee, tip,
		order.OptionDelivery, testDeliveryAddress(t), "card", time.Now(),
	)
	require.NoError(t, err)
	return o
}

func onShiftDriver(t *testing.T, name string) *driver.Driver {
	t.Helper()

	d, err := driver.RestoreDriver(kernel.NewUUID(), name, true, nil, 0, nil)
	require.NoError(t, err)
	return d
}

// deliveredTestOrder walks an order through the full happy path so rating
// tests start from a terminal state.
func deliveredTestOrder(t *testing.T, d *driver.Driver) *order.Order {
	t.Helper()

	o := pendingTestOrder(t)
	now := time.Now()

	require.NoError(t, o.AssignDriver(d.ID(), d.Name(), now))
	require.NoError(t, o.Accept(d.ID(), now))
	require.NoError(t, o.PickUp(d.ID(), now))
	require.NoError(t, o.Deliver(d.ID(), now))
	return o
}
