// Package http exposes the order lifecycle over a REST API. The server
// implements the generated ServerInterface and translates between transport
// types and application commands/queries. Caller identity arrives in the
// X-User-ID, X-User-Role and X-User-Name headers; verifying those headers is
// the job of the gateway in front of this service.
package http

import (
	"errors"
	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/chat"
	"fooddelivery/internal/core/domain/model/driver"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/rating"
	"fooddelivery/internal/generated/servers"
	"fooddelivery/internal/pkg/errs"
	"net/http"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

const (
	headerUserID   = "X-User-ID"
	headerUserRole = "X-User-Role"
	headerUserName = "X-User-Name"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	placeOrderHandler     commands.PlaceOrderCommandHandler
	claimOrderHandler     commands.ClaimOrderCommandHandler
	acceptOrderHandler    commands.AcceptOrderCommandHandler
	pickupOrderHandler    commands.PickupOrderCommandHandler
	deliverOrderHandler   commands.DeliverOrderCommandHandler
	rejectHandler         commands.RejectAssignmentCommandHandler
	cancelOrderHandler    commands.CancelOrderCommandHandler
	submitRatingHandler   commands.SubmitRatingCommandHandler
	sendMessageHandler    commands.SendMessageCommandHandler
	markThreadReadHandler commands.MarkThreadReadCommandHandler

	// Query handlers
	getOrderHandler           queries.GetOrderQueryHandler
	getOrdersHandler          queries.GetOrdersQueryHandler
	getAvailableOrdersHandler queries.GetAvailableOrdersQueryHandler
	getThreadMessagesHandler  queries.GetThreadMessagesQueryHandler
	getOrderRatingsHandler    queries.GetOrderRatingsQueryHandler
}

// ServerHandlers bundles the command and query handlers the server needs.
type ServerHandlers struct {
	PlaceOrder     commands.PlaceOrderCommandHandler
	ClaimOrder     commands.ClaimOrderCommandHandler
	AcceptOrder    commands.AcceptOrderCommandHandler
	PickupOrder    commands.PickupOrderCommandHandler
	DeliverOrder   commands.DeliverOrderCommandHandler
	Reject         commands.RejectAssignmentCommandHandler
	CancelOrder    commands.CancelOrderCommandHandler
	SubmitRating   commands.SubmitRatingCommandHandler
	SendMessage    commands.SendMessageCommandHandler
	MarkThreadRead commands.MarkThreadReadCommandHandler

	GetOrder           queries.GetOrderQueryHandler
	GetOrders          queries.GetOrdersQueryHandler
	GetAvailableOrders queries.GetAvailableOrdersQueryHandler
	GetThreadMessages  queries.GetThreadMessagesQueryHandler
	GetOrderRatings    queries.GetOrderRatingsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers ServerHandlers) *Server {
	return &Server{
		placeOrderHandler:         handlers.PlaceOrder,
		claimOrderHandler:         handlers.ClaimOrder,
		acceptOrderHandler:        handlers.AcceptOrder,
		pickupOrderHandler:        handlers.PickupOrder,
		deliverOrderHandler:       handlers.DeliverOrder,
		rejectHandler:             handlers.Reject,
		cancelOrderHandler:        handlers.CancelOrder,
		submitRatingHandler:       handlers.SubmitRating,
		sendMessageHandler:        handlers.SendMessage,
		markThreadReadHandler:     handlers.MarkThreadRead,
		getOrderHandler:           handlers.GetOrder,
		getOrdersHandler:          handlers.GetOrders,
		getAvailableOrdersHandler: handlers.GetAvailableOrders,
		getThreadMessagesHandler:  handlers.GetThreadMessages,
		getOrderRatingsHandler:    handlers.GetOrderRatings,
	}
}

// PlaceOrder handles POST /api/v1/orders - places a new order for the calling customer.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	customerID, err := callerID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var req servers.PlaceOrderJSONRequestBody
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := buildPlaceOrderCommand(customerID, req)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.placeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusCreated, cmd.OrderID())
}

// GetOrder handles GET /api/v1/orders/{orderId} - fetches one order.
func (s *Server) GetOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusOK, id)
}

// GetOrders handles GET /api/v1/orders - lists the caller's orders by role.
func (s *Server) GetOrders(ctx echo.Context) error {
	partyID, err := callerID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}
	role, err := callerRole(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetOrdersQuery(partyID, role)
	if err != nil {
		return badRequest(ctx, err)
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]servers.Order, len(orders))
	for i, o := range orders {
		response[i] = toServerOrder(o)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetAvailableOrders handles GET /api/v1/orders/available - lists the claimable pool.
func (s *Server) GetAvailableOrders(ctx echo.Context) error {
	pool, err := s.getAvailableOrdersHandler.Handle(
		ctx.Request().Context(), queries.NewGetAvailableOrdersQuery(),
	)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]servers.AvailableOrder, len(pool))
	for i, o := range pool {
		response[i] = servers.AvailableOrder{
			Id:           o.ID.Bytes(),
			RestaurantId: o.RestaurantID.Bytes(),
			City:         o.City,
			ItemCount:    o.ItemCount,
			TipCents:     o.Tip.Cents(),
			TotalCents:   o.Total.Cents(),
			CreatedAt:    o.CreatedAt,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// ClaimOrder handles POST /api/v1/orders/{orderId}/claim - first claim wins.
func (s *Server) ClaimOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	return s.runOrderAction(ctx, orderId, func(id, actorID kernel.UUID) error {
		cmd, err := commands.NewClaimOrderCommand(id, actorID)
		if err != nil {
			return err
		}
		return s.claimOrderHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// AcceptOrder handles POST /api/v1/orders/{orderId}/accept.
func (s *Server) AcceptOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	return s.runOrderAction(ctx, orderId, func(id, actorID kernel.UUID) error {
		cmd, err := commands.NewAcceptOrderCommand(id, actorID)
		if err != nil {
			return err
		}
		return s.acceptOrderHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// PickUpOrder handles POST /api/v1/orders/{orderId}/pickup.
func (s *Server) PickUpOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	return s.runOrderAction(ctx, orderId, func(id, actorID kernel.UUID) error {
		cmd, err := commands.NewPickupOrderCommand(id, actorID)
		if err != nil {
			return err
		}
		return s.pickupOrderHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// DeliverOrder handles POST /api/v1/orders/{orderId}/deliver.
func (s *Server) DeliverOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	return s.runOrderAction(ctx, orderId, func(id, actorID kernel.UUID) error {
		cmd, err := commands.NewDeliverOrderCommand(id, actorID)
		if err != nil {
			return err
		}
		return s.deliverOrderHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// RejectOrder handles POST /api/v1/orders/{orderId}/reject - returns the
// order to the pending pool.
func (s *Server) RejectOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	return s.runOrderAction(ctx, orderId, func(id, actorID kernel.UUID) error {
		cmd, err := commands.NewRejectAssignmentCommand(id, actorID)
		if err != nil {
			return err
		}
		return s.rejectHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancel.
func (s *Server) CancelOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	role, err := callerRole(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	return s.runOrderAction(ctx, orderId, func(id, actorID kernel.UUID) error {
		cmd, cmdErr := commands.NewCancelOrderCommand(id, actorID, role)
		if cmdErr != nil {
			return cmdErr
		}
		return s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// SubmitRating handles POST /api/v1/orders/{orderId}/ratings.
func (s *Server) SubmitRating(ctx echo.Context, orderId openapi_types.UUID) error {
	authorID, err := callerID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}
	id, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, err)
	}

	var req servers.SubmitRatingJSONRequestBody
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	target, err := rating.ParseTarget(string(req.Target))
	if err != nil {
		return badRequest(ctx, err)
	}

	comment := ""
	if req.Comment != nil {
		comment = *req.Comment
	}

	cmd, err := commands.NewSubmitRatingCommand(
		kernel.NewUUID(), id, target, authorID, req.Stars, comment,
	)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.submitRatingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetOrderRatings handles GET /api/v1/orders/{orderId}/ratings.
func (s *Server) GetOrderRatings(ctx echo.Context, orderId openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetOrderRatingsQuery(id)
	if err != nil {
		return badRequest(ctx, err)
	}

	ratings, err := s.getOrderRatingsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]servers.Rating, len(ratings))
	for i, r := range ratings {
		response[i] = servers.Rating{
			Id:        r.ID.Bytes(),
			Target:    r.Target,
			TargetId:  r.TargetID.Bytes(),
			AuthorId:  r.AuthorID.Bytes(),
			Stars:     r.Stars,
			Comment:   optional(r.Comment),
			CreatedAt: r.CreatedAt,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// SendMessage handles POST /api/v1/threads/{threadId}/messages. The message
// id comes from the client, so retries are idempotent.
func (s *Server) SendMessage(ctx echo.Context, threadId string) error {
	senderID, err := callerID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}
	senderRole, err := callerRole(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}
	senderName := ctx.Request().Header.Get(headerUserName)

	var req servers.SendMessageJSONRequestBody
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	messageID, err := kernel.UUIDFromBytes(req.Id[:])
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewSendMessageCommand(
		messageID, chat.ThreadID(threadId), senderID, senderName, senderRole, req.Body,
	)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.sendMessageHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetThreadMessages handles GET /api/v1/threads/{threadId}/messages.
func (s *Server) GetThreadMessages(ctx echo.Context, threadId string) error {
	query, err := queries.NewGetThreadMessagesQuery(chat.ThreadID(threadId))
	if err != nil {
		return badRequest(ctx, err)
	}

	messages, err := s.getThreadMessagesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]servers.ChatMessage, len(messages))
	for i, m := range messages {
		response[i] = servers.ChatMessage{
			Id:         m.ID.Bytes(),
			SenderId:   m.SenderID.Bytes(),
			SenderName: m.SenderName,
			SenderRole: m.SenderRole,
			Body:       m.Body,
			SentAt:     m.SentAt,
			Read:       m.Read,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// MarkThreadRead handles POST /api/v1/threads/{threadId}/read.
func (s *Server) MarkThreadRead(ctx echo.Context, threadId string) error {
	readerID, err := callerID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewMarkThreadReadCommand(chat.ThreadID(threadId), readerID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.markThreadReadHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// runOrderAction factors the shared shape of the lifecycle endpoints:
// parse ids, run the command, map the error, 200 on success.
func (s *Server) runOrderAction(
	ctx echo.Context,
	orderId openapi_types.UUID,
	action func(id, actorID kernel.UUID) error,
) error {
	actorID, err := callerID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}
	id, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = action(id, actorID); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

func (s *Server) respondWithOrder(ctx echo.Context, status int, orderID kernel.UUID) error {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, err)
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(status, toServerOrder(resp))
}

func buildPlaceOrderCommand(
	customerID kernel.UUID, req servers.PlaceOrderRequest,
) (commands.PlaceOrderCommand, error) {
	restaurantID, err := kernel.UUIDFromBytes(req.RestaurantId[:])
	if err != nil {
		return commands.PlaceOrderCommand{}, err
	}

	items := make([]order.LineItem, 0, len(req.Items))
	for _, it := range req.Items {
		menuItemID, itemErr := kernel.UUIDFromBytes(it.MenuItemId[:])
		if itemErr != nil {
			return commands.PlaceOrderCommand{}, itemErr
		}
		unitPrice, itemErr := kernel.MoneyFromCents(it.UnitPriceCents)
		if itemErr != nil {
			return commands.PlaceOrderCommand{}, itemErr
		}

		var customizations []string
		if it.Customizations != nil {
			customizations = *it.Customizations
		}
		note := ""
		if it.Note != nil {
			note = *it.Note
		}

		item, itemErr := order.NewLineItem(menuItemID, it.Name, it.Quantity, unitPrice, customizations, note)
		if itemErr != nil {
			return commands.PlaceOrderCommand{}, itemErr
		}
		items = append(items, item)
	}

	deliveryFee, err := kernel.MoneyFromCents(req.DeliveryFeeCents)
	if err != nil {
		return commands.PlaceOrderCommand{}, err
	}
	tip, err := kernel.MoneyFromCents(req.TipCents)
	if err != nil {
		return commands.PlaceOrderCommand{}, err
	}

	option, err := order.ParseDeliveryOption(string(req.DeliveryOption))
	if err != nil {
		return commands.PlaceOrderCommand{}, err
	}

	var address *order.Address
	if req.Address != nil {
		unit := ""
		if req.Address.Unit != nil {
			unit = *req.Address.Unit
		}
		instructions := ""
		if req.Address.Instructions != nil {
			instructions = *req.Address.Instructions
		}

		a, addrErr := order.NewAddress(
			req.Address.Street, unit, req.Address.City,
			req.Address.State, req.Address.PostalCode, instructions,
		)
		if addrErr != nil {
			return commands.PlaceOrderCommand{}, addrErr
		}
		address = &a
	}

	return commands.NewPlaceOrderCommand(
		kernel.NewUUID(), restaurantID, customerID, items,
		deliveryFee, tip, option, address, req.PaymentMethod,
	)
}

func toServerOrder(resp queries.GetOrderQueryResponse) servers.Order {
	o := servers.Order{
		Id:               resp.ID.Bytes(),
		RestaurantId:     resp.RestaurantID.Bytes(),
		CustomerId:       resp.CustomerID.Bytes(),
		DriverName:       optional(resp.DriverName),
		Status:           resp.Status,
		DeliveryOption:   resp.DeliveryOption,
		PaymentMethod:    resp.PaymentMethod,
		SubtotalCents:    resp.Subtotal.Cents(),
		DeliveryFeeCents: resp.DeliveryFee.Cents(),
		TipCents:         resp.Tip.Cents(),
		TotalCents:       resp.Total.Cents(),
		Version:          resp.Version,
		CreatedAt:        resp.CreatedAt,
		UpdatedAt:        resp.UpdatedAt,
		AcceptedAt:       resp.AcceptedAt,
		PickedUpAt:       resp.PickedUpAt,
		DeliveredAt:      resp.DeliveredAt,
	}

	if resp.DriverID != nil {
		driverID := resp.DriverID.Bytes()
		o.DriverId = &driverID
	}

	if resp.Street != "" {
		o.Address = &servers.Address{
			Street:       resp.Street,
			Unit:         optional(resp.Unit),
			City:         resp.City,
			State:        resp.State,
			PostalCode:   resp.PostalCode,
			Instructions: optional(resp.Instructions),
		}
	}

	o.Items = make([]servers.OrderItem, len(resp.Items))
	for i, item := range resp.Items {
		var customizations *[]string
		if len(item.Customizations) > 0 {
			c := item.Customizations
			customizations = &c
		}

		o.Items[i] = servers.OrderItem{
			MenuItemId:     item.MenuItemID.Bytes(),
			Name:           item.Name,
			Quantity:       item.Quantity,
			UnitPriceCents: item.UnitPrice.Cents(),
			Customizations: customizations,
			Note:           optional(item.Note),
		}
	}

	return o
}

func callerID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Request().Header.Get(headerUserID))
}

func callerRole(ctx echo.Context) (kernel.Role, error) {
	return kernel.ParseRole(ctx.Request().Header.Get(headerUserRole))
}

func badRequest(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: err.Error(),
	})
}

// writeError maps domain and application errors onto the API's status codes.
// A concurrency conflict is marked retryable: the caller lost a race, not the
// argument.
func writeError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, servers.Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrUnauthorized):
		return ctx.JSON(http.StatusForbidden, servers.Error{
			Code:    http.StatusForbidden,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrConcurrencyConflict):
		retryable := true
		return ctx.JSON(http.StatusConflict, servers.Error{
			Code:      http.StatusConflict,
			Message:   err.Error(),
			Retryable: &retryable,
		})
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrDuplicate),
		errors.Is(err, commands.ErrOrderIsNotRatable),
		errors.Is(err, driver.ErrDriverIsBusy),
		errors.Is(err, driver.ErrDriverIsOffShift),
		errors.Is(err, driver.ErrOrderIsNotActive):
		return ctx.JSON(http.StatusConflict, servers.Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return badRequest(ctx, err)
	default:
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Internal error",
		})
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
