package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/restaurant-pos/internal/entities"
	"github.com/SergeyBogomolovv/restaurant-pos/internal/handler"
	mocks "github.com/SergeyBogomolovv/restaurant-pos/internal/handler/mocks"
	"github.com/SergeyBogomolovv/restaurant-pos/internal/middleware"
	"github.com/SergeyBogomolovv/restaurant-pos/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	employeeID = uuid.MustParse("7b0b3a8e-4c1e-4a57-9d64-2a1f5a0e7c11")
	actor      = entities.Actor{EmployeeID: employeeID}
)

func newRouter(svc handler.OrderService) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewHTTPHandler(logger, svc)

	r := chi.NewRouter()
	r.Use(middleware.Identity)
	h.Init(r)
	return r
}

type request struct {
	method   string
	path     string
	body     string
	employee bool
	language string
}

func do(t *testing.T, router http.Handler, in request) (int, string) {
	t.Helper()

	var body io.Reader
	if in.body != "" {
		body = strings.NewReader(in.body)
	}
	req := httptest.NewRequest(in.method, in.path, body)
	if in.employee {
		req.Header.Set(middleware.EmployeeIDHeader, employeeID.String())
	}
	if in.language != "" {
		req.Header.Set("Accept-Language", in.language)
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	res := rr.Result()
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res.StatusCode, string(raw)
}

func sampleOrder() *entities.Order {
	now := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	id := uuid.New()
	return &entities.Order{
		ID:          id,
		Code:        "ORD-20250314-0001",
		Type:        entities.OrderTypeTakeaway,
		Status:      entities.OrderStatusDraft,
		TotalAmount: decimal.RequireFromString("30"),
		CreatedBy:   employeeID,
		CreatedAt:   now,
		UpdatedAt:   now,
		Version:     1,
		Items: []entities.OrderItem{{
			ID:         uuid.New(),
			OrderID:    id,
			MenuItemID: uuid.New(),
			ItemCode:   "PHO",
			ItemName:   "Pho bo",
			UnitPrice:  decimal.RequireFromString("15"),
			Status:     entities.ItemStatusPreparing,
			Quantity:   2,
		}},
		AuditLog: []entities.AuditEntry{{
			ID:         uuid.New(),
			OrderID:    id,
			Seq:        1,
			EmployeeID: employeeID,
			Action:     entities.AuditCreateDraft,
			NewValue:   json.RawMessage(`{"status":"DRAFT"}`),
			CreatedAt:  now,
		}},
	}
}

func TestHTTPHandler_CreateDraft(t *testing.T) {
	tableID := uuid.New()

	testCases := []struct {
		name         string
		req          request
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			req:  request{body: `{"type":"TAKEAWAY","note":"no onions"}`, employee: true},
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					CreateDraft(mock.Anything, actor, service.CreateDraftInput{
						Type: entities.OrderTypeTakeaway,
						Note: "no onions",
					}).
					Return(sampleOrder(), nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"code":"ORD-20250314-0001"`,
		},
		{
			name: "table occupied",
			req:  request{body: `{"type":"DINE_IN","table_id":"` + tableID.String() + `"}`, employee: true},
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					CreateDraft(mock.Anything, actor, service.CreateDraftInput{
						Type:    entities.OrderTypeDineIn,
						TableID: &tableID,
					}).
					Return(nil, entities.ErrTableOccupied).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `"code":"table.occupied"`,
		},
		{
			name: "localized message",
			req:  request{body: `{"type":"DINE_IN","table_id":"` + tableID.String() + `"}`, employee: true, language: "vi-VN,vi;q=0.9,en;q=0.5"},
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					CreateDraft(mock.Anything, actor, mock.Anything).
					Return(nil, entities.ErrTableOccupied).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `"message":"bàn đang có khách"`,
		},
		{
			name: "missing employee",
			req:  request{body: `{"type":"TAKEAWAY"}`},
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					CreateDraft(mock.Anything, entities.Actor{}, mock.Anything).
					Return(nil, entities.ErrMissingActor).Once()
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `"code":"auth.missing_actor"`,
		},
		{
			name:         "unknown order type",
			req:          request{body: `{"type":"DELIVERY"}`, employee: true},
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"code":"request.invalid"`,
		},
		{
			name:         "unknown field",
			req:          request{body: `{"type":"TAKEAWAY","discount":10}`, employee: true},
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"code":"request.invalid"`,
		},
		{
			name: "storage failure",
			req:  request{body: `{"type":"TAKEAWAY"}`, employee: true},
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					CreateDraft(mock.Anything, actor, mock.Anything).
					Return(nil, errors.New("connection reset")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"code":"internal"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			tc.mockBehavior(svc)

			tc.req.method = http.MethodPost
			tc.req.path = "/orders/draft"
			status, body := do(t, newRouter(svc), tc.req)

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestHTTPHandler_SubmitToKitchen(t *testing.T) {
	svc := mocks.NewMockOrderService(t)
	menuItemID := uuid.New()
	optionID := uuid.New()

	svc.EXPECT().
		SubmitToKitchen(mock.Anything, actor, mock.Anything).
		Run(func(_ context.Context, _ entities.Actor, in service.SubmitToKitchenInput) {
			assert.Equal(t, entities.OrderTypeTakeaway, in.Type)
			require.Len(t, in.Items, 2)
			assert.Equal(t, menuItemID, in.Items[0].MenuItemID)
			assert.Equal(t, 2, in.Items[0].Quantity)
			require.Len(t, in.Items[1].Options, 1)
			assert.Equal(t, optionID, in.Items[1].Options[0].OptionItemID)
		}).
		Return(sampleOrder(), nil).Once()

	status, body := do(t, newRouter(svc), request{
		method:   http.MethodPost,
		path:     "/orders/kitchen",
		employee: true,
		body: `{"type":"TAKEAWAY","items":[
			{"menu_item_id":"` + menuItemID.String() + `","quantity":2},
			{"menu_item_id":"` + menuItemID.String() + `","quantity":1,"options":[{"option_item_id":"` + optionID.String() + `"}]}
		]}`,
	})

	assert.Equal(t, http.StatusCreated, status)

	var resp handler.Order
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.Equal(t, "30.00", resp.TotalAmount)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "30.00", resp.Items[0].LineTotal)
	require.Len(t, resp.AuditLog, 1)
	assert.Equal(t, "CREATE_DRAFT", resp.AuditLog[0].Action)
}

func TestHTTPHandler_SubmitToKitchen_RequiresItems(t *testing.T) {
	svc := mocks.NewMockOrderService(t)

	status, body := do(t, newRouter(svc), request{
		method:   http.MethodPost,
		path:     "/orders/kitchen",
		employee: true,
		body:     `{"type":"TAKEAWAY","items":[]}`,
	})

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body, `"fields"`)
}

func TestHTTPHandler_GetOrder(t *testing.T) {
	order := sampleOrder()

	testCases := []struct {
		name         string
		orderID      string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:    "success",
			orderID: order.ID.String(),
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					GetOrder(mock.Anything, order.ID).
					Return(order, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"id":"` + order.ID.String() + `"`,
		},
		{
			name:    "not found",
			orderID: order.ID.String(),
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					GetOrder(mock.Anything, order.ID).
					Return(nil, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
		{
			name:         "malformed id",
			orderID:      "42",
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"code":"request.invalid"`,
		},
		{
			name:    "persistence failure",
			orderID: order.ID.String(),
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					GetOrder(mock.Anything, order.ID).
					Return(nil, entities.ErrStorage).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"code":"storage.failure"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			tc.mockBehavior(svc)

			status, body := do(t, newRouter(svc), request{method: http.MethodGet, path: "/orders/" + tc.orderID})

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestHTTPHandler_Items(t *testing.T) {
	orderID := uuid.New()
	itemID := uuid.New()
	menuItemID := uuid.New()
	line := entities.OrderItem{
		ID:         itemID,
		OrderID:    orderID,
		MenuItemID: menuItemID,
		UnitPrice:  decimal.RequireFromString("12.5"),
		Status:     entities.ItemStatusPreparing,
		Quantity:   3,
	}

	testCases := []struct {
		name         string
		req          request
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "add item merged",
			req: request{
				method: http.MethodPost,
				path:   "/orders/" + orderID.String() + "/items",
				body:   `{"menu_item_id":"` + menuItemID.String() + `","quantity":1,"reason":"guest asked"}`,
			},
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					AddItem(mock.Anything, actor, service.AddItemInput{
						OrderID: orderID,
						Item: service.ItemInput{
							MenuItemID: menuItemID,
							Quantity:   1,
							Options:    []entities.OptionSelection{},
						},
						Reason: "guest asked",
					}).
					Return(line, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"line_total":"37.50"`,
		},
		{
			name: "add item to finished order",
			req: request{
				method: http.MethodPost,
				path:   "/orders/" + orderID.String() + "/items",
				body:   `{"menu_item_id":"` + menuItemID.String() + `","quantity":1}`,
			},
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					AddItem(mock.Anything, actor, mock.Anything).
					Return(entities.OrderItem{}, entities.ErrOrderFinished).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `"code":"order.finished"`,
		},
		{
			name: "add item with zero quantity",
			req: request{
				method: http.MethodPost,
				path:   "/orders/" + orderID.String() + "/items",
				body:   `{"menu_item_id":"` + menuItemID.String() + `","quantity":0}`,
			},
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name: "update items",
			req: request{
				method: http.MethodPut,
				path:   "/orders/" + orderID.String() + "/items",
				body:   `{"items":[{"item_id":"` + itemID.String() + `","menu_item_id":"` + menuItemID.String() + `","quantity":3}],"reason":"fix"}`,
			},
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					UpdateItems(mock.Anything, actor, mock.Anything).
					Run(func(_ context.Context, _ entities.Actor, in service.UpdateItemsInput) {
						require.Len(t, in.Items, 1)
						require.NotNil(t, in.Items[0].ItemID)
						assert.Equal(t, itemID, *in.Items[0].ItemID)
						assert.Equal(t, "fix", in.Reason)
					}).
					Return([]entities.OrderItem{line}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"quantity":3`,
		},
		{
			name: "cancel item without change",
			req: request{
				method: http.MethodPost,
				path:   "/orders/" + orderID.String() + "/items/" + itemID.String() + "/cancel",
			},
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					CancelItem(mock.Anything, actor, orderID, itemID, "").
					Return(false, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"changed":false`,
		},
		{
			name: "cancel unknown item",
			req: request{
				method: http.MethodPost,
				path:   "/orders/" + orderID.String() + "/items/" + itemID.String() + "/cancel",
				body:   `{"reason":"sold out"}`,
			},
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					CancelItem(mock.Anything, actor, orderID, itemID, "sold out").
					Return(false, entities.ErrItemNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"code":"order_item.not_found"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			tc.mockBehavior(svc)

			tc.req.employee = true
			status, body := do(t, newRouter(svc), tc.req)

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestHTTPHandler_Lifecycle(t *testing.T) {
	orderID := uuid.New()
	tableID := uuid.New()
	base := "/orders/" + orderID.String()

	testCases := []struct {
		name         string
		req          request
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "submit without body",
			req:  request{method: http.MethodPost, path: base + "/submit"},
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					Submit(mock.Anything, actor, service.SubmitInput{OrderID: orderID}).
					Return(sampleOrder(), nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "submit with table",
			req:  request{method: http.MethodPost, path: base + "/submit", body: `{"table_id":"` + tableID.String() + `"}`},
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					Submit(mock.Anything, actor, service.SubmitInput{OrderID: orderID, TableID: &tableID}).
					Return(nil, entities.ErrNoItems).Once()
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `"code":"order.no_items"`,
		},
		{
			name: "cancel serving order without reason",
			req:  request{method: http.MethodPost, path: base + "/cancel"},
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					CancelOrder(mock.Anything, actor, orderID, "").
					Return(false, entities.ErrReasonRequired).Once()
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `"code":"order.reason_required"`,
		},
		{
			name: "cancel with reason",
			req:  request{method: http.MethodPost, path: base + "/cancel", body: `{"reason":"guest left"}`},
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					CancelOrder(mock.Anything, actor, orderID, "guest left").
					Return(true, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"changed":true`,
		},
		{
			name: "complete",
			req:  request{method: http.MethodPost, path: base + "/complete"},
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					CompleteOrder(mock.Anything, actor, orderID).
					Return(service.CompleteResult{
						OrderID:       orderID,
						Total:         decimal.RequireFromString("50"),
						Status:        entities.OrderStatusCompleted,
						TableReleased: true,
					}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"total":"50.00"`,
		},
		{
			name: "complete concurrently modified",
			req:  request{method: http.MethodPost, path: base + "/complete"},
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					CompleteOrder(mock.Anything, actor, orderID).
					Return(service.CompleteResult{}, entities.ErrConcurrentModification).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `"code":"order.concurrent_modification"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			tc.mockBehavior(svc)

			tc.req.employee = true
			status, body := do(t, newRouter(svc), tc.req)

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}
