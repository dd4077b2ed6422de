package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/restaurant-pos/internal/entities"
	"github.com/SergeyBogomolovv/restaurant-pos/internal/middleware"
	"github.com/SergeyBogomolovv/restaurant-pos/internal/service"
	"github.com/SergeyBogomolovv/restaurant-pos/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type OrderService interface {
	CreateDraft(ctx context.Context, actor entities.Actor, in service.CreateDraftInput) (*entities.Order, error)
	SubmitToKitchen(ctx context.Context, actor entities.Actor, in service.SubmitToKitchenInput) (*entities.Order, error)
	GetOrder(ctx context.Context, orderID uuid.UUID) (*entities.Order, error)
	AddItem(ctx context.Context, actor entities.Actor, in service.AddItemInput) (entities.OrderItem, error)
	UpdateItems(ctx context.Context, actor entities.Actor, in service.UpdateItemsInput) ([]entities.OrderItem, error)
	Submit(ctx context.Context, actor entities.Actor, in service.SubmitInput) (*entities.Order, error)
	CancelOrder(ctx context.Context, actor entities.Actor, orderID uuid.UUID, reason string) (bool, error)
	CancelItem(ctx context.Context, actor entities.Actor, orderID, itemID uuid.UUID, reason string) (bool, error)
	CompleteOrder(ctx context.Context, actor entities.Actor, orderID uuid.UUID) (service.CompleteResult, error)
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	messages *localizer
	svc      OrderService
}

func NewHTTPHandler(logger *slog.Logger, svc OrderService) *HTTPHandler {
	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: validator.New(),
		messages: newLocalizer(),
		svc:      svc,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Route("/orders", func(r chi.Router) {
		r.Post("/draft", h.CreateDraft)
		r.Post("/kitchen", h.SubmitToKitchen)

		r.Route("/{order_id}", func(r chi.Router) {
			r.Get("/", h.GetOrder)
			r.Post("/items", h.AddItem)
			r.Put("/items", h.UpdateItems)
			r.Post("/items/{item_id}/cancel", h.CancelItem)
			r.Post("/submit", h.Submit)
			r.Post("/cancel", h.CancelOrder)
			r.Post("/complete", h.CompleteOrder)
		})
	})
}

// CreateDraft создаёт черновик заказа.
// @Summary      Создать черновик заказа
// @Tags         orders
// @Param        X-Employee-ID  header  string              true  "Идентификатор сотрудника"
// @Param        request        body    CreateDraftRequest  true  "Черновик"
// @Success      201  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      401  {object}  utils.ErrorResponse
// @Failure      409  {object}  utils.ErrorResponse "Стол занят"
// @Failure      422  {object}  utils.ErrorResponse
// @Router       /orders/draft [post]
func (h *HTTPHandler) CreateDraft(w http.ResponseWriter, r *http.Request) {
	var req CreateDraftRequest
	if !h.decode(w, r, &req, false) {
		return
	}

	order, err := h.svc.CreateDraft(r.Context(), middleware.ActorFromContext(r.Context()), service.CreateDraftInput{
		Type:     entities.OrderType(req.Type),
		TableID:  req.TableID,
		Note:     req.Note,
		Priority: req.Priority,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusCreated)
}

// SubmitToKitchen создаёт заказ и сразу отправляет его на кухню.
// @Summary      Отправить заказ на кухню
// @Tags         orders
// @Param        X-Employee-ID  header  string                  true  "Идентификатор сотрудника"
// @Param        request        body    SubmitToKitchenRequest  true  "Заказ"
// @Success      201  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      404  {object}  utils.ErrorResponse "Позиция меню не найдена"
// @Failure      409  {object}  utils.ErrorResponse
// @Failure      422  {object}  utils.ErrorResponse
// @Router       /orders/kitchen [post]
func (h *HTTPHandler) SubmitToKitchen(w http.ResponseWriter, r *http.Request) {
	var req SubmitToKitchenRequest
	if !h.decode(w, r, &req, false) {
		return
	}

	order, err := h.svc.SubmitToKitchen(r.Context(), middleware.ActorFromContext(r.Context()), service.SubmitToKitchenInput{
		Type:     entities.OrderType(req.Type),
		TableID:  req.TableID,
		Note:     req.Note,
		Priority: req.Priority,
		Items:    ItemRequestsToInput(req.Items),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusCreated)
}

// GetOrder возвращает заказ по ID.
// @Summary      Получить заказ
// @Description  Возвращает заказ вместе с позициями и журналом изменений
// @Tags         orders
// @Param        order_id   path      string  true  "Идентификатор заказа"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders/{order_id} [get]
func (h *HTTPHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	orderID, ok := h.pathID(w, r, "order_id")
	if !ok {
		return
	}

	order, err := h.svc.GetOrder(r.Context(), orderID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// AddItem добавляет позицию или объединяет её с такой же готовящейся.
// @Summary      Добавить позицию
// @Tags         items
// @Param        X-Employee-ID  header  string          true  "Идентификатор сотрудника"
// @Param        order_id       path    string          true  "Идентификатор заказа"
// @Param        request        body    AddItemRequest  true  "Позиция"
// @Success      200  {object}  Item
// @Failure      409  {object}  utils.ErrorResponse
// @Failure      422  {object}  utils.ErrorResponse
// @Router       /orders/{order_id}/items [post]
func (h *HTTPHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	orderID, ok := h.pathID(w, r, "order_id")
	if !ok {
		return
	}
	var req AddItemRequest
	if !h.decode(w, r, &req, false) {
		return
	}

	item, err := h.svc.AddItem(r.Context(), middleware.ActorFromContext(r.Context()), service.AddItemInput{
		OrderID: orderID,
		Item:    ItemRequestToInput(req.ItemRequest),
		Reason:  req.Reason,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, ItemEntityToJSON(item), http.StatusOK)
}

// UpdateItems приводит набор позиций заказа к переданному.
// @Summary      Обновить позиции
// @Description  Позиции, отсутствующие в запросе, отменяются
// @Tags         items
// @Param        X-Employee-ID  header  string              true  "Идентификатор сотрудника"
// @Param        order_id       path    string              true  "Идентификатор заказа"
// @Param        request        body    UpdateItemsRequest  true  "Полный набор позиций"
// @Success      200  {array}   Item
// @Failure      409  {object}  utils.ErrorResponse
// @Failure      422  {object}  utils.ErrorResponse
// @Router       /orders/{order_id}/items [put]
func (h *HTTPHandler) UpdateItems(w http.ResponseWriter, r *http.Request) {
	orderID, ok := h.pathID(w, r, "order_id")
	if !ok {
		return
	}
	var req UpdateItemsRequest
	if !h.decode(w, r, &req, false) {
		return
	}

	items, err := h.svc.UpdateItems(r.Context(), middleware.ActorFromContext(r.Context()), service.UpdateItemsInput{
		OrderID: orderID,
		Items:   ItemRequestsToInput(req.Items),
		Reason:  req.Reason,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	res := make([]Item, 0, len(items))
	for _, i := range items {
		res = append(res, ItemEntityToJSON(i))
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

// CancelItem отменяет одну позицию.
// @Summary      Отменить позицию
// @Tags         items
// @Param        X-Employee-ID  header  string         true   "Идентификатор сотрудника"
// @Param        order_id       path    string         true   "Идентификатор заказа"
// @Param        item_id        path    string         true   "Идентификатор позиции"
// @Param        request        body    ReasonRequest  false  "Причина"
// @Success      200  {object}  ChangedResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Failure      409  {object}  utils.ErrorResponse
// @Router       /orders/{order_id}/items/{item_id}/cancel [post]
func (h *HTTPHandler) CancelItem(w http.ResponseWriter, r *http.Request) {
	orderID, ok := h.pathID(w, r, "order_id")
	if !ok {
		return
	}
	itemID, ok := h.pathID(w, r, "item_id")
	if !ok {
		return
	}
	var req ReasonRequest
	if !h.decode(w, r, &req, true) {
		return
	}

	changed, err := h.svc.CancelItem(r.Context(), middleware.ActorFromContext(r.Context()), orderID, itemID, req.Reason)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, ChangedResponse{Changed: changed}, http.StatusOK)
}

// Submit отправляет черновик на кухню.
// @Summary      Отправить черновик
// @Tags         orders
// @Param        X-Employee-ID  header  string         true   "Идентификатор сотрудника"
// @Param        order_id       path    string         true   "Идентификатор заказа"
// @Param        request        body    SubmitRequest  false  "Стол для заказа в зале"
// @Success      200  {object}  Order
// @Failure      409  {object}  utils.ErrorResponse
// @Failure      422  {object}  utils.ErrorResponse
// @Router       /orders/{order_id}/submit [post]
func (h *HTTPHandler) Submit(w http.ResponseWriter, r *http.Request) {
	orderID, ok := h.pathID(w, r, "order_id")
	if !ok {
		return
	}
	var req SubmitRequest
	if !h.decode(w, r, &req, true) {
		return
	}

	order, err := h.svc.Submit(r.Context(), middleware.ActorFromContext(r.Context()), service.SubmitInput{
		OrderID: orderID,
		TableID: req.TableID,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// CancelOrder отменяет заказ.
// @Summary      Отменить заказ
// @Description  Причина обязательна для заказа, который уже не черновик
// @Tags         orders
// @Param        X-Employee-ID  header  string         true   "Идентификатор сотрудника"
// @Param        order_id       path    string         true   "Идентификатор заказа"
// @Param        request        body    ReasonRequest  false  "Причина"
// @Success      200  {object}  ChangedResponse
// @Failure      409  {object}  utils.ErrorResponse
// @Failure      422  {object}  utils.ErrorResponse
// @Router       /orders/{order_id}/cancel [post]
func (h *HTTPHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	orderID, ok := h.pathID(w, r, "order_id")
	if !ok {
		return
	}
	var req ReasonRequest
	if !h.decode(w, r, &req, true) {
		return
	}

	changed, err := h.svc.CancelOrder(r.Context(), middleware.ActorFromContext(r.Context()), orderID, req.Reason)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, ChangedResponse{Changed: changed}, http.StatusOK)
}

// CompleteOrder закрывает заказ.
// @Summary      Завершить заказ
// @Tags         orders
// @Param        X-Employee-ID  header  string  true  "Идентификатор сотрудника"
// @Param        order_id       path    string  true  "Идентификатор заказа"
// @Success      200  {object}  CompleteResponse
// @Failure      409  {object}  utils.ErrorResponse
// @Router       /orders/{order_id}/complete [post]
func (h *HTTPHandler) CompleteOrder(w http.ResponseWriter, r *http.Request) {
	orderID, ok := h.pathID(w, r, "order_id")
	if !ok {
		return
	}

	res, err := h.svc.CompleteOrder(r.Context(), middleware.ActorFromContext(r.Context()), orderID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, CompleteResultToJSON(res), http.StatusOK)
}

func (h *HTTPHandler) pathID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	raw := chi.URLParam(r, name)
	if err := h.validate.Var(raw, "required,uuid"); err != nil {
		h.writeBadRequest(w, r, err)
		return uuid.Nil, false
	}
	return uuid.MustParse(raw), true
}

// decode reads and validates the JSON body. An empty body is accepted when optional is set.
func (h *HTTPHandler) decode(w http.ResponseWriter, r *http.Request, v any, optional bool) bool {
	if err := utils.DecodeBody(r, v); err != nil && !(optional && errors.Is(err, io.EOF)) {
		h.writeBadRequest(w, r, err)
		return false
	}
	if err := h.validate.Struct(v); err != nil {
		h.writeBadRequest(w, r, err)
		return false
	}
	return true
}
