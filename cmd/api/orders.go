package main

import (
	"errors"
	"net/http"

	"github.com/chuling-hu/EoDeliveryForOffices/internal/domain"
	"github.com/chuling-hu/EoDeliveryForOffices/internal/service"
	"github.com/go-chi/chi"
)

var ErrInvalidID = errors.New("invalid ID format")

type OrderLineRequest struct {
	MenuItemID string  `json:"menu_item_id" validate:"required"`
	Name       string  `json:"name" validate:"required"`
	Price      float64 `json:"price" validate:"gte=0"`
	Quantity   int     `json:"quantity" validate:"required,min=1"`
}

type CreateOrderRequest struct {
	CustomerName string             `json:"customer_name" validate:"required"`
	Phone        string             `json:"phone"`
	Office       string             `json:"office"`
	PickupDate   string             `json:"pickup_date" validate:"required"`
	Lines        []OrderLineRequest `json:"lines" validate:"required,min=1,dive"`
	Total        float64            `json:"total" validate:"gte=0"`
}

type SetPickedUpRequest struct {
	PickedUp *bool `json:"picked_up" validate:"required"`
}

// createOrderHandler godoc
//
//	@Summary		Create a pickup order
//	@Description	Validates lines and lead time, recomputes the total and rejects mismatches
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateOrderRequest	true	"Order"
//	@Success		201		{object}	domain.Order
//	@Failure		400		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Router			/orders [post]
func (app *application) createOrderHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := readJSON(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	pickupDate, err := domain.ParseDate(req.PickupDate)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	lines := make([]domain.OrderLine, 0, len(req.Lines))
	for _, l := range req.Lines {
		lines = append(lines, domain.OrderLine{
			MenuItemID: l.MenuItemID,
			Name:       l.Name,
			Price:      l.Price,
			Quantity:   l.Quantity,
		})
	}

	order, err := app.orderService.CreateOrder(r.Context(), service.CreateOrderInput{
		CustomerName:  req.CustomerName,
		Phone:         req.Phone,
		Office:        req.Office,
		PickupDate:    pickupDate,
		Lines:         lines,
		DeclaredTotal: req.Total,
	})
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusCreated, order); err != nil {
		app.internalServerError(w, r, err)
	}
}

// listOrdersHandler godoc
//
//	@Summary		List orders
//	@Description	All orders, or only those picking up on the given date
//	@Tags			orders
//	@Produce		json
//	@Param			date	query		string	false	"Pickup date (YYYY-MM-DD)"
//	@Success		200		{array}		domain.Order
//	@Failure		400		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Router			/orders [get]
func (app *application) listOrdersHandler(w http.ResponseWriter, r *http.Request) {
	var (
		orders []domain.Order
		err    error
	)

	if dateParam := r.URL.Query().Get("date"); dateParam != "" {
		date, parseErr := domain.ParseDate(dateParam)
		if parseErr != nil {
			app.badRequestResponse(w, r, parseErr)
			return
		}
		orders, err = app.orderService.ListForDate(r.Context(), date)
	} else {
		orders, err = app.orderService.ListAll(r.Context())
	}
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, orders); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getOrderHandler godoc
//
//	@Summary		Get an order by ID
//	@Description	Used by the QR-scan pickup flow
//	@Tags			orders
//	@Produce		json
//	@Param			order_id	path		string	true	"Order ID"
//	@Success		200			{object}	domain.Order
//	@Failure		400			{object}	map[string]string
//	@Failure		404			{object}	map[string]string
//	@Router			/orders/{order_id} [get]
func (app *application) getOrderHandler(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "order_id")
	if orderID == "" {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	order, err := app.orderService.FindByID(r.Context(), orderID)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, order); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getOrderAuditHandler godoc
//
//	@Summary		Get the audit trail of an order
//	@Tags			orders
//	@Produce		json
//	@Param			order_id	path		string	true	"Order ID"
//	@Success		200			{array}		domain.OrderAudit
//	@Failure		400			{object}	map[string]string
//	@Failure		500			{object}	map[string]string
//	@Router			/orders/{order_id}/audit [get]
func (app *application) getOrderAuditHandler(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "order_id")
	if orderID == "" {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	audits, err := app.orderService.GetOrderAudit(r.Context(), orderID, 20)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, audits); err != nil {
		app.internalServerError(w, r, err)
	}
}

// setPickedUpHandler godoc
//
//	@Summary		Set the pickup flag of an order
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			order_id	path		string				true	"Order ID"
//	@Param			request		body		SetPickedUpRequest	true	"Pickup flag"
//	@Success		200			{object}	domain.Order
//	@Failure		400			{object}	map[string]string
//	@Failure		404			{object}	map[string]string
//	@Router			/orders/{order_id}/pickup [patch]
func (app *application) setPickedUpHandler(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "order_id")
	if orderID == "" {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	var req SetPickedUpRequest
	if err := readJSON(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	order, err := app.orderService.SetPickedUp(r.Context(), orderID, *req.PickedUp)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, order); err != nil {
		app.internalServerError(w, r, err)
	}
}
