package main

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/chuling-hu/EoDeliveryForOffices/internal/domain"
	"github.com/go-chi/chi"
)

type PublishedMenuResponse struct {
	Date     domain.Date       `json:"date"`
	CanOrder bool              `json:"can_order"`
	Items    []domain.MenuItem `json:"items"`
}

// getPublishedMenuHandler godoc
//
//	@Summary		Get the published menu for a date
//	@Description	Items selected for the date; empty when nothing was published
//	@Tags			menu
//	@Produce		json
//	@Param			date	path		string	true	"Date (YYYY-MM-DD)"
//	@Success		200		{object}	PublishedMenuResponse
//	@Failure		400		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Router			/menu/{date} [get]
func (app *application) getPublishedMenuHandler(w http.ResponseWriter, r *http.Request) {
	date, err := domain.ParseDate(chi.URLParam(r, "date"))
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	items, err := app.storefrontService.PublishedItems(r.Context(), date)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	response := PublishedMenuResponse{
		Date:     date,
		CanOrder: app.storefrontService.CanOrderForDate(date),
		Items:    items,
	}

	if err := app.jsonResponse(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getMenuHistoryHandler godoc
//
//	@Summary		List past dates with a published menu
//	@Tags			menu
//	@Produce		json
//	@Success		200	{array}		domain.DailyMenu
//	@Failure		500	{object}	map[string]string
//	@Router			/menu/history [get]
func (app *application) getMenuHistoryHandler(w http.ResponseWriter, r *http.Request) {
	menus, err := app.storefrontService.History(r.Context())
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, menus); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getMonthViewHandler godoc
//
//	@Summary		Date-picker view for one month
//	@Description	Every date of the month with selectability and published-menu flags
//	@Tags			menu
//	@Produce		json
//	@Param			year	path		int	true	"Year"
//	@Param			month	path		int	true	"Month (1-12)"
//	@Success		200		{object}	service.MonthView
//	@Failure		400		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Router			/calendar/{year}/{month} [get]
func (app *application) getMonthViewHandler(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil || year < 2000 || year > 2100 {
		app.badRequestResponse(w, r, errors.New("invalid year"))
		return
	}

	month, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil || month < 1 || month > 12 {
		app.badRequestResponse(w, r, errors.New("invalid month"))
		return
	}

	view, err := app.storefrontService.MonthViewFor(r.Context(), year, time.Month(month))
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, view); err != nil {
		app.internalServerError(w, r, err)
	}
}
