package main

import (
	"net/http"

	"github.com/chuling-hu/EoDeliveryForOffices/internal/domain"
	"github.com/chuling-hu/EoDeliveryForOffices/internal/service"
	"github.com/go-chi/chi"
)

type SaveScheduleRequest struct {
	MenuItemIDs     []string `json:"menu_item_ids" validate:"required"`
	OverrideEnabled bool     `json:"override_enabled"`
	OverrideReason  string   `json:"override_reason"`
}

type BatchDay struct {
	Date            string   `json:"date" validate:"required"`
	MenuItemIDs     []string `json:"menu_item_ids" validate:"required"`
	OverrideEnabled bool     `json:"override_enabled"`
	OverrideReason  string   `json:"override_reason"`
}

type BatchSaveRequest struct {
	Days []BatchDay `json:"days" validate:"required,min=1,dive"`
}

type BatchSaveResponse struct {
	Saved int    `json:"saved"`
	Total int    `json:"total"`
	Error string `json:"error,omitempty"`
}

// getScheduleHandler godoc
//
//	@Summary		Get the editing view for a date
//	@Description	Grouped catalog with per-restaurant selection state and policy standing
//	@Tags			schedule
//	@Produce		json
//	@Param			date	path		string	true	"Date (YYYY-MM-DD)"
//	@Param			q		query		string	false	"Restaurant name filter"
//	@Success		200		{object}	service.DayView
//	@Failure		400		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Router			/schedule/{date} [get]
func (app *application) getScheduleHandler(w http.ResponseWriter, r *http.Request) {
	date, err := domain.ParseDate(chi.URLParam(r, "date"))
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	draft, err := app.scheduleService.LoadDraft(r.Context(), date)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	view, err := app.scheduleService.DayViewFor(r.Context(), draft, date, r.URL.Query().Get("q"))
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, view); err != nil {
		app.internalServerError(w, r, err)
	}
}

// saveScheduleHandler godoc
//
//	@Summary		Save the selection for one date
//	@Description	Full overwrite of the date's selection; carries the weekend override when supplied
//	@Tags			schedule
//	@Accept			json
//	@Produce		json
//	@Param			date	path		string				true	"Date (YYYY-MM-DD)"
//	@Param			request	body		SaveScheduleRequest	true	"Selection to persist"
//	@Success		200		{object}	map[string]string
//	@Failure		400		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Router			/schedule/{date} [put]
func (app *application) saveScheduleHandler(w http.ResponseWriter, r *http.Request) {
	date, err := domain.ParseDate(chi.URLParam(r, "date"))
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var req SaveScheduleRequest
	if err := readJSON(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	draft, err := app.draftFromRequest(date, req.MenuItemIDs, req.OverrideEnabled, req.OverrideReason)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	if err := app.scheduleService.SaveDate(r.Context(), draft, date); err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, map[string]string{"date": date.String(), "status": "saved"}); err != nil {
		app.internalServerError(w, r, err)
	}
}

// batchSaveScheduleHandler godoc
//
//	@Summary		Save selections for a week or month
//	@Description	Sequence of independent per-date upserts; the response reports the success count
//	@Tags			schedule
//	@Accept			json
//	@Produce		json
//	@Param			request	body		BatchSaveRequest	true	"Dates to persist"
//	@Success		200		{object}	BatchSaveResponse
//	@Failure		400		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Router			/schedule/batch [post]
func (app *application) batchSaveScheduleHandler(w http.ResponseWriter, r *http.Request) {
	var req BatchSaveRequest
	if err := readJSON(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	// all validation happens before any write is attempted
	draft := service.NewDraft()
	dates := make([]domain.Date, 0, len(req.Days))
	for _, day := range req.Days {
		date, err := domain.ParseDate(day.Date)
		if err != nil {
			app.badRequestResponse(w, r, err)
			return
		}
		draft.SetSelection(date, day.MenuItemIDs)
		if day.OverrideEnabled {
			if err := app.scheduleService.EnableWeekendOverride(draft, date, day.OverrideReason); err != nil {
				app.serviceErrorResponse(w, r, err)
				return
			}
		}
		dates = append(dates, date)
	}

	result := app.scheduleService.SaveBatch(r.Context(), draft, dates)

	resp := BatchSaveResponse{Saved: result.Saved, Total: result.Total}
	status := http.StatusOK
	if result.Err != nil {
		resp.Error = result.Err.Error()
		status = http.StatusMultiStatus
	}

	if err := app.jsonResponse(w, status, resp); err != nil {
		app.internalServerError(w, r, err)
	}
}

func (app *application) draftFromRequest(date domain.Date, itemIDs []string, overrideEnabled bool, overrideReason string) (*service.Draft, error) {
	draft := service.NewDraft()
	draft.SetSelection(date, itemIDs)
	if overrideEnabled {
		if err := app.scheduleService.EnableWeekendOverride(draft, date, overrideReason); err != nil {
			return nil, err
		}
	}
	return draft, nil
}
