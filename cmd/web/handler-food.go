package main

import (
	"log/slog"
	"net/http"

	"github.com/fitweek/fitweek/internal/errors"
	"github.com/fitweek/fitweek/internal/nutrition"
)

type foodListResponse struct {
	Entries []nutrition.FoodEntry `json:"entries"`
	Totals  nutrition.Totals      `json:"totals"`
}

func (app *application) foodGET(w http.ResponseWriter, r *http.Request) {
	date, err := parseDateQuery(r)
	if err != nil {
		app.clientError(w, r, http.StatusBadRequest, "invalid date, use YYYY-MM-DD")
		return
	}

	entries, err := app.foodService.EntriesFor(r.Context(), date)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	var totals nutrition.Totals
	for _, entry := range entries {
		totals.Calories += entry.Calories
		totals.Protein += entry.Protein
		totals.Carbs += entry.Carbs
		totals.Fat += entry.Fat
	}
	app.writeJSON(w, r, http.StatusOK, foodListResponse{Entries: entries, Totals: totals})
}

func (app *application) foodPOST(w http.ResponseWriter, r *http.Request) {
	var entry nutrition.FoodEntry
	if err := readJSON(r, &entry); err != nil {
		app.clientError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := app.foodService.Add(r.Context(), entry)
	if err != nil {
		app.clientError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	app.recomputePoints(r)

	app.writeJSON(w, r, http.StatusCreated, entry)
}

func (app *application) foodDELETE(w http.ResponseWriter, r *http.Request) {
	err := app.foodService.Remove(r.Context(), r.PathValue("id"))
	if errors.Is(err, nutrition.ErrNotFound) {
		app.clientError(w, r, http.StatusNotFound, "food entry not found")
		return
	}
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	app.recomputePoints(r)

	w.WriteHeader(http.StatusNoContent)
}

// recomputePoints rescores today after a food-log change. A scoring failure
// never fails the food operation itself.
func (app *application) recomputePoints(r *http.Request) {
	if _, err := app.pointsService.Recompute(r.Context()); err != nil {
		app.logger.LogAttrs(r.Context(), slog.LevelError, "recompute points",
			errors.SlogError(err))
	}
}
