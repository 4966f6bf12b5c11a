package main

import (
	"net/http"

	"github.com/fitweek/fitweek/internal/nutrition"
)

func (app *application) goalsGET(w http.ResponseWriter, r *http.Request) {
	goals, err := app.foodService.Goals(r.Context())
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, goals)
}

func (app *application) goalsPUT(w http.ResponseWriter, r *http.Request) {
	var goals nutrition.Goals
	if err := readJSON(r, &goals); err != nil {
		app.clientError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	if goals.Calories <= 0 || goals.Protein <= 0 || goals.Carbs <= 0 || goals.Fat <= 0 {
		app.clientError(w, r, http.StatusBadRequest, "all goal targets must be positive")
		return
	}

	if err := app.foodService.SaveGoals(r.Context(), goals); err != nil {
		app.serverError(w, r, err)
		return
	}
	// Changed targets shift today's score immediately.
	app.recomputePoints(r)

	app.writeJSON(w, r, http.StatusOK, goals)
}
