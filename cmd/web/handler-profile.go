package main

import (
	"errors"
	"net/http"

	"github.com/fitweek/fitweek/internal/profile"
)

func (app *application) profileGET(w http.ResponseWriter, r *http.Request) {
	p, err := app.profileService.Get(r.Context())
	if errors.Is(err, profile.ErrNotFound) {
		app.clientError(w, r, http.StatusNotFound, "no profile saved yet")
		return
	}
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, p)
}

// profilePUT saves the profile as-is. Partial profiles are allowed here;
// completeness is enforced when a plan is requested.
func (app *application) profilePUT(w http.ResponseWriter, r *http.Request) {
	var p profile.Profile
	if err := readJSON(r, &p); err != nil {
		app.clientError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	if p.ActivityLevel != "" && !p.ActivityLevel.Valid() {
		app.clientError(w, r, http.StatusBadRequest, "unknown activity level")
		return
	}
	if p.FitnessGoal != "" && !p.FitnessGoal.Valid() {
		app.clientError(w, r, http.StatusBadRequest, "unknown fitness goal")
		return
	}

	if err := app.profileService.Save(r.Context(), p); err != nil {
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, p)
}
