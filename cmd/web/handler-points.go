package main

import "net/http"

func (app *application) pointsGET(w http.ResponseWriter, r *http.Request) {
	record, err := app.pointsService.Get(r.Context())
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, record)
}
