package main

import (
	"database/sql"
	"errors"
	"net/http"
	"strings"
)

type loginRequest struct {
	DisplayName string `json:"displayName"`
}

type loginResponse struct {
	UserID      int    `json:"userId"`
	DisplayName string `json:"displayName"`
}

// loginPOST signs the user in by display name, creating the account on first
// login.
func (app *application) loginPOST(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := readJSON(r, &req); err != nil {
		app.clientError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	req.DisplayName = strings.TrimSpace(req.DisplayName)
	if req.DisplayName == "" {
		app.clientError(w, r, http.StatusBadRequest, "displayName is required")
		return
	}

	ctx := r.Context()
	var userID int
	err := app.db.ReadOnly.QueryRowContext(ctx,
		"SELECT id FROM users WHERE display_name = ?", req.DisplayName).Scan(&userID)
	if errors.Is(err, sql.ErrNoRows) {
		var result sql.Result
		if result, err = app.db.ReadWrite.ExecContext(ctx,
			"INSERT INTO users (display_name) VALUES (?)", req.DisplayName); err == nil {
			var id int64
			if id, err = result.LastInsertId(); err == nil {
				userID = int(id)
			}
		}
	}
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	// Renew the token on privilege change to prevent session fixation.
	if err = app.sessionManager.RenewToken(ctx); err != nil {
		app.serverError(w, r, err)
		return
	}
	app.sessionManager.Put(ctx, sessionKeyUserID, userID)

	app.writeJSON(w, r, http.StatusOK, loginResponse{
		UserID:      userID,
		DisplayName: req.DisplayName,
	})
}

func (app *application) logoutPOST(w http.ResponseWriter, r *http.Request) {
	if err := app.sessionManager.Destroy(r.Context()); err != nil {
		app.serverError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (app *application) healthyGET(w http.ResponseWriter, r *http.Request) {
	app.writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}
