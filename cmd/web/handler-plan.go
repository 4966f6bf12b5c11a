package main

import (
	"bytes"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/yuin/goldmark"

	"github.com/fitweek/fitweek/internal/errors"
	"github.com/fitweek/fitweek/internal/plan"
	"github.com/fitweek/fitweek/internal/profile"
)

type planResponse struct {
	Plan     *plan.WeeklyPlan `json:"plan"`
	Warnings []string         `json:"warnings"`
}

func (app *application) planGET(w http.ResponseWriter, r *http.Request) {
	weeklyPlan, warnings, err := app.planService.Current(r.Context())
	if errors.Is(err, plan.ErrNotFound) {
		app.clientError(w, r, http.StatusNotFound, "no plan generated for this week")
		return
	}
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, planResponse{Plan: weeklyPlan, Warnings: warnings})
}

func (app *application) planGeneratePOST(w http.ResponseWriter, r *http.Request) {
	weeklyPlan, warnings, err := app.planService.Generate(r.Context())

	var consistencyErr *plan.ConsistencyError
	switch {
	case err == nil:
	case errors.Is(err, profile.ErrMissingFields):
		app.clientError(w, r, http.StatusUnprocessableEntity, err.Error())
		return
	case errors.Is(err, plan.ErrGenerationUnavailable):
		app.clientError(w, r, http.StatusServiceUnavailable, "plan generation is not configured")
		return
	case errors.As(err, &consistencyErr), errors.Is(err, plan.ErrEmptyCompletion):
		// The completion service broke the output contract.
		app.logger.LogAttrs(r.Context(), slog.LevelError, "generation contract violation", errors.SlogError(err))
		app.clientError(w, r, http.StatusBadGateway, "plan generation failed, please try again")
		return
	default:
		app.serverError(w, r, err)
		return
	}

	app.writeJSON(w, r, http.StatusOK, planResponse{Plan: weeklyPlan, Warnings: warnings})
}

type exerciseInfoResponse struct {
	Entry     plan.ExerciseEntry `json:"entry"`
	NotesHTML string             `json:"notesHtml"`
}

// exerciseInfoGET returns one plan entry with its notes rendered from
// markdown to HTML.
func (app *application) exerciseInfoGET(w http.ResponseWriter, r *http.Request) {
	weeklyPlan, _, err := app.planService.Current(r.Context())
	if errors.Is(err, plan.ErrNotFound) {
		app.clientError(w, r, http.StatusNotFound, "no plan generated for this week")
		return
	}
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	entries, ok := weeklyPlan.Day(r.PathValue("day"))
	if !ok {
		app.clientError(w, r, http.StatusNotFound, "unknown weekday")
		return
	}
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil || index < 0 || index >= len(entries) {
		app.clientError(w, r, http.StatusNotFound, "no such exercise entry")
		return
	}
	entry := entries[index]

	var notesHTML bytes.Buffer
	if err = goldmark.Convert([]byte(entry.Notes), &notesHTML); err != nil {
		app.serverError(w, r, errors.Wrap(err, "render exercise notes"))
		return
	}

	app.writeJSON(w, r, http.StatusOK, exerciseInfoResponse{
		Entry:     entry,
		NotesHTML: notesHTML.String(),
	})
}
