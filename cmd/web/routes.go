package main

import (
	"net/http"

	"github.com/rs/cors"
)

func (app *application) routes(corsOrigin string) http.Handler {
	mux := http.NewServeMux()

	var (
		shared = func(next http.Handler) http.Handler {
			return app.logRequest(secureHeaders(commonContext(next)))
		}
		session = func(next http.Handler) http.Handler {
			return app.recoverPanic(noCache(app.sessionManager.LoadAndSave(
				app.authenticate(shared(next)))))
		}
		mustSession = func(next http.Handler) http.Handler {
			return session(app.mustAuthenticate(next))
		}
	)

	mux.Handle("POST /api/login", session(http.HandlerFunc(app.loginPOST)))
	mux.Handle("POST /api/logout", session(http.HandlerFunc(app.logoutPOST)))
	mux.Handle("GET /api/healthy", session(http.HandlerFunc(app.healthyGET)))

	mux.Handle("GET /api/profile", mustSession(http.HandlerFunc(app.profileGET)))
	mux.Handle("PUT /api/profile", mustSession(http.HandlerFunc(app.profilePUT)))

	mux.Handle("GET /api/plan", mustSession(http.HandlerFunc(app.planGET)))
	mux.Handle("POST /api/plan/generate", mustSession(http.HandlerFunc(app.planGeneratePOST)))
	mux.Handle("GET /api/plan/{day}/exercises/{index}/info",
		mustSession(http.HandlerFunc(app.exerciseInfoGET)))

	mux.Handle("GET /api/food", mustSession(http.HandlerFunc(app.foodGET)))
	mux.Handle("POST /api/food", mustSession(http.HandlerFunc(app.foodPOST)))
	mux.Handle("DELETE /api/food/{id}", mustSession(http.HandlerFunc(app.foodDELETE)))

	mux.Handle("GET /api/goals", mustSession(http.HandlerFunc(app.goalsGET)))
	mux.Handle("PUT /api/goals", mustSession(http.HandlerFunc(app.goalsPUT)))

	mux.Handle("GET /api/points", mustSession(http.HandlerFunc(app.pointsGET)))

	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins:   []string{corsOrigin},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	})
	return corsMiddleware.Handler(mux)
}
