package server

import (
	"net/http"

	"github.com/Daskott/dogcare/server/flash"
	"github.com/Daskott/dogcare/server/views"
	"github.com/gorilla/mux"
)

type handler struct {
	views   *views.Renderer
	flashes *flash.Store
}

func newRouter(secretKey string) (*mux.Router, error) {
	renderer, err := views.New()
	if err != nil {
		return nil, err
	}

	h := &handler{views: renderer, flashes: flash.NewStore(secretKey)}

	router := mux.NewRouter()
	router.Use(loggingMiddleware, recoverMiddleware(h))

	router.HandleFunc("/", h.index).Methods(http.MethodGet)
	router.HandleFunc("/login", h.loginForm).Methods(http.MethodGet)
	router.HandleFunc("/login", h.logIn).Methods(http.MethodPost)
	router.HandleFunc("/signup", h.signupForm).Methods(http.MethodGet)
	router.HandleFunc("/signup", h.signUp).Methods(http.MethodPost)

	router.HandleFunc("/caretaker_dashboard", h.caretakerDashboard).Methods(http.MethodGet)
	router.HandleFunc("/add_dog", h.addDog).Methods(http.MethodPost)
	router.HandleFunc("/update_dog/{dog_id:[0-9]+}", h.updateDogForm).Methods(http.MethodGet)
	router.HandleFunc("/update_dog/{dog_id:[0-9]+}", h.updateDog).Methods(http.MethodPost)

	router.HandleFunc("/customer_dashboard/{phone_number}", h.customerDashboard).Methods(http.MethodGet)

	router.HandleFunc("/boarding_form", h.boardingForm).Methods(http.MethodGet)
	router.HandleFunc("/boarding_form", h.submitBoardingForm).Methods(http.MethodPost)

	// mux skips middlewares for unmatched routes, so wrap these directly
	router.NotFoundHandler = loggingMiddleware(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		h.renderError(rw, r, http.StatusNotFound, "Page not found")
	}))
	router.MethodNotAllowedHandler = loggingMiddleware(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		h.renderError(rw, r, http.StatusMethodNotAllowed, "Method not allowed")
	}))

	return router, nil
}
