package http

import (
	"net/http"

	"dental-clinic-portal/internal/delivery/http/handler"
	"dental-clinic-portal/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	authHandler         *handler.AuthHandler
	userHandler         *handler.UserHandler
	patientHandler      *handler.PatientHandler
	dentistHandler      *handler.DentistHandler
	appointmentHandler  *handler.AppointmentHandler
	availabilityHandler *handler.AvailabilityHandler
	billingHandler      *handler.BillingHandler
	insuranceHandler    *handler.InsuranceHandler
	reportHandler       *handler.ReportHandler
	notificationHandler *handler.NotificationHandler
	feedbackHandler     *handler.FeedbackHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
	rateLimitMiddleware *middleware.RateLimitMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	patientHandler *handler.PatientHandler,
	dentistHandler *handler.DentistHandler,
	appointmentHandler *handler.AppointmentHandler,
	availabilityHandler *handler.AvailabilityHandler,
	billingHandler *handler.BillingHandler,
	insuranceHandler *handler.InsuranceHandler,
	reportHandler *handler.ReportHandler,
	notificationHandler *handler.NotificationHandler,
	feedbackHandler *handler.FeedbackHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	rateLimitMiddleware *middleware.RateLimitMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		authHandler:         authHandler,
		userHandler:         userHandler,
		patientHandler:      patientHandler,
		dentistHandler:      dentistHandler,
		appointmentHandler:  appointmentHandler,
		availabilityHandler: availabilityHandler,
		billingHandler:      billingHandler,
		insuranceHandler:    insuranceHandler,
		reportHandler:       reportHandler,
		notificationHandler: notificationHandler,
		feedbackHandler:     feedbackHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
		rateLimitMiddleware: rateLimitMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public, throttled against credential guessing)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.Use(r.rateLimitMiddleware.Handle)
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/token", r.authHandler.Login).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)

	// Current account
	me := api.PathPrefix("/user").Subrouter()
	me.Use(r.authMiddleware.Authenticate)
	me.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Account management by id (admin only)
	users := api.PathPrefix("/user").Subrouter()
	users.Use(r.authMiddleware.Authenticate)
	users.Use(middleware.RequireAdmin)
	users.HandleFunc("/{id}", r.userHandler.GetUser).Methods(http.MethodGet)
	users.HandleFunc("/{id}", r.userHandler.UpdateUser).Methods(http.MethodPut)
	users.HandleFunc("/{id}", r.userHandler.DeleteUser).Methods(http.MethodDelete)

	// Everything below requires a valid token
	protected := api.PathPrefix("").Subrouter()
	protected.Use(r.authMiddleware.Authenticate)

	// Patients
	protected.HandleFunc("/patients", r.patientHandler.CreatePatient).Methods(http.MethodPost)
	protected.HandleFunc("/patients/{id}", r.patientHandler.GetPatient).Methods(http.MethodGet)
	protected.HandleFunc("/patients/{id}", r.patientHandler.UpdatePatient).Methods(http.MethodPut)
	protected.HandleFunc("/patients/{id}", r.patientHandler.DeletePatient).Methods(http.MethodDelete)
	protected.HandleFunc("/patients/{id}/appointments", r.appointmentHandler.GetAppointmentsByPatient).Methods(http.MethodGet)

	// Dentists
	protected.HandleFunc("/dentists", r.dentistHandler.CreateDentist).Methods(http.MethodPost)
	protected.HandleFunc("/dentists/{id}", r.dentistHandler.GetDentist).Methods(http.MethodGet)
	protected.HandleFunc("/dentists/{id}", r.dentistHandler.UpdateDentist).Methods(http.MethodPut)
	protected.HandleFunc("/dentists/{id}", r.dentistHandler.DeleteDentist).Methods(http.MethodDelete)

	// Appointments
	protected.HandleFunc("/appointments", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{id}", r.appointmentHandler.GetAppointment).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id}", r.appointmentHandler.UpdateAppointment).Methods(http.MethodPut)
	protected.HandleFunc("/appointments/{id}", r.appointmentHandler.DeleteAppointment).Methods(http.MethodDelete)

	// Availability
	protected.HandleFunc("/availability", r.availabilityHandler.CreateAvailability).Methods(http.MethodPost)
	protected.HandleFunc("/availability/dentist/{dentistId}", r.availabilityHandler.GetAvailabilityByDentist).Methods(http.MethodGet)
	protected.HandleFunc("/availability/{id}", r.availabilityHandler.UpdateAvailability).Methods(http.MethodPut)
	protected.HandleFunc("/availability/{id}", r.availabilityHandler.DeleteAvailability).Methods(http.MethodDelete)

	// Billing
	protected.HandleFunc("/billing", r.billingHandler.CreateBilling).Methods(http.MethodPost)
	protected.HandleFunc("/billing/patient/{patientId}", r.billingHandler.GetBillingByPatient).Methods(http.MethodGet)
	protected.HandleFunc("/billing/{id}", r.billingHandler.GetBilling).Methods(http.MethodGet)
	protected.HandleFunc("/billing/{id}", r.billingHandler.UpdateBilling).Methods(http.MethodPut)
	protected.HandleFunc("/billing/{id}", r.billingHandler.DeleteBilling).Methods(http.MethodDelete)

	// Insurances
	protected.HandleFunc("/insurances", r.insuranceHandler.CreateInsurance).Methods(http.MethodPost)
	protected.HandleFunc("/insurances/{id}", r.insuranceHandler.GetInsurance).Methods(http.MethodGet)
	protected.HandleFunc("/insurances/{id}", r.insuranceHandler.UpdateInsurance).Methods(http.MethodPut)
	protected.HandleFunc("/insurances/{id}", r.insuranceHandler.DeleteInsurance).Methods(http.MethodDelete)

	// Reports
	protected.HandleFunc("/reports", r.reportHandler.CreateReport).Methods(http.MethodPost)
	protected.HandleFunc("/reports/{id}", r.reportHandler.GetReport).Methods(http.MethodGet)
	protected.HandleFunc("/reports/{id}", r.reportHandler.UpdateReport).Methods(http.MethodPut)
	protected.HandleFunc("/reports/{id}", r.reportHandler.DeleteReport).Methods(http.MethodDelete)

	// Notifications
	protected.HandleFunc("/notifications", r.notificationHandler.CreateNotification).Methods(http.MethodPost)
	protected.HandleFunc("/notifications/{id}", r.notificationHandler.GetNotification).Methods(http.MethodGet)
	protected.HandleFunc("/notifications/{id}", r.notificationHandler.UpdateNotification).Methods(http.MethodPut)
	protected.HandleFunc("/notifications/{id}", r.notificationHandler.DeleteNotification).Methods(http.MethodDelete)

	// Feedback
	protected.HandleFunc("/feedback", r.feedbackHandler.CreateFeedback).Methods(http.MethodPost)
	protected.HandleFunc("/feedback", r.feedbackHandler.ListFeedback).Methods(http.MethodGet)
	protected.HandleFunc("/feedback/{id}", r.feedbackHandler.GetFeedback).Methods(http.MethodGet)
	protected.HandleFunc("/feedback/{id}", r.feedbackHandler.UpdateFeedback).Methods(http.MethodPut)
	protected.HandleFunc("/feedback/{id}", r.feedbackHandler.DeleteFeedback).Methods(http.MethodDelete)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
