package http

import (
	"net/http"

	"eldercare-api/internal/delivery/http/handler"
	"eldercare-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router          *mux.Router
	authHandler     *handler.AuthHandler
	doctorHandler   *handler.DoctorHandler
	hospitalHandler *handler.HospitalHandler
	calendarHandler *handler.CalendarHandler
	bookingHandler  *handler.BookingHandler
	favoriteHandler *handler.FavoriteHandler
	authMiddleware  *middleware.AuthMiddleware
	corsMiddleware  *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	doctorHandler *handler.DoctorHandler,
	hospitalHandler *handler.HospitalHandler,
	calendarHandler *handler.CalendarHandler,
	bookingHandler *handler.BookingHandler,
	favoriteHandler *handler.FavoriteHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:          mux.NewRouter(),
		authHandler:     authHandler,
		doctorHandler:   doctorHandler,
		hospitalHandler: hospitalHandler,
		calendarHandler: calendarHandler,
		bookingHandler:  bookingHandler,
		favoriteHandler: favoriteHandler,
		authMiddleware:  authMiddleware,
		corsMiddleware:  corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/forgot-password", r.authHandler.ForgotPassword).Methods(http.MethodPost)
	auth.HandleFunc("/verify-otp", r.authHandler.VerifyOTP).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Catalog routes (public)
	api.HandleFunc("/doctors", r.doctorHandler.ListDoctors).Methods(http.MethodGet)
	api.HandleFunc("/doctors/specialties", r.doctorHandler.ListSpecialties).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)
	api.HandleFunc("/hospitals", r.hospitalHandler.ListHospitals).Methods(http.MethodGet)
	api.HandleFunc("/hospitals/nearby", r.hospitalHandler.NearbyHospitals).Methods(http.MethodGet)
	api.HandleFunc("/hospitals/{id}", r.hospitalHandler.GetHospital).Methods(http.MethodGet)

	// Appointment picker (public)
	api.HandleFunc("/calendar/{year}/{month}", r.calendarHandler.GetMonthGrid).Methods(http.MethodGet)
	api.HandleFunc("/time-slots", r.calendarHandler.GetTimeSlots).Methods(http.MethodGet)

	// Booking routes (protected)
	bookings := api.PathPrefix("/bookings").Subrouter()
	bookings.Use(r.authMiddleware.Authenticate)
	bookings.HandleFunc("", r.bookingHandler.CreateBooking).Methods(http.MethodPost)
	bookings.HandleFunc("", r.bookingHandler.ListBookings).Methods(http.MethodGet)
	bookings.HandleFunc("/{id}", r.bookingHandler.GetBooking).Methods(http.MethodGet)
	bookings.HandleFunc("/{id}/cancel", r.bookingHandler.CancelBooking).Methods(http.MethodPost)
	bookings.HandleFunc("/{id}/complete", r.bookingHandler.CompleteBooking).Methods(http.MethodPost)
	bookings.HandleFunc("/{id}/review", r.bookingHandler.AddReview).Methods(http.MethodPost)

	// Favorite routes (protected)
	favorites := api.PathPrefix("/favorites").Subrouter()
	favorites.Use(r.authMiddleware.Authenticate)
	favorites.HandleFunc("/doctors", r.favoriteHandler.ListFavoriteDoctors).Methods(http.MethodGet)
	favorites.HandleFunc("/doctors", r.favoriteHandler.AddFavoriteDoctor).Methods(http.MethodPost)
	favorites.HandleFunc("/doctors/{id}", r.favoriteHandler.GetFavoriteDoctorStatus).Methods(http.MethodGet)
	favorites.HandleFunc("/doctors/{id}", r.favoriteHandler.RemoveFavoriteDoctor).Methods(http.MethodDelete)
	favorites.HandleFunc("/hospitals", r.favoriteHandler.ListFavoriteHospitals).Methods(http.MethodGet)
	favorites.HandleFunc("/hospitals", r.favoriteHandler.AddFavoriteHospital).Methods(http.MethodPost)
	favorites.HandleFunc("/hospitals/{id}", r.favoriteHandler.GetFavoriteHospitalStatus).Methods(http.MethodGet)
	favorites.HandleFunc("/hospitals/{id}", r.favoriteHandler.RemoveFavoriteHospital).Methods(http.MethodDelete)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
