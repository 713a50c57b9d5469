package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"agromate_be/handlers"
	"agromate_be/pkg/forecast"
)

// RegisterRoutes sets up all application routes.
func RegisterRoutes(model *forecast.Model) http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/", handlers.Home).Methods("GET")

	// Farmer
	r.HandleFunc("/farmers", handlers.GetFarmers).Methods("GET")
	r.HandleFunc("/farmer/registration", handlers.FarmerRegistration).Methods("POST")
	r.HandleFunc("/farmer/login", handlers.FarmerLogin).Methods("POST")
	r.HandleFunc("/farmer/{id}", handlers.GetFarmer).Methods("GET")
	r.HandleFunc("/farmers/{farmer_id}/productions", handlers.AddProduction).Methods("POST")
	r.HandleFunc("/production/{farmer_id}", handlers.GetProductions).Methods("GET")
	r.HandleFunc("/update_farmers_status/{farmer_id}", handlers.UpdateFarmerStatus).Methods("PUT")

	// Agricultural officer
	r.HandleFunc("/agriofficer/registration", handlers.OfficerRegistration).Methods("POST")
	r.HandleFunc("/agriofficer/login", handlers.OfficerLogin).Methods("POST")
	r.HandleFunc("/o2f_production/add", handlers.AddO2FProduction).Methods("POST")
	r.HandleFunc("/o2fProduction/{farmer_id}", handlers.GetO2FProduction).Methods("GET")
	r.HandleFunc("/o2r_resell_detail/add", handlers.AddO2RResellDetail).Methods("POST")
	r.HandleFunc("/o2r/{reseller_id}", handlers.GetO2RResellDetail).Methods("GET")

	// Reseller
	r.HandleFunc("/reseller/registration", handlers.ResellerRegistration).Methods("POST")
	r.HandleFunc("/reseller/login", handlers.ResellerLogin).Methods("POST")
	r.HandleFunc("/reseller/{reseller_id}/resellDetail", handlers.AddResellDetail).Methods("POST")
	r.HandleFunc("/reseller/reselldetail/{reseller_id}", handlers.GetResellDetails).Methods("GET")

	// Forecast
	r.HandleFunc("/predict", handlers.Predict(model)).Methods("POST")

	// Reporting
	r.HandleFunc("/export/productions", handlers.ExportProductions).Methods("GET")

	return r
}
