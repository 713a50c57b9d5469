// handlers/officer.go
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"agromate_be/config"
	"agromate_be/models"
	"agromate_be/utils"
)

// OfficerRegistration creates an agricultural officer from a form-encoded
// body. Same duplicate-name check as farmer registration.
func OfficerRegistration(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondError(w, http.StatusBadRequest, "invalid form body")
		return
	}
	name := r.PostFormValue("name")

	var existing models.AgriOfficer
	err := config.DB.Where("name = ?", name).First(&existing).Error
	if err == nil {
		respondMessage(w, http.StatusConflict, "That Name already exists.")
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	officer := models.AgriOfficer{
		Name:     name,
		PhNumber: r.PostFormValue("ph_number"),
		Password: r.PostFormValue("password"),
	}
	if err := config.DB.Create(&officer).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondMessage(w, http.StatusCreated, "Registered")
}

// OfficerLogin answers only a message; officer ids are never handed to
// clients.
func OfficerLogin(w http.ResponseWriter, r *http.Request) {
	creds, err := utils.DecodeCredentials(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	var officer models.AgriOfficer
	if err := config.DB.Where("name = ? AND password = ?", creds.Name, creds.Password).First(&officer).Error; err != nil {
		respondMessage(w, http.StatusUnauthorized, "Incorrect Username or Password")
		return
	}
	respondMessage(w, http.StatusCreated, "Officer Login Succeeded!!")
}

type o2fProductionReq struct {
	Quantity *float64 `json:"quantity"`
	FarmerID uint     `json:"farmer_id"`
}

// AddO2FProduction buffers an officer-submitted production figure for a
// farmer.
func AddO2FProduction(w http.ResponseWriter, r *http.Request) {
	var req o2fProductionReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	var farmer models.Farmer
	if err := config.DB.Where("id = ?", req.FarmerID).First(&farmer).Error; err != nil {
		respondError(w, http.StatusNotFound, "Farmer not found")
		return
	}

	pending := models.O2FProduction{Quantity: req.Quantity, FarmerID: req.FarmerID}
	if err := config.DB.Create(&pending).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondMessage(w, http.StatusCreated, "Send successfully")
}

// GetO2FProduction fetches one buffered production figure. The lookup key
// is the row id, not the farmer id; kept verbatim from the observed
// contract. The 401 on a miss is likewise historical, not an auth failure.
func GetO2FProduction(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["farmer_id"]

	var pending models.O2FProduction
	if err := config.DB.Where("id = ?", id).First(&pending).Error; err != nil {
		respondMessage(w, http.StatusUnauthorized, "Error")
		return
	}
	respondJSON(w, http.StatusCreated, map[string]interface{}{"quantity": pending.Quantity})
}

type o2rResellDetailReq struct {
	Quantity   *float64 `json:"quantity"`
	Price      *string  `json:"price"`
	ResellerID uint     `json:"reseller_id"`
}

// AddO2RResellDetail buffers an officer-submitted resale figure for a
// reseller.
func AddO2RResellDetail(w http.ResponseWriter, r *http.Request) {
	var req o2rResellDetailReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	var reseller models.Reseller
	if err := config.DB.Where("id = ?", req.ResellerID).First(&reseller).Error; err != nil {
		respondError(w, http.StatusNotFound, "Reseller not found")
		return
	}

	pending := models.O2RResellDetail{Quantity: req.Quantity, Price: req.Price, ResellerID: req.ResellerID}
	if err := config.DB.Create(&pending).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondMessage(w, http.StatusCreated, "Send successfully")
}

// GetO2RResellDetail fetches the newest buffered resale figure for a
// reseller.
func GetO2RResellDetail(w http.ResponseWriter, r *http.Request) {
	resellerID := mux.Vars(r)["reseller_id"]

	var pending models.O2RResellDetail
	if err := config.DB.Where("reseller_id = ?", resellerID).Order("id DESC").First(&pending).Error; err != nil {
		respondMessage(w, http.StatusUnauthorized, "Error")
		return
	}
	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"quantity": pending.Quantity,
		"price":    pending.Price,
	})
}
