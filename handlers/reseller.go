// handlers/reseller.go
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

// ResellerRegistration creates a reseller from a form-encoded body. The
// duplicate answer is 409 like the other roles.
func ResellerRegistration(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondError(w, http.StatusBadRequest, "invalid form body")
		return
	}
	name := r.PostFormValue("name")

	var existing models.Reseller
	err := config.DB.Where("name = ?", name).First(&existing).Error
	if err == nil {
		respondMessage(w, http.StatusConflict, "That Name already exists.")
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	reseller := models.Reseller{
		Name:           name,
		PhNumber:       r.PostFormValue("ph_number"),
		Password:       r.PostFormValue("password"),
		EconomicCentre: r.PostFormValue("economic_centre"),
	}
	if err := config.DB.Create(&reseller).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondMessage(w, http.StatusCreated, "Registered")
}

func ResellerLogin(w http.ResponseWriter, r *http.Request) {
	creds, err := utils.DecodeCredentials(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	var reseller models.Reseller
	if err := config.DB.Where("name = ? AND password = ?", creds.Name, creds.Password).First(&reseller).Error; err != nil {
		respondMessage(w, http.StatusUnauthorized, "Incorrect Username or Password")
		return
	}
	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Reseller Login Succeeded!!",
		"id":      reseller.ID,
	})
}

type addResellDetailReq struct {
	Date     string   `json:"date"`
	Quantity *float64 `json:"quantity"`
	Price    *string  `json:"price"`
}

// AddResellDetail appends a resale entry to a reseller's ledger.
func AddResellDetail(w http.ResponseWriter, r *http.Request) {
	resellerID := mux.Vars(r)["reseller_id"]

	var reseller models.Reseller
	if err := config.DB.Where("id = ?", resellerID).First(&reseller).Error; err != nil {
		respondError(w, http.StatusNotFound, "Reseller not found")
		return
	}

	var req addResellDetailReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	date, err := models.ParseDate(req.Date)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid date format, use YYYY-MM-DD")
		return
	}

	detail := models.ResellDetail{Date: &date, Quantity: req.Quantity, Price: req.Price, ResellerID: reseller.ID}
	if err := config.DB.Create(&detail).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, map[string]string{"success": "Production added successfully"})
}

// GetResellDetails returns a reseller's full resale ledger along with the
// reseller's name.
func GetResellDetails(w http.ResponseWriter, r *http.Request) {
	resellerID := mux.Vars(r)["reseller_id"]

	var details []models.ResellDetail
	if err := config.DB.Where("reseller_id = ?", resellerID).Find(&details).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	result := models.DumpResellDetails(details)

	var reseller models.Reseller
	if err := config.DB.Where("id = ?", resellerID).First(&reseller).Error; err != nil {
		// Historical fallback for unknown resellers; kept verbatim.
		respondMessage(w, http.StatusOK, "Reseller Login Succeeded!!")
		return
	}
	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"result": result,
		"name":   reseller.Name,
	})
}
