// handlers/farmer.go
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

// Home answers the liveness probe.
func Home(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("AgroMate is Online"))
}

// FarmerRegistration creates a farmer from a form-encoded body. The name
// check and the insert are two separate statements; two concurrent
// registrations with the same name can both pass the check. Accepted as-is,
// matching the observed service behavior.
func FarmerRegistration(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondError(w, http.StatusBadRequest, "invalid form body")
		return
	}
	name := r.PostFormValue("name")

	var existing models.Farmer
	err := config.DB.Where("name = ?", name).First(&existing).Error
	if err == nil {
		respondMessage(w, http.StatusConflict, "That Name already exists.")
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	farmer := models.Farmer{
		Name:     name,
		Area:     r.PostFormValue("area"),
		PhNumber: r.PostFormValue("ph_number"),
		Status:   r.PostFormValue("status"),
		Password: r.PostFormValue("password"),
	}
	if err := config.DB.Create(&farmer).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondMessage(w, http.StatusOK, "Registered")
}

// FarmerLogin checks name and password by exact equality. Unknown name and
// wrong password answer the same message so callers cannot probe for
// registered names.
func FarmerLogin(w http.ResponseWriter, r *http.Request) {
	creds, err := utils.DecodeCredentials(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	var farmer models.Farmer
	if err := config.DB.Where("name = ? AND password = ?", creds.Name, creds.Password).First(&farmer).Error; err != nil {
		respondMessage(w, http.StatusUnauthorized, "Incorrect Username or Password")
		return
	}
	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Farmer Login Succeeded!!",
		"id":      farmer.ID,
	})
}

// GetFarmers lists every farmer with the most recent entry of their
// production ledger attached, or null when the ledger is empty.
func GetFarmers(w http.ResponseWriter, r *http.Request) {
	var farmers []models.Farmer
	if err := config.DB.Find(&farmers).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	result := make([]models.FarmerListEntry, 0, len(farmers))
	for _, farmer := range farmers {
		entry := models.FarmerListEntry{FarmerSchema: models.DumpFarmer(farmer)}

		var last models.Production
		err := config.DB.Where("farmer_id = ?", farmer.ID).Order("date DESC").First(&last).Error
		if err == nil {
			schema := models.DumpProduction(last)
			entry.LastProduction = &schema
		}
		result = append(result, entry)
	}
	respondJSON(w, http.StatusOK, result)
}

// GetFarmer returns the name and status of one farmer. The contract has no
// existence check here; an unknown id answers a 500 error instead of
// killing the request.
func GetFarmer(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var farmer models.Farmer
	if err := config.DB.Where("id = ?", id).First(&farmer).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{
		"name":   farmer.Name,
		"status": farmer.Status,
	})
}

type addProductionReq struct {
	Date     string   `json:"date"`
	Quantity *float64 `json:"quantity"`
}

// AddProduction appends a harvest-weight entry to a farmer's ledger.
func AddProduction(w http.ResponseWriter, r *http.Request) {
	farmerID := mux.Vars(r)["farmer_id"]

	var farmer models.Farmer
	if err := config.DB.Where("id = ?", farmerID).First(&farmer).Error; err != nil {
		respondError(w, http.StatusNotFound, "Farmer not found")
		return
	}

	var req addProductionReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	date, err := models.ParseDate(req.Date)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid date format, use YYYY-MM-DD")
		return
	}

	production := models.Production{Date: &date, Quantity: req.Quantity, FarmerID: farmer.ID}
	if err := config.DB.Create(&production).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, map[string]string{"success": "Production added successfully"})
}

// GetProductions returns a farmer's full production ledger along with the
// farmer's name.
func GetProductions(w http.ResponseWriter, r *http.Request) {
	farmerID := mux.Vars(r)["farmer_id"]

	var productions []models.Production
	if err := config.DB.Where("farmer_id = ?", farmerID).Find(&productions).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	result := models.DumpProductions(productions)

	var farmer models.Farmer
	if err := config.DB.Where("id = ?", farmerID).First(&farmer).Error; err != nil {
		// Historical fallback for unknown farmers; kept verbatim.
		respondMessage(w, http.StatusOK, "Farmer Login Succeeded!!")
		return
	}
	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"result": result,
		"name":   farmer.Name,
	})
}

type updateStatusReq struct {
	Status string `json:"status"`
}

// UpdateFarmerStatus overwrites a farmer's lifecycle label. The label is
// free text; no transition rules apply.
func UpdateFarmerStatus(w http.ResponseWriter, r *http.Request) {
	farmerID := mux.Vars(r)["farmer_id"]

	var req updateStatusReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	var farmer models.Farmer
	if err := config.DB.Where("id = ?", farmerID).First(&farmer).Error; err != nil {
		respondError(w, http.StatusNotFound, "Farmer not found")
		return
	}

	farmer.Status = req.Status
	if err := config.DB.Save(&farmer).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondMessage(w, http.StatusOK, "Farmer status updated successfully")
}
