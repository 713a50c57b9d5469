// handlers/export.go
package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/xuri/excelize/v2"

	"agromate_be/config"
	"agromate_be/models"
)

// ExportProductions exports every farmer's production ledger as a
// spreadsheet download, one row per ledger entry.
func ExportProductions(w http.ResponseWriter, r *http.Request) {
	var farmers []models.Farmer
	if err := config.DB.Preload("Productions").Find(&farmers).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Productions"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Farmer", "Area", "Status", "Date", "Quantity"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, farmer := range farmers {
		for _, p := range farmer.Productions {
			f.SetCellValue(sheet, fmt.Sprintf("A%d", row), farmer.Name)
			f.SetCellValue(sheet, fmt.Sprintf("B%d", row), farmer.Area)
			f.SetCellValue(sheet, fmt.Sprintf("C%d", row), farmer.Status)
			if p.Date != nil {
				f.SetCellValue(sheet, fmt.Sprintf("D%d", row), p.Date.String())
			}
			if p.Quantity != nil {
				f.SetCellValue(sheet, fmt.Sprintf("E%d", row), *p.Quantity)
			}
			row++
		}
	}

	buffer, err := f.WriteToBuffer()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to write Excel file")
		return
	}

	filename := fmt.Sprintf("productions_%s.xlsx", time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", buffer.Len()))
	w.WriteHeader(http.StatusOK)
	w.Write(buffer.Bytes())
}
