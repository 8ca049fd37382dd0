package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"v8e.it/flotta/config"
	"v8e.it/flotta/models"
)

// ExportActivitiesToExcel exports the activities of a date range
// (?from=&to=, ISO dates, default: current month) as an xlsx download.
func ExportActivitiesToExcel(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local)
	to := from.AddDate(0, 1, -1)
	if v := r.URL.Query().Get("from"); v != "" {
		if t, err := time.ParseInLocation("2006-01-02", v, time.Local); err == nil {
			from = t
		}
	}
	if v := r.URL.Query().Get("to"); v != "" {
		if t, err := time.ParseInLocation("2006-01-02", v, time.Local); err == nil {
			to = t
		}
	}

	var activities []models.Activity
	err := config.DB.
		Preload("Resources.Driver").
		Preload("Resources.Vehicle").
		Preload("Client").
		Preload("Site").
		Where("start_at >= ? AND start_at < ?", from, to.AddDate(0, 0, 1)).
		Order("start_at").
		Find(&activities).Error
	if err != nil {
		http.Error(w, "failed to fetch activities", http.StatusInternalServerError)
		return
	}

	f := excelize.NewFile()
	sheet := "Attività"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Data", "Inizio", "Fine", "Stato", "Cliente", "Sede", "Autisti", "Veicoli", "Note"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, a := range activities {
		values := activityExportRow(a)
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	buffer, err := f.WriteToBuffer()
	if err != nil {
		http.Error(w, "Failed to generate Excel file", http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("attivita_%s_%s.xlsx", from.Format("20060102"), to.Format("20060102"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", buffer.Len()))

	w.WriteHeader(http.StatusOK)
	w.Write(buffer.Bytes())
}

func activityExportRow(a models.Activity) []interface{} {
	var date, start, end string
	if a.StartAt != nil {
		date = a.StartAt.Format("02/01/2006")
		start = a.StartAt.Format("15:04")
	}
	if a.EndAt != nil {
		end = a.EndAt.Format("15:04")
	}

	var client, site string
	if a.Client != nil {
		client = a.Client.RagioneSociale
	}
	if a.Site != nil {
		site = a.Site.Name
	}

	var drivers, vehicles []string
	for _, res := range a.Resources {
		if res.Driver != nil {
			drivers = append(drivers, res.Driver.Name)
		}
		if res.Vehicle != nil {
			vehicles = append(vehicles, res.Vehicle.Plate)
		}
	}

	return []interface{}{
		date, start, end, string(a.Status), client, site,
		strings.Join(drivers, ", "), strings.Join(vehicles, ", "), a.Notes,
	}
}
