package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"github.com/landtekbiz/treetek-backend/config"
	"github.com/landtekbiz/treetek-backend/models"
)

// RequestsHandler serves the admin view of quote submissions. Read-only:
// there is no mutation path for this entity.
type RequestsHandler struct {
	db *gorm.DB
}

func NewRequestsHandler() *RequestsHandler {
	return &RequestsHandler{db: config.DB}
}

// List returns every submission, most recent first.
func (h *RequestsHandler) List(w http.ResponseWriter, r *http.Request) {
	var requests []models.ServiceRequest
	if err := h.db.Order("created_at DESC").Find(&requests).Error; err != nil {
		log.Printf("requests: fetch failed: %v", err)
		http.Error(w, "failed to fetch requests", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, requests)
}

var exportHeaders = []string{
	"Created", "Name", "Phone", "Email", "Address", "City", "ZIP",
	"Service Type", "Urgency", "Preferred Date", "Description", "Photos",
}

// Export streams every submission as an .xlsx download.
func (h *RequestsHandler) Export(w http.ResponseWriter, r *http.Request) {
	var requests []models.ServiceRequest
	if err := h.db.Order("created_at DESC").Find(&requests).Error; err != nil {
		log.Printf("requests: export fetch failed: %v", err)
		http.Error(w, "failed to fetch requests", http.StatusInternalServerError)
		return
	}

	file, err := buildRequestsWorkbook(requests)
	if err != nil {
		log.Printf("requests: workbook build failed: %v", err)
		http.Error(w, "failed to generate Excel file", http.StatusInternalServerError)
		return
	}

	buffer, err := file.WriteToBuffer()
	if err != nil {
		http.Error(w, "failed to write Excel file", http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("service_requests_%s.xlsx", time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", buffer.Len()))

	w.WriteHeader(http.StatusOK)
	w.Write(buffer.Bytes())
}

func buildRequestsWorkbook(requests []models.ServiceRequest) (*excelize.File, error) {
	f := excelize.NewFile()
	const sheet = "Service Requests"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	for col, header := range exportHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}

	for row, req := range requests {
		preferred := ""
		if req.PreferredDate != nil {
			preferred = req.PreferredDate.Format("2006-01-02")
		}
		values := []interface{}{
			req.CreatedAt.Format(time.RFC3339),
			req.Name, req.Phone, req.Email,
			req.Address, req.City, req.Zip,
			req.ServiceType, req.Urgency, preferred,
			req.Description, strings.Join(req.Photos, "\n"),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}
