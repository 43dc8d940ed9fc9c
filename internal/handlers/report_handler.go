package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/abdullah-abacus/UDST-Lost-Found/internal/models"
	"github.com/abdullah-abacus/UDST-Lost-Found/internal/services"
)

type ReportHandler struct {
	Service *services.ReportService
}

type submitReportRequest struct {
	Description string            `json:"description"`
	Type        models.ReportType `json:"type"`
}

func (h *ReportHandler) SubmitReport(w http.ResponseWriter, r *http.Request) {
	caller, ok := models.IdentityFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Missing caller identity")
		return
	}

	var req submitReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}

	rep, err := h.Service.SubmitReport(r.Context(), caller, req.Description, req.Type)
	if err != nil {
		if errors.Is(err, models.ErrValidation) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		log.Printf("SubmitReport error: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to submit request: "+err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dataResponse{
		Success: true,
		Message: "Request submitted successfully",
		Data:    rep,
	})
}

func (h *ReportHandler) GetApprovedReports(w http.ResponseWriter, r *http.Request) {
	typeFilter := models.ReportType(r.URL.Query().Get("type"))

	reports, err := h.Service.ApprovedReports(r.Context(), typeFilter)
	if err != nil {
		if errors.Is(err, models.ErrValidation) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		log.Printf("GetApprovedReports error: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch requests: "+err.Error())
		return
	}
	writeReportList(w, reports)
}

func (h *ReportHandler) GetMyReports(w http.ResponseWriter, r *http.Request) {
	caller, ok := models.IdentityFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Missing caller identity")
		return
	}

	reports, err := h.Service.MyReports(r.Context(), caller)
	if err != nil {
		log.Printf("GetMyReports error: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch user requests: "+err.Error())
		return
	}
	writeReportList(w, reports)
}

func (h *ReportHandler) UpdateReportStatus(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get(":id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "Invalid report ID")
		return
	}
	status := models.ReportStatus(r.URL.Query().Get("status"))

	rep, err := h.Service.UpdateStatus(r.Context(), id, status)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrValidation):
			writeError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, models.ErrReportNotFound):
			writeError(w, http.StatusNotFound, fmt.Sprintf("Request with ID %d not found", id))
		default:
			log.Printf("UpdateReportStatus error: %v", err)
			writeError(w, http.StatusInternalServerError, "Failed to update status: "+err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, dataResponse{
		Success: true,
		Message: fmt.Sprintf("Request status updated to '%s' successfully", status),
		Data:    rep,
	})
}

func writeReportList(w http.ResponseWriter, reports []models.Report) {
	if reports == nil {
		reports = []models.Report{}
	}
	writeJSON(w, http.StatusOK, listResponse{
		Success: true,
		Count:   len(reports),
		Data:    reports,
	})
}
