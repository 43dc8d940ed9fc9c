package handlers

import (
	"log"
	"net/http"

	"github.com/abdullah-abacus/UDST-Lost-Found/internal/services"
)

type SetupHandler struct {
	Service *services.ReportService
}

// CreateTable drops and recreates the reports table. Destructive and
// unauthenticated, matching the original setup endpoint.
func (h *SetupHandler) CreateTable(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.CreateSchema(r.Context()); err != nil {
		log.Printf("CreateTable error: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to create table: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, dataResponse{
		Success: true,
		Message: "Table created successfully",
	})
}
