package handlers

import "net/http"

const apiVersion = "1.0.0"

// APIInfo is the unauthenticated liveness endpoint.
func APIInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Lost & Found API is running",
		"version": apiVersion,
		"endpoints": map[string]string{
			"submit":             "/api/v1/lost-found/submit",
			"all_requests":       "/api/v1/lost-found/all",
			"my_requests":        "/api/v1/lost-found/my-requests",
			"update_status":      "/api/v1/admin/update-status/:id",
			"generate_token":     "/api/v1/auth/generate-test-token",
			"setup_create_table": "/api/v1/setup/create-table",
		},
	})
}
