package mw

import (
	"encoding/json"
	"net/http"

	"github.com/MrSnakeDoc/backoffice/internal/domain"
)

// WriteMessage answers with a {"message": ...} JSON body.
func WriteMessage(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(domain.MessageResponse{Message: msg})
}
