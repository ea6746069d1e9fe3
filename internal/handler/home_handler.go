package handlers

import (
	"fmt"
	"net/http"
)

// HomeHandler - текстовая строка состояния, удобно для проверки, что сервер жив
func (h *Handlers) HomeHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "Simple web server of photo app, database: %s\n", h.Cfg.DB.DbNAME)
}
