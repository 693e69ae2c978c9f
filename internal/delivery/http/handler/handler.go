package handler

import (
	"net/http"
	"strconv"

	"dental-clinic-portal/pkg/response"

	"github.com/gorilla/mux"
)

// parseIDParam reads a numeric path variable. A non-numeric value writes a
// 422 and returns false; the caller should bail out.
func parseIDParam(w http.ResponseWriter, r *http.Request, name string) (uint, bool) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		response.UnprocessableEntity(w, "Invalid "+name+" parameter")
		return 0, false
	}
	return uint(id), true
}
