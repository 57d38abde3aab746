package server

import (
	"net/http"

	"github.com/vpack/vpack/pkg/semver"
	"github.com/vpack/vpack/pkg/serializer"
)

// handleSemver processes GET /v1/semver?version=X.Y.Z requests.
func (s *Server) handleSemver(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		WriteError(w, r, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]interface{}{
				"method": r.Method,
			})
		return
	}

	raw := r.URL.Query().Get("version")
	if raw == "" {
		WriteError(w, r, http.StatusBadRequest, ErrCodeInvalidRequest,
			"Missing required query parameter: version", false, nil)
		return
	}

	v, err := semver.Parse(raw)
	if err != nil {
		status, errCode := classifyError(err)
		WriteError(w, r, status, errCode,
			"Invalid semantic version", false, map[string]interface{}{
				"version": raw,
				"error":   err.Error(),
			})
		return
	}

	serializer.RespondJSON(w, http.StatusOK, SemverResponse{
		Version: v.String(),
		Encoded: v.EncodedValue(),
		Display: v.Describe(),
		Major:   v.Major(),
		Minor:   v.Minor(),
		Patch:   v.Patch(),
	})
}
