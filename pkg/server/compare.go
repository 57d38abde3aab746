package server

import (
	"encoding/json"
	"net/http"

	"github.com/vpack/vpack/pkg/serializer"
)

// handleCompare processes POST /v1/compare requests. Both operands are
// minted through full validation before the positional comparison runs,
// so mixed-schema operands order correctly without ever comparing raw
// encoded values.
func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		WriteError(w, r, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]interface{}{
				"method": r.Method,
			})
		return
	}

	var req CompareRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		WriteError(w, r, http.StatusBadRequest, ErrCodeInvalidRequest,
			"Invalid compare request body", false, map[string]interface{}{
				"error": err.Error(),
			})
		return
	}

	a, err := mintCode(req.A.Schema, req.A.Values)
	if err != nil {
		status, errCode := classifyError(err)
		WriteError(w, r, status, errCode,
			"Invalid left operand", false, map[string]interface{}{
				"error": err.Error(),
			})
		return
	}

	b, err := mintCode(req.B.Schema, req.B.Values)
	if err != nil {
		status, errCode := classifyError(err)
		WriteError(w, r, status, errCode,
			"Invalid right operand", false, map[string]interface{}{
				"error": err.Error(),
			})
		return
	}

	result := a.Compare(b)
	serializer.RespondJSON(w, http.StatusOK, CompareResponse{
		Result: result,
		Equal:  result == 0,
	})
}
