package server

import (
	"encoding/json"
	"net/http"

	"github.com/vpack/vpack/pkg/serializer"
	"github.com/vpack/vpack/pkg/vercode"
)

// maxRequestBody caps API request bodies. Version requests are tiny;
// anything larger is malformed or hostile.
const maxRequestBody = 1 << 20

// handleEncode processes POST /v1/encode requests end-to-end, ensuring
// structured error responses consistent with the rest of the server surface.
func (s *Server) handleEncode(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		WriteError(w, r, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]interface{}{
				"method": r.Method,
			})
		return
	}

	var req EncodeRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		WriteError(w, r, http.StatusBadRequest, ErrCodeInvalidRequest,
			"Invalid encode request body", false, map[string]interface{}{
				"error": err.Error(),
			})
		return
	}

	code, err := mintCode(req.Schema, req.Values)
	if err != nil {
		status, errCode := classifyError(err)
		WriteError(w, r, status, errCode,
			"Failed to encode version code", false, map[string]interface{}{
				"error": err.Error(),
			})
		return
	}

	serializer.RespondJSON(w, http.StatusOK, encodeResponse(code))
}

// mintCode validates the schema and mints a code from the value tuple.
func mintCode(specs []ComponentSpec, values []int64) (vercode.Code, error) {
	sch, err := buildSchema(specs)
	if err != nil {
		return vercode.Code{}, err
	}
	return vercode.New(sch).Create(values...)
}

func encodeResponse(code vercode.Code) EncodeResponse {
	components := code.Components()
	resp := EncodeResponse{
		Encoded:    code.EncodedValue(),
		Display:    code.String(),
		Components: make([]ComponentValue, 0, len(components)),
	}
	for _, c := range components {
		resp.TotalBits += c.Bits
		resp.Components = append(resp.Components, ComponentValue{
			Name:  c.Name,
			Bits:  c.Bits,
			Value: c.Value,
		})
	}
	return resp
}
