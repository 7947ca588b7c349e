package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/Harshitk-cp/mindshift/internal/domain"
)

// Transformer is the transformation client used by the JSON API.
type Transformer interface {
	Transform(ctx context.Context, limitingBelief string) (*domain.TransformedBeliefs, error)
}

type TransformHandler struct {
	svc Transformer
}

func NewTransformHandler(svc Transformer) *TransformHandler {
	return &TransformHandler{svc: svc}
}

type transformRequest struct {
	LimitingBelief string `json:"limiting_belief"`
}

func (h *TransformHandler) Transform(w http.ResponseWriter, r *http.Request) {
	var req transformRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if strings.TrimSpace(req.LimitingBelief) == "" {
		writeError(w, http.StatusBadRequest, "limiting_belief is required")
		return
	}

	result, err := h.svc.Transform(r.Context(), req.LimitingBelief)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidResponseFormat) {
			writeError(w, http.StatusBadGateway, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to transform belief")
		return
	}

	writeJSON(w, http.StatusOK, result)
}
