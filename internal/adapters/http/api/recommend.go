package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/okian/campusdine/internal/domain/model"
)

// RecommendHandler handles recommendation requests.
type RecommendHandler struct {
	deps Dependencies
}

// NewRecommendHandler creates a new recommend handler.
func NewRecommendHandler(deps Dependencies) *RecommendHandler {
	return &RecommendHandler{deps: deps}
}

// recommendRequest mirrors the OpenAPI schema for POST /recommend.
type recommendRequest struct {
	Food string `json:"food"`
	Time string `json:"time"`
}

// HandlePostRecommend handles POST /recommend requests. Missing fields and
// an empty body are treated as empty strings.
func (h *RecommendHandler) HandlePostRecommend(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_recommend"
	if r.Method != http.MethodPost {
		notFound(w, op)
		return
	}

	var req recommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "payload_too_large", WrapKind(op, ErrPayloadTooLarge, err))
			return
		}
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	rec := h.deps.Recommend(r.Context(), model.Query{
		FoodText: strings.TrimSpace(req.Food),
		TimeText: strings.TrimSpace(req.Time),
	})
	writeJSON(w, http.StatusOK, rec)
}
