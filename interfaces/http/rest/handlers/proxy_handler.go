package handlers

import (
	"io"
	"net/http"
	"net/url"

	"memory-gateway/infrastructure/engine"
	"memory-gateway/pkg/auth"
	"memory-gateway/pkg/common"
	"memory-gateway/pkg/errors"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const maxProxyBodyBytes = 4 << 20 // 4 MiB

// ProxyHandler forwards retrieval/chat and cross-service note operations to
// the external engine with the gateway-resolved identity attached. The
// upstream response is relayed verbatim.
type ProxyHandler struct {
	client *engine.Client
	logger *zap.Logger
}

// NewProxyHandler creates a new proxy handler
func NewProxyHandler(client *engine.Client, logger *zap.Logger) *ProxyHandler {
	return &ProxyHandler{
		client: client,
		logger: logger,
	}
}

// CreateNote handles POST /api/notes
func (h *ProxyHandler) CreateNote(w http.ResponseWriter, r *http.Request) {
	h.forwardWithBody(w, r, http.MethodPost, "/notes", false)
}

// ListNotes handles GET /api/notes
func (h *ProxyHandler) ListNotes(w http.ResponseWriter, r *http.Request) {
	h.forwardWithQuery(w, r, http.MethodGet, "/notes")
}

// GetNote handles GET /api/notes/{noteID}
func (h *ProxyHandler) GetNote(w http.ResponseWriter, r *http.Request) {
	h.forwardWithQuery(w, r, http.MethodGet, "/notes/"+chi.URLParam(r, "noteID"))
}

// UpdateNote handles PUT /api/notes/{noteID}. The engine takes the identity
// as a query parameter on updates, with the changed fields as the body.
func (h *ProxyHandler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	h.forwardWithBody(w, r, http.MethodPut, "/notes/"+chi.URLParam(r, "noteID"), true)
}

// DeleteNote handles DELETE /api/notes/{noteID}
func (h *ProxyHandler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	h.forwardWithQuery(w, r, http.MethodDelete, "/notes/"+chi.URLParam(r, "noteID"))
}

// Query handles POST /api/query
func (h *ProxyHandler) Query(w http.ResponseWriter, r *http.Request) {
	h.forwardWithBody(w, r, http.MethodPost, "/query", false)
}

// QueryRetriever handles POST /api/query-retriever
func (h *ProxyHandler) QueryRetriever(w http.ResponseWriter, r *http.Request) {
	h.forwardWithBody(w, r, http.MethodPost, "/query-retriever", false)
}

// forwardWithBody reissues a request whose JSON body carries the identity.
// The gateway-resolved user_id always overwrites any client-supplied value.
// identityInQuery additionally carries it as a user_id query parameter, for
// engine endpoints that read the identity outside the body.
func (h *ProxyHandler) forwardWithBody(w http.ResponseWriter, r *http.Request, method, path string, identityInQuery bool) {
	userCtx, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		common.RespondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxProxyBodyBytes))
	if err != nil {
		common.RespondError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	outBody, err := engine.InjectUserID(body, userCtx.UserID)
	if err != nil {
		common.RespondError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	var query url.Values
	if identityInQuery {
		query = url.Values{"user_id": []string{userCtx.UserID}}
	}
	resp, err := h.client.Forward(r.Context(), method, path, outBody, query)
	if err != nil {
		h.respondUpstreamError(w, r, err)
		return
	}
	common.RespondRaw(w, resp.Status, resp.Body)
}

// forwardWithQuery reissues a body-less request and carries the identity as
// a user_id query parameter, matching the engine's read/delete contract.
func (h *ProxyHandler) forwardWithQuery(w http.ResponseWriter, r *http.Request, method, path string) {
	userCtx, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		common.RespondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	query := url.Values{"user_id": []string{userCtx.UserID}}
	resp, err := h.client.Forward(r.Context(), method, path, nil, query)
	if err != nil {
		h.respondUpstreamError(w, r, err)
		return
	}
	common.RespondRaw(w, resp.Status, resp.Body)
}

// respondUpstreamError maps engine failures to client-facing statuses.
// Upstream detail is logged, never forwarded.
func (h *ProxyHandler) respondUpstreamError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Error("engine request failed",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Error(err),
	)
	if errors.IsType(err, errors.ErrorTypeTimeout) {
		common.RespondError(w, http.StatusGatewayTimeout, "Upstream request timed out")
		return
	}
	common.RespondError(w, http.StatusInternalServerError, common.GenericErrorMessage)
}
