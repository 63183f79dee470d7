package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/gcbaptista/geoquery/internal/dispatch"
	"github.com/gcbaptista/geoquery/internal/handlers"
	"github.com/gcbaptista/geoquery/model"
)

const (
	// SessionIDHeader carries the caller's session id in both directions.
	SessionIDHeader = "X-Session-Id"

	slotEngineSource = "slot-engine"
)

// queryRequest is the JSON body accepted by the query endpoints. The text may
// arrive as q, query or text.
type queryRequest struct {
	Q         string `json:"q"`
	Query     string `json:"query"`
	Text      string `json:"text"`
	SessionID string `json:"session_id"`
	Format    bool   `json:"format"` // normalize hits to the response schema
}

func (r queryRequest) text() string {
	for _, candidate := range []string{r.Q, r.Query, r.Text} {
		if candidate != "" {
			return candidate
		}
	}
	return ""
}

// QueryResponse is the body of /query.
type QueryResponse struct {
	Slots     model.Slots      `json:"slots"`
	Hits      []model.Document `json:"hits"`
	ByCountry []model.HitGroup `json:"by_country"`
	Query     string           `json:"query"`
	QueryID   string           `json:"query_id"`
	SessionID string           `json:"session_id"`
	LatencyMs int64            `json:"latency_ms"`
	Source    string           `json:"source"`
}

// RecognizeResponse is the body of /api/recognize.
type RecognizeResponse struct {
	Targets     []string     `json:"targets"`
	Domain      model.Domain `json:"domain"`
	SectionHint *string      `json:"section_hint"`
	ISO3Codes   []string     `json:"iso3_codes"`
	Query       string       `json:"query"`
}

// ProcessResponse is the body of /api/process and /api/slots.
type ProcessResponse struct {
	Domain    model.Domain     `json:"domain"`
	Targets   []string         `json:"targets"`
	Hits      []model.Document `json:"hits"`
	ByCountry []model.HitGroup `json:"by_country"`
	Query     string           `json:"query"`
	LatencyMs int64            `json:"latency_ms"`
}

// DispatchResponse is the body of /api/dispatch.
type DispatchResponse struct {
	Targets   []string         `json:"targets"`
	Hits      []model.Document `json:"hits"`
	Query     string           `json:"query"`
	LatencyMs int64            `json:"latency_ms"`
}

// readQuery collects the query from the URL, falling back to a JSON body.
// Malformed bodies are ignored so that a URL query still works.
func readQuery(c *gin.Context) queryRequest {
	var req queryRequest
	if strings.HasPrefix(c.ContentType(), "application/json") && c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			log.Debug().Err(err).Msg("Ignoring unreadable query body")
			req = queryRequest{}
		}
	}
	if q := c.Query("q"); q != "" {
		req.Q = q
	}
	if sessionID := c.Query("session_id"); sessionID != "" {
		req.SessionID = sessionID
	}
	return req
}

// requireQuery validates the query text, sending the error response and
// returning false when it is unusable.
func (api *API) requireQuery(c *gin.Context, query string) bool {
	if err := ValidateQuery(query, api.maxQueryLength); err != nil {
		SendQueryError(c, err, api.maxQueryLength)
		return false
	}
	return true
}

// resolveSessionID prefers an explicit session id, then the X-Session-Id
// header, then a new random id.
func resolveSessionID(explicit, header string) string {
	if explicit != "" {
		return explicit
	}
	if header != "" {
		return header
	}
	return uuid.New().String()
}

// QueryHandler serves GET and POST /query through the slot-driven path.
func (api *API) QueryHandler(c *gin.Context) {
	req := readQuery(c)
	query := req.text()
	if !api.requireQuery(c, query) {
		return
	}

	sessionID := resolveSessionID(req.SessionID, c.GetHeader(SessionIDHeader))
	start := time.Now()

	slots := api.dispatcher.Router().Slots(query)
	result := api.dispatcher.ProcessSlots(c.Request.Context(), query, slots)
	hits := api.paths.RewriteHits(result.Hits)

	c.Header(SessionIDHeader, sessionID)
	c.JSON(http.StatusOK, QueryResponse{
		Slots:     slots,
		Hits:      hits,
		ByCountry: dispatch.Group(hits),
		Query:     query,
		QueryID:   uuid.New().String(),
		SessionID: sessionID,
		LatencyMs: time.Since(start).Milliseconds(),
		Source:    slotEngineSource,
	})
}

// RecognizeHandler routes the query without retrieving anything.
func (api *API) RecognizeHandler(c *gin.Context) {
	req := readQuery(c)
	query := req.text()
	if !api.requireQuery(c, query) {
		return
	}

	slots := api.dispatcher.Router().Slots(query)
	c.JSON(http.StatusOK, RecognizeResponse{
		Targets:     slots.Targets,
		Domain:      slots.Domain,
		SectionHint: slots.SectionHint,
		ISO3Codes:   slots.ISO3Codes,
		Query:       query,
	})
}

// ProcessHandler runs the classifier-driven dispatcher.
func (api *API) ProcessHandler(c *gin.Context) {
	req := readQuery(c)
	query := req.text()
	if !api.requireQuery(c, query) {
		return
	}

	start := time.Now()
	result := api.dispatcher.Process(c.Request.Context(), query)
	c.JSON(http.StatusOK, api.processResponse(query, result, req.Format, start))
}

// slotsRequest is a pre-resolved routing decision plus optional query text.
type slotsRequest struct {
	model.Slots
	Query  string `json:"query"`
	Format bool   `json:"format"`
}

// SlotsHandler dispatches a caller-supplied routing decision.
func (api *API) SlotsHandler(c *gin.Context) {
	var req slotsRequest
	if result := ValidateJSONBinding(c, &req); result.HasErrors() {
		SendValidationError(c, result)
		return
	}
	if result := ValidateSlots(req.Slots); result.HasErrors() {
		SendValidationError(c, result)
		return
	}
	if req.Query != "" && !api.requireQuery(c, req.Query) {
		return
	}

	start := time.Now()
	result := api.dispatcher.ProcessSlots(c.Request.Context(), req.Query, req.Slots)
	c.JSON(http.StatusOK, api.processResponse(req.Query, result, req.Format, start))
}

func (api *API) processResponse(query string, result model.QueryResult, format bool, start time.Time) ProcessResponse {
	hits := result.Hits
	if format {
		hits = handlers.FormatHits(hits, string(result.Domain))
	}
	hits = api.paths.RewriteHits(hits)

	return ProcessResponse{
		Domain:    result.Domain,
		Targets:   result.Targets,
		Hits:      hits,
		ByCountry: dispatch.Group(hits),
		Query:     query,
		LatencyMs: time.Since(start).Milliseconds(),
	}
}

// DispatchHandler runs the legacy keyword-driven source dispatcher.
func (api *API) DispatchHandler(c *gin.Context) {
	req := readQuery(c)
	query := req.text()
	if !api.requireQuery(c, query) {
		return
	}

	start := time.Now()
	result := api.sources.Run(c.Request.Context(), query)
	elapsed := time.Since(start)

	api.analytics.TrackRoute(model.RouteEvent{
		Query:        query,
		Entry:        model.EntryDispatch,
		Targets:      result.Targets,
		HitCount:     len(result.Hits),
		ResponseTime: elapsed,
		Timestamp:    start,
	})

	c.JSON(http.StatusOK, DispatchResponse{
		Targets:   result.Targets,
		Hits:      api.paths.RewriteHits(result.Hits),
		Query:     query,
		LatencyMs: elapsed.Milliseconds(),
	})
}
