package api

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/llmcouncil/councild/pkg/tools"
)

// bindStrict decodes the request body rejecting unknown fields, so typos
// like "budgett" fail loudly instead of silently running unbounded.
func bindStrict(c *gin.Context, dst interface{}) bool {
	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		abortError(c, http.StatusBadRequest, "invalid_input")
		return false
	}
	return true
}

// CouncilAsk handles POST /v1/tools/council.ask. Engine failures come back
// as 200 with a degraded envelope; only transport-level problems (bad JSON,
// auth) use error status codes.
func (s *Server) CouncilAsk(c *gin.Context) {
	var in tools.AskInput
	if !bindStrict(c, &in) {
		return
	}
	out := s.runtime.CouncilAsk(c.Request.Context(), caller(c), in)
	c.JSON(http.StatusOK, out)
}

// CouncilPipeline handles POST /v1/tools/council.pipeline.
func (s *Server) CouncilPipeline(c *gin.Context) {
	var in tools.PipelineInput
	if !bindStrict(c, &in) {
		return
	}
	out := s.runtime.CouncilPipeline(c.Request.Context(), caller(c), in)
	c.JSON(http.StatusOK, out)
}
