package handlers

import (
	"net/http"

	"foodie-site-api/contract"
	"foodie-site-api/metrics"
	"foodie-site-api/middleware"
	"foodie-site-api/storage"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const internalMessage = "Internal server error"

// Handler binds contract endpoints to a Store. It keeps no per-request state.
type Handler struct {
	store   storage.Store
	metrics *metrics.Metrics
	log     logrus.FieldLogger
}

func New(store storage.Store, m *metrics.Metrics, log logrus.FieldLogger) *Handler {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Handler{store: store, metrics: m, log: log}
}

// fail logs err against the request and writes a 500 with body.
func (h *Handler) fail(c *gin.Context, err error, msg string, body any) {
	_ = c.Error(err)
	h.log.WithError(err).
		WithField("request_id", middleware.GetRequestID(c)).
		WithField("path", c.FullPath()).
		Error(msg)
	c.JSON(http.StatusInternalServerError, body)
}

// pathParam reads a contract path parameter by its position in the template,
// so the gin route may name the wildcard differently.
func pathParam(c *gin.Context, ep contract.Endpoint, name string) string {
	for i, p := range ep.Params() {
		if p == name && i < len(c.Params) {
			return c.Params[i].Value
		}
	}
	return c.Param(name)
}
