package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/ensapi/base/ctx"
	"github.com/x-xyz/ensapi/base/delivery"
	hcdomain "github.com/x-xyz/ensapi/domain/healthcheck"
)

type healthCheckHandler struct {
	healthCheck hcdomain.HealthCheckUsecase
	namespace   string
}

type healthResponse struct {
	Healthy   string `json:"healthy"`
	Namespace string `json:"namespace"`
}

// New registers /health, reporting the namespace this instance resolves in.
func New(e *echo.Echo, us hcdomain.HealthCheckUsecase, namespace string) {
	handler := &healthCheckHandler{
		healthCheck: us,
		namespace:   namespace,
	}
	e.GET("/health", handler.check)
}

func (h *healthCheckHandler) check(c echo.Context) error {
	context := c.Get("ctx").(ctx.Ctx)
	if err := h.healthCheck.Check(context); err != nil {
		context.WithField("err", err).Error("healthCheck.Check failed")
		return delivery.MakeJsonResp(c, http.StatusServiceUnavailable, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, healthResponse{
		Healthy:   "ok",
		Namespace: h.namespace,
	})
}
