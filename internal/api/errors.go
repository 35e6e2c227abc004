package api

import (
	"errors"
	"net/http"

	"MarketLens/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// statusFor 错误 → HTTP 状态码
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrEventRequired), errors.Is(err, service.ErrEventsRequired):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrUpstream), errors.Is(err, service.ErrEngine):
		return http.StatusBadGateway
	case errors.Is(err, service.ErrStoreDisabled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func abortWithError(c *gin.Context, logger *logrus.Logger, op string, err error) {
	status := statusFor(err)
	entry := logger.WithError(err).WithFields(logrus.Fields{"op": op, "status": status})
	if status >= http.StatusInternalServerError {
		entry.Error("请求处理失败")
	} else {
		entry.Warn("请求参数不合法")
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
