package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// HTTPRecorder records one served request
type HTTPRecorder interface {
	RecordHTTPRequest(route, method, status string, duration time.Duration)
}

// Metrics middleware reports every request to the recorder, labelled by route template
func Metrics(recorder HTTPRecorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		recorder.RecordHTTPRequest(routeOf(c), c.Request.Method, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}
