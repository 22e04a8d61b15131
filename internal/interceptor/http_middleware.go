package interceptor

import (
	"fmt"
	"net/http"

	"github.com/jt828/storefront-telemetry/internal/constant"
	"github.com/jt828/storefront-telemetry/pkg/telemetry"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// HTTPMetrics tracks each request under its route pattern. Responses with a
// status of 400 or above count as errors and are classified by hundred.
func HTTPMetrics(producer telemetry.Producer, pattern string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		_ = telemetry.Track(producer, pattern, func() error {
			next.ServeHTTP(rec, req)
			if rec.status >= http.StatusBadRequest {
				return fmt.Errorf("http status %d", rec.status)
			}
			return nil
		})

		switch {
		case rec.status >= http.StatusInternalServerError:
			recordError(producer, constant.ErrorClassServer)
		case rec.status >= http.StatusBadRequest:
			recordError(producer, constant.ErrorClassClient)
		}
	})
}
