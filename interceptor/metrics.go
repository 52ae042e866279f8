package interceptor

import (
	"net/http"
	"strconv"

	libErr "github.com/LerianStudio/lib-mealmind-go/error"
	"github.com/LerianStudio/lib-mealmind-go/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts API calls by method and outcome
type Metrics struct {
	requests       *prometheus.CounterVec
	sessionExpired prometheus.Counter
}

// NewMetrics registers the client counters on reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "mealmind_client",
				Name:      "requests_total",
				Help:      "API calls by method and status code; code is \"error\" when no response arrived.",
			},
			[]string{"method", "code"},
		),
		sessionExpired: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: "mealmind_client",
				Name:      "session_expired_total",
				Help:      "Responses with status 401 that ended the local session.",
			},
		),
	}
}

// Hook returns the response hook that records each call
func (m *Metrics) Hook() ResponseHook {
	return func(req *http.Request, resp *model.Response, err error) (*model.Response, error) {
		code := "error"

		switch {
		case resp != nil:
			code = strconv.Itoa(resp.StatusCode)
		case libErr.StatusCode(err) != 0:
			code = strconv.Itoa(libErr.StatusCode(err))
		}

		m.requests.WithLabelValues(req.Method, code).Inc()

		if libErr.IsUnauthorized(err) {
			m.sessionExpired.Inc()
		}

		return resp, err
	}
}
