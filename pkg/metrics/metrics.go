package metrics

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the portal's collectors on a private registry. A nil
// *Metrics is valid and records nothing.
type Metrics struct {
	Registry *prometheus.Registry

	attendance *prometheus.CounterVec
	decisions  *prometheus.CounterVec
	gate       *prometheus.CounterVec
	ipReports  *prometheus.CounterVec
	requests   *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		attendance: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "portal",
			Name:      "attendance_actions_total",
			Help:      "Attendance punches by action and result.",
		}, []string{"action", "result"}),
		decisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "portal",
			Name:      "regularization_events_total",
			Help:      "Regularization submissions and decisions.",
		}, []string{"event"}),
		gate: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "portal",
			Name:      "gate_decisions_total",
			Help:      "Access gate decisions by reason.",
		}, []string{"allowed", "reason"}),
		ipReports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "portal",
			Name:      "ip_reports_total",
			Help:      "IP reports received by the sidecar.",
		}, []string{"result"}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "portal",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method and status code.",
		}, []string{"method", "code"}),
	}
	m.Registry.MustRegister(
		m.attendance, m.decisions, m.gate, m.ipReports, m.requests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) AttendanceAction(action, result string) {
	if m == nil {
		return
	}
	m.attendance.WithLabelValues(action, result).Inc()
}

func (m *Metrics) Regularization(event string) {
	if m == nil {
		return
	}
	m.decisions.WithLabelValues(event).Inc()
}

func (m *Metrics) GateDecision(allowed bool, reason string) {
	if m == nil {
		return
	}
	m.gate.WithLabelValues(strconv.FormatBool(allowed), reason).Inc()
}

func (m *Metrics) IPReport(result string) {
	if m == nil {
		return
	}
	m.ipReports.WithLabelValues(result).Inc()
}

// Middleware counts every request after the handler chain returns.
func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		if m != nil {
			code := c.Response().StatusCode()
			if fe, ok := err.(*fiber.Error); ok {
				code = fe.Code
			}
			m.requests.WithLabelValues(c.Method(), strconv.Itoa(code)).Inc()
		}
		return err
	}
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{}))
}
