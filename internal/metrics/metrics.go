package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	SignalsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cryptopulse_signals_total",
		Help: "Signals generated, by direction.",
	}, []string{"direction"})

	TradesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cryptopulse_trades_recorded_total",
		Help: "Trade outcomes recorded via /record, by outcome.",
	}, []string{"outcome"})

	BatchesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cryptopulse_batches_total",
		Help: "Batch runs started.",
	})

	HaltsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cryptopulse_risk_halts_total",
		Help: "Signals flagged unacceptable by risk checks.",
	})

	SendFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cryptopulse_send_failures_total",
		Help: "Telegram deliveries that failed after retries.",
	})
)

func init() {
	prometheus.MustRegister(SignalsTotal, TradesTotal, BatchesTotal, HaltsTotal, SendFailures)
}

// Serve exposes /metrics on addr. The caller owns the returned server and
// shuts it down on exit.
func Serve(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux}
	go srv.ListenAndServe()
	return srv
}
