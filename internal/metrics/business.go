package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "secret_santa"

var (
	drawAttempts = promauto.NewCounter(
		prometheusCounterOpts("draw_attempts_total", "Total number of shuffles tried by the matcher"),
	)
	draws = promauto.NewCounterVec(
		prometheusCounterOpts("draws_total", "Total number of draws by result"),
		[]string{"result"},
	)
	notifications = promauto.NewCounterVec(
		prometheusCounterOpts("notifications_total", "Total number of notifications by delivery status"),
		[]string{"status"},
	)
	lastRun = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "last_run_timestamp_seconds",
		Help:      "Unix time of the last draw run",
	})
)

// AddDrawAttempts увеличивает счётчик перетасовок.
func AddDrawAttempts(delta int) {
	if delta <= 0 {
		return
	}
	drawAttempts.Add(float64(delta))
}

// IncDraws учитывает завершённую жеребьёвку с результатом ok или failed.
func IncDraws(ok bool) {
	result := "ok"
	if !ok {
		result = "failed"
	}
	draws.WithLabelValues(result).Inc()
}

// IncNotifications учитывает одно уведомление с указанным статусом.
func IncNotifications(status string) {
	notifications.WithLabelValues(status).Inc()
}

// SetLastRun запоминает время запуска.
func SetLastRun(at time.Time) {
	lastRun.Set(float64(at.Unix()))
}

func prometheusCounterOpts(name, help string) prometheus.CounterOpts {
	return prometheus.CounterOpts{
		Namespace: namespace,
		Name:      name,
		Help:      help,
	}
}
