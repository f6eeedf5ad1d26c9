package metrics

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/NeuralTrust/LegalGuard/pkg/common"
	domainCompliance "github.com/NeuralTrust/LegalGuard/pkg/domain/compliance"
	domain "github.com/NeuralTrust/LegalGuard/pkg/domain/safety"
	"github.com/NeuralTrust/LegalGuard/pkg/domain/telemetry"
	"github.com/NeuralTrust/LegalGuard/pkg/infra/prometheus"
	"github.com/NeuralTrust/LegalGuard/pkg/scoring"
	"github.com/sirupsen/logrus"
)

const (
	resultCompliant    = "compliant"
	resultNonCompliant = "non_compliant"
)

// Worker records monitor and rewriter outcomes to prometheus and fans alerts out
// to the configured exporters on a bounded queue.
//
//go:generate mockery --name=Worker --dir=. --output=./mocks --filename=worker_mock.go --case=underscore --with-expecter
type Worker interface {
	Record(ctx context.Context, result domain.Result, score scoring.SafetyScore100)
	RecordValidation(mode domainCompliance.PresentationMode, result domainCompliance.ValidationResult)
	RecordCorrection(mode domainCompliance.PresentationMode, compliant bool)
	StartWorkers(n int)
	Shutdown()
}

type worker struct {
	logger        *logrus.Logger
	exporters     []telemetry.Exporter
	exportTimeout time.Duration
	taskChan      chan func()
	ctx           context.Context
	cancel        context.CancelFunc
	mu            sync.RWMutex
	closed        atomic.Bool
	wg            sync.WaitGroup
}

func NewWorker(logger *logrus.Logger, exporters []telemetry.Exporter, opts ...Option) Worker {
	o := workerOptions{
		queueSize:     DefaultQueueSize,
		exportTimeout: DefaultExportTimeout,
	}
	for _, opt := range opts {
		opt(&o)
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &worker{
		logger:        logger,
		exporters:     exporters,
		exportTimeout: o.exportTimeout,
		taskChan:      make(chan func(), o.queueSize),
		ctx:           ctx,
		cancel:        cancel,
	}
}

// Shutdown stops accepting tasks, lets the workers drain what is queued and
// closes the exporters.
func (w *worker) Shutdown() {
	w.mu.Lock()
	if w.closed.Swap(true) {
		w.mu.Unlock()
		return
	}
	w.logger.Info("shutting down alert workers")
	close(w.taskChan)
	w.mu.Unlock()

	w.wg.Wait()
	w.cancel()
	for _, exporter := range w.exporters {
		exporter.Close()
	}
	w.logger.Info("alert workers stopped")
}

func (w *worker) Record(ctx context.Context, result domain.Result, score scoring.SafetyScore100) {
	prometheus.AnalysesTotal.WithLabelValues(result.Level.String()).Inc()
	prometheus.SafetyScore.Set(float64(score))
	if prometheus.Config.EnableViolationDetail {
		for _, v := range result.Violations {
			prometheus.ViolationsTotal.WithLabelValues(string(v.Category), v.Level.String()).Inc()
		}
	}

	if len(w.exporters) == 0 {
		return
	}
	traceID := common.TraceID(ctx)
	for i := range result.Violations {
		alert := result.Violations[i]
		w.enqueueTask(func() {
			w.export(traceID, &alert)
		}, alert.ID)
	}
}

func (w *worker) RecordValidation(mode domainCompliance.PresentationMode, result domainCompliance.ValidationResult) {
	if !prometheus.Config.EnableValidation {
		return
	}
	prometheus.ValidationsTotal.WithLabelValues(string(mode), resultLabel(result.IsCompliant)).Inc()
}

func (w *worker) RecordCorrection(mode domainCompliance.PresentationMode, compliant bool) {
	if !prometheus.Config.EnableValidation {
		return
	}
	prometheus.CorrectionsTotal.WithLabelValues(string(mode), resultLabel(compliant)).Inc()
}

func (w *worker) export(traceID string, alert *domain.Violation) {
	var failedExporters []string
	for _, exporter := range w.exporters {
		ctx, cancel := context.WithTimeout(w.ctx, w.exportTimeout)
		err := exporter.Handle(ctx, alert)
		cancel()
		if err != nil {
			w.logger.WithFields(logrus.Fields{
				"trace_id": traceID,
				"alert_id": alert.ID,
				"exporter": exporter.Name(),
			}).WithError(err).Error("exporter failed")
			prometheus.ExporterFailuresTotal.WithLabelValues(exporter.Name()).Inc()
			failedExporters = append(failedExporters, exporter.Name())
		}
	}
	if len(failedExporters) > 0 {
		w.logger.WithField("failedExporters", failedExporters).
			Warnf("%d exporters failed to handle alert", len(failedExporters))
	}
}

func (w *worker) StartWorkers(n int) {
	w.logger.WithField("workers", n).Info("starting alert workers")
	for i := 0; i < n; i++ {
		w.wg.Add(1)
		go func() {
			defer w.wg.Done()
			for task := range w.taskChan {
				task()
			}
		}()
	}
}

func (w *worker) enqueueTask(task func(), alertID string) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.closed.Load() {
		return
	}
	select {
	case w.taskChan <- task:
	default:
		prometheus.DroppedAlertsTotal.Inc()
		w.logger.WithField("alert_id", alertID).
			Warn("taskChan is full, dropping alert export")
	}
}

func resultLabel(ok bool) string {
	if ok {
		return resultCompliant
	}
	return resultNonCompliant
}
