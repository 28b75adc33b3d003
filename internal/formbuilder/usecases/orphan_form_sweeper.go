package usecases

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"dms-server/internal/formbuilder/domain"
	"dms-server/internal/infra/async"

	"github.com/robfig/cron/v3"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const _metricKeyOrphanForms = "orphan_forms"

func NewOrphanFormSweeper(
	schedule string,
	repository FormRepository,
	store SchemaStore,
	publisher EventPublisher,
) *OrphanFormSweeper {
	return &OrphanFormSweeper{
		schedule:       schedule,
		repository:     repository,
		store:          store,
		publisher:      publisher,
		metricCounters: make(map[string]metric.Float64Counter),
		cronParser:     cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor),
	}
}

var _ async.Worker = &OrphanFormSweeper{}

// OrphanFormSweeper removes catalog rows whose table no longer exists, which
// happens when a delete dropped the table but failed to remove the row.
type OrphanFormSweeper struct {
	schedule       string
	repository     FormRepository
	store          SchemaStore
	publisher      EventPublisher
	metricCounters map[string]metric.Float64Counter
	cronParser     cron.Parser

	mu        sync.Mutex
	scheduler *cron.Cron
}

func (w *OrphanFormSweeper) Run(ctx context.Context, done func()) {
	slog.Info("orphan form sweeper started", slog.String("schedule", w.schedule))
	defer done()
	w.setupOtelCounters()

	scheduler := cron.New(cron.WithParser(w.cronParser))
	_, err := scheduler.AddFunc(w.schedule, func() {
		if _, err := w.Sweep(context.Background()); err != nil {
			slog.Error("sweeping orphan forms", slog.String("error", err.Error()))
		}
	})
	if err != nil {
		slog.Error("parsing sweeper schedule", slog.String("schedule", w.schedule), slog.String("error", err.Error()))
		return
	}

	w.mu.Lock()
	w.scheduler = scheduler
	w.mu.Unlock()

	scheduler.Start()
	<-ctx.Done()
	<-scheduler.Stop().Done()
	slog.Info("orphan form sweeper cancelled")
}

func (w *OrphanFormSweeper) Shutdown() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.scheduler != nil {
		w.scheduler.Stop()
	}
}

func (w *OrphanFormSweeper) setupOtelCounters() {
	meter := otel.Meter("dms_server")
	counter, _ := meter.Float64Counter(
		fmt.Sprintf("%s.%s", "dms_server", "orphan_forms_swept"),
		metric.WithDescription("dms_server catalog rows removed because their table was missing"),
	)

	w.metricCounters[_metricKeyOrphanForms] = counter
}

// Sweep runs one pass and returns the number of removed catalog rows.
func (w *OrphanFormSweeper) Sweep(ctx context.Context) (int, error) {
	forms, _, err := w.repository.FindAll(ctx, Pagination{})
	if err != nil {
		return 0, fmt.Errorf("listing forms: %w", err)
	}

	removed := 0
	for _, form := range forms {
		exists, err := w.store.TableExists(ctx, form.TableName())
		if err != nil {
			slog.Error("checking form table", slog.String("form", form.Name.String()), slog.String("error", err.Error()))
			continue
		}
		if exists {
			continue
		}

		if err := w.repository.Delete(ctx, form.ID); err != nil {
			slog.Error("removing orphan form", slog.String("form", form.Name.String()), slog.String("error", err.Error()))
			continue
		}

		removed++
		slog.Warn("removed orphan form", slog.String("id", form.ID.String()), slog.String("form", form.Name.String()))
		w.record(ctx, form)

		if err := w.publisher.Publish(ctx, domain.NewFormEvent(domain.EventFormDeleted, form)); err != nil {
			slog.Error("publishing form event", slog.String("form", form.Name.String()), slog.String("error", err.Error()))
		}
	}

	return removed, nil
}

func (w *OrphanFormSweeper) record(ctx context.Context, form domain.LogicalForm) {
	counter, ok := w.metricCounters[_metricKeyOrphanForms]
	if !ok {
		return
	}
	counter.Add(ctx, 1, metric.WithAttributes(attribute.String("status", string(form.Status))))
}
