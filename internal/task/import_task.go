package task

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"storefront_api/internal/service"
	"storefront_api/pkg/logger"
)

// ImportTask runs the catalog feed import on a cron schedule.
type ImportTask struct {
	Import *service.CatalogImportService
	Cron   *cron.Cron

	schedule string
	timeout  time.Duration
}

func NewImportTask(importSvc *service.CatalogImportService, schedule string) *ImportTask {
	return &ImportTask{
		Import:   importSvc,
		Cron:     cron.New(),
		schedule: schedule,
		timeout:  5 * time.Minute,
	}
}

// Start registers the cron job. An empty schedule disables the task.
func (t *ImportTask) Start() error {
	if t.schedule == "" {
		logger.Op("import_task").Infow("scheduled import disabled")
		return nil
	}

	_, err := t.Cron.AddFunc(t.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
		defer cancel()
		t.runJob(ctx)
	})
	if err != nil {
		return err
	}

	t.Cron.Start()
	logger.Op("import_task").Infow("scheduled import started", "schedule", t.schedule)
	return nil
}

// Stop halts the schedule and waits for a running job to finish.
func (t *ImportTask) Stop() {
	<-t.Cron.Stop().Done()
}

func (t *ImportTask) runJob(ctx context.Context) {
	log := logger.Op("import_task")

	report, err := t.Import.Run(ctx)
	if err != nil {
		log.Errorw("scheduled import failed", "err", err)
		return
	}
	log.Infow("scheduled import done",
		"fetched", report.Fetched,
		"created", report.Created,
		"updated", report.Updated,
		"skipped", report.Skipped,
	)
}
