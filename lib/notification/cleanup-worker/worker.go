package notificationcleanupworker

import (
	"context"
	baseworker "nexora-hcm/lib/utils/base-worker"
	"time"
)

type Cleaner interface {
	DeleteOlderThan(before time.Time) (int64, error)
}

const firstRunDelay = time.Minute

// StartWorker удаляет события старше retention. При retention <= 0 воркер не запускается
func StartWorker(ctx context.Context, cleaner Cleaner, retention, interval time.Duration) {
	if retention <= 0 {
		return
	}
	worker := baseworker.NewInstance("NotificationCleanupWorker", firstRunDelay, interval)
	go worker.Run(ctx, func(ctx context.Context) error {
		_, err := cleanup(worker, cleaner, retention, time.Now())
		return err
	})
}

func cleanup(worker *baseworker.BaseImpl, cleaner Cleaner, retention time.Duration, now time.Time) (int64, error) {
	deleted, err := cleaner.DeleteOlderThan(now.Add(-retention))
	if err != nil {
		return 0, err
	}
	if deleted > 0 {
		worker.GetLogger().WithField("deleted", deleted).Info("удалены устаревшие события")
	}
	return deleted, nil
}
