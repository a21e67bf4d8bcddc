package bulkdownload

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rohits-web03/cellportal/internal/models"
	"github.com/rohits-web03/cellportal/internal/telemetry"
)

// QuotaLedger charges requested bytes against a user's download quota.
// Charges are never refunded, even when signing later fails.
type QuotaLedger struct {
	store   QuotaStore
	quota   int64
	log     *slog.Logger
	metrics *telemetry.Metrics
}

func NewQuotaLedger(store QuotaStore, quota int64, log *slog.Logger, metrics *telemetry.Metrics) *QuotaLedger {
	if log == nil {
		log = slog.Default()
	}
	return &QuotaLedger{store: store, quota: quota, log: log, metrics: metrics}
}

// RequestedBytes sums file sizes and directory listing sizes.
func RequestedBytes(files []models.StudyFile, dirs []models.DirectoryListing) int64 {
	var total int64
	for i := range files {
		total += files[i].ByteSize()
	}
	for i := range dirs {
		total += dirs[i].TotalBytes()
	}
	return total
}

// Charge admits the request when it fits the remaining quota and returns the
// user's new consumed total. user.DownloadQuotaUsed is updated in place.
func (l *QuotaLedger) Charge(ctx context.Context, user *models.User, files []models.StudyFile, dirs []models.DirectoryListing) (int64, error) {
	requested := RequestedBytes(files, dirs)
	allowed := l.quota - user.DownloadQuotaUsed
	if requested > allowed {
		l.metrics.QuotaRejected()
		l.log.InfoContext(ctx, "Download quota exceeded",
			"userId", user.ID, "requested", requested, "allowed", allowed)
		return user.DownloadQuotaUsed, &QuotaExceededError{Requested: requested, Allowed: allowed}
	}
	if requested == 0 {
		return user.DownloadQuotaUsed, nil
	}

	total, err := l.store.AddDownloadQuota(ctx, user.ID, requested)
	if err != nil {
		return user.DownloadQuotaUsed, fmt.Errorf("charge download quota: %w", err)
	}
	user.DownloadQuotaUsed = total
	l.metrics.QuotaCharged(requested)
	return total, nil
}
