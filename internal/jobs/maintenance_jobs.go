package jobs

import (
	"context"

	"ngobooks-backend/internal/logger"
)

// CleanupOrphanedReceipts removes stored receipt images that no expense row
// references anymore. Uploads can outlive their expense when a create fails
// after the image was written, or when a delete removes the row first.
func (jr *JobRunner) CleanupOrphanedReceipts() {
	jr.runWithRecovery("CleanupOrphanedReceipts", func() {
		ctx := context.Background()

		stored, err := jr.storage.List(ctx)
		if err != nil {
			logger.Error("Failed to list stored receipts", "error", err)
			return
		}

		referenced, err := jr.store.ListReceiptKeys(ctx)
		if err != nil {
			logger.Error("Failed to list referenced receipt keys", "error", err)
			return
		}

		inUse := make(map[string]struct{}, len(referenced))
		for _, key := range referenced {
			inUse[key] = struct{}{}
		}

		removed := 0
		for _, key := range stored {
			if _, ok := inUse[key]; ok {
				continue
			}
			if err := jr.storage.Delete(ctx, key); err != nil {
				logger.Error("Failed to delete orphaned receipt", "key", key, "error", err)
				continue
			}
			removed++
			logger.Debug("Deleted orphaned receipt", "key", key)
		}

		logger.Info("Orphaned receipt cleanup finished",
			"stored", len(stored),
			"referenced", len(referenced),
			"removed", removed)
	})
}

// SendDailyDigest emails the current financial summary to the configured
// recipient. Skipped when no recipient is configured.
func (jr *JobRunner) SendDailyDigest() {
	jr.runWithRecovery("SendDailyDigest", func() {
		to := jr.config.Email.DigestTo
		if to == "" {
			logger.Info("Daily digest disabled, no recipient configured")
			return
		}

		ctx := context.Background()
		summary, err := jr.services.Summary.GetSummary(ctx)
		if err != nil {
			logger.Error("Failed to compute summary for digest", "error", err)
			return
		}

		if err := jr.services.Email.SendDailyDigest(ctx, to, summary); err != nil {
			logger.Error("Failed to send daily digest", "to", to, "error", err)
			return
		}

		logger.Info("Daily digest sent",
			"to", to,
			"donations", summary.Donations,
			"expenses", summary.Expenses,
			"remaining", summary.Remaining)
	})
}
