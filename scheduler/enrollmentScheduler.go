package scheduler

import (
	"errors"
	"log"
	"time"

	enrollController "placementpulse/controllers/enroll"
	"placementpulse/gateway"
	"placementpulse/models"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

const (
	// A descriptor must be at least this old before the sweep touches it,
	// so the normal post-checkout flow gets first shot.
	minDescriptorAge = 2 * time.Minute

	maxAttempts      = 5
	maxDescriptorAge = 24 * time.Hour
)

// InitializeEnrollmentScheduler starts the recovery sweep that reconciles
// paid orders whose buyer never completed the enrollment call (closed the
// tab, lost connectivity, and so on).
func InitializeEnrollmentScheduler(db *gorm.DB, gw *gateway.Client) *cron.Cron {
	log.Println("[ENROLLMENT-SCHEDULER] Initializing enrollment recovery scheduler...")

	c := cron.New()

	// Every 5 minutes
	c.AddFunc("*/5 * * * *", func() {
		ProcessPendingEnrollments(db, gw)
	})

	c.Start()
	log.Println("[ENROLLMENT-SCHEDULER] Enrollment recovery scheduler started - runs every 5 minutes")
	return c
}

// ProcessPendingEnrollments re-verifies stale pending checkouts against the
// gateway and runs the reconciler for the paid ones. Reconciliation is
// idempotent, so racing the request path is harmless.
func ProcessPendingEnrollments(db *gorm.DB, gw *gateway.Client) {
	if !gw.Configured() {
		return
	}

	cutoff := time.Now().Add(-minDescriptorAge)

	var pending []models.PendingEnrollment
	if err := db.
		Where("status = ? AND created_at < ?", models.PendingEnrollmentPending, cutoff).
		Find(&pending).Error; err != nil {
		log.Printf("[ENROLLMENT-SCHEDULER] Error fetching pending enrollments: %v", err)
		return
	}

	if len(pending) == 0 {
		return
	}
	log.Printf("[ENROLLMENT-SCHEDULER] Found %d pending enrollments to check", len(pending))

	rec := enrollController.NewReconciler(db, gw)

	for _, pe := range pending {
		if pe.Attempts >= maxAttempts || time.Since(pe.CreatedAt) > maxDescriptorAge {
			db.Model(&pe).Update("status", models.PendingEnrollmentAbandoned)
			log.Printf("[ENROLLMENT-SCHEDULER] Abandoning order %s after %d attempts", pe.OrderID, pe.Attempts)
			continue
		}

		now := time.Now()
		db.Model(&pe).Updates(map[string]interface{}{
			"attempts":        pe.Attempts + 1,
			"last_attempt_at": now,
		})

		courseIDs, err := pe.GetCourseIDs()
		if err != nil || len(courseIDs) == 0 {
			log.Printf("[ENROLLMENT-SCHEDULER] Bad course list on order %s: %v", pe.OrderID, err)
			db.Model(&pe).Update("status", models.PendingEnrollmentAbandoned)
			continue
		}

		ref := enrollController.UserRef{Email: pe.Email}
		if pe.UserID != nil {
			ref.ID = *pe.UserID
		}

		_, err = rec.Reconcile(ref, courseIDs, pe.OrderID)
		switch {
		case err == nil:
			db.Model(&pe).Update("status", models.PendingEnrollmentCompleted)
			log.Printf("[ENROLLMENT-SCHEDULER] Recovered enrollment for order %s", pe.OrderID)
		case errors.Is(err, enrollController.ErrUserNotFound):
			// No account to enroll; keep retrying until abandoned in case
			// the buyer signs up late.
			log.Printf("[ENROLLMENT-SCHEDULER] No user yet for order %s", pe.OrderID)
		default:
			var notPaid *enrollController.NotPaidError
			if errors.As(err, &notPaid) {
				log.Printf("[ENROLLMENT-SCHEDULER] Order %s not paid yet (status %s)", pe.OrderID, notPaid.OrderStatus)
			} else {
				log.Printf("[ENROLLMENT-SCHEDULER] Error reconciling order %s: %v", pe.OrderID, err)
			}
		}
	}
}
