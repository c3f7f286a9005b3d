package jobs

import (
	"context"
	"fmt"
	"strings"

	"cleansweep-backend/internal/logger"
)

// SendLeaderboardDigest emails each organization contact a summary of the
// current top users and organizations.
func (jr *JobRunner) SendLeaderboardDigest() {
	jr.runWithRecovery("SendLeaderboardDigest", func() {
		ctx := context.Background()

		topUsers, err := jr.services.Leaderboard.TopUsers(ctx)
		if err != nil {
			logger.Error("Failed to load user leaderboard", "error", err)
			return
		}
		topOrgs, err := jr.services.Leaderboard.TopOrganizations(ctx)
		if err != nil {
			logger.Error("Failed to load organization leaderboard", "error", err)
			return
		}

		var b strings.Builder
		b.WriteString("This week's CleanSweep leaderboard:\n\nTop members:\n")
		for i, p := range topUsers {
			fmt.Fprintf(&b, "  %d. %s - %d points\n", i+1, p.Name, p.Points)
		}
		b.WriteString("\nTop organizations:\n")
		for i, o := range topOrgs {
			fmt.Fprintf(&b, "  %d. %s - %d points\n", i+1, o.Name, o.TotalPoints)
		}
		b.WriteString("\nKeep up the good work!\nThe CleanSweep Team")
		body := b.String()

		orgs, err := jr.store.OrganizationRepository.List(ctx)
		if err != nil {
			logger.Error("Failed to list organizations for digest", "error", err)
			return
		}

		count := 0
		for _, org := range orgs {
			if org.ContactEmail == "" {
				continue
			}
			if err := jr.services.Email.SendLeaderboardDigest(ctx, org.ContactEmail, org.Name, body); err != nil {
				logger.Error("Failed to send leaderboard digest",
					"org_id", org.ID,
					"email", org.ContactEmail,
					"error", err)
				continue
			}
			count++
			logger.Debug("Sent leaderboard digest", "org_id", org.ID, "email", org.ContactEmail)
		}

		logger.Info("Leaderboard digests sent", "count", count)
	})
}
