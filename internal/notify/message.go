package notify

import (
	"fmt"
	"strings"
	"time"

	"github.com/shenikar/safety_alert_system/internal/models"
)

// FormatMessage формирует текст экстренного сообщения. Время выводится в поясе loc.
func FormatMessage(a *models.Alert, dashboardURL string, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	var b strings.Builder
	fmt.Fprintf(&b, "EMERGENCY ALERT\n\n")
	fmt.Fprintf(&b, "User: %s\n", a.UserID)
	fmt.Fprintf(&b, "Status: %s\n", a.Level)
	fmt.Fprintf(&b, "Risk Score: %.1f/100\n\n", a.RiskScore)
	fmt.Fprintf(&b, "Location: %.6f, %.6f\n\n", a.Latitude, a.Longitude)
	fmt.Fprintf(&b, "Reason: %s\n\n", a.Reason)
	fmt.Fprintf(&b, "Time: %s\n\n", a.TriggeredAt.In(loc).Format("03:04 PM"))
	if dashboardURL != "" {
		fmt.Fprintf(&b, "Track live: %s\n\n", dashboardURL)
	}
	fmt.Fprintf(&b, "Please check on %s immediately.\n", a.UserID)
	return b.String()
}
