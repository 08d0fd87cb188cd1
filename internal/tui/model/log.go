package model

import (
	"fmt"
	"strings"

	"empctl/pkg/logging"
)

// FormatLogEntry renders an entry as one activity log line.
func FormatLogEntry(entry logging.LogEntry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s [%s] [%s] %s",
		entry.Timestamp.Format("15:04:05.000"),
		entry.Level,
		entry.Subsystem,
		entry.Message,
	)
	if entry.Err != nil {
		fmt.Fprintf(&b, " (error: %v)", entry.Err)
	}
	return b.String()
}

// AddRawLineToActivityLog adds a pre-formatted log entry to the model's activity log,
// ensuring it doesn't exceed MaxActivityLogLines and sets the dirty flag.
func AddRawLineToActivityLog(m *Model, entry string) {
	m.ActivityLog = append(m.ActivityLog, entry)
	if len(m.ActivityLog) > MaxActivityLogLines {
		m.ActivityLog = m.ActivityLog[len(m.ActivityLog)-MaxActivityLogLines:]
	}
	m.ActivityLogDirty = true
}

// ActivityLogText joins the activity log for copying.
func ActivityLogText(m *Model) string {
	return strings.Join(m.ActivityLog, "\n")
}
