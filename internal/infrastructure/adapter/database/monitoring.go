package database

import (
	"database/sql"
	"strings"
	"time"
)

// PoolStatsRecorder receives connection pool snapshots
type PoolStatsRecorder interface {
	SetDBPoolStats(stats sql.DBStats)
}

// QueryObserver receives the outcome of every SQL statement
type QueryObserver interface {
	ObserveQuery(queryType string, elapsed time.Duration, failed bool)
}

// extractQueryType determines the type of SQL statement
func extractQueryType(sql string) string {
	sqlUpper := strings.ToUpper(strings.TrimSpace(sql))

	for _, prefix := range []string{"SELECT", "INSERT", "UPDATE", "DELETE", "CREATE", "DROP", "ALTER"} {
		if strings.HasPrefix(sqlUpper, prefix) {
			return prefix
		}
	}
	return ""
}

// extractTableName attempts to extract the table name from the SQL statement
func extractTableName(sql string) string {
	trimmed := strings.TrimSpace(sql)
	sqlUpper := strings.ToUpper(trimmed)

	var fromIndex int
	switch {
	case strings.Contains(sqlUpper, " FROM "):
		fromIndex = strings.Index(sqlUpper, " FROM ") + 6
	case strings.Contains(sqlUpper, " INTO "):
		fromIndex = strings.Index(sqlUpper, " INTO ") + 6
	case strings.HasPrefix(sqlUpper, "UPDATE "):
		fromIndex = 7
	default:
		return ""
	}

	remainder := strings.TrimSpace(trimmed[fromIndex:])
	if spaceIndex := strings.IndexAny(remainder, " (\n"); spaceIndex != -1 {
		remainder = remainder[:spaceIndex]
	}

	return strings.Trim(remainder, `"`)
}
