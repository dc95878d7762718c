package app

import (
	"net/url"
	"strings"
)

const preparedBinaryParam = "disable_prepared_binary_result"

// normalizeDBURL forces disable_prepared_binary_result=yes on the connection
// URL unless the operator already set the parameter explicitly. PgBouncer in
// transaction mode breaks on prepared binary results.
func normalizeDBURL(raw string, disablePreparedBinary bool) string {
	if !disablePreparedBinary || strings.Contains(raw, preparedBinaryParam+"=") {
		return raw
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return raw
	}

	query := parsed.Query()
	query.Set(preparedBinaryParam, "yes")
	parsed.RawQuery = query.Encode()

	return parsed.String()
}

// dbNameFromURL extracts the database name from either URL-style or
// key=value DSN connection strings. Returns "" when it cannot tell.
func dbNameFromURL(raw string) string {
	raw = strings.TrimSpace(raw)

	if parsed, err := url.Parse(raw); err == nil && parsed.Scheme != "" {
		if name := strings.Trim(parsed.Path, "/"); name != "" {
			return name
		}
	}

	for _, token := range strings.Fields(raw) {
		key, value, found := strings.Cut(token, "=")
		if !found || key != "dbname" {
			continue
		}
		if name := strings.Trim(value, `"'`); name != "" {
			return name
		}
	}

	return ""
}
