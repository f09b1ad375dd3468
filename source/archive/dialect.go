package archive

import (
	"strconv"
	"strings"
)

// The archive only uses the SQL all the drivers agree on, apart from the placeholders and the
// column types.
type dialect struct {
	placeholder func(n int) string
	text        string
	bigint      string
}

func question(int) string { return "?" }

var dialects = map[string]dialect{
	"firebirdsql": {question, "BLOB SUB_TYPE TEXT", "BIGINT"},
	"mysql":       {question, "TEXT", "BIGINT"},
	"oracle":      {func(n int) string { return ":" + strconv.Itoa(n) }, "CLOB", "NUMBER(19)"},
	"postgres":    {func(n int) string { return "$" + strconv.Itoa(n) }, "TEXT", "BIGINT"},
	"sqlite":      {question, "TEXT", "BIGINT"},
	"sqlserver":   {func(n int) string { return "@p" + strconv.Itoa(n) }, "NVARCHAR(MAX)", "BIGINT"},
}

func (d dialect) schema() string {
	return `CREATE TABLE curly_archive (
    name VARCHAR(64) NOT NULL PRIMARY KEY,
    hash CHAR(64) NOT NULL,
    source ` + d.text + ` NOT NULL,
    trace ` + d.text + ` NOT NULL,
    code ` + d.text + ` NOT NULL,
    created ` + d.bigint + ` NOT NULL
)`
}

// Replaces the '?' placeholders in the query with the dialect's own.
func (d dialect) rebind(query string) string {
	var sb strings.Builder
	n := 0
	for _, ch := range query {
		if ch == '?' {
			n++
			sb.WriteString(d.placeholder(n))
			continue
		}
		sb.WriteRune(ch)
	}
	return sb.String()
}
