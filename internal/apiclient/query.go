package apiclient

import (
	"net/url"
	"strconv"
	"strings"
)

// query keeps parameters in the order they were added. url.Values sorts keys
// on Encode, which would reorder filters.
type query struct {
	pairs []string
}

func newQuery() *query {
	return &query{}
}

func (q *query) str(key, value string) *query {
	if value != "" {
		q.pairs = append(q.pairs, url.QueryEscape(key)+"="+url.QueryEscape(value))
	}
	return q
}

func (q *query) int(key string, value int) *query {
	if value != 0 {
		q.pairs = append(q.pairs, url.QueryEscape(key)+"="+strconv.Itoa(value))
	}
	return q
}

func (q *query) encode() string {
	return strings.Join(q.pairs, "&")
}

func (q *query) apply(path string) string {
	if len(q.pairs) == 0 {
		return path
	}
	return path + "?" + q.encode()
}

func segment(parts ...string) string {
	var b strings.Builder
	for _, p := range parts {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(p))
	}
	return b.String()
}
