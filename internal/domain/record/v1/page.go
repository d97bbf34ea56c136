package v1

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Records is an ordered sequence of Record values as returned by one endpoint.
type Records []*Record

// DecodeRecords parses a JSON array of objects. An empty body or `null`
// decodes to an empty sequence.
func DecodeRecords(data []byte) (Records, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return Records{}, nil
	}
	if data[0] != '[' {
		return nil, fmt.Errorf("expected JSON array of records, got %q", preview(data))
	}
	var recs Records
	if err := json.Unmarshal(data, &recs); err != nil {
		return nil, err
	}
	if recs == nil {
		recs = Records{}
	}
	for i, r := range recs {
		if r == nil {
			return nil, fmt.Errorf("record %d is null", i)
		}
	}
	return recs, nil
}

// Columns returns the union of field names in first-seen order, starting
// with the given leading columns.
func (rs Records) Columns(leading ...string) []string {
	seen := make(map[string]struct{}, len(leading))
	cols := make([]string, 0, len(leading))
	add := func(k string) {
		if _, ok := seen[k]; ok {
			return
		}
		seen[k] = struct{}{}
		cols = append(cols, k)
	}
	for _, k := range leading {
		add(k)
	}
	for _, r := range rs {
		for _, f := range r.Fields() {
			add(f.Key)
		}
	}
	return cols
}

// RRDIDField is the continuation id carried by each detailed-report row.
const RRDIDField = "rrd_id"

// Page is one response of the detailed-report endpoint.
type Page struct {
	Records   Records
	LastRRDID int64
}

// NewPage builds a Page, taking the continuation id from the last record.
func NewPage(recs Records) *Page {
	p := &Page{Records: recs}
	if n := len(recs); n > 0 {
		p.LastRRDID, _ = recs[n-1].Int(RRDIDField)
	}
	return p
}

// Len returns the number of records on the page.
func (p *Page) Len() int {
	return len(p.Records)
}

// SalesResult is the response of the sales-list endpoint with request metadata.
type SalesResult struct {
	Records    Records
	Count      int
	Truncated  bool
	StatusCode int
}

func preview(b []byte) string {
	if len(b) > 64 {
		return string(b[:64]) + "..."
	}
	return string(b)
}
