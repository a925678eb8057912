package payments

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ExtractionRules lists, per normalized field, the response paths a provider
// is known to use. Paths are dotted ("pix.qrcode") and tried in order; the
// first non-empty value wins. Every path is looked up in the "data" envelope
// first, when there is one, and then at the document root.
type ExtractionRules struct {
	ID         []string
	PixCode    []string
	PixQrCode  []string
	Status     []string
	Amount     []string
	ApprovedAt []string
	RejectedAt []string

	CustomerName  []string
	CustomerEmail []string
	CustomerCPF   []string
}

// document is a decoded JSON object with its lookup roots resolved.
type document struct {
	roots []map[string]any
}

func newDocument(raw map[string]any) document {
	roots := make([]map[string]any, 0, 2)
	if data, ok := raw["data"].(map[string]any); ok {
		roots = append(roots, data)
	}
	return document{roots: append(roots, raw)}
}

func (d document) lookup(path string) (any, bool) {
	for _, root := range d.roots {
		if v, ok := lookupPath(root, path); ok {
			return v, true
		}
	}
	return nil, false
}

// text returns the first non-blank string value. The value itself is
// returned untouched.
func (d document) text(paths []string) string {
	for _, p := range paths {
		for _, root := range d.roots {
			v, ok := lookupPath(root, p)
			if !ok {
				continue
			}
			if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
				return s
			}
		}
	}
	return ""
}

// scalar is like text but also accepts numbers, for ids and amounts.
func (d document) scalar(paths []string) string {
	for _, p := range paths {
		for _, root := range d.roots {
			v, ok := lookupPath(root, p)
			if !ok {
				continue
			}
			switch val := v.(type) {
			case string:
				if strings.TrimSpace(val) != "" {
					return strings.TrimSpace(val)
				}
			case json.Number:
				return val.String()
			case float64:
				return strconv.FormatFloat(val, 'f', -1, 64)
			}
		}
	}
	return ""
}

func (d document) cents(paths []string, decimalUnits bool) *int64 {
	raw := d.scalar(paths)
	if raw == "" {
		return nil
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return nil
	}
	if decimalUnits {
		amount = amount.Mul(decimal.NewFromInt(100))
	}
	c := amount.Round(0).IntPart()
	return &c
}

func (d document) timestamp(paths []string) *time.Time {
	raw := d.text(paths)
	if raw == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, raw); err == nil && !t.IsZero() {
			return &t
		}
	}
	return nil
}

func lookupPath(root map[string]any, path string) (any, bool) {
	var cur any = root
	for _, key := range strings.Split(path, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = m[key]
		if !ok || cur == nil {
			return nil, false
		}
	}
	return cur, true
}
