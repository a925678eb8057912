package payments

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// newTransactionID builds the client-side fallback id: prefix, unix time and
// 8 random hex chars, e.g. "gwb_1718000000_9f86d081".
func newTransactionID(prefix string) string {
	random := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%s_%d_%s", prefix, time.Now().Unix(), random)
}

// qrCodeURL renders pixCode through a generic chart service.
func qrCodeURL(chartURL, pixCode string) string {
	if pixCode == "" || chartURL == "" {
		return ""
	}
	return chartURL + url.QueryEscape(pixCode)
}

// qrImageRef turns a bare base64 PNG into a data URI. URLs and data URIs pass
// through unchanged.
func qrImageRef(v string) string {
	if v == "" {
		return ""
	}
	lower := strings.ToLower(v)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") || strings.HasPrefix(lower, "data:") {
		return v
	}
	return "data:image/png;base64," + v
}
