package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// newFactureID builds a human-scannable invoice number: the issue date plus a
// short random suffix, e.g. INV-20250114-3fa85f64.
func newFactureID(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("INV-%s-%s", now.Format("20060102"), suffix)
}
