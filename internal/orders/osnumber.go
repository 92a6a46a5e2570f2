package orders

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"dtech-os/internal/models"
)

var osSeqRe = regexp.MustCompile(`-(\d{3})$`)

// NextOSNumber generates the next OS id in the YYYYMMDD-NNN shape by
// scanning today's existing orders for the highest daily sequence.
// Uniqueness across clients is not enforced here; collisions are left to
// the remote store.
func NextOSNumber(existing []models.Order, now time.Time) string {
	prefix := now.Format("20060102")

	next := 1
	for _, order := range existing {
		if len(order.ID) < 8 || order.ID[:8] != prefix {
			continue
		}
		m := osSeqRe.FindStringSubmatch(order.ID)
		if m == nil {
			continue
		}
		seq, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if seq >= next {
			next = seq + 1
		}
	}
	return fmt.Sprintf("%s-%03d", prefix, next)
}
