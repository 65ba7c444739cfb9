package repository

import (
	"github.com/cloudsizing/aws-inventory-go/internal/domain/entity"
)

// ReportRepository renders the accumulated totals for stdout.
type ReportRepository interface {
	FormatText(counters entity.ResourceCounters) string
	FormatJSON(counters entity.ResourceCounters) (string, error)
}
