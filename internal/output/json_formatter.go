package output

import (
	"encoding/json"

	"github.com/investease/sip-planner/internal/domain"
)

// JSONFormatter serializes the report as pretty-printed JSON.
// Decimals are emitted as strings at full precision.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(report *domain.Report) ([]byte, error) {
	return json.MarshalIndent(report, "", "  ")
}
