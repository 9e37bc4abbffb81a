// internal/app/features/parts/parts.go
package parts

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/dalemusser/liftadmin/internal/domain/models"
)

// The backend has no parts endpoint yet, so the list is placeholder data.
//
//go:embed samples.json
var samplesJSON []byte

// SampleParts decodes the embedded placeholder list.
func SampleParts() ([]models.Part, error) {
	var out []models.Part
	if err := json.Unmarshal(samplesJSON, &out); err != nil {
		return nil, fmt.Errorf("decode sample parts: %w", err)
	}
	return out, nil
}

var statusLabels = map[string]string{
	models.PartStatusAvailable: "موجود",
	models.PartStatusLowStock:  "کم‌موجود",
	models.PartStatusOrdered:   "سفارش داده شده",
}

// StatusLabel is the Persian label for a part status.
func StatusLabel(status string) string {
	if l, ok := statusLabels[status]; ok {
		return l
	}
	return status
}
