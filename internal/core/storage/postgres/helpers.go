package postgres

import (
	"encoding/json"
	"fmt"

	v1 "github.com/aevon-lab/reward-points/internal/api/v1"
)

// marshalRewards encodes a rewards slice as a JSON array for a jsonb parameter.
// A nil slice encodes as "[]" rather than "null" so concatenation stays valid.
func marshalRewards(rewards []v1.Reward) (string, error) {
	if rewards == nil {
		rewards = []v1.Reward{}
	}
	raw, err := json.Marshal(rewards)
	if err != nil {
		return "", fmt.Errorf("failed to marshal rewards: %w", err)
	}
	return string(raw), nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

// scanDocumentRow scans a period_documents row into a PeriodDocument.
// Compatible with both sql.Row (single) and sql.Rows (multiple).
func scanDocumentRow(row scanner) (*v1.PeriodDocument, error) {
	var doc v1.PeriodDocument
	var rewardsJSON []byte

	if err := row.Scan(&doc.ID, &doc.Identity, &doc.Month, &doc.Year, &rewardsJSON); err != nil {
		return nil, err
	}

	if len(rewardsJSON) > 0 {
		if err := json.Unmarshal(rewardsJSON, &doc.Rewards); err != nil {
			return nil, fmt.Errorf("failed to unmarshal rewards: %w", err)
		}
	}

	return &doc, nil
}
