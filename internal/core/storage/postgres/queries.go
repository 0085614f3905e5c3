package postgres

// SQL for the period document store. Each period document is one row; the
// rewards sequence lives in a JSONB array so an append is a single-row update.

const (
	queryDocumentExists = `
		SELECT EXISTS (
			SELECT 1 FROM period_documents WHERE id = $1
		)
	`

	// queryInsertDocument creates a document with its full rewards sequence.
	// ON CONFLICT appends instead of failing so a writer that lost the
	// existence race still never produces a second document.
	queryInsertDocument = `
		INSERT INTO period_documents (
			id, identity, month, year, rewards, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5::jsonb, $6, $6)
		ON CONFLICT (id) DO UPDATE SET
			rewards    = period_documents.rewards || EXCLUDED.rewards,
			updated_at = EXCLUDED.updated_at
	`

	// queryAppendRewards concatenates new entries onto the end of the array.
	// Zero rows affected means the document does not exist.
	queryAppendRewards = `
		UPDATE period_documents
		SET rewards = rewards || $2::jsonb, updated_at = $3
		WHERE id = $1
	`

	// querySumRewards totals rewardPointAmt across one document's rewards.
	// An absent document aggregates over zero rows and yields 0.
	querySumRewards = `
		SELECT COALESCE(SUM((r.value ->> 'rewardPointAmt')::bigint), 0)
		FROM period_documents d
		CROSS JOIN LATERAL jsonb_array_elements(d.rewards) AS r(value)
		WHERE d.id = $1
	`

	queryGetDocument = `
		SELECT id, identity, month, year, rewards
		FROM period_documents
		WHERE id = $1
	`
)
