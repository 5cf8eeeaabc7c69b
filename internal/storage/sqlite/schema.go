// ABOUTME: Database schema definitions for transcript, chunk, and A/B pair storage
// ABOUTME: Applied on every open; statements are idempotent
package sqlite

// Schema defines the database tables
const Schema = `
CREATE TABLE IF NOT EXISTS documents (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	text TEXT NOT NULL,
	word_count INTEGER NOT NULL DEFAULT 0,
	added_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS chunks (
	id TEXT PRIMARY KEY,
	document_id TEXT NOT NULL,
	text TEXT NOT NULL,
	start_word INTEGER NOT NULL,
	end_word INTEGER NOT NULL,
	vector TEXT NOT NULL,
	embedded_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (document_id) REFERENCES documents(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_chunks_document ON chunks(document_id);

CREATE TABLE IF NOT EXISTS ab_pairs (
	id TEXT PRIMARY KEY,
	document_id TEXT NOT NULL,
	document_title TEXT NOT NULL,
	summary_a TEXT NOT NULL,
	summary_b TEXT NOT NULL,
	variant_details TEXT NOT NULL,
	winner TEXT,
	feedback_reason TEXT,
	feedback_at TIMESTAMP,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_ab_pairs_document ON ab_pairs(document_id);

CREATE TABLE IF NOT EXISTS preferences (
	id TEXT PRIMARY KEY,
	pair_id TEXT NOT NULL,
	winner TEXT NOT NULL,
	reason TEXT,
	recorded_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (pair_id) REFERENCES ab_pairs(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_preferences_pair ON preferences(pair_id);
`
