package types

// Embedding 表的结构体，workspace 与 quick-study 两张表结构一致。
// Raw holds the embedding column exactly as the storage layer returned it;
// decoding to a numeric vector is deferred to the ranking pass so that a
// malformed row degrades to a skip instead of a query failure.
type Embedding struct {
	ID         string `json:"id" db:"id"`
	ScopeID    string `json:"scope_id" db:"scope_id"`
	DocumentID string `json:"document_id" db:"document_id"`
	PageNumber int    `json:"page_number" db:"page_number"`
	ChunkText  string `json:"chunk_text" db:"chunk_text"`
	Raw        string `json:"-" db:"embedding"`
	CreatedAt  int64  `json:"created_at" db:"created_at"`

	// Vector is the in-memory form, populated at ingest time only.
	Vector []float32 `json:"-" db:"-"`
}
