package domain

// RejectedRow is one bulk-import row that failed validation. RowNumber is the
// 1-based position in the uploaded file so operators can fix source data
// without re-deriving which row failed.
type RejectedRow struct {
	RowNumber int    `json:"rowNumber"`
	Reason    string `json:"reason"`
}

// DuplicateRow is one bulk-import row whose natural key collides with an
// existing active record or an earlier row in the same batch.
type DuplicateRow struct {
	RowNumber int        `json:"rowNumber"`
	Key       NaturalKey `json:"key"`
}

// ImportBatch is the in-memory result of reconciling one uploaded dataset.
// It is never persisted; a separate user-confirmed step persists ValidNew.
type ImportBatch struct {
	ParishID      string              `json:"parishID"`
	SacramentType SacramentType       `json:"sacramentType"`
	ValidNew      []SacramentalRecord `json:"validNew"`
	Duplicates    []DuplicateRow      `json:"duplicates"`
	Invalid       []RejectedRow       `json:"invalid"`
}

// Total is the number of rows classified; it always equals the uploaded row
// count.
func (b *ImportBatch) Total() int {
	return len(b.ValidNew) + len(b.Duplicates) + len(b.Invalid)
}
