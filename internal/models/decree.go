package models

import "time"

// NaturalKeyRef is the stored snapshot of an annulled record's natural key.
type NaturalKeyRef struct {
	ParishID      string `json:"parishID"`
	SacramentType string `json:"sacramentType"`
	Book          string `json:"book"`
	Folio         string `json:"folio"`
	Entry         string `json:"entry"`
}

// Decree is the stored document shape of an administrative decree. Decrees
// are write-once; there is no update path in any repository.
type Decree struct {
	DecreeID           string         `json:"decreeID"`
	DecreeNumber       string         `json:"decreeNumber"`
	DecreeDate         time.Time      `json:"decreeDate"`
	Category           string         `json:"category"`
	AnnulmentConceptID *string        `json:"annulmentConceptID,omitempty"`
	OriginalRecordRef  *NaturalKeyRef `json:"originalRecordRef,omitempty"`
	NewRecordID        string         `json:"newRecordID"`
	ParishID           string         `json:"parishID"`
	CreatedBy          string         `json:"createdBy"`
	CreatedAt          time.Time      `json:"createdAt"`

	// OriginType is set only on the copy written into the parent chancery
	// partition; it is empty on the parish's own decree.
	OriginType string `json:"originType,omitempty"`
}
