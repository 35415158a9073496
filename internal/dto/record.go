package dto

import (
	"time"

	"github.com/parishbooks/parish_registry_app/internal/core/domain"
)

// RecordFields carries the user-entered field set for a new record. Dates
// arrive as strings so malformed values surface as per-field validation
// errors instead of failing the whole bind.
type RecordFields struct {
	// Book/Folio/Entry may be supplied in chancery-issued context; when empty
	// the next key in the parish+sacrament sequence is allocated.
	Book  string `json:"book"`
	Folio string `json:"folio"`
	Entry string `json:"entry"`

	FirstName       string   `json:"firstName"`
	LastName        string   `json:"lastName"`
	BirthDate       string   `json:"birthDate"`
	BirthPlace      string   `json:"birthPlace"`
	CelebrationDate string   `json:"celebrationDate"` // YYYY-MM-DD
	MinisterName    string   `json:"ministerName"`
	FatherName      string   `json:"fatherName"`
	MotherName      string   `json:"motherName"`
	SpouseName      string   `json:"spouseName"`
	Godparents      []string `json:"godparents"`
	Witnesses       []string `json:"witnesses"`
	ParentalUnion   int      `json:"parentalUnion"`

	CivilRegistrySerial string `json:"civilRegistrySerial"`
	CivilRegistryDate   string `json:"civilRegistryDate"`

	MarginalNote string `json:"marginalNote"`
}

// RecordResponse is the display shape of a record. ResolvedMarginalNote is
// computed from the tenant's current templates at response time.
type RecordResponse struct {
	RecordID      string `json:"recordID"`
	ParishID      string `json:"parishID"`
	SacramentType string `json:"sacramentType"`
	Book          string `json:"book"`
	Folio         string `json:"folio"`
	Entry         string `json:"entry"`

	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	BirthDate       string    `json:"birthDate,omitempty"`
	BirthPlace      string    `json:"birthPlace,omitempty"`
	CelebrationDate time.Time `json:"celebrationDate"`
	MinisterName    string    `json:"ministerName,omitempty"`
	FatherName      string    `json:"fatherName,omitempty"`
	MotherName      string    `json:"motherName,omitempty"`
	SpouseName      string    `json:"spouseName,omitempty"`
	Godparents      []string  `json:"godparents,omitempty"`
	Witnesses       []string  `json:"witnesses,omitempty"`
	ParentalUnion   int       `json:"parentalUnion,omitempty"`

	CivilRegistrySerial string `json:"civilRegistrySerial,omitempty"`
	CivilRegistryDate   string `json:"civilRegistryDate,omitempty"`

	Status               string  `json:"status"`
	ResolvedMarginalNote string  `json:"resolvedMarginalNote"`
	ReplacesRecordID     *string `json:"replacesRecordID,omitempty"`
	ReplacedByRecordID   *string `json:"replacedByRecordID,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	CreatedBy string    `json:"createdBy"`
}

// ToRecordResponse converts a domain record plus its resolved note.
func ToRecordResponse(r *domain.SacramentalRecord, resolvedNote string) RecordResponse {
	return RecordResponse{
		RecordID:             r.RecordID,
		ParishID:             r.ParishID,
		SacramentType:        string(r.SacramentType),
		Book:                 r.Book,
		Folio:                r.Folio,
		Entry:                r.Entry,
		FirstName:            r.FirstName,
		LastName:             r.LastName,
		BirthDate:            r.BirthDate,
		BirthPlace:           r.BirthPlace,
		CelebrationDate:      r.CelebrationDate,
		MinisterName:         r.MinisterName,
		FatherName:           r.FatherName,
		MotherName:           r.MotherName,
		SpouseName:           r.SpouseName,
		Godparents:           r.Godparents,
		Witnesses:            r.Witnesses,
		ParentalUnion:        r.ParentalUnion,
		CivilRegistrySerial:  r.CivilRegistrySerial,
		CivilRegistryDate:    r.CivilRegistryDate,
		Status:               string(r.Status),
		ResolvedMarginalNote: resolvedNote,
		ReplacesRecordID:     r.ReplacesRecordID,
		ReplacedByRecordID:   r.ReplacedByRecordID,
		CreatedAt:            r.CreatedAt,
		CreatedBy:            r.CreatedBy,
	}
}

// ListRecordsResponse wraps a parish record listing.
type ListRecordsResponse struct {
	Records []RecordResponse `json:"records"`
}
