package domain

import "time"

// SacramentType identifies which ledger a record belongs to.
type SacramentType string

const (
	Baptism      SacramentType = "BAPTISM"
	Confirmation SacramentType = "CONFIRMATION"
	Marriage     SacramentType = "MARRIAGE"
)

// RecordStatus indicates the state of a sacramental record.
type RecordStatus string

const (
	RecordActive   RecordStatus = "ACTIVE"
	RecordAnnulled RecordStatus = "ANNULLED"
)

// NaturalKey is the composite key identifying a ledger entry. Book, folio and
// entry stay strings so formats like "007" survive round-trips untouched.
type NaturalKey struct {
	ParishID      string        `json:"parishID"`
	SacramentType SacramentType `json:"sacramentType"`
	Book          string        `json:"book"`
	Folio         string        `json:"folio"`
	Entry         string        `json:"entry"`
}

// SacramentalRecord is one ledger entry for one sacrament.
// Its natural key must be unique among ACTIVE records of a parish; an annulled
// record keeps its key permanently so history stays auditable.
type SacramentalRecord struct {
	RecordID      string        `json:"recordID"` // Primary Key (UUID)
	ParishID      string        `json:"parishID"`
	SacramentType SacramentType `json:"sacramentType"`
	Book          string        `json:"book"`
	Folio         string        `json:"folio"`
	Entry         string        `json:"entry"`

	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	BirthDate       string    `json:"birthDate"`  // free text, legacy ledgers carry partial dates
	BirthPlace      string    `json:"birthPlace"` // canonical field, alias resolution happens at import mapping
	CelebrationDate time.Time `json:"celebrationDate"`
	MinisterName    string    `json:"ministerName"`

	FatherName string   `json:"fatherName"`
	MotherName string   `json:"motherName"`
	SpouseName string   `json:"spouseName"` // marriage only
	Godparents []string `json:"godparents"` // baptism/confirmation
	Witnesses  []string `json:"witnesses"`  // marriage

	// ParentalUnion is the legacy civil-status code of the parents' union.
	// Codes 1-3 are the original domain; 4 and 5 arrived with later exporters.
	ParentalUnion int `json:"parentalUnion"`

	CivilRegistrySerial string `json:"civilRegistrySerial"`
	CivilRegistryDate   string `json:"civilRegistryDate"`

	Status RecordStatus `json:"status"`

	// MarginalNote holds manually entered annotation text. Decree-derived
	// notes are resolved at display time and are never stored here.
	MarginalNote string `json:"marginalNote"`

	// ReplacesRecordID / ReplacedByRecordID must be mutually consistent:
	// if A.ReplacedByRecordID = B then B.ReplacesRecordID = A.
	ReplacesRecordID   *string `json:"replacesRecordID"`
	ReplacedByRecordID *string `json:"replacedByRecordID"`

	AuditFields
}

// Key extracts the record's natural key without normalization. Callers that
// need canonical comparison go through the recordkey package.
func (r *SacramentalRecord) Key() NaturalKey {
	return NaturalKey{
		ParishID:      r.ParishID,
		SacramentType: r.SacramentType,
		Book:          r.Book,
		Folio:         r.Folio,
		Entry:         r.Entry,
	}
}
