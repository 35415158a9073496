package models

import "time"

// RecordStatus indicates the persisted state of a sacramental record.
type RecordStatus string

const (
	RecordActive   RecordStatus = "ACTIVE"
	RecordAnnulled RecordStatus = "ANNULLED"
)

// SacramentalRecord is the stored document shape of one ledger entry. These
// json tags are the storage schema of the record collections; changing them
// requires a data migration.
type SacramentalRecord struct {
	RecordID      string `json:"recordID"`
	ParishID      string `json:"parishID"`
	SacramentType string `json:"sacramentType"`
	Book          string `json:"book"`
	Folio         string `json:"folio"`
	Entry         string `json:"entry"`

	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	BirthDate       string    `json:"birthDate"`
	BirthPlace      string    `json:"birthPlace"`
	CelebrationDate time.Time `json:"celebrationDate"`
	MinisterName    string    `json:"ministerName"`

	FatherName string   `json:"fatherName"`
	MotherName string   `json:"motherName"`
	SpouseName string   `json:"spouseName"`
	Godparents []string `json:"godparents,omitempty"`
	Witnesses  []string `json:"witnesses,omitempty"`

	ParentalUnion int `json:"parentalUnion"`

	CivilRegistrySerial string `json:"civilRegistrySerial"`
	CivilRegistryDate   string `json:"civilRegistryDate"`

	Status       RecordStatus `json:"status"`
	MarginalNote string       `json:"marginalNote"`

	ReplacesRecordID   *string `json:"replacesRecordID,omitempty"`
	ReplacedByRecordID *string `json:"replacedByRecordID,omitempty"`

	AuditFields
}
