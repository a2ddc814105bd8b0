// Package registration models the multi-step project registration wizard:
// the draft being assembled, the rules each step enforces and the project
// the finished draft turns into.
package registration

import (
	"time"

	"github.com/propease/propease-api/internal/inventory"
	"github.com/shopspring/decimal"
)

// BasicInfo is the first wizard step
type BasicInfo struct {
	ProjectName    string `json:"project_name"`
	ProjectCode    string `json:"project_code"`
	Address        string `json:"address"`
	StartDate      string `json:"start_date"`
	CompletionDate string `json:"completion_date"`
	Status         string `json:"status"`
	Progress       int    `json:"progress"`
}

// WingDraft is a wing saved into the draft
type WingDraft struct {
	ID             string               `json:"id"`
	Form           inventory.WingForm   `json:"form"`
	Floors         []inventory.FloorRow `json:"floors"`
	NoOfProperties int                  `json:"no_of_properties"`
}

// WingSession is the open wing modal. WingID is set when an already saved
// wing is being edited.
type WingSession struct {
	WingID string                `json:"wing_id,omitempty"`
	Form   inventory.WingForm    `json:"form"`
	Editor inventory.FloorEditor `json:"editor"`
}

// TotalUnits is the live unit count shown while editing
func (s *WingSession) TotalUnits() int {
	return inventory.ComputeTotalUnits(s.Editor.Rows)
}

// BankDraft is a bank account entered in the wizard
type BankDraft struct {
	ID            string `json:"id"`
	BankName      string `json:"bank_name"`
	BranchName    string `json:"branch_name"`
	ContactPerson string `json:"contact_person"`
	ContactNumber string `json:"contact_number"`
	IFSC          string `json:"ifsc"`
	AccountNo     string `json:"account_no"`
	AccountType   string `json:"account_type"`
}

// AmenityDraft is an amenity entered in the wizard
type AmenityDraft struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// DocumentDraft is an uploaded file waiting for the project to be created
type DocumentDraft struct {
	ID            string `json:"id"`
	DocumentType  string `json:"document_type"`
	Title         string `json:"title"`
	Path          string `json:"path"`
	ThumbnailPath string `json:"thumbnail_path,omitempty"`
}

// DisbursementDraft is a payment milestone entered in the wizard
type DisbursementDraft struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Percentage  decimal.Decimal `json:"percentage"`
}

// Draft is the whole state of one wizard session
type Draft struct {
	ID            string              `json:"id"`
	OwnerID       uint                `json:"owner_id"`
	Step          string              `json:"step"`
	Basic         BasicInfo           `json:"basic_info"`
	Wings         []WingDraft         `json:"wings"`
	WingSession   *WingSession        `json:"wing_session,omitempty"`
	Banks         []BankDraft         `json:"banks"`
	Amenities     []AmenityDraft      `json:"amenities"`
	Documents     []DocumentDraft     `json:"documents"`
	Disbursements []DisbursementDraft `json:"disbursements"`
	Submitting    bool                `json:"submitting"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

// Clone returns a deep copy that shares no slices with d
func (d Draft) Clone() Draft {
	out := d
	out.Wings = make([]WingDraft, len(d.Wings))
	for i, w := range d.Wings {
		w.Floors = append([]inventory.FloorRow(nil), w.Floors...)
		out.Wings[i] = w
	}
	if d.WingSession != nil {
		s := *d.WingSession
		s.Editor = s.Editor.Clone()
		out.WingSession = &s
	}
	out.Banks = append([]BankDraft{}, d.Banks...)
	out.Amenities = append([]AmenityDraft{}, d.Amenities...)
	out.Documents = append([]DocumentDraft{}, d.Documents...)
	out.Disbursements = append([]DisbursementDraft{}, d.Disbursements...)
	return out
}

// DisbursementTotal sums the milestone percentages
func (d Draft) DisbursementTotal() decimal.Decimal {
	total := decimal.Zero
	for _, m := range d.Disbursements {
		total = total.Add(m.Percentage)
	}
	return total
}

// TotalUnits sums the unit counts of all saved wings
func (d Draft) TotalUnits() int {
	total := 0
	for _, w := range d.Wings {
		total += w.NoOfProperties
	}
	return total
}
