package registration

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/propease/propease-api/internal/apperrors"
	"github.com/propease/propease-api/internal/inventory"
	"github.com/propease/propease-api/internal/models"
	"github.com/propease/propease-api/internal/statemachine"
	"github.com/shopspring/decimal"
)

var projectCodePattern = regexp.MustCompile(`^[A-Z0-9]{12}$`)

var hundred = decimal.NewFromInt(100)

// ValidProjectCode reports whether code is a 12 character MahaRERA number
func ValidProjectCode(code string) bool {
	return projectCodePattern.MatchString(code)
}

// ValidateBasicInfo checks the first wizard step
func ValidateBasicInfo(b BasicInfo) error {
	if strings.TrimSpace(b.ProjectName) == "" || b.ProjectCode == "" || b.StartDate == "" || b.CompletionDate == "" {
		return apperrors.Validation("Please fill all required fields")
	}
	if !ValidProjectCode(b.ProjectCode) {
		return apperrors.FieldValidation("project_code", "Invalid Maharera number format")
	}
	start, err := time.Parse(models.DateLayout, b.StartDate)
	if err != nil {
		return apperrors.FieldValidation("start_date", "Start date must be in YYYY-MM-DD format")
	}
	completion, err := time.Parse(models.DateLayout, b.CompletionDate)
	if err != nil {
		return apperrors.FieldValidation("completion_date", "Completion date must be in YYYY-MM-DD format")
	}
	if completion.Before(start) {
		return apperrors.FieldValidation("completion_date", "Completion date cannot be before start date")
	}
	if b.Status != "" && !models.ValidProjectStatus(b.Status) {
		return apperrors.FieldValidation("status", "Invalid project status")
	}
	if b.Progress < 0 || b.Progress > 100 {
		return apperrors.FieldValidation("progress", "Progress must be between 0 and 100")
	}
	return nil
}

// ValidateStep is the gate checked before leaving step
func ValidateStep(d Draft, step string) error {
	switch step {
	case statemachine.StepBasicInfo:
		return ValidateBasicInfo(d.Basic)
	case statemachine.StepWingsAndFloors:
		if d.WingSession != nil {
			return apperrors.Validation("Save or close the open wing before continuing")
		}
	}
	return nil
}

// NewDraft starts an empty draft on the first step
func NewDraft(ownerID uint, now time.Time) Draft {
	return Draft{
		ID:            uuid.NewString(),
		OwnerID:       ownerID,
		Step:          statemachine.StepBasicInfo,
		Wings:         []WingDraft{},
		Banks:         []BankDraft{},
		Amenities:     []AmenityDraft{},
		Documents:     []DocumentDraft{},
		Disbursements: []DisbursementDraft{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Next validates the current step and moves forward
func Next(ctx context.Context, d Draft) (Draft, error) {
	w, err := statemachine.NewWizardFSM(d.Step)
	if err != nil {
		return d, err
	}
	if err := w.Next(ctx, func(step string) error { return ValidateStep(d, step) }); err != nil {
		return d, err
	}
	d.Step = w.Current()
	return d, nil
}

// Prev moves one step back
func Prev(ctx context.Context, d Draft) (Draft, error) {
	w, err := statemachine.NewWizardFSM(d.Step)
	if err != nil {
		return d, err
	}
	if err := w.Prev(ctx); err != nil {
		return d, err
	}
	d.Step = w.Current()
	return d, nil
}

// SetBasicInfo stores the first step. The code is normalised to upper case;
// validation happens when leaving the step.
func SetBasicInfo(d Draft, b BasicInfo) Draft {
	b.ProjectName = strings.TrimSpace(b.ProjectName)
	b.ProjectCode = strings.ToUpper(strings.TrimSpace(b.ProjectCode))
	b.StartDate = strings.TrimSpace(b.StartDate)
	b.CompletionDate = strings.TrimSpace(b.CompletionDate)
	d.Basic = b
	return d
}

// OpenWing opens the wing modal, either empty or loaded with a saved wing.
// A saved wing opens in manual mode so its rows are not regenerated.
func OpenWing(d Draft, wingID string) (Draft, error) {
	if wingID == "" {
		d.WingSession = &WingSession{Editor: inventory.NewFloorEditor(nil)}
		return d, nil
	}
	i := findWing(d, wingID)
	if i < 0 {
		return d, fmt.Errorf("wing %s: %w", wingID, apperrors.ErrNotFound)
	}
	w := d.Wings[i]
	form := w.Form
	form.ManualFloorEntry = true
	d.WingSession = &WingSession{
		WingID: w.ID,
		Form:   form,
		Editor: inventory.NewFloorEditor(w.Floors),
	}
	return d, nil
}

// SetWingForm updates the wing header. Unless floors are entered manually the
// rows are reconciled with the new floor count.
func SetWingForm(d Draft, form inventory.WingForm, defaults inventory.FloorDefaults) (Draft, error) {
	s, err := session(d)
	if err != nil {
		return d, err
	}
	if form.NoOfFloors < 0 {
		return d, apperrors.FieldValidation("no_of_floors", "No. of floors cannot be negative")
	}
	s.Form = form
	if !form.ManualFloorEntry {
		editor, err := s.Editor.Resize(form.NoOfFloors, defaults)
		if err != nil {
			return d, err
		}
		s.Editor = editor
	}
	d.WingSession = s
	return d, nil
}

// SetPendingRow replaces the floor row input buffer
func SetPendingRow(d Draft, row inventory.FloorRow) (Draft, error) {
	s, err := session(d)
	if err != nil {
		return d, err
	}
	s.Editor = s.Editor.SetPending(row)
	d.WingSession = s
	return d, nil
}

// CommitRow adds or replaces a floor row
func CommitRow(d Draft, row inventory.FloorRow, editingIndex int) (Draft, error) {
	s, err := session(d)
	if err != nil {
		return d, err
	}
	editor, err := s.Editor.AddOrUpdate(row, editingIndex)
	if err != nil {
		return d, err
	}
	s.Editor = editor
	d.WingSession = s
	return d, nil
}

// EditRow loads a floor row into the buffer
func EditRow(d Draft, index int) (Draft, error) {
	s, err := session(d)
	if err != nil {
		return d, err
	}
	editor, err := s.Editor.Edit(index)
	if err != nil {
		return d, err
	}
	s.Editor = editor
	d.WingSession = s
	return d, nil
}

// DeleteRow removes a floor row
func DeleteRow(d Draft, index int) (Draft, error) {
	s, err := session(d)
	if err != nil {
		return d, err
	}
	editor, err := s.Editor.Delete(index)
	if err != nil {
		return d, err
	}
	s.Editor = editor
	d.WingSession = s
	return d, nil
}

// SaveWing validates the open wing and stores it in the draft
func SaveWing(d Draft) (Draft, WingDraft, error) {
	d = d.Clone()
	s, err := session(d)
	if err != nil {
		return d, WingDraft{}, err
	}
	wing, err := inventory.ValidateWing(s.Form, s.Editor.Rows)
	if err != nil {
		return d, WingDraft{}, err
	}

	form := s.Form
	form.WingName = wing.WingName
	form.NoOfProperties = wing.NoOfProperties
	saved := WingDraft{
		ID:             s.WingID,
		Form:           form,
		Floors:         append([]inventory.FloorRow(nil), s.Editor.Rows...),
		NoOfProperties: wing.NoOfProperties,
	}

	if i := findWing(d, s.WingID); s.WingID != "" && i >= 0 {
		d.Wings[i] = saved
	} else {
		saved.ID = uuid.NewString()
		d.Wings = append(d.Wings, saved)
	}
	d.WingSession = nil
	return d, saved, nil
}

// CloseWing discards the open wing modal
func CloseWing(d Draft) Draft {
	d.WingSession = nil
	return d
}

// RemoveWing drops a saved wing
func RemoveWing(d Draft, wingID string) (Draft, error) {
	d = d.Clone()
	i := findWing(d, wingID)
	if i < 0 {
		return d, fmt.Errorf("wing %s: %w", wingID, apperrors.ErrNotFound)
	}
	d.Wings = append(d.Wings[:i], d.Wings[i+1:]...)
	return d, nil
}

// AddBank validates and appends a bank account
func AddBank(d Draft, b BankDraft) (Draft, BankDraft, error) {
	d = d.Clone()
	b.BankName = strings.TrimSpace(b.BankName)
	b.BranchName = strings.TrimSpace(b.BranchName)
	b.ContactPerson = strings.TrimSpace(b.ContactPerson)
	b.ContactNumber = strings.TrimSpace(b.ContactNumber)
	b.AccountNo = strings.TrimSpace(b.AccountNo)
	b.IFSC = strings.ToUpper(strings.TrimSpace(b.IFSC))
	if b.BankName == "" || b.BranchName == "" || b.ContactPerson == "" || b.ContactNumber == "" || b.AccountNo == "" {
		return d, BankDraft{}, apperrors.Validation("Please fill all required bank fields")
	}
	if b.AccountType == "" {
		b.AccountType = models.AccountTypeSavings
	}
	if b.AccountType != models.AccountTypeSavings && b.AccountType != models.AccountTypeCurrent {
		return d, BankDraft{}, apperrors.FieldValidation("account_type", "Invalid account type")
	}
	b.ID = uuid.NewString()
	d.Banks = append(d.Banks, b)
	return d, b, nil
}

// RemoveBank drops a bank account
func RemoveBank(d Draft, id string) (Draft, error) {
	d = d.Clone()
	for i, b := range d.Banks {
		if b.ID == id {
			d.Banks = append(d.Banks[:i], d.Banks[i+1:]...)
			return d, nil
		}
	}
	return d, fmt.Errorf("bank %s: %w", id, apperrors.ErrNotFound)
}

// AddAmenity appends a unique, non-blank amenity
func AddAmenity(d Draft, name string) (Draft, AmenityDraft, error) {
	d = d.Clone()
	name = strings.TrimSpace(name)
	if name == "" {
		return d, AmenityDraft{}, apperrors.FieldValidation("name", "Amenity name is required")
	}
	for _, a := range d.Amenities {
		if strings.EqualFold(a.Name, name) {
			return d, AmenityDraft{}, apperrors.Conflictf("Amenity %q already added", name)
		}
	}
	a := AmenityDraft{ID: uuid.NewString(), Name: name}
	d.Amenities = append(d.Amenities, a)
	return d, a, nil
}

// RemoveAmenity drops an amenity
func RemoveAmenity(d Draft, id string) (Draft, error) {
	d = d.Clone()
	for i, a := range d.Amenities {
		if a.ID == id {
			d.Amenities = append(d.Amenities[:i], d.Amenities[i+1:]...)
			return d, nil
		}
	}
	return d, fmt.Errorf("amenity %s: %w", id, apperrors.ErrNotFound)
}

// AddDocument appends an uploaded document
func AddDocument(d Draft, doc DocumentDraft) (Draft, DocumentDraft, error) {
	d = d.Clone()
	doc.Title = strings.TrimSpace(doc.Title)
	if doc.Title == "" || doc.Path == "" {
		return d, DocumentDraft{}, apperrors.Validation("Document title and file are required")
	}
	if !models.ValidDocumentType(doc.DocumentType) {
		return d, DocumentDraft{}, apperrors.FieldValidation("document_type", "Invalid document type")
	}
	doc.ID = uuid.NewString()
	d.Documents = append(d.Documents, doc)
	return d, doc, nil
}

// RemoveDocument drops a document and returns it so its file can be removed
func RemoveDocument(d Draft, id string) (Draft, DocumentDraft, error) {
	d = d.Clone()
	for i, doc := range d.Documents {
		if doc.ID == id {
			d.Documents = append(d.Documents[:i], d.Documents[i+1:]...)
			return d, doc, nil
		}
	}
	return d, DocumentDraft{}, fmt.Errorf("document %s: %w", id, apperrors.ErrNotFound)
}

// AddDisbursement appends a milestone. The running total may not pass 100%.
func AddDisbursement(d Draft, m DisbursementDraft) (Draft, DisbursementDraft, error) {
	d = d.Clone()
	m.Title = strings.TrimSpace(m.Title)
	if m.Title == "" {
		return d, DisbursementDraft{}, apperrors.FieldValidation("title", "Disbursement title is required")
	}
	if !m.Percentage.IsPositive() {
		return d, DisbursementDraft{}, apperrors.FieldValidation("percentage", "Percentage must be greater than 0")
	}
	total := d.DisbursementTotal().Add(m.Percentage)
	if total.GreaterThan(hundred) {
		return d, DisbursementDraft{}, apperrors.Conflictf("Total disbursement cannot exceed 100%% (currently %s%%)", d.DisbursementTotal().String())
	}
	m.ID = uuid.NewString()
	d.Disbursements = append(d.Disbursements, m)
	return d, m, nil
}

// RemoveDisbursement drops a milestone
func RemoveDisbursement(d Draft, id string) (Draft, error) {
	d = d.Clone()
	for i, m := range d.Disbursements {
		if m.ID == id {
			d.Disbursements = append(d.Disbursements[:i], d.Disbursements[i+1:]...)
			return d, nil
		}
	}
	return d, fmt.Errorf("disbursement %s: %w", id, apperrors.ErrNotFound)
}

// ValidateSubmission checks everything a draft needs before it becomes a project
func ValidateSubmission(d Draft) error {
	if d.Step != statemachine.StepReview {
		return apperrors.Conflict("Project can only be submitted from the review step")
	}
	if err := ValidateBasicInfo(d.Basic); err != nil {
		return err
	}
	if d.WingSession != nil {
		return apperrors.Validation("Save or close the open wing before submitting")
	}
	if len(d.Wings) == 0 {
		return apperrors.Validation("Please add at least one wing")
	}
	if len(d.Banks) == 0 {
		return apperrors.Validation("Please add at least one bank")
	}
	if total := d.DisbursementTotal(); !total.Equal(hundred) {
		return apperrors.Conflictf("Total disbursement must equal 100%% (currently %s%%)", total.String())
	}
	return nil
}

func findWing(d Draft, id string) int {
	for i, w := range d.Wings {
		if w.ID == id {
			return i
		}
	}
	return -1
}

// session returns a private copy of the open wing session
func session(d Draft) (*WingSession, error) {
	if d.WingSession == nil {
		return nil, apperrors.Conflict("No wing is open for editing")
	}
	s := *d.WingSession
	s.Editor = s.Editor.Clone()
	return &s, nil
}
