package registration

import (
	"fmt"
	"time"

	"github.com/propease/propease-api/internal/inventory"
	"github.com/propease/propease-api/internal/models"
)

// BuildProject converts a validated draft into the project aggregate to
// persist. Wings carry their typed floors; units are laid out once the
// floors have ids.
func BuildProject(d Draft) (*models.Project, error) {
	if err := ValidateSubmission(d); err != nil {
		return nil, err
	}

	start, _ := time.Parse(models.DateLayout, d.Basic.StartDate)
	completion, _ := time.Parse(models.DateLayout, d.Basic.CompletionDate)

	project := &models.Project{
		Name:           d.Basic.ProjectName,
		ProjectCode:    d.Basic.ProjectCode,
		Address:        d.Basic.Address,
		StartDate:      start,
		CompletionDate: completion,
		Status:         d.Basic.Status,
		Progress:       d.Basic.Progress,
	}
	if project.Status == "" {
		project.Status = models.ProjectStatusUpcoming
	}

	for _, w := range d.Wings {
		wing, err := inventory.ValidateWing(w.Form, w.Floors)
		if err != nil {
			return nil, fmt.Errorf("wing %s: %w", w.Form.WingName, err)
		}
		project.Wings = append(project.Wings, wing)
	}

	for _, b := range d.Banks {
		project.Banks = append(project.Banks, models.BankInfo{
			BankName:      b.BankName,
			BranchName:    b.BranchName,
			ContactPerson: b.ContactPerson,
			ContactNumber: b.ContactNumber,
			IFSC:          b.IFSC,
			AccountNo:     b.AccountNo,
			AccountType:   b.AccountType,
		})
	}

	for _, a := range d.Amenities {
		project.Amenities = append(project.Amenities, models.Amenity{AmenityName: a.Name})
	}

	for _, doc := range d.Documents {
		project.Documents = append(project.Documents, models.Document{
			DocumentType:  doc.DocumentType,
			DocumentTitle: doc.Title,
			Path:          doc.Path,
			ThumbnailPath: doc.ThumbnailPath,
		})
	}

	for _, m := range d.Disbursements {
		project.Disbursements = append(project.Disbursements, models.Disbursement{
			Title:       m.Title,
			Description: m.Description,
			Percentage:  m.Percentage,
		})
	}

	return project, nil
}
