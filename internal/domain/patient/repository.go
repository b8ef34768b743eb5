package patient

import "context"

type Repository interface {
	// Create persists a new patient. Returns ErrPatientAlreadyExists on duplicate NationalID.
	Create(ctx context.Context, p *Patient) error

	// GetByNationalID retrieves a patient by their national identifier.
	// Returns ErrPatientNotFound if no identity record exists.
	GetByNationalID(ctx context.Context, nationalID string) (*Patient, error)

	// Update applies partial updates to an existing patient record.
	Update(ctx context.Context, nationalID string, cmd *UpdatePatientCommand) (*Patient, error)

	// SoftDelete marks the patient as deleted (medical retention requirement).
	SoftDelete(ctx context.Context, nationalID string) error

	// List returns a paginated, filtered list of patients.
	List(ctx context.Context, q *ListPatientsQuery) (*PagedPatients, error)

	// ExistsByNationalID checks for uniqueness without fetching the full record.
	ExistsByNationalID(ctx context.Context, nationalID string) (bool, error)
}
