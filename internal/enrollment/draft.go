package enrollment

import "github.com/Gabriel-Dorassi/tvtec-portal/internal/models"

// UpdateField returns a copy of the draft with one field replaced. Unknown
// field names leave the draft untouched. Derived flags are recomputed by the
// caller after every update rather than patched alongside it, so they can
// never drift from the values they depend on.
func UpdateField(draft models.EnrollmentDraft, field, value string) models.EnrollmentDraft {
	switch field {
	case models.FieldName:
		draft.Name = value
	case models.FieldCPF:
		draft.CPF = value
	case models.FieldEmail:
		draft.Email = value
	case models.FieldPhone:
		draft.Phone = value
	case models.FieldBirthDate:
		draft.BirthDate = value
	case models.FieldGender:
		draft.Gender = value
	case models.FieldCourse:
		draft.Course = value
	case models.FieldEducation:
		draft.Education = value
	case models.FieldEmployed:
		draft.Employed = value
	case models.FieldNeighborhood:
		draft.Neighborhood = value
	case models.FieldCaregiver:
		draft.Caregiver = value
	case models.FieldDisability:
		draft.Disability = value
	case models.FieldDisabilityTyp:
		draft.DisabilityTyp = value
	case models.FieldNeedsElevator:
		draft.NeedsElevator = value
	case models.FieldReferral:
		draft.Referral = value
	case models.FieldWhatsApp:
		draft.WhatsApp = value
	case models.FieldOwnDevice:
		draft.OwnDevice = value
	}
	return draft
}

// fieldValue reads a draft field by name.
func fieldValue(draft models.EnrollmentDraft, field string) string {
	switch field {
	case models.FieldName:
		return draft.Name
	case models.FieldCPF:
		return draft.CPF
	case models.FieldEmail:
		return draft.Email
	case models.FieldPhone:
		return draft.Phone
	case models.FieldBirthDate:
		return draft.BirthDate
	case models.FieldGender:
		return draft.Gender
	case models.FieldCourse:
		return draft.Course
	case models.FieldEducation:
		return draft.Education
	case models.FieldEmployed:
		return draft.Employed
	case models.FieldNeighborhood:
		return draft.Neighborhood
	case models.FieldCaregiver:
		return draft.Caregiver
	case models.FieldDisability:
		return draft.Disability
	case models.FieldDisabilityTyp:
		return draft.DisabilityTyp
	case models.FieldNeedsElevator:
		return draft.NeedsElevator
	case models.FieldReferral:
		return draft.Referral
	case models.FieldWhatsApp:
		return draft.WhatsApp
	case models.FieldOwnDevice:
		return draft.OwnDevice
	}
	return ""
}
