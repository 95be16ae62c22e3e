// Package enrollment implements the admission pipeline: derived form state,
// field validation, the advisory capacity check and payload normalization.
// Every derivation is a pure function of the current draft values; nothing
// here keeps requirement flags as independent mutable state.
package enrollment

import (
	"strings"
	"time"

	"github.com/Gabriel-Dorassi/tvtec-portal/internal/models"
)

// deviceCourseKeyword marks courses where students work on their own
// machines, making the brings-own-device question mandatory.
const deviceCourseKeyword = "canva"

// adultAge is the age at which the guardian-consent notice stops applying.
const adultAge = 18

// Flags is the derived visibility state for a draft.
type Flags struct {
	ShowDisabilityFields bool
	ShowDeviceField      bool
	Minor                bool
}

// DeriveFlags recomputes the conditional-field state from the draft values.
// Minor is informational only (it surfaces the guardian-consent notice) and
// never makes a field required.
func DeriveFlags(draft models.EnrollmentDraft, today time.Time) Flags {
	return Flags{
		ShowDisabilityFields: draft.Disability == models.AnswerYes,
		ShowDeviceField:      isDeviceCourse(draft.Course),
		Minor:                isMinor(draft.BirthDate, today),
	}
}

// RequiredFields returns the field names currently mandatory for the draft:
// the base set, plus the disability sub-fields when the disability answer is
// affirmative, plus the own-device question for device-dependent courses.
func RequiredFields(draft models.EnrollmentDraft) []string {
	fields := []string{
		models.FieldName,
		models.FieldCPF,
		models.FieldEmail,
		models.FieldPhone,
		models.FieldBirthDate,
		models.FieldGender,
		models.FieldCourse,
		models.FieldEducation,
		models.FieldEmployed,
		models.FieldNeighborhood,
		models.FieldCaregiver,
		models.FieldDisability,
		models.FieldReferral,
		models.FieldWhatsApp,
	}

	if draft.Disability == models.AnswerYes {
		fields = append(fields, models.FieldDisabilityTyp, models.FieldNeedsElevator)
	}
	if isDeviceCourse(draft.Course) {
		fields = append(fields, models.FieldOwnDevice)
	}
	return fields
}

func isDeviceCourse(courseName string) bool {
	return strings.Contains(strings.ToLower(courseName), deviceCourseKeyword)
}

func isMinor(birthDate string, today time.Time) bool {
	born, err := time.Parse("2006-01-02", birthDate)
	if err != nil {
		return false
	}
	age := today.Year() - born.Year()
	if today.Month() < born.Month() || (today.Month() == born.Month() && today.Day() < born.Day()) {
		age--
	}
	return age < adultAge
}
