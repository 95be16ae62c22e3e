package enrollment

import (
	"strings"
	"time"

	"github.com/Gabriel-Dorassi/tvtec-portal/internal/models"
	appErrors "github.com/Gabriel-Dorassi/tvtec-portal/pkg/errors"
)

// CheckCapacity resolves the draft's selected course against the snapshot and
// rejects when no seat remains. The check is advisory: the snapshot may be
// stale and the backend keeps the authoritative decision, so a later conflict
// response is a legitimate outcome, not a bug.
func CheckCapacity(draft models.EnrollmentDraft, courses []models.Course) (models.Course, error) {
	name := strings.TrimSpace(draft.Course)
	for _, course := range courses {
		if course.Name != name {
			continue
		}
		if !course.HasOpenSeats() {
			return models.Course{}, appErrors.Clone(appErrors.ErrCourseFull, "")
		}
		return course, nil
	}
	return models.Course{}, appErrors.Clone(appErrors.ErrCourseNotFound, "")
}

// Normalize produces the constant-shape submission payload: digits-only CPF
// and phone, lower-cased trimmed e-mail, dd/MM/yyyy dates, the course
// resolved to its numeric identity and the enrollment moment stamped in. The
// conditional answers always carry an explicit value — empty or negative when
// their branch was not taken — so the payload shape never varies.
// Normalizing an already-normalized draft is a no-op.
func Normalize(draft models.EnrollmentDraft, course models.Course, now time.Time) models.SubmissionPayload {
	disabilityTyp := ""
	needsElevator := models.AnswerNo
	if draft.Disability == models.AnswerYes {
		disabilityTyp = strings.TrimSpace(draft.DisabilityTyp)
		needsElevator = draft.NeedsElevator
	}

	ownDevice := models.AnswerNo
	if isDeviceCourse(draft.Course) && draft.OwnDevice != "" {
		ownDevice = draft.OwnDevice
	}

	return models.SubmissionPayload{
		Name:           strings.TrimSpace(draft.Name),
		CPF:            digitsOnly(draft.CPF),
		Email:          strings.ToLower(strings.TrimSpace(draft.Email)),
		Gender:         draft.Gender,
		Phone:          digitsOnly(draft.Phone),
		BirthDate:      toDayMonthYear(draft.BirthDate),
		Course:         course.ID,
		EnrollmentDate: now.Format("02/01/2006"),
		Education:      draft.Education,
		Employed:       draft.Employed,
		Neighborhood:   strings.TrimSpace(draft.Neighborhood),
		Caregiver:      draft.Caregiver,
		Disability:     draft.Disability,
		DisabilityTyp:  disabilityTyp,
		NeedsElevator:  needsElevator,
		Referral:       draft.Referral,
		WhatsApp:       draft.WhatsApp,
		OwnDevice:      ownDevice,
	}
}

// toDayMonthYear converts an ISO yyyy-MM-dd date to the upstream dd/MM/yyyy
// textual format. Dates already in the target format pass through unchanged,
// which keeps normalization idempotent.
func toDayMonthYear(date string) string {
	if date == "" || strings.Contains(date, "/") {
		return date
	}
	parts := strings.Split(date, "-")
	if len(parts) != 3 {
		return date
	}
	return parts[2] + "/" + parts[1] + "/" + parts[0]
}
