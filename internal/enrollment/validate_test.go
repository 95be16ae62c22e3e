package enrollment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gabriel-Dorassi/tvtec-portal/internal/models"
)

func completeDraft() models.EnrollmentDraft {
	return models.EnrollmentDraft{
		Name:         "Maria da Silva",
		CPF:          "529.982.247-25",
		Email:        "maria@example.com",
		Phone:        "(13) 98765-4321",
		BirthDate:    "1990-05-20",
		Gender:       "F",
		Course:       "Excel Básico",
		Education:    "Médio completo",
		Employed:     models.AnswerNo,
		Neighborhood: "Centro",
		Caregiver:    models.AnswerNo,
		Disability:   models.AnswerNo,
		Referral:     "Redes Sociais",
		WhatsApp:     models.AnswerYes,
	}
}

func TestValidateCompleteDraft(t *testing.T) {
	assert.Empty(t, Validate(completeDraft()))
}

func TestValidateMissingEmailOnly(t *testing.T) {
	draft := completeDraft()
	draft.Email = ""

	result := Validate(draft)
	require.Len(t, result, 1)
	assert.NotEmpty(t, result[models.FieldEmail])
}

func TestValidateInvalidValues(t *testing.T) {
	draft := completeDraft()
	draft.CPF = "123.456.789-00"
	draft.Email = "not-an-email"

	result := Validate(draft)
	assert.Equal(t, "CPF inválido", result[models.FieldCPF])
	assert.Equal(t, "Email inválido", result[models.FieldEmail])
}

func TestValidateConditionalDisabilityFields(t *testing.T) {
	draft := completeDraft()
	draft.Disability = models.AnswerYes

	result := Validate(draft)
	assert.Contains(t, result, models.FieldDisabilityTyp)
	assert.Contains(t, result, models.FieldNeedsElevator)

	draft.DisabilityTyp = "Visual"
	draft.NeedsElevator = models.AnswerNo
	assert.Empty(t, Validate(draft))

	// Sub-fields stop being required the moment the answer flips back.
	draft.Disability = models.AnswerNo
	draft.DisabilityTyp = ""
	draft.NeedsElevator = ""
	assert.Empty(t, Validate(draft))
}

func TestValidateDeviceCourse(t *testing.T) {
	draft := completeDraft()
	draft.Course = "Canva Básico"

	result := Validate(draft)
	assert.Contains(t, result, models.FieldOwnDevice)

	draft.OwnDevice = models.AnswerYes
	assert.Empty(t, Validate(draft))
}

func TestValidateEmptyDraftListsBaseFields(t *testing.T) {
	result := Validate(models.EnrollmentDraft{})
	assert.Equal(t, "Nome é obrigatório", result[models.FieldName])
	assert.Equal(t, "CPF é obrigatório", result[models.FieldCPF])
	assert.Equal(t, "Selecione um curso", result[models.FieldCourse])
	assert.NotContains(t, result, models.FieldDisabilityTyp)
	assert.NotContains(t, result, models.FieldOwnDevice)
}
