package enrollment

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Gabriel-Dorassi/tvtec-portal/internal/models"
)

var emailValidator = validator.New()

// requiredMessages holds the per-field messages surfaced when a mandatory
// answer is missing.
var requiredMessages = map[string]string{
	models.FieldName:          "Nome é obrigatório",
	models.FieldCPF:           "CPF é obrigatório",
	models.FieldEmail:         "Email é obrigatório",
	models.FieldPhone:         "Telefone celular é obrigatório",
	models.FieldBirthDate:     "Data de nascimento é obrigatória",
	models.FieldGender:        "Selecione o sexo",
	models.FieldCourse:        "Selecione um curso",
	models.FieldEducation:     "Escolaridade é obrigatória",
	models.FieldEmployed:      "Informe se está trabalhando",
	models.FieldNeighborhood:  "Bairro é obrigatório",
	models.FieldCaregiver:     "Informe se é cuidador de alguém",
	models.FieldDisability:    "Informe se é PCD",
	models.FieldDisabilityTyp: "Informe o tipo de PCD",
	models.FieldNeedsElevator: "Informe se necessita de elevador",
	models.FieldReferral:      "Informe como soube do curso",
	models.FieldWhatsApp:      "Informe se autoriza contato por WhatsApp",
	models.FieldOwnDevice:     "Informe se trará o próprio equipamento",
}

// Validate recomputes the full validation result for the draft. The mapping
// is rebuilt from scratch on every pass; an empty map means the draft is
// eligible for submission. Validation failures are data, never errors.
func Validate(draft models.EnrollmentDraft) map[string]string {
	result := make(map[string]string)

	for _, field := range RequiredFields(draft) {
		if strings.TrimSpace(fieldValue(draft, field)) == "" {
			result[field] = requiredMessages[field]
		}
	}

	if _, missing := result[models.FieldCPF]; !missing && !ValidCPF(draft.CPF) {
		result[models.FieldCPF] = "CPF inválido"
	}
	if _, missing := result[models.FieldEmail]; !missing {
		if err := emailValidator.Var(strings.TrimSpace(draft.Email), "email"); err != nil {
			result[models.FieldEmail] = "Email inválido"
		}
	}

	return result
}
