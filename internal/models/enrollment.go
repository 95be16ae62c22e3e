package models

import "time"

// Draft field names, shared between required-field derivation, validation and
// the JSON form contract.
const (
	FieldName          = "nome"
	FieldCPF           = "cpf"
	FieldEmail         = "email"
	FieldPhone         = "telefone"
	FieldBirthDate     = "dataNascto"
	FieldGender        = "sexo"
	FieldCourse        = "curso"
	FieldEducation     = "escolaridade"
	FieldEmployed      = "trabalhando"
	FieldNeighborhood  = "bairro"
	FieldCaregiver     = "ehCuidador"
	FieldDisability    = "ehPCD"
	FieldDisabilityTyp = "tipoPCD"
	FieldNeedsElevator = "necessitaElevador"
	FieldReferral      = "comoSoube"
	FieldWhatsApp      = "autorizaWhatsApp"
	FieldOwnDevice     = "trazEquipamento"
)

// Answer values for the yes/no selects.
const (
	AnswerYes = "S"
	AnswerNo  = "N"
)

// EnrollmentDraft is the in-progress form state for one enrollment. All
// derived requirement flags are pure functions of these values and are never
// stored alongside them.
type EnrollmentDraft struct {
	Name          string `json:"nome"`
	CPF           string `json:"cpf"`
	Email         string `json:"email"`
	Phone         string `json:"telefone"`
	BirthDate     string `json:"dataNascto"`
	Gender        string `json:"sexo"`
	Course        string `json:"curso"`
	Education     string `json:"escolaridade"`
	Employed      string `json:"trabalhando"`
	Neighborhood  string `json:"bairro"`
	Caregiver     string `json:"ehCuidador"`
	Disability    string `json:"ehPCD"`
	DisabilityTyp string `json:"tipoPCD"`
	NeedsElevator string `json:"necessitaElevador"`
	Referral      string `json:"comoSoube"`
	WhatsApp      string `json:"autorizaWhatsApp"`
	OwnDevice     string `json:"trazEquipamento"`
}

// SubmissionPayload is the normalized shape posted to the upstream enrollment
// endpoint. Its shape is constant: conditional fields not currently required
// carry an explicit empty/negative value rather than being omitted.
type SubmissionPayload struct {
	Name           string `json:"nome"`
	CPF            string `json:"cpf"`
	Email          string `json:"email"`
	Gender         string `json:"sexo"`
	Phone          string `json:"telefone"`
	BirthDate      string `json:"dataNascto"`
	Course         int64  `json:"curso"`
	EnrollmentDate string `json:"dataInscricao"`
	Education      string `json:"escolaridade"`
	Employed       string `json:"trabalhando"`
	Neighborhood   string `json:"bairro"`
	Caregiver      string `json:"ehCuidador"`
	Disability     string `json:"ehPCD"`
	DisabilityTyp  string `json:"tipoPCD"`
	NeedsElevator  string `json:"necessitaElevador"`
	Referral       string `json:"comoSoube"`
	WhatsApp       string `json:"autorizaWhatsApp"`
	OwnDevice      string `json:"trazEquipamento"`
}

// EnrollmentRecord is the admin-facing record returned by the upstream
// listing endpoint.
type EnrollmentRecord struct {
	ID             int64  `json:"id"`
	Name           string `json:"nome"`
	CPF            string `json:"cpf"`
	Email          string `json:"email"`
	Course         string `json:"curso"`
	EnrollmentDate string `json:"dataInscricao"`
}

// SubmissionReceipt confirms a successful enrollment submission.
type SubmissionReceipt struct {
	Reference   string    `json:"referencia"`
	Course      string    `json:"curso"`
	CourseID    int64     `json:"cursoId"`
	SubmittedAt time.Time `json:"enviadoEm"`
}

// AssistResult is the form-assistance shape: current validation errors plus
// the derived visibility/requirement state for the draft as typed so far.
type AssistResult struct {
	Errors              map[string]string `json:"erros"`
	RequiredFields      []string          `json:"camposObrigatorios"`
	ShowDisabilityField bool              `json:"mostrarCamposPCD"`
	ShowDeviceField     bool              `json:"mostrarTrazEquipamento"`
	Minor               bool              `json:"menorDeIdade"`
	Eligible            bool              `json:"apto"`
}
