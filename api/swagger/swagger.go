package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "TVTEC Portal Gateway",
        "description": "Gateway for the TVTEC course catalog and enrollment portal",
        "version": "0.1.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Auth", "description": "Session lifecycle"},
        {"name": "Courses", "description": "Course catalog and admin course management"},
        {"name": "Enrollments", "description": "Enrollment admission pipeline and roster"},
        {"name": "Reports", "description": "Report generation proxy"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"}
                }
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Authenticate and establish a session",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "Session established", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Invalid credentials"},
                    "502": {"description": "Course service unreachable"},
                    "503": {"description": "Course service unavailable"}
                }
            }
        },
        "/auth/session": {
            "get": {
                "tags": ["Auth"],
                "summary": "Current session status and claims",
                "responses": {
                    "200": {"description": "Session info", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Auth"],
                "summary": "Clear the current session",
                "responses": {
                    "204": {"description": "Session cleared"}
                }
            }
        },
        "/auth/validate": {
            "get": {
                "tags": ["Auth"],
                "summary": "Validate the stored token against the backend",
                "responses": {
                    "200": {"description": "Token accepted"},
                    "401": {"description": "Session expired or absent"}
                }
            }
        },
        "/cursos": {
            "get": {
                "tags": ["Courses"],
                "summary": "List available courses with enrollment status",
                "responses": {
                    "200": {"description": "Course list", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/inscricoes": {
            "post": {
                "tags": ["Enrollments"],
                "summary": "Submit an enrollment",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/EnrollmentDraft"}}
                ],
                "responses": {
                    "201": {"description": "Enrollment accepted"},
                    "409": {"description": "Course full or seat race lost"},
                    "422": {"description": "Field validation errors"}
                }
            }
        },
        "/inscricoes/validar": {
            "post": {
                "tags": ["Enrollments"],
                "summary": "Recompute validation and conditional-field state for a draft",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/EnrollmentDraft"}}
                ],
                "responses": {
                    "200": {"description": "Assist result", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/admin/cursos": {
            "post": {
                "tags": ["Courses"],
                "summary": "Register a new course (admin)",
                "responses": {
                    "201": {"description": "Course created"},
                    "401": {"description": "Unauthorized"},
                    "403": {"description": "Forbidden"}
                }
            }
        },
        "/admin/cursos/{id}": {
            "delete": {
                "tags": ["Courses"],
                "summary": "Delete a course (admin)",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "204": {"description": "Course deleted"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/admin/inscricoes": {
            "get": {
                "tags": ["Enrollments"],
                "summary": "List enrollment records (admin)",
                "responses": {
                    "200": {"description": "Enrollment roster"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/admin/inscricoes/{id}": {
            "delete": {
                "tags": ["Enrollments"],
                "summary": "Delete an enrollment record (admin)",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "204": {"description": "Enrollment deleted"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/admin/relatorio": {
            "post": {
                "tags": ["Reports"],
                "summary": "Request a report from the course service (admin)",
                "responses": {
                    "200": {"description": "Report response"},
                    "401": {"description": "Unauthorized"}
                }
            }
        }
    },
    "definitions": {
        "LoginRequest": {
            "type": "object",
            "required": ["username", "password"],
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "EnrollmentDraft": {
            "type": "object",
            "properties": {
                "nome": {"type": "string"},
                "cpf": {"type": "string"},
                "email": {"type": "string"},
                "telefone": {"type": "string"},
                "dataNascto": {"type": "string"},
                "sexo": {"type": "string"},
                "curso": {"type": "string"},
                "escolaridade": {"type": "string"},
                "trabalhando": {"type": "string"},
                "bairro": {"type": "string"},
                "ehCuidador": {"type": "string"},
                "ehPCD": {"type": "string"},
                "tipoPCD": {"type": "string"},
                "necessitaElevador": {"type": "string"},
                "comoSoube": {"type": "string"},
                "autorizaWhatsApp": {"type": "string"},
                "trazEquipamento": {"type": "string"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "fields": {"type": "object"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
