// Package docs registra el documento OpenAPI que sirve /docs (http-swagger).
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/intake/options": {
            "get": {
                "tags": ["intake"],
                "summary": "Opciones de tamaño y edad para la pantalla quick",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/intake.Options"}}}
            }
        },
        "/intake/details": {
            "post": {
                "tags": ["intake"],
                "summary": "Normaliza el formulario details y crea la mascota",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/intake.detailsRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/intake.Result"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/intake.errorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/intake.errorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/intake.errorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/intake.errorResponse"}}
                }
            }
        },
        "/intake/details/preview": {
            "post": {
                "tags": ["intake"],
                "summary": "Devuelve el record canónico sin enviarlo",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/intake.detailsRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/intake.Record"}}}
            }
        },
        "/intake/quick": {
            "post": {
                "tags": ["intake"],
                "summary": "Normaliza el formulario quick y crea la mascota",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/intake.quickRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/intake.Result"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/intake.errorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/intake.errorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/intake.errorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/intake.errorResponse"}}
                }
            }
        },
        "/intake/quick/preview": {
            "post": {
                "tags": ["intake"],
                "summary": "Devuelve el record canónico sin enviarlo",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/intake.quickRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/intake.Record"}}}
            }
        },
        "/me/submissions": {
            "get": {
                "tags": ["submissions"],
                "summary": "Lista los envíos del usuario autenticado",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/submissions.submissionResponse"}}}}
            }
        },
        "/submissions/{submissionID}": {
            "get": {
                "tags": ["submissions"],
                "summary": "Detalle de un envío (solo el dueño)",
                "parameters": [{"in": "path", "name": "submissionID", "required": true, "type": "string"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/submissions.submissionResponse"}},
                    "404": {"description": "Not Found"}
                }
            }
        }
    },
    "definitions": {
        "intake.contextRequest": {
            "type": "object",
            "properties": {
                "petType": {"type": "string", "example": "Dog"},
                "dates": {"type": "string"},
                "location": {"type": "string"}
            }
        },
        "intake.additionalDetailsRequest": {
            "type": "object",
            "properties": {
                "microChipped": {"type": "string", "enum": ["yes", "no", ""]},
                "spayedNeutered": {"type": "string", "enum": ["yes", "no", ""]},
                "friendlyWithChildren": {"type": "string", "enum": ["yes", "no", "unsure", ""]},
                "friendlyWithDogs": {"type": "string", "enum": ["yes", "no", "unsure", ""]},
                "friendlyWithCats": {"type": "string", "enum": ["yes", "no", "unsure", ""]}
            }
        },
        "intake.detailsRequest": {
            "type": "object",
            "properties": {
                "context": {"$ref": "#/definitions/intake.contextRequest"},
                "name": {"type": "string"},
                "breed": {"type": "string"},
                "weight": {"type": "string", "example": "65"},
                "ageYears": {"type": "string", "example": "2"},
                "ageMonths": {"type": "string", "example": "0"},
                "sex": {"type": "string", "enum": ["male", "female", ""]},
                "additionalDetails": {"$ref": "#/definitions/intake.additionalDetailsRequest"}
            }
        },
        "intake.quickRequest": {
            "type": "object",
            "properties": {
                "context": {"$ref": "#/definitions/intake.contextRequest"},
                "name": {"type": "string"},
                "size": {"type": "string", "enum": ["SMALL", "MEDIUM", "LARGE", "EXTRA_LARGE"]},
                "age": {"type": "string", "enum": ["PUPPY_KITTEN", "YOUNG", "ADULT", "SENIOR"]},
                "friendlyWithDogs": {"type": "string", "enum": ["Yes", "No", "Unsure", ""]},
                "friendlyWithCats": {"type": "string", "enum": ["Yes", "No", "Unsure", ""]}
            }
        },
        "intake.Record": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "type": {"type": "integer", "enum": [1, 2], "description": "1=DOG 2=CAT"},
                "size": {"type": "integer", "enum": [1, 2, 3, 4], "description": "1=SMALL 2=MEDIUM 3=LARGE 4=EXTRA_LARGE"},
                "age": {"type": "integer", "enum": [1, 2, 3, 4], "description": "1=PUPPY_KITTEN 2=YOUNG 3=ADULT 4=SENIOR"},
                "getAlongWithDogs": {"type": "boolean"},
                "getAlongWithCats": {"type": "boolean"},
                "isUnsureWithDogs": {"type": "boolean"},
                "isUnsureWithCats": {"type": "boolean"},
                "specialInstructions": {"type": "string"},
                "medicalConditions": {"type": "string"},
                "userId": {"type": "string"}
            }
        },
        "intake.Next": {
            "type": "object",
            "properties": {
                "screen": {"type": "string", "enum": ["PetDetails", "SitterResults"]},
                "initialData": {"$ref": "#/definitions/intake.contextRequest"}
            }
        },
        "intake.Result": {
            "type": "object",
            "properties": {
                "submissionId": {"type": "string"},
                "petId": {"type": "string"},
                "record": {"$ref": "#/definitions/intake.Record"},
                "next": {"$ref": "#/definitions/intake.Next"}
            }
        },
        "intake.Choice": {
            "type": "object",
            "properties": {
                "key": {"type": "string"},
                "label": {"type": "string"},
                "value": {"type": "integer"}
            }
        },
        "intake.Options": {
            "type": "object",
            "properties": {
                "sizes": {"type": "array", "items": {"$ref": "#/definitions/intake.Choice"}},
                "ages": {"type": "array", "items": {"$ref": "#/definitions/intake.Choice"}}
            }
        },
        "intake.errorResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        },
        "submissions.submissionResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "userId": {"type": "string"},
                "variant": {"type": "string", "enum": ["details", "quick"]},
                "petType": {"type": "string", "enum": ["DOG", "CAT"]},
                "petId": {"type": "string"},
                "status": {"type": "string", "enum": ["created", "failed"]},
                "error": {"type": "string"},
                "createdAt": {"type": "string", "format": "date-time"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "pet-intake API",
	Description:      "Normaliza los formularios de mascota y los envía al servicio de creación.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
