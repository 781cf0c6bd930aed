// Package docs holds the generated swagger specification.
// Regenerate with: swag init -g cmd/main.go -o docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/": {
            "get": {
                "produces": ["application/json"],
                "summary": "API status",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/dto.HealthResponse"}
                    }
                }
            }
        },
        "/patients/add": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["patients"],
                "summary": "Register a new patient",
                "parameters": [
                    {
                        "description": "Patient registration data",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.RegisterPatientRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Patient registered successfully",
                        "schema": {"$ref": "#/definitions/dto.RegisterPatientResponse"}
                    },
                    "400": {
                        "description": "Missing required fields or store error",
                        "schema": {"$ref": "#/definitions/dto.ErrorResponse"}
                    },
                    "409": {
                        "description": "Patient ID already exists",
                        "schema": {"$ref": "#/definitions/dto.ErrorResponse"}
                    }
                }
            }
        },
        "/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["patients"],
                "summary": "Login patient",
                "parameters": [
                    {
                        "description": "Login credentials",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.LoginRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Login successful",
                        "schema": {"$ref": "#/definitions/dto.LoginResponse"}
                    },
                    "400": {
                        "description": "Missing required fields",
                        "schema": {"$ref": "#/definitions/dto.ErrorResponse"}
                    },
                    "401": {
                        "description": "Invalid credentials",
                        "schema": {"$ref": "#/definitions/dto.ErrorResponse"}
                    }
                }
            }
        },
        "/vitals/add": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["vitals"],
                "summary": "Record a vital reading",
                "parameters": [
                    {
                        "description": "Vital-sign fields, all optional",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.AddVitalsRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Vitals added successfully",
                        "schema": {"$ref": "#/definitions/dto.AddVitalsResponse"}
                    },
                    "400": {
                        "description": "Store error",
                        "schema": {"$ref": "#/definitions/dto.ErrorResponse"}
                    },
                    "401": {
                        "description": "Missing or invalid token",
                        "schema": {"$ref": "#/definitions/dto.ErrorResponse"}
                    }
                }
            }
        },
        "/dashboard": {
            "get": {
                "produces": ["text/html"],
                "tags": ["dashboard"],
                "summary": "Patient vitals dashboard",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Access token",
                        "name": "token",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Rendered dashboard",
                        "schema": {"type": "string"}
                    }
                }
            }
        }
    },
    "definitions": {
        "dto.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "details": {}
            }
        },
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "dto.RegisterPatientRequest": {
            "type": "object",
            "required": ["patient_id", "full_name", "date_of_birth"],
            "properties": {
                "patient_id": {"type": "string"},
                "full_name": {"type": "string"},
                "date_of_birth": {"type": "string"},
                "gender": {"type": "string"},
                "blood_group": {"type": "string"},
                "phone_number": {"type": "string"},
                "email": {"type": "string"},
                "address": {"type": "string"},
                "city": {"type": "string"},
                "state": {"type": "string"},
                "country": {"type": "string"},
                "height_cm": {"type": "number"},
                "weight_kg": {"type": "number"}
            }
        },
        "dto.RegisterPatientResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "patient_id": {"type": "string"}
            }
        },
        "dto.LoginRequest": {
            "type": "object",
            "required": ["email", "patient_id"],
            "properties": {
                "email": {"type": "string"},
                "patient_id": {"type": "string"}
            }
        },
        "dto.LoginResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "access_token": {"type": "string"},
                "token_type": {"type": "string"}
            }
        },
        "dto.AddVitalsRequest": {
            "type": "object",
            "properties": {
                "heart_rate_bpm": {"type": "number"},
                "systolic_bp_mmHg": {"type": "number"},
                "diastolic_bp_mmHg": {"type": "number"},
                "body_temperature_c": {"type": "number"},
                "respiratory_rate": {"type": "number"},
                "oxygen_saturation": {"type": "number"},
                "notes": {"type": "string"}
            }
        },
        "dto.AddVitalsResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "vital_id": {"type": "integer"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "HealthSync Backend API",
	Description:      "Clinic backend for patient registration, token auth, vitals recording and the vitals dashboard",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
