// Package docs registers the OpenAPI document served at /v1/swagger.
// Regenerate with `swag init -g cmd/api/main.go` after changing handler annotations.
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
		"/health": {
			"get": {
				"tags": [
					"health"
				],
				"summary": "Service health",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					},
					"503": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					}
				}
			}
		},
		"/auth/signup": {
			"post": {
				"tags": [
					"auth"
				],
				"summary": "Register a user",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					},
					"409": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"in": "body",
						"name": "user",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				]
			}
		},
		"/auth/login": {
			"post": {
				"tags": [
					"auth"
				],
				"summary": "Log in",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"in": "body",
						"name": "credentials",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				]
			}
		},
		"/auth/forgot-password": {
			"post": {
				"tags": [
					"auth"
				],
				"summary": "Request a password reset code",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"in": "body",
						"name": "request",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				]
			}
		},
		"/auth/verify-reset-code": {
			"post": {
				"tags": [
					"auth"
				],
				"summary": "Check a password reset code",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"in": "body",
						"name": "request",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				]
			}
		},
		"/auth/reset-password": {
			"post": {
				"tags": [
					"auth"
				],
				"summary": "Set a new password with a reset code",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"in": "body",
						"name": "request",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				]
			}
		},
		"/auth/me": {
			"get": {
				"tags": [
					"auth"
				],
				"summary": "Current user",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/jobs": {
			"get": {
				"tags": [
					"jobs"
				],
				"summary": "List jobs",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"in": "query",
						"name": "recruiterId",
						"required": false,
						"type": "string"
					},
					{
						"in": "query",
						"name": "search",
						"required": false,
						"type": "string"
					},
					{
						"in": "query",
						"name": "location",
						"required": false,
						"type": "string"
					},
					{
						"in": "query",
						"name": "type",
						"required": false,
						"type": "string"
					},
					{
						"in": "query",
						"name": "experience",
						"required": false,
						"type": "array",
						"items": {
							"type": "string"
						},
						"collectionFormat": "multi"
					},
					{
						"in": "query",
						"name": "salary",
						"required": false,
						"type": "array",
						"items": {
							"type": "string"
						},
						"collectionFormat": "multi"
					},
					{
						"in": "query",
						"name": "sort",
						"required": false,
						"type": "string"
					},
					{
						"in": "query",
						"name": "page",
						"required": false,
						"type": "integer"
					},
					{
						"in": "query",
						"name": "page_size",
						"required": false,
						"type": "integer"
					}
				]
			},
			"post": {
				"tags": [
					"jobs"
				],
				"summary": "Post a job",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					},
					"403": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"in": "body",
						"name": "job",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/jobs/{id}": {
			"get": {
				"tags": [
					"jobs"
				],
				"summary": "Get a job",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"in": "path",
						"name": "id",
						"required": true
					}
				]
			},
			"put": {
				"tags": [
					"jobs"
				],
				"summary": "Update a job",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					},
					"403": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"in": "path",
						"name": "id",
						"required": true
					},
					{
						"in": "body",
						"name": "job",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"delete": {
				"tags": [
					"jobs"
				],
				"summary": "Delete a job",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					},
					"403": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"in": "path",
						"name": "id",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/jobs/{id}/recount": {
			"post": {
				"tags": [
					"jobs"
				],
				"summary": "Recount applicants",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"in": "path",
						"name": "id",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/applications": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"tags": [
					"applications"
				],
				"summary": "List applications",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"in": "query",
						"name": "userId",
						"required": false,
						"type": "string"
					},
					{
						"in": "query",
						"name": "jobId",
						"required": false,
						"type": "string"
					}
				]
			},
			"post": {
				"tags": [
					"applications"
				],
				"summary": "Apply to a job",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					},
					"409": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"in": "body",
						"name": "application",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/applications/{id}": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"tags": [
					"applications"
				],
				"summary": "Get an application",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"in": "path",
						"name": "id",
						"required": true
					}
				]
			},
			"patch": {
				"tags": [
					"applications"
				],
				"summary": "Change an application's status",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"in": "path",
						"name": "id",
						"required": true
					},
					{
						"in": "body",
						"name": "status",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"delete": {
				"tags": [
					"applications"
				],
				"summary": "Withdraw an application",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					},
					"403": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"in": "path",
						"name": "id",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/profile": {
			"get": {
				"tags": [
					"profile"
				],
				"summary": "Get a candidate profile",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"in": "query",
						"name": "userId",
						"required": true,
						"type": "string"
					}
				]
			},
			"post": {
				"tags": [
					"profile"
				],
				"summary": "Create or update a candidate profile",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					},
					"403": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"in": "body",
						"name": "profile",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/companies": {
			"get": {
				"tags": [
					"companies"
				],
				"summary": "List companies",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					}
				}
			},
			"post": {
				"tags": [
					"companies"
				],
				"summary": "Add a company",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"in": "body",
						"name": "company",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/companies/{id}": {
			"get": {
				"tags": [
					"companies"
				],
				"summary": "Get a company",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"in": "path",
						"name": "id",
						"required": true
					}
				]
			},
			"put": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"tags": [
					"companies"
				],
				"summary": "Update a company",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"in": "path",
						"name": "id",
						"required": true
					},
					{
						"in": "body",
						"name": "company",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				]
			},
			"delete": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"tags": [
					"companies"
				],
				"summary": "Delete a company",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"in": "path",
						"name": "id",
						"required": true
					}
				]
			}
		},
		"/contact": {
			"post": {
				"tags": [
					"contact"
				],
				"summary": "Submit Contact Form",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					},
					"500": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"in": "body",
						"name": "contact",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				]
			}
		},
		"/saved-jobs": {
			"get": {
				"tags": [
					"saved-jobs"
				],
				"summary": "List saved jobs",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					},
					"403": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					}
				},
				"parameters": [],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"post": {
				"tags": [
					"saved-jobs"
				],
				"summary": "Save a job",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					},
					"403": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"in": "body",
						"name": "request",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/saved-jobs/{jobId}": {
			"get": {
				"tags": [
					"saved-jobs"
				],
				"summary": "Whether a job is saved",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					},
					"403": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"in": "path",
						"name": "jobId",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"delete": {
				"tags": [
					"saved-jobs"
				],
				"summary": "Remove a saved job",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					},
					"403": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"in": "path",
						"name": "jobId",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		}
	},
	"definitions": {
		"response.ErrorResponse": {
			"type": "object",
			"properties": {
				"success": {
					"type": "boolean"
				},
				"error": {
					"type": "string"
				},
				"request_id": {
					"type": "string"
				}
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
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "Job Board API",
	Description:      "Job board backend: accounts, job postings, applications, candidate profiles, companies and contact.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
