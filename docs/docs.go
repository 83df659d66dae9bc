// Package docs registers the swagger document served under /swagger.
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
        "/orgs": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Organizations"],
                "summary": "List the current user's organizations",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.OrganizationResponse"}}
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {"type": "object", "additionalProperties": {"type": "string"}}
                    },
                    "502": {
                        "description": "Bad Gateway",
                        "schema": {"type": "object", "additionalProperties": {"type": "string"}}
                    }
                }
            }
        },
        "/orgs/{login}/repos": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Organizations"],
                "summary": "List an organization's repositories",
                "parameters": [
                    {"type": "string", "description": "Organization login", "name": "login", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.RepoResponse"}}
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {"type": "object", "additionalProperties": {"type": "string"}}
                    }
                }
            }
        },
        "/tasks": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "List tasks",
                "parameters": [
                    {"type": "string", "description": "Repository full name", "name": "project", "in": "query"},
                    {"type": "string", "description": "Contributor username", "name": "contributor", "in": "query"},
                    {"type": "string", "description": "Contract role, needs project and contributor", "name": "role", "in": "query"},
                    {"type": "string", "description": "Provider, github by default", "name": "provider", "in": "query"},
                    {"type": "boolean", "description": "Only unassigned tasks", "name": "unassigned", "in": "query"}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.TaskResponse"}}
                    }
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "Register an issue as a task",
                "parameters": [
                    {"description": "Issue", "name": "request", "in": "body", "required": true,
                     "schema": {"$ref": "#/definitions/handler.RegisterTaskRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.TaskResponse"}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "409": {"description": "Conflict", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/tasks/lookup": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "Find a task by issue",
                "parameters": [
                    {"type": "string", "description": "Repository full name", "name": "repo", "in": "query", "required": true},
                    {"type": "string", "description": "Issue id", "name": "issue_id", "in": "query", "required": true},
                    {"type": "string", "description": "Provider, github by default", "name": "provider", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.TaskResponse"}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "handler.OrganizationResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "login": {"type": "string"}
            }
        },
        "handler.RegisterTaskRequest": {
            "type": "object",
            "required": ["issue_id", "provider", "repo_full_name"],
            "properties": {
                "issue_id": {"type": "string"},
                "provider": {"type": "string"},
                "pull_request": {"type": "boolean"},
                "repo_full_name": {"type": "string"},
                "title": {"type": "string"}
            }
        },
        "handler.RepoResponse": {
            "type": "object",
            "properties": {
                "active": {"type": "boolean"},
                "full_name": {"type": "string"},
                "private": {"type": "boolean"},
                "provider": {"type": "string"}
            }
        },
        "handler.TaskResponse": {
            "type": "object",
            "properties": {
                "assignee": {"type": "string"},
                "assignment_date": {"type": "string"},
                "deadline": {"type": "string"},
                "issue_id": {"type": "string"},
                "issue_state": {"type": "string"},
                "issue_title": {"type": "string"},
                "provider": {"type": "string"},
                "repo_full_name": {"type": "string"},
                "role": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
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
	Schemes:          []string{"http"},
	Title:            "Contribhub API",
	Description:      "Task ownership and assignment for code-hosting projects.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
