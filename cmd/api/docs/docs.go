// Package docs registers the OpenAPI document served under /swagger. It is maintained
// alongside the handler annotations; docs_test.go fails when a mounted route is missing here.
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
            "get": {"produces": ["application/json"], "tags": ["health"], "summary": "Liveness probe", "responses": {"200": {"description": "OK"}}}
        },
        "/normalize": {
            "post": {"consumes": ["application/json"], "produces": ["application/json"], "tags": ["quiz"], "summary": "Normalize quiz text",
                "parameters": [{"description": "Quiz text and style (bullets or headings)", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.NormalizeRequest"}}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}
        },
        "/workspaces": {
            "post": {"produces": ["application/json"], "tags": ["workspace"], "summary": "Open a study workspace", "responses": {"201": {"description": "Created"}}}
        },
        "/workspaces/current": {
            "delete": {"security": [{"ApiKeyAuth": []}], "tags": ["workspace"], "summary": "End the study session", "responses": {"204": {"description": "No Content"}, "401": {"description": "Unauthorized"}}}
        },
        "/study/generate": {
            "post": {"security": [{"ApiKeyAuth": []}], "consumes": ["application/json"], "produces": ["application/json"], "tags": ["study"], "summary": "Explain and quiz a text",
                "parameters": [{"description": "Study text and settings", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.StudyRequest"}}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "401": {"description": "Unauthorized"}}}
        },
        "/study/explain": {
            "post": {"security": [{"ApiKeyAuth": []}], "consumes": ["application/json"], "produces": ["application/json"], "tags": ["study"], "summary": "Explain a text",
                "parameters": [{"description": "Study text and settings", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.StudyRequest"}}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "401": {"description": "Unauthorized"}}}
        },
        "/study/quiz": {
            "post": {"security": [{"ApiKeyAuth": []}], "consumes": ["application/json"], "produces": ["application/json"], "tags": ["study"], "summary": "Quiz the current explanation",
                "parameters": [{"description": "Study text and settings", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.StudyRequest"}}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "401": {"description": "Unauthorized"}}}
        },
        "/study/results": {
            "get": {"security": [{"ApiKeyAuth": []}], "produces": ["application/json"], "tags": ["study"], "summary": "Current results",
                "parameters": [{"type": "string", "description": "Quiz layout: bullets (default) or headings", "name": "style", "in": "query"}, {"type": "string", "description": "markdown (default) or html", "name": "format", "in": "query"}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}},
            "delete": {"security": [{"ApiKeyAuth": []}], "tags": ["study"], "summary": "Clear current results", "responses": {"204": {"description": "No Content"}}}
        },
        "/study/draft": {
            "put": {"security": [{"ApiKeyAuth": []}], "consumes": ["application/json"], "tags": ["study"], "summary": "Save the editor text",
                "parameters": [{"description": "Draft text", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.DraftRequest"}}],
                "responses": {"204": {"description": "No Content"}}}
        },
        "/study/export": {
            "get": {"security": [{"ApiKeyAuth": []}], "produces": ["text/plain", "application/pdf"], "tags": ["study"], "summary": "Download a study document",
                "parameters": [{"type": "string", "description": "txt (default) or pdf", "name": "format", "in": "query"}, {"type": "string", "description": "History session to export instead of the current results", "name": "session_id", "in": "query"}],
                "responses": {"200": {"description": "OK", "schema": {"type": "file"}}, "404": {"description": "Not Found"}}}
        },
        "/history": {
            "get": {"security": [{"ApiKeyAuth": []}], "produces": ["application/json"], "tags": ["history"], "summary": "List past sessions", "responses": {"200": {"description": "OK"}}},
            "delete": {"security": [{"ApiKeyAuth": []}], "tags": ["history"], "summary": "Clear history", "responses": {"204": {"description": "No Content"}}}
        },
        "/history/{id}": {
            "get": {"security": [{"ApiKeyAuth": []}], "produces": ["application/json"], "tags": ["history"], "summary": "Get one session",
                "parameters": [{"type": "string", "description": "Session ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "delete": {"security": [{"ApiKeyAuth": []}], "tags": ["history"], "summary": "Delete one session",
                "parameters": [{"type": "string", "description": "Session ID", "name": "id", "in": "path", "required": true}],
                "responses": {"204": {"description": "No Content"}, "404": {"description": "Not Found"}}}
        },
        "/history/{id}/review": {
            "post": {"security": [{"ApiKeyAuth": []}], "produces": ["application/json"], "tags": ["history"], "summary": "Review a session",
                "parameters": [{"type": "string", "description": "Session ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/progress": {
            "get": {"security": [{"ApiKeyAuth": []}], "produces": ["application/json"], "tags": ["progress"], "summary": "Progress overview", "responses": {"200": {"description": "OK"}}}
        },
        "/progress/study": {
            "post": {"security": [{"ApiKeyAuth": []}], "produces": ["application/json"], "tags": ["progress"], "summary": "Log a study block", "responses": {"200": {"description": "OK"}}}
        },
        "/analytics": {
            "get": {"security": [{"ApiKeyAuth": []}], "produces": ["application/json"], "tags": ["progress"], "summary": "Study analytics", "responses": {"200": {"description": "OK"}}}
        }
    },
    "definitions": {
        "dto.StudyRequest": {
            "type": "object",
            "properties": {
                "text": {"type": "string"},
                "level": {"type": "string"},
                "difficulty": {"type": "string"},
                "mode": {"type": "string"},
                "num_questions": {"type": "integer"}
            }
        },
        "dto.DraftRequest": {
            "type": "object",
            "properties": {"text": {"type": "string"}}
        },
        "dto.NormalizeRequest": {
            "type": "object",
            "properties": {"text": {"type": "string"}, "style": {"type": "string"}}
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {
            "description": "Type 'Bearer YOUR_WORKSPACE_TOKEN' to authorize.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo is the document's header. main may override Host per deployment.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8090",
	BasePath:         "/api",
	Schemes:          []string{"http", "https"},
	Title:            "Study Buddy API",
	Description:      "Explains study texts, generates quizzes from the explanations and tracks study progress.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
