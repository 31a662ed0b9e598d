// Package docs is generated by swag init from the handler annotations.
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
        "/health": {"get": {"tags": ["health"], "summary": "Liveness probe", "responses": {"200": {"description": "OK"}}}},
        "/ready": {"get": {"tags": ["health"], "summary": "Readiness probe", "responses": {"200": {"description": "OK"}, "503": {"description": "Service Unavailable"}}}},
        "/auth/register": {"post": {"tags": ["auth"], "summary": "Register user", "consumes": ["application/json"], "produces": ["application/json"], "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "409": {"description": "Conflict"}}}},
        "/auth/login": {"post": {"tags": ["auth"], "summary": "Login", "consumes": ["application/json"], "produces": ["application/json"], "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}}},
        "/auth/me": {"get": {"security": [{"BearerAuth": []}], "tags": ["auth"], "summary": "Current user", "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}}},
        "/resume/analyze": {"post": {"tags": ["resume"], "summary": "Analyze a resume", "consumes": ["multipart/form-data"], "produces": ["application/json"], "parameters": [{"type": "file", "name": "file", "in": "formData", "required": true, "description": "PDF or DOCX resume"}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "413": {"description": "Request Entity Too Large"}, "500": {"description": "Internal Server Error"}}}},
        "/resume/refine": {"post": {"tags": ["resume"], "summary": "ATS resume rewrite", "consumes": ["application/json"], "produces": ["application/json"], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "429": {"description": "Too Many Requests"}, "500": {"description": "Internal Server Error"}}}},
        "/resumes": {"get": {"security": [{"BearerAuth": []}], "tags": ["resumes"], "summary": "List resumes", "parameters": [{"type": "integer", "name": "limit", "in": "query"}, {"type": "integer", "name": "offset", "in": "query"}], "responses": {"200": {"description": "OK"}}}},
        "/resumes/{id}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["resumes"], "summary": "Get resume", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["resumes"], "summary": "Delete resume", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"204": {"description": "No Content"}, "404": {"description": "Not Found"}}}
        },
        "/resumes/{id}/file": {"get": {"security": [{"BearerAuth": []}], "tags": ["resumes"], "summary": "Download resume file", "produces": ["application/octet-stream"], "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/analyses": {"get": {"security": [{"BearerAuth": []}], "tags": ["analyses"], "summary": "List analyses", "parameters": [{"type": "integer", "name": "limit", "in": "query"}, {"type": "integer", "name": "offset", "in": "query"}], "responses": {"200": {"description": "OK"}}}},
        "/analyses/latest": {"get": {"security": [{"BearerAuth": []}], "tags": ["analyses"], "summary": "Latest analysis", "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/analyses/{id}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["analyses"], "summary": "Get analysis", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["analyses"], "summary": "Delete analysis", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"204": {"description": "No Content"}, "404": {"description": "Not Found"}}}
        },
        "/jobs": {"get": {"tags": ["jobs"], "summary": "Search jobs", "parameters": [{"type": "string", "name": "query", "in": "query"}, {"type": "string", "name": "location", "in": "query"}, {"type": "integer", "name": "page", "in": "query"}, {"type": "boolean", "name": "remote", "in": "query"}, {"type": "string", "name": "employment_type", "in": "query"}, {"type": "string", "name": "autocomplete", "in": "query", "enum": ["job", "location"]}, {"type": "string", "name": "q", "in": "query"}], "responses": {"200": {"description": "OK"}}}},
        "/jobs/suggest": {"post": {"tags": ["jobs"], "summary": "Suggest jobs for skills", "consumes": ["application/json"], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}},
        "/jobs/saved": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["jobs"], "summary": "Saved jobs", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["jobs"], "summary": "Save job", "consumes": ["application/json"], "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}
        },
        "/jobs/saved/{id}": {"delete": {"security": [{"BearerAuth": []}], "tags": ["jobs"], "summary": "Remove saved job", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"204": {"description": "No Content"}, "404": {"description": "Not Found"}}}},
        "/ai-coach": {"post": {"tags": ["coach"], "summary": "AI coach", "consumes": ["application/json"], "produces": ["application/json"], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "429": {"description": "Too Many Requests"}, "500": {"description": "Internal Server Error"}}}}
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Authorization token: \"Bearer <JWT>\" or \"<JWT>\".",
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
	BasePath:         "/api/v1",
	Schemes:          []string{"http"},
	Title:            "career-lens API",
	Description:      "Resume analysis, job matching and AI career coaching.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
