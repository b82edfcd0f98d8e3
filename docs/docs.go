// Package docs registers the Swagger spec served at /swagger/*any.
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
        "/api/v1/quick-add/parse": {
            "post": {
                "tags": ["QuickAdd"],
                "summary": "Parse quick-add text",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/http.parseReq"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.parseResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/quick-add/confirm": {
            "post": {
                "tags": ["QuickAdd"],
                "summary": "Confirm a suggestion",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/http.confirmReq"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.confirmResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/quick-add/toggle": {
            "post": {
                "tags": ["QuickAdd"],
                "summary": "Toggle a field",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/http.toggleReq"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.toggleResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/quick-add/ics": {
            "post": {
                "tags": ["QuickAdd"],
                "summary": "Export items as iCalendar",
                "consumes": ["application/json"],
                "produces": ["text/calendar"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/http.icsReq"}}],
                "responses": {
                    "200": {"description": "iCalendar document", "schema": {"type": "string"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/quick-add/categories": {
            "get": {
                "tags": ["QuickAdd"],
                "summary": "List categories",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.categoriesResp"}}
                }
            }
        },
        "/api/v1/quick-add/sessions": {
            "post": {
                "tags": ["QuickAdd"],
                "summary": "Open a compose session",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.sessionResp"}}
                }
            }
        },
        "/api/v1/quick-add/sessions/{id}/parse": {
            "post": {
                "tags": ["QuickAdd"],
                "summary": "Re-parse session text",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "in": "path", "name": "id", "required": true},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/http.sessionParseReq"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.parseResp"}},
                    "404": {"description": "Session not found", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "409": {"description": "Stale input", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/quick-add/sessions/{id}/confirm": {
            "post": {
                "tags": ["QuickAdd"],
                "summary": "Confirm a suggestion in a session",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "in": "path", "name": "id", "required": true},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/http.sessionConfirmReq"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.confirmResp"}},
                    "404": {"description": "Session not found", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/quick-add/sessions/{id}/toggle": {
            "post": {
                "tags": ["QuickAdd"],
                "summary": "Toggle a field in a session",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "in": "path", "name": "id", "required": true},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/http.sessionToggleReq"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.toggleResp"}},
                    "404": {"description": "Session not found", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/health": {"get": {"tags": ["Health"], "summary": "Health Check", "responses": {"200": {"description": "API is healthy"}}}},
        "/ready": {"get": {"tags": ["Health"], "summary": "Readiness Check", "responses": {"200": {"description": "API is ready"}}}},
        "/live": {"get": {"tags": ["Health"], "summary": "Liveness Check", "responses": {"200": {"description": "API is alive"}}}}
    },
    "definitions": {
        "response.Resp": {
            "type": "object",
            "properties": {
                "error_code": {"type": "integer"},
                "message": {"type": "string"},
                "data": {},
                "errors": {}
            }
        },
        "model.SmartSuggestion": {
            "type": "object",
            "properties": {
                "type": {"type": "string", "enum": ["type", "priority", "category", "privacy"]},
                "value": {"type": "string"},
                "label": {"type": "string"},
                "confidence": {"type": "string", "enum": ["high", "medium", "low"]}
            }
        },
        "model.ParsedInput": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "type": {"type": "string", "enum": ["reminder", "event"]},
                "priority": {"type": "string", "enum": ["low", "normal", "high", "urgent"]},
                "categories": {"type": "array", "items": {"type": "string"}},
                "time": {"type": "string", "format": "date-time"},
                "start_time": {"type": "string", "format": "date-time"},
                "end_time": {"type": "string", "format": "date-time"},
                "range_end": {"type": "string", "format": "date-time"},
                "all_day": {"type": "boolean"},
                "is_public": {"type": "boolean"}
            }
        },
        "model.CategoryDefinition": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "keywords": {"type": "array", "items": {"type": "string"}}
            }
        },
        "http.parseReq": {
            "type": "object",
            "properties": {
                "text": {"type": "string"},
                "now": {"type": "string", "format": "date-time"},
                "categories": {"type": "array", "items": {"$ref": "#/definitions/model.CategoryDefinition"}},
                "confirmed": {"type": "array", "items": {"type": "object", "properties": {"type": {"type": "string"}, "value": {"type": "string"}}}}
            }
        },
        "http.parseResp": {
            "type": "object",
            "properties": {
                "item": {"$ref": "#/definitions/model.ParsedInput"},
                "suggestions": {"type": "array", "items": {"$ref": "#/definitions/model.SmartSuggestion"}},
                "title": {"type": "string"},
                "detections": {"type": "object"}
            }
        },
        "http.confirmReq": {
            "type": "object",
            "properties": {
                "current": {"$ref": "#/definitions/model.ParsedInput"},
                "suggestion": {"$ref": "#/definitions/model.SmartSuggestion"},
                "suggestions": {"type": "array", "items": {"$ref": "#/definitions/model.SmartSuggestion"}}
            }
        },
        "http.confirmResp": {
            "type": "object",
            "properties": {
                "item": {"$ref": "#/definitions/model.ParsedInput"},
                "suggestions": {"type": "array", "items": {"$ref": "#/definitions/model.SmartSuggestion"}}
            }
        },
        "http.toggleReq": {
            "type": "object",
            "required": ["field"],
            "properties": {
                "current": {"$ref": "#/definitions/model.ParsedInput"},
                "field": {"type": "string", "enum": ["type", "priority", "privacy", "all_day", "category"]},
                "category_id": {"type": "string"}
            }
        },
        "http.toggleResp": {
            "type": "object",
            "properties": {"item": {"$ref": "#/definitions/model.ParsedInput"}}
        },
        "http.icsReq": {
            "type": "object",
            "required": ["items"],
            "properties": {"items": {"type": "array", "items": {"$ref": "#/definitions/model.ParsedInput"}}}
        },
        "http.categoriesResp": {
            "type": "object",
            "properties": {"categories": {"type": "array", "items": {"$ref": "#/definitions/model.CategoryDefinition"}}}
        },
        "http.sessionResp": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "seq": {"type": "integer"},
                "expires_at": {"type": "string", "format": "date-time"},
                "item": {"$ref": "#/definitions/model.ParsedInput"}
            }
        },
        "http.sessionParseReq": {
            "type": "object",
            "properties": {
                "text": {"type": "string"},
                "now": {"type": "string", "format": "date-time"},
                "seq": {"type": "integer"}
            }
        },
        "http.sessionConfirmReq": {
            "type": "object",
            "properties": {"suggestion": {"$ref": "#/definitions/model.SmartSuggestion"}}
        },
        "http.sessionToggleReq": {
            "type": "object",
            "required": ["field"],
            "properties": {
                "field": {"type": "string"},
                "category_id": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "Smart Quick-Add API",
	Description:      "Natural-language quick-add parsing: free text in, structured reminder or event out.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
