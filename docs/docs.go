// Package docs holds the OpenAPI description served at /swagger.
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
            "get": {"tags": ["system"], "summary": "Health check", "responses": {"200": {"description": "OK"}, "503": {"description": "Degraded"}}}
        },
        "/auth/register": {
            "post": {"tags": ["auth"], "summary": "Register an account", "responses": {"201": {"description": "Created"}, "409": {"description": "Conflict"}}}
        },
        "/auth/login": {
            "post": {"tags": ["auth"], "summary": "Log in", "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}, "429": {"description": "Locked"}}}
        },
        "/auth/verify-email": {
            "get": {"tags": ["auth"], "summary": "Verify email from a link", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["auth"], "summary": "Verify email", "responses": {"200": {"description": "OK"}}}
        },
        "/auth/forgot-password": {
            "post": {"tags": ["auth"], "summary": "Request a password reset", "responses": {"200": {"description": "OK"}}}
        },
        "/auth/reset-password": {
            "post": {"tags": ["auth"], "summary": "Reset password", "responses": {"200": {"description": "OK"}}}
        },
        "/exhibitions": {
            "get": {"tags": ["exhibitions"], "summary": "List exhibitions", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["exhibitions"], "summary": "Create an exhibition", "security": [{"Bearer": []}], "responses": {"201": {"description": "Created"}}}
        },
        "/exhibitions/{id}": {
            "get": {"tags": ["exhibitions"], "summary": "Get an exhibition by id or slug", "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}},
            "put": {"tags": ["exhibitions"], "summary": "Update an exhibition", "security": [{"Bearer": []}], "responses": {"200": {"description": "OK"}}}
        },
        "/companies": {
            "get": {"tags": ["companies"], "summary": "List companies", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["companies"], "summary": "Create a company", "security": [{"Bearer": []}], "responses": {"201": {"description": "Created"}}}
        },
        "/companies/{id}": {
            "get": {"tags": ["companies"], "summary": "Get a company by id or slug", "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}},
            "put": {"tags": ["companies"], "summary": "Update a company", "security": [{"Bearer": []}], "responses": {"200": {"description": "OK"}}}
        },
        "/moderation/{kind}/{id}": {
            "post": {"tags": ["moderation"], "summary": "Approve, reject or request changes", "security": [{"Bearer": []}], "responses": {"200": {"description": "OK"}, "409": {"description": "Invalid transition"}}}
        },
        "/targets/{kind}/{id}/reviews": {
            "get": {"tags": ["reviews"], "summary": "List reviews", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["reviews"], "summary": "Submit a review", "security": [{"Bearer": []}], "responses": {"201": {"description": "Created"}}}
        },
        "/targets/{kind}/{id}/favorite": {
            "post": {"tags": ["favorites"], "summary": "Add to favorites", "security": [{"Bearer": []}], "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["favorites"], "summary": "Remove from favorites", "security": [{"Bearer": []}], "responses": {"200": {"description": "OK"}}}
        },
        "/targets/{kind}/{id}/analytics": {
            "get": {"tags": ["analytics"], "summary": "Daily metrics", "security": [{"Bearer": []}], "responses": {"200": {"description": "OK"}}}
        },
        "/uploads/{folder}": {
            "post": {"tags": ["uploads"], "summary": "Upload a logo or banner", "security": [{"Bearer": []}], "responses": {"201": {"description": "Created"}}}
        }
    },
    "securityDefinitions": {
        "Bearer": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "ExpoHub API",
	Description:      "Exhibition and exhibitor directory with moderation, reviews and favorites.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
