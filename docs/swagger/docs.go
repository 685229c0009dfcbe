// Package swagger registers the OpenAPI document served under /swagger.
// Maintained by hand; keep it in sync with the handler annotations.
package swagger

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
        "/api/account/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["accounts"],
                "summary": "Login",
                "description": "Verify credentials and receive an access token.",
                "responses": {
                    "200": {"description": "Access token"},
                    "401": {"description": "Invalid credentials"},
                    "500": {"description": "Internal Server Error"}
                }
            }
        },
        "/api/account/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["accounts"],
                "summary": "Register",
                "description": "Create a new user account.",
                "responses": {
                    "201": {"description": "Created user"},
                    "400": {"description": "Validation error"},
                    "409": {"description": "Username taken"},
                    "500": {"description": "Internal Server Error"}
                }
            }
        },
        "/api/category": {
            "get": {
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "List Categories",
                "description": "List all server categories ordered by name.",
                "responses": {
                    "200": {"description": "Category List"},
                    "500": {"description": "Internal Server Error"}
                }
            }
        },
        "/api/server/select": {
            "get": {
                "produces": ["application/json"],
                "tags": ["servers"],
                "summary": "List Servers",
                "description": "List servers filtered by category, quantity, membership or id. by_user and by_serverid require authentication.",
                "parameters": [
                    {"type": "string", "name": "category", "in": "query", "description": "Filter servers by category name"},
                    {"type": "integer", "name": "qty", "in": "query", "description": "Limit the number of servers returned"},
                    {"type": "string", "name": "by_user", "in": "query", "description": "Only servers the requesting user is a member of (literal 'true')"},
                    {"type": "integer", "name": "by_serverid", "in": "query", "description": "Filter by a specific server ID"},
                    {"type": "string", "name": "with_num_members", "in": "query", "description": "Annotate each server with its member count (literal 'True')"}
                ],
                "responses": {
                    "200": {"description": "Server List"},
                    "400": {"description": "Invalid parameter or server not found"},
                    "401": {"description": "Authentication required"},
                    "500": {"description": "Internal Server Error"}
                }
            }
        },
        "/api/server/{serverId}/icon": {
            "get": {
                "produces": ["application/octet-stream"],
                "tags": ["servers"],
                "summary": "Get Server Icon",
                "responses": {
                    "200": {"description": "Icon"},
                    "404": {"description": "Server or icon not found"},
                    "500": {"description": "Internal Server Error"}
                }
            },
            "put": {
                "consumes": ["application/octet-stream"],
                "produces": ["application/json"],
                "tags": ["servers"],
                "summary": "Upload Server Icon",
                "responses": {
                    "200": {"description": "Status"},
                    "401": {"description": "Authentication required"},
                    "404": {"description": "Server not found"},
                    "500": {"description": "Internal Server Error"}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["servers"],
                "summary": "Delete Server Icon",
                "responses": {
                    "200": {"description": "Status"},
                    "401": {"description": "Authentication required"},
                    "404": {"description": "Server not found"},
                    "500": {"description": "Internal Server Error"}
                }
            }
        },
        "/api/status/schema": {
            "get": {
                "produces": ["application/json"],
                "tags": ["status"],
                "summary": "Check Schema",
                "description": "Verify that the directory tables carry the columns the models expect.",
                "responses": {
                    "200": {"description": "Schema Report"}
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Chat Directory API",
	Description:      "Directory service for chat servers: filtered listings, categories, accounts and icons.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
