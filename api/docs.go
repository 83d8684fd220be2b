// Package api contains the swagger documentation of the ledger API.
//
// The paths are documented with the swag annotations on the handlers.
package api

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "AGPL-3.0",
            "url": "https://www.gnu.org/licenses/agpl-3.0.en.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/": {
            "get": {
                "description": "Entrypoint for the API, listing all endpoints",
                "tags": ["General"],
                "summary": "API root",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/version": {
            "get": {
                "description": "Returns the software version of the API",
                "tags": ["General"],
                "summary": "API version",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/healthz": {
            "get": {
                "description": "Returns the application health and, if not healthy, an error",
                "tags": ["General"],
                "summary": "Get health",
                "responses": {"200": {"description": "OK"}, "500": {"description": "Internal Server Error"}}
            }
        },
        "/v1/budgets": {
            "get": {
                "tags": ["Budgets"],
                "summary": "List budgets",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["Budgets"],
                "summary": "Create budget",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}
            }
        },
        "/v1/accounts": {
            "get": {
                "tags": ["Accounts"],
                "summary": "List accounts",
                "parameters": [{"type": "string", "description": "Filter by budget ID", "name": "budget", "in": "query"}],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["Accounts"],
                "summary": "Create account",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}
            }
        },
        "/v1/transactions": {
            "get": {
                "tags": ["Transactions"],
                "summary": "List transactions",
                "parameters": [{"type": "string", "description": "Filter by account ID", "name": "account", "in": "query"}],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["Transactions"],
                "summary": "Create transaction",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}
            }
        },
        "/v1/months": {
            "get": {
                "tags": ["Months"],
                "summary": "Navigate to a month",
                "parameters": [
                    {"type": "string", "description": "ID of the budget", "name": "budget", "in": "query", "required": true},
                    {"type": "string", "description": "Month in YYYY-MM format", "name": "month", "in": "query", "required": true},
                    {"type": "string", "description": "forward or backward", "name": "direction", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}
            }
        },
        "/v1/months/ready-to-assign": {
            "get": {
                "tags": ["Months"],
                "summary": "Ready to Assign for a month",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}
            }
        },
        "/v1/months/assigned": {
            "patch": {
                "tags": ["Months"],
                "summary": "Assign money to a category",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}
            }
        },
        "/v1/categories": {
            "get": {
                "tags": ["Categories"],
                "summary": "List categories of a month",
                "parameters": [{"type": "string", "description": "Glob pattern for the category name", "name": "name", "in": "query"}],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["Categories"],
                "summary": "Create a category or category group",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}
            },
            "delete": {
                "tags": ["Categories"],
                "summary": "Delete a category",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "",
	Host:             "",
	BasePath:         "",
	Schemes:          []string{},
	Title:            "",
	Description:      "",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
