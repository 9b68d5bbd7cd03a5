// Package docs provides API documentation
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "This service renders repository preview cards with an editable language distribution bar.",
        "title": "RepoVista API",
        "contact": {},
        "version": "1.0"
    },
    "host": "{{.Host}}",
    "basePath": "/",
    "paths": {
        "/cards/{owner}/{repo}/refresh": {
            "post": {
                "description": "Fetches repository metadata and language byte counts from GitHub, derives the language distribution, and caches the card",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["cards"],
                "summary": "Refresh a card from GitHub",
                "parameters": [
                    {"type": "string", "description": "Repository owner", "name": "owner", "in": "path", "required": true},
                    {"type": "string", "description": "Repository name", "name": "repo", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/Card"}
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {"$ref": "#/definitions/ErrorResponse"}
                    },
                    "502": {
                        "description": "Bad Gateway",
                        "schema": {"$ref": "#/definitions/ErrorResponse"}
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {"$ref": "#/definitions/ErrorResponse"}
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {"$ref": "#/definitions/ErrorResponse"}
                    }
                }
            }
        },
        "/cards/{owner}/{repo}": {
            "get": {
                "description": "Get a cached card with its current language distribution",
                "produces": ["application/json"],
                "tags": ["cards"],
                "parameters": [
                    {"type": "string", "description": "Repository owner", "name": "owner", "in": "path", "required": true},
                    {"type": "string", "description": "Repository name", "name": "repo", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/Card"}
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {"$ref": "#/definitions/ErrorResponse"}
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {"$ref": "#/definitions/ErrorResponse"}
                    }
                }
            },
            "delete": {
                "description": "Delete a cached card",
                "produces": ["application/json"],
                "tags": ["cards"],
                "parameters": [
                    {"type": "string", "description": "Repository owner", "name": "owner", "in": "path", "required": true},
                    {"type": "string", "description": "Repository name", "name": "repo", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "message": {"type": "string", "example": "deleted"}
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {"$ref": "#/definitions/ErrorResponse"}
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {"$ref": "#/definitions/ErrorResponse"}
                    }
                }
            }
        },
        "/cards/{owner}/{repo}/image": {
            "get": {
                "description": "Serve the rendered card PNG",
                "produces": ["image/png"],
                "tags": ["cards"],
                "parameters": [
                    {"type": "string", "description": "Repository owner", "name": "owner", "in": "path", "required": true},
                    {"type": "string", "description": "Repository name", "name": "repo", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {
                        "description": "Not Found",
                        "schema": {"$ref": "#/definitions/ErrorResponse"}
                    }
                }
            }
        },
        "/cards/{owner}/{repo}/languages": {
            "post": {
                "description": "Add a language to the card, shrinking existing shares proportionally",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["languages"],
                "parameters": [
                    {"type": "string", "description": "Repository owner", "name": "owner", "in": "path", "required": true},
                    {"type": "string", "description": "Repository name", "name": "repo", "in": "path", "required": true},
                    {
                        "description": "Language to add; percentage defaults to 5",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/EditRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/Card"}
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {"$ref": "#/definitions/ErrorResponse"}
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {"$ref": "#/definitions/ErrorResponse"}
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {"$ref": "#/definitions/ErrorResponse"}
                    }
                }
            }
        },
        "/cards/{owner}/{repo}/languages/{index}": {
            "patch": {
                "description": "Set one language's share (clamped to 1-99); the others rebalance proportionally and never drop below 1",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["languages"],
                "parameters": [
                    {"type": "string", "description": "Repository owner", "name": "owner", "in": "path", "required": true},
                    {"type": "string", "description": "Repository name", "name": "repo", "in": "path", "required": true},
                    {"type": "integer", "description": "Entry index", "name": "index", "in": "path", "required": true},
                    {
                        "description": "New percentage; non-numeric input coerces to the minimum",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/EditRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/Card"}
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {"$ref": "#/definitions/ErrorResponse"}
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {"$ref": "#/definitions/ErrorResponse"}
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {"$ref": "#/definitions/ErrorResponse"}
                    }
                }
            },
            "delete": {
                "description": "Remove a language, redistributing its share to the rest by weight. Out-of-range indices leave the card unchanged.",
                "produces": ["application/json"],
                "tags": ["languages"],
                "parameters": [
                    {"type": "string", "description": "Repository owner", "name": "owner", "in": "path", "required": true},
                    {"type": "string", "description": "Repository name", "name": "repo", "in": "path", "required": true},
                    {"type": "integer", "description": "Entry index", "name": "index", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/Card"}
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {"$ref": "#/definitions/ErrorResponse"}
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {"$ref": "#/definitions/ErrorResponse"}
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {"$ref": "#/definitions/ErrorResponse"}
                    }
                }
            }
        },
        "/status": {
            "get": {
                "description": "Get the current status of the service",
                "produces": ["application/json"],
                "tags": ["status"],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/StatusResponse"}
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {"$ref": "#/definitions/ErrorResponse"}
                    }
                }
            }
        }
    },
    "definitions": {
        "Card": {
            "type": "object",
            "properties": {
                "id": {"type": "integer", "example": 1},
                "owner": {"type": "string", "example": "golang"},
                "repo": {"type": "string", "example": "go"},
                "description": {"type": "string", "example": "The Go programming language"},
                "stars": {"type": "integer", "example": 120000},
                "forks": {"type": "integer", "example": 17000},
                "avatar_url": {"type": "string", "example": "https://avatars.githubusercontent.com/u/4314092"},
                "languages": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/LanguageEntry"}
                },
                "last_refreshed_at": {"type": "string", "example": "2026-08-28T14:30:00Z"}
            }
        },
        "LanguageEntry": {
            "type": "object",
            "properties": {
                "name": {"type": "string", "example": "Go"},
                "percentage": {"type": "integer", "example": 62},
                "color_token": {"type": "string", "example": "#00ADD8"}
            }
        },
        "EditRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string", "example": "Shell"},
                "percentage": {"type": "integer", "example": 5}
            }
        },
        "ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "details": {"type": "object"}
            }
        },
        "StatusResponse": {
            "type": "object",
            "properties": {
                "total_cards": {"type": "integer", "example": 42},
                "last_refreshed_at": {"type": "string", "example": "2026-08-28T14:30:00Z"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "", // This will be set from environment
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "RepoVista API",
	Description:      "This service renders repository preview cards with an editable language distribution bar.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
