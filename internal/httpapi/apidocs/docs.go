// Package apidocs registers the OpenAPI description of the nyxd HTTP API
// with swag so http-swagger can serve it.
package apidocs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/tree": {
            "get": {
                "summary": "Snapshot the game tree or one subtree",
                "produces": ["application/json"],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Alias or id of the subtree root",
                        "name": "node",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/types.TreeNode"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/ops": {
            "post": {
                "summary": "Apply edit ops in order, stopping at the first failure",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {
                        "description": "Ops",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/types.OpsRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/types.OpsResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/types.OpsResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/types.OpsResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/types.OpsResponse"
                        }
                    },
                    "415": {
                        "description": "Unsupported Media Type",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/clear": {
            "post": {
                "summary": "Reset change flags across the whole tree",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/events": {
            "get": {
                "summary": "Page through journaled events",
                "produces": ["application/json"],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Return events after this id",
                        "name": "after",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Maximum number of events",
                        "name": "limit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/types.EventsResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/events/archive": {
            "get": {
                "summary": "Page through events archived to SQLite",
                "produces": ["application/json"],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Return events after this id",
                        "name": "after",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Maximum number of events",
                        "name": "limit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/types.EventsResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Archive not configured",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/events/stream": {
            "get": {
                "summary": "Websocket stream of live events as JSON text messages",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Boolean filter over channel, kind, node, alias, property, depth and path",
                        "name": "filter",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Subscriber buffer size",
                        "name": "buffer",
                        "in": "query"
                    }
                ],
                "responses": {
                    "101": {
                        "description": "Switching Protocols"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/scripts": {
            "get": {
                "summary": "List edit scripts in the scripts directory",
                "produces": ["application/json"],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/types.ScriptsResponse"
                        }
                    }
                }
            }
        },
        "/scripts/{name}/run": {
            "post": {
                "summary": "Apply a named edit script",
                "produces": ["application/json"],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Script name",
                        "name": "name",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/types.OpsResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "types.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string"
                },
                "code": {
                    "type": "integer"
                }
            }
        },
        "types.Op": {
            "type": "object",
            "properties": {
                "op": {
                    "type": "string"
                },
                "target": {
                    "type": "string"
                },
                "property": {
                    "type": "string"
                },
                "value": {},
                "slot": {
                    "type": "string"
                },
                "ref": {
                    "type": "string"
                },
                "kind": {
                    "type": "string"
                },
                "as": {
                    "type": "string"
                }
            }
        },
        "types.OpsRequest": {
            "type": "object",
            "properties": {
                "ops": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/types.Op"
                    }
                }
            }
        },
        "types.Event": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "channel": {
                    "type": "string"
                },
                "kind": {
                    "type": "string"
                },
                "node": {
                    "type": "string"
                },
                "alias": {
                    "type": "string"
                },
                "property": {
                    "type": "string"
                },
                "path": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "depth": {
                    "type": "integer"
                },
                "time_unix_ms": {
                    "type": "integer"
                }
            }
        },
        "types.OpResult": {
            "type": "object",
            "properties": {
                "op": {
                    "type": "string"
                },
                "node": {
                    "type": "string"
                },
                "alias": {
                    "type": "string"
                },
                "changed": {
                    "type": "boolean"
                },
                "events": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/types.Event"
                    }
                }
            }
        },
        "types.OpsResponse": {
            "type": "object",
            "properties": {
                "results": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/types.OpResult"
                    }
                },
                "failed": {
                    "type": "integer"
                },
                "error": {
                    "type": "string"
                },
                "code": {
                    "type": "integer"
                }
            }
        },
        "types.EventsResponse": {
            "type": "object",
            "properties": {
                "events": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/types.Event"
                    }
                },
                "next": {
                    "type": "string"
                }
            }
        },
        "types.ScriptInfo": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "path": {
                    "type": "string"
                },
                "ops": {
                    "type": "integer"
                }
            }
        },
        "types.ScriptsResponse": {
            "type": "object",
            "properties": {
                "scripts": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/types.ScriptInfo"
                    }
                }
            }
        },
        "types.TreeNode": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "alias": {
                    "type": "string"
                },
                "kind": {
                    "type": "string"
                },
                "label": {
                    "type": "string"
                },
                "object_changed": {
                    "type": "boolean"
                },
                "model_changed": {
                    "type": "boolean"
                },
                "owned": {
                    "type": "boolean"
                },
                "fields": {
                    "type": "array",
                    "items": {
                        "type": "object"
                    }
                },
                "slots": {
                    "type": "array",
                    "items": {
                        "type": "object"
                    }
                },
                "references": {
                    "type": "array",
                    "items": {
                        "type": "object"
                    }
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "nyxd API",
	Description:      "HTTP API for editing and observing a nyxventure story model.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
