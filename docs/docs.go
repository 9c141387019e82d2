// Package docs registers the OpenAPI document of the preview API with swag,
// from the annotations in internal/httpapi and cmd/evosota.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "Evo-SOTA maintainers",
            "url": "https://github.com/MINT-SJTU/Evo-SOTA.io"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/summary": {
            "get": {
                "description": "Totals, category counts and top five per benchmark (data.json).",
                "produces": ["application/json"],
                "tags": ["leaderboards"],
                "summary": "Home page summary",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/types.Summary"}
                    }
                }
            }
        },
        "/api/benchmarks": {
            "get": {
                "produces": ["application/json"],
                "tags": ["leaderboards"],
                "summary": "List leaderboards",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/types.BenchmarksResponse"}
                    }
                }
            }
        },
        "/api/leaderboards/{benchmark}": {
            "get": {
                "description": "libero and metaworld return three categories; calvin returns them per setting.",
                "produces": ["application/json"],
                "tags": ["leaderboards"],
                "summary": "One benchmark file",
                "parameters": [
                    {"type": "string", "description": "libero, metaworld or calvin", "name": "benchmark", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {
                        "description": "Not Found",
                        "schema": {"$ref": "#/definitions/types.ErrorResponse"}
                    }
                }
            }
        },
        "/api/leaderboards/{benchmark}/{category}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["leaderboards"],
                "summary": "One ranked category",
                "parameters": [
                    {"type": "string", "description": "libero, metaworld or calvin", "name": "benchmark", "in": "path", "required": true},
                    {"type": "string", "description": "standard_opensource, standard_closed or non_standard", "name": "category", "in": "path", "required": true},
                    {"type": "string", "description": "Calvin split: abcd_d, abc_d (default) or d_d", "name": "setting", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {
                        "description": "Not Found",
                        "schema": {"$ref": "#/definitions/types.ErrorResponse"}
                    }
                }
            }
        },
        "/api/dex": {
            "get": {
                "produces": ["application/json"],
                "tags": ["dex"],
                "summary": "Dexterous manipulation leaderboard",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/types.DexLeaderboard"}
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {"$ref": "#/definitions/types.ErrorResponse"}
                    }
                }
            }
        }
    },
    "definitions": {
        "types.TopEntry": {
            "type": "object",
            "properties": {
                "name": {"type": "string", "example": "OpenVLA-OFT"},
                "rank": {"type": "integer", "example": 1},
                "score": {"type": "number", "example": 97.1}
            }
        },
        "types.CalvinSettingCounts": {
            "type": "object",
            "properties": {
                "abc_d": {"type": "integer"},
                "abcd_d": {"type": "integer"},
                "d_d": {"type": "integer"}
            }
        },
        "types.BenchmarkSummary": {
            "type": "object",
            "properties": {
                "description": {"type": "string"},
                "non_standard_count": {"type": "integer", "example": 10},
                "primary_metric": {"type": "string", "example": "Average Success Rate (%)"},
                "settings": {"$ref": "#/definitions/types.CalvinSettingCounts"},
                "standard_closed_count": {"type": "integer", "example": 12},
                "standard_opensource_count": {"type": "integer", "example": 20},
                "top_5": {"type": "array", "items": {"$ref": "#/definitions/types.TopEntry"}},
                "total_models": {"type": "integer", "example": 42}
            }
        },
        "types.Summary": {
            "type": "object",
            "properties": {
                "calvin": {"$ref": "#/definitions/types.BenchmarkSummary"},
                "libero": {"$ref": "#/definitions/types.BenchmarkSummary"},
                "metaworld": {"$ref": "#/definitions/types.BenchmarkSummary"}
            }
        },
        "types.BenchmarkRef": {
            "type": "object",
            "properties": {
                "href": {"type": "string", "example": "/api/leaderboards/libero"},
                "id": {"type": "string", "example": "libero"},
                "settings": {"type": "array", "items": {"type": "string"}}
            }
        },
        "types.BenchmarksResponse": {
            "type": "object",
            "properties": {
                "benchmarks": {"type": "array", "items": {"$ref": "#/definitions/types.BenchmarkRef"}}
            }
        },
        "types.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "integer", "example": 404},
                "error": {"type": "string", "example": "unknown benchmark: robotwin"}
            }
        },
        "types.Link": {
            "type": "object",
            "properties": {
                "label": {"type": "string", "example": "Paper"},
                "url": {"type": "string"}
            }
        },
        "types.DexColumn": {
            "type": "object",
            "properties": {
                "id": {"type": "string", "example": "meanSucc"},
                "kind": {"type": "string", "example": "score"},
                "label": {"type": "string", "example": "Mean Succ"}
            }
        },
        "types.DexBenchmark": {
            "type": "object",
            "properties": {
                "color": {"type": "string", "example": "hsl(212, 70%, 55%)"},
                "columns": {"type": "array", "items": {"$ref": "#/definitions/types.DexColumn"}},
                "description": {"type": "string"},
                "id": {"type": "string", "example": "adroit"},
                "links": {"type": "array", "items": {"$ref": "#/definitions/types.Link"}},
                "meanColumnId": {"type": "string", "example": "meanSucc"},
                "name": {"type": "string", "example": "Adroit"}
            }
        },
        "types.DexMethod": {
            "type": "object",
            "properties": {
                "benchmarks": {"type": "object", "additionalProperties": {"type": "object"}},
                "id": {"type": "string", "example": "dp3"},
                "isOpenSource": {"type": "boolean"},
                "paper": {"$ref": "#/definitions/types.Link"},
                "project": {"$ref": "#/definitions/types.Link"},
                "ranks": {"type": "object", "additionalProperties": {"type": "integer"}},
                "shortName": {"type": "string", "example": "DP3"},
                "time": {"type": "string", "example": "2024.03"},
                "title": {"type": "string"}
            }
        },
        "types.DexUpdate": {
            "type": "object",
            "properties": {
                "date": {"type": "string", "example": "2024.03"},
                "text": {"type": "string", "example": "DP3: 3D Diffusion Policy"}
            }
        },
        "types.DexLeaderboard": {
            "type": "object",
            "properties": {
                "benchmarks": {"type": "array", "items": {"$ref": "#/definitions/types.DexBenchmark"}},
                "generatedAt": {"type": "string", "example": "2025-01-01T00:00:00.000Z"},
                "methods": {"type": "array", "items": {"$ref": "#/definitions/types.DexMethod"}},
                "updates": {"type": "array", "items": {"$ref": "#/definitions/types.DexUpdate"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "evosota preview API",
	Description:      "Read-only preview of generated VLA and dexterous manipulation leaderboards.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
