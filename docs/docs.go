// Package docs contiene el spec OpenAPI servido en /swagger/doc.json.
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
        "/categories": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Lista las categorías de drogas",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/drugs": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Lista las drogas agrupadas por nombre",
                "parameters": [
                    {"type": "string", "name": "category", "in": "query", "description": "filtra por id de categoría"}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/drugs/{drugID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Devuelve una droga por id",
                "parameters": [
                    {"type": "string", "name": "drugID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/drugs/{drugID}/convert": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["dosage"],
                "summary": "Convierte dosis a flujo de bomba o flujo a dosis",
                "parameters": [
                    {"type": "string", "name": "drugID", "in": "path", "required": true},
                    {"name": "body", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/electrolytes/sodium/correct": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["sodium"],
                "summary": "Calcula la corrección de sodio (Adrogué-Madias)",
                "parameters": [
                    {"name": "body", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"}
                }
            }
        },
        "/electrolytes/sodium/solutions": {
            "get": {
                "produces": ["application/json"],
                "tags": ["sodium"],
                "summary": "Lista las soluciones disponibles por dirección",
                "parameters": [
                    {"type": "string", "name": "direction", "in": "query", "description": "hyper o hypo"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"}
                }
            }
        },
        "/electrolytes/sodium/acute": {
            "get": {
                "produces": ["application/json"],
                "tags": ["sodium"],
                "summary": "Protocolo de hiponatremia aguda sintomática",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/electrolytes/potassium/protocol": {
            "get": {
                "produces": ["application/json"],
                "tags": ["potassium"],
                "summary": "Conducta para hiper/hipocalemia según K sérico",
                "parameters": [
                    {"type": "string", "name": "tab", "in": "query", "description": "hyper (default) o hypo"},
                    {"type": "number", "name": "k", "in": "query", "description": "potasio sérico en mEq/L"},
                    {"type": "boolean", "name": "ecg_changes", "in": "query", "description": "alteraciones en el ECG"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"}
                }
            }
        },
        "/electrolytes/magnesium/protocol": {
            "get": {
                "produces": ["application/json"],
                "tags": ["magnesium"],
                "summary": "Conducta según magnesio sérico",
                "parameters": [
                    {"type": "number", "name": "mg", "in": "query", "description": "magnesio sérico en mg/dL"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"}
                }
            }
        },
        "/electrolytes/magnesium/emergency": {
            "get": {
                "produces": ["application/json"],
                "tags": ["magnesium"],
                "summary": "Protocolos de emergencia (torsades, sintomas graves)",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["text/plain"],
                "tags": ["health"],
                "summary": "Healthcheck",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "SALVAMED API",
	Description:      "Referencia clínica de bolsillo: catálogo de drogas, conversión dosis-flujo y protocolos de electrolitos.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
