// Package docs registra el spec OpenAPI que sirve /swagger/doc.json.
// Mantener alineado con las anotaciones de los handlers (swag init -g cmd/api/main.go).
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
        "/spycat/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["spycats"],
                "summary": "Listar spy cats",
                "parameters": [
                    {"$ref": "#/parameters/skip"},
                    {"$ref": "#/parameters/limit"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/agency.catListResponse"}},
                    "400": {"description": "invalid pagination parameter", "schema": {"$ref": "#/definitions/agency.errorResponse"}}
                }
            },
            "post": {
                "description": "Valida los campos y después la raza contra TheCatAPI. Si el catálogo no responde, la raza se rechaza.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["spycats"],
                "summary": "Crear spy cat",
                "parameters": [
                    {"description": "Datos del gato", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/agency.catRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/agency.catResponse"}},
                    "400": {"description": "invalid json / invalid breed / campo inválido", "schema": {"$ref": "#/definitions/agency.errorResponse"}}
                }
            }
        },
        "/spycat/{catID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["spycats"],
                "summary": "Ver spy cat con sus misiones",
                "parameters": [{"$ref": "#/parameters/catID"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/agency.catDetailResponse"}},
                    "404": {"description": "spy cat not found", "schema": {"$ref": "#/definitions/agency.errorResponse"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["spycats"],
                "summary": "Reemplazar spy cat",
                "parameters": [
                    {"$ref": "#/parameters/catID"},
                    {"description": "Datos del gato", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/agency.catRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/agency.catResponse"}},
                    "400": {"description": "invalid json / invalid breed / campo inválido", "schema": {"$ref": "#/definitions/agency.errorResponse"}},
                    "404": {"description": "spy cat not found", "schema": {"$ref": "#/definitions/agency.errorResponse"}}
                }
            },
            "delete": {
                "description": "Las misiones del gato quedan sin asignar.",
                "produces": ["application/json"],
                "tags": ["spycats"],
                "summary": "Borrar spy cat",
                "parameters": [{"$ref": "#/parameters/catID"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/agency.catResponse"}},
                    "404": {"description": "spy cat not found", "schema": {"$ref": "#/definitions/agency.errorResponse"}}
                }
            }
        },
        "/mission/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["missions"],
                "summary": "Listar misiones",
                "parameters": [
                    {"$ref": "#/parameters/skip"},
                    {"$ref": "#/parameters/limit"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/agency.missionListResponse"}}
                }
            },
            "post": {
                "description": "Crea la misión con sus targets y notas en una sola transacción.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["missions"],
                "summary": "Crear misión",
                "parameters": [
                    {"description": "Misión con targets anidados", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/agency.missionCreateRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/agency.missionDetailResponse"}},
                    "400": {"description": "invalid json / target inválido", "schema": {"$ref": "#/definitions/agency.errorResponse"}},
                    "404": {"description": "spy cat not found", "schema": {"$ref": "#/definitions/agency.errorResponse"}},
                    "409": {"description": "misión completa con targets", "schema": {"$ref": "#/definitions/agency.errorResponse"}}
                }
            }
        },
        "/mission/{missionID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["missions"],
                "summary": "Ver misión con gato y targets",
                "parameters": [{"$ref": "#/parameters/missionID"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/agency.missionDetailResponse"}},
                    "404": {"description": "mission not found", "schema": {"$ref": "#/definitions/agency.errorResponse"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["missions"],
                "summary": "Asignar gato / marcar completa",
                "parameters": [
                    {"$ref": "#/parameters/missionID"},
                    {"description": "cat_id (null desasigna) e is_complete", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/agency.missionUpdateRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/agency.missionResponse"}},
                    "404": {"description": "mission not found / spy cat not found", "schema": {"$ref": "#/definitions/agency.errorResponse"}}
                }
            },
            "delete": {
                "description": "Borra la misión con sus targets y notas. No se puede si tiene un gato asignado.",
                "produces": ["application/json"],
                "tags": ["missions"],
                "summary": "Borrar misión",
                "parameters": [{"$ref": "#/parameters/missionID"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/agency.missionResponse"}},
                    "404": {"description": "mission not found", "schema": {"$ref": "#/definitions/agency.errorResponse"}},
                    "409": {"description": "cannot delete mission with assigned spy cat", "schema": {"$ref": "#/definitions/agency.errorResponse"}}
                }
            }
        },
        "/mission/{missionID}/target/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["targets"],
                "summary": "Listar targets de una misión",
                "parameters": [
                    {"$ref": "#/parameters/missionID"},
                    {"$ref": "#/parameters/skip"},
                    {"$ref": "#/parameters/limit"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/agency.targetListResponse"}},
                    "404": {"description": "mission not found", "schema": {"$ref": "#/definitions/agency.errorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["targets"],
                "summary": "Agregar target a una misión",
                "parameters": [
                    {"$ref": "#/parameters/missionID"},
                    {"description": "Target con notas opcionales", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/agency.targetCreateRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/agency.targetDetailResponse"}},
                    "400": {"description": "invalid json / campo inválido", "schema": {"$ref": "#/definitions/agency.errorResponse"}},
                    "404": {"description": "mission not found", "schema": {"$ref": "#/definitions/agency.errorResponse"}},
                    "409": {"description": "cannot add target to a completed mission", "schema": {"$ref": "#/definitions/agency.errorResponse"}}
                }
            }
        },
        "/mission/{missionID}/target/{targetID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["targets"],
                "summary": "Ver target",
                "parameters": [{"$ref": "#/parameters/missionID"}, {"$ref": "#/parameters/targetID"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/agency.targetDetailResponse"}},
                    "404": {"description": "target not found", "schema": {"$ref": "#/definitions/agency.errorResponse"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["targets"],
                "summary": "Actualizar target",
                "parameters": [
                    {"$ref": "#/parameters/missionID"},
                    {"$ref": "#/parameters/targetID"},
                    {"description": "Campos del target", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/agency.targetUpdateRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/agency.targetResponse"}},
                    "404": {"description": "target not found", "schema": {"$ref": "#/definitions/agency.errorResponse"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["targets"],
                "summary": "Borrar target con sus notas",
                "parameters": [{"$ref": "#/parameters/missionID"}, {"$ref": "#/parameters/targetID"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/agency.targetResponse"}},
                    "404": {"description": "target not found", "schema": {"$ref": "#/definitions/agency.errorResponse"}}
                }
            }
        },
        "/mission/{missionID}/target/{targetID}/note/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["notes"],
                "summary": "Listar notas de un target",
                "parameters": [
                    {"$ref": "#/parameters/missionID"},
                    {"$ref": "#/parameters/targetID"},
                    {"$ref": "#/parameters/skip"},
                    {"$ref": "#/parameters/limit"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/agency.noteListResponse"}},
                    "404": {"description": "target not found", "schema": {"$ref": "#/definitions/agency.errorResponse"}}
                }
            },
            "post": {
                "description": "Si la misión o el target están completos responde 409, sin importar el contenido.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["notes"],
                "summary": "Agregar nota a un target",
                "parameters": [
                    {"$ref": "#/parameters/missionID"},
                    {"$ref": "#/parameters/targetID"},
                    {"description": "Contenido de la nota", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/agency.noteRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/agency.noteResponse"}},
                    "400": {"description": "invalid json / content is required", "schema": {"$ref": "#/definitions/agency.errorResponse"}},
                    "404": {"description": "target not found", "schema": {"$ref": "#/definitions/agency.errorResponse"}},
                    "409": {"description": "misión o target completos", "schema": {"$ref": "#/definitions/agency.errorResponse"}}
                }
            }
        },
        "/target/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["targets"],
                "summary": "Listar todos los targets",
                "parameters": [
                    {"$ref": "#/parameters/skip"},
                    {"$ref": "#/parameters/limit"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/agency.targetListResponse"}}
                }
            }
        },
        "/target/{targetID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["targets"],
                "summary": "Ver target",
                "parameters": [{"$ref": "#/parameters/targetID"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/agency.targetDetailResponse"}},
                    "404": {"description": "target not found", "schema": {"$ref": "#/definitions/agency.errorResponse"}}
                }
            }
        },
        "/note/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["notes"],
                "summary": "Listar todas las notas",
                "parameters": [
                    {"$ref": "#/parameters/skip"},
                    {"$ref": "#/parameters/limit"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/agency.noteListResponse"}}
                }
            }
        },
        "/note/{noteID}": {
            "get": {
                "description": "Devuelve la nota con su target y su misión.",
                "produces": ["application/json"],
                "tags": ["notes"],
                "summary": "Ver nota",
                "parameters": [{"$ref": "#/parameters/noteID"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/agency.noteDetailResponse"}},
                    "404": {"description": "note not found", "schema": {"$ref": "#/definitions/agency.errorResponse"}}
                }
            },
            "put": {
                "description": "Reemplaza el contenido. Bloqueado (409) si la misión o el target están completos.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["notes"],
                "summary": "Actualizar nota",
                "parameters": [
                    {"$ref": "#/parameters/noteID"},
                    {"description": "Nuevo contenido", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/agency.noteRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/agency.noteResponse"}},
                    "404": {"description": "note not found", "schema": {"$ref": "#/definitions/agency.errorResponse"}},
                    "409": {"description": "misión o target completos", "schema": {"$ref": "#/definitions/agency.errorResponse"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["notes"],
                "summary": "Borrar nota",
                "parameters": [{"$ref": "#/parameters/noteID"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/agency.noteResponse"}},
                    "404": {"description": "note not found", "schema": {"$ref": "#/definitions/agency.errorResponse"}}
                }
            }
        }
    },
    "parameters": {
        "skip": {"type": "integer", "description": "Registros a saltar (alias: offset)", "name": "skip", "in": "query"},
        "limit": {"type": "integer", "description": "Máximo a devolver; 0 = sin límite. Por defecto 10", "name": "limit", "in": "query"},
        "catID": {"type": "integer", "description": "ID del gato", "name": "catID", "in": "path", "required": true},
        "missionID": {"type": "integer", "description": "ID de la misión", "name": "missionID", "in": "path", "required": true},
        "targetID": {"type": "integer", "description": "ID del target", "name": "targetID", "in": "path", "required": true},
        "noteID": {"type": "integer", "description": "ID de la nota", "name": "noteID", "in": "path", "required": true}
    },
    "definitions": {
        "agency.errorResponse": {
            "type": "object",
            "properties": {"detail": {"type": "string"}}
        },
        "agency.catRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "years_of_experience": {"type": "integer"},
                "breed": {"type": "string"},
                "salary": {"type": "number"}
            }
        },
        "agency.catResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "years_of_experience": {"type": "integer"},
                "breed": {"type": "string"},
                "salary": {"type": "number"}
            }
        },
        "agency.catDetailResponse": {
            "allOf": [
                {"$ref": "#/definitions/agency.catResponse"},
                {"type": "object", "properties": {"missions": {"type": "array", "items": {"$ref": "#/definitions/agency.missionResponse"}}}}
            ]
        },
        "agency.catListResponse": {
            "type": "object",
            "properties": {
                "spycats": {"type": "array", "items": {"$ref": "#/definitions/agency.catResponse"}},
                "all_count": {"type": "integer"}
            }
        },
        "agency.missionCreateRequest": {
            "type": "object",
            "properties": {
                "cat_id": {"type": "integer"},
                "is_complete": {"type": "boolean"},
                "targets": {"type": "array", "items": {"$ref": "#/definitions/agency.targetCreateRequest"}}
            }
        },
        "agency.missionUpdateRequest": {
            "type": "object",
            "properties": {
                "cat_id": {"type": "integer"},
                "is_complete": {"type": "boolean"}
            }
        },
        "agency.missionResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "cat_id": {"type": "integer"},
                "is_complete": {"type": "boolean"}
            }
        },
        "agency.missionSummaryResponse": {
            "allOf": [
                {"$ref": "#/definitions/agency.missionResponse"},
                {"type": "object", "properties": {"cat": {"$ref": "#/definitions/agency.catResponse"}}}
            ]
        },
        "agency.missionDetailResponse": {
            "allOf": [
                {"$ref": "#/definitions/agency.missionSummaryResponse"},
                {"type": "object", "properties": {"targets": {"type": "array", "items": {"$ref": "#/definitions/agency.targetResponse"}}}}
            ]
        },
        "agency.missionListResponse": {
            "type": "object",
            "properties": {
                "missions": {"type": "array", "items": {"$ref": "#/definitions/agency.missionSummaryResponse"}},
                "all_count": {"type": "integer"}
            }
        },
        "agency.targetCreateRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "country": {"type": "string"},
                "is_complete": {"type": "boolean"},
                "notes": {"type": "array", "items": {"$ref": "#/definitions/agency.noteRequest"}}
            }
        },
        "agency.targetUpdateRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "country": {"type": "string"},
                "is_complete": {"type": "boolean"}
            }
        },
        "agency.targetResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "mission_id": {"type": "integer"},
                "name": {"type": "string"},
                "country": {"type": "string"},
                "is_complete": {"type": "boolean"}
            }
        },
        "agency.targetDetailResponse": {
            "allOf": [
                {"$ref": "#/definitions/agency.targetResponse"},
                {"type": "object", "properties": {
                    "mission": {"$ref": "#/definitions/agency.missionResponse"},
                    "notes": {"type": "array", "items": {"$ref": "#/definitions/agency.noteResponse"}}
                }}
            ]
        },
        "agency.targetListResponse": {
            "type": "object",
            "properties": {
                "targets": {"type": "array", "items": {"$ref": "#/definitions/agency.targetResponse"}},
                "all_count": {"type": "integer"}
            }
        },
        "agency.noteRequest": {
            "type": "object",
            "properties": {"content": {"type": "string"}}
        },
        "agency.noteResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "target_id": {"type": "integer"},
                "content": {"type": "string"}
            }
        },
        "agency.noteDetailResponse": {
            "allOf": [
                {"$ref": "#/definitions/agency.noteResponse"},
                {"type": "object", "properties": {
                    "target": {"$ref": "#/definitions/agency.targetResponse"},
                    "mission": {"$ref": "#/definitions/agency.missionResponse"}
                }}
            ]
        },
        "agency.noteListResponse": {
            "type": "object",
            "properties": {
                "notes": {"type": "array", "items": {"$ref": "#/definitions/agency.noteResponse"}},
                "all_count": {"type": "integer"}
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
	Title:            "SpyCat Agency API",
	Description:      "Gestión de spy cats, misiones, targets y notas.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
