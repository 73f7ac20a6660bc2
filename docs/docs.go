// Package docs holds the OpenAPI description served under /swagger.
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
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/common.HealthResponse"}}
                }
            }
        },
        "/consultar-processo": {
            "post": {
                "description": "Lists the videos of a case and makes it the active case of the caller's session",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Workflow"],
                "summary": "Consultar processo",
                "parameters": [
                    {
                        "description": "Número do processo",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/workflow.LookupCaseRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/workflow.LookupCaseResponse"}},
                    "400": {"description": "Número do processo ausente ou inválido", "schema": {"$ref": "#/definitions/common.ErrorResponse"}},
                    "502": {"description": "Falha no serviço de consulta", "schema": {"$ref": "#/definitions/common.ErrorResponse"}}
                }
            }
        },
        "/transcrever": {
            "post": {
                "description": "Transcribes one video of the active case and stores the formatted transcript in the session",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Workflow"],
                "summary": "Transcrever vídeo",
                "parameters": [
                    {
                        "description": "Documento do vídeo",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/workflow.TranscribeRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/workflow.TranscribeResponse"}},
                    "400": {"description": "Documento ausente ou nenhum processo consultado", "schema": {"$ref": "#/definitions/common.ErrorResponse"}},
                    "404": {"description": "Vídeo não encontrado", "schema": {"$ref": "#/definitions/common.ErrorResponse"}},
                    "409": {"description": "Outro processo foi consultado durante a transcrição", "schema": {"$ref": "#/definitions/common.ErrorResponse"}},
                    "500": {"description": "Erro ao transcrever vídeo", "schema": {"$ref": "#/definitions/common.ErrorResponse"}}
                }
            }
        },
        "/enviar-solar": {
            "post": {
                "description": "Forwards the transcript stored in the caller's session to SOLAR",
                "produces": ["application/json"],
                "tags": ["Workflow"],
                "summary": "Enviar ao SOLAR",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/workflow.SubmitResponse"}},
                    "400": {"description": "Nenhuma transcrição encontrada", "schema": {"$ref": "#/definitions/common.ErrorResponse"}},
                    "500": {"description": "Erro ao enviar ao SOLAR", "schema": {"$ref": "#/definitions/common.ErrorResponse"}}
                }
            }
        },
        "/sessao": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Sessão"],
                "summary": "Estado da sessão",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/workflow.SessionResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/common.ErrorResponse"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["Sessão"],
                "summary": "Limpar sessão",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/common.MessageResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/common.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "common.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "details": {"type": "object", "additionalProperties": {"type": "string"}},
                "info": {"type": "string"},
                "message": {"type": "string"},
                "success": {"type": "boolean"},
                "timestamp": {"type": "string"}
            }
        },
        "common.HealthResponse": {
            "type": "object",
            "properties": {
                "environment": {"type": "string"},
                "status": {"type": "string"},
                "time": {"type": "string"}
            }
        },
        "common.MessageResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "success": {"type": "boolean"}
            }
        },
        "workflow.LookupCaseRequest": {
            "type": "object",
            "required": ["numero_processo"],
            "properties": {
                "numero_processo": {"type": "string"}
            }
        },
        "workflow.LookupCaseResponse": {
            "type": "object",
            "properties": {
                "numero_processo": {"type": "string"},
                "success": {"type": "boolean"},
                "total": {"type": "integer"},
                "videos": {"type": "array", "items": {"$ref": "#/definitions/workflow.VideoResponse"}}
            }
        },
        "workflow.SessionResponse": {
            "type": "object",
            "properties": {
                "atualizado_em": {"type": "string"},
                "enviado_em": {"type": "string"},
                "numero_processo": {"type": "string"},
                "success": {"type": "boolean"},
                "total": {"type": "integer"},
                "transcricao": {"type": "string"},
                "video": {"$ref": "#/definitions/workflow.VideoResponse"},
                "videos": {"type": "array", "items": {"$ref": "#/definitions/workflow.VideoResponse"}}
            }
        },
        "workflow.SubmitResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "success": {"type": "boolean"},
                "video": {"$ref": "#/definitions/workflow.VideoResponse"}
            }
        },
        "workflow.TranscribeRequest": {
            "type": "object",
            "required": ["documento"],
            "properties": {
                "documento": {"type": "string"}
            }
        },
        "workflow.TranscribeResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "transcricao": {"type": "string"},
                "video": {"$ref": "#/definitions/workflow.VideoResponse"}
            }
        },
        "workflow.VideoResponse": {
            "type": "object",
            "properties": {
                "documento": {"type": "string"},
                "link": {"type": "string"},
                "nome": {"type": "string"}
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
	Title:            "SOLAR Transcrição API",
	Description:      "Looks up case videos, transcribes them through n8n and forwards transcripts to SOLAR",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
