// Package docs регистрирует swagger-описание API для gin-swagger.
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
                "tags": ["ops"],
                "summary": "DB ping",
                "responses": {"200": {"description": "OK"}, "500": {"description": "database unavailable"}}
            }
        },
        "/joinCompany": {
            "post": {
                "consumes": ["multipart/form-data"],
                "produces": ["text/plain"],
                "tags": ["company"],
                "summary": "Company registration (type: estate | interior)",
                "parameters": [
                    {"type": "string", "name": "username", "in": "formData", "required": true},
                    {"type": "string", "name": "password", "in": "formData", "required": true},
                    {"type": "string", "name": "type", "in": "formData", "required": true},
                    {"type": "string", "name": "companyName", "in": "formData", "required": true},
                    {"type": "file", "name": "file", "in": "formData"}
                ],
                "responses": {"200": {"description": "기업회원 가입 성공"}, "400": {"description": "사업자 타입 오류 | 회원가입 실패"}}
            }
        },
        "/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["user"],
                "summary": "User or company login",
                "responses": {"200": {"description": "token"}, "401": {"description": "invalid credentials"}}
            }
        },
        "/estateWrite": {
            "post": {
                "consumes": ["multipart/form-data"],
                "produces": ["text/plain"],
                "tags": ["estate"],
                "summary": "Create estate with images",
                "parameters": [{"type": "file", "name": "images", "in": "formData"}],
                "responses": {"200": {"description": "estateNum"}, "400": {"description": "매물 등록 오류"}}
            }
        },
        "/estateList": {
            "get": {
                "produces": ["application/json"],
                "tags": ["estate"],
                "summary": "Estate list (1-based page, size 10)",
                "parameters": [
                    {"type": "integer", "name": "page", "in": "query"},
                    {"type": "string", "name": "type", "in": "query"},
                    {"type": "string", "name": "keyword", "in": "query"}
                ],
                "responses": {"200": {"description": "estateList + pageInfo"}, "400": {"description": "invalid page"}}
            }
        },
        "/communityList/filter": {
            "get": {
                "produces": ["application/json"],
                "tags": ["community"],
                "summary": "Filtered community list",
                "parameters": [
                    {"type": "string", "name": "type", "in": "query"},
                    {"type": "string", "name": "style", "in": "query"},
                    {"type": "integer", "name": "size", "in": "query"},
                    {"type": "string", "name": "location", "in": "query"},
                    {"type": "string", "name": "date", "in": "query"},
                    {"type": "integer", "name": "page", "in": "query"}
                ],
                "responses": {"200": {"description": "communityList + pageInfo"}}
            }
        },
        "/sampleList": {
            "get": {
                "produces": ["application/json"],
                "tags": ["interior"],
                "summary": "Filtered interior samples",
                "parameters": [
                    {"type": "string", "name": "type", "in": "query"},
                    {"type": "string", "name": "style", "in": "query"},
                    {"type": "integer", "name": "size", "in": "query"},
                    {"type": "string", "name": "location", "in": "query"},
                    {"type": "string", "name": "date", "in": "query"},
                    {"type": "integer", "name": "page", "in": "query"}
                ],
                "responses": {"200": {"description": "sampleList + pageInfo"}}
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
	Title:            "geekku API",
	Description:      "Backend API маркетплейса недвижимости и интерьеров.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
