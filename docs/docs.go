// Package docs registers the OpenAPI description served at /swagger/doc.json.
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
                "tags": ["categories"],
                "summary": "List categories",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/category.ListCategoriesResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/apperror.Body"}}
                }
            }
        },
        "/categories/{categoryId}/questions": {
            "get": {
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "List every question of a category",
                "parameters": [
                    {"type": "integer", "description": "category id", "name": "categoryId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/question.CategoryQuestionsResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/apperror.Body"}}
                }
            }
        },
        "/questions": {
            "get": {
                "produces": ["application/json"],
                "tags": ["questions"],
                "summary": "List questions, ten per page",
                "parameters": [
                    {"type": "integer", "description": "1-based page number", "name": "page", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/question.ListQuestionsResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/apperror.Body"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["questions"],
                "summary": "Create a question, or search when searchTerm is set",
                "parameters": [
                    {"type": "integer", "description": "page of search results", "name": "page", "in": "query"},
                    {"description": "question fields or searchTerm", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/question.QuestionBody"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/question.CreateQuestionResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/apperror.Body"}}
                }
            }
        },
        "/questions/{id}": {
            "delete": {
                "produces": ["application/json"],
                "tags": ["questions"],
                "summary": "Delete a question",
                "parameters": [
                    {"type": "integer", "description": "question id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/question.DeleteQuestionResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/apperror.Body"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/apperror.Body"}}
                }
            }
        },
        "/quizzes": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["quizzes"],
                "summary": "Draw a random question that has not been asked yet",
                "parameters": [
                    {"description": "quiz category and asked ids", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/quiz.NextQuestionRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/quiz.NextQuestionResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/apperror.Body"}}
                }
            }
        }
    },
    "definitions": {
        "apperror.Body": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "error": {"type": "integer"},
                "message": {"type": "string"}
            }
        },
        "category.ListCategoriesResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "categories": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "question.QuestionResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "question": {"type": "string"},
                "answer": {"type": "string"},
                "category": {"type": "string"},
                "difficulty": {"type": "integer"}
            }
        },
        "question.QuestionBody": {
            "type": "object",
            "properties": {
                "searchTerm": {"type": "string"},
                "question": {"type": "string"},
                "answer": {"type": "string"},
                "category": {"type": "string"},
                "difficulty": {"type": "integer"}
            }
        },
        "question.ListQuestionsResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "questions": {"type": "array", "items": {"$ref": "#/definitions/question.QuestionResponse"}},
                "total_questions": {"type": "integer"},
                "categories": {"type": "object", "additionalProperties": {"type": "string"}},
                "currentCategory": {"type": "integer", "x-nullable": true}
            }
        },
        "question.CreateQuestionResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "created": {"type": "integer"},
                "questions": {"type": "array", "items": {"$ref": "#/definitions/question.QuestionResponse"}},
                "total_questions": {"type": "integer"}
            }
        },
        "question.DeleteQuestionResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "deleted": {"type": "integer"},
                "questions": {"type": "array", "items": {"$ref": "#/definitions/question.QuestionResponse"}}
            }
        },
        "question.CategoryQuestionsResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "questions": {"type": "array", "items": {"$ref": "#/definitions/question.QuestionResponse"}},
                "total_questions": {"type": "integer"},
                "current_category": {"type": "integer"}
            }
        },
        "quiz.QuizCategory": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "type": {"type": "string"}
            }
        },
        "quiz.NextQuestionRequest": {
            "type": "object",
            "required": ["previous_questions", "quiz_category"],
            "properties": {
                "quiz_category": {"$ref": "#/definitions/quiz.QuizCategory"},
                "previous_questions": {"type": "array", "items": {"type": "integer"}}
            }
        },
        "quiz.NextQuestionResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "question": {"$ref": "#/definitions/question.QuestionResponse"}
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
	Title:            "Trivia API",
	Description:      "Categories, paginated questions and quiz rounds for the trivia game.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
