package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "description": "Content management API for the Kulana marketing site",
        "title": "Kulana CMS API",
        "version": "1.0"
    },
    "host": "localhost:8080",
    "basePath": "/api",
    "schemes": ["http"],
    "paths": {
        "/login.php": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Admin login",
                "description": "Exchange admin credentials for a bearer token",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {
                        "in": "body",
                        "name": "credentials",
                        "description": "Login credentials",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "properties": {
                                "username": {
                                    "type": "string",
                                    "example": "admin"
                                },
                                "password": {
                                    "type": "string",
                                    "example": "secret"
                                }
                            }
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Login successful; data holds token, user_id and username"
                    },
                    "401": {
                        "description": "Invalid credentials"
                    }
                }
            }
        },
        "/get-config.php": {
            "get": {
                "tags": ["Configuration"],
                "summary": "Fetch configuration",
                "description": "Returns the document stored under key, or all documents when key is omitted",
                "produces": ["application/json"],
                "parameters": [
                    {
                        "in": "query",
                        "name": "key",
                        "type": "string",
                        "description": "Document key (home, team, projects, faq, footer, page_settings)"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Document(s) under data.value"
                    },
                    "404": {
                        "description": "Key has never been written"
                    }
                }
            }
        },
        "/update-config-secure.php": {
            "post": {
                "tags": ["Configuration"],
                "summary": "Replace a configuration document",
                "description": "Replaces the whole stored value for a key",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "in": "body",
                        "name": "document",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "properties": {
                                "key": {
                                    "type": "string",
                                    "example": "team"
                                },
                                "value": {
                                    "type": "object"
                                }
                            }
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Document replaced"
                    },
                    "400": {
                        "description": "Unknown key or malformed body"
                    },
                    "401": {
                        "description": "Missing or invalid token"
                    }
                }
            }
        },
        "/upload-image-secure.php": {
            "post": {
                "tags": ["Uploads"],
                "summary": "Upload an image",
                "description": "Stores a multipart image and returns its public URL under data.url",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "in": "formData",
                        "name": "image",
                        "type": "file",
                        "required": true,
                        "description": "Image file (jpg, png, gif, webp, svg)"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Uploaded; data.url is the durable URL"
                    },
                    "400": {
                        "description": "Missing file or unsupported type"
                    },
                    "401": {
                        "description": "Missing or invalid token"
                    },
                    "413": {
                        "description": "Image exceeds the size limit"
                    }
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header",
            "description": "Type 'Bearer' followed by a space and JWT token"
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{"http"},
	Title:            "Kulana CMS API",
	Description:      "Content management API for the Kulana marketing site",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
