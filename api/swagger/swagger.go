package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Student Analytics API",
        "description": "Read-only access to the student performance table and its chart aggregates",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Records", "description": "Raw student performance rows"},
        {"name": "Analytics", "description": "Aggregates for the dashboard charts"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Liveness check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Health"}}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check, pings the data store",
                "responses": {
                    "200": {"description": "Ready"},
                    "503": {"description": "Store unreachable", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/api/preview": {
            "get": {
                "tags": ["Records"],
                "summary": "First 50 records ordered by id",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/PreviewEnvelope"}},
                    "500": {"description": "Store failure", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/api/rows": {
            "get": {
                "tags": ["Records"],
                "summary": "One page of records ordered by id",
                "parameters": [
                    {"name": "page", "in": "query", "type": "integer", "default": 1, "minimum": 1},
                    {"name": "pageSize", "in": "query", "type": "integer", "default": 50, "minimum": 1, "description": "Values above 100 are clamped to 100"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/PageEnvelope"}},
                    "400": {"description": "Invalid page or pageSize", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "500": {"description": "Store failure", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/api/rows/export": {
            "get": {
                "tags": ["Records"],
                "summary": "Download one page of records",
                "produces": ["text/csv", "application/pdf"],
                "parameters": [
                    {"name": "page", "in": "query", "type": "integer", "default": 1, "minimum": 1},
                    {"name": "pageSize", "in": "query", "type": "integer", "default": 50, "minimum": 1},
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"], "default": "csv"}
                ],
                "responses": {
                    "200": {"description": "Attachment", "schema": {"type": "file"}},
                    "400": {"description": "Invalid parameters", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "500": {"description": "Store or render failure", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/api/analytics/avg-exam-by-cluster": {
            "get": {
                "tags": ["Analytics"],
                "summary": "Average exam score per cluster",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ClusterEnvelope"}},
                    "500": {"description": "Store failure", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/api/analytics/level-distribution": {
            "get": {
                "tags": ["Analytics"],
                "summary": "Record count per level",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/LevelEnvelope"}},
                    "500": {"description": "Store failure", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/api/analytics/study-hours-buckets": {
            "get": {
                "tags": ["Analytics"],
                "summary": "Average exam score per study-hours bucket",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/BucketEnvelope"}},
                    "500": {"description": "Store failure", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "Health": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "timestamp": {"type": "string", "format": "date-time"}
            }
        },
        "StudentRecord": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "StudyHours": {"type": "number"},
                "Attendance": {"type": "number"},
                "AssignmentCompletion": {"type": "number"},
                "ExamScore": {"type": "number"},
                "FinalGrade": {"type": "string"},
                "Cluster": {"type": "integer"},
                "Level": {"type": "string"}
            }
        },
        "PreviewEnvelope": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "count": {"type": "integer"},
                "data": {"type": "array", "items": {"$ref": "#/definitions/StudentRecord"}}
            }
        },
        "PageEnvelope": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "page": {"type": "integer"},
                "pageSize": {"type": "integer"},
                "total": {"type": "integer"},
                "totalPages": {"type": "integer"},
                "data": {"type": "array", "items": {"$ref": "#/definitions/StudentRecord"}}
            }
        },
        "ClusterEnvelope": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "data": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "properties": {
                            "cluster": {"type": "integer"},
                            "avgExamScore": {"type": "number"},
                            "count": {"type": "integer"}
                        }
                    }
                }
            }
        },
        "LevelEnvelope": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "data": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "properties": {
                            "level": {"type": "string"},
                            "count": {"type": "integer"}
                        }
                    }
                }
            }
        },
        "BucketEnvelope": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "data": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "properties": {
                            "bucket": {"type": "string"},
                            "avgExamScore": {"type": "number"},
                            "count": {"type": "integer"}
                        }
                    }
                }
            }
        },
        "ErrorEnvelope": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "error": {"type": "string"},
                "message": {"type": "string"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
