package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "TutorHub API",
        "description": "Tutoring platform backend",
        "version": "0.1.0"
    },
    "basePath": "/api",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Auth", "description": "Login, logout and current user"},
        {"name": "Tutors", "description": "Tutor profiles"},
        {"name": "Sessions", "description": "Tutoring session booking"},
        {"name": "Materials", "description": "Learning material library"},
        {"name": "Videos", "description": "Lecture video library"},
        {"name": "Feedback", "description": "Student feedback and triage"},
        {"name": "Admin", "description": "Administration dashboard"}
    ],
    "paths": {
        "/auth/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Log in with email and password",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/LoginResponse"}},
                    "401": {"description": "Invalid email or password", "schema": {"$ref": "#/definitions/MessageResponse"}}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "tags": ["Auth"],
                "summary": "Log out and destroy the session",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "properties": {"success": {"type": "boolean"}}}}
                }
            }
        },
        "/auth/user": {
            "get": {
                "tags": ["Auth"],
                "summary": "Return the authenticated account, or null when anonymous",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/User"}}
                }
            }
        },
        "/tutors": {
            "get": {
                "tags": ["Tutors"],
                "summary": "List tutors",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Tutor"}}}
                }
            },
            "post": {
                "tags": ["Tutors"],
                "summary": "Create tutor (admin)",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateTutorRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Tutor"}}
                }
            }
        },
        "/tutors/{id}": {
            "get": {
                "tags": ["Tutors"],
                "summary": "Get tutor",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Tutor"}},
                    "404": {"description": "Tutor not found", "schema": {"$ref": "#/definitions/MessageResponse"}}
                }
            },
            "put": {
                "tags": ["Tutors"],
                "summary": "Update tutor (admin)",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateTutorRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Tutor"}}
                }
            },
            "delete": {
                "tags": ["Tutors"],
                "summary": "Delete tutor (admin)",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/sessions": {
            "get": {
                "tags": ["Sessions"],
                "summary": "List the caller's sessions",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/TutoringSessionDetail"}}}
                }
            },
            "post": {
                "tags": ["Sessions"],
                "summary": "Book a session",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateSessionRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/TutoringSession"}},
                    "400": {"description": "Failed to create session", "schema": {"$ref": "#/definitions/MessageResponse"}}
                }
            }
        },
        "/sessions/upcoming": {
            "get": {
                "tags": ["Sessions"],
                "summary": "List the caller's upcoming sessions",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/TutoringSessionDetail"}}}
                }
            }
        },
        "/sessions/stats": {
            "get": {
                "tags": ["Sessions"],
                "summary": "Summarise the caller's sessions",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/StudentSessionStats"}}
                }
            }
        },
        "/sessions/{id}": {
            "put": {
                "tags": ["Sessions"],
                "summary": "Update a session",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateSessionRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/TutoringSession"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/MessageResponse"}},
                    "404": {"description": "Session not found", "schema": {"$ref": "#/definitions/MessageResponse"}}
                }
            }
        },
        "/materials": {
            "get": {
                "tags": ["Materials"],
                "summary": "List learning materials",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/LearningMaterialDetail"}}}
                }
            },
            "post": {
                "tags": ["Materials"],
                "summary": "Upload a learning material (admin)",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateMaterialRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/LearningMaterial"}}
                }
            }
        },
        "/materials/{id}": {
            "get": {
                "tags": ["Materials"],
                "summary": "Get a learning material",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/LearningMaterial"}},
                    "404": {"description": "Material not found", "schema": {"$ref": "#/definitions/MessageResponse"}}
                }
            },
            "delete": {
                "tags": ["Materials"],
                "summary": "Delete a learning material (admin)",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/videos": {
            "get": {
                "tags": ["Videos"],
                "summary": "List lecture videos",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/LectureVideoDetail"}}}
                }
            },
            "post": {
                "tags": ["Videos"],
                "summary": "Upload a lecture video (admin)",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateVideoRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/LectureVideo"}}
                }
            }
        },
        "/videos/{id}": {
            "get": {
                "tags": ["Videos"],
                "summary": "Get a lecture video",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/LectureVideo"}},
                    "404": {"description": "Video not found", "schema": {"$ref": "#/definitions/MessageResponse"}}
                }
            },
            "delete": {
                "tags": ["Videos"],
                "summary": "Delete a lecture video (admin)",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/feedback": {
            "get": {
                "tags": ["Feedback"],
                "summary": "List feedback visible to the caller",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/FeedbackDetail"}}}
                }
            },
            "post": {
                "tags": ["Feedback"],
                "summary": "Submit feedback",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateFeedbackRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Feedback"}}
                }
            }
        },
        "/feedback/stats": {
            "get": {
                "tags": ["Feedback"],
                "summary": "Summarise feedback by status (admin)",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/FeedbackStats"}}
                }
            }
        },
        "/feedback/{id}": {
            "get": {
                "tags": ["Feedback"],
                "summary": "Get a feedback entry",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Feedback"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/MessageResponse"}},
                    "404": {"description": "Feedback not found", "schema": {"$ref": "#/definitions/MessageResponse"}}
                }
            },
            "put": {
                "tags": ["Feedback"],
                "summary": "Triage a feedback entry (admin)",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateFeedbackRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Feedback"}}
                }
            },
            "delete": {
                "tags": ["Feedback"],
                "summary": "Delete a feedback entry (admin)",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/admin/students": {
            "get": {
                "tags": ["Admin"],
                "summary": "List all accounts (admin)",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/User"}}}
                }
            }
        },
        "/admin/users/{id}/role": {
            "put": {
                "tags": ["Admin"],
                "summary": "Change an account's role (admin)",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateRoleRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/User"}},
                    "400": {"description": "Invalid role", "schema": {"$ref": "#/definitions/MessageResponse"}},
                    "404": {"description": "User not found", "schema": {"$ref": "#/definitions/MessageResponse"}}
                }
            }
        },
        "/admin/stats": {
            "get": {
                "tags": ["Admin"],
                "summary": "Platform-wide dashboard counters (admin)",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/AdminStats"}}
                }
            }
        },
        "/admin/sessions": {
            "get": {
                "tags": ["Admin"],
                "summary": "List every tutoring session (admin)",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/TutoringSessionDetail"}}}
                }
            }
        },
        "/admin/export/sessions": {
            "get": {
                "tags": ["Admin"],
                "summary": "Export every tutoring session (admin)",
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "File download"}
                }
            }
        },
        "/admin/export/students": {
            "get": {
                "tags": ["Admin"],
                "summary": "Export every student account (admin)",
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "File download"}
                }
            }
        }
    },
    "definitions": {
        "User": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "email": {"type": "string"},
                "firstName": {"type": "string"},
                "lastName": {"type": "string"},
                "profileImageUrl": {"type": "string"},
                "role": {"type": "string", "enum": ["student", "admin"]},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "Tutor": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "specialty": {"type": "string"},
                "bio": {"type": "string"},
                "profileImageUrl": {"type": "string"},
                "hourlyRate": {"type": "string"},
                "availability": {"type": "string"},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "TutoringSession": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "studentId": {"type": "string"},
                "tutorId": {"type": "string"},
                "subject": {"type": "string"},
                "scheduledDate": {"type": "string"},
                "duration": {"type": "string"},
                "status": {"type": "string", "enum": ["scheduled", "completed", "cancelled", "in_progress"]},
                "notes": {"type": "string"},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "TutoringSessionDetail": {
            "allOf": [
                {"$ref": "#/definitions/TutoringSession"},
                {
                    "type": "object",
                    "properties": {
                        "tutor": {"$ref": "#/definitions/Tutor"},
                        "student": {"$ref": "#/definitions/User"}
                    }
                }
            ]
        },
        "LearningMaterial": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "subject": {"type": "string"},
                "fileUrl": {"type": "string"},
                "fileType": {"type": "string"},
                "uploadedBy": {"type": "string"},
                "createdAt": {"type": "string"}
            }
        },
        "LearningMaterialDetail": {
            "allOf": [
                {"$ref": "#/definitions/LearningMaterial"},
                {
                    "type": "object",
                    "properties": {
                        "uploadedBy": {"$ref": "#/definitions/User"}
                    }
                }
            ]
        },
        "LectureVideo": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "subject": {"type": "string"},
                "videoUrl": {"type": "string"},
                "thumbnailUrl": {"type": "string"},
                "duration": {"type": "string"},
                "tutorId": {"type": "string"},
                "createdAt": {"type": "string"}
            }
        },
        "LectureVideoDetail": {
            "allOf": [
                {"$ref": "#/definitions/LectureVideo"},
                {
                    "type": "object",
                    "properties": {
                        "tutor": {"$ref": "#/definitions/Tutor"},
                        "uploadedBy": {"$ref": "#/definitions/User"}
                    }
                }
            ]
        },
        "Feedback": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "studentId": {"type": "string"},
                "subject": {"type": "string"},
                "message": {"type": "string"},
                "rating": {"type": "string"},
                "status": {"type": "string", "enum": ["pending", "reviewed", "resolved"]},
                "adminResponse": {"type": "string"},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "FeedbackDetail": {
            "allOf": [
                {"$ref": "#/definitions/Feedback"},
                {
                    "type": "object",
                    "properties": {
                        "student": {"$ref": "#/definitions/User"}
                    }
                }
            ]
        },
        "StudentSessionStats": {
            "type": "object",
            "properties": {
                "totalSessions": {"type": "integer"},
                "completedSessions": {"type": "integer"},
                "upcomingSessions": {"type": "integer"}
            }
        },
        "AdminStats": {
            "type": "object",
            "properties": {
                "totalStudents": {"type": "integer"},
                "totalTutors": {"type": "integer"},
                "totalSessions": {"type": "integer"},
                "sessionsToday": {"type": "integer"}
            }
        },
        "FeedbackStats": {
            "type": "object",
            "properties": {
                "total": {"type": "integer"},
                "pending": {"type": "integer"},
                "reviewed": {"type": "integer"},
                "resolved": {"type": "integer"}
            }
        },
        "LoginRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            },
            "required": ["email", "password"]
        },
        "LoginResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "user": {"$ref": "#/definitions/User"}
            }
        },
        "CreateTutorRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "specialty": {"type": "string"},
                "bio": {"type": "string"},
                "profileImageUrl": {"type": "string"},
                "hourlyRate": {"type": "string"},
                "availability": {"type": "string"}
            },
            "required": ["name", "email", "specialty", "availability"]
        },
        "UpdateTutorRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "specialty": {"type": "string"},
                "bio": {"type": "string"},
                "profileImageUrl": {"type": "string"},
                "hourlyRate": {"type": "string"},
                "availability": {"type": "string"}
            }
        },
        "CreateSessionRequest": {
            "type": "object",
            "properties": {
                "tutorId": {"type": "string"},
                "subject": {"type": "string"},
                "scheduledDate": {"type": "string"},
                "duration": {"type": "string"},
                "status": {"type": "string"},
                "notes": {"type": "string"}
            },
            "required": ["tutorId", "subject", "scheduledDate", "duration"]
        },
        "UpdateSessionRequest": {
            "type": "object",
            "properties": {
                "tutorId": {"type": "string"},
                "subject": {"type": "string"},
                "scheduledDate": {"type": "string"},
                "duration": {"type": "string"},
                "status": {"type": "string"},
                "notes": {"type": "string"}
            }
        },
        "CreateMaterialRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"},
                "subject": {"type": "string"},
                "fileUrl": {"type": "string"},
                "fileType": {"type": "string"}
            },
            "required": ["title", "subject", "fileUrl"]
        },
        "CreateVideoRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"},
                "subject": {"type": "string"},
                "videoUrl": {"type": "string"},
                "thumbnailUrl": {"type": "string"},
                "duration": {"type": "string"},
                "tutorId": {"type": "string"}
            },
            "required": ["title", "subject", "videoUrl"]
        },
        "CreateFeedbackRequest": {
            "type": "object",
            "properties": {
                "subject": {"type": "string"},
                "message": {"type": "string"},
                "rating": {"type": "string"}
            },
            "required": ["subject", "message"]
        },
        "UpdateFeedbackRequest": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "enum": ["pending", "reviewed", "resolved"]},
                "adminResponse": {"type": "string"}
            }
        },
        "UpdateRoleRequest": {
            "type": "object",
            "properties": {
                "role": {"type": "string", "enum": ["student", "admin"]}
            },
            "required": ["role"]
        },
        "MessageResponse": {
            "type": "object",
            "properties": {
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
