package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Academic Records API",
        "description": "Course catalog, enrollment, grading and weekly scheduling",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Courses", "description": "Course catalog and prerequisites"},
        {"name": "Sections", "description": "Section staffing, enrollment and grading"},
        {"name": "Students", "description": "Students, plans of study and transcripts"},
        {"name": "Professors", "description": "Professors and the sections they teach"},
        {"name": "Schedule", "description": "Weekly day x time slot grid"}
    ],
    "paths": {
        "/courses": {
            "get": {
                "tags": ["Courses"],
                "summary": "List courses",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "post": {
                "tags": ["Courses"],
                "summary": "Register course",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateCourseRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Course id already registered", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/courses/{courseId}": {
            "get": {
                "tags": ["Courses"],
                "summary": "Get course by id",
                "parameters": [{"name": "courseId", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/courses/{courseId}/prerequisites": {
            "post": {
                "tags": ["Courses"],
                "summary": "Add prerequisite to course",
                "parameters": [
                    {"name": "courseId", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AddPrerequisiteRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/courses/{courseId}/sections": {
            "get": {
                "tags": ["Sections"],
                "summary": "List sections of a course",
                "parameters": [{"name": "courseId", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "post": {
                "tags": ["Sections"],
                "summary": "Create and schedule a section",
                "description": "Sections sharing a day and time slot are reported in placement.conflicts and meta.conflicts but still created.",
                "parameters": [
                    {"name": "courseId", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ScheduleSectionRequest"}}
                ],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/courses/{courseId}/sections/{sectionNo}": {
            "get": {
                "tags": ["Sections"],
                "summary": "Get section",
                "parameters": [
                    {"name": "courseId", "in": "path", "required": true, "type": "string"},
                    {"name": "sectionNo", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "SECTION_NOT_FOUND", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/courses/{courseId}/sections/{sectionNo}/instructor": {
            "put": {
                "tags": ["Sections"],
                "summary": "Assign professor to section",
                "parameters": [
                    {"name": "courseId", "in": "path", "required": true, "type": "string"},
                    {"name": "sectionNo", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AgreeToTeachRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "INSTRUCTOR_ALREADY_ASSIGNED", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/courses/{courseId}/sections/{sectionNo}/enrollments": {
            "post": {
                "tags": ["Sections"],
                "summary": "Enroll student in section",
                "description": "Checks run in order: seat available, teacher assigned, prerequisites satisfied.",
                "parameters": [
                    {"name": "courseId", "in": "path", "required": true, "type": "string"},
                    {"name": "sectionNo", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/EnrollRequest"}}
                ],
                "responses": {
                    "201": {"description": "Enrolled", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "200": {"description": "Already enrolled", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "SECTION_FULL", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "412": {"description": "NO_INSTRUCTOR", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "422": {"description": "PREREQUISITE_NOT_MET", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/courses/{courseId}/sections/{sectionNo}/grades": {
            "put": {
                "tags": ["Sections"],
                "summary": "Post grade for enrolled student",
                "parameters": [
                    {"name": "courseId", "in": "path", "required": true, "type": "string"},
                    {"name": "sectionNo", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/PostGradeRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "412": {"description": "NOT_ENROLLED", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/students": {
            "post": {
                "tags": ["Students"],
                "summary": "Register student",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateStudentRequest"}}
                ],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/students/{id}": {
            "get": {
                "tags": ["Students"],
                "summary": "Get student by id",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/students/{id}/advisor": {
            "put": {
                "tags": ["Students"],
                "summary": "Assign advisor",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AssignAdvisorRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/students/{id}/plan": {
            "get": {
                "tags": ["Students"],
                "summary": "Get plan of study",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "post": {
                "tags": ["Students"],
                "summary": "Add course to plan of study",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AddPlanCourseRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "422": {"description": "PREREQUISITE_NOT_MET", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/students/{id}/transcript": {
            "get": {
                "tags": ["Students"],
                "summary": "Get transcript",
                "produces": ["application/json", "text/csv", "application/pdf"],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/students/{id}/gpa": {
            "get": {
                "tags": ["Students"],
                "summary": "Get grade point average",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/professors": {
            "post": {
                "tags": ["Professors"],
                "summary": "Register professor",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateProfessorRequest"}}
                ],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/professors/{id}": {
            "get": {
                "tags": ["Professors"],
                "summary": "Get professor with taught sections",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/schedule": {
            "get": {
                "tags": ["Schedule"],
                "summary": "Weekly schedule grid",
                "produces": ["application/json", "text/csv", "application/pdf"],
                "parameters": [{"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/schedule/sections": {
            "get": {
                "tags": ["Schedule"],
                "summary": "Scheduled sections in grid order",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        }
    },
    "definitions": {
        "CreateCourseRequest": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "credits": {"type": "integer", "minimum": 1}
            },
            "required": ["id", "name", "credits"]
        },
        "AddPrerequisiteRequest": {
            "type": "object",
            "properties": {"prerequisite_id": {"type": "string"}},
            "required": ["prerequisite_id"]
        },
        "ScheduleSectionRequest": {
            "type": "object",
            "properties": {
                "section_no": {"type": "string"},
                "day_of_week": {"type": "string", "example": "Monday"},
                "time_of_day": {"type": "string", "example": "9:00 AM"},
                "semester": {"type": "string"},
                "room": {"type": "string"},
                "seating_capacity": {"type": "integer", "minimum": 1}
            },
            "required": ["section_no", "day_of_week", "time_of_day", "seating_capacity"]
        },
        "CreateStudentRequest": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "major": {"type": "string"},
                "degree": {"type": "string"}
            },
            "required": ["id", "name"]
        },
        "CreateProfessorRequest": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "title": {"type": "string"},
                "department": {"type": "string"}
            },
            "required": ["id", "name"]
        },
        "AssignAdvisorRequest": {
            "type": "object",
            "properties": {"professor_id": {"type": "string"}},
            "required": ["professor_id"]
        },
        "AddPlanCourseRequest": {
            "type": "object",
            "properties": {"course_id": {"type": "string"}},
            "required": ["course_id"]
        },
        "AgreeToTeachRequest": {
            "type": "object",
            "properties": {"professor_id": {"type": "string"}},
            "required": ["professor_id"]
        },
        "EnrollRequest": {
            "type": "object",
            "properties": {"student_id": {"type": "string"}},
            "required": ["student_id"]
        },
        "PostGradeRequest": {
            "type": "object",
            "properties": {
                "student_id": {"type": "string"},
                "grade": {"type": "integer", "minimum": 0, "maximum": 100}
            },
            "required": ["student_id", "grade"]
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
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
