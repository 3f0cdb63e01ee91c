package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/academic-records/internal/dto"
	appErrors "github.com/noah-isme/academic-records/pkg/errors"
)

type sectionServiceMock struct {
	enrollResp  *dto.EnrollmentResult
	enrollErr   error
	gradeResp   *dto.TranscriptEntryView
	gradeErr    error
	lastCourse  string
	lastSection string
	lastGrade   dto.PostGradeRequest
	enrollCalls int
}

func (m *sectionServiceMock) FindSection(courseID, sectionNo string) (*dto.SectionView, error) {
	m.lastCourse, m.lastSection = courseID, sectionNo
	return nil, appErrors.Clone(appErrors.ErrSectionNotFound, "can't find section "+courseID+"/"+sectionNo)
}

func (m *sectionServiceMock) AgreeToTeach(courseID, sectionNo string, req dto.AgreeToTeachRequest) (*dto.AssignmentResult, error) {
	return nil, appErrors.ErrInstructorAssigned
}

func (m *sectionServiceMock) EnrollStudent(courseID, sectionNo string, req dto.EnrollRequest) (*dto.EnrollmentResult, error) {
	m.enrollCalls++
	m.lastCourse, m.lastSection = courseID, sectionNo
	return m.enrollResp, m.enrollErr
}

func (m *sectionServiceMock) PostGrade(courseID, sectionNo string, req dto.PostGradeRequest) (*dto.TranscriptEntryView, error) {
	m.lastGrade = req
	return m.gradeResp, m.gradeErr
}

func newSectionContext(method, body string, params gin.Params) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(method, "/courses/CS101/sections/S1", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Params = params
	return c, w
}

var sectionParams = gin.Params{{Key: "courseId", Value: "CS101"}, {Key: "sectionNo", Value: "S1"}}

func TestSectionHandlerEnrollCreated(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &sectionServiceMock{enrollResp: &dto.EnrollmentResult{StudentID: "1", CourseID: "CS101", SectionNo: "S1", EnrolledCount: 1}}
	handler := NewSectionHandler(mockSvc)

	c, w := newSectionContext(http.MethodPost, `{"student_id":"1"}`, sectionParams)
	handler.Enroll(c)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "CS101", mockSvc.lastCourse)
	assert.Equal(t, "S1", mockSvc.lastSection)
}

func TestSectionHandlerEnrollAlreadyEnrolled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewSectionHandler(&sectionServiceMock{enrollResp: &dto.EnrollmentResult{StudentID: "1", AlreadyEnrolled: true}})

	c, w := newSectionContext(http.MethodPost, `{"student_id":"1"}`, sectionParams)
	handler.Enroll(c)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Data dto.EnrollmentResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Data.AlreadyEnrolled)
}

func TestSectionHandlerEnrollFailures(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"full", appErrors.Clone(appErrors.ErrSectionFull, "section CS101/S1 is full"), http.StatusConflict, "SECTION_FULL"},
		{"no instructor", appErrors.Clone(appErrors.ErrNoInstructor, "section CS101/S1 has no teacher"), http.StatusPreconditionFailed, "NO_INSTRUCTOR"},
		{"prerequisite", appErrors.Clone(appErrors.ErrPrerequisiteNotMet, "prerequisite CS102 not met or grade not above 5"), http.StatusUnprocessableEntity, "PREREQUISITE_NOT_MET"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			handler := NewSectionHandler(&sectionServiceMock{enrollErr: tc.err})
			c, w := newSectionContext(http.MethodPost, `{"student_id":"1"}`, sectionParams)
			handler.Enroll(c)

			require.Equal(t, tc.status, w.Code)
			var body struct {
				Error appErrors.Error `json:"error"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tc.code, body.Error.Code)
		})
	}
}

func TestSectionHandlerEnrollInvalidBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &sectionServiceMock{}
	handler := NewSectionHandler(mockSvc)

	c, w := newSectionContext(http.MethodPost, `{"student_id":`, sectionParams)
	handler.Enroll(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, mockSvc.enrollCalls)
}

func TestSectionHandlerGetNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewSectionHandler(&sectionServiceMock{})

	c, w := newSectionContext(http.MethodGet, "", gin.Params{{Key: "courseId", Value: "CS101"}, {Key: "sectionNo", Value: "S9"}})
	handler.Get(c)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "can't find section CS101/S9")
}

func TestSectionHandlerPostGrade(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &sectionServiceMock{gradeResp: &dto.TranscriptEntryView{CourseID: "CS101", Grade: 95}}
	handler := NewSectionHandler(mockSvc)

	c, w := newSectionContext(http.MethodPut, `{"student_id":"1","grade":95}`, sectionParams)
	handler.PostGrade(c)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, mockSvc.lastGrade.Grade)
	assert.Equal(t, 95, *mockSvc.lastGrade.Grade)
}

func TestSectionHandlerAgreeToTeachConflict(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewSectionHandler(&sectionServiceMock{})

	c, w := newSectionContext(http.MethodPut, `{"professor_id":"P2"}`, sectionParams)
	handler.AgreeToTeach(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}
