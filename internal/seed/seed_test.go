package seed

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/academic-records/internal/repository"
	"github.com/noah-isme/academic-records/internal/service"
)

func newService() *service.AcademicService {
	return service.NewAcademicService(repository.NewRegistry(), validator.New(), zap.NewNop(), nil, service.DefaultAcademicConfig())
}

func TestDemo(t *testing.T) {
	svc := newService()

	report, err := Demo(svc, nil)
	require.NoError(t, err)
	assert.Equal(t, []Outcome{{Step: "plan CS201", Code: "PREREQUISITE_NOT_MET"}}, report.Failed())

	transcript, err := svc.Transcript("1")
	require.NoError(t, err)
	require.Len(t, transcript.Entries, 1)
	assert.Equal(t, "CS101", transcript.Entries[0].CourseID)
	assert.InDelta(t, 3.8, transcript.GPA, 1e-9)

	plan, err := svc.PlanOfStudy("1")
	require.NoError(t, err)
	require.Len(t, plan.Courses, 2)

	grid := svc.ScheduleGrid()
	monMorning := grid.Cells[0]
	assert.Equal(t, "Mon", monMorning.Day)
	assert.Len(t, monMorning.Sections, 2)

	student, err := svc.Student("1")
	require.NoError(t, err)
	assert.Equal(t, "P1", student.AdvisorID)
}

func TestDemoTwiceSkipsExistingCatalog(t *testing.T) {
	svc := newService()
	_, err := Demo(svc, nil)
	require.NoError(t, err)

	report, err := Demo(svc, nil)
	require.NoError(t, err)
	codes := map[string]string{}
	for _, o := range report.Failed() {
		codes[o.Step] = o.Code
	}
	assert.Equal(t, "INSTRUCTOR_ALREADY_ASSIGNED", codes["teach CS101/S1"])
	assert.Equal(t, "PREREQUISITE_NOT_MET", codes["plan CS201"])
	_, enrolledAgain := codes["enroll 1 in CS101/S1"]
	assert.False(t, enrolledAgain)
}
