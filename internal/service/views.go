package service

import (
	"github.com/noah-isme/academic-records/internal/dto"
	"github.com/noah-isme/academic-records/internal/models"
)

func courseView(c *models.Course) dto.CourseView {
	return dto.CourseView{ID: c.ID, Name: c.Name, Credits: c.Credits, Prerequisites: c.Prerequisites()}
}

func sectionRef(s *models.Section) dto.SectionRef {
	return dto.SectionRef{CourseID: s.CourseID(), SectionNo: s.SectionNo}
}

func sectionView(s *models.Section) dto.SectionView {
	grades := make(map[string]int)
	for _, id := range s.GradedStudents() {
		if entry, ok := s.Grade(id); ok {
			grades[id] = entry.Grade()
		}
	}
	return dto.SectionView{
		CourseID:        s.CourseID(),
		CourseName:      s.CourseName(),
		Credits:         s.Credits(),
		SectionNo:       s.SectionNo,
		DayOfWeek:       s.DayOfWeek,
		TimeOfDay:       s.TimeOfDay,
		Semester:        s.Semester,
		Room:            s.Room,
		SeatingCapacity: s.SeatingCapacity,
		EnrolledCount:   s.EnrolledCount(),
		InstructorID:    s.InstructorID,
		Roster:          s.Roster(),
		Grades:          grades,
		Prerequisites:   s.Prerequisites(),
	}
}

func placementView(p Placement) dto.PlacementView {
	view := dto.PlacementView{Day: p.Day.String(), TimeSlot: p.Bucket.String(), Conflicts: []dto.SectionRef{}}
	for _, c := range p.Conflicts {
		view.Conflicts = append(view.Conflicts, sectionRef(c))
	}
	return view
}

func studentView(s *models.Student) dto.StudentView {
	return dto.StudentView{ID: s.ID, Name: s.Name, Major: s.Major, Degree: s.Degree, AdvisorID: s.AdvisorID}
}

func professorView(p *models.Professor) dto.ProfessorView {
	view := dto.ProfessorView{ID: p.ID, Name: p.Name, Title: p.Title, Department: p.Department, Sections: []dto.SectionRef{}}
	for _, s := range p.Sections() {
		view.Sections = append(view.Sections, sectionRef(s))
	}
	return view
}

func planView(s *models.Student) dto.PlanOfStudyView {
	view := dto.PlanOfStudyView{StudentID: s.ID, Courses: []dto.CourseView{}}
	for _, c := range s.PlanOfStudy() {
		view.Courses = append(view.Courses, courseView(c))
	}
	return view
}

func entryView(e *models.TranscriptEntry) dto.TranscriptEntryView {
	section := e.Section()
	return dto.TranscriptEntryView{
		ID:         e.ID(),
		StudentID:  e.StudentID(),
		CourseID:   e.CourseID(),
		CourseName: section.CourseName(),
		SectionNo:  section.SectionNo,
		Semester:   section.Semester,
		Credits:    e.Credits(),
		Grade:      e.Grade(),
		PostedAt:   e.PostedAt(),
	}
}
