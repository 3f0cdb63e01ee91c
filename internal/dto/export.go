package dto

// ExportFormat selects the rendering of an export.
type ExportFormat string

const (
	ExportFormatCSV ExportFormat = "csv"
	ExportFormatPDF ExportFormat = "pdf"
)

// TranscriptCSVRow is one transcript line in CSV exports.
type TranscriptCSVRow struct {
	CourseID   string `csv:"course_id"`
	CourseName string `csv:"course_name"`
	SectionNo  string `csv:"section_no"`
	Semester   string `csv:"semester"`
	Credits    int    `csv:"credits"`
	Grade      int    `csv:"grade"`
}

// ScheduleCSVRow is one placed section in CSV exports.
type ScheduleCSVRow struct {
	Day        string `csv:"day"`
	TimeSlot   string `csv:"time_slot"`
	CourseID   string `csv:"course_id"`
	SectionNo  string `csv:"section_no"`
	TimeOfDay  string `csv:"time_of_day"`
	Room       string `csv:"room"`
	Semester   string `csv:"semester"`
	Instructor string `csv:"instructor"`
}

// ExportFile is a rendered export ready to stream.
type ExportFile struct {
	Filename    string
	ContentType string
	Content     []byte
}
