package models

// StudentRecord is one row of the externally managed performance table. JSON keys keep
// the column names the dashboard client reads.
type StudentRecord struct {
	ID                   int64   `db:"id" json:"id"`
	StudyHours           float64 `db:"study_hours" json:"StudyHours"`
	Attendance           float64 `db:"attendance" json:"Attendance"`
	AssignmentCompletion float64 `db:"assignment_completion" json:"AssignmentCompletion"`
	ExamScore            float64 `db:"exam_score" json:"ExamScore"`
	FinalGrade           string  `db:"final_grade" json:"FinalGrade"`
	Cluster              int     `db:"cluster" json:"Cluster"`
	Level                string  `db:"level" json:"Level"`
}

// RecordPage is a bounded, id-ordered slice of the table.
type RecordPage struct {
	Page       int             `json:"page"`
	PageSize   int             `json:"pageSize"`
	Total      int             `json:"total"`
	TotalPages int             `json:"totalPages"`
	Data       []StudentRecord `json:"data"`
}

// RecordColumns lists the exported columns in display order.
var RecordColumns = []string{"id", "StudyHours", "Attendance", "AssignmentCompletion", "ExamScore", "FinalGrade", "Cluster", "Level"}
