package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/student-analytics-api/internal/models"
	"github.com/noah-isme/student-analytics-api/pkg/database"
)

// Source column names of the externally populated table.
const (
	colID                   = "id"
	colStudyHours           = "StudyHours"
	colAttendance           = "Attendance"
	colAssignmentCompletion = "AssignmentCompletion"
	colExamScore            = "ExamScore"
	colFinalGrade           = "FinalGrade"
	colCluster              = "Cluster"
	colLevel                = "Level"
)

// StudentRecordRepository issues read-only queries against the student records table.
type StudentRecordRepository struct {
	db *sqlx.DB

	countQuery   string
	listQuery    string
	clusterQuery string
	levelQuery   string
	bucketQuery  string
}

// NewStudentRecordRepository prepares the queries for table using the db driver's dialect.
func NewStudentRecordRepository(db *sqlx.DB, table string) *StudentRecordRepository {
	driver := db.DriverName()
	q := func(ident string) string { return database.QuoteIdentifier(driver, ident) }
	from := q(table)

	columns := strings.Join([]string{
		q(colID) + " AS id",
		q(colStudyHours) + " AS study_hours",
		q(colAttendance) + " AS attendance",
		q(colAssignmentCompletion) + " AS assignment_completion",
		q(colExamScore) + " AS exam_score",
		"COALESCE(" + q(colFinalGrade) + ", '') AS final_grade",
		q(colCluster) + " AS cluster",
		"COALESCE(" + q(colLevel) + ", '') AS level",
	}, ", ")

	return &StudentRecordRepository{
		db:         db,
		countQuery: fmt.Sprintf("SELECT COUNT(*) FROM %s", from),
		listQuery: db.Rebind(fmt.Sprintf("SELECT %s FROM %s ORDER BY %s LIMIT ? OFFSET ?",
			columns, from, q(colID))),
		clusterQuery: fmt.Sprintf("SELECT %[1]s AS cluster, AVG(%[2]s) AS avg_exam_score, COUNT(*) AS count FROM %[3]s GROUP BY %[1]s ORDER BY %[1]s",
			q(colCluster), q(colExamScore), from),
		levelQuery: fmt.Sprintf("SELECT %[1]s AS level, COUNT(*) AS count FROM %[2]s GROUP BY %[1]s ORDER BY %[1]s",
			"COALESCE("+q(colLevel)+", '')", from),
		bucketQuery: fmt.Sprintf("SELECT %s AS bucket, AVG(%s) AS avg_exam_score, COUNT(*) AS count FROM %s GROUP BY bucket ORDER BY MIN(%s)",
			bucketCase(q(colStudyHours)), q(colExamScore), from, q(colStudyHours)),
	}
}

// bucketCase renders models.StudyHoursBuckets as a CASE expression over column. Bounds
// and labels come from the static partition, never from request input.
func bucketCase(column string) string {
	buckets := models.StudyHoursBuckets
	var b strings.Builder
	b.WriteString("CASE")
	for i := 0; i < len(buckets)-1; i++ {
		fmt.Fprintf(&b, " WHEN %s < %s THEN '%s'",
			column, strconv.FormatFloat(buckets[i+1].LowerBound, 'f', -1, 64), buckets[i].Label)
	}
	fmt.Fprintf(&b, " ELSE '%s' END", buckets[len(buckets)-1].Label)
	return b.String()
}

// Count returns the number of rows in the table.
func (r *StudentRecordRepository) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, r.countQuery); err != nil {
		return 0, fmt.Errorf("count student records: %w", err)
	}
	return total, nil
}

// List returns up to limit rows ordered by id, skipping offset rows.
func (r *StudentRecordRepository) List(ctx context.Context, limit, offset int) ([]models.StudentRecord, error) {
	records := make([]models.StudentRecord, 0, limit)
	if err := r.db.SelectContext(ctx, &records, r.listQuery, limit, offset); err != nil {
		return nil, fmt.Errorf("list student records: %w", err)
	}
	return records, nil
}

// ClusterAggregates groups the table by cluster.
func (r *StudentRecordRepository) ClusterAggregates(ctx context.Context) ([]models.ClusterAggregate, error) {
	var rows []models.ClusterAggregate
	if err := r.db.SelectContext(ctx, &rows, r.clusterQuery); err != nil {
		return nil, fmt.Errorf("aggregate by cluster: %w", err)
	}
	return rows, nil
}

// LevelAggregates groups the table by level.
func (r *StudentRecordRepository) LevelAggregates(ctx context.Context) ([]models.LevelAggregate, error) {
	var rows []models.LevelAggregate
	if err := r.db.SelectContext(ctx, &rows, r.levelQuery); err != nil {
		return nil, fmt.Errorf("aggregate by level: %w", err)
	}
	return rows, nil
}

// BucketAggregates groups the table by study-hours bucket.
func (r *StudentRecordRepository) BucketAggregates(ctx context.Context) ([]models.BucketAggregate, error) {
	var rows []models.BucketAggregate
	if err := r.db.SelectContext(ctx, &rows, r.bucketQuery); err != nil {
		return nil, fmt.Errorf("aggregate by study hours: %w", err)
	}
	return rows, nil
}

// Ping verifies the store is reachable.
func (r *StudentRecordRepository) Ping(ctx context.Context) error {
	return database.Ping(ctx, r.db)
}
