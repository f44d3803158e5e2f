package models

import "database/sql"

// ClusterAggregate is the raw grouped row for one cluster.
type ClusterAggregate struct {
	Cluster      int             `db:"cluster"`
	AvgExamScore sql.NullFloat64 `db:"avg_exam_score"`
	Count        int64           `db:"count"`
}

// LevelAggregate is the raw grouped row for one level.
type LevelAggregate struct {
	Level string `db:"level"`
	Count int64  `db:"count"`
}

// BucketAggregate is the raw grouped row for one study-hours bucket.
type BucketAggregate struct {
	Bucket       string          `db:"bucket"`
	AvgExamScore sql.NullFloat64 `db:"avg_exam_score"`
	Count        int64           `db:"count"`
}

// ClusterSummary is the average exam score per cluster.
type ClusterSummary struct {
	Cluster      int     `json:"cluster"`
	AvgExamScore float64 `json:"avgExamScore"`
	Count        int     `json:"count"`
}

// LevelCount is the number of records at one proficiency level.
type LevelCount struct {
	Level string `json:"level"`
	Count int    `json:"count"`
}

// BucketSummary is the average exam score for one study-hours range.
type BucketSummary struct {
	Bucket       string  `json:"bucket"`
	AvgExamScore float64 `json:"avgExamScore"`
	Count        int     `json:"count"`
}
