package models

// StudyHoursBucket is a half-open range [LowerBound, next LowerBound).
type StudyHoursBucket struct {
	LowerBound float64
	Label      string
}

// StudyHoursBuckets partitions study hours. Ordered by LowerBound; the last bucket is
// unbounded above and values below the first bound fall into the first bucket.
var StudyHoursBuckets = []StudyHoursBucket{
	{LowerBound: 0, Label: "0-4"},
	{LowerBound: 5, Label: "5-9"},
	{LowerBound: 10, Label: "10-14"},
	{LowerBound: 15, Label: "15-19"},
	{LowerBound: 20, Label: "20-24"},
	{LowerBound: 25, Label: "25+"},
}

// BucketFor returns the label of the bucket containing hours.
func BucketFor(hours float64) string {
	label := StudyHoursBuckets[0].Label
	for _, b := range StudyHoursBuckets[1:] {
		if hours < b.LowerBound {
			break
		}
		label = b.Label
	}
	return label
}

// BucketIndex returns the position of label in StudyHoursBuckets, or -1.
func BucketIndex(label string) int {
	for i, b := range StudyHoursBuckets {
		if b.Label == label {
			return i
		}
	}
	return -1
}
