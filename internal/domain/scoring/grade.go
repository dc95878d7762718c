package scoring

// Grade is the informal accuracy band shown next to a mock draft.
type Grade struct {
	Code  string
	Label string
}

var gradeBands = []struct {
	minPercentage float64
	grade         Grade
}{
	{70, Grade{Code: "S+", Label: "God Mode"}},
	{60, Grade{Code: "A+", Label: "Amazing"}},
	{50, Grade{Code: "A", Label: "Great"}},
	{40, Grade{Code: "B+", Label: "Very Good"}},
	{30, Grade{Code: "B", Label: "Pretty Good"}},
	{20, Grade{Code: "B-", Label: "Decent"}},
	{15, Grade{Code: "C+", Label: "Below Average"}},
	{10, Grade{Code: "C", Label: "Poor"}},
}

// GradeFor maps an accuracy percentage onto its band. Bounds are inclusive
// and evaluated highest first; anything under 10 is a D.
func GradeFor(percentage float64) Grade {
	for _, band := range gradeBands {
		if percentage >= band.minPercentage {
			return band.grade
		}
	}
	return Grade{Code: "D", Label: "Very Poor"}
}
