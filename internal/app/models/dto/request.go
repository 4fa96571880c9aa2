package dto

// CourseQuery selects a course page by tag or code
type CourseQuery struct {
	Tag string `form:"tag" binding:"required,max=200"`
}

// SearchQuery is a free text course search
type SearchQuery struct {
	Q string `form:"q" binding:"required,max=200"`
}

// CoursePath addresses one course
type CoursePath struct {
	Code string `uri:"code" binding:"required,max=32"`
}

// ExamPath addresses one exam histogram
type ExamPath struct {
	Code     string `uri:"code" binding:"required,segment"`
	Semester string `uri:"semester" binding:"required,segment"`
	Exam     string `uri:"exam" binding:"required,segment"`
}
