package dto

// SearchHit is one fuzzy search candidate
type SearchHit struct {
	Tag   string  `json:"tag" example:"00234218 - מבני נתונים 1"`
	Code  string  `json:"code" example:"00234218"`
	Score float64 `json:"score" example:"90"`
}

// SearchResponse lists the candidates of a query, best first
type SearchResponse struct {
	Query string      `json:"query" example:"234218"`
	Hits  []SearchHit `json:"hits"`
}

// ReferenceItem is one entry of a course reference section
type ReferenceItem struct {
	Label    string `json:"label" example:"00234114 - מבוא למדעי המחשב מ"`
	Code     string `json:"code" example:"00234114"`
	Linkable bool   `json:"linkable" example:"true"`
	Href     string `json:"href,omitempty" example:"/?tag=00234114"`
}

// ReferenceSection is a titled list of related courses
type ReferenceSection struct {
	Key   string          `json:"key" example:"prerequisites"`
	Title string          `json:"title" example:"מקצועות קדם:"`
	Items []ReferenceItem `json:"items"`
}

// CourseView is everything shown on a course page
type CourseView struct {
	Code     string             `json:"code" example:"00234218"`
	Name     string             `json:"name" example:"מבני נתונים 1"`
	Tag      string             `json:"tag" example:"00234218 - מבני נתונים 1"`
	Faculty  string             `json:"faculty" example:"מדעי המחשב"`
	Points   string             `json:"points" example:"3.0"`
	Syllabus string             `json:"syllabus"`
	Sections []ReferenceSection `json:"sections"`
}

// CourseAverage is the latest exam average of a course; Average is null when not available
type CourseAverage struct {
	Code    string   `json:"code" example:"00234218"`
	Average *float64 `json:"average" example:"74.2"`
}

// AveragesResponse holds the averages of a course and of the courses it references
type AveragesResponse struct {
	Course   string          `json:"course" example:"00234218"`
	Averages []CourseAverage `json:"averages"`
}

// SemestersResponse lists the semesters with grade histograms, newest first
type SemestersResponse struct {
	Course    string   `json:"course" example:"00234218"`
	Semesters []string `json:"semesters"`
}
