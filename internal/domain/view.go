package domain

// CoursesView is what the presentation layer renders after every mutation.
type CoursesView struct {
	Courses   []*CourseRecord
	GlobalGPA string
}
