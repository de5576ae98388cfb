package dto

import "courseforge/internal/domain"

// CreateCourseRequest is the request body for creating a course
// @Description Request body for creating a course from a topic
type CreateCourseRequest struct {
	Title     string `json:"title"`
	UnitCount int    `json:"unit_count"`
}

// CreateCourseResponse returns the id of the created course
type CreateCourseResponse struct {
	CourseID string `json:"course_id"`
}

// RegenerateUnitResponse is returned after a successful regeneration
// @Description Regeneration outcome with the refreshed unit
type RegenerateUnitResponse struct {
	Message string       `json:"message"`
	Unit    UnitResponse `json:"unit"`
}

// CourseResponse represents a course with its unit tree
type CourseResponse struct {
	ID    string         `json:"id"`
	Name  string         `json:"name"`
	Image string         `json:"image,omitempty"`
	Units []UnitResponse `json:"units"`
}

// UnitResponse represents a unit with its chapters
type UnitResponse struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Chapters []ChapterResponse `json:"chapters"`
}

// ChapterResponse represents a chapter in the API response
type ChapterResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	VideoID          string `json:"video_id,omitempty"`
	VideoSearchQuery string `json:"video_search_query"`
}

// ChapterContentResponse carries a chapter's structured content
type ChapterContentResponse struct {
	ChapterName string                  `json:"chapter_name"`
	Summary     []domain.ContentSection `json:"summary"`
	KeyPoints   []domain.ContentSection `json:"key_points"`
}

// PopulateChapterResponse reports chapter population
type PopulateChapterResponse struct {
	Success bool `json:"success"`
}

// ToUnitResponse maps a domain unit onto its response shape
func ToUnitResponse(unit *domain.Unit) UnitResponse {
	resp := UnitResponse{
		ID:       unit.ID,
		Name:     unit.Name,
		Chapters: make([]ChapterResponse, 0, len(unit.Chapters)),
	}
	for _, ch := range unit.Chapters {
		resp.Chapters = append(resp.Chapters, ChapterResponse{
			ID:               ch.ID,
			Name:             ch.Name,
			VideoID:          ch.VideoID,
			VideoSearchQuery: ch.VideoSearchQuery,
		})
	}
	return resp
}

// ToCourseResponse maps a domain course onto its response shape
func ToCourseResponse(course *domain.Course) CourseResponse {
	resp := CourseResponse{
		ID:    course.ID,
		Name:  course.Name,
		Image: course.Image,
		Units: make([]UnitResponse, 0, len(course.Units)),
	}
	for _, unit := range course.Units {
		resp.Units = append(resp.Units, ToUnitResponse(unit))
	}
	return resp
}
