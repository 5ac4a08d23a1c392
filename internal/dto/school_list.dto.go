package dto

type SchoolListDTO struct {
	Code             int    `json:"code"`
	Name             string `json:"name"`
	Phone            string `json:"phone"`
	Email            string `json:"email"`
	Director         string `json:"director"`
	ContactStatus    string `json:"contact_status"`
	ManagementStatus string `json:"management_status"`
	CourseCount      int    `json:"course_count"`
	LastNote         string `json:"last_note,omitempty"`
}
