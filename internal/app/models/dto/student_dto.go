package dto

import "github.com/yigit/idscan/internal/app/models"

// StudentRequest is the body of manual add and edit-save.
// Presence after trimming is enforced by the list store, not here.
type StudentRequest struct {
	Name          string `json:"name" validate:"max=200" example:"Alice Nguyen"`
	StudentNumber string `json:"studentNumber" validate:"max=50" example:"3901234"`
	Program       string `json:"program" validate:"max=100" example:"BP162"`
}

// ToInput converts the request into the store's input type
func (r StudentRequest) ToInput() models.StudentInput {
	return models.StudentInput{
		Name:          r.Name,
		StudentNumber: r.StudentNumber,
		Program:       r.Program,
	}
}

// StudentListResponse is one page of records
type StudentListResponse struct {
	Students   []models.StudentRecord `json:"students"`
	Pagination PaginationInfo         `json:"pagination"`
}

// ClearResponse reports how many records a bulk clear removed
type ClearResponse struct {
	Removed int `json:"removed"`
}
