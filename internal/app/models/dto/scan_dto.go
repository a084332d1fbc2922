package dto

import "github.com/yigit/idscan/internal/app/models"

// ScanRequest is one capture event from the scanner
type ScanRequest struct {
	Name          string `json:"name" binding:"required" validate:"max=200" example:"Alice Nguyen"`
	StudentNumber string `json:"studentNumber" binding:"required" validate:"max=50" example:"3901234"`
	Program       string `json:"program,omitempty" validate:"max=100" example:"BP162"`
}

// ToInput converts the request into the reconciliation input
func (r ScanRequest) ToInput() models.ScanInput {
	return models.ScanInput{
		Name:          r.Name,
		StudentNumber: r.StudentNumber,
		Program:       r.Program,
	}
}

// ScanTextRequest carries raw OCR text read off an ID card
type ScanTextRequest struct {
	Text string `json:"text" binding:"required" validate:"max=20000" example:"RMIT UNIVERSITY\nALICE NGUYEN\n3901234"`
}

// ScanResponse reports what reconciliation did with a scan
type ScanResponse struct {
	Action models.ReconcileAction `json:"action" example:"INSERT"`
	Record models.StudentRecord   `json:"record"`
}
