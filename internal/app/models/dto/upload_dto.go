package dto

// UploadResponse is the aggregate outcome of a batch upload
type UploadResponse struct {
	Uploaded  int    `json:"uploaded" example:"3"`
	Remaining int    `json:"remaining" example:"1"`
	Message   string `json:"message" example:"Successfully uploaded 3 student(s)"`
}
