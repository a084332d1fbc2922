package models

// ReconcileAction is the outcome of comparing a scan against the list.
type ReconcileAction string

const (
	ActionInsert ReconcileAction = "INSERT"
	ActionMerge  ReconcileAction = "MERGE"
	ActionReject ReconcileAction = "REJECT"
)

// Decision tells the caller what to do with a scan. Index is the position of
// the matched record for MERGE and REJECT, and -1 for INSERT.
type Decision struct {
	Action ReconcileAction `json:"action"`
	Index  int             `json:"index"`
}

// UploadResult summarizes one batch upload.
type UploadResult struct {
	SuccessCount int             `json:"successCount"`
	Succeeded    []StudentRecord `json:"succeeded"`
	Failed       []StudentRecord `json:"failed"`
}

// Remaining is the number of records left for a manual retry.
func (r UploadResult) Remaining() int {
	return len(r.Failed)
}
