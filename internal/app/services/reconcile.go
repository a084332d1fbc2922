package services

import "github.com/yigit/idscan/internal/app/models"

// Reconcile decides what to do with a scan given the current list.
//
// The student number is the natural key. A matching number with a different
// name is treated as a correction (MERGE); a matching number with the same
// name is a duplicate (REJECT). The heuristic cannot tell a correction from a
// wrong number typed for a different person.
func Reconcile(scan models.ScanInput, list []models.StudentRecord) models.Decision {
	for i, rec := range list {
		if !rec.SameStudentNumber(scan.StudentNumber) {
			continue
		}
		if rec.SameName(scan.Name) {
			return models.Decision{Action: models.ActionReject, Index: i}
		}
		return models.Decision{Action: models.ActionMerge, Index: i}
	}
	return models.Decision{Action: models.ActionInsert, Index: -1}
}
