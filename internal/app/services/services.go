// Package services holds the application logic behind the API and the CLI:
//   - RecordFactory builds canonical student records from raw input
//   - StudentStore is the ordered student list with write-through persistence
//   - UploadService pushes every record to the remote API and keeps the failures
//   - ScanService turns capture events and OCR text into reconciled records
//   - ExportService renders the list as a CSV download
package services
