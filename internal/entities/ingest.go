package entities

// UploadResult - итог загрузки таблицы на бэкенде.
type UploadResult struct {
	Message           string
	File              string
	TotalRecords      int
	Inserted          int
	DuplicatesSkipped int
	SavedToDatabase   bool
}

// ClearResult - итог полной очистки базы.
type ClearResult struct {
	Message string
	Removed int
}
