package repositories

// Repositories holds all the repository instances
type Repositories struct {
	StudentList *StudentListRepository
}

// NewRepositories initializes all repositories over one key/value store
func NewRepositories(kv KeyValueStore, listKey string) *Repositories {
	return &Repositories{
		StudentList: NewStudentListRepository(kv, listKey),
	}
}

// Close releases the underlying store
func (r *Repositories) Close() error {
	return r.StudentList.Close()
}
