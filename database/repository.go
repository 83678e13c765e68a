package database

type Repository struct {
	db *DB
}

// NewRepository takes its own reference on the handle.
func NewRepository(db *DB) (*Repository, error) {
	clone, err := db.Clone()
	if err != nil {
		return nil, err
	}
	return &Repository{db: clone}, nil
}

// Close releases the repository's reference on the handle.
func (r *Repository) Close() error {
	return r.db.Close()
}
