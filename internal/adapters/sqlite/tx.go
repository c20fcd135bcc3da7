package sqlite

import "database/sql"

// storeTx groups the statements of one Save
type storeTx struct {
	tx   *sql.Tx
	done bool
}

func (s *Store) beginTx() (*storeTx, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, err
	}
	return &storeTx{tx: tx}, nil
}

// ClearImages removes every stored entry
func (t *storeTx) ClearImages() error {
	_, err := t.tx.Exec(`DELETE FROM images`)
	return err
}

// InsertImage adds one entry at the given folder and file position
func (t *storeTx) InsertImage(folder, filename string, folderPos, filePos int) error {
	_, err := t.tx.Exec(`
		INSERT INTO images (folder, filename, folder_pos, file_pos)
		VALUES (?, ?, ?, ?)
	`, folder, filename, folderPos, filePos)
	return err
}

// SetMeta inserts or updates a metadata value
func (t *storeTx) SetMeta(key, value string) error {
	_, err := t.tx.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES (?, ?)`, key, value)
	return err
}

// Commit commits the transaction
func (t *storeTx) Commit() error {
	t.done = true
	return t.tx.Commit()
}

// Rollback aborts the transaction unless it was already committed
func (t *storeTx) Rollback() error {
	if t.done {
		return nil
	}
	t.done = true
	return t.tx.Rollback()
}
