package pagination

import "gorm.io/gorm"

// Count runs a distinct count on a clone of query, leaving query reusable for
// the page fetch.
func Count[T *int64](numItems T, query *gorm.DB, session *gorm.Session, distinct string) error {
	sql := query.
		Session(session).
		Distinct(distinct)

	if err := sql.Count(numItems).Error; err != nil {
		return err
	}

	return nil
}
