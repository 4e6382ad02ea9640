package dao

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

// MySQL server error number for a unique key violation
const mysqlDuplicateEntry = 1062

// IsDuplicateEntry reports whether err is a MySQL unique constraint violation,
// unwrapping any annotation added along the way
func IsDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry
}
