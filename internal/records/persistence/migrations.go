package persistence

import (
	"fmt"

	"scout-server/internal/infra/sql"
	"scout-server/internal/records/persistence/internal"
)

// migrate creates every relation of the records context. Repositories cascade
// across each other's relations, so each constructor migrates all of them.
func migrate(orm sql.ORM) error {
	err := orm.AutoMigrate(
		&internal.Table{},
		&internal.Field{},
		&internal.Record{},
		&internal.RecordValue{},
		&internal.TablePermission{},
	)
	if err != nil {
		return fmt.Errorf("auto migrating: %w", err)
	}

	return nil
}
