package query

import (
	"errors"

	"github.com/go-gormigrate/gormigrate/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"k8s.io/klog/v2"

	"github.com/mosala-labs/mosala-backend/dao/model"
)

// Capability flags probed once after migration. The review engine consults
// SupportsRequiredCount instead of retrying queries against deployments
// whose project_needs table predates the required_count column.
type Capability struct {
	SupportsRequiredCount bool
}

var Capabilities Capability

// pgUndefinedTable is the Postgres SQLSTATE for a missing relation.
const pgUndefinedTable = "42P01"

// IsSchemaMissing reports whether err indicates that the underlying tables
// have not been migrated yet. Handlers translate this into a
// SchemaNotInitialized response with remediation guidance instead of a
// generic datastore failure.
func IsSchemaMissing(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUndefinedTable
	}
	return false
}

// Migrate runs the versioned migration set and probes capabilities.
func Migrate(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			ID: "202504010001_marketplace_core",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(
					&model.User{},
					&model.Project{},
					&model.ProjectNeed{},
					&model.ProjectNeedApplication{},
					&model.ProjectMember{},
				)
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable(
					&model.ProjectMember{},
					&model.ProjectNeedApplication{},
					&model.ProjectNeed{},
					&model.Project{},
					&model.User{},
				)
			},
		},
		{
			ID: "202504150002_notifications",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&model.Notification{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable(&model.Notification{})
			},
		},
		{
			ID: "202505020003_project_documents",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&model.ProjectDocument{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable(&model.ProjectDocument{})
			},
		},
	})

	if err := m.Migrate(); err != nil {
		return err
	}

	Capabilities = probeCapabilities(db)
	return nil
}

func probeCapabilities(db *gorm.DB) Capability {
	caps := Capability{
		SupportsRequiredCount: db.Migrator().HasColumn(&model.ProjectNeed{}, "required_count"),
	}
	if !caps.SupportsRequiredCount {
		klog.Warning("project_needs.required_count is absent; SKILL needs will fill on any acceptance")
	}
	return caps
}
