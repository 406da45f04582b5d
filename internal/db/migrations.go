package db

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io/fs"
	"log"
	"path"
	"slices"
	"strconv"
	"strings"
	"time"

	embeddedmigrations "github.com/rafaeldias2025/oficial-27/migrations"
	"gorm.io/gorm"
)

// schemaMigration is one applied file. Checksum lets a boot notice that an
// already applied file was edited afterwards.
type schemaMigration struct {
	Version   int       `gorm:"primaryKey;autoIncrement:false"`
	Name      string    `gorm:"not null"`
	Checksum  string    `gorm:"not null;default:''"`
	AppliedAt time.Time `gorm:"not null"`
}

func (schemaMigration) TableName() string {
	return "schema_migrations"
}

type migrationFile struct {
	version  int
	name     string
	body     string
	checksum string
}

func migrateSchema(database *gorm.DB) error {
	return runMigrations(database, embeddedmigrations.Files)
}

func runMigrations(database *gorm.DB, source fs.FS) error {
	if err := database.AutoMigrate(&schemaMigration{}); err != nil {
		return fmt.Errorf("prepare schema_migrations: %w", err)
	}

	pending, err := readMigrationFiles(source)
	if err != nil {
		return err
	}

	var applied []schemaMigration
	if err := database.Order("version").Find(&applied).Error; err != nil {
		return fmt.Errorf("list applied migrations: %w", err)
	}
	known := make(map[int]schemaMigration, len(applied))
	for _, record := range applied {
		known[record.Version] = record
	}

	for _, file := range pending {
		if record, done := known[file.version]; done {
			if record.Checksum != "" && record.Checksum != file.checksum {
				log.Printf("migration %s changed after it was applied", file.name)
			}
			continue
		}
		if err := applyMigrationFile(database, file); err != nil {
			return err
		}
		log.Printf("applied migration %s", file.name)
	}
	return nil
}

// readMigrationFiles returns NNNN_name.sql files ordered by version. Other
// files are ignored and a repeated version is an error.
func readMigrationFiles(source fs.FS) ([]migrationFile, error) {
	names, err := fs.Glob(source, "*.sql")
	if err != nil {
		return nil, fmt.Errorf("list migrations: %w", err)
	}

	files := make([]migrationFile, 0, len(names))
	owners := make(map[int]string, len(names))
	for _, name := range names {
		prefix, _, found := strings.Cut(path.Base(name), "_")
		if !found {
			continue
		}
		version, err := strconv.Atoi(prefix)
		if err != nil {
			continue
		}
		if owner, taken := owners[version]; taken {
			return nil, fmt.Errorf("migration version %d used by %s and %s", version, owner, name)
		}
		owners[version] = name

		raw, err := fs.ReadFile(source, name)
		if err != nil {
			return nil, fmt.Errorf("read migration %s: %w", name, err)
		}
		sum := sha256.Sum256(raw)
		files = append(files, migrationFile{
			version:  version,
			name:     name,
			body:     string(raw),
			checksum: hex.EncodeToString(sum[:]),
		})
	}

	slices.SortFunc(files, func(a, b migrationFile) int {
		return a.version - b.version
	})
	return files, nil
}

func applyMigrationFile(database *gorm.DB, file migrationFile) error {
	statements := sqlStatements(file.body)
	if len(statements) == 0 {
		return fmt.Errorf("migration %s is empty", file.name)
	}

	return database.Transaction(func(tx *gorm.DB) error {
		for index, statement := range statements {
			if err := tx.Exec(statement).Error; err != nil {
				return fmt.Errorf("migration %s statement %d: %w", file.name, index+1, err)
			}
		}
		record := schemaMigration{
			Version:   file.version,
			Name:      file.name,
			Checksum:  file.checksum,
			AppliedAt: time.Now().UTC(),
		}
		if err := tx.Create(&record).Error; err != nil {
			return fmt.Errorf("record migration %s: %w", file.name, err)
		}
		return nil
	})
}

// sqlStatements splits on ";" and drops "--" comment lines. Files must not put
// semicolons inside literals.
func sqlStatements(body string) []string {
	var kept strings.Builder
	for _, line := range strings.Split(body, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "--") {
			continue
		}
		kept.WriteString(line)
		kept.WriteByte('\n')
	}

	statements := make([]string, 0)
	for _, part := range strings.Split(kept.String(), ";") {
		if statement := strings.TrimSpace(part); statement != "" {
			statements = append(statements, statement)
		}
	}
	return statements
}
