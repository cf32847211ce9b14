package specification

import "gorm.io/gorm"

// Specification defines the interface for query specifications applied by
// the GORM-backed repositories.
type Specification interface {
	Apply(db *gorm.DB) *gorm.DB
}
