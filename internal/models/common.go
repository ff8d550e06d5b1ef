package models

import (
	"github.com/google/uuid"
)

// ensureUUID проставляет UUID, если id еще не задан
func ensureUUID(id *string) {
	if *id == "" {
		*id = uuid.NewString()
	}
}

// All возвращает все сущности для AutoMigrate
func All() []interface{} {
	return []interface{}{
		&Company{},
		&User{},
		&Estate{},
		&Community{},
		&CommunityComment{},
		&House{},
		&HouseAnswer{},
		&Onestop{},
		&OnestopAnswer{},
		&Interior{},
		&InteriorSample{},
		&InteriorReview{},
		&InteriorRequest{},
		&InteriorAllRequest{},
		&InteriorAllAnswer{},
		&EstateBookmark{},
		&CommunityBookmark{},
		&InteriorBookmark{},
		&Auth{},
	}
}
