package entity

// Models lists every table owned by this service, in migration order.
func Models() []interface{} {
	return []interface{}{
		&Role{},
		&Feature{},
		&Permission{},
		&RolePermission{},
		&SystemMessage{},
		&Author{},
		&Category{},
		&Book{},
	}
}
