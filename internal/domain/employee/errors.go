package employee

import "errors"

var (
	ErrEmployeeNotFound    = errors.New("employee not found")
	ErrEmployeeCodeExists  = errors.New("employee code already exists")
	ErrManagerNotFound     = errors.New("manager not found")
	ErrManagerRoleRequired = errors.New("assigned manager must hold the manager role")
)
