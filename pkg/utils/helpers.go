package utils

import "database/sql"

func NullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func StringPtr(s string) *string {
	return &s
}
