package service

import "strings"

type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Fields, "; ")
}

type AuditEntry struct {
	Actor             string
	ActorRole         string
	Action            string
	PatientNationalID string
	ResourceType      string
	ResourceID        string
	IPAddress         string
	RequestID         string
}
