package models

// ExportedSecret represents a secret fetched from the cluster for export
type ExportedSecret struct {
	Name      string            // Secret name
	Namespace string            // Source namespace
	Data      map[string][]byte // Raw values, already base64-decoded by the API machinery
}

// Target identifies where a re-encoded secret should be created
type Target struct {
	Name      string // Secret name
	Namespace string // Destination namespace
}
