package models

// HealthReport is the backend's health endpoint payload.
type HealthReport struct {
	Status           string         `json:"status"`
	Database         string         `json:"database,omitempty"`
	Collections      map[string]int `json:"collections,omitempty"`
	OpenAIConfigured bool           `json:"openai_configured"`
	Message          string         `json:"message,omitempty"`
}

// CollectionInfo describes one backend storage collection.
type CollectionInfo struct {
	Name          string   `json:"name"`
	DocumentCount int      `json:"document_count"`
	Indexes       []string `json:"indexes"`
}

// DBInfo is the backend's storage diagnostics payload.
type DBInfo struct {
	DatabaseName     string           `json:"database_name"`
	Collections      []CollectionInfo `json:"collections"`
	ConnectionString string           `json:"connection_string,omitempty"`
}
