package exporting

import (
	"time"

	jsoniter "github.com/json-iterator/go"
)

const ManifestFile = "manifest.json"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Manifest descreve uma execução do relatório e os arquivos gerados por ela
type Manifest struct {
	RunID         string    `json:"run_id"`
	CorrelationID string    `json:"correlation_id,omitempty"`
	GeneratedAt   time.Time `json:"generated_at"`
	Charts        []string  `json:"charts"`
	Files         []string  `json:"files"`
}

func (m *Manifest) Encode() ([]byte, error) {
	return json.MarshalIndent(m, "", "  ")
}

func DecodeManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}
