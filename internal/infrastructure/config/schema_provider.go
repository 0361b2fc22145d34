package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"
)

// GenerateSchema returns the JSON schema of the configuration file.
func GenerateSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		FieldNameTag:               "toml",
		DoNotReference:             true,
		AllowAdditionalProperties:  false,
		RequiredFromJSONSchemaTags: true,
	}
	schema := r.Reflect(&Config{})

	schema.ID = "https://github.com/bnema/dumbcam/config.schema.json"
	schema.Title = "DumbCam Configuration"
	schema.Description = "Configuration schema for dumbcam, a camera page host with a gallery bridge"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}

// GenerateSchemaFile writes config.schema.json next to the config file and
// returns its path.
func GenerateSchemaFile(configDir string) (string, error) {
	data, err := GenerateSchema()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(configDir, dirPerm); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	schemaFile := filepath.Join(configDir, schemaName)
	if err := os.WriteFile(schemaFile, data, filePerm); err != nil {
		return "", fmt.Errorf("failed to write schema file: %w", err)
	}
	return schemaFile, nil
}
