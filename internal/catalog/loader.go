package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/osse101/CozyGarden_Go/internal/validation"
)

//go:embed catalog.schema.json
var tuningSchema []byte

// Tuning is the on-disk shape of a catalog override file.
type Tuning struct {
	Upgrades []UpgradeDefinition `yaml:"upgrades"`
}

// Load reads a YAML tuning file, checks it against the embedded schema and
// builds a catalog from it. An empty path yields the default catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadTuningFailedFmt, path, err)
	}

	c, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgParseTuningFailedFmt, path, err)
	}

	slog.Default().Info(LogMsgTuningLoaded, "path", path, "upgrades", c.Len())
	return c, nil
}

// Parse builds a catalog from YAML tuning bytes.
func Parse(raw []byte) (*Catalog, error) {
	if err := validateTuning(raw); err != nil {
		return nil, err
	}

	var t Tuning
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return nil, err
	}
	return New(t.Upgrades)
}

// tuningValidator holds the compiled tuning schema
var tuningValidator = validation.NewSchemaValidator()

// validateTuning runs the schema over the document. YAML is converted to its
// JSON form first so the validator sees plain JSON values.
func validateTuning(raw []byte) error {
	if err := tuningValidator.AddSchema(tuningSchemaURL, tuningSchema); err != nil {
		return fmt.Errorf(ErrMsgCompileSchemaFailed, err)
	}

	var doc interface{}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return err
	}
	asJSON, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	if err := tuningValidator.ValidateBytes(asJSON, tuningSchemaURL); err != nil {
		return fmt.Errorf(ErrMsgTuningSchemaFailedFmt, tuningSchemaURL, err)
	}
	return nil
}
