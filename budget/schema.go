package budget

import "github.com/invopop/jsonschema"

// ConfigSchema returns a JSON schema for Config, for editor completion
// and external validation of config files.
func ConfigSchema() *jsonschema.Schema {
	reflector := &jsonschema.Reflector{
		// Config has no required fields; everything defaults.
		DoNotReference: true,
	}
	return reflector.Reflect(&Config{})
}
