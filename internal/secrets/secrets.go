// Package secrets resolves credentials such as the API bearer token from
// configuration values or files.
package secrets

import (
	"fmt"
	"os"
	"strings"
)

// Source describes how to load a secret value.
type Source struct {
	// Name is used in error messages, e.g. "api token".
	Name string
	// Value is an inline secret taken from configuration, flags or environment.
	Value string
	// File holds the secret; it wins over Value.
	File string
	// Optional makes an unconfigured source resolve to an empty secret.
	Optional bool
}

// Load returns the trimmed secret of src. Configuring a file that is empty is
// always an error, even for optional sources.
func Load(src Source) (string, error) {
	name := strings.TrimSpace(src.Name)
	if name == "" {
		name = "secret"
	}

	if file := strings.TrimSpace(src.File); file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("reading %s from file %q: %w", name, file, err)
		}

		secret := strings.TrimSpace(string(data))
		if secret == "" {
			return "", fmt.Errorf("%s file %q is empty", name, file)
		}
		return secret, nil
	}

	secret := strings.TrimSpace(src.Value)
	if secret == "" && !src.Optional {
		return "", fmt.Errorf("%s is not configured", name)
	}
	return secret, nil
}
