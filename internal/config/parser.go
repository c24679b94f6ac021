package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	cberrors "github.com/alexisbeaulieu97/counterbuddy/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// LoadSettings returns DefaultSettings when path is empty, otherwise it reads
// the file, overlays its keys on the defaults and validates the result.
func LoadSettings(path string) (Settings, error) {
	if path == "" {
		return DefaultSettings(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, cberrors.NewParseError(path, 0, err)
	}

	return ParseSettings(path, data)
}

// ParseSettings decodes data on top of DefaultSettings. Unknown keys are
// rejected. path is only used to annotate errors.
func ParseSettings(path string, data []byte) (Settings, error) {
	settings := DefaultSettings()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&settings); err != nil && !errors.Is(err, io.EOF) {
		return Settings{}, cberrors.NewParseError(path, extractLine(err), err)
	}

	if err := ValidateSettings(&settings); err != nil {
		return Settings{}, fmt.Errorf("%s: %w", path, err)
	}

	return settings, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}

	return line
}
