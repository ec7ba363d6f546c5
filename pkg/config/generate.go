package config

import (
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/seshanpillay25/contexthub/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Format is the serialization used by Generate.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

const generatedHeader = `contexthub project configuration
Uncomment and edit the values you want to change. A links list replaces
the default list entirely.
`

// Generate renders the default configuration with every value commented
// out, ready to be saved as a project config file.
func Generate(format Format) (string, error) {
	var (
		data []byte
		err  error
	)
	cfg := Default()

	switch format {
	case FormatTOML, "":
		data, err = toml.Marshal(cfg)
	case FormatYAML:
		data, err = yaml.Marshal(cfg)
	default:
		return "", errors.Newf(errors.ErrInvalidInput, "unknown config format %q", format)
	}
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInternal, "failed to marshal %s config", format)
	}

	return commentOut(generatedHeader) + "\n" + commentOut(string(data)), nil
}

// commentOut prefixes every non-blank line that is not already a comment
func commentOut(content string) string {
	lines := strings.Split(strings.TrimRight(content, "\n"), "\n")
	result := make([]string, 0, len(lines))

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			result = append(result, "#")
		case strings.HasPrefix(trimmed, "#"):
			result = append(result, line)
		default:
			result = append(result, "# "+line)
		}
	}

	return strings.Join(result, "\n") + "\n"
}
