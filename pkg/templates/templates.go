package templates

import (
	"bytes"
	_ "embed"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/seshanpillay25/contexthub/pkg/errors"
	"github.com/seshanpillay25/contexthub/pkg/logging"
	"github.com/seshanpillay25/contexthub/pkg/types"
	"gopkg.in/yaml.v3"
)

//go:embed ai-context-template.md
var masterTemplate string

//go:embed aider-template.yml
var aiderTemplate string

var aider = template.Must(template.New("aider").Funcs(template.FuncMap{
	"yaml":    yamlScalar,
	"comment": commentText,
}).Parse(aiderTemplate))

// yamlScalar encodes s as a YAML value, quoting it when the plain form
// would be read back differently.
func yamlScalar(s string) (string, error) {
	out, err := yaml.Marshal(s)
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(string(out), "\n"), nil
}

var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

func commentText(s string) string {
	return lineBreaks.Replace(s)
}

// MasterContent returns the boilerplate written to a new master file.
func MasterContent() string {
	return masterTemplate
}

// AiderContent renders the Aider configuration, pointing its read list at
// the master file.
func AiderContent(master string) (string, error) {
	var buf bytes.Buffer
	data := struct{ Master string }{Master: filepath.ToSlash(master)}
	if err := aider.Execute(&buf, data); err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to render aider template")
	}
	return buf.String(), nil
}

// EnsureFile writes content to path only if nothing exists there yet.
// It reports whether the file was created.
func EnsureFile(fs types.FS, path, content string) (bool, error) {
	logger := logging.GetLogger("templates")

	if _, err := fs.Lstat(path); err == nil {
		logger.Debug().Str("path", path).Msg("File already exists, leaving untouched")
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, errors.Wrapf(err, errors.ErrFileAccess, "failed to check %s", path)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := fs.MkdirAll(dir, 0755); err != nil {
			return false, errors.Wrapf(err, errors.ErrDirCreate, "failed to create directory for %s", path)
		}
	}

	if err := fs.WriteFile(path, []byte(content), 0644); err != nil {
		return false, errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", path)
	}

	logger.Info().Str("path", path).Msg("Created file from template")
	return true, nil
}
