package output

import (
	"fmt"
	"os"

	"github.com/investease/sip-planner/internal/domain"
	"gopkg.in/yaml.v3"
)

// GenerateReport renders report with the named formatter (aliases allowed) and writes
// it to a timestamped file in dir. "all" writes one file per formatter.
func GenerateReport(report *domain.Report, format, dir string) ([]string, error) {
	if NormalizeFormatName(format) == "all" {
		var files []string
		for _, f := range builtInFormatters {
			name, err := WriteFormatted(f, report, dir, fileExtensions[f.Name()])
			if err != nil {
				return files, err
			}
			files = append(files, name)
		}
		return files, nil
	}

	f := GetFormatterByName(format)
	if f == nil {
		return nil, unsupported(format)
	}
	name, err := WriteFormatted(f, report, dir, fileExtensions[f.Name()])
	if err != nil {
		return nil, err
	}
	return []string{name}, nil
}

// Render formats report with the named formatter without touching the filesystem.
func Render(report *domain.Report, format string) ([]byte, error) {
	f := GetFormatterByName(format)
	if f == nil {
		return nil, unsupported(format)
	}
	return f.Format(report)
}

// SaveConfiguration writes config as YAML
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("marshal configuration: %w", err)
	}
	return os.WriteFile(filename, b, 0644)
}
