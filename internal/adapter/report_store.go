package adapter

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	m "cleanarch.dev/pkg/cleanarch/internal/model"
)

// Report formats understood by the store.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

const reportBaseName = "report"

// ErrReportNotFound is returned when a directory holds no saved report.
var ErrReportNotFound = errors.New("report not found")

// ReportStore persists architecture reports.
type ReportStore interface {
	// SaveReport writes report into dir as report.yaml or report.json and
	// returns the file written.
	SaveReport(dir m.FilePath, report m.Report, format string) (m.FilePath, error)
	// LoadReport reads the report saved in dir, or the report file itself
	// when path points to one.
	LoadReport(path m.FilePath) (m.Report, error)
}

// LocalReportStore implements ReportStore on the local disk.
type LocalReportStore struct{}

// NewLocalReportStore constructs a LocalReportStore.
func NewLocalReportStore() *LocalReportStore {
	return &LocalReportStore{}
}

// SaveReport implements ReportStore. Reports in the other format are
// removed so a directory never holds two different reports.
func (s *LocalReportStore) SaveReport(dir m.FilePath, report m.Report, format string) (m.FilePath, error) {
	format, err := normaliseFormat(format)
	if err != nil {
		return "", err
	}

	data, err := encodeReport(report, format)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		return "", fmt.Errorf("create report directory: %w", err)
	}

	for _, other := range []string{FormatYAML, FormatJSON} {
		if other == format {
			continue
		}

		stale := filepath.Join(string(dir), reportBaseName+"."+other)
		if err := os.Remove(stale); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("remove stale report: %w", err)
		}
	}

	path := filepath.Join(string(dir), reportBaseName+"."+format)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}

	return m.FilePath(path), nil
}

// LoadReport implements ReportStore.
func (s *LocalReportStore) LoadReport(path m.FilePath) (m.Report, error) {
	file, err := reportFile(string(path))
	if err != nil {
		return m.Report{}, err
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return m.Report{}, fmt.Errorf("read report: %w", err)
	}

	var report m.Report

	if strings.EqualFold(filepath.Ext(file), "."+FormatJSON) {
		err = json.Unmarshal(data, &report)
	} else {
		err = yaml.Unmarshal(data, &report)
	}

	if err != nil {
		return m.Report{}, fmt.Errorf("decode report %s: %w", file, err)
	}

	return report, nil
}

func reportFile(path string) (string, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", ErrReportNotFound, path)
	}

	if err != nil {
		return "", fmt.Errorf("stat report: %w", err)
	}

	if !info.IsDir() {
		return path, nil
	}

	for _, format := range []string{FormatYAML, FormatJSON} {
		candidate := filepath.Join(path, reportBaseName+"."+format)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s", ErrReportNotFound, path)
}

func normaliseFormat(format string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatYAML, "yml":
		return FormatYAML, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported report format %q", format)
	}
}

func encodeReport(report m.Report, format string) ([]byte, error) {
	if format == FormatJSON {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode report: %w", err)
		}

		return append(data, '\n'), nil
	}

	var buf bytes.Buffer

	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)

	if err := encoder.Encode(report); err != nil {
		return nil, fmt.Errorf("encode report: %w", err)
	}

	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("encode report: %w", err)
	}

	return buf.Bytes(), nil
}
