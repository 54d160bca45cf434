// Package export renders the rendered server rows as a spreadsheet report.
package export

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"

	"github.com/iudanet/servermanager/pkg/api"
)

const (
	// FileName is the name suggested for the downloaded report
	FileName = "server-report.xls"

	// ContentType is understood by spreadsheet applications that open HTML tables
	ContentType = "application/vnd.ms-excel"
)

// Таблица повторяет колонки дашборда, Excel и LibreOffice открывают её как лист
const reportTemplate = `<html xmlns:x="urn:schemas-microsoft-com:office:excel">
<head><meta charset="UTF-8"></head>
<body>
<table id="servers">
<thead>
<tr><th>IP Address</th><th>Name</th><th>Memory</th><th>Type</th><th>Status</th></tr>
</thead>
<tbody>
{{- range . }}
<tr><td>{{ .IPAddress }}</td><td>{{ .Name }}</td><td>{{ .Memory }}</td><td>{{ .Type }}</td><td>{{ .Status.Label }}</td></tr>
{{- end }}
</tbody>
</table>
</body>
</html>
`

var report = template.Must(template.New("report").Parse(reportTemplate))

// Write renders servers into w. An empty slice yields a table with only the header.
func Write(w io.Writer, servers []api.Server) error {
	// Рендерим в буфер, чтобы не отдать клиенту половину таблицы
	var buf bytes.Buffer
	if err := report.Execute(&buf, servers); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// WriteFile writes the report to path. A directory path gets FileName appended.
// It returns the path actually written.
func WriteFile(path string, servers []api.Server) (string, error) {
	if path == "" {
		path = FileName
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, FileName)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return "", fmt.Errorf("failed to create report file: %w", err)
	}

	if err := Write(f, servers); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close report file: %w", err)
	}
	return path, nil
}
