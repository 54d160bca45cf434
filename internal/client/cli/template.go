package cli

import "text/template"

const usageTemplate = `Server Manager Client

Usage:
  servermanager [OPTIONS] COMMAND

Options:
  --version                    Show version information
  --api URL                    Backend API URL (default: {{ .APIURL }})
  --db PATH                    Path to local cache database (default: {{ .DBPath }})

Environment:
  SERVERMANAGER_API_URL, SERVERMANAGER_CLIENT_DB, SERVERMANAGER_REQUEST_TIMEOUT,
  SERVERMANAGER_LOG_LEVEL, SERVERMANAGER_LOG_FORMAT, SERVERMANAGER_OTEL_ENDPOINT

Commands:
  list [--filter STATUS]          Load servers from the backend
  ping <ip>                       Ping a server and refresh its status
  filter <STATUS>                 Filter cached servers (ALL, SERVER_UP, SERVER_DOWN)
  add                             Add a new server
  delete <id>                     Delete a server
  report [--filter STATUS] [PATH] Export servers to {{ .ReportName }}
  status                          Show cached list summary

Examples:
  servermanager list
  servermanager list --filter SERVER_UP
  servermanager ping 192.168.1.160
  servermanager report ~/reports
  servermanager --api http://backend:8080/api/server/ delete 3
`

const statusTemplate = `=== Cache Status ===

Backend:     {{ .APIURL }}
{{- if .Loaded }}
Last load:   {{ .LastLoad }}
Servers:     {{ .Total }} ({{ .Up }} up, {{ .Down }} down)
Message:     {{ .Message }}
{{- else }}
Servers have not been loaded yet.

Run 'servermanager list' to load them.
{{- end }}
`

var (
	usageTmpl  = template.Must(template.New("usage").Parse(usageTemplate))
	statusTmpl = template.Must(template.New("status").Parse(statusTemplate))
)
