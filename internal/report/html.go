package report

import (
	"html/template"
	"io"
	"os-scheduler-sim/internal/responses"
)

var page = template.Must(template.New("report").Funcs(template.FuncMap{
	"metricLine": MetricLine,
}).Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Scheduling Results</title>
<style>
body { font-family: Arial, sans-serif; margin: 20px; }
table { width: 100%; border-collapse: collapse; margin-bottom: 24px; }
th, td { padding: 8px; text-align: left; border-bottom: 1px solid #ddd; }
th { background-color: #f2f2f2; }
tr:nth-child(even) { background-color: #f9f9f9; }
</style>
</head>
<body>
<h1>Scheduling Results</h1>
<p>{{.ProcessCount}} processes using {{.AlgorithmName}}{{if .Quantum}}, quantum {{.Quantum}}{{end}}. Finished at time {{.TotalTime}}.</p>
<table>
<tr><th>Time</th><th>Event</th></tr>
{{- range .Events}}
<tr><td>{{.Time}}</td><td>{{if .Name}}{{.Name}} {{end}}{{.Kind}}{{if .Burst}} (burst {{.Burst}}){{end}}</td></tr>
{{- end}}
</table>
<table>
<tr><th>Process</th><th>Result</th></tr>
{{- range .Details}}
<tr><td>{{.Name}}</td><td>{{metricLine .}}</td></tr>
{{- end}}
</table>
</body>
</html>
`))

func WriteHTML(w io.Writer, response responses.ScheduleResponse) error {
	return page.Execute(w, response)
}
