package admin

import (
	"html/template"
	"log/slog"
	"net/http"

	"github.com/hirokinko/datastore-viewer/internal/pkg/application/viewer"
)

type dashboardPageModel struct {
	Projects       []viewer.Project
	DefaultProject string
}

type projectPageModel struct {
	ProjectName      string
	Namespaces       []string
	CurrentNamespace string
	Kinds            []string
	CurrentKind      string
	Properties       []string
	Entities         []entityRow
	NextPagePath     string
}

type entityRow struct {
	Token  string
	Key    string
	Values []string
}

func renderPage(w http.ResponseWriter, logger *slog.Logger, name string, model any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)

	err := pageTemplates.ExecuteTemplate(w, name, model)
	if err != nil {
		logger.Error("failed to render page", "page", name, "err", err.Error())
	}
}

var pageTemplates = template.Must(template.New("pages").Parse(pagesHTML))

const pagesHTML string = `
{{define "dashboard"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Datastore Viewer</title>
</head>
<body>
<h1>Datastore Viewer</h1>
<form method="get" action="/datastore_viewer">
<label>Project: <input type="text" name="project_name" value="{{.DefaultProject}}"></label>
<button type="submit">Open</button>
</form>
<ul>
{{range .Projects}}<li><a href="/datastore_viewer/projects/{{.ID}}">{{.ID}}</a></li>
{{end}}</ul>
</body>
</html>
{{end}}

{{define "project"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.ProjectName}} - Datastore Viewer</title>
</head>
<body>
<h1>{{.ProjectName}}</h1>
<form method="get" action="">
<input type="hidden" name="kind" value="{{.CurrentKind}}">
<label>Namespace:
<select name="namespace">
<option value="">(default)</option>
{{$current := .CurrentNamespace}}{{range .Namespaces}}<option value="{{.}}"{{if eq . $current}} selected{{end}}>{{.}}</option>
{{end}}</select>
</label>
<button type="submit">Switch</button>
</form>
<nav>
<ul>
{{$ns := .CurrentNamespace}}{{range .Kinds}}<li><a href="?kind={{.}}&amp;namespace={{$ns}}">{{.}}</a></li>
{{end}}</ul>
</nav>
{{if .CurrentKind}}
<h2>{{.CurrentKind}}</h2>
<form method="post" action="">
<input type="hidden" name="action" value="delete_all">
<input type="hidden" name="kind" value="{{.CurrentKind}}">
<button type="submit">Delete all {{.CurrentKind}} entities</button>
</form>
<table>
<thead>
<tr>
<th>Key</th>
{{range .Properties}}<th>{{.}}</th>
{{end}}<th></th>
</tr>
</thead>
<tbody>
{{$project := .ProjectName}}{{range .Entities}}<tr>
<td><a href="/datastore_viewer/projects/{{$project}}/view_entity?key={{.Token}}&amp;namespace={{$ns}}">{{.Key}}</a></td>
{{range .Values}}<td>{{.}}</td>
{{end}}<td>
<form method="post" action="">
<input type="hidden" name="action" value="delete">
<input type="hidden" name="key" value="{{.Token}}">
<button type="submit">Delete</button>
</form>
</td>
</tr>
{{end}}</tbody>
</table>
{{if .NextPagePath}}<a href="{{.NextPagePath}}">Next page</a>{{end}}
{{end}}
</body>
</html>
{{end}}
`
