package cli

const snippetTemplate = `
=== Snippet Details ===

Trigger:  {{.Snippet.Trigger}}
ID:       {{.Snippet.ID}}
Type:     {{.Snippet.ContentType}}
Source:   {{.SourceID}} (priority {{.Priority}})
{{- if .Snippet.Description }}
Desc:     {{.Snippet.Description}}
{{- end}}
{{- if .Snippet.Tags }}
Tags:     {{join .Snippet.Tags ", "}}
{{- end}}
{{- if .Snippet.Variables }}
Variables:
{{- range .Snippet.Variables }}
  {{.Name}}{{if .Default}} = {{.Default}}{{end}}
{{- end}}
{{- end}}
{{- if .Snippet.Dependencies }}
Uses:     {{join .Snippet.Dependencies ", "}}
{{- end}}
{{- if not .Snippet.UpdatedAt.IsZero }}
Updated:  {{.Snippet.UpdatedAt.Format "2006-01-02 15:04"}}{{if .Snippet.UpdatedBy}} by {{.Snippet.UpdatedBy}}{{end}}
{{- end}}
{{- if .Duplicates }}
Shadowed versions:
{{- range .Duplicates }}
  {{.SourceID}} (priority {{.Priority}})
{{- end}}
{{- end}}

Content:
---
{{.Snippet.Content}}
---
`
