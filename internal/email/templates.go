package email

import (
	"bytes"
	"html/template"

	"tracker-grpc/internal/models"
)

var eventTmpl = template.Must(template.New("event").Parse(`
<html>
  <body>
    <p>Hi {{.Username}},</p>
    <p>{{.Action}} {{.KindName}} <b>{{.Label}}</b>{{if .Link}} (<a href="{{.Link}}">{{.Link}}</a>){{end}}.</p>
  </body>
</html>`))

type eventTemplateData struct {
	Username string
	Action   string
	KindName string
	Label    string
	Link     string
}

func eventSubject(msg models.EventMessage) string {
	switch msg.Type {
	case "create":
		return "New " + kindName(msg.Kind) + " added"
	case "delete":
		return kindNameTitle(msg.Kind) + " deleted"
	case "check":
		return kindNameTitle(msg.Kind) + " completed"
	case "uncheck":
		return kindNameTitle(msg.Kind) + " reopened"
	case "private":
		return kindNameTitle(msg.Kind) + " made private"
	case "public":
		return kindNameTitle(msg.Kind) + " made public"
	}
	return kindNameTitle(msg.Kind) + " updated"
}

func (s *EmailSenderService) renderEventTemplate(msg models.EventMessage) (string, error) {
	data := eventTemplateData{
		Username: msg.Username,
		Action:   eventAction(msg.Type),
		KindName: kindName(msg.Kind),
		Label:    msg.Label,
		Link:     msg.Link,
	}

	var buf bytes.Buffer
	if err := eventTmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}

func eventAction(eventType string) string {
	switch eventType {
	case "create":
		return "You added the"
	case "delete":
		return "You deleted the"
	case "check":
		return "You completed the"
	case "uncheck":
		return "You reopened the"
	case "private":
		return "You made private the"
	case "public":
		return "You made public the"
	}
	return "You updated the"
}

func kindName(kind string) string {
	if kind == string(models.KindProject) {
		return "project"
	}
	return "task"
}

func kindNameTitle(kind string) string {
	if kind == string(models.KindProject) {
		return "Project"
	}
	return "Task"
}
