package notifier

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"

	"github.com/jlovejo2/Secret-Santa-App-Local/internal/domain"
)

var textBody = texttemplate.Must(texttemplate.New("text").Parse(`Hi {{.Giver.Name}},

The names have been drawn and you are the Secret Santa for {{.Receiver.Name}}!

Keep it a secret.
`))

var htmlBody = htmltemplate.Must(htmltemplate.New("html").Parse(`<!DOCTYPE html>
<html>
  <body>
    <p>Hi {{.Giver.Name}},</p>
    <p>The names have been drawn and you are the Secret Santa for <strong>{{.Receiver.Name}}</strong>!</p>
    <p>Keep it a secret.</p>
  </body>
</html>
`))

// Compose собирает письмо дарителю с именем его получателя.
func Compose(subject string, a domain.Assignment) (domain.Message, error) {
	var text, html bytes.Buffer
	if err := textBody.Execute(&text, a); err != nil {
		return domain.Message{}, fmt.Errorf("render text body: %w", err)
	}
	if err := htmlBody.Execute(&html, a); err != nil {
		return domain.Message{}, fmt.Errorf("render html body: %w", err)
	}
	return domain.Message{
		To:      a.Giver.Email,
		ToName:  a.Giver.Name,
		Subject: subject,
		Text:    text.String(),
		HTML:    html.String(),
	}, nil
}
