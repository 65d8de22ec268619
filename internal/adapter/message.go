package adapter

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/MKhiriev/go-contact-keeper/models"
)

const (
	subjectActivation = "Activate your account"
	subjectPassword   = "Your new password"

	activationPath = "/api/users/activate/"

	kindActivation = "activation"
	kindPassword   = "password"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

// message is a rendered mail ready for delivery.
type message struct {
	Kind    string `json:"kind"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// renderer turns mail models into messages.
type renderer struct {
	publicURL string
}

func newRenderer(publicURL string) renderer {
	return renderer{publicURL: strings.TrimRight(publicURL, "/")}
}

// activationLink returns the URL a user opens to activate userID.
func (r renderer) activationLink(userID string) string {
	return r.publicURL + activationPath + userID
}

func (r renderer) activation(mail models.ActivationMail) (message, error) {
	body, err := execute("activation.tmpl", struct {
		Name       string
		Link       string
		ExpireTime time.Time
	}{
		Name:       mail.Name,
		Link:       r.activationLink(mail.UserID),
		ExpireTime: mail.ExpireTime,
	})
	if err != nil {
		return message{}, err
	}

	return message{Kind: kindActivation, To: mail.To, Subject: subjectActivation, Body: body}, nil
}

func (r renderer) password(mail models.PasswordMail) (message, error) {
	body, err := execute("password.tmpl", mail)
	if err != nil {
		return message{}, err
	}

	return message{Kind: kindPassword, To: mail.To, Subject: subjectPassword, Body: body}, nil
}

func execute(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrRenderingMail, name, err)
	}
	return buf.String(), nil
}
