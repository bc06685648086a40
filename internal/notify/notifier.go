package notify

import (
	"log"
	"strconv"

	"gopkg.in/gomail.v2"
)

// Notifier delivers a single message. Delivery is best effort: the caller
// treats a returned error as log-worthy, never as a reason to roll anything
// back.
type Notifier interface {
	Send(to, subject, body string) error
}

// Mailer sends over SMTP.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewMailer(host, port, user, pass, from string) *Mailer {
	p, err := strconv.Atoi(port)
	if err != nil {
		p = 587
	}
	return &Mailer{
		dialer: gomail.NewDialer(host, p, user, pass),
		from:   from,
	}
}

func (m *Mailer) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	return m.dialer.DialAndSend(msg)
}

// LogNotifier stands in when SMTP is not configured.
type LogNotifier struct{}

func (LogNotifier) Send(to, subject, body string) error {
	log.Printf("notification (mail disabled): to=%s subject=%q", to, subject)
	return nil
}

// Dispatch fires the notification on its own goroutine. Only the three
// already-computed strings cross the boundary; a failed or hung send never
// reaches the caller.
func Dispatch(n Notifier, to, subject, body string) {
	if n == nil || to == "" {
		return
	}
	go func() {
		if err := n.Send(to, subject, body); err != nil {
			log.Printf("failed to send notification to %s: %v", to, err)
		}
	}()
}
