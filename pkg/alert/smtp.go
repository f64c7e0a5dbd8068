package alert

import (
	"context"

	gomail "gopkg.in/gomail.v2"

	"github.com/mosala-labs/mosala-backend/dao/model"
	"github.com/mosala-labs/mosala-backend/pkg/config"
	"github.com/mosala-labs/mosala-backend/pkg/logutils"
	"github.com/mosala-labs/mosala-backend/pkg/metrics"
)

type smtpMailer struct {
	dialer *gomail.Dialer
	from   string
}

func newSMTPMailer() mailHandlerInterface {
	smtpConfig := config.GetConfig().SMTP
	return &smtpMailer{
		dialer: gomail.NewDialer(smtpConfig.Host, smtpConfig.Port, smtpConfig.User, smtpConfig.Password),
		from:   smtpConfig.From,
	}
}

func (m *smtpMailer) SendMessageTo(_ context.Context, receiver *model.User, subject, body string) (bool, error) {
	if receiver.Email == nil || *receiver.Email == "" {
		logutils.Log.Warnf("%s does not have an email address, skipping delivery", receiver.Name)
		metrics.DecisionEmails.WithLabelValues("skipped").Inc()
		return false, nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", *receiver.Email)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		logutils.Log.Errorf("Failed to send email to %s: %v", *receiver.Email, err)
		metrics.DecisionEmails.WithLabelValues("failed").Inc()
		return false, err
	}

	logutils.Log.Infof("Sent email to %s", *receiver.Email)
	metrics.DecisionEmails.WithLabelValues("sent").Inc()
	return true, nil
}
