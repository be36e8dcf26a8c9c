package initializers

import (
	"nexora-hcm/config"
	"nexora-hcm/lib/smtp"

	log "github.com/sirupsen/logrus"
)

func InitSmtp() smtp.Provider {
	mailer := smtp.NewInstance(config.Conf.Smtp.User, config.Conf.Smtp.Password,
		config.Conf.Smtp.Host, config.Conf.Smtp.Port, config.Conf.Smtp.From, *config.Conf.Smtp.TLSEnabled)
	if !mailer.IsConfigured() {
		log.Warn("SMTP не настроен, письма кандидатам не отправляются")
	}
	return mailer
}
