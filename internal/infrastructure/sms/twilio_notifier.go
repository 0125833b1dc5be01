// Package sms envía notificaciones SMS de reservas vía Twilio.
package sms

import (
	"context"

	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"

	appbooking "github.com/jhoicas/servihogar-api/internal/application/booking"
	"github.com/jhoicas/servihogar-api/pkg/config"
	"github.com/jhoicas/servihogar-api/pkg/logger"
)

var _ appbooking.Notifier = (*TwilioNotifier)(nil)

// TwilioNotifier implementa booking.Notifier. El SMS es best-effort: un fallo
// de envío se loguea y no interrumpe la operación que lo disparó. Si las
// credenciales no están configuradas el notifier queda deshabilitado y solo
// registra el intento en debug.
type TwilioNotifier struct {
	client *twilio.RestClient
	from   string
	log    *logger.Logger
}

// NewTwilioNotifier construye el notifier. Con credenciales vacías devuelve
// una instancia deshabilitada (client nil).
func NewTwilioNotifier(cfg config.SMSConfig, log *logger.Logger) *TwilioNotifier {
	n := &TwilioNotifier{from: cfg.FromNumber, log: log}
	if !cfg.Enabled() {
		log.Warn().Msg("SMS deshabilitado: faltan credenciales Twilio")
		return n
	}
	n.client = twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})
	return n
}

// SendSMS envía el mensaje al número indicado.
func (n *TwilioNotifier) SendSMS(_ context.Context, toPhone, message string) {
	if n.client == nil {
		n.log.Debug().Str("to", toPhone).Msg("SMS omitido (deshabilitado)")
		return
	}
	params := &twilioapi.CreateMessageParams{}
	params.SetTo(toPhone)
	params.SetFrom(n.from)
	params.SetBody(message)

	if _, err := n.client.Api.CreateMessage(params); err != nil {
		n.log.Error().Err(err).Str("to", toPhone).Msg("enviar SMS")
		return
	}
	n.log.Info().Str("to", toPhone).Msg("SMS enviado")
}
