package worker

// recibo_worker.go
// Processes receipt delivery jobs from QueueRecibos: fetches the order from
// the backend, renders the PDF receipt, and mails it to the customer.

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"ventaslive/internal/backend"
	"ventaslive/internal/infra"
	"ventaslive/internal/recibo"
)

// ReciboJobPayload is the job envelope sent to QueueRecibos.
type ReciboJobPayload struct {
	PedidoID string `json:"pedido_id"`
	Email    string `json:"email"`
}

type ReciboWorker struct {
	pedidos     backend.PedidosAPI
	mailer      *infra.Mailer
	negocio     string
	storagePath string
}

func NewReciboWorker(pedidos backend.PedidosAPI, mailer *infra.Mailer, negocio, storagePath string) *ReciboWorker {
	return &ReciboWorker{pedidos: pedidos, mailer: mailer, negocio: negocio, storagePath: storagePath}
}

// Process renders and mails the receipt. Best-effort: failures are logged,
// never retried.
func (w *ReciboWorker) Process(ctx context.Context, raw json.RawMessage) {
	var payload ReciboJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("recibo_worker: invalid payload")
		return
	}
	if payload.Email == "" {
		log.Warn().Msg("recibo_worker: empty email — skipping")
		return
	}

	pedidoID, err := uuid.Parse(payload.PedidoID)
	if err != nil {
		log.Error().Str("pedido_id", payload.PedidoID).Msg("recibo_worker: invalid pedido_id")
		return
	}

	pedido, err := w.pedidos.ObtenerPedido(ctx, pedidoID)
	if err != nil {
		log.Error().Err(err).Str("pedido_id", payload.PedidoID).Msg("recibo_worker: backend fetch failed")
		return
	}

	pdfPath, err := recibo.GenerarPDF(pedido, w.negocio, w.storagePath)
	if err != nil {
		log.Error().Err(err).Str("pedido", pedido.Numero).Msg("recibo_worker: pdf generation failed")
		return
	}

	asunto := fmt.Sprintf("Recibo de tu pedido %s", pedido.Numero)
	cuerpo := fmt.Sprintf("Hola %s,\n\nAdjuntamos el recibo de tu pedido %s.\n\n%s",
		pedido.ClienteNombre, pedido.Numero, w.negocio)
	if err := w.mailer.SendRecibo(payload.Email, asunto, cuerpo, pdfPath); err != nil {
		log.Error().Err(err).Str("to", payload.Email).Msg("recibo_worker: failed to send email")
		return
	}
	log.Info().Str("to", payload.Email).Str("pedido", pedido.Numero).Msg("recibo_worker: recibo sent successfully")
}
