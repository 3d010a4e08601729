package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/segmentio/kafka-go"

	"github.com/dmehra2102/shop-backoffice/internal/customer/application"
	"github.com/dmehra2102/shop-backoffice/internal/customer/domain"
)

// SpendHandler applies spend entries published by Notifier.
type SpendHandler struct {
	log *slog.Logger
	svc *application.Service
}

func NewSpendHandler(log *slog.Logger, svc *application.Service) *SpendHandler {
	return &SpendHandler{log: log, svc: svc}
}

func (h *SpendHandler) Handle(ctx context.Context, msg kafka.Message) error {
	var entry domain.SpendEntry
	if err := json.Unmarshal(msg.Value, &entry); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidEntry, err)
	}
	return h.svc.Apply(ctx, entry)
}

// EntryRef is the dedupe key of a spend message.
func EntryRef(msg kafka.Message) string {
	var entry domain.SpendEntry
	if err := json.Unmarshal(msg.Value, &entry); err != nil {
		return ""
	}
	return entry.Ref
}
