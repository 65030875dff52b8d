// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package mailer

import (
	"context"
	"log/slog"
)

// LogSender writes messages to the log instead of delivering them. Used in
// development when no SMTP relay is configured, so the form flow stays
// exercisable end to end.
type LogSender struct{}

// Send logs the message and reports success.
func (LogSender) Send(ctx context.Context, msg Message) error {
	slog.Info("mail (log only — no SMTP relay configured)",
		"to", msg.To,
		"subject", msg.Subject,
		"body", msg.Text,
	)
	return nil
}
