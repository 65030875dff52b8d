// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package mailer

import (
	"context"
	"testing"
)

func TestNewSMTPBadPort(t *testing.T) {
	if _, err := NewSMTP("smtp.example.com", "not-a-port", "user", "pass", "from@example.com"); err == nil {
		t.Error("non-numeric port must fail")
	}
}

func TestNewSMTPValid(t *testing.T) {
	// The connection is dialed per send, so construction alone succeeds
	// without a reachable relay.
	s, err := NewSMTP("smtp.example.com", "587", "user", "pass", "relay@example.com")
	if err != nil {
		t.Fatalf("NewSMTP: %v", err)
	}
	if s.from != "relay@example.com" {
		t.Errorf("from = %q", s.from)
	}
}

func TestLogSender(t *testing.T) {
	var s Sender = LogSender{}
	if err := s.Send(context.Background(), Message{To: "sales@example.com", Subject: "x", Text: "y"}); err != nil {
		t.Errorf("LogSender.Send: %v", err)
	}
}
