// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"fmt"
	"html"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"steelgate/internal/mailer"
	"steelgate/internal/metrics"
	"steelgate/internal/models"
	"steelgate/internal/turnstile"
)

// Leads groups the notification dispatch endpoints. Submissions are
// transient: validated, relayed to the sales mailbox over SMTP, and
// discarded. An SMTP failure loses the submission — there is no queue.
type Leads struct {
	sender     mailer.Sender
	verifier   turnstile.Verifier // nil disables bot-mitigation checks
	salesEmail string
}

// NewLeads creates the lead handler group. verifier may be nil when no
// Turnstile secret is configured.
func NewLeads(sender mailer.Sender, verifier turnstile.Verifier, salesEmail string) *Leads {
	return &Leads{sender: sender, verifier: verifier, salesEmail: salesEmail}
}

// writeJSON writes a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// jsonError writes the error envelope shared by both endpoints.
func jsonError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"success": false, "error": msg})
}

// orNA substitutes "N/A" for empty optional fields in email bodies.
func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}

// Contact handles POST /api/contact: the general contact form and the
// sell-your-machine form, which adds optional machine context fields.
func (l *Leads) Contact(w http.ResponseWriter, r *http.Request) {
	var sub models.ContactSubmission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		metrics.ObserveLead("contact", "rejected")
		jsonError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	// Honeypot: bots fill the hidden field, humans never see it. Respond
	// as if accepted so the bot learns nothing, but send no email.
	if strings.TrimSpace(sub.Website) != "" {
		metrics.ObserveLead("contact", "honeypot")
		slog.Info("contact honeypot triggered", "remote", r.RemoteAddr)
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Message sent successfully!"})
		return
	}

	if strings.TrimSpace(sub.Name) == "" || strings.TrimSpace(sub.Email) == "" || strings.TrimSpace(sub.Message) == "" {
		metrics.ObserveLead("contact", "rejected")
		jsonError(w, http.StatusBadRequest, "Required fields are missing.")
		return
	}

	if l.verifier != nil {
		if strings.TrimSpace(sub.TurnstileToken) == "" {
			metrics.ObserveLead("contact", "rejected")
			jsonError(w, http.StatusBadRequest, "Spam verification token is missing.")
			return
		}
		ok, err := l.verifier.Verify(r.Context(), sub.TurnstileToken, clientIPFrom(r))
		if err != nil {
			slog.Error("turnstile verification failed", "error", err)
			jsonError(w, http.StatusInternalServerError, "Verification service unavailable. Please try again later.")
			return
		}
		if !ok {
			metrics.ObserveLead("contact", "rejected")
			jsonError(w, http.StatusForbidden, "Spam verification failed.")
			return
		}
	}

	ref := uuid.New()
	text := fmt.Sprintf(`Name: %s
Company: %s
Email: %s
Phone: %s

Machine Brand: %s
Machine Model: %s
Machine Year: %s

Message:
%s

Reference: %s
`,
		sub.Name, orNA(sub.Company), sub.Email, orNA(sub.Phone),
		orNA(sub.MachineBrand), orNA(sub.MachineModel), orNA(sub.MachineYear),
		sub.Message, ref)

	msg := mailer.Message{
		To:      l.salesEmail,
		Subject: "Machine For Sale Submission",
		Text:    text,
		HTML:    contactHTML(&sub, ref),
		ReplyTo: sub.Email,
	}

	if err := l.sender.Send(r.Context(), msg); err != nil {
		metrics.ObserveLead("contact", "failed")
		slog.Error("contact email send failed", "reference", ref, "error", err)
		jsonError(w, http.StatusInternalServerError, "Failed to send message. Please try again later.")
		return
	}

	metrics.ObserveLead("contact", "accepted")
	slog.Info("contact lead relayed", "reference", ref, "email", sub.Email)
	writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"message":   "Message sent successfully!",
		"reference": ref.String(),
	})
}

// contactHTML renders the HTML alternative body of a contact email.
// All fields are escaped — the submission is untrusted input.
func contactHTML(sub *models.ContactSubmission, ref uuid.UUID) string {
	esc := html.EscapeString
	return fmt.Sprintf(`<h2>Machine For Sale Submission</h2>
<p><strong>Name:</strong> %s</p>
<p><strong>Company:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Phone:</strong> %s</p>
<hr />
<p><strong>Machine Brand:</strong> %s</p>
<p><strong>Machine Model:</strong> %s</p>
<p><strong>Machine Year:</strong> %s</p>
<hr />
<p><strong>Message:</strong></p>
<p>%s</p>
<p><small>Reference: %s</small></p>`,
		esc(sub.Name), esc(orNA(sub.Company)), esc(sub.Email), esc(orNA(sub.Phone)),
		esc(orNA(sub.MachineBrand)), esc(orNA(sub.MachineModel)), esc(orNA(sub.MachineYear)),
		strings.ReplaceAll(esc(sub.Message), "\n", "<br>"), ref)
}

// RequestQuote handles POST /api/request-quote from machine detail pages.
func (l *Leads) RequestQuote(w http.ResponseWriter, r *http.Request) {
	var req models.QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		metrics.ObserveLead("quote", "rejected")
		jsonError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if strings.TrimSpace(req.Website) != "" {
		metrics.ObserveLead("quote", "honeypot")
		slog.Info("quote honeypot triggered", "remote", r.RemoteAddr)
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Quote request sent successfully!"})
		return
	}

	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.StockNumber) == "" {
		metrics.ObserveLead("quote", "rejected")
		jsonError(w, http.StatusBadRequest, "Name, email, and stock number are required.")
		return
	}

	ref := uuid.New()
	text := fmt.Sprintf(`Name: %s
Company: %s
Email: %s
Phone: %s
Stock#: %s

Message:
%s

Reference: %s
`,
		req.Name, orNA(req.Company), req.Email, orNA(req.Phone),
		req.StockNumber, orNA(req.Message), ref)

	msg := mailer.Message{
		To:      l.salesEmail,
		Subject: fmt.Sprintf("Quote Request for Stock# %s", req.StockNumber),
		Text:    text,
		ReplyTo: req.Email,
	}

	if err := l.sender.Send(r.Context(), msg); err != nil {
		metrics.ObserveLead("quote", "failed")
		slog.Error("quote email send failed", "reference", ref, "stock_number", req.StockNumber, "error", err)
		jsonError(w, http.StatusInternalServerError, "Failed to send email. Please try again later.")
		return
	}

	metrics.ObserveLead("quote", "accepted")
	slog.Info("quote lead relayed", "reference", ref, "stock_number", req.StockNumber)
	writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"message":   "Quote request sent successfully!",
		"reference": ref.String(),
	})
}

// clientIPFrom extracts the submitting client's IP for Turnstile.
func clientIPFrom(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if i := strings.Index(xff, ","); i >= 0 {
			return strings.TrimSpace(xff[:i])
		}
		return strings.TrimSpace(xff)
	}
	if i := strings.LastIndex(r.RemoteAddr, ":"); i >= 0 {
		return r.RemoteAddr[:i]
	}
	return r.RemoteAddr
}
