// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// ContactSubmission is the JSON body of POST /api/contact. Used by both the
// general contact page and the sell-your-machine page, which is why it
// carries optional machine context fields.
//
// Website is a honeypot: the form renders it hidden and real users never
// fill it. Submissions are transient — validated, emailed, and discarded.
type ContactSubmission struct {
	Name           string `json:"name"`
	Company        string `json:"company"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	MachineBrand   string `json:"machineBrand"`
	MachineModel   string `json:"machineModel"`
	MachineYear    string `json:"machineYear"`
	Message        string `json:"message"`
	Website        string `json:"website"`
	TurnstileToken string `json:"turnstileToken"`
}

// QuoteRequest is the JSON body of POST /api/request-quote, submitted from
// the modal on a machine detail page.
type QuoteRequest struct {
	Name        string `json:"name"`
	Company     string `json:"company"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	StockNumber string `json:"stockNumber"`
	Message     string `json:"message"`
	Website     string `json:"website"`
}
