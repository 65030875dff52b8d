// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"steelgate/internal/seo"
)

// Homepage renders the static landing page: hero, category pillars, and
// calls to action. It issues no content store queries.
func (p *Public) Homepage(w http.ResponseWriter, r *http.Request) {
	pg := p.page(
		"Used CNC & Metalworking Machinery for Sale | "+p.siteName,
		"Browse high-quality used CNC machines, machining centers, lathes, mills, and metalworking equipment. Professionally represented industrial machinery.",
		"",
	)
	p.serve(w, http.StatusOK, "home", pg)
}

// About renders the about page.
func (p *Public) About(w http.ResponseWriter, r *http.Request) {
	pg := p.page(
		"About Us | "+p.siteName,
		"Learn about "+p.siteName+", a dealer of quality used CNC and metalworking machinery.",
		"/about",
	)
	p.serve(w, http.StatusOK, "about", pg)
}

// Contact renders the contact page with the lead capture form.
func (p *Public) Contact(w http.ResponseWriter, r *http.Request) {
	pg := p.page(
		"Contact Us | "+p.siteName,
		"Get in touch about buying or selling used CNC and metalworking machinery.",
		"/contact",
	)
	p.serve(w, http.StatusOK, "contact", pg)
}

// Sell renders the sell-your-machine page: pitch copy, Service structured
// data, and the same lead form as the contact page with the machine context
// fields shown.
func (p *Public) Sell(w http.ResponseWriter, r *http.Request) {
	pg := p.page(
		"Sell Your Machine | "+p.siteName,
		"Sell your surplus CNC and metalworking machinery. We buy single machines, entire shops, and offer auction solutions.",
		"/sell",
	)
	pg.JSONLD = seo.Service(p.siteName, p.baseURL)
	p.serve(w, http.StatusOK, "sell", pg)
}

// Terms renders the terms and conditions page.
func (p *Public) Terms(w http.ResponseWriter, r *http.Request) {
	pg := p.page(
		"Terms & Conditions | "+p.siteName,
		"Terms and conditions of sale for "+p.siteName+".",
		"/terms",
	)
	p.serve(w, http.StatusOK, "terms", pg)
}
