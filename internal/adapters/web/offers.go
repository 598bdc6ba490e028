package web

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"offer-agent/internal/app"
	"offer-agent/internal/core"

	"github.com/shopspring/decimal"
)

// ── Manual offer form ─────────────────────────────────────────────────────────

// offerFormPage handles GET /offers/new with the documented defaults filled in.
func (h *Handler) offerFormPage(w http.ResponseWriter, r *http.Request) {
	data := h.pageData(r, "Νέα Προσφορά")
	data.Form = newOfferDefaults()
	data.Tiers = core.EInvoicingTiers
	h.templates.render(w, "offer_form", data)
}

// offerFormSubmit handles POST /offers/new. A complete form responds with the
// generated PDF as a download; an incomplete one re-renders the form with the
// missing fields listed and the entered values preserved.
func (h *Handler) offerFormSubmit(w http.ResponseWriter, r *http.Request) {
	claims := authFromContext(r.Context())
	data := h.pageData(r, "Νέα Προσφορά")
	data.Tiers = core.EInvoicingTiers

	if err := r.ParseForm(); err != nil {
		data.Error = "Μη έγκυρη υποβολή φόρμας."
		data.Form = newOfferDefaults()
		h.templates.render(w, "offer_form", data)
		return
	}

	attrs := attrsFromForm(r)
	data.Form = &attrs

	doc, err := h.svc.GenerateOffer(r.Context(), app.GenerateOfferRequest{
		Attributes: attrs,
		Username:   claims.Username,
	})
	if err != nil {
		var verr *app.ValidationError
		if errors.As(err, &verr) {
			data.Error = "Λείπουν υποχρεωτικά πεδία: " + strings.Join(verr.Missing, ", ")
		} else {
			data.Error = "Η δημιουργία της προσφοράς απέτυχε."
		}
		h.templates.render(w, "offer_form", data)
		return
	}

	servePDF(w, doc)
}

// attrsFromForm builds an attribute set from the submitted form values.
// Unparseable numerics fall back to zero and are restored to their defaults
// by Normalize downstream.
func attrsFromForm(r *http.Request) core.OfferAttributes {
	attrs := core.OfferAttributes{
		ClientCompany:          r.FormValue("client_company"),
		ClientVATID:            r.FormValue("client_vat_id"),
		ClientAddress:          r.FormValue("client_address"),
		ClientTK:               r.FormValue("client_tk"),
		ClientArea:             r.FormValue("client_area"),
		ClientPhone:            r.FormValue("client_phone"),
		OfferValidUntil:        r.FormValue("offer_valid_until"),
		IncludeTechDescription: r.FormValue("include_tech_description") != "",
		IncludeTaxSolutions:    r.FormValue("include_tax_solutions") != "",
		TaxSolutionChoice:      core.TaxSolution(r.FormValue("tax_solution_choice")),
		CustomTitle:            r.FormValue("custom_title"),
		CustomContent:          r.FormValue("custom_content"),
	}
	attrs.Installations, _ = strconv.Atoi(r.FormValue("installations"))
	if price, err := decimal.NewFromString(strings.TrimSpace(r.FormValue("unit_price"))); err == nil {
		attrs.UnitPrice = price
	} else {
		attrs.UnitPrice = core.DefaultUnitPrice()
	}
	if attrs.TaxSolutionChoice == core.TaxSolutionProvider {
		attrs.EInvoicingPackage = r.FormValue("e_invoicing_package")
	}
	return attrs
}

// ── Download / email of stored offers ─────────────────────────────────────────

// offerDownload handles GET /offers/{protocol}/download by re-rendering the
// stored attribute set.
func (h *Handler) offerDownload(w http.ResponseWriter, r *http.Request) {
	doc, err := h.svc.RenderStoredOffer(r.Context(), protocolParam(r))
	if err != nil {
		if errors.Is(err, core.ErrOfferNotFound) {
			http.NotFound(w, r)
			return
		}
		writeError(w, r, "failed to render offer", "INTERNAL_ERROR", http.StatusInternalServerError)
		return
	}
	servePDF(w, doc)
}

// offerEmail handles POST /offers/{protocol}/email.
func (h *Handler) offerEmail(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, r, "invalid form submission", "BAD_REQUEST", http.StatusBadRequest)
		return
	}
	recipient := strings.TrimSpace(r.FormValue("recipient"))
	if err := h.validate.Var(recipient, "required,email"); err != nil {
		writeError(w, r, "a valid recipient address is required", "BAD_REQUEST", http.StatusBadRequest)
		return
	}

	err := h.svc.EmailOffer(r.Context(), protocolParam(r), recipient)
	if err != nil {
		if errors.Is(err, core.ErrOfferNotFound) {
			http.NotFound(w, r)
			return
		}
		writeError(w, r, "sending failed: "+err.Error(), "MAIL_ERROR", http.StatusBadGateway)
		return
	}
	http.Redirect(w, r, "/history?sent=1", http.StatusSeeOther)
}

// servePDF writes a rendered document as an attachment download.
func servePDF(w http.ResponseWriter, doc *app.OfferDocumentResult) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+doc.Filename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(doc.PDF)))
	_, _ = w.Write(doc.PDF)
}
