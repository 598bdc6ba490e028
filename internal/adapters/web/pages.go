package web

import (
	"errors"
	"html/template"
	"log"
	"net/http"
	"time"

	"offer-agent/internal/app"
	"offer-agent/internal/core"
	webui "offer-agent/web"
)

// templateSet holds the parsed page templates, each combined with the shared
// layout at startup.
type templateSet struct {
	pages map[string]*template.Template
}

var pageNames = []string{
	"login", "register", "dashboard", "offer_form", "chat", "history", "profile",
}

func newTemplateSet() *templateSet {
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		pages[name] = template.Must(template.ParseFS(webui.Templates,
			"templates/layout.html", "templates/"+name+".html"))
	}
	return &templateSet{pages: pages}
}

func (t *templateSet) render(w http.ResponseWriter, name string, data any) {
	tpl, ok := t.pages[name]
	if !ok {
		http.Error(w, "unknown page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tpl.ExecuteTemplate(w, "layout", data); err != nil {
		log.Printf("render %s: %v", name, err)
	}
}

// pageData is the data envelope shared by all HTML pages.
type pageData struct {
	Title    string
	Username string
	Error    string
	Message  string

	Form   *core.OfferAttributes
	Tiers  []core.EInvoicingTier
	Offers []offerRow
	User   *core.User
}

// offerRow is one line of the history table.
type offerRow struct {
	ProtocolNumber string
	ClientCompany  string
	IssueDate      string
	CreatedBy      string
	GrandTotal     string
}

func (h *Handler) pageData(r *http.Request, title string) pageData {
	d := pageData{Title: title}
	if claims := authFromContext(r.Context()); claims != nil {
		d.Username = claims.Username
	}
	return d
}

// ── Login / registration ──────────────────────────────────────────────────────

// loginPage handles GET /login. Redirects home if already authenticated.
func (h *Handler) loginPage(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie("auth_token"); err == nil {
		if _, err := h.parseToken(cookie.Value); err == nil {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
	}
	h.templates.render(w, "login", h.pageData(r, "Σύνδεση"))
}

// loginFormSubmit handles POST /login.
func (h *Handler) loginFormSubmit(w http.ResponseWriter, r *http.Request) {
	data := h.pageData(r, "Σύνδεση")
	if err := r.ParseForm(); err != nil {
		data.Error = "Μη έγκυρη υποβολή φόρμας."
		h.templates.render(w, "login", data)
		return
	}

	session, err := h.svc.AuthenticateUser(r.Context(), r.FormValue("username"), r.FormValue("password"))
	if err != nil {
		data.Error = "Λάθος όνομα χρήστη ή κωδικός."
		h.templates.render(w, "login", data)
		return
	}
	if err := h.setSessionCookie(w, session); err != nil {
		data.Error = "Σφάλμα διακομιστή. Προσπαθήστε ξανά."
		h.templates.render(w, "login", data)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// registerPage handles GET /register.
func (h *Handler) registerPage(w http.ResponseWriter, r *http.Request) {
	h.templates.render(w, "register", h.pageData(r, "Εγγραφή"))
}

// registerFormSubmit handles POST /register. New accounts get the standard role.
func (h *Handler) registerFormSubmit(w http.ResponseWriter, r *http.Request) {
	data := h.pageData(r, "Εγγραφή")
	if err := r.ParseForm(); err != nil {
		data.Error = "Μη έγκυρη υποβολή φόρμας."
		h.templates.render(w, "register", data)
		return
	}

	req := app.RegisterUserRequest{
		Username:  r.FormValue("username"),
		Password:  r.FormValue("password"),
		FirstName: r.FormValue("first_name"),
		LastName:  r.FormValue("last_name"),
		Email:     r.FormValue("email"),
	}
	if err := h.validate.Var(req.Username, "required,min=3,max=64"); err != nil {
		data.Error = "Το όνομα χρήστη πρέπει να έχει 3 έως 64 χαρακτήρες."
		h.templates.render(w, "register", data)
		return
	}
	if err := h.validate.Var(req.Password, "required,min=8"); err != nil {
		data.Error = "Ο κωδικός πρέπει να έχει τουλάχιστον 8 χαρακτήρες."
		h.templates.render(w, "register", data)
		return
	}
	if err := h.validate.Var(req.Email, "required,email"); err != nil {
		data.Error = "Μη έγκυρη διεύθυνση email."
		h.templates.render(w, "register", data)
		return
	}

	session, err := h.svc.RegisterUser(r.Context(), req)
	if err != nil {
		if errors.Is(err, core.ErrDuplicateUser) {
			data.Error = "Το όνομα χρήστη ή το email χρησιμοποιείται ήδη."
		} else {
			data.Error = "Η εγγραφή απέτυχε. Προσπαθήστε ξανά."
		}
		h.templates.render(w, "register", data)
		return
	}
	if err := h.setSessionCookie(w, session); err != nil {
		data.Error = "Σφάλμα διακομιστή. Προσπαθήστε ξανά."
		h.templates.render(w, "register", data)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// logoutPage handles POST /logout. The user's chat draft dies with the session.
func (h *Handler) logoutPage(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie("auth_token"); err == nil {
		if claims, err := h.parseToken(cookie.Value); err == nil {
			h.drafts.clear(claims.UserID)
		}
	}
	clearSessionCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// ── Dashboard / chat / history ────────────────────────────────────────────────

// dashboardPage handles GET /.
func (h *Handler) dashboardPage(w http.ResponseWriter, r *http.Request) {
	h.templates.render(w, "dashboard", h.pageData(r, "Αρχική"))
}

// chatPage handles GET /chat. The transcript itself is driven by the JSON
// endpoints; the page ships the chat shell.
func (h *Handler) chatPage(w http.ResponseWriter, r *http.Request) {
	h.templates.render(w, "chat", h.pageData(r, "Συνομιλία"))
}

// historyPage handles GET /history, newest offer first.
func (h *Handler) historyPage(w http.ResponseWriter, r *http.Request) {
	data := h.pageData(r, "Ιστορικό Προσφορών")
	if r.URL.Query().Get("sent") == "1" {
		data.Message = "Η προσφορά στάλθηκε με email."
	}

	result, err := h.svc.ListOffers(r.Context())
	if err != nil {
		data.Error = "Αποτυχία φόρτωσης ιστορικού."
		h.templates.render(w, "history", data)
		return
	}
	for i := range result.Offers {
		a := &result.Offers[i]
		data.Offers = append(data.Offers, offerRow{
			ProtocolNumber: a.ProtocolNumber,
			ClientCompany:  a.ClientCompany,
			IssueDate:      a.IssueDate,
			CreatedBy:      a.CreatedBy,
			GrandTotal:     core.GrandTotal(a).StringFixed(2),
		})
	}
	h.templates.render(w, "history", data)
}

// ── Profile ───────────────────────────────────────────────────────────────────

// profilePage handles GET /profile.
func (h *Handler) profilePage(w http.ResponseWriter, r *http.Request) {
	h.renderProfile(w, r, "", "")
}

// profileSubmit handles POST /profile — name and email changes.
func (h *Handler) profileSubmit(w http.ResponseWriter, r *http.Request) {
	claims := authFromContext(r.Context())
	if err := r.ParseForm(); err != nil {
		h.renderProfile(w, r, "Μη έγκυρη υποβολή φόρμας.", "")
		return
	}

	req := app.UpdateProfileRequest{
		FirstName: r.FormValue("first_name"),
		LastName:  r.FormValue("last_name"),
		Email:     r.FormValue("email"),
	}
	if err := h.validate.Var(req.Email, "required,email"); err != nil {
		h.renderProfile(w, r, "Μη έγκυρη διεύθυνση email.", "")
		return
	}
	if err := h.svc.UpdateProfile(r.Context(), claims.UserID, req); err != nil {
		h.renderProfile(w, r, "Η ενημέρωση απέτυχε.", "")
		return
	}
	h.renderProfile(w, r, "", "Το προφίλ ενημερώθηκε.")
}

// passwordSubmit handles POST /profile/password.
func (h *Handler) passwordSubmit(w http.ResponseWriter, r *http.Request) {
	claims := authFromContext(r.Context())
	if err := r.ParseForm(); err != nil {
		h.renderProfile(w, r, "Μη έγκυρη υποβολή φόρμας.", "")
		return
	}

	next := r.FormValue("new_password")
	if err := h.validate.Var(next, "required,min=8"); err != nil {
		h.renderProfile(w, r, "Ο νέος κωδικός πρέπει να έχει τουλάχιστον 8 χαρακτήρες.", "")
		return
	}
	err := h.svc.ChangePassword(r.Context(), claims.UserID, r.FormValue("current_password"), next)
	if err != nil {
		if errors.Is(err, core.ErrWrongPassword) {
			h.renderProfile(w, r, "Ο τρέχων κωδικός είναι λάθος.", "")
			return
		}
		h.renderProfile(w, r, "Η αλλαγή κωδικού απέτυχε.", "")
		return
	}
	h.renderProfile(w, r, "", "Ο κωδικός άλλαξε.")
}

func (h *Handler) renderProfile(w http.ResponseWriter, r *http.Request, errMsg, message string) {
	claims := authFromContext(r.Context())
	data := h.pageData(r, "Προφίλ")
	data.Error = errMsg
	data.Message = message

	if result, err := h.svc.GetUser(r.Context(), claims.UserID); err == nil {
		data.User = result.User
	} else if data.Error == "" {
		data.Error = "Αποτυχία φόρτωσης προφίλ."
	}
	h.templates.render(w, "profile", data)
}

// newOfferDefaults returns a fresh attribute set for the manual form.
func newOfferDefaults() *core.OfferAttributes {
	a := core.NewOfferAttributes(time.Now())
	return &a
}
