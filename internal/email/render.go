package email

import (
	"bytes"
	"fmt"
	"strings"
	"time"
)

// Template bundle names resolved by the renderer.
const (
	TemplateWelcome      = "welcome"
	TemplateSubscription = "subscription"
)

// Subjects fijos, en francés (producto francófono).
const (
	subjectWelcome            = "Bienvenue ! Votre compte a bien été créé"
	subjectSubscriptionTrial  = "Votre période d'essai a commencé"
	subjectSubscriptionActive = "Confirmation de votre abonnement"
)

// Renderer produce {subject, html, text} a partir de un bundle compilado y
// un merge record derivado de los datos del caller.
type Renderer struct {
	store   *Store
	baseURL string
	now     func() time.Time // inyectable para tests
}

// NewRenderer crea un Renderer sobre el Store dado.
// baseURL se expone a los templates para armar links absolutos.
func NewRenderer(store *Store, baseURL string) *Renderer {
	return &Renderer{
		store:   store,
		baseURL: baseURL,
		now:     time.Now,
	}
}

// RenderWelcome renderiza el email de bienvenida.
func (r *Renderer) RenderWelcome(data WelcomeData) (*Rendered, error) {
	pair, err := r.store.Get(TemplateWelcome)
	if err != nil {
		return nil, err
	}

	vars := WelcomeVars{
		FirstName: data.FirstName,
		LastName:  data.LastName,
		FullName:  data.FirstName + " " + data.LastName,
		Provider:  providerDisplayName(data.Provider),
		Email:     data.Email,
		BaseURL:   r.baseURL,
		Year:      r.now().Year(),
	}

	return r.execute(pair, subjectWelcome, vars)
}

// RenderSubscription renderiza el email de confirmación de suscripción.
// El subject depende del estado: trial vs resto.
func (r *Renderer) RenderSubscription(data SubscriptionData) (*Rendered, error) {
	pair, err := r.store.Get(TemplateSubscription)
	if err != nil {
		return nil, err
	}

	vars := SubscriptionVars{
		FirstName:     data.FirstName,
		LastName:      data.LastName,
		FullName:      data.FirstName + " " + data.LastName,
		PlanLabel:     planDisplayName(data.Plan),
		PlanType:      data.Plan,
		Status:        data.Status,
		IsTrialActive: data.Status == StatusTrial,
		Currency:      currencyOrDefault(data.Currency),
		BaseURL:       r.baseURL,
		Year:          r.now().Year(),
	}
	if data.TrialEnd != nil {
		vars.TrialEnd = formatDateFR(*data.TrialEnd)
	}
	if data.NextBillingDate != nil {
		vars.NextBillingDate = formatDateFR(*data.NextBillingDate)
	}
	if data.Amount != nil {
		// unidades menores -> decimal de dos dígitos ("999" -> "9.99")
		vars.Amount = fmt.Sprintf("%.2f", float64(*data.Amount)/100)
	}

	subject := subjectSubscriptionActive
	if vars.IsTrialActive {
		subject = subjectSubscriptionTrial
	}

	return r.execute(pair, subject, vars)
}

func (r *Renderer) execute(pair *CompiledPair, subject string, vars any) (*Rendered, error) {
	var htmlBuf, textBuf bytes.Buffer

	if err := pair.HTML.Execute(&htmlBuf, vars); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}
	if err := pair.Text.Execute(&textBuf, vars); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}

	return &Rendered{
		Subject: subject,
		HTML:    htmlBuf.String(),
		Text:    textBuf.String(),
	}, nil
}

// providerDisplayName mapea el enum de provider a su nombre visible.
// Un provider desconocido pasa sin cambios.
func providerDisplayName(p string) string {
	switch p {
	case ProviderGoogle:
		return "Google"
	case ProviderFacebook:
		return "Facebook"
	case ProviderApple:
		return "Apple"
	case ProviderGitHub:
		return "GitHub"
	default:
		return p
	}
}

// planDisplayName mapea el plan a su etiqueta de negocio (francés).
// Un plan desconocido pasa sin cambios.
func planDisplayName(p string) string {
	switch p {
	case PlanMonthly:
		return "Mensuel"
	case PlanYearly:
		return "Annuel"
	default:
		return p
	}
}

func currencyOrDefault(c string) string {
	if strings.TrimSpace(c) == "" {
		return "EUR"
	}
	return strings.ToUpper(c)
}

// formatDateFR formatea una fecha al estilo francés dd/mm/yyyy.
func formatDateFR(t time.Time) string {
	return t.Format("02/01/2006")
}
