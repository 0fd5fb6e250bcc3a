package email

import (
	"errors"
	"time"
)

// ─── Errors ───

var (
	ErrTemplateLoad   = errors.New("email: template load failed")
	ErrTemplateRender = errors.New("email: template render failed")
	ErrSendFailed     = errors.New("email: send failed")
)

// ─── Datos de entrada ───

// Providers soportados para el alta de cuenta.
const (
	ProviderGoogle   = "google"
	ProviderFacebook = "facebook"
	ProviderApple    = "apple"
	ProviderGitHub   = "github"
)

// Planes y estados de suscripción.
const (
	PlanMonthly = "monthly"
	PlanYearly  = "yearly"

	StatusTrial  = "trial"
	StatusActive = "active"
)

// WelcomeData contiene los datos para el email de bienvenida.
// Vive solo durante el request, no se persiste.
type WelcomeData struct {
	Email     string
	FirstName string
	LastName  string
	Provider  string // google | facebook | apple | github
}

// SubscriptionData contiene los datos para el email de confirmación de
// suscripción. Los campos opcionales quedan en nil cuando no vienen.
type SubscriptionData struct {
	Email           string
	FirstName       string
	LastName        string
	Plan            string // monthly | yearly
	Status          string // trial | active
	TrialEnd        *time.Time
	NextBillingDate *time.Time
	Amount          *int64 // unidades menores de moneda (centavos)
	Currency        string
}

// ─── Variables de template ───

// WelcomeVars es el merge record para el template "welcome".
type WelcomeVars struct {
	FirstName string
	LastName  string
	FullName  string
	Provider  string // display name, no el enum crudo
	Email     string
	BaseURL   string
	Year      int
}

// SubscriptionVars es el merge record para el template "subscription".
// Los strings opcionales quedan vacíos cuando el dato no vino: los templates
// usan {{if .X}} para omitir la sección completa.
type SubscriptionVars struct {
	FirstName       string
	LastName        string
	FullName        string
	PlanLabel       string // "Mensuel" | "Annuel"
	PlanType        string // enum crudo: monthly | yearly
	Status          string
	IsTrialActive   bool
	TrialEnd        string
	NextBillingDate string
	Amount          string // "9.99", vacío si no vino
	Currency        string
	BaseURL         string
	Year            int
}

// ─── Salida ───

// Rendered es el resultado de renderizar un template: efímero, por llamada.
// Solo se cachea el template compilado, nunca la salida.
type Rendered struct {
	Subject string
	HTML    string
	Text    string
}
