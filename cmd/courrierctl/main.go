package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

type client struct {
	BaseURL   string
	APIKey    string
	OutFormat string // "json" | "text"
	HTTP      *http.Client
}

func (c *client) do(method, path string, body []byte) (int, []byte, error) {
	url := strings.TrimRight(c.BaseURL, "/") + path
	req, err := http.NewRequest(method, url, bytes.NewReader(body))
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()
	b, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, b, nil
}

func (c *client) print(out io.Writer, status int, body []byte) {
	if c.OutFormat == "json" {
		var v any
		if json.Unmarshal(body, &v) == nil {
			p, _ := json.MarshalIndent(v, "", "  ")
			fmt.Fprintln(out, string(p))
			return
		}
	}
	if len(body) > 0 {
		fmt.Fprintln(out, string(body))
	} else {
		fmt.Fprintf(out, "status=%d\n", status)
	}
}

// newRootCmd arma el árbol de comandos. El client se termina de armar en
// PersistentPreRunE, después del parseo de flags: los valores de --url,
// --api-key y --out recién existen ahí.
func newRootCmd() *cobra.Command {
	var (
		baseURL = envOr("COURRIER_URL", "http://localhost:8080")
		apiKey  = envOr("COURRIER_API_KEY", "")
		out     = envOr("COURRIER_OUT", "text")
	)

	cl := &client{HTTP: &http.Client{Timeout: 30 * time.Second}}

	root := &cobra.Command{
		Use:   "courrierctl",
		Short: "CLI para el servicio de emails transaccionales",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if apiKey == "" {
				return fmt.Errorf("falta API key (flag --api-key o env COURRIER_API_KEY)")
			}
			cl.BaseURL = baseURL
			cl.APIKey = apiKey
			cl.OutFormat = out
			return nil
		},
	}

	root.PersistentFlags().StringVar(&baseURL, "url", baseURL, "URL base del servicio (env COURRIER_URL)")
	root.PersistentFlags().StringVar(&apiKey, "api-key", apiKey, "API key del servicio (env COURRIER_API_KEY)")
	root.PersistentFlags().StringVar(&out, "out", out, "Formato de salida: json|text")

	healthCmd := &cobra.Command{
		Use:   "health",
		Short: "Estado del servicio y del transporte SMTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			status, body, err := cl.do("GET", "/notifications/health", nil)
			if err != nil {
				return err
			}
			if status/100 != 2 {
				return fmt.Errorf("health fallo: status=%d body=%s", status, string(body))
			}
			cl.print(cmd.OutOrStdout(), status, body)
			return nil
		},
	}

	var wEmail, wFirst, wLast, wProvider, wUserID string
	welcomeCmd := &cobra.Command{
		Use:   "welcome",
		Short: "Enviar un email de bienvenue",
		RunE: func(cmd *cobra.Command, args []string) error {
			if wEmail == "" {
				return fmt.Errorf("--email es requerido")
			}
			payload := map[string]any{
				"email":     wEmail,
				"firstName": wFirst,
				"lastName":  wLast,
			}
			if wProvider != "" {
				payload["provider"] = wProvider
			}
			if wUserID != "" {
				payload["userId"] = wUserID
			}
			b, _ := json.Marshal(payload)
			status, body, err := cl.do("POST", "/notifications/welcome-email", b)
			if err != nil {
				return err
			}
			cl.print(cmd.OutOrStdout(), status, body)
			return nil
		},
	}
	welcomeCmd.Flags().StringVar(&wEmail, "email", "", "Destinatario")
	welcomeCmd.Flags().StringVar(&wFirst, "first-name", "", "Nombre")
	welcomeCmd.Flags().StringVar(&wLast, "last-name", "", "Apellido")
	welcomeCmd.Flags().StringVar(&wProvider, "provider", "", "Proveedor OAuth (google|facebook|apple|github)")
	welcomeCmd.Flags().StringVar(&wUserID, "user-id", "", "ID de usuario")

	var sFile string
	subscriptionCmd := &cobra.Command{
		Use:   "subscription",
		Short: "Enviar una confirmación de abonnement desde un JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			if sFile == "" {
				return fmt.Errorf("--payload es requerido (ruta a un JSON, o '-' para stdin)")
			}
			var b []byte
			var err error
			if sFile == "-" {
				b, err = io.ReadAll(cmd.InOrStdin())
			} else {
				b, err = os.ReadFile(sFile)
			}
			if err != nil {
				return err
			}
			status, body, err := cl.do("POST", "/notifications/subscription-confirmation", b)
			if err != nil {
				return err
			}
			cl.print(cmd.OutOrStdout(), status, body)
			return nil
		},
	}
	subscriptionCmd.Flags().StringVar(&sFile, "payload", "", "Archivo JSON con el request")

	root.AddCommand(healthCmd, welcomeCmd, subscriptionCmd)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
