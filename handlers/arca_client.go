package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"v8e.it/flotta/config"
	"v8e.it/flotta/models"
	"v8e.it/flotta/utils"
)

// ArcaClient talks to the Arca ERP HTTP API. It logs in lazily and caches
// the bearer token until shortly before expiry. Safe for concurrent use:
// the scheduled sync and the manual trigger share one instance.
type ArcaClient struct {
	baseURL  string
	username string
	password string
	http     *http.Client

	mu       sync.Mutex // guards token and tokenExp
	token    string
	tokenExp time.Time
}

// NewArcaClient creates a client for the configured Arca endpoint.
func NewArcaClient(cfg *config.ArcaConfig) *ArcaClient {
	return &ArcaClient{
		baseURL:  cfg.BaseURL,
		username: cfg.Username,
		password: cfg.Password,
		http:     &http.Client{Timeout: 30 * time.Second},
	}
}

type arcaLoginResp struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"`
}

// login fetches a fresh token. Callers must hold c.mu.
func (c *ArcaClient) login() error {
	body, _ := json.Marshal(map[string]string{
		"username": c.username,
		"password": c.password,
	})
	resp, err := c.http.Post(c.baseURL+"/login", "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("arca login: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("arca login: status %d", resp.StatusCode)
	}

	var lr arcaLoginResp
	if err := json.NewDecoder(resp.Body).Decode(&lr); err != nil {
		return fmt.Errorf("arca login: decode: %w", err)
	}
	if lr.Token == "" {
		return fmt.Errorf("arca login: empty token")
	}
	c.token = lr.Token
	expires := lr.ExpiresIn
	if expires <= 0 {
		expires = 3600
	}
	// Renew a minute early to avoid racing the expiry.
	c.tokenExp = time.Now().Add(time.Duration(expires)*time.Second - time.Minute)
	return nil
}

// bearer returns a valid token, logging in when the cached one is missing
// or expired.
func (c *ArcaClient) bearer() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.token == "" || time.Now().After(c.tokenExp) {
		if err := c.login(); err != nil {
			return "", err
		}
	}
	return c.token, nil
}

// get performs an authenticated GET and decodes the JSON response into out.
func (c *ArcaClient) get(path string, params url.Values, out interface{}) error {
	token, err := c.bearer()
	if err != nil {
		return err
	}

	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	req, err := http.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("arca GET %s: %w", path, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusUnauthorized {
		// Stale token: force a fresh login on the next call.
		c.mu.Lock()
		c.token = ""
		c.mu.Unlock()
		return fmt.Errorf("arca GET %s: unauthorized", path)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("arca GET %s: status %d", path, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// ArcaClientPayload is one client record as Arca serializes it.
type ArcaClientPayload struct {
	ID             utils.FlexID `json:"id"`
	RagioneSociale string       `json:"ragione_sociale"`
	PartitaIVA     string       `json:"partita_iva"`
	CodiceFiscale  string       `json:"codice_fiscale"`
	Email          string       `json:"email"`
	Telefono       string       `json:"telefono"`
}

// ArcaSitePayload is one delivery destination record.
type ArcaSitePayload struct {
	ID          utils.FlexID `json:"id"`
	ClienteID   utils.FlexID `json:"cliente_id"`
	Descrizione string       `json:"descrizione"`
	Indirizzo   string       `json:"indirizzo"`
	Citta       string       `json:"citta"`
	Provincia   string       `json:"provincia"`
	CAP         string       `json:"cap"`
}

// ArcaDriverPayload is one personnel record.
type ArcaDriverPayload struct {
	ID       utils.FlexID `json:"id"`
	Nome     string       `json:"nome"`
	Telefono string       `json:"telefono"`
}

type arcaRef struct {
	ID utils.FlexID `json:"id"`
}

// ArcaDocumentPayload is one shipping document. Client and site references
// arrive in different shapes depending on the Arca endpoint version, so all
// variants are decoded and resolved through ClientID/SiteID.
type ArcaDocumentPayload struct {
	CodiceDoc    string           `json:"codice_doc"`
	NumeroDoc    string           `json:"numero_doc"`
	DataDoc      *models.JSONTime `json:"data_doc"`
	DataConsegna *models.JSONTime `json:"data_consegna"`
	Imponibile   float64          `json:"imponibile"`
	IVA          float64          `json:"iva"`
	Totale       float64          `json:"totale"`

	ClienteID utils.FlexID `json:"cliente_id"`
	Cliente   *arcaRef     `json:"cliente"`

	SedeID         utils.FlexID `json:"sede_id"`
	DestinazioneID utils.FlexID `json:"destinazione_id"`
	Sede           *arcaRef     `json:"sede"`

	Righe []ArcaLinePayload `json:"righe"`
}

// ClientID resolves the client reference across payload shapes.
func (p ArcaDocumentPayload) ClientID() int64 {
	if p.ClienteID != 0 {
		return p.ClienteID.Int64()
	}
	if p.Cliente != nil {
		return p.Cliente.ID.Int64()
	}
	return 0
}

// SiteID resolves the site reference across payload shapes; nil when the
// document carries no destination.
func (p ArcaDocumentPayload) SiteID() *int64 {
	if p.SedeID != 0 {
		return p.SedeID.Ptr()
	}
	if p.DestinazioneID != 0 {
		return p.DestinazioneID.Ptr()
	}
	if p.Sede != nil {
		return p.Sede.ID.Ptr()
	}
	return nil
}

// ArcaLinePayload is one article row of a document.
type ArcaLinePayload struct {
	CodArt      string  `json:"cod_art"`
	Descrizione string  `json:"descrizione"`
	Quantita    float64 `json:"quantita"`
	Prezzo      float64 `json:"prezzo"`
	Sconto      float64 `json:"sconto"`
	Totale      float64 `json:"totale"`
}

// ListClients fetches the client master list.
func (c *ArcaClient) ListClients() ([]ArcaClientPayload, error) {
	var out []ArcaClientPayload
	if err := c.get("/clienti", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListSites fetches the delivery destinations.
func (c *ArcaClient) ListSites() ([]ArcaSitePayload, error) {
	var out []ArcaSitePayload
	if err := c.get("/destinazioni", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListDrivers fetches the driver personnel list.
func (c *ArcaClient) ListDrivers() ([]ArcaDriverPayload, error) {
	var out []ArcaDriverPayload
	if err := c.get("/autisti", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListDocuments fetches shipped documents with a document date in [from, to].
func (c *ArcaClient) ListDocuments(from, to time.Time) ([]ArcaDocumentPayload, error) {
	params := url.Values{}
	params.Set("dataDa", from.Format("2006-01-02"))
	params.Set("dataA", to.Format("2006-01-02"))

	var out []ArcaDocumentPayload
	if err := c.get("/documenti", params, &out); err != nil {
		return nil, err
	}
	return out, nil
}
