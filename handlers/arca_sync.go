package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
	"v8e.it/flotta/config"
	"v8e.it/flotta/models"
)

// ArcaSyncer runs the periodic synchronization of masters and shipping
// documents from the Arca ERP into the local database.
type ArcaSyncer struct {
	cfg    *config.ArcaConfig
	client *ArcaClient
	cron   *cron.Cron
	mu     sync.Mutex // serializes runs: cron and the manual trigger share this instance
}

// defaultSyncer is the instance wired at startup, used by the manual
// trigger endpoint.
var defaultSyncer *ArcaSyncer

// NewArcaSyncer creates the syncer and registers it for manual triggering.
func NewArcaSyncer(cfg *config.ArcaConfig) *ArcaSyncer {
	s := &ArcaSyncer{
		cfg:    cfg,
		client: NewArcaClient(cfg),
		cron:   cron.New(),
	}
	defaultSyncer = s
	return s
}

// StartSchedule registers the cron entry and starts the scheduler.
func (s *ArcaSyncer) StartSchedule() error {
	_, err := s.cron.AddFunc(s.cfg.Sync.Schedule, func() {
		if _, err := s.RunOnce(); err != nil {
			log.Printf("arca sync failed: %v", err)
		}
	})
	if err != nil {
		return err
	}
	s.cron.Start()
	log.Printf("Arca sync scheduled (%s)", s.cfg.Sync.Schedule)
	return nil
}

// RunOnce executes one full synchronization and records a SyncRun row.
// Failures are recorded on the run and returned; they never panic or stop
// the scheduler. Only one run executes at a time.
func (s *ArcaSyncer) RunOnce() (*models.SyncRun, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	run := &models.SyncRun{StartedAt: time.Now()}

	var syncErr error
	if s.cfg.Sync.Masters {
		syncErr = s.syncMasters(run)
	}
	if syncErr == nil {
		syncErr = s.syncDocuments(run)
	}

	now := time.Now()
	run.FinishedAt = &now
	if syncErr != nil {
		run.Error = syncErr.Error()
	}
	if err := config.DB.Create(run).Error; err != nil {
		log.Printf("arca sync: could not record run: %v", err)
	}
	if syncErr != nil {
		return run, syncErr
	}

	log.Printf("Arca sync done: %d clients, %d sites, %d drivers, %d documents",
		run.Clients, run.Sites, run.Drivers, run.Documents)
	return run, nil
}

func (s *ArcaSyncer) syncMasters(run *models.SyncRun) error {
	clients, err := s.client.ListClients()
	if err != nil {
		return err
	}
	for _, p := range clients {
		if p.ID == 0 {
			continue
		}
		c := models.Client{
			ID:             p.ID.Int64(),
			RagioneSociale: p.RagioneSociale,
			PartitaIVA:     p.PartitaIVA,
			CodiceFiscale:  p.CodiceFiscale,
			Email:          p.Email,
			Phone:          p.Telefono,
			IsActive:       true,
		}
		if err := config.DB.Save(&c).Error; err != nil {
			return err
		}
		run.Clients++
	}

	sites, err := s.client.ListSites()
	if err != nil {
		return err
	}
	for _, p := range sites {
		if p.ID == 0 || p.ClienteID == 0 {
			continue
		}
		site := models.Site{
			ID:       p.ID.Int64(),
			ClientID: p.ClienteID.Int64(),
			Name:     p.Descrizione,
			Address:  p.Indirizzo,
			City:     p.Citta,
			Province: p.Provincia,
			ZipCode:  p.CAP,
			IsActive: true,
		}
		if err := config.DB.Save(&site).Error; err != nil {
			return err
		}
		run.Sites++
	}

	drivers, err := s.client.ListDrivers()
	if err != nil {
		return err
	}
	for _, p := range drivers {
		if p.ID == 0 {
			continue
		}
		d := models.Driver{
			ID:       p.ID.Int64(),
			Name:     p.Nome,
			Phone:    p.Telefono,
			IsActive: true,
		}
		if err := config.DB.Save(&d).Error; err != nil {
			return err
		}
		run.Drivers++
	}
	return nil
}

func (s *ArcaSyncer) syncDocuments(run *models.SyncRun) error {
	to := time.Now()
	from := to.AddDate(0, 0, -s.cfg.Sync.LookbackDays)

	payloads, err := s.client.ListDocuments(from, to)
	if err != nil {
		return err
	}

	for _, p := range payloads {
		if p.CodiceDoc == "" || p.NumeroDoc == "" || p.ClientID() == 0 {
			// Incomplete identity: count nothing, skip quietly.
			continue
		}
		if err := s.upsertDocument(p); err != nil {
			return err
		}
		run.Documents++
	}
	return nil
}

// upsertDocument creates or refreshes one document by its
// (codice_doc, numero_doc) identity, replacing its lines.
func (s *ArcaSyncer) upsertDocument(p ArcaDocumentPayload) error {
	raw, _ := json.Marshal(p)

	return config.DB.Transaction(func(tx *gorm.DB) error {
		var doc models.Document
		err := tx.Where("codice_doc = ? AND numero_doc = ?", p.CodiceDoc, p.NumeroDoc).First(&doc).Error
		if err != nil && err != gorm.ErrRecordNotFound {
			return err
		}

		doc.CodiceDoc = p.CodiceDoc
		doc.NumeroDoc = p.NumeroDoc
		doc.ClientID = p.ClientID()
		doc.SiteID = p.SiteID()
		doc.Imponibile = p.Imponibile
		doc.IVA = p.IVA
		doc.Totale = p.Totale
		doc.RawPayload = raw
		doc.SyncedAt = time.Now()
		if p.DataDoc != nil {
			doc.DataDoc = p.DataDoc.TimePtr()
		}
		if p.DataConsegna != nil {
			doc.DataConsegna = p.DataConsegna.TimePtr()
		}

		if err := tx.Save(&doc).Error; err != nil {
			return err
		}

		if err := tx.Where("document_id = ?", doc.ID).Delete(&models.DocumentLine{}).Error; err != nil {
			return err
		}
		for _, line := range p.Righe {
			dl := models.DocumentLine{
				DocumentID:  doc.ID,
				CodArt:      line.CodArt,
				Descrizione: line.Descrizione,
				Quantita:    line.Quantita,
				Prezzo:      line.Prezzo,
				Sconto:      line.Sconto,
				Totale:      line.Totale,
			}
			if err := tx.Create(&dl).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// TriggerArcaSync runs a synchronization immediately. Answers 503 when the
// sync is not configured.
func TriggerArcaSync(w http.ResponseWriter, r *http.Request) {
	if defaultSyncer == nil {
		http.Error(w, "arca sync is not configured", http.StatusServiceUnavailable)
		return
	}

	run, err := defaultSyncer.RunOnce()
	w.Header().Set("Content-Type", "application/json")
	if err != nil {
		w.WriteHeader(http.StatusBadGateway)
	}
	json.NewEncoder(w).Encode(run)
}
