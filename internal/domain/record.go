package domain

import (
	"time"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Sentinelas usadas quando a célula de texto obrigatória vem vazia
const (
	UnspecifiedChannel  = "Unspecified"
	UnspecifiedCampaign = "—"
)

// Colunas obrigatórias, na ordem usada tanto na importação quanto na exportação
var RequiredColumns = []string{
	"Date",
	"Channel",
	"Campaign",
	"Spend",
	"Impressions",
	"Clicks",
	"Conversions",
	"Revenue",
}

// Record representa uma observação de performance de marketing
type Record struct {
	Date        time.Time `json:"date"`
	Channel     string    `json:"channel"`
	Campaign    string    `json:"campaign"`
	Spend       float64   `json:"spend"`
	Impressions float64   `json:"impressions"`
	Clicks      float64   `json:"clicks"`
	Conversions float64   `json:"conversions"`
	Revenue     float64   `json:"revenue"`
}

// Day retorna a data do registro no formato YYYY-MM-DD
func (r Record) Day() string {
	return r.Date.Format(time.DateOnly)
}

// MarshalJSON expõe a data como dia de calendário (YYYY-MM-DD), sem hora
func (r Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Date        string  `json:"date"`
		Channel     string  `json:"channel"`
		Campaign    string  `json:"campaign"`
		Spend       float64 `json:"spend"`
		Impressions float64 `json:"impressions"`
		Clicks      float64 `json:"clicks"`
		Conversions float64 `json:"conversions"`
		Revenue     float64 `json:"revenue"`
	}{
		Date:        r.Day(),
		Channel:     r.Channel,
		Campaign:    r.Campaign,
		Spend:       r.Spend,
		Impressions: r.Impressions,
		Clicks:      r.Clicks,
		Conversions: r.Conversions,
		Revenue:     r.Revenue,
	})
}

// Dataset é o conjunto de registros carregado atualmente, na ordem do arquivo
type Dataset struct {
	ID       string    `json:"id"`
	Source   string    `json:"source"`
	LoadedAt time.Time `json:"loaded_at"`
	Records  []Record  `json:"-"`
}

// Len retorna a quantidade de registros, tolerando dataset nulo
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Records)
}

// DatasetSummary é a visão resumida do dataset exposta pela API
type DatasetSummary struct {
	ID          string    `json:"id"`
	Source      string    `json:"source"`
	LoadedAt    time.Time `json:"loaded_at"`
	RecordCount int       `json:"record_count"`
	Channels    []string  `json:"channels"`
	Campaigns   []string  `json:"campaigns"`
	FirstDate   string    `json:"first_date,omitempty"`
	LastDate    string    `json:"last_date,omitempty"`
}
