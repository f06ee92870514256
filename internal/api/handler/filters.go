package handler

import (
	"net/http"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/vfg2006/campaign-insights-api/internal/domain"
	"github.com/vfg2006/campaign-insights-api/pkg/utils"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator retorna a instância única do validador
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// FilterQuery são os parâmetros de filtro aceitos na query string
type FilterQuery struct {
	StartDate string   `validate:"omitempty,datetime=2006-01-02"`
	EndDate   string   `validate:"omitempty,datetime=2006-01-02"`
	Channels  []string `validate:"dive,max=200"`
	Campaign  string   `validate:"max=200"`
}

// FilterValidationError lista os parâmetros rejeitados
type FilterValidationError struct {
	Fields map[string]string
}

func (e *FilterValidationError) Error() string {
	return "invalid filter parameters"
}

var queryNames = map[string]string{
	"StartDate": "start_date",
	"EndDate":   "end_date",
	"Channels":  "channels",
	"Campaign":  "campaign",
}

// filterQueryFromRequest lê start_date, end_date, channels (lista separada por vírgula) e campaign
func filterQueryFromRequest(r *http.Request) FilterQuery {
	q := r.URL.Query()

	var channels []string
	for _, raw := range q["channels"] {
		for _, ch := range strings.Split(raw, ",") {
			if ch = strings.TrimSpace(ch); ch != "" {
				channels = append(channels, ch)
			}
		}
	}

	return FilterQuery{
		StartDate: strings.TrimSpace(q.Get("start_date")),
		EndDate:   strings.TrimSpace(q.Get("end_date")),
		Channels:  channels,
		Campaign:  q.Get("campaign"),
	}
}

// ParseFilters valida a query string e monta o FilterSpec
func ParseFilters(r *http.Request) (domain.FilterSpec, error) {
	query := filterQueryFromRequest(r)

	if err := Validator().Struct(query); err != nil {
		fields := make(map[string]string)
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range verrs {
				name := fe.StructField()
				if i := strings.IndexByte(name, '['); i >= 0 {
					name = name[:i]
				}
				fields[queryNames[name]] = fe.Tag()
			}
		}
		return domain.FilterSpec{}, &FilterValidationError{Fields: fields}
	}

	start, err := utils.ParseDate(query.StartDate)
	if err != nil {
		return domain.FilterSpec{}, &FilterValidationError{Fields: map[string]string{"start_date": "datetime"}}
	}
	end, err := utils.ParseDate(query.EndDate)
	if err != nil {
		return domain.FilterSpec{}, &FilterValidationError{Fields: map[string]string{"end_date": "datetime"}}
	}

	return domain.NewFilterSpec(query.Channels, query.Campaign, start, end), nil
}
