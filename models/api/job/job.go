package jobapimodels

import (
	apimodels "nexora-hcm/models/api"
	"strings"
	"time"

	"github.com/pkg/errors"
)

type JobData struct {
	Title       string `json:"title"`
	Department  string `json:"department"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

func (j JobData) Validate() error {
	if strings.TrimSpace(j.Title) == "" {
		return errors.New("не указано название вакансии")
	}
	return nil
}

type JobUpdate struct {
	Title       apimodels.Optional[string] `json:"title" swaggertype:"string"`
	Department  apimodels.Optional[string] `json:"department" swaggertype:"string"`
	Location    apimodels.Optional[string] `json:"location" swaggertype:"string"`
	Description apimodels.Optional[string] `json:"description" swaggertype:"string"`
	IsOpen      apimodels.Optional[bool]   `json:"is_open" swaggertype:"boolean"`
}

func (j JobUpdate) Validate() error {
	if j.Title.Set && (!j.Title.Valid || strings.TrimSpace(j.Title.Value) == "") {
		return errors.New("название вакансии не может быть пустым")
	}
	if j.IsOpen.Set && !j.IsOpen.Valid {
		return errors.New("не указан признак открытой вакансии")
	}
	return nil
}

type JobFilter struct {
	OpenOnly bool `query:"open_only"`
}

type JobView struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Department  string    `json:"department"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	IsOpen      bool      `json:"is_open"`
	CreatedAt   time.Time `json:"created_at"`
}
