package candidateapimodels

import (
	apimodels "nexora-hcm/models/api"
	"strings"
	"time"

	"github.com/pkg/errors"
)

type CandidateData struct {
	Name   string        `json:"name"`   // ФИО кандидата, обязательное
	Email  string        `json:"email"`  // почта, приводится к нижнему регистру
	Phone  string        `json:"phone"`  // телефон в свободном формате
	Skills []interface{} `json:"skills"` // навыки, значения приводятся к строкам
}

func (c CandidateData) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return errors.New("не указано имя кандидата")
	}
	return nil
}

// CandidateUpdate частичное обновление: меняются только переданные поля,
// null для email/phone очищает значение
type CandidateUpdate struct {
	Name   apimodels.Optional[string]        `json:"name" swaggertype:"string"`
	Email  apimodels.Optional[string]        `json:"email" swaggertype:"string"`
	Phone  apimodels.Optional[string]        `json:"phone" swaggertype:"string"`
	Skills apimodels.Optional[[]interface{}] `json:"skills" swaggertype:"array,string"`
}

func (c CandidateUpdate) Validate() error {
	if c.Name.Set && (!c.Name.Valid || strings.TrimSpace(c.Name.Value) == "") {
		return errors.New("имя кандидата не может быть пустым")
	}
	return nil
}

type CandidateFilter struct {
	Query string `query:"q"` // поиск по имени или почте без учета регистра
}

type CandidateView struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     *string   `json:"email"`
	Phone     *string   `json:"phone"`
	Skills    []string  `json:"skills"`
	HasResume bool      `json:"has_resume"`
	CreatedAt time.Time `json:"created_at"`
}
