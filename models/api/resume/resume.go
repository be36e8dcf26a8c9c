package resumeapimodels

import (
	"encoding/base64"
	"strings"

	"github.com/pkg/errors"
)

type ParseRequest struct {
	Text   string `json:"text"`   // текст резюме
	Base64 string `json:"base64"` // либо текст резюме в base64
}

func (r ParseRequest) Validate() error {
	if strings.TrimSpace(r.Text) == "" && strings.TrimSpace(r.Base64) == "" {
		return errors.New("не указан текст резюме")
	}
	return nil
}

// GetText текст имеет приоритет над base64
func (r ParseRequest) GetText() (string, error) {
	if strings.TrimSpace(r.Text) != "" {
		return r.Text, nil
	}
	body, err := base64.StdEncoding.DecodeString(strings.TrimSpace(r.Base64))
	if err != nil {
		return "", errors.New("некорректный формат base64")
	}
	return string(body), nil
}

type ParseResult struct {
	Skills  []string `json:"skills"`
	Years   int      `json:"years"`
	Email   string   `json:"email"`
	Phone   string   `json:"phone"`
	Summary string   `json:"summary"`
}
