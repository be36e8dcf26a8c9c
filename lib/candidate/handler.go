package candidate

import (
	"context"
	"fmt"
	"mime"
	applicationstore "nexora-hcm/lib/application/store"
	candidatestore "nexora-hcm/lib/candidate/store"
	filestorage "nexora-hcm/lib/file-storage"
	apperrors "nexora-hcm/lib/utils/app-errors"
	candidateapimodels "nexora-hcm/models/api/candidate"
	dbmodels "nexora-hcm/models/db"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	Create(data candidateapimodels.CandidateData) (candidateapimodels.CandidateView, error)
	List(filter candidateapimodels.CandidateFilter) ([]candidateapimodels.CandidateView, error)
	Get(id uint) (candidateapimodels.CandidateView, error)
	Update(id uint, data candidateapimodels.CandidateUpdate) (candidateapimodels.CandidateView, error)
	Delete(id uint) error
	UploadResume(ctx context.Context, id uint, fileName string, body []byte) error
	GetResume(ctx context.Context, id uint) (fileName string, body []byte, err error)
}

// NewHandler fileStorage может быть nil, если S3 не настроен: тогда недоступна только работа с файлами резюме
func NewHandler(conn *gorm.DB, fileStorage filestorage.Provider) Provider {
	return impl{
		store:            candidatestore.NewInstance(conn),
		applicationStore: applicationstore.NewInstance(conn),
		fileStorage:      fileStorage,
	}
}

type impl struct {
	store            candidatestore.Provider
	applicationStore applicationstore.Provider
	fileStorage      filestorage.Provider
}

func (i impl) getLogger(id uint) *log.Entry {
	return log.WithField("candidate_id", id)
}

func (i impl) Create(data candidateapimodels.CandidateData) (candidateapimodels.CandidateView, error) {
	rec := dbmodels.Candidate{
		Name:   strings.TrimSpace(data.Name),
		Email:  normalizeEmail(data.Email),
		Phone:  normalizeText(data.Phone),
		Skills: NormalizeSkills(data.Skills),
	}
	created, err := i.store.Create(rec)
	if err != nil {
		log.WithField("name", rec.Name).WithError(err).Error("ошибка создания кандидата")
		return candidateapimodels.CandidateView{}, apperrors.NewInternal("ошибка создания кандидата")
	}
	return created.ToModel(), nil
}

func (i impl) List(filter candidateapimodels.CandidateFilter) ([]candidateapimodels.CandidateView, error) {
	list, err := i.store.List(filter.Query)
	if err != nil {
		log.WithField("q", filter.Query).WithError(err).Error("ошибка получения списка кандидатов")
		return nil, apperrors.NewInternal("ошибка получения списка кандидатов")
	}
	result := make([]candidateapimodels.CandidateView, 0, len(list))
	for _, rec := range list {
		result = append(result, rec.ToModel())
	}
	return result, nil
}

func (i impl) Get(id uint) (candidateapimodels.CandidateView, error) {
	rec, err := i.getRec(id)
	if err != nil {
		return candidateapimodels.CandidateView{}, err
	}
	return rec.ToModel(), nil
}

func (i impl) Update(id uint, data candidateapimodels.CandidateUpdate) (candidateapimodels.CandidateView, error) {
	updMap := map[string]interface{}{}
	if data.Name.Set {
		updMap["name"] = strings.TrimSpace(data.Name.Value)
	}
	if data.Email.Set {
		// null или пустая строка очищают почту
		updMap["email"] = normalizeEmail(data.Email.Value)
	}
	if data.Phone.Set {
		updMap["phone"] = normalizeText(data.Phone.Value)
	}
	if data.Skills.Set {
		updMap["skills"] = NormalizeSkills(data.Skills.Value)
	}
	if len(updMap) == 0 {
		return i.Get(id)
	}
	err := i.store.Update(id, updMap)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return candidateapimodels.CandidateView{}, apperrors.NewNotFound("кандидат не найден")
		}
		i.getLogger(id).WithError(err).Error("ошибка обновления кандидата")
		return candidateapimodels.CandidateView{}, apperrors.NewInternal("ошибка обновления кандидата")
	}
	return i.Get(id)
}

// Delete каскадное удаление откликов не выполняется: кандидат с откликами не удаляется
func (i impl) Delete(id uint) error {
	logger := i.getLogger(id)
	count, err := i.applicationStore.CountByCandidate(id)
	if err != nil {
		logger.WithError(err).Error("ошибка проверки откликов кандидата")
		return apperrors.NewInternal("ошибка удаления кандидата")
	}
	if count > 0 {
		return apperrors.NewConflict("у кандидата есть отклики, удаление невозможно")
	}
	err = i.store.Delete(id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return apperrors.NewNotFound("кандидат не найден")
		}
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return apperrors.NewConflict("у кандидата есть отклики, удаление невозможно")
		}
		logger.WithError(err).Error("ошибка удаления кандидата")
		return apperrors.NewInternal("ошибка удаления кандидата")
	}
	return nil
}

func (i impl) UploadResume(ctx context.Context, id uint, fileName string, body []byte) error {
	logger := i.getLogger(id).WithField("file_name", fileName)
	if i.fileStorage == nil {
		return apperrors.NewInternal("хранилище файлов не настроено")
	}
	if len(body) == 0 {
		return apperrors.NewValidation("файл резюме пустой")
	}
	if _, err := i.getRec(id); err != nil {
		return err
	}
	key := resumeKey(id, fileName)
	err := i.fileStorage.PutFile(ctx, key, body, mime.TypeByExtension(filepath.Ext(key)))
	if err != nil {
		logger.WithError(err).Error("ошибка загрузки файла резюме")
		return apperrors.NewInternal("ошибка загрузки файла резюме")
	}
	err = i.store.Update(id, map[string]interface{}{"resume_file": key})
	if err != nil {
		logger.WithError(err).Error("ошибка сохранения ссылки на файл резюме")
		return apperrors.NewInternal("ошибка загрузки файла резюме")
	}
	return nil
}

func (i impl) GetResume(ctx context.Context, id uint) (string, []byte, error) {
	if i.fileStorage == nil {
		return "", nil, apperrors.NewInternal("хранилище файлов не настроено")
	}
	rec, err := i.getRec(id)
	if err != nil {
		return "", nil, err
	}
	if rec.ResumeFile == nil || *rec.ResumeFile == "" {
		return "", nil, apperrors.NewNotFound("резюме не загружено")
	}
	body, err := i.fileStorage.GetFile(ctx, *rec.ResumeFile)
	if err != nil {
		if errors.Is(err, filestorage.ErrFileNotFound) {
			return "", nil, apperrors.NewNotFound("файл резюме не найден")
		}
		i.getLogger(id).WithError(err).Error("ошибка получения файла резюме")
		return "", nil, apperrors.NewInternal("ошибка получения файла резюме")
	}
	return filepath.Base(*rec.ResumeFile), body, nil
}

func (i impl) getRec(id uint) (*dbmodels.Candidate, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		i.getLogger(id).WithError(err).Error("ошибка получения кандидата")
		return nil, apperrors.NewInternal("ошибка получения кандидата")
	}
	if rec == nil {
		return nil, apperrors.NewNotFound("кандидат не найден")
	}
	return rec, nil
}

func resumeKey(id uint, fileName string) string {
	name := filepath.Base(strings.TrimSpace(fileName))
	if name == "." || name == string(filepath.Separator) || name == "" {
		name = "resume"
	}
	return fmt.Sprintf("candidates/%d/%s", id, name)
}

func normalizeEmail(value string) *string {
	email := strings.ToLower(strings.TrimSpace(value))
	if email == "" {
		return nil
	}
	return &email
}

func normalizeText(value string) *string {
	text := strings.TrimSpace(value)
	if text == "" {
		return nil
	}
	return &text
}

// NormalizeSkills приводит значения к строкам, убирает пустые и повторы, сохраняя порядок
func NormalizeSkills(values []interface{}) dbmodels.StringList {
	result := dbmodels.StringList{}
	seen := map[string]bool{}
	for _, value := range values {
		if value == nil {
			continue
		}
		skill := strings.TrimSpace(fmt.Sprint(value))
		if skill == "" {
			continue
		}
		key := strings.ToLower(skill)
		if seen[key] {
			continue
		}
		seen[key] = true
		result = append(result, skill)
	}
	return result
}
