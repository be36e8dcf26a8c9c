package models

type ApplicationStage string

const (
	StageApplied   ApplicationStage = "applied"
	StageScreening ApplicationStage = "screening"
	StageInterview ApplicationStage = "interview"
	StageOffer     ApplicationStage = "offer"
	StageHired     ApplicationStage = "hired"
	StageRejected  ApplicationStage = "rejected"
)

var stageHumanName = map[ApplicationStage]string{
	StageApplied:   "Отклик",
	StageScreening: "Скрининг",
	StageInterview: "Собеседование",
	StageOffer:     "Оффер",
	StageHired:     "Принят",
	StageRejected:  "Отказ",
}

func (s ApplicationStage) ToHuman() string {
	if human, exist := stageHumanName[s]; exist {
		return human
	}
	return string(s)
}

// IsTerminal из принятого и отклоненного кандидат дальше по воронке не двигается
func (s ApplicationStage) IsTerminal() bool {
	return s == StageHired || s == StageRejected
}
