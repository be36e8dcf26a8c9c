package analyticsapimodels

// Snapshot агрегаты по воронке найма, пересчитываются на каждый запрос
type Snapshot struct {
	Total            int64            `json:"total"`               // всего откликов
	Stages           map[string]int64 `json:"stages"`              // количество по каждому из шести этапов
	Interviews       int64            `json:"interviews"`          // = stages.interview
	Offers           int64            `json:"offers"`              // = stages.offer
	Hires            int64            `json:"hires"`               // = stages.hired
	OfferToHireRatio float64          `json:"offer_to_hire_ratio"` // hires / offers * 100, один знак после запятой
	Bottleneck       string           `json:"bottleneck"`          // этап до финала с наибольшим числом откликов
}
