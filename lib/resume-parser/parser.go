// Package resumeparser извлекает из текста резюме навыки, стаж и контакты.
// Разбор основан на словаре и регулярных выражениях, внешние сервисы не используются.
package resumeparser

import (
	resumeapimodels "nexora-hcm/models/api/resume"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

const SummaryLength = 300

type skill struct {
	name    string
	aliases []string
}

// порядок словаря определяет порядок навыков в результате
var skillTable = []skill{
	{name: "Go", aliases: []string{"go", "golang"}},
	{name: "Python", aliases: []string{"python"}},
	{name: "Java", aliases: []string{"java"}},
	{name: "JavaScript", aliases: []string{"javascript", "js"}},
	{name: "TypeScript", aliases: []string{"typescript"}},
	{name: "C++", aliases: []string{"c++"}},
	{name: "C#", aliases: []string{"c#"}},
	{name: "Kotlin", aliases: []string{"kotlin"}},
	{name: "Swift", aliases: []string{"swift"}},
	{name: "PHP", aliases: []string{"php"}},
	{name: "Ruby", aliases: []string{"ruby"}},
	{name: "Rust", aliases: []string{"rust"}},
	{name: "SQL", aliases: []string{"sql"}},
	{name: "PostgreSQL", aliases: []string{"postgresql", "postgres"}},
	{name: "MySQL", aliases: []string{"mysql"}},
	{name: "MongoDB", aliases: []string{"mongodb", "mongo"}},
	{name: "Redis", aliases: []string{"redis"}},
	{name: "Kafka", aliases: []string{"kafka"}},
	{name: "RabbitMQ", aliases: []string{"rabbitmq"}},
	{name: "Docker", aliases: []string{"docker"}},
	{name: "Kubernetes", aliases: []string{"kubernetes", "k8s"}},
	{name: "AWS", aliases: []string{"aws"}},
	{name: "GCP", aliases: []string{"gcp"}},
	{name: "Azure", aliases: []string{"azure"}},
	{name: "Linux", aliases: []string{"linux"}},
	{name: "Git", aliases: []string{"git"}},
	{name: "React", aliases: []string{"react", "react.js"}},
	{name: "Vue", aliases: []string{"vue", "vue.js"}},
	{name: "Angular", aliases: []string{"angular"}},
	{name: "Node.js", aliases: []string{"node.js", "nodejs"}},
	{name: "Django", aliases: []string{"django"}},
	{name: "Spring", aliases: []string{"spring"}},
	{name: "gRPC", aliases: []string{"grpc"}},
	{name: "REST", aliases: []string{"rest", "restful"}},
	{name: "GraphQL", aliases: []string{"graphql"}},
	{name: "Terraform", aliases: []string{"terraform"}},
	{name: "CI/CD", aliases: []string{"ci/cd"}},
	{name: "Excel", aliases: []string{"excel"}},
}

var skillPatterns = compileSkills()

var (
	// число должно начинаться с границы, иначе из "2015 years" получится 15
	yearsPattern = regexp.MustCompile(`(?i)(?:^|\D)(\d{1,2})\s*\+?\s*(?:years?|yrs?|лет|года?)`)
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	phonePattern = regexp.MustCompile(`\+?\d[\d\s\-()]{7,}\d`)
)

func compileSkills() []*regexp.Regexp {
	result := make([]*regexp.Regexp, 0, len(skillTable))
	for _, item := range skillTable {
		quoted := make([]string, 0, len(item.aliases))
		for _, alias := range item.aliases {
			quoted = append(quoted, regexp.QuoteMeta(alias))
		}
		// границы слова заданы явно: \b не работает для c++, c# и кириллицы рядом
		expr := `(?i)(?:^|[^\p{L}\p{N}+#.])(?:` + strings.Join(quoted, "|") + `)(?:$|[^\p{L}\p{N}+#])`
		result = append(result, regexp.MustCompile(expr))
	}
	return result
}

func Parse(text string) resumeapimodels.ParseResult {
	return resumeapimodels.ParseResult{
		Skills:  Skills(text),
		Years:   Years(text),
		Email:   Email(text),
		Phone:   Phone(text),
		Summary: Summary(text),
	}
}

func Skills(text string) []string {
	result := []string{}
	for idx, pattern := range skillPatterns {
		if pattern.MatchString(text) {
			result = append(result, skillTable[idx].name)
		}
	}
	return result
}

// Years наибольшее найденное упоминание стажа, 0 если не найдено
func Years(text string) int {
	years := 0
	for _, match := range yearsPattern.FindAllStringSubmatch(text, -1) {
		value, err := strconv.Atoi(match[1])
		if err == nil && value > years {
			years = value
		}
	}
	return years
}

func Email(text string) string {
	return strings.ToLower(emailPattern.FindString(text))
}

// Phone первый фрагмент, похожий на телефон: от 10 до 15 цифр
func Phone(text string) string {
	for _, match := range phonePattern.FindAllString(text, -1) {
		digits := 0
		for _, r := range match {
			if r >= '0' && r <= '9' {
				digits++
			}
		}
		if digits >= 10 && digits <= 15 {
			return strings.TrimSpace(match)
		}
	}
	return ""
}

func Summary(text string) string {
	collapsed := strings.Join(strings.Fields(text), " ")
	if utf8.RuneCountInString(collapsed) <= SummaryLength {
		return collapsed
	}
	return string([]rune(collapsed)[:SummaryLength])
}
