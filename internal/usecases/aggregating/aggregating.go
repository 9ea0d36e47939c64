// Package aggregating reúne os cálculos compartilhados pelos adapters de plataforma
package aggregating

import (
	"sort"
	"strings"
	"unicode"
)

// AverageOf calcula a média de um campo numérico. Valores ausentes (nil) ficam fora
// do numerador e do denominador. O resultado é 0 para lista vazia ou quando a soma
// dos valores presentes não é positiva.
func AverageOf[T any](items []T, field func(T) *int64) float64 {
	var (
		sum   int64
		count int64
	)

	for _, item := range items {
		value := field(item)
		if value == nil {
			continue
		}
		sum += *value
		count++
	}

	if count == 0 || sum <= 0 {
		return 0
	}

	return float64(sum) / float64(count)
}

// SumOf soma um campo numérico, ignorando valores ausentes
func SumOf[T any](items []T, field func(T) *int64) int64 {
	var sum int64
	for _, item := range items {
		if value := field(item); value != nil {
			sum += *value
		}
	}
	return sum
}

// EngagementRate retorna ((totalEngagement / postCount) / followerBase) * 100,
// ou 0 quando postCount ou followerBase não são positivos
func EngagementRate(totalEngagement, postCount, followerBase int64) float64 {
	if postCount <= 0 || followerBase <= 0 {
		return 0
	}

	perPost := float64(totalEngagement) / float64(postCount)
	return perPost / float64(followerBase) * 100
}

// TopHashtags extrai as hashtags dos textos e retorna as limit mais frequentes,
// em minúsculas. Empates são resolvidos em ordem alfabética.
func TopHashtags(texts []string, limit int) []string {
	counts := make(map[string]int)

	for _, text := range texts {
		for _, tag := range extractHashtags(text) {
			counts[tag]++
		}
	}

	tags := make([]string, 0, len(counts))
	for tag := range counts {
		tags = append(tags, tag)
	}

	sort.Slice(tags, func(i, j int) bool {
		if counts[tags[i]] != counts[tags[j]] {
			return counts[tags[i]] > counts[tags[j]]
		}
		return tags[i] < tags[j]
	})

	if limit > 0 && len(tags) > limit {
		tags = tags[:limit]
	}

	return tags
}

func extractHashtags(text string) []string {
	var tags []string

	fields := strings.FieldsFunc(text, func(r rune) bool {
		return unicode.IsSpace(r) || r == ','
	})

	for _, field := range fields {
		for _, part := range strings.Split(field, "#")[1:] {
			tag := strings.TrimRightFunc(part, func(r rune) bool {
				return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
			})
			tag = strings.ToLower(tag)
			if isHashtag(tag) {
				tags = append(tags, "#"+tag)
			}
		}
	}

	return tags
}

func isHashtag(tag string) bool {
	if tag == "" {
		return false
	}
	for _, r := range tag {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return true
}
