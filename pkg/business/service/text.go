package service

import (
	"html"
	"regexp"
	"strings"
)

type ITextService interface {
	RemoveTags(input string) string
	RemoveLinks(input string) string
	ReduceToLength(input string, length int) string
	ClearAndReduce(input string, length int) string
}

// TextService cleans vendor-supplied marketing text before persistence.
type TextService struct{}

func NewTextService() *TextService {
	return &TextService{}
}

var (
	tagPattern  = regexp.MustCompile(`<[^>]*>`)
	linkPattern = regexp.MustCompile(`https?://[^\s]+`)
	wsPattern   = regexp.MustCompile(`\s+`)
)

func (ts *TextService) RemoveTags(input string) string {
	return tagPattern.ReplaceAllString(html.UnescapeString(input), "")
}

func (ts *TextService) RemoveLinks(input string) string {
	return linkPattern.ReplaceAllString(input, "")
}

func (ts *TextService) ReduceToLength(input string, length int) string {
	var builder strings.Builder
	words := strings.Split(input, " ")
	totalLength := 0

	for i, word := range words {
		if totalLength+len(word) > length {
			break
		}

		if i > 0 {
			builder.WriteString(" ")
			totalLength++
		}

		builder.WriteString(word)
		totalLength += len(word)
	}

	return builder.String()
}

func (ts *TextService) ClearAndReduce(input string, length int) string {
	cleaned := ts.RemoveTags(input)
	cleaned = ts.RemoveLinks(cleaned)
	cleaned = strings.TrimSpace(wsPattern.ReplaceAllString(cleaned, " "))
	return ts.ReduceToLength(cleaned, length)
}
