package models

import "unicode/utf8"

const wordsPerMinute = 200

type TextStats struct {
	Words          int `json:"words"`
	Characters     int `json:"characters"`
	ReadingMinutes int `json:"readingMinutes"`
}

func ComputeStats(content string) TextStats {
	words := WordCount(content)
	return TextStats{
		Words:          words,
		Characters:     utf8.RuneCountInString(content),
		ReadingMinutes: (words + wordsPerMinute - 1) / wordsPerMinute,
	}
}

type Setting struct {
	Key       string `json:"key"`
	Value     string `json:"value"`
	UpdatedAt string `json:"updatedAt"`
}

type SetSettingRequest struct {
	Value string `json:"value"`
}

type SystemInfo struct {
	Platform string `json:"platform"`
	Version  string `json:"version"`
	Arch     string `json:"arch"`
}
