// Package sample provides the built-in demo articles shown when no feed is loaded.
package sample

import (
	"time"

	"foxfeed/internal/models"
)

const imageBase = "https://trae-api-sg.mchost.guru/api/ide/v1/text_to_image?image_size=square&prompt="

// Articles returns the six demo articles. Each call returns a fresh slice.
func Articles() []models.Article {
	return []models.Article{
		{
			Title:       "Find out what's new in the Gemini app in November's Gemini Drop.",
			Description: "Discover the latest features and improvements in the Gemini app this November.",
			Link:        "https://example.com/gemini-drop",
			Date:        day(2024, time.November, 21),
			Category:    "GEMINI APP",
			ImageURL:    image("Gemini+Drops+text+logo+with+sparkles+on+dark+background"),
		},
		{
			Title:       "48 tips and prompts for holiday planning, travel and more",
			Description: "Get ready for the holidays with these helpful tips and AI prompts for planning and travel.",
			Link:        "https://example.com/holiday-tips",
			Date:        day(2024, time.November, 21),
			Category:    "GEMINI",
			ImageURL:    image("Holiday+travel+planning+illustration+with+suitcases+and+calendar"),
		},
		{
			Title:       "16 Google AI tips for stress-free holiday hosting in 2025",
			Description: "Make your holiday hosting easier with these AI-powered tips and tricks from Google.",
			Link:        "https://example.com/ai-holiday-tips",
			Date:        day(2024, time.November, 21),
			Category:    "AI",
			ImageURL:    image("Holiday+food+table+with+traditional+dishes+festive+setting"),
		},
		{
			Title:       "Court testimony highlights the risk and disruption of the DOJ's ad tech proposals",
			Description: "Expert analysis of the Department of Justice's ad tech proposals and their potential impact.",
			Link:        "https://example.com/ad-tech-proposals",
			Date:        day(2024, time.November, 21),
			Category:    "PUBLIC POLICY",
		},
		{
			Title:       "4 ways to use AI for easier Black Friday and Cyber Monday shopping",
			Description: "Make your holiday shopping smarter with these AI-powered shopping tips and strategies.",
			Link:        "https://example.com/ai-shopping",
			Date:        day(2024, time.November, 21),
			Category:    "SHOPPING",
			ImageURL:    image("Black+Friday+shopping+collage+with+products+and+discount+tags"),
		},
		{
			Title:       "Develop a deeper understanding with interactive images in Gemini.",
			Description: "Learn how interactive images in Gemini can enhance your learning and educational experience.",
			Link:        "https://example.com/gemini-learning",
			Date:        day(2024, time.November, 20),
			Category:    "LEARNING & EDUCATION",
			ImageURL:    image("Educational+diagram+with+interactive+elements+and+handwritten+notes"),
		},
	}
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func image(prompt string) *string {
	url := imageBase + prompt

	return &url
}
