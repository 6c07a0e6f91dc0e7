package generate

import (
	"fmt"
	"strings"
)

// Attribution used when no philosopher is requested.
const selfTeachingAttribution = "AI Self-Teaching"

// Sampling parameters are fixed per capability; only the enum choices
// below influence them.
const (
	quoteMaxTokens      = 150
	backgroundMaxTokens = 300
	musicMaxTokens      = 300
	videoMaxTokens      = 400
)

func quoteTemperature(promptStyle string) float64 {
	switch promptStyle {
	case "creative":
		return 0.95
	case "analytical":
		return 0.4
	default:
		return 0.8
	}
}

func quoteSystemPrompt(philosopher, quoteType, promptStyle string) string {
	var b strings.Builder
	b.WriteString("You are a philosophical quote generator. Create a meaningful, insightful quote based on the user's idea. The quote should be original, thoughtful, and profound. Do not use famous quotes or copy existing quotes. Create something new and unique based on the given idea.")

	switch {
	case philosopher == selfTeachingAttribution:
		b.WriteString(" Generate a quote that demonstrates AI self-reflection and learning about philosophical concepts.")
	case philosopher != "":
		fmt.Fprintf(&b, " Generate the quote in the style of %s. Capture their philosophical perspective and way of thinking.", philosopher)
	}

	switch quoteType {
	case "philosophical":
		b.WriteString(" The quote should be deeply philosophical, thought-provoking, and address fundamental questions about existence, knowledge, values, reason, mind, and language.")
	case "life_psychology":
		b.WriteString(" The quote should focus on modern life lessons, psychological insights, human behavior, and personal growth.")
	default:
		b.WriteString(" The quote should blend philosophical depth with practical life wisdom and psychological insights.")
	}

	switch promptStyle {
	case "analytical":
		b.WriteString(" Make the quote precise, intellectually rigorous, well-structured, and logically sound. Use clear, analytical language.")
	case "creative":
		b.WriteString(" Make the quote imaginative, artistic, metaphorical, and expressive. Use creative language and vivid imagery.")
	default:
		b.WriteString(" Balance technical precision with creative expression. Make the quote both intellectually sound and artistically beautiful.")
	}

	b.WriteString(` IMPORTANT: You must respond with a valid JSON object only, no other text. The JSON must have exactly two fields: "quote" (string containing the philosophical quote) and "attribution" (string containing who said it - use the philosopher's name or "AI Self-Teaching"). Do not include the word "json" or any other text outside the JSON object. Example format: {"quote": "The philosophical quote here", "attribution": "Name of philosopher"}`)
	return b.String()
}

func quoteUserPrompt(idea, philosopher string) string {
	prompt := "Generate a unique philosophical quote based on this idea: " + idea
	if philosopher != "" && philosopher != selfTeachingAttribution {
		prompt += fmt.Sprintf(" Channel the philosophical style and perspective of %s.", philosopher)
	}
	return prompt
}

func backgroundPrompt(style, quote string) string {
	var b strings.Builder
	b.WriteString("Create a philosophical background image")

	switch style {
	case "philosophical":
		b.WriteString(" with deep, thoughtful, classical elements. Use rich colors, dramatic lighting, and symbolic imagery that represents wisdom and deep thinking.")
	case "modern":
		b.WriteString(" with contemporary, clean, minimalist design. Use modern typography, geometric shapes, and a sophisticated color palette.")
	case "artistic":
		b.WriteString(" with creative, expressive, and unique artistic style. Use bold colors, dynamic composition, and imaginative elements.")
	case "minimalist":
		b.WriteString(" with simple, clean, and focused design. Use minimal elements, plenty of whitespace, and a restrained color palette.")
	default:
		b.WriteString(" with a balanced, versatile visual style.")
	}

	if quote != "" {
		fmt.Fprintf(&b, " The image should visually represent this philosophical concept: %q", quote)
	}
	b.WriteString(" Make it suitable as a background for text overlay. High quality, professional, and inspiring.")
	return b.String()
}

func musicPrompt(genre, mood string, duration int, quote string) string {
	var b strings.Builder
	b.WriteString("Generate a musical composition description for a philosophical quote video.")

	switch genre {
	case "ambient":
		b.WriteString(" Create ambient, atmospheric background music with ethereal textures and subtle melodies.")
	case "classical":
		b.WriteString(" Create classical-style music with orchestral elements, sophisticated arrangements, and timeless elegance.")
	case "electronic":
		b.WriteString(" Create electronic music with modern synthesizers, digital textures, and contemporary production.")
	case "acoustic":
		b.WriteString(" Create acoustic music with organic instruments, natural sounds, and warm, intimate feel.")
	default:
		b.WriteString(" Create background music in a fitting, understated style.")
	}

	switch mood {
	case "contemplative":
		b.WriteString(" The mood should be thoughtful, reflective, and introspective, encouraging deep thinking.")
	case "inspirational":
		b.WriteString(" The mood should be uplifting, motivating, and emotionally resonant, inspiring positive action.")
	case "mysterious":
		b.WriteString(" The mood should be enigmatic, intriguing, and thought-provoking, creating a sense of wonder.")
	case "peaceful":
		b.WriteString(" The mood should be calm, serene, and tranquil, promoting relaxation and inner peace.")
	default:
		b.WriteString(" The mood should suit quiet reflection.")
	}

	fmt.Fprintf(&b, " The duration should be approximately %d seconds.", duration)
	if quote != "" {
		fmt.Fprintf(&b, " The music should complement and enhance this philosophical quote: %q", quote)
	}
	b.WriteString(" Describe the musical elements, instruments, tempo, key, and overall structure in detail.")
	return b.String()
}

func videoPrompt(style, quote, backgroundURL, musicURL, quality string, duration int) string {
	var b strings.Builder
	b.WriteString("Generate a detailed video production plan for a philosophical quote video.")

	switch style {
	case "cinematic":
		b.WriteString(" Create a cinematic video with film-quality production, dramatic lighting, and professional camera work.")
	case "animated":
		b.WriteString(" Create an animated video with motion graphics, dynamic transitions, and engaging visual effects.")
	case "minimalist":
		b.WriteString(" Create a minimalist video with clean, simple design, subtle animations, and focused presentation.")
	case "artistic":
		b.WriteString(" Create an artistic video with creative visuals, unique styling, and expressive cinematography.")
	default:
		b.WriteString(" Create a polished video in a restrained, professional style.")
	}

	fmt.Fprintf(&b, " The video should be %d seconds long and %s quality.", duration, quality)
	if backgroundURL != "" {
		b.WriteString(" The video will incorporate background imagery.")
	}
	if musicURL != "" {
		b.WriteString(" The video will include background music and audio elements.")
	}
	fmt.Fprintf(&b, " The philosophical quote to be featured is: %q", quote)
	b.WriteString(" Provide a detailed production plan including: visual style, animation timing, text placement, transitions, audio synchronization, and overall flow. Describe how the quote will be presented visually and audibly.")
	return b.String()
}

// System prompts for the non-quote capabilities.
const (
	backgroundSystemPrompt = "You are an expert visual artist and art director. Generate detailed image descriptions that can be used to create actual background artwork."
	musicSystemPrompt      = "You are an expert music composer and producer. Generate detailed music composition descriptions that can be used to create actual music."
	videoSystemPrompt      = "You are an expert video producer and director. Generate detailed video production plans that can be used to create professional philosophical quote videos."
)
