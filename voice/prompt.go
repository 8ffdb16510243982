package voice

import (
	"fmt"
	"strings"

	"github.com/mkarimi/porsesh/model"
)

// Prompt builds the instruction sent to the model alongside the audio clip.
// The wording is fixed so the reply shape stays predictable for parseReply.
func Prompt(q model.Question) string {
	var b strings.Builder

	fmt.Fprintf(&b, `You are a Persian/Farsi language assistant. Listen to the audio and extract the answer to this question:

Question: %s
`, q.Prompt)

	switch q.Kind {
	case model.FreeText:
		b.WriteString(`
Instructions:
1. Listen to the Persian/Farsi audio
2. Find the one word answer to the question based on the audio
3. Return the text word exactly as spoken (in Persian/Farsi)
4. If no clear answer found, return "null"
`)

	case model.Number:
		b.WriteString(`
Instructions:
1. Listen to the Persian/Farsi audio
2. Extract any numerical value mentioned
3. Return ONLY the number (no text)
4. If no number found or unclear, return "null"
`)

	case model.SingleChoice:
		if len(q.Options) > 0 {
			fmt.Fprintf(&b, `
Available Options: %s

Instructions:
1. Listen to the Persian/Farsi audio
2. Identify which option the user selected
3. Return ONLY the exact option text from the available options
4. If unclear or no match found, return "null"
`, strings.Join(q.Options, ", "))
		} else {
			b.WriteString(`
Instructions:
1. Listen to the Persian/Farsi audio
2. Extract the selected option
3. Return the option exactly as spoken
4. If unclear, return "null"
`)
		}
	}

	if len(q.Fields) > 1 {
		pairs := make([]string, len(q.Fields))
		for i, f := range q.Fields {
			pairs[i] = fmt.Sprintf(`"%s": "value"`, f)
		}
		fmt.Fprintf(&b, `
Note: This question expects multiple values for fields: %s
Return your answer in JSON format like: {%s}
`, strings.Join(q.Fields, ", "), strings.Join(pairs, ", "))
	}

	b.WriteString("\n\nReturn only the answer, no additional text or explanation.")
	return b.String()
}
