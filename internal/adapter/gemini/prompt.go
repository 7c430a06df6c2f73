package gemini

import "fmt"

// promptTemplate instructs the model to produce alternating "Host A:" /
// "Host B:" turns. The speaker labels are load-bearing: the audio stage
// splits on them to assign voices.
const promptTemplate = `You are writing a script for a two-host podcast that explains research papers to a curious technical audience.

Transform the research paper below into an engaging, conversational dialogue between two hosts. Requirements:
- Exactly two speakers, labeled "Host A:" and "Host B:", strictly alternating turns.
- Every line of dialogue starts with its speaker label.
- Cover the paper's motivation, its method, and its key findings, in that order.
- Keep the tone accessible and natural, like two colleagues talking, not a lecture.
- Open with a hook that makes the listener care, and close with a thought-provoking takeaway.
- Output only the dialogue lines, no headings or stage directions.

Here is the research paper content:
%s`

// BuildPrompt embeds already-truncated paper text into the fixed template.
func BuildPrompt(docText string) string {
	return fmt.Sprintf(promptTemplate, docText)
}
