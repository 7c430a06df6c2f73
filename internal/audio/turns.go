package audio

import "strings"

// Turn is one speaker's block of dialogue.
type Turn struct {
	Speaker string
	Text    string
}

// ParseTurns splits a script into speaker turns on "Host A:" / "Host B:"
// labels. Consecutive lines without a label belong to the current turn.
// A script with no labels at all yields a single unlabeled turn, which the
// synthesizer narrates with one voice.
func ParseTurns(script string) []Turn {
	var turns []Turn
	var current *Turn

	for _, line := range strings.Split(script, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		speaker, rest, ok := splitSpeaker(trimmed)
		if ok {
			if current != nil {
				turns = append(turns, *current)
			}
			current = &Turn{Speaker: speaker, Text: rest}
			continue
		}

		if current == nil {
			current = &Turn{Text: trimmed}
			continue
		}
		current.Text += " " + trimmed
	}

	if current != nil {
		turns = append(turns, *current)
	}
	return turns
}

func splitSpeaker(line string) (speaker, rest string, ok bool) {
	for _, label := range []string{"Host A:", "Host B:"} {
		if strings.HasPrefix(line, label) {
			return strings.TrimSuffix(label, ":"), strings.TrimSpace(strings.TrimPrefix(line, label)), true
		}
	}
	return "", "", false
}
