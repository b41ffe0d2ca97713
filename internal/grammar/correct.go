package grammar

// Correct applies the first replacement of each match to the text,
// shifting later offsets by the accumulated length difference. Matches
// without replacements are skipped, as are matches whose span no longer
// holds the originally flagged text. Offsets are interpreted as rune
// positions, matching what the grammar service reports.
func Correct(text string, matches []Match) string {
	runes := []rune(text)
	shift := 0

	for _, m := range matches {
		if len(m.Replacements) == 0 {
			continue
		}
		from := m.Offset + shift
		to := m.Offset + m.Length + shift
		if from < 0 || to > len(runes) || from > to {
			continue
		}

		replacement := []rune(m.Replacements[0])
		updated := make([]rune, 0, len(runes)+len(replacement)-(to-from))
		updated = append(updated, runes[:from]...)
		updated = append(updated, replacement...)
		updated = append(updated, runes[to:]...)
		runes = updated
		shift += len(replacement) - m.Length
	}

	return string(runes)
}
