package defs

import "strings"

// Wave - упорядоченный список врагов одной волны.
type Wave struct {
	Creeps []EnemyType
}

// ParseWave переводит строку вида "NNHS" в волну: один символ - один враг.
// N - Normal, H - Heavy, S - Speedy, F - Flying, прочие символы пропускаются.
func ParseWave(s string) Wave {
	creeps := make([]EnemyType, 0, len(s))
	for _, ch := range s {
		switch ch {
		case 'N':
			creeps = append(creeps, EnemyNormal)
		case 'H':
			creeps = append(creeps, EnemyHeavy)
		case 'S':
			creeps = append(creeps, EnemySpeedy)
		case 'F':
			creeps = append(creeps, EnemyFlying)
		}
	}
	return Wave{Creeps: creeps}
}

// ParseWaves разбирает многострочное описание: каждая строка - своя волна.
// Пустые строки внутри дают пустые волны, чтобы номера совпадали со строками.
func ParseWaves(text string) []Wave {
	text = strings.TrimRight(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	waves := make([]Wave, 0, len(lines))
	for _, line := range lines {
		waves = append(waves, ParseWave(line))
	}
	return waves
}
