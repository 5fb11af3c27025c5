package explain

import "go.trai.ch/fixit/internal/core/domain"

// InfoDocument represents the structure of a <key>.info.yml document.
type InfoDocument struct {
	Fixes []FixDTO `yaml:"fixes"`
	Hints []string `yaml:"hints"`
}

// FixDTO represents one fix descriptor in an info document.
type FixDTO struct {
	ID          int    `yaml:"id"`
	Explanation string `yaml:"explanation"`
}

func (d *InfoDocument) toDomain() domain.ChallengeInfo {
	info := domain.ChallengeInfo{Hints: d.Hints}
	if len(d.Fixes) > 0 {
		info.Fixes = make([]domain.FixInfo, len(d.Fixes))
		for i, fix := range d.Fixes {
			info.Fixes[i] = domain.FixInfo{ID: fix.ID, Explanation: fix.Explanation}
		}
	}
	return info
}
