package faceit

import "github.com/jose-valero/faceit-map-stats/internal/domain"

// --- Teams ---
type teamDTO struct {
	TeamID   string `json:"team_id"`
	Name     string `json:"name"`
	Nickname string `json:"nickname"`
	Avatar   string `json:"avatar"`
	Game     string `json:"game"`
	Members  []struct {
		UserID   string `json:"user_id"`
		Nickname string `json:"nickname"`
	} `json:"members"`
}

func (t teamDTO) toDomain() *domain.Team {
	team := &domain.Team{
		ID:       t.TeamID,
		Name:     t.Name,
		Nickname: t.Nickname,
		Avatar:   t.Avatar,
		Game:     t.Game,
		Members:  make([]domain.Player, 0, len(t.Members)),
	}
	for _, m := range t.Members {
		team.Members = append(team.Members, domain.Player{ID: m.UserID, Nickname: m.Nickname})
	}
	return team
}

// --- Player history ---
type playerHistoryDTO struct {
	Items []domain.RawMatch `json:"items"`
	End   int               `json:"end"`
}
