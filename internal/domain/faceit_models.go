package domain

import "time"

// Team es lo que devuelve /teams/{id}.
type Team struct {
	ID       string   `json:"team_id"`
	Name     string   `json:"name"`
	Nickname string   `json:"nickname"`
	Avatar   string   `json:"avatar"`
	Game     string   `json:"game"`
	Members  []Player `json:"members"`
}

// Player es un miembro del roster.
type Player struct {
	ID       string `json:"user_id"`
	Nickname string `json:"nickname"`
}

type MatchPlayer struct {
	PlayerID string `json:"player_id"`
	Nickname string `json:"nickname"`
}

// Faction: el historial trae "players", el detalle del match trae "roster".
type Faction struct {
	FactionID string        `json:"faction_id"`
	Name      string        `json:"name"`
	Players   []MatchPlayer `json:"players"`
	Roster    []MatchPlayer `json:"roster"`
}

func (f Faction) Members() []MatchPlayer {
	if len(f.Roster) > 0 {
		return f.Roster
	}
	return f.Players
}

type Results struct {
	Winner string         `json:"winner"`
	Score  map[string]int `json:"score"`
}

type MapEntity struct {
	Name      string `json:"name"`
	GameMapID string `json:"game_map_id"`
	GUID      string `json:"guid"`
	ClassName string `json:"class_name"`
}

type MapVoting struct {
	Pick     []string    `json:"pick"`
	Entities []MapEntity `json:"entities"`
}

type Voting struct {
	Map *MapVoting `json:"map"`
}

// RawMatch cubre tanto un item de /players/{id}/history como /matches/{id}.
// Un registro de serie (el "padre") declara sus partidas en MatchIDs.
type RawMatch struct {
	ID            string             `json:"match_id"`
	ParentMatchID string             `json:"parent_match_id"`
	FinishedAt    int64              `json:"finished_at"`
	Teams         map[string]Faction `json:"teams"`
	Results       *Results           `json:"results"`
	Voting        *Voting            `json:"voting"`
	MatchIDs      []string           `json:"match_ids"`
}

func (m RawMatch) Finished() time.Time {
	return time.Unix(m.FinishedAt, 0).UTC()
}

func (m RawMatch) Date() string {
	return ISODate(m.Finished())
}

// HistoryPage es una página de /players/{id}/history.
type HistoryPage struct {
	Items []RawMatch
	End   int
}

const isoLayout = "2006-01-02T15:04:05.000Z"

// ISODate formatea en UTC con milisegundos (ISO-8601).
func ISODate(t time.Time) string {
	return t.UTC().Format(isoLayout)
}
