package domain

// UnknownMap / UnknownResult marcan datos que no se pudieron resolver.
const (
	UnknownMap    = "Unknown"
	UnknownResult = "Unknown"

	ResultWin  = "win"
	ResultLoss = "loss"
)

// MatchSummary es un match normalizado dentro de una serie.
// Winner es el token crudo del servicio (ej. "faction1"); Result es relativo al equipo.
type MatchSummary struct {
	ID         string   `json:"id"`
	Date       string   `json:"date"`
	Map        string   `json:"map"`
	Result     string   `json:"result"`
	Winner     string   `json:"winner"`
	Score      string   `json:"score"`
	FinishedAt int64    `json:"-"`
	Nicknames  []string `json:"-"`
}

type Series struct {
	ID              string         `json:"id"`
	Date            string         `json:"date"`
	FinishedAt      int64          `json:"-"`
	Matches         []MatchSummary `json:"matches"`
	OurPlayers      []string       `json:"ourPlayers"`
	TotalOurPlayers int            `json:"totalOurPlayers"`
}

type MapStat struct {
	Map          string `json:"map"`
	TotalMatches int    `json:"totalMatches"`
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`
	WinRate      int    `json:"winRate"`
}

type Period struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type MapResult struct {
	Map    string `json:"map"`
	Result string `json:"result"`
	Score  string `json:"score"`
}

// SeriesView es la forma reducida de una serie en el reporte.
type SeriesView struct {
	ID              string      `json:"id"`
	Date            string      `json:"date"`
	Maps            []MapResult `json:"maps"`
	SeriesResult    string      `json:"seriesResult"`
	OurPlayers      []string    `json:"ourPlayers"`
	TotalOurPlayers int         `json:"totalOurPlayers"`
}

type Diagnostics struct {
	AllMatchesFound int `json:"allMatchesFound"`
	SeriesFound     int `json:"seriesFound"`
	TeamSeriesFound int `json:"teamSeriesFound"`
}

type Report struct {
	TeamID        string       `json:"teamId"`
	TeamName      string       `json:"teamName"`
	TeamNickname  string       `json:"teamNickname"`
	Avatar        string       `json:"avatar"`
	Game          string       `json:"game"`
	Period        Period       `json:"period"`
	Players       []string     `json:"players"`
	TotalSeries   int          `json:"totalSeries"`
	TotalMatches  int          `json:"totalMatches"`
	MapStatistics []MapStat    `json:"mapStatistics"`
	RecentSeries  []SeriesView `json:"recentSeries"`
	Diagnostics   Diagnostics  `json:"diagnostics"`
}
