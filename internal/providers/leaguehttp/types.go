package leaguehttp

// ProviderName identifies the HTTP season source.
const ProviderName = "leaguehttp"

type seasonResponse struct {
	Season string         `json:"season"`
	Teams  []teamResponse `json:"teams"`
}

type teamResponse struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Division      string           `json:"division"`
	CurrentPoints int              `json:"current_points"`
	Wins          int              `json:"wins"`
	Loses         int              `json:"loses"`
	Players       []playerResponse `json:"players"`
}

type playerResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Goals     int     `json:"goals"`
	SkillRate float64 `json:"skill_rate"`
}
