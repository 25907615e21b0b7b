package faceit

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/jose-valero/faceit-map-stats/internal/domain"
)

func (c *Client) GetTeam(ctx context.Context, teamID string) (*domain.Team, error) {
	var dto teamDTO
	if err := c.doJSON(ctx, "GET", fmt.Sprintf("/teams/%s", url.PathEscape(teamID)), nil, &dto); err != nil {
		return nil, err
	}
	return dto.toDomain(), nil
}

// GetPlayerHistory devuelve una página del historial (más reciente primero).
func (c *Client) GetPlayerHistory(ctx context.Context, playerID string, offset, limit int) (*domain.HistoryPage, error) {
	q := url.Values{}
	q.Set("game", c.game)
	q.Set("offset", strconv.Itoa(offset))
	q.Set("limit", strconv.Itoa(limit))

	c.throttle.History()
	var dto playerHistoryDTO
	if err := c.doJSON(ctx, "GET", fmt.Sprintf("/players/%s/history", url.PathEscape(playerID)), q, &dto); err != nil {
		return nil, err
	}
	return &domain.HistoryPage{Items: dto.Items, End: dto.End}, nil
}

// GetMatch sirve para matches individuales y para el registro de una serie.
func (c *Client) GetMatch(ctx context.Context, matchID string) (*domain.RawMatch, error) {
	c.throttle.Detail()
	var m domain.RawMatch
	if err := c.doJSON(ctx, "GET", fmt.Sprintf("/matches/%s", url.PathEscape(matchID)), nil, &m); err != nil {
		return nil, err
	}
	return &m, nil
}
