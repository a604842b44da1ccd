package v1

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/studybuddy-ai/studybuddy/app/core"
	"github.com/studybuddy-ai/studybuddy/pkg/errors"
)

const (
	MOOD_FUNNY        = "funny"
	MOOD_MOTIVATIONAL = "motivational"
	MOOD_SILLY        = "silly"

	relaxCacheTTL = time.Minute * 5
)

var moodEndpoints = map[string]string{
	MOOD_FUNNY:        "https://official-joke-api.appspot.com/random_joke",
	MOOD_MOTIVATIONAL: "https://zenquotes.io/api/random",
	MOOD_SILLY:        "https://uselessfacts.jsph.pl/api/v2/facts/random",
}

type RelaxLogic struct {
	ctx  context.Context
	core *core.Core
}

func NewRelaxLogic(ctx context.Context, core *core.Core) *RelaxLogic {
	return &RelaxLogic{
		ctx:  ctx,
		core: core,
	}
}

type RelaxResult struct {
	Mood    string `json:"mood"`
	Message string `json:"message"`
}

// Relax 按心情从公共接口取一条轻松内容，带短时缓存以避免
// 频繁请求外部服务。
func (l *RelaxLogic) Relax(mood string) (*RelaxResult, error) {
	endpoint, ok := moodEndpoints[mood]
	if !ok {
		return nil, errors.New("RelaxLogic.Relax", "unknown mood", nil).Code(http.StatusBadRequest)
	}

	cacheKey := fmt.Sprintf("studybuddy:relax:%s", mood)
	if cached, err := l.core.Cache().Get(l.ctx, cacheKey).Result(); err == nil && cached != "" {
		return &RelaxResult{Mood: mood, Message: cached}, nil
	} else if err != nil && err != redis.Nil {
		slog.Warn("relax cache read failed", slog.String("error", err.Error()))
	}

	message, err := l.fetchMessage(mood, endpoint)
	if err != nil {
		return nil, errors.New("RelaxLogic.Relax.fetchMessage", "failed to reach relax provider", err).Code(http.StatusBadGateway)
	}

	if err = l.core.Cache().Set(l.ctx, cacheKey, message, relaxCacheTTL).Err(); err != nil {
		slog.Warn("relax cache write failed", slog.String("error", err.Error()))
	}

	return &RelaxResult{Mood: mood, Message: message}, nil
}

func (l *RelaxLogic) fetchMessage(mood, endpoint string) (string, error) {
	req, err := http.NewRequestWithContext(l.ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", err
	}

	resp, err := l.core.HttpClient().Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("relax provider responded %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return decodeMoodResponse(mood, raw)
}

func decodeMoodResponse(mood string, raw []byte) (string, error) {
	switch mood {
	case MOOD_FUNNY:
		var body struct {
			Setup     string `json:"setup"`
			Punchline string `json:"punchline"`
		}
		if err := json.Unmarshal(raw, &body); err != nil {
			return "", err
		}
		return fmt.Sprintf("%s %s", body.Setup, body.Punchline), nil
	case MOOD_MOTIVATIONAL:
		var body []struct {
			Quote  string `json:"q"`
			Author string `json:"a"`
		}
		if err := json.Unmarshal(raw, &body); err != nil {
			return "", err
		}
		if len(body) == 0 {
			return "", fmt.Errorf("empty quote response")
		}
		return fmt.Sprintf("%s - %s", body[0].Quote, body[0].Author), nil
	case MOOD_SILLY:
		var body struct {
			Text string `json:"text"`
		}
		if err := json.Unmarshal(raw, &body); err != nil {
			return "", err
		}
		return body.Text, nil
	default:
		return "", fmt.Errorf("unknown mood %q", mood)
	}
}
