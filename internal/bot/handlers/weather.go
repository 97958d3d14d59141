package handlers

import (
	"context"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (h *Handlers) handleWeather(ctx context.Context, msg *tgbotapi.Message) {
	if h.weather == nil {
		h.sendMessage(msg.Chat.ID, "OPENWEATHER_API_KEY is not configured.")
		return
	}

	city := strings.TrimSpace(msg.CommandArguments())
	if city == "" {
		h.sendMessage(msg.Chat.ID, "Example: /weather Jakarta")
		return
	}

	obs, err := h.weather.Current(ctx, city)
	if err != nil {
		h.sendMessage(msg.Chat.ID, "City not found or weather API error.")
		return
	}

	h.sendMessage(msg.Chat.ID, fmt.Sprintf(
		"🌦️ Weather in *%s*\n%s\nTemperature: %.1f°C | Humidity: %d%% | Wind: %.1f m/s",
		obs.City, capitalize(obs.Description), obs.Temperature, obs.Humidity, obs.WindSpeed,
	))
}

// capitalize upper-cases the first rune; descriptions may be localized.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
