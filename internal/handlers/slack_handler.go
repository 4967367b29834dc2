package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/diegoclair/weekend-bot/internal/domain/contract"
	slackcmd "github.com/diegoclair/weekend-bot/internal/slack"
	"github.com/sirupsen/logrus"
	"github.com/slack-go/slack"
)

type SlackHandler struct {
	weekendService contract.WeekendService
	signingSecret  string
	log            *logrus.Entry
}

func New(weekendService contract.WeekendService, signingSecret string) *SlackHandler {
	return &SlackHandler{
		weekendService: weekendService,
		signingSecret:  signingSecret,
		log:            logrus.StandardLogger().WithField("type", "handlers/slack"),
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	// Verify request from Slack
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	// Verify Slack signature
	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		h.log.WithError(err).Warn("invalid Slack signature headers")
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		h.log.WithError(err).Warn("Slack signature mismatch")
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	// Parse command
	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	// Parse our command
	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.respondWithError(w, err.Error())
		return
	}

	response := h.handleCommand(r, cmd, &s)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.log.WithError(err).Error("failed to encode response")
	}
}

func (h *SlackHandler) handleCommand(r *http.Request, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	switch cmd.Type {
	case slackcmd.CmdDays:
		return h.handleDays(r, cmd, slashCmd)
	case slackcmd.CmdCheck:
		return h.handleCheck(r, cmd, slashCmd)
	case slackcmd.CmdHelp:
		return h.handleHelp()
	default:
		return h.createErrorResponse("Unknown command")
	}
}

// locale returns the explicit locale argument at idx, or the caller's Slack locale
func (h *SlackHandler) locale(r *http.Request, cmd *slackcmd.Command, idx int, slashCmd *slack.SlashCommand) string {
	if len(cmd.Args) > idx {
		return strings.TrimSpace(cmd.Args[idx])
	}
	return h.weekendService.ResolveLocale(r.Context(), slashCmd.UserID)
}

func (h *SlackHandler) handleDays(r *http.Request, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	locale := h.locale(r, cmd, 0, slashCmd)
	report := h.weekendService.Describe(locale)

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("🗓️ Weekend in *%s*: %s", report.Locale, strings.Join(report.Days, " and ")),
	}
}

func (h *SlackHandler) handleCheck(r *http.Request, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.createErrorResponse("Please provide a day: `/weekend check friday [locale]`")
	}

	day := cmd.Args[0]
	locale := h.locale(r, cmd, 1, slashCmd)

	isWeekend, err := h.weekendService.CheckDay(locale, day)
	if err != nil {
		return h.createErrorResponse(err.Error())
	}

	text := fmt.Sprintf("💼 %s is a workday in *%s*", day, locale)
	if isWeekend {
		text = fmt.Sprintf("🌴 %s is a weekend day in *%s*", day, locale)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         text,
	}
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.GetHelpText(),
	}
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("❌ %s", message),
	}
}

func (h *SlackHandler) respondWithError(w http.ResponseWriter, message string) {
	response := h.createErrorResponse(message)
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.log.WithError(err).Error("failed to encode error response")
	}
}

// HandleHealth reports liveness
func HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "OK")
}
